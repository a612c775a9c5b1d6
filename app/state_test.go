package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RIDSdiseno/beck-crm/models"
	"github.com/RIDSdiseno/beck-crm/storage"
)

func fixedClock(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC)
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
	return now
}

func newTestState(t *testing.T) (*State, *storage.Store) {
	t.Helper()
	store := storage.NewStore(storage.NewMemory(), nil)
	return Load(store, nil), store
}

func validSealInput() NewSealRecordInput {
	return NewSealRecordInput{
		BeckItem:       "BECK-010",
		SacyrItem:      "SACYR-C01",
		ExecutionDate:  models.NewDate(2025, 11, 12),
		Floor:          "Piso 3",
		InstallerName:  "Pedro Rojas",
		SealCount:      5,
		GapCM:          3,
		GapFactor:      1.4,
		ModularCeiling: models.CeilingNormal,
	}
}

func TestLoad_SeedsEveryCollection(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	assert.Len(t, st.Seals, 3)
	assert.Len(t, st.Quotations, 3)
	assert.Len(t, st.Users, 3)
	assert.Len(t, st.FoamJoints, 3)
	assert.Len(t, st.Projects, 2)
}

func TestCreateSealRecord(t *testing.T) {
	fixedClock(t)
	st, store := newTestState(t)

	r, err := st.CreateSealRecord(validSealInput())
	require.NoError(t, err)

	assert.Equal(t, 4, r.ID, "id is one past the current maximum")
	assert.Equal(t, 5*1.4, r.WeightedSealCount)
	assert.Equal(t, "Wednesday", r.Weekday)
	assert.Len(t, st.Seals, 4)

	// The mutation is persisted before returning.
	reloaded := store.LoadSealRecords(nowFunc())
	require.Len(t, reloaded, 4)
	assert.Equal(t, r, reloaded[3])
}

func TestCreateSealRecord_MonotonicIDsSurviveDeletions(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	// Drop the record with the highest id, then create: ids never go
	// backwards within the surviving set.
	st.Seals = st.Seals[:2]
	r, err := st.CreateSealRecord(validSealInput())
	require.NoError(t, err)
	assert.Equal(t, 3, r.ID)
}

func TestCreateSealRecord_Validation(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name   string
		mutate func(*NewSealRecordInput)
	}{
		{"missing beck item", func(in *NewSealRecordInput) { in.BeckItem = "" }},
		{"missing date", func(in *NewSealRecordInput) { in.ExecutionDate = models.Date{} }},
		{"missing floor", func(in *NewSealRecordInput) { in.Floor = "" }},
		{"missing installer", func(in *NewSealRecordInput) { in.InstallerName = "" }},
		{"zero seal count", func(in *NewSealRecordInput) { in.SealCount = 0 }},
		{"negative gap", func(in *NewSealRecordInput) { in.GapCM = -1 }},
		{"unknown gap factor", func(in *NewSealRecordInput) { in.GapFactor = 1.5 }},
		{"unknown ceiling", func(in *NewSealRecordInput) { in.ModularCeiling = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := newTestState(t)
			before := len(st.Seals)

			in := validSealInput()
			tt.mutate(&in)
			_, err := st.CreateSealRecord(in)
			assert.Error(t, err)
			assert.Len(t, st.Seals, before, "a rejected form leaves the registry untouched")
		})
	}
}

func TestResetSealRecords(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	_, err := st.CreateSealRecord(validSealInput())
	require.NoError(t, err)
	require.Len(t, st.Seals, 4)

	require.NoError(t, st.ResetSealRecords())
	assert.Len(t, st.Seals, 3, "reset restores the demo registry")
}

func TestCreateFoamJoint(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	r, err := st.CreateFoamJoint("  JL-ESP-030 ", "Piso 4", "Equipo espuma 2", 9.5, models.NewDate(2025, 11, 12))
	require.NoError(t, err)
	assert.Equal(t, 4, r.ID)
	assert.Equal(t, "JL-ESP-030", r.Section, "fields arrive trimmed")

	_, err = st.CreateFoamJoint("JL-ESP-031", "Piso 4", "Equipo espuma 2", 0, models.NewDate(2025, 11, 12))
	assert.Error(t, err, "meters must be positive")
}

func TestCreateProject(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	p, err := st.CreateProject(models.RoleAdministrator, "Torre Costanera", "OBRA-TC")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Len(t, st.Projects, 3)

	_, err = st.CreateProject(models.RoleFieldWorker, "Otra obra", "OBRA-X")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = st.CreateProject(models.RoleAdministrator, "torre costanera", "OBRA-TC2")
	assert.ErrorIs(t, err, ErrDuplicateProject, "names are unique case-insensitively")
}
