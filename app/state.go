// Package app holds the explicit application-state object: every collection
// the CRM works on, loaded once from storage and mutated only through the
// entry points defined here. There is no ambient global; whoever needs the
// state receives it by reference.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/RIDSdiseno/beck-crm/models"
	"github.com/RIDSdiseno/beck-crm/storage"
)

// Validation and authorization failures surfaced to the user. Each aborts
// the operation with no partial mutation applied.
var (
	ErrMissingField       = errors.New("app: missing required field")
	ErrInvalidEmail       = errors.New("app: invalid email")
	ErrDuplicateEmail     = errors.New("app: a user with that email already exists")
	ErrAdminNotAssignable = errors.New("app: only field worker or viewer roles can be assigned")
	ErrUnknownID          = errors.New("app: no record with that id")
	ErrNotAuthorized      = errors.New("app: action not allowed for this role")
	ErrDuplicateProject   = errors.New("app: a project with that name already exists")
)

// State owns the in-memory collections for the current session. Mutations
// are synchronous and persist through the store before returning.
type State struct {
	store *storage.Store
	log   *zap.Logger

	Seals      []models.SealRecord
	Quotations []models.Quotation
	Users      []models.User
	FoamJoints []models.FoamJointRecord
	Projects   []models.Project
}

// nowFunc is swapped out by tests that need a fixed clock.
var nowFunc = time.Now

// Load builds the state by reading every collection. It cannot fail: the
// storage layer falls back to demo data on any problem.
func Load(store *storage.Store, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	now := nowFunc()
	return &State{
		store:      store,
		log:        log,
		Seals:      store.LoadSealRecords(now),
		Quotations: store.LoadQuotations(now),
		Users:      store.LoadUsers(),
		FoamJoints: store.LoadFoamJoints(now),
		Projects:   store.LoadProjects(),
	}
}

// NewSealRecordInput carries the form fields of a new registry entry.
// Weekday and the weighted count are derived here, not supplied.
type NewSealRecordInput struct {
	BeckItem       string
	SacyrItem      string
	ExecutionDate  models.Date
	Floor          string
	AxisAlpha      string
	AxisNumeric    string
	Room           string
	SealNumber     string
	InstallerName  string
	PhotoURL       string
	SealCount      int
	GapCM          float64
	GapFactor      float64
	ModularCeiling int
	Notes          string
}

// CreateSealRecord validates the form, assigns the next monotonic id,
// derives the weekday label and computes the stored weighted count. This is
// the single point where the weighted-count invariant is established.
func (s *State) CreateSealRecord(in NewSealRecordInput) (models.SealRecord, error) {
	switch {
	case in.BeckItem == "":
		return models.SealRecord{}, fmt.Errorf("%w: itemizado BECK", ErrMissingField)
	case in.ExecutionDate.IsZero():
		return models.SealRecord{}, fmt.Errorf("%w: fecha ejecución", ErrMissingField)
	case in.Floor == "":
		return models.SealRecord{}, fmt.Errorf("%w: piso", ErrMissingField)
	case in.InstallerName == "":
		return models.SealRecord{}, fmt.Errorf("%w: sellador", ErrMissingField)
	case in.SealCount <= 0:
		return models.SealRecord{}, fmt.Errorf("%w: cantidad de sellos", ErrMissingField)
	case in.GapCM < 0:
		return models.SealRecord{}, fmt.Errorf("app: holgura must not be negative")
	case !models.ValidGapFactor(in.GapFactor):
		return models.SealRecord{}, fmt.Errorf("app: factor holgura %v is not one of %v", in.GapFactor, models.GapFactors)
	case !models.ValidModularCeiling(in.ModularCeiling):
		return models.SealRecord{}, fmt.Errorf("app: cielo modular %d is not 1, 2 or 3", in.ModularCeiling)
	}

	r := models.SealRecord{
		ID:                s.nextSealID(),
		BeckItem:          in.BeckItem,
		SacyrItem:         in.SacyrItem,
		ExecutionDate:     in.ExecutionDate,
		Weekday:           in.ExecutionDate.Weekday(),
		Floor:             in.Floor,
		AxisAlpha:         in.AxisAlpha,
		AxisNumeric:       in.AxisNumeric,
		Room:              in.Room,
		SealNumber:        in.SealNumber,
		InstallerName:     in.InstallerName,
		PhotoURL:          in.PhotoURL,
		SealCount:         in.SealCount,
		GapCM:             in.GapCM,
		GapFactor:         in.GapFactor,
		ModularCeiling:    in.ModularCeiling,
		WeightedSealCount: float64(in.SealCount) * in.GapFactor,
		Notes:             in.Notes,
	}
	s.Seals = append(s.Seals, r)
	return r, s.persistSeals()
}

// ResetSealRecords discards the stored registry and reloads the demo data.
func (s *State) ResetSealRecords() error {
	if err := s.store.ResetSealRecords(); err != nil {
		return err
	}
	s.Seals = s.store.LoadSealRecords(nowFunc())
	return nil
}

func (s *State) nextSealID() int {
	max := 0
	for _, r := range s.Seals {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func (s *State) persistSeals() error {
	if err := s.store.SaveSealRecords(s.Seals); err != nil {
		s.log.Warn("persisting seal records failed", zap.Error(err))
		return err
	}
	return nil
}
