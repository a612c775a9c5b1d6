package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RIDSdiseno/beck-crm/models"
)

func validQuotationInput() NewQuotationInput {
	return NewQuotationInput{
		Number:      23,
		Code:        "BECK-COT-2025-023",
		Client:      "Inmobiliaria Centro",
		Project:     "Sellado shaft torre A",
		Origin:      "Directo",
		Type:        models.QuotationTypeClient,
		IssueDate:   models.NewDate(2025, 11, 12),
		ValidUntil:  models.NewDate(2025, 12, 12),
		Status:      models.QuotationDraft,
		Amount:      120000,
		Currency:    models.CurrencyCLP,
		Responsible: "Equipo Beck",
	}
}

func TestCreateQuotation(t *testing.T) {
	fixedClock(t)
	st, store := newTestState(t)

	q, err := st.CreateQuotation(validQuotationInput())
	require.NoError(t, err)
	assert.Equal(t, 4, q.ID)
	assert.Len(t, st.Quotations, 4)

	reloaded := store.LoadQuotations(nowFunc())
	require.Len(t, reloaded, 4)
	assert.Equal(t, q, reloaded[3])
}

func TestCreateQuotation_Validation(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name   string
		mutate func(*NewQuotationInput)
	}{
		{"missing code", func(in *NewQuotationInput) { in.Code = "" }},
		{"missing client", func(in *NewQuotationInput) { in.Client = "" }},
		{"zero number", func(in *NewQuotationInput) { in.Number = 0 }},
		{"missing issue date", func(in *NewQuotationInput) { in.IssueDate = models.Date{} }},
		{"missing validity", func(in *NewQuotationInput) { in.ValidUntil = models.Date{} }},
		{"unknown status", func(in *NewQuotationInput) { in.Status = "Pendiente" }},
		{"unknown type", func(in *NewQuotationInput) { in.Type = "Express" }},
		{"unknown currency", func(in *NewQuotationInput) { in.Currency = "EUR" }},
		{"negative amount", func(in *NewQuotationInput) { in.Amount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := newTestState(t)
			in := validQuotationInput()
			tt.mutate(&in)
			_, err := st.CreateQuotation(in)
			assert.Error(t, err)
			assert.Len(t, st.Quotations, 3)
		})
	}
}

func TestUpdateQuotation_AnyStatusIsSettable(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	// Demo quotation 3 is already Accepted; moving it straight back to Draft
	// is allowed.
	in := validQuotationInput()
	in.Status = models.QuotationDraft
	q, err := st.UpdateQuotation(3, in)
	require.NoError(t, err)
	assert.Equal(t, models.QuotationDraft, q.Status)
	assert.Equal(t, 3, q.ID, "id is stable across updates")
	assert.Equal(t, in.Client, q.Client)
}

func TestUpdateQuotation_UnknownID(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	_, err := st.UpdateQuotation(99, validQuotationInput())
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestDeleteQuotation(t *testing.T) {
	fixedClock(t)
	st, store := newTestState(t)

	require.NoError(t, st.DeleteQuotation(2))
	assert.Len(t, st.Quotations, 2)
	for _, q := range st.Quotations {
		assert.NotEqual(t, 2, q.ID)
	}
	assert.Len(t, store.LoadQuotations(nowFunc()), 2)

	assert.ErrorIs(t, st.DeleteQuotation(2), ErrUnknownID)
}

func TestResetQuotations(t *testing.T) {
	fixedClock(t)
	st, _ := newTestState(t)

	require.NoError(t, st.DeleteQuotation(1))
	require.NoError(t, st.ResetQuotations())
	assert.Len(t, st.Quotations, 3)
}
