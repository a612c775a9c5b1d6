package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/RIDSdiseno/beck-crm/models"
)

// NewQuotationInput carries the editor fields of a new proposal. Number and
// code come from the caller (the correlative numbering is a commercial
// convention, not derived data).
type NewQuotationInput struct {
	Number      int
	Code        string
	Client      string
	Project     string
	Origin      string
	Type        string
	IssueDate   models.Date
	ValidUntil  models.Date
	Status      models.QuotationStatus
	Amount      float64
	Currency    string
	Responsible string
	Notes       string
}

// CreateQuotation validates the editor form and appends the proposal with
// the next monotonic id.
func (s *State) CreateQuotation(in NewQuotationInput) (models.Quotation, error) {
	if err := validateQuotationInput(in); err != nil {
		return models.Quotation{}, err
	}

	q := models.Quotation{
		ID:          s.nextQuotationID(),
		Number:      in.Number,
		Code:        in.Code,
		Client:      in.Client,
		Project:     in.Project,
		Origin:      in.Origin,
		Type:        in.Type,
		IssueDate:   in.IssueDate,
		ValidUntil:  in.ValidUntil,
		Status:      in.Status,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Responsible: in.Responsible,
		Notes:       in.Notes,
	}
	s.Quotations = append(s.Quotations, q)
	return q, s.persistQuotations()
}

// UpdateQuotation replaces the fields of an existing proposal. Any status is
// directly settable from any other; there is no transition graph.
func (s *State) UpdateQuotation(id int, in NewQuotationInput) (models.Quotation, error) {
	if err := validateQuotationInput(in); err != nil {
		return models.Quotation{}, err
	}
	for i, q := range s.Quotations {
		if q.ID != id {
			continue
		}
		q.Number = in.Number
		q.Code = in.Code
		q.Client = in.Client
		q.Project = in.Project
		q.Origin = in.Origin
		q.Type = in.Type
		q.IssueDate = in.IssueDate
		q.ValidUntil = in.ValidUntil
		q.Status = in.Status
		q.Amount = in.Amount
		q.Currency = in.Currency
		q.Responsible = in.Responsible
		q.Notes = in.Notes
		s.Quotations[i] = q
		return q, s.persistQuotations()
	}
	return models.Quotation{}, ErrUnknownID
}

// DeleteQuotation removes a proposal by id.
func (s *State) DeleteQuotation(id int) error {
	for i, q := range s.Quotations {
		if q.ID == id {
			s.Quotations = append(s.Quotations[:i], s.Quotations[i+1:]...)
			return s.persistQuotations()
		}
	}
	return ErrUnknownID
}

// ResetQuotations discards the stored proposal book and reloads demo data.
func (s *State) ResetQuotations() error {
	if err := s.store.ResetQuotations(); err != nil {
		return err
	}
	s.Quotations = s.store.LoadQuotations(nowFunc())
	return nil
}

func validateQuotationInput(in NewQuotationInput) error {
	switch {
	case in.Code == "":
		return fmt.Errorf("%w: código", ErrMissingField)
	case in.Client == "":
		return fmt.Errorf("%w: cliente", ErrMissingField)
	case in.Number <= 0:
		return fmt.Errorf("%w: número", ErrMissingField)
	case in.IssueDate.IsZero():
		return fmt.Errorf("%w: fecha", ErrMissingField)
	case in.ValidUntil.IsZero():
		return fmt.Errorf("%w: vigencia", ErrMissingField)
	case !models.ValidQuotationStatus(in.Status):
		return fmt.Errorf("app: estado %q is not a quotation status", in.Status)
	case !models.ValidQuotationType(in.Type):
		return fmt.Errorf("app: tipo %q is not a quotation type", in.Type)
	case !models.ValidCurrency(in.Currency):
		return fmt.Errorf("app: moneda %q is not supported", in.Currency)
	case in.Amount < 0:
		return fmt.Errorf("app: monto must not be negative")
	}
	return nil
}

func (s *State) nextQuotationID() int {
	max := 0
	for _, q := range s.Quotations {
		if q.ID > max {
			max = q.ID
		}
	}
	return max + 1
}

func (s *State) persistQuotations() error {
	if err := s.store.SaveQuotations(s.Quotations); err != nil {
		s.log.Warn("persisting quotations failed", zap.Error(err))
		return err
	}
	return nil
}
