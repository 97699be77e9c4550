package request

import (
	"strings"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

type CreateAgreementRequest struct {
	TenantID        string   `json:"tenant_id" binding:"required"`
	UnitID          string   `json:"unit_id" binding:"required"`
	StartDate       string   `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	MonthlyRent     *float64 `json:"monthly_rent" binding:"required,gte=0,lte=99999999.99"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0,lte=99999999.99"`
	Notes           *string  `json:"notes" binding:"omitempty,max=5000"`
}

func (r CreateAgreementRequest) ToInput() (usecase.CreateAgreementInput, error) {
	errs := InvalidFields{}
	start := parseDate(errs, "start_date", &r.StartDate)
	end := parseDate(errs, "end_date", r.EndDate)
	if err := errs.orNil(); err != nil {
		return usecase.CreateAgreementInput{}, err
	}

	in := usecase.CreateAgreementInput{
		TenantID:        strings.TrimSpace(r.TenantID),
		UnitID:          strings.TrimSpace(r.UnitID),
		EndDate:         end,
		SecurityDeposit: r.SecurityDeposit,
		Notes:           r.Notes,
	}
	if start != nil {
		in.StartDate = *start
	}
	if r.MonthlyRent != nil {
		in.MonthlyRent = *r.MonthlyRent
	}
	return in, nil
}

// UpdateAgreementRequest carries only the fields being changed.
type UpdateAgreementRequest struct {
	TenantID        *string  `json:"tenant_id" binding:"omitempty,min=1"`
	UnitID          *string  `json:"unit_id" binding:"omitempty,min=1"`
	StartDate       *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	MonthlyRent     *float64 `json:"monthly_rent" binding:"omitempty,gte=0,lte=99999999.99"`
	SecurityDeposit *float64 `json:"security_deposit" binding:"omitempty,gte=0,lte=99999999.99"`
	Status          *string  `json:"status" binding:"omitempty,oneof=upcoming active ended"`
	Notes           *string  `json:"notes" binding:"omitempty,max=5000"`
}

func (r UpdateAgreementRequest) ToInput() (usecase.UpdateAgreementInput, error) {
	errs := InvalidFields{}
	in := usecase.UpdateAgreementInput{
		TenantID:        trimmed(r.TenantID),
		UnitID:          trimmed(r.UnitID),
		StartDate:       parseDate(errs, "start_date", r.StartDate),
		EndDate:         parseDate(errs, "end_date", r.EndDate),
		MonthlyRent:     r.MonthlyRent,
		SecurityDeposit: r.SecurityDeposit,
		Notes:           r.Notes,
	}
	if err := errs.orNil(); err != nil {
		return usecase.UpdateAgreementInput{}, err
	}
	if r.Status != nil {
		s := entities.AgreementStatus(strings.TrimSpace(*r.Status))
		in.Status = &s
	}
	return in, nil
}

type ListAgreementsQuery struct {
	Status   string `form:"status"`
	TenantID string `form:"tenant_id"`
	UnitID   string `form:"unit_id"`
}

func (q ListAgreementsQuery) ToQuery() usecase.AgreementQuery {
	return usecase.AgreementQuery{
		Status:   strings.TrimSpace(q.Status),
		TenantID: strings.TrimSpace(q.TenantID),
		UnitID:   strings.TrimSpace(q.UnitID),
	}
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
