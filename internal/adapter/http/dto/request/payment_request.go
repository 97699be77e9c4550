package request

import (
	"strings"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

// CreatePaymentRequest accepts billing_month as YYYY-MM or as any date in the
// month (YYYY-MM-DD).
type CreatePaymentRequest struct {
	AgreementID   string   `json:"agreement_id" binding:"required"`
	BillingMonth  string   `json:"billing_month" binding:"required"`
	AmountDue     *float64 `json:"amount_due" binding:"required,gte=0,lte=99999999.99"`
	AmountPaid    *float64 `json:"amount_paid" binding:"omitempty,gte=0,lte=99999999.99"`
	PaymentDate   *string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,max=50"`
	Notes         *string  `json:"notes" binding:"omitempty,max=5000"`
}

func (r CreatePaymentRequest) ToInput() (usecase.CreatePaymentInput, error) {
	errs := InvalidFields{}
	month := parseMonth(errs, "billing_month", &r.BillingMonth)
	paidOn := parseDate(errs, "payment_date", r.PaymentDate)
	if err := errs.orNil(); err != nil {
		return usecase.CreatePaymentInput{}, err
	}

	in := usecase.CreatePaymentInput{
		AgreementID:   strings.TrimSpace(r.AgreementID),
		PaymentDate:   paidOn,
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
	if month != nil {
		in.BillingMonth = *month
	}
	if r.AmountDue != nil {
		in.AmountDue = *r.AmountDue
	}
	if r.AmountPaid != nil {
		in.AmountPaid = *r.AmountPaid
	}
	return in, nil
}

type UpdatePaymentRequest struct {
	BillingMonth  *string  `json:"billing_month"`
	AmountDue     *float64 `json:"amount_due" binding:"omitempty,gte=0,lte=99999999.99"`
	AmountPaid    *float64 `json:"amount_paid" binding:"omitempty,gte=0,lte=99999999.99"`
	PaymentDate   *string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,max=50"`
	Notes         *string  `json:"notes" binding:"omitempty,max=5000"`
}

func (r UpdatePaymentRequest) ToInput() (usecase.UpdatePaymentInput, error) {
	errs := InvalidFields{}
	in := usecase.UpdatePaymentInput{
		BillingMonth:  parseMonth(errs, "billing_month", r.BillingMonth),
		AmountDue:     r.AmountDue,
		AmountPaid:    r.AmountPaid,
		PaymentDate:   parseDate(errs, "payment_date", r.PaymentDate),
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
	if err := errs.orNil(); err != nil {
		return usecase.UpdatePaymentInput{}, err
	}
	return in, nil
}

type ListPaymentsQuery struct {
	TenantID   string `form:"tenant_id"`
	BuildingID string `form:"building_id"`
	UnitID     string `form:"unit_id"`
	Month      string `form:"month"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

func (q ListPaymentsQuery) ToQuery() usecase.PaymentQuery {
	return usecase.PaymentQuery{
		TenantID:   strings.TrimSpace(q.TenantID),
		BuildingID: strings.TrimSpace(q.BuildingID),
		UnitID:     strings.TrimSpace(q.UnitID),
		Month:      strings.TrimSpace(q.Month),
		Status:     strings.TrimSpace(q.Status),
		Page:       q.Page,
		PerPage:    q.PerPage,
	}
}

type OutstandingQuery struct {
	BuildingID string `form:"building_id"`
	TenantID   string `form:"tenant_id"`
	Month      string `form:"month"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

func (q OutstandingQuery) ToQuery() usecase.OutstandingQuery {
	return usecase.OutstandingQuery{
		BuildingID: strings.TrimSpace(q.BuildingID),
		TenantID:   strings.TrimSpace(q.TenantID),
		Month:      strings.TrimSpace(q.Month),
		Page:       q.Page,
		PerPage:    q.PerPage,
	}
}

func parseMonth(errs map[string]string, field string, v *string) *time.Time {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	for _, layout := range []string{dateLayout, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	errs[field] = "The " + strings.ReplaceAll(field, "_", " ") + " field must be a month (YYYY-MM) or a date (YYYY-MM-DD)."
	return nil
}
