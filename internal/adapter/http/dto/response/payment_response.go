package response

import (
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

type PaymentAgreementSummary struct {
	ID          string  `json:"id"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	MonthlyRent float64 `json:"monthly_rent"`
	Status      string  `json:"status"`
}

type PaymentResponse struct {
	ID            string                   `json:"id"`
	AgreementID   string                   `json:"agreement_id"`
	UserID        string                   `json:"user_id"`
	TenantID      string                   `json:"tenant_id"`
	UnitID        string                   `json:"unit_id"`
	BillingMonth  string                   `json:"billing_month"`
	AmountDue     float64                  `json:"amount_due"`
	AmountPaid    float64                  `json:"amount_paid"`
	Status        string                   `json:"status"`
	PaymentDate   *string                  `json:"payment_date"`
	PaymentMethod *string                  `json:"payment_method"`
	Notes         *string                  `json:"notes"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
	Tenant        *entities.Tenant         `json:"tenant,omitempty"`
	Unit          *entities.Unit           `json:"unit,omitempty"`
	Agreement     *PaymentAgreementSummary `json:"agreement,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	res := PaymentResponse{
		ID:            p.ID,
		AgreementID:   p.AgreementID,
		UserID:        p.UserID,
		TenantID:      p.TenantID,
		UnitID:        p.UnitID,
		BillingMonth:  p.BillingMonth.Format(dateLayout),
		AmountDue:     p.AmountDue,
		AmountPaid:    p.AmountPaid,
		Status:        string(p.Status),
		PaymentDate:   formatDate(p.PaymentDate),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Tenant:        p.Tenant,
		Unit:          p.Unit,
	}
	if a := p.Agreement; a != nil {
		res.Agreement = &PaymentAgreementSummary{
			ID:          a.ID,
			StartDate:   a.StartDate.Format(dateLayout),
			EndDate:     formatDate(a.EndDate),
			MonthlyRent: a.MonthlyRent,
			Status:      string(a.Status),
		}
	}
	return res
}

// OutstandingPaymentResponse adds the unpaid balance, which is never stored.
type OutstandingPaymentResponse struct {
	PaymentResponse
	Remaining float64 `json:"remaining"`
}

func FromOutstandingPayment(p entities.Payment) OutstandingPaymentResponse {
	return OutstandingPaymentResponse{PaymentResponse: FromPayment(p), Remaining: p.Remaining()}
}

type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Paginated is the {data, meta} envelope of every paged listing.
type Paginated[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

func FromPage[E, T any](p entities.Page[E], conv func(E) T) Paginated[T] {
	data := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		data = append(data, conv(item))
	}
	return Paginated[T]{
		Data: data,
		Meta: PageMeta{
			CurrentPage: p.CurrentPage,
			LastPage:    p.LastPage,
			PerPage:     p.PerPage,
			Total:       p.Total,
		},
	}
}
