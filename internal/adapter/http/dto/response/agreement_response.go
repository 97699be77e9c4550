package response

import (
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type AgreementResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	TenantID        string           `json:"tenant_id"`
	UnitID          string           `json:"unit_id"`
	StartDate       string           `json:"start_date"`
	EndDate         *string          `json:"end_date"`
	EndDateActual   *string          `json:"end_date_actual"`
	MonthlyRent     float64          `json:"monthly_rent"`
	SecurityDeposit float64          `json:"security_deposit"`
	Status          string           `json:"status"`
	Notes           *string          `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Tenant          *entities.Tenant `json:"tenant,omitempty"`
	Unit            *entities.Unit   `json:"unit,omitempty"`

	// Payments is only present on show and update; it renders [] when empty.
	Payments *[]PaymentResponse `json:"payments,omitempty"`
}

func FromAgreement(a entities.RentalAgreement) AgreementResponse {
	res := AgreementResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		TenantID:        a.TenantID,
		UnitID:          a.UnitID,
		StartDate:       a.StartDate.Format(dateLayout),
		EndDate:         formatDate(a.EndDate),
		EndDateActual:   formatDate(a.EndDateActual),
		MonthlyRent:     a.MonthlyRent,
		SecurityDeposit: a.SecurityDeposit,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
		Tenant:          a.Tenant,
		Unit:            a.Unit,
	}
	if a.Payments != nil {
		payments := make([]PaymentResponse, 0, len(a.Payments))
		for _, p := range a.Payments {
			payments = append(payments, FromPayment(p))
		}
		res.Payments = &payments
	}
	return res
}

func FromAgreements(items []entities.RentalAgreement) []AgreementResponse {
	out := make([]AgreementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromAgreement(a))
	}
	return out
}

// EndAgreementResponse is the body of the end-agreement action.
type EndAgreementResponse struct {
	Message   string            `json:"message"`
	Agreement AgreementResponse `json:"agreement"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
