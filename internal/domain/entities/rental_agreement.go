package entities

import "time"

// AgreementStatus represents the lifecycle of a rental agreement.
//
// Domain notes:
//   - upcoming: start date still in the future, the unit is untouched.
//   - active: the tenant occupies the unit.
//   - ended: terminal; end_date_actual records when the tenancy stopped.
type AgreementStatus string

const (
	AgreementStatusUpcoming AgreementStatus = "upcoming"
	AgreementStatusActive   AgreementStatus = "active"
	AgreementStatusEnded    AgreementStatus = "ended"
)

func (s AgreementStatus) Valid() bool {
	switch s {
	case AgreementStatusUpcoming, AgreementStatusActive, AgreementStatusEnded:
		return true
	}
	return false
}

// RentalAgreement binds one tenant to one unit for a period of time.
//
// Storage model:
//   - PK: id
//   - owner scoped by user_id
//   - at most one row per unit_id may be live (status=active, end_date_actual unset);
//     SQL stores enforce it with a partial unique index, DynamoDB with a guard item.
//
// Dates (StartDate, EndDate, EndDateActual) are calendar dates kept at UTC midnight.
type RentalAgreement struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TenantID        string          `json:"tenant_id"`
	UnitID          string          `json:"unit_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	EndDateActual   *time.Time      `json:"end_date_actual,omitempty"`
	MonthlyRent     float64         `json:"monthly_rent"`
	SecurityDeposit float64         `json:"security_deposit"`
	Status          AgreementStatus `json:"status"`
	Notes           *string         `json:"notes,omitempty"`
	RowVersion      int64           `json:"row_version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations expanded by the use cases for responses.
	Tenant *Tenant `json:"tenant,omitempty"`
	Unit   *Unit   `json:"unit,omitempty"`

	// Payments is nil unless loaded; loaded and empty is a non-nil empty slice.
	Payments []Payment `json:"payments,omitempty"`
}

// IsLive reports whether the agreement currently holds its unit.
func (a RentalAgreement) IsLive() bool {
	return a.Status == AgreementStatusActive && a.EndDateActual == nil
}

// StartsAfter reports whether the agreement start date lies after now.
func (a RentalAgreement) StartsAfter(now time.Time) bool {
	return a.StartDate.After(now)
}

// AgreementFilter narrows agreement listings. UserID is mandatory.
type AgreementFilter struct {
	UserID   string
	Status   AgreementStatus
	TenantID string
	UnitID   string

	// EndDateFrom/EndDateTo bound end_date inclusively; agreements without an
	// end_date never match when either bound is set.
	EndDateFrom *time.Time
	EndDateTo   *time.Time
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
