package entities

import (
	"math"
	"time"
)

// PaymentStatus is the settlement classification of a ledger row. It is never
// set directly; see DerivePaymentStatus.
type PaymentStatus string

const (
	PaymentStatusZeroDue  PaymentStatus = "zero-due"
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusOverpaid PaymentStatus = "overpaid"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusZeroDue, PaymentStatusUnpaid, PaymentStatusPartial, PaymentStatusPaid, PaymentStatusOverpaid:
		return true
	}
	return false
}

// OutstandingStatuses are the statuses listed by the outstanding report.
var OutstandingStatuses = []PaymentStatus{PaymentStatusUnpaid, PaymentStatusPartial}

// DerivePaymentStatus classifies a ledger row. Rules are evaluated in order and
// amounts are compared in cents.
func DerivePaymentStatus(amountDue, amountPaid float64) PaymentStatus {
	due, paid := toCents(amountDue), toCents(amountPaid)
	switch {
	case due <= 0 && paid <= 0:
		return PaymentStatusZeroDue
	case paid <= 0:
		return PaymentStatusUnpaid
	case paid < due:
		return PaymentStatusPartial
	case paid == due:
		return PaymentStatusPaid
	default:
		return PaymentStatusOverpaid
	}
}

// MaxMoney is the largest amount a decimal(10,2) money column holds.
const MaxMoney = 99999999.99

// toCents saturates instead of wrapping around for amounts outside int64.
func toCents(v float64) int64 {
	c := math.Round(v * 100)
	switch {
	case c >= math.MaxInt64:
		return math.MaxInt64
	case c <= math.MinInt64:
		return math.MinInt64
	}
	return int64(c)
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(v float64) float64 {
	return float64(toCents(v)) / 100
}

// Payment is one rent charge/collection for an agreement and billing month.
//
// Storage model:
//   - PK: id
//   - unique (agreement_id, billing_month)
//   - TenantID and UnitID are copied from the agreement at creation.
type Payment struct {
	ID            string        `json:"id"`
	AgreementID   string        `json:"agreement_id"`
	UserID        string        `json:"user_id"`
	TenantID      string        `json:"tenant_id"`
	UnitID        string        `json:"unit_id"`
	BillingMonth  time.Time     `json:"billing_month"`
	AmountDue     float64       `json:"amount_due"`
	AmountPaid    float64       `json:"amount_paid"`
	Status        PaymentStatus `json:"status"`
	PaymentDate   *time.Time    `json:"payment_date,omitempty"`
	PaymentMethod *string       `json:"payment_method,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
	RowVersion    int64         `json:"row_version"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Tenant    *Tenant          `json:"tenant,omitempty"`
	Unit      *Unit            `json:"unit,omitempty"`
	Agreement *RentalAgreement `json:"agreement,omitempty"`
}

// Remaining is the unpaid balance, computed at read time and never stored.
func (p Payment) Remaining() float64 {
	return RoundMoney(p.AmountDue - p.AmountPaid)
}

// Refresh recomputes the derived status from the current amounts.
func (p *Payment) Refresh() {
	p.Status = DerivePaymentStatus(p.AmountDue, p.AmountPaid)
}

// MonthStart normalizes t to the first day of its month at midnight UTC.
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey is the "YYYY-MM" bucket of t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PaymentFilter narrows payment listings. UserID is mandatory; UnitIDs, when
// non-nil, restricts rows to those units (an empty non-nil slice matches nothing).
type PaymentFilter struct {
	UserID      string
	AgreementID string
	TenantID    string
	UnitIDs     []string
	Statuses    []PaymentStatus

	// BillingFrom/BillingTo bound billing_month inclusively.
	BillingFrom *time.Time
	BillingTo   *time.Time
}
