package interfaces

import (
	"context"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment ledger rows.
//
// Create and Update enforce the (agreement_id, billing_month) uniqueness at the
// storage layer and report violations as ErrUniqueBillingPeriod.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	Update(ctx context.Context, prev, next entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, userID, id string) (entities.Payment, error)
	FindByAgreementMonth(ctx context.Context, agreementID string, billingMonth time.Time) (entities.Payment, error)
	// List returns matching rows ordered by billing_month descending.
	List(ctx context.Context, filter entities.PaymentFilter) ([]entities.Payment, error)
}
