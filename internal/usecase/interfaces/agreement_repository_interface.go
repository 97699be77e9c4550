package interfaces

import (
	"context"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

// IAgreementRepository abstracts persistence for RentalAgreement.
//
// Write methods are atomic: the agreement row, the unit status updates and any
// uniqueness bookkeeping commit together or not at all.
//
// Reads return a zero-value agreement (empty ID) when nothing matches.
type IAgreementRepository interface {
	Create(ctx context.Context, a entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error)
	// Update writes next if the stored row still carries prev.RowVersion.
	Update(ctx context.Context, prev, next entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error)
	GetByID(ctx context.Context, userID, id string) (entities.RentalAgreement, error)
	// FindLiveByUnit returns the live agreement holding unitID, if any.
	FindLiveByUnit(ctx context.Context, unitID string) (entities.RentalAgreement, error)
	List(ctx context.Context, filter entities.AgreementFilter) ([]entities.RentalAgreement, error)
}
