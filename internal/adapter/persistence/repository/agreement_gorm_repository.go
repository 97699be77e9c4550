package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// AgreementGormRepository persists RentalAgreement rows in PostgreSQL or SQLite.
// The live-agreement rule is backed by rental_agreements_one_active_per_unit.
type AgreementGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ interfaces.IAgreementRepository = (*AgreementGormRepository)(nil)

func NewAgreementGormRepository(db *gorm.DB, log *logger.Logger) *AgreementGormRepository {
	return &AgreementGormRepository{db: db, log: logger.OrNop(log).With("repo", "AgreementGormRepository")}
}

func (r *AgreementGormRepository) Create(ctx context.Context, a entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
	row := toAgreementRow(a)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return applyUnitStatuses(tx, units)
	})
	if err != nil {
		return entities.RentalAgreement{}, mapSQLError(r.db, err, interfaces.ErrUniqueActiveAgreement)
	}
	return fromAgreementRow(row), nil
}

func (r *AgreementGormRepository) Update(ctx context.Context, prev, next entities.RentalAgreement, units []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
	row := toAgreementRow(next)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&agreementRow{}).
			Where("id = ? AND user_id = ? AND row_version = ?", prev.ID, prev.UserID, prev.RowVersion).
			Updates(agreementColumns(row))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			r.log.Debug("stale agreement write", "agreement_id", prev.ID, "row_version", prev.RowVersion)
			return interfaces.ErrStaleWrite
		}
		return applyUnitStatuses(tx, units)
	})
	if err != nil {
		return entities.RentalAgreement{}, mapSQLError(r.db, err, interfaces.ErrUniqueActiveAgreement)
	}
	return fromAgreementRow(row), nil
}

func (r *AgreementGormRepository) GetByID(ctx context.Context, userID, id string) (entities.RentalAgreement, error) {
	var row agreementRow
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return entities.RentalAgreement{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.RentalAgreement{}, nil
	}
	return fromAgreementRow(row), nil
}

func (r *AgreementGormRepository) FindLiveByUnit(ctx context.Context, unitID string) (entities.RentalAgreement, error) {
	var row agreementRow
	res := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ? AND end_date_actual IS NULL", unitID, string(entities.AgreementStatusActive)).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return entities.RentalAgreement{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.RentalAgreement{}, nil
	}
	return fromAgreementRow(row), nil
}

func (r *AgreementGormRepository) List(ctx context.Context, filter entities.AgreementFilter) ([]entities.RentalAgreement, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.TenantID != "" {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.UnitID != "" {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.EndDateFrom != nil {
		q = q.Where("end_date >= ?", entities.DateOnly(*filter.EndDateFrom))
	}
	if filter.EndDateTo != nil {
		q = q.Where("end_date <= ?", entities.DateOnly(*filter.EndDateTo))
	}

	var rows []agreementRow
	if err := q.Order("start_date DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.RentalAgreement, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromAgreementRow(row))
	}
	return out, nil
}

func applyUnitStatuses(tx *gorm.DB, units []entities.UnitStatusUpdate) error {
	for _, u := range units {
		if err := tx.Model(&unitRow{}).Where("id = ?", u.UnitID).Update("status", string(u.Status)).Error; err != nil {
			return err
		}
	}
	return nil
}
