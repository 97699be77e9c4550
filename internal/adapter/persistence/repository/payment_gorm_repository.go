package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// PaymentGormRepository persists Payment rows. One row per (agreement_id,
// billing_month) is enforced by idx_payments_agreement_month.
type PaymentGormRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB, log *logger.Logger) *PaymentGormRepository {
	return &PaymentGormRepository{db: db, log: logger.OrNop(log).With("repo", "PaymentGormRepository")}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(p)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Payment{}, mapSQLError(r.db, err, interfaces.ErrUniqueBillingPeriod)
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) Update(ctx context.Context, prev, next entities.Payment) (entities.Payment, error) {
	row := toPaymentRow(next)
	res := r.db.WithContext(ctx).Model(&paymentRow{}).
		Where("id = ? AND user_id = ? AND row_version = ?", prev.ID, prev.UserID, prev.RowVersion).
		Updates(paymentColumns(row))
	if res.Error != nil {
		return entities.Payment{}, mapSQLError(r.db, res.Error, interfaces.ErrUniqueBillingPeriod)
	}
	if res.RowsAffected == 0 {
		r.log.Debug("stale payment write", "payment_id", prev.ID, "row_version", prev.RowVersion)
		return entities.Payment{}, interfaces.ErrStaleWrite
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, userID, id string) (entities.Payment, error) {
	var row paymentRow
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&row)
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) FindByAgreementMonth(ctx context.Context, agreementID string, billingMonth time.Time) (entities.Payment, error) {
	var row paymentRow
	err := r.db.WithContext(ctx).
		Where("agreement_id = ? AND billing_month = ?", agreementID, entities.MonthStart(billingMonth)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRow(row), nil
}

func (r *PaymentGormRepository) List(ctx context.Context, filter entities.PaymentFilter) ([]entities.Payment, error) {
	if filter.UnitIDs != nil && len(filter.UnitIDs) == 0 {
		return []entities.Payment{}, nil
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.AgreementID != "" {
		q = q.Where("agreement_id = ?", filter.AgreementID)
	}
	if filter.TenantID != "" {
		q = q.Where("tenant_id = ?", filter.TenantID)
	}
	if len(filter.UnitIDs) > 0 {
		q = q.Where("unit_id IN ?", filter.UnitIDs)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status IN ?", statuses)
	}
	if filter.BillingFrom != nil {
		q = q.Where("billing_month >= ?", entities.DateOnly(*filter.BillingFrom))
	}
	if filter.BillingTo != nil {
		q = q.Where("billing_month <= ?", entities.DateOnly(*filter.BillingTo))
	}

	var rows []paymentRow
	if err := q.Order("billing_month DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromPaymentRow(row))
	}
	return out, nil
}
