package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

// SQL schema. buildings, units and tenants are owned by the building management
// service; they are migrated here so local and test databases are complete.

type buildingRow struct {
	ID          string `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID      string `gorm:"column:user_id;type:varchar(36);not null;index"`
	Name        string `gorm:"column:name;not null"`
	Address     string `gorm:"column:address;not null"`
	City        string `gorm:"column:city"`
	State       string `gorm:"column:state"`
	ZipCode     string `gorm:"column:zip_code"`
	TotalFloors *int   `gorm:"column:total_floors"`
}

func (buildingRow) TableName() string { return "buildings" }

type unitRow struct {
	ID         string  `gorm:"column:id;primaryKey;type:varchar(36)"`
	BuildingID string  `gorm:"column:building_id;type:varchar(36);not null;index"`
	UnitNumber string  `gorm:"column:unit_number;not null"`
	Floor      *int    `gorm:"column:floor"`
	Type       string  `gorm:"column:type"`
	RentAmount float64 `gorm:"column:rent_amount;type:decimal(10,2);not null;default:0"`
	Status     string  `gorm:"column:status;type:varchar(16);not null;default:vacant"`
}

func (unitRow) TableName() string { return "units" }

type tenantRow struct {
	ID       string `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID   string `gorm:"column:user_id;type:varchar(36);not null;index"`
	Name     string `gorm:"column:name;not null"`
	Phone    string `gorm:"column:phone;not null"`
	Whatsapp string `gorm:"column:whatsapp"`
	Email    string `gorm:"column:email"`
	Address  string `gorm:"column:address"`
}

func (tenantRow) TableName() string { return "tenants" }

type agreementRow struct {
	ID              string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	UserID          string     `gorm:"column:user_id;type:varchar(36);not null;index"`
	TenantID        string     `gorm:"column:tenant_id;type:varchar(36);not null;index"`
	UnitID          string     `gorm:"column:unit_id;type:varchar(36);not null;index"`
	StartDate       time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate         *time.Time `gorm:"column:end_date;type:date;index"`
	EndDateActual   *time.Time `gorm:"column:end_date_actual;type:date"`
	MonthlyRent     float64    `gorm:"column:monthly_rent;type:decimal(10,2);not null"`
	SecurityDeposit float64    `gorm:"column:security_deposit;type:decimal(10,2);not null;default:0"`
	Status          string     `gorm:"column:status;type:varchar(16);not null;index"`
	Notes           *string    `gorm:"column:notes;type:text"`
	RowVersion      int64      `gorm:"column:row_version;not null;default:1"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (agreementRow) TableName() string { return "rental_agreements" }

type paymentRow struct {
	ID            string     `gorm:"column:id;primaryKey;type:varchar(36)"`
	AgreementID   string     `gorm:"column:agreement_id;type:varchar(36);not null;uniqueIndex:idx_payments_agreement_month,priority:1"`
	UserID        string     `gorm:"column:user_id;type:varchar(36);not null;index"`
	TenantID      string     `gorm:"column:tenant_id;type:varchar(36);not null;index"`
	UnitID        string     `gorm:"column:unit_id;type:varchar(36);not null;index"`
	BillingMonth  time.Time  `gorm:"column:billing_month;type:date;not null;uniqueIndex:idx_payments_agreement_month,priority:2;index"`
	AmountDue     float64    `gorm:"column:amount_due;type:decimal(10,2);not null;default:0"`
	AmountPaid    float64    `gorm:"column:amount_paid;type:decimal(10,2);not null;default:0"`
	Status        string     `gorm:"column:status;type:varchar(16);not null;index"`
	PaymentDate   *time.Time `gorm:"column:payment_date;type:date"`
	PaymentMethod *string    `gorm:"column:payment_method;type:varchar(50)"`
	Notes         *string    `gorm:"column:notes;type:text"`
	RowVersion    int64      `gorm:"column:row_version;not null;default:1"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (paymentRow) TableName() string { return "payments" }

// activeAgreementIndex enforces one live agreement per unit. gorm tags cannot
// express a partial index, so it is created by hand; the WHERE clause is valid
// for both PostgreSQL and SQLite.
const activeAgreementIndex = `CREATE UNIQUE INDEX IF NOT EXISTS rental_agreements_one_active_per_unit
ON rental_agreements (unit_id)
WHERE status = 'active' AND end_date_actual IS NULL`

// MigrateSQL creates or updates every table the SQL store uses.
func MigrateSQL(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&buildingRow{},
		&unitRow{},
		&tenantRow{},
		&agreementRow{},
		&paymentRow{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(activeAgreementIndex).Error; err != nil {
		return fmt.Errorf("create rental_agreements_one_active_per_unit: %w", err)
	}
	return nil
}

func toAgreementRow(a entities.RentalAgreement) agreementRow {
	return agreementRow{
		ID:              a.ID,
		UserID:          a.UserID,
		TenantID:        a.TenantID,
		UnitID:          a.UnitID,
		StartDate:       a.StartDate.UTC(),
		EndDate:         utcPtr(a.EndDate),
		EndDateActual:   utcPtr(a.EndDateActual),
		MonthlyRent:     a.MonthlyRent,
		SecurityDeposit: a.SecurityDeposit,
		Status:          string(a.Status),
		Notes:           a.Notes,
		RowVersion:      a.RowVersion,
		CreatedAt:       a.CreatedAt.UTC(),
		UpdatedAt:       a.UpdatedAt.UTC(),
	}
}

func fromAgreementRow(r agreementRow) entities.RentalAgreement {
	return entities.RentalAgreement{
		ID:              r.ID,
		UserID:          r.UserID,
		TenantID:        r.TenantID,
		UnitID:          r.UnitID,
		StartDate:       entities.DateOnly(r.StartDate),
		EndDate:         datePtr(r.EndDate),
		EndDateActual:   datePtr(r.EndDateActual),
		MonthlyRent:     r.MonthlyRent,
		SecurityDeposit: r.SecurityDeposit,
		Status:          entities.AgreementStatus(r.Status),
		Notes:           r.Notes,
		RowVersion:      r.RowVersion,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}
}

// agreementColumns lists every mutable column, so zero values are written too.
func agreementColumns(r agreementRow) map[string]interface{} {
	return map[string]interface{}{
		"tenant_id":        r.TenantID,
		"unit_id":          r.UnitID,
		"start_date":       r.StartDate,
		"end_date":         r.EndDate,
		"end_date_actual":  r.EndDateActual,
		"monthly_rent":     r.MonthlyRent,
		"security_deposit": r.SecurityDeposit,
		"status":           r.Status,
		"notes":            r.Notes,
		"row_version":      r.RowVersion,
		"updated_at":       r.UpdatedAt,
	}
}

func toPaymentRow(p entities.Payment) paymentRow {
	return paymentRow{
		ID:            p.ID,
		AgreementID:   p.AgreementID,
		UserID:        p.UserID,
		TenantID:      p.TenantID,
		UnitID:        p.UnitID,
		BillingMonth:  entities.MonthStart(p.BillingMonth),
		AmountDue:     p.AmountDue,
		AmountPaid:    p.AmountPaid,
		Status:        string(p.Status),
		PaymentDate:   utcPtr(p.PaymentDate),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		RowVersion:    p.RowVersion,
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func fromPaymentRow(r paymentRow) entities.Payment {
	return entities.Payment{
		ID:            r.ID,
		AgreementID:   r.AgreementID,
		UserID:        r.UserID,
		TenantID:      r.TenantID,
		UnitID:        r.UnitID,
		BillingMonth:  entities.MonthStart(r.BillingMonth),
		AmountDue:     r.AmountDue,
		AmountPaid:    r.AmountPaid,
		Status:        entities.PaymentStatus(r.Status),
		PaymentDate:   datePtr(r.PaymentDate),
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
		RowVersion:    r.RowVersion,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

func paymentColumns(r paymentRow) map[string]interface{} {
	return map[string]interface{}{
		"billing_month":  r.BillingMonth,
		"amount_due":     r.AmountDue,
		"amount_paid":    r.AmountPaid,
		"status":         r.Status,
		"payment_date":   r.PaymentDate,
		"payment_method": r.PaymentMethod,
		"notes":          r.Notes,
		"row_version":    r.RowVersion,
		"updated_at":     r.UpdatedAt,
	}
}

func fromBuildingRow(r buildingRow) entities.Building {
	return entities.Building{
		ID:          r.ID,
		UserID:      r.UserID,
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		TotalFloors: r.TotalFloors,
	}
}

func fromUnitRow(r unitRow) entities.Unit {
	return entities.Unit{
		ID:         r.ID,
		BuildingID: r.BuildingID,
		UnitNumber: r.UnitNumber,
		Floor:      r.Floor,
		Type:       r.Type,
		RentAmount: r.RentAmount,
		Status:     entities.UnitStatus(r.Status),
	}
}

func fromTenantRow(r tenantRow) entities.Tenant {
	return entities.Tenant{
		ID:       r.ID,
		UserID:   r.UserID,
		Name:     r.Name,
		Phone:    r.Phone,
		Whatsapp: r.Whatsapp,
		Email:    r.Email,
		Address:  r.Address,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entities.DateOnly(*t)
	return &d
}
