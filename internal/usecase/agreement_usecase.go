package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

// CreateAgreementInput is the validated shape of a new agreement request.
type CreateAgreementInput struct {
	TenantID        string
	UnitID          string
	StartDate       time.Time
	EndDate         *time.Time
	MonthlyRent     float64
	SecurityDeposit *float64
	Notes           *string
}

// UpdateAgreementInput applies only the non-nil fields.
type UpdateAgreementInput struct {
	TenantID        *string
	UnitID          *string
	StartDate       *time.Time
	EndDate         *time.Time
	MonthlyRent     *float64
	SecurityDeposit *float64
	Status          *entities.AgreementStatus
	Notes           *string
}

type AgreementQuery struct {
	Status   string
	TenantID string
	UnitID   string
}

// IAgreementUseCase drives the rental agreement state machine.
//
// Unit occupancy follows the agreement:
//   - becoming live (active, no end_date_actual) marks the unit occupied;
//   - ending, or leaving a unit, marks it vacant unless another live agreement holds it;
//   - upcoming agreements never touch the unit.
type IAgreementUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateAgreementInput) (entities.RentalAgreement, error)
	Update(ctx context.Context, actor entities.Actor, id string, in UpdateAgreementInput) (entities.RentalAgreement, error)
	End(ctx context.Context, actor entities.Actor, id string) (entities.RentalAgreement, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.RentalAgreement, error)
	List(ctx context.Context, actor entities.Actor, q AgreementQuery) ([]entities.RentalAgreement, error)
}

type AgreementUseCase struct {
	repo     interfaces.IAgreementRepository
	payments interfaces.IPaymentRepository
	props    interfaces.IPropertyRepository
	loc      *time.Location
	now      func() time.Time
	log      *logger.Logger
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

// NewAgreementUseCase builds the use case. loc decides which calendar day "today"
// is; nil means UTC.
func NewAgreementUseCase(repo interfaces.IAgreementRepository, payments interfaces.IPaymentRepository, props interfaces.IPropertyRepository, loc *time.Location, log *logger.Logger) *AgreementUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &AgreementUseCase{
		repo:     repo,
		payments: payments,
		props:    props,
		loc:      loc,
		now:      time.Now,
		log:      logger.OrNop(log).With("component", "AgreementUseCase"),
	}
}

func (u *AgreementUseCase) today() time.Time {
	return entities.DateOnly(u.now().In(u.loc))
}

func (u *AgreementUseCase) Create(ctx context.Context, actor entities.Actor, in CreateAgreementInput) (entities.RentalAgreement, error) {
	if !actor.Valid() {
		return entities.RentalAgreement{}, ErrForbidden
	}

	in.TenantID = strings.TrimSpace(in.TenantID)
	in.UnitID = strings.TrimSpace(in.UnitID)

	fe := fieldErrors{}
	if in.TenantID == "" {
		fe.add("tenant_id", "The tenant id field is required.")
	}
	if in.UnitID == "" {
		fe.add("unit_id", "The unit id field is required.")
	}
	if in.StartDate.IsZero() {
		fe.add("start_date", "The start date field is required.")
	}
	if in.EndDate != nil && !in.StartDate.IsZero() && entities.DateOnly(*in.EndDate).Before(entities.DateOnly(in.StartDate)) {
		fe.add("end_date", "The end date must be a date after or equal to start date.")
	}
	fe.money("monthly_rent", in.MonthlyRent)
	deposit := 0.0
	if in.SecurityDeposit != nil {
		deposit = *in.SecurityDeposit
		fe.money("security_deposit", deposit)
	}
	if err := fe.err(); err != nil {
		return entities.RentalAgreement{}, err
	}

	tenant, unit, err := u.resolveParties(ctx, actor, in.TenantID, in.UnitID)
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	today := u.today()
	now := u.now().UTC()
	a := entities.RentalAgreement{
		ID:              uuid.NewString(),
		UserID:          actor.UserID,
		TenantID:        tenant.ID,
		UnitID:          unit.ID,
		StartDate:       entities.DateOnly(in.StartDate),
		MonthlyRent:     entities.RoundMoney(in.MonthlyRent),
		SecurityDeposit: entities.RoundMoney(deposit),
		Status:          entities.AgreementStatusActive,
		Notes:           in.Notes,
		RowVersion:      1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.EndDate != nil {
		end := entities.DateOnly(*in.EndDate)
		a.EndDate = &end
	}
	if a.StartsAfter(today) {
		a.Status = entities.AgreementStatusUpcoming
	}

	holder, err := u.repo.FindLiveByUnit(ctx, a.UnitID)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	if holder.ID != "" {
		return entities.RentalAgreement{}, ErrUnitHasActiveAgreement
	}

	var units []entities.UnitStatusUpdate
	if a.IsLive() {
		units = append(units, entities.UnitStatusUpdate{UnitID: a.UnitID, Status: entities.UnitStatusOccupied})
	}

	created, err := u.repo.Create(ctx, a, units)
	if err != nil {
		return entities.RentalAgreement{}, u.translateWriteError(err)
	}
	u.log.Info("agreement created", "agreement_id", created.ID, "unit_id", created.UnitID, "status", created.Status)

	if len(units) > 0 {
		unit.Status = entities.UnitStatusOccupied
	}
	created.Tenant = &tenant
	created.Unit = &unit
	return created, nil
}

func (u *AgreementUseCase) Update(ctx context.Context, actor entities.Actor, id string, in UpdateAgreementInput) (entities.RentalAgreement, error) {
	existing, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	fe := fieldErrors{}
	if in.Status != nil && !in.Status.Valid() {
		fe.add("status", "The selected status is invalid.")
	}
	if in.MonthlyRent != nil {
		fe.money("monthly_rent", *in.MonthlyRent)
	}
	if in.SecurityDeposit != nil {
		fe.money("security_deposit", *in.SecurityDeposit)
	}
	if in.TenantID != nil && strings.TrimSpace(*in.TenantID) == "" {
		fe.add("tenant_id", "The tenant id field must not be empty.")
	}
	if in.UnitID != nil && strings.TrimSpace(*in.UnitID) == "" {
		fe.add("unit_id", "The unit id field must not be empty.")
	}
	if err := fe.err(); err != nil {
		return entities.RentalAgreement{}, err
	}

	next := existing
	if in.TenantID != nil && strings.TrimSpace(*in.TenantID) != existing.TenantID {
		tenant, err := u.resolveTenant(ctx, actor, strings.TrimSpace(*in.TenantID))
		if err != nil {
			return entities.RentalAgreement{}, err
		}
		next.TenantID = tenant.ID
	}
	if in.UnitID != nil && strings.TrimSpace(*in.UnitID) != existing.UnitID {
		unit, err := u.resolveUnit(ctx, actor, strings.TrimSpace(*in.UnitID))
		if err != nil {
			return entities.RentalAgreement{}, err
		}
		next.UnitID = unit.ID
	}
	if in.Status != nil && existing.Status == entities.AgreementStatusEnded && *in.Status != entities.AgreementStatusEnded {
		return entities.RentalAgreement{}, newValidationError("status", "An ended agreement cannot be reopened.")
	}
	if in.StartDate != nil {
		next.StartDate = entities.DateOnly(*in.StartDate)
	}
	if in.EndDate != nil {
		end := entities.DateOnly(*in.EndDate)
		next.EndDate = &end
	}
	if next.EndDate != nil && next.EndDate.Before(next.StartDate) {
		return entities.RentalAgreement{}, newValidationError("end_date", "The end date must be a date after or equal to start date.")
	}
	if in.MonthlyRent != nil {
		next.MonthlyRent = entities.RoundMoney(*in.MonthlyRent)
	}
	if in.SecurityDeposit != nil {
		next.SecurityDeposit = entities.RoundMoney(*in.SecurityDeposit)
	}
	if in.Notes != nil {
		next.Notes = in.Notes
	}
	if in.Status != nil {
		next.Status = *in.Status
	}

	saved, err := u.transition(ctx, existing, next)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	saved, err = u.expand(ctx, saved)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return u.withPayments(ctx, saved)
}

// End is idempotent: a second call keeps the original end_date_actual.
func (u *AgreementUseCase) End(ctx context.Context, actor entities.Actor, id string) (entities.RentalAgreement, error) {
	existing, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	next := existing
	next.Status = entities.AgreementStatusEnded
	saved, err := u.transition(ctx, existing, next)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return u.expand(ctx, saved)
}

// GetByID promotes an upcoming agreement whose start date has arrived. A
// promotion that loses against another live agreement leaves the row as is.
func (u *AgreementUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.RentalAgreement, error) {
	a, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.RentalAgreement{}, err
	}

	if a.Status == entities.AgreementStatusUpcoming && !a.StartsAfter(u.today()) {
		promoted, err := u.transition(ctx, a, a)
		var conflict *ConflictError
		switch {
		case err == nil:
			a = promoted
		case errors.As(err, &conflict):
			u.log.Warn("lazy promotion skipped", "agreement_id", a.ID, "unit_id", a.UnitID, "reason", conflict.Message)
		default:
			return entities.RentalAgreement{}, err
		}
	}
	a, err = u.expand(ctx, a)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return u.withPayments(ctx, a)
}

func (u *AgreementUseCase) List(ctx context.Context, actor entities.Actor, q AgreementQuery) ([]entities.RentalAgreement, error) {
	if !actor.Valid() {
		return nil, ErrForbidden
	}
	filter := entities.AgreementFilter{
		UserID:   actor.UserID,
		TenantID: strings.TrimSpace(q.TenantID),
		UnitID:   strings.TrimSpace(q.UnitID),
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		status := entities.AgreementStatus(s)
		if !status.Valid() {
			return nil, newValidationError("status", "The selected status is invalid.")
		}
		filter.Status = status
	}

	items, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.expandAll(ctx, items)
}

// transition normalizes next (promotion, end_date_actual), works out the unit
// occupancy changes between prev and next and commits everything at once.
func (u *AgreementUseCase) transition(ctx context.Context, prev, next entities.RentalAgreement) (entities.RentalAgreement, error) {
	today := u.today()
	switch next.Status {
	case entities.AgreementStatusUpcoming:
		if !next.StartsAfter(today) {
			next.Status = entities.AgreementStatusActive
		}
	case entities.AgreementStatusEnded:
		if next.EndDateActual == nil {
			next.EndDateActual = &today
		}
	}

	var units []entities.UnitStatusUpdate
	if next.IsLive() {
		holder, err := u.repo.FindLiveByUnit(ctx, next.UnitID)
		if err != nil {
			return entities.RentalAgreement{}, err
		}
		if holder.ID != "" && holder.ID != next.ID {
			return entities.RentalAgreement{}, ErrUnitHasActiveAgreement
		}
		units = append(units, entities.UnitStatusUpdate{UnitID: next.UnitID, Status: entities.UnitStatusOccupied})
	}

	var release []string
	if next.Status == entities.AgreementStatusEnded {
		release = append(release, next.UnitID)
	}
	if prev.IsLive() && (!next.IsLive() || prev.UnitID != next.UnitID) {
		release = append(release, prev.UnitID)
	}
	for _, unitID := range uniqueStrings(release) {
		if next.IsLive() && unitID == next.UnitID {
			continue
		}
		holder, err := u.repo.FindLiveByUnit(ctx, unitID)
		if err != nil {
			return entities.RentalAgreement{}, err
		}
		if holder.ID != "" && holder.ID != next.ID {
			u.log.Debug("unit kept occupied", "unit_id", unitID, "holder_id", holder.ID)
			continue
		}
		units = append(units, entities.UnitStatusUpdate{UnitID: unitID, Status: entities.UnitStatusVacant})
	}

	next.RowVersion = prev.RowVersion + 1
	next.UpdatedAt = u.now().UTC()
	next.Tenant, next.Unit, next.Payments = nil, nil, nil

	saved, err := u.repo.Update(ctx, prev, next, units)
	if err != nil {
		return entities.RentalAgreement{}, u.translateWriteError(err)
	}
	if prev.Status != saved.Status {
		u.log.Info("agreement transitioned", "agreement_id", saved.ID, "from", prev.Status, "to", saved.Status)
	}
	return saved, nil
}

func (u *AgreementUseCase) translateWriteError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrUniqueActiveAgreement):
		return ErrUnitHasActiveAgreement
	case errors.Is(err, interfaces.ErrStaleWrite):
		return ErrConcurrentModification
	default:
		return err
	}
}

func (u *AgreementUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.RentalAgreement, error) {
	id = strings.TrimSpace(id)
	if !actor.Valid() || id == "" {
		return entities.RentalAgreement{}, ErrNotFound
	}
	a, err := u.repo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	if a.ID == "" || a.UserID != actor.UserID {
		return entities.RentalAgreement{}, ErrNotFound
	}
	return a, nil
}

// resolveParties reports unknown ids as validation errors before checking
// ownership, so a request naming a missing unit never reveals anything else.
func (u *AgreementUseCase) resolveParties(ctx context.Context, actor entities.Actor, tenantID, unitID string) (entities.Tenant, entities.Unit, error) {
	tenant, err := u.props.GetTenant(ctx, tenantID)
	if err != nil {
		return entities.Tenant{}, entities.Unit{}, err
	}
	unit, err := u.props.GetUnit(ctx, unitID)
	if err != nil {
		return entities.Tenant{}, entities.Unit{}, err
	}

	fe := fieldErrors{}
	if tenant.ID == "" {
		fe.add("tenant_id", "The selected tenant id is invalid.")
	}
	if unit.ID == "" {
		fe.add("unit_id", "The selected unit id is invalid.")
	}
	if err := fe.err(); err != nil {
		return entities.Tenant{}, entities.Unit{}, err
	}

	if tenant.UserID != actor.UserID || !unit.OwnedBy(actor.UserID) {
		return entities.Tenant{}, entities.Unit{}, ErrForbidden
	}
	return tenant, unit, nil
}

func (u *AgreementUseCase) resolveTenant(ctx context.Context, actor entities.Actor, id string) (entities.Tenant, error) {
	tenant, err := u.props.GetTenant(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if tenant.ID == "" {
		return entities.Tenant{}, newValidationError("tenant_id", "The selected tenant id is invalid.")
	}
	if tenant.UserID != actor.UserID {
		return entities.Tenant{}, ErrForbidden
	}
	return tenant, nil
}

func (u *AgreementUseCase) resolveUnit(ctx context.Context, actor entities.Actor, id string) (entities.Unit, error) {
	unit, err := u.props.GetUnit(ctx, id)
	if err != nil {
		return entities.Unit{}, err
	}
	if unit.ID == "" {
		return entities.Unit{}, newValidationError("unit_id", "The selected unit id is invalid.")
	}
	if !unit.OwnedBy(actor.UserID) {
		return entities.Unit{}, ErrForbidden
	}
	return unit, nil
}

// withPayments attaches the agreement's ledger rows, newest billing month first.
func (u *AgreementUseCase) withPayments(ctx context.Context, a entities.RentalAgreement) (entities.RentalAgreement, error) {
	rows, err := u.payments.List(ctx, entities.PaymentFilter{UserID: a.UserID, AgreementID: a.ID})
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	if rows == nil {
		rows = []entities.Payment{}
	}
	a.Payments = rows
	return a, nil
}

func (u *AgreementUseCase) expand(ctx context.Context, a entities.RentalAgreement) (entities.RentalAgreement, error) {
	out, err := u.expandAll(ctx, []entities.RentalAgreement{a})
	if err != nil {
		return entities.RentalAgreement{}, err
	}
	return out[0], nil
}

func (u *AgreementUseCase) expandAll(ctx context.Context, items []entities.RentalAgreement) ([]entities.RentalAgreement, error) {
	if len(items) == 0 {
		return items, nil
	}
	tenantIDs := make([]string, 0, len(items))
	unitIDs := make([]string, 0, len(items))
	for _, a := range items {
		tenantIDs = append(tenantIDs, a.TenantID)
		unitIDs = append(unitIDs, a.UnitID)
	}
	rel, err := loadRelations(ctx, u.props, tenantIDs, unitIDs)
	if err != nil {
		return nil, err
	}

	out := make([]entities.RentalAgreement, len(items))
	for i, a := range items {
		a.Tenant = rel.tenant(a.TenantID)
		a.Unit = rel.unit(a.UnitID)
		out[i] = a
	}
	return out, nil
}
