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

type CreatePaymentInput struct {
	AgreementID   string
	BillingMonth  time.Time
	AmountDue     float64
	AmountPaid    float64
	PaymentDate   *time.Time
	PaymentMethod *string
	Notes         *string
}

// UpdatePaymentInput applies only the non-nil fields.
type UpdatePaymentInput struct {
	BillingMonth  *time.Time
	AmountDue     *float64
	AmountPaid    *float64
	PaymentDate   *time.Time
	PaymentMethod *string
	Notes         *string
}

// PaymentQuery filters the payment index. Month is "YYYY-MM".
type PaymentQuery struct {
	TenantID   string
	BuildingID string
	UnitID     string
	Month      string
	Status     string
	Page       int
	PerPage    int
}

// OutstandingQuery filters the outstanding report. Month is "YYYY-MM".
type OutstandingQuery struct {
	BuildingID string
	TenantID   string
	Month      string
	Page       int
	PerPage    int
}

// IPaymentUseCase is the rent ledger. Status is always derived from the
// amounts, never accepted from the caller.
type IPaymentUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreatePaymentInput) (entities.Payment, error)
	Update(ctx context.Context, actor entities.Actor, id string, in UpdatePaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error)
	List(ctx context.Context, actor entities.Actor, q PaymentQuery) (entities.Page[entities.Payment], error)
	Outstanding(ctx context.Context, actor entities.Actor, q OutstandingQuery) (entities.Page[entities.Payment], error)
}

type PaymentUseCase struct {
	repo       interfaces.IPaymentRepository
	agreements interfaces.IAgreementRepository
	props      interfaces.IPropertyRepository
	now        func() time.Time
	log        *logger.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, agreements interfaces.IAgreementRepository, props interfaces.IPropertyRepository, log *logger.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		repo:       repo,
		agreements: agreements,
		props:      props,
		now:        time.Now,
		log:        logger.OrNop(log).With("component", "PaymentUseCase"),
	}
}

func (u *PaymentUseCase) Create(ctx context.Context, actor entities.Actor, in CreatePaymentInput) (entities.Payment, error) {
	if !actor.Valid() {
		return entities.Payment{}, ErrForbidden
	}
	in.AgreementID = strings.TrimSpace(in.AgreementID)

	fe := fieldErrors{}
	if in.AgreementID == "" {
		fe.add("agreement_id", "The agreement id field is required.")
	}
	if in.BillingMonth.IsZero() {
		fe.add("billing_month", "The billing month field is required.")
	}
	fe.money("amount_due", in.AmountDue)
	fe.money("amount_paid", in.AmountPaid)
	if err := fe.err(); err != nil {
		return entities.Payment{}, err
	}

	agreement, err := u.agreements.GetByID(ctx, actor.UserID, in.AgreementID)
	if err != nil {
		return entities.Payment{}, err
	}
	if agreement.ID == "" || agreement.UserID != actor.UserID {
		return entities.Payment{}, newValidationError("agreement_id", "The selected agreement id is invalid.")
	}

	month := entities.MonthStart(in.BillingMonth)
	dup, err := u.repo.FindByAgreementMonth(ctx, agreement.ID, month)
	if err != nil {
		return entities.Payment{}, err
	}
	if dup.ID != "" {
		return entities.Payment{}, ErrDuplicateBillingMonth
	}

	now := u.now().UTC()
	p := entities.Payment{
		ID:            uuid.NewString(),
		AgreementID:   agreement.ID,
		UserID:        actor.UserID,
		TenantID:      agreement.TenantID,
		UnitID:        agreement.UnitID,
		BillingMonth:  month,
		AmountDue:     entities.RoundMoney(in.AmountDue),
		AmountPaid:    entities.RoundMoney(in.AmountPaid),
		PaymentDate:   dateOnlyPtr(in.PaymentDate),
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		RowVersion:    1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.Refresh()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Payment{}, translatePaymentWriteError(err)
	}
	u.log.Info("payment recorded", "payment_id", created.ID, "agreement_id", created.AgreementID, "billing_month", entities.MonthKey(created.BillingMonth), "status", created.Status)

	created.Agreement = &agreement
	return u.expand(ctx, created)
}

func (u *PaymentUseCase) Update(ctx context.Context, actor entities.Actor, id string, in UpdatePaymentInput) (entities.Payment, error) {
	existing, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Payment{}, err
	}

	fe := fieldErrors{}
	if in.AmountDue != nil {
		fe.money("amount_due", *in.AmountDue)
	}
	if in.AmountPaid != nil {
		fe.money("amount_paid", *in.AmountPaid)
	}
	if in.BillingMonth != nil && in.BillingMonth.IsZero() {
		fe.add("billing_month", "The billing month is not a valid date.")
	}
	if err := fe.err(); err != nil {
		return entities.Payment{}, err
	}

	next := existing
	if in.BillingMonth != nil {
		next.BillingMonth = entities.MonthStart(*in.BillingMonth)
	}
	if in.AmountDue != nil {
		next.AmountDue = entities.RoundMoney(*in.AmountDue)
	}
	if in.AmountPaid != nil {
		next.AmountPaid = entities.RoundMoney(*in.AmountPaid)
	}
	if in.PaymentDate != nil {
		next.PaymentDate = dateOnlyPtr(in.PaymentDate)
	}
	if in.PaymentMethod != nil {
		next.PaymentMethod = in.PaymentMethod
	}
	if in.Notes != nil {
		next.Notes = in.Notes
	}

	if !next.BillingMonth.Equal(existing.BillingMonth) {
		dup, err := u.repo.FindByAgreementMonth(ctx, next.AgreementID, next.BillingMonth)
		if err != nil {
			return entities.Payment{}, err
		}
		if dup.ID != "" && dup.ID != next.ID {
			return entities.Payment{}, ErrDuplicateBillingMonth
		}
	}

	next.Refresh()
	next.RowVersion = existing.RowVersion + 1
	next.UpdatedAt = u.now().UTC()
	next.Tenant, next.Unit, next.Agreement = nil, nil, nil

	saved, err := u.repo.Update(ctx, existing, next)
	if err != nil {
		return entities.Payment{}, translatePaymentWriteError(err)
	}
	if saved.Status != existing.Status {
		u.log.Info("payment status changed", "payment_id", saved.ID, "from", existing.Status, "to", saved.Status)
	}
	return u.expand(ctx, saved)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error) {
	p, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Payment{}, err
	}
	return u.expand(ctx, p)
}

func (u *PaymentUseCase) List(ctx context.Context, actor entities.Actor, q PaymentQuery) (entities.Page[entities.Payment], error) {
	if !actor.Valid() {
		return entities.Page[entities.Payment]{}, ErrForbidden
	}

	fe := fieldErrors{}
	filter := entities.PaymentFilter{
		UserID:   actor.UserID,
		TenantID: strings.TrimSpace(q.TenantID),
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		status := entities.PaymentStatus(s)
		if !status.Valid() {
			fe.add("status", "The selected status is invalid.")
		}
		filter.Statuses = []entities.PaymentStatus{status}
	}
	applyMonth(fe, &filter, q.Month)
	checkPaging(fe, q.Page, q.PerPage)
	if err := fe.err(); err != nil {
		return entities.Page[entities.Payment]{}, err
	}

	unitIDs, err := u.scopeUnits(ctx, q.BuildingID, q.UnitID)
	if err != nil {
		return entities.Page[entities.Payment]{}, err
	}
	filter.UnitIDs = unitIDs

	return u.page(ctx, filter, q.Page, q.PerPage)
}

// Outstanding lists unpaid and partial rows, newest billing month first.
func (u *PaymentUseCase) Outstanding(ctx context.Context, actor entities.Actor, q OutstandingQuery) (entities.Page[entities.Payment], error) {
	if !actor.Valid() {
		return entities.Page[entities.Payment]{}, ErrForbidden
	}

	fe := fieldErrors{}
	filter := entities.PaymentFilter{
		UserID:   actor.UserID,
		TenantID: strings.TrimSpace(q.TenantID),
		Statuses: entities.OutstandingStatuses,
	}
	applyMonth(fe, &filter, q.Month)
	checkPaging(fe, q.Page, q.PerPage)
	if err := fe.err(); err != nil {
		return entities.Page[entities.Payment]{}, err
	}

	unitIDs, err := u.scopeUnits(ctx, q.BuildingID, "")
	if err != nil {
		return entities.Page[entities.Payment]{}, err
	}
	filter.UnitIDs = unitIDs

	return u.page(ctx, filter, q.Page, q.PerPage)
}

func (u *PaymentUseCase) page(ctx context.Context, filter entities.PaymentFilter, page, perPage int) (entities.Page[entities.Payment], error) {
	rows, err := u.repo.List(ctx, filter)
	if err != nil {
		return entities.Page[entities.Payment]{}, err
	}
	out := entities.Paginate(rows, page, perPage)
	out.Items, err = u.expandAll(ctx, out.Items)
	if err != nil {
		return entities.Page[entities.Payment]{}, err
	}
	return out, nil
}

func applyMonth(fe fieldErrors, filter *entities.PaymentFilter, month string) {
	month = strings.TrimSpace(month)
	if month == "" {
		return
	}
	m, err := time.Parse("2006-01", month)
	if err != nil {
		fe.add("month", "The month does not match the format Y-m.")
		return
	}
	m = entities.MonthStart(m)
	filter.BillingFrom = &m
	filter.BillingTo = &m
}

func checkPaging(fe fieldErrors, page, perPage int) {
	if page < 0 {
		fe.add("page", "The page must be at least 1.")
	}
	if perPage < 0 || perPage > entities.MaxPerPage {
		fe.add("per_page", "The per page must be between 1 and 100.")
	}
}

// scopeUnits turns the building/unit filters into a unit id allow-list. nil
// means unrestricted; an empty slice matches nothing.
func (u *PaymentUseCase) scopeUnits(ctx context.Context, buildingID, unitID string) ([]string, error) {
	buildingID = strings.TrimSpace(buildingID)
	unitID = strings.TrimSpace(unitID)
	if buildingID == "" && unitID == "" {
		return nil, nil
	}
	if buildingID == "" {
		return []string{unitID}, nil
	}

	units, err := u.props.ListUnitsByBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(units))
	for _, un := range units {
		if unitID != "" && un.ID != unitID {
			continue
		}
		ids = append(ids, un.ID)
	}
	return ids, nil
}

func (u *PaymentUseCase) load(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if !actor.Valid() || id == "" {
		return entities.Payment{}, ErrNotFound
	}
	p, err := u.repo.GetByID(ctx, actor.UserID, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.UserID != actor.UserID {
		return entities.Payment{}, ErrNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) expand(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	out, err := u.expandAll(ctx, []entities.Payment{p})
	if err != nil {
		return entities.Payment{}, err
	}
	return out[0], nil
}

func (u *PaymentUseCase) expandAll(ctx context.Context, items []entities.Payment) ([]entities.Payment, error) {
	if len(items) == 0 {
		return items, nil
	}
	tenantIDs := make([]string, 0, len(items))
	unitIDs := make([]string, 0, len(items))
	for _, p := range items {
		tenantIDs = append(tenantIDs, p.TenantID)
		unitIDs = append(unitIDs, p.UnitID)
	}
	rel, err := loadRelations(ctx, u.props, tenantIDs, unitIDs)
	if err != nil {
		return nil, err
	}
	agreements := make(map[string]*entities.RentalAgreement)
	for _, p := range items {
		if p.Agreement != nil {
			agreements[p.AgreementID] = p.Agreement
		}
	}
	for i := range items {
		p := &items[i]
		p.Tenant = rel.tenant(p.TenantID)
		p.Unit = rel.unit(p.UnitID)

		a, ok := agreements[p.AgreementID]
		if !ok {
			found, err := u.agreements.GetByID(ctx, p.UserID, p.AgreementID)
			if err != nil {
				return nil, err
			}
			if found.ID != "" {
				a = &found
			}
			agreements[p.AgreementID] = a
		}
		p.Agreement = a
	}
	return items, nil
}

func translatePaymentWriteError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrUniqueBillingPeriod):
		return ErrDuplicateBillingMonth
	case errors.Is(err, interfaces.ErrStaleWrite):
		return ErrConcurrentModification
	default:
		return err
	}
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entities.DateOnly(*t)
	return &d
}
