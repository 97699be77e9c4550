package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
)

const (
	trendTopN        = 3
	renewalHorizon   = 30
	renewalLimit     = 10
	DeltaCollected   = "total_rent_collected"
	DeltaOutstanding = "total_outstanding"
)

// IDashboardUseCase aggregates the ledger and the agreements into period KPIs.
// Unit counts and renewals are always "as of now"; money figures follow the
// requested window.
type IDashboardUseCase interface {
	Summary(ctx context.Context, actor entities.Actor, period string) (entities.DashboardSummary, error)
	Compare(ctx context.Context, actor entities.Actor, period string) (entities.DashboardComparison, error)
}

type DashboardUseCase struct {
	payments   interfaces.IPaymentRepository
	agreements interfaces.IAgreementRepository
	props      interfaces.IPropertyRepository
	loc        *time.Location
	now        func() time.Time
	log        *logger.Logger
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(payments interfaces.IPaymentRepository, agreements interfaces.IAgreementRepository, props interfaces.IPropertyRepository, loc *time.Location, log *logger.Logger) *DashboardUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardUseCase{
		payments:   payments,
		agreements: agreements,
		props:      props,
		loc:        loc,
		now:        time.Now,
		log:        logger.OrNop(log).With("component", "DashboardUseCase"),
	}
}

// snapshot holds the parts of a summary that do not depend on the window.
type snapshot struct {
	units    []entities.Unit
	unitByID map[string]entities.Unit
	renewals []entities.RenewalForecast
	total    int
	occupied int
	vacant   int
}

func (u *DashboardUseCase) Summary(ctx context.Context, actor entities.Actor, period string) (entities.DashboardSummary, error) {
	if !actor.Valid() {
		return entities.DashboardSummary{}, ErrForbidden
	}
	now := u.now().In(u.loc)
	snap, err := u.snapshot(ctx, actor, now)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	return u.summarize(ctx, actor, ResolvePeriod(period, now), snap)
}

// Compare pairs the requested window with its "_prev" window. A "_prev" suffix
// on the input is ignored.
func (u *DashboardUseCase) Compare(ctx context.Context, actor entities.Actor, period string) (entities.DashboardComparison, error) {
	if !actor.Valid() {
		return entities.DashboardComparison{}, ErrForbidden
	}
	now := u.now().In(u.loc)
	snap, err := u.snapshot(ctx, actor, now)
	if err != nil {
		return entities.DashboardComparison{}, err
	}

	base := strings.TrimSuffix(strings.TrimSpace(period), prevSuffix)
	currentRange := ResolvePeriod(base, now)
	previousRange := ResolvePeriod(currentRange.Token+prevSuffix, now)

	current, err := u.summarize(ctx, actor, currentRange, snap)
	if err != nil {
		return entities.DashboardComparison{}, err
	}
	previous, err := u.summarize(ctx, actor, previousRange, snap)
	if err != nil {
		return entities.DashboardComparison{}, err
	}

	return entities.DashboardComparison{
		Current:  current,
		Previous: previous,
		Deltas: map[string]float64{
			DeltaCollected:   entities.RoundMoney(PercentChange(current.TotalRentCollected, previous.TotalRentCollected)),
			DeltaOutstanding: entities.RoundMoney(PercentChange(current.TotalOutstanding, previous.TotalOutstanding)),
		},
	}, nil
}

func (u *DashboardUseCase) summarize(ctx context.Context, actor entities.Actor, rng entities.PeriodRange, snap snapshot) (entities.DashboardSummary, error) {
	from := entities.DateOnly(rng.Start)
	to := entities.DateOnly(rng.End)
	rows, err := u.payments.List(ctx, entities.PaymentFilter{
		UserID:      actor.UserID,
		BillingFrom: &from,
		BillingTo:   &to,
	})
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	var collected, outstanding float64
	for _, p := range rows {
		collected += p.AmountPaid
		if p.Status == entities.PaymentStatusUnpaid || p.Status == entities.PaymentStatusPartial {
			if rem := p.AmountDue - p.AmountPaid; rem > 0 {
				outstanding += rem
			}
		}
	}

	trend, err := u.trend(ctx, rows, snap)
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	u.log.Debug("dashboard summarized", "period", periodLabel(rng), "payments", len(rows))
	return entities.DashboardSummary{
		Period:             rng,
		TotalRentCollected: entities.RoundMoney(collected),
		TotalOutstanding:   entities.RoundMoney(outstanding),
		TotalUnits:         snap.total,
		OccupiedUnits:      snap.occupied,
		VacantUnits:        snap.vacant,
		RentCollection:     trend,
		UpcomingRenewals:   snap.renewals,
	}, nil
}

type trendKey struct {
	month      string
	tenantID   string
	buildingID string
}

// trend groups amount_paid by month, tenant and building. Each month keeps its
// three largest groups plus the total across every group.
func (u *DashboardUseCase) trend(ctx context.Context, rows []entities.Payment, snap snapshot) ([]entities.TrendBucket, error) {
	if len(rows) == 0 {
		return []entities.TrendBucket{}, nil
	}

	tenantIDs := make([]string, 0, len(rows))
	for _, p := range rows {
		tenantIDs = append(tenantIDs, p.TenantID)
	}
	rel, err := loadRelations(ctx, u.props, tenantIDs, nil)
	if err != nil {
		return nil, err
	}

	totals := map[trendKey]float64{}
	for _, p := range rows {
		k := trendKey{month: entities.MonthKey(p.BillingMonth), tenantID: p.TenantID}
		if unit, ok := snap.unitByID[p.UnitID]; ok {
			k.buildingID = unit.BuildingID
		}
		totals[k] += p.AmountPaid
	}

	buildingNames := map[string]string{}
	for _, unit := range snap.units {
		if unit.Building != nil {
			buildingNames[unit.BuildingID] = unit.Building.Name
		}
	}

	byMonth := map[string][]entities.TrendItem{}
	for k, total := range totals {
		item := entities.TrendItem{
			BuildingName: buildingNames[k.buildingID],
			Total:        entities.RoundMoney(total),
		}
		if t := rel.tenant(k.tenantID); t != nil {
			item.TenantName = t.Name
		}
		byMonth[k.month] = append(byMonth[k.month], item)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]entities.TrendBucket, 0, len(months))
	for _, m := range months {
		items := byMonth[m]
		sort.Slice(items, func(i, j int) bool {
			if items[i].Total != items[j].Total {
				return items[i].Total > items[j].Total
			}
			if items[i].TenantName != items[j].TenantName {
				return items[i].TenantName < items[j].TenantName
			}
			return items[i].BuildingName < items[j].BuildingName
		})
		var monthTotal float64
		for _, it := range items {
			monthTotal += it.Total
		}
		if len(items) > trendTopN {
			items = items[:trendTopN]
		}
		out = append(out, entities.TrendBucket{Month: m, MonthTotal: entities.RoundMoney(monthTotal), Items: items})
	}
	return out, nil
}

func (u *DashboardUseCase) snapshot(ctx context.Context, actor entities.Actor, now time.Time) (snapshot, error) {
	units, err := u.props.ListUnitsByOwner(ctx, actor.UserID)
	if err != nil {
		return snapshot{}, err
	}
	snap := snapshot{units: units, unitByID: make(map[string]entities.Unit, len(units)), total: len(units)}
	for _, unit := range units {
		snap.unitByID[unit.ID] = unit
		if unit.Status == entities.UnitStatusOccupied {
			snap.occupied++
		} else {
			snap.vacant++
		}
	}

	snap.renewals, err = u.renewals(ctx, actor, now, snap)
	if err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// renewals lists active agreements whose planned end falls between today and
// today+30 days, soonest first, at most ten.
func (u *DashboardUseCase) renewals(ctx context.Context, actor entities.Actor, now time.Time, snap snapshot) ([]entities.RenewalForecast, error) {
	today := entities.DateOnly(now)
	horizon := today.AddDate(0, 0, renewalHorizon)
	agreements, err := u.agreements.List(ctx, entities.AgreementFilter{
		UserID:      actor.UserID,
		Status:      entities.AgreementStatusActive,
		EndDateFrom: &today,
		EndDateTo:   &horizon,
	})
	if err != nil {
		return nil, err
	}

	dated := agreements[:0]
	for _, a := range agreements {
		if a.EndDate != nil {
			dated = append(dated, a)
		}
	}
	agreements = dated
	sort.SliceStable(agreements, func(i, j int) bool {
		return agreements[i].EndDate.Before(*agreements[j].EndDate)
	})
	if len(agreements) > renewalLimit {
		agreements = agreements[:renewalLimit]
	}

	tenantIDs := make([]string, 0, len(agreements))
	for _, a := range agreements {
		tenantIDs = append(tenantIDs, a.TenantID)
	}
	rel, err := loadRelations(ctx, u.props, tenantIDs, nil)
	if err != nil {
		return nil, err
	}

	out := make([]entities.RenewalForecast, 0, len(agreements))
	for _, a := range agreements {
		f := entities.RenewalForecast{
			AgreementID:   a.ID,
			EndDate:       *a.EndDate,
			DaysRemaining: int(a.EndDate.Sub(today).Hours() / 24),
		}
		if t := rel.tenant(a.TenantID); t != nil {
			f.TenantName = t.Name
		}
		if unit, ok := snap.unitByID[a.UnitID]; ok {
			f.UnitCode = unit.UnitNumber
			if unit.Building != nil {
				f.BuildingName = unit.Building.Name
			}
		}
		out = append(out, f)
	}
	return out, nil
}
