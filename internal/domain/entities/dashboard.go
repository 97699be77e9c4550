package entities

import "time"

// PeriodRange is an inclusive reporting window.
type PeriodRange struct {
	Token string
	Start time.Time
	End   time.Time
}

// Days is the number of calendar days covered by the window.
func (r PeriodRange) Days() int {
	start := DateOnly(r.Start)
	end := DateOnly(r.End)
	return int(end.Sub(start).Hours()/24) + 1
}

type TrendItem struct {
	TenantName   string
	BuildingName string
	Total        float64
}

// TrendBucket is one calendar month of the rent collection trend. MonthTotal
// covers every contributor, Items only the top three.
type TrendBucket struct {
	Month      string
	MonthTotal float64
	Items      []TrendItem
}

type RenewalForecast struct {
	AgreementID   string
	TenantName    string
	BuildingName  string
	UnitCode      string
	EndDate       time.Time
	DaysRemaining int
}

type DashboardSummary struct {
	Period             PeriodRange
	TotalRentCollected float64
	TotalOutstanding   float64
	TotalUnits         int
	OccupiedUnits      int
	VacantUnits        int
	RentCollection     []TrendBucket
	UpcomingRenewals   []RenewalForecast
}

// DashboardComparison pairs a window with the equal-length window before it.
type DashboardComparison struct {
	Current  DashboardSummary
	Previous DashboardSummary
	Deltas   map[string]float64
}
