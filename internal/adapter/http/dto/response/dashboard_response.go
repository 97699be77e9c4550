package response

import (
	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

type RangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TrendItemResponse struct {
	TenantName   string  `json:"tenant_name"`
	BuildingName string  `json:"building_name"`
	Total        float64 `json:"total"`
}

type TrendBucketResponse struct {
	Month      string              `json:"month"`
	MonthTotal float64             `json:"month_total"`
	Items      []TrendItemResponse `json:"items"`
}

type RenewalResponse struct {
	ID            string `json:"id"`
	TenantName    string `json:"tenant_name"`
	BuildingName  string `json:"building_name"`
	UnitCode      string `json:"unit_code"`
	EndDate       string `json:"end_date"`
	DaysRemaining int    `json:"days_remaining"`
}

type DashboardResponse struct {
	Period              string                `json:"period"`
	Range               RangeResponse         `json:"range"`
	TotalRentCollected  float64               `json:"total_rent_collected"`
	TotalOutstanding    float64               `json:"total_outstanding"`
	TotalUnits          int                   `json:"total_units"`
	TotalOccupiedUnits  int                   `json:"total_occupied_units"`
	TotalVacantUnits    int                   `json:"total_vacant_units"`
	RentCollectionTrend []TrendBucketResponse `json:"rent_collection_trend"`
	UpcomingRenewals    []RenewalResponse     `json:"upcoming_renewals"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardResponse {
	bounds := usecase.FormatRange(s.Period)
	res := DashboardResponse{
		Period:              s.Period.Token,
		Range:               RangeResponse{Start: bounds[0], End: bounds[1]},
		TotalRentCollected:  s.TotalRentCollected,
		TotalOutstanding:    s.TotalOutstanding,
		TotalUnits:          s.TotalUnits,
		TotalOccupiedUnits:  s.OccupiedUnits,
		TotalVacantUnits:    s.VacantUnits,
		RentCollectionTrend: make([]TrendBucketResponse, 0, len(s.RentCollection)),
		UpcomingRenewals:    make([]RenewalResponse, 0, len(s.UpcomingRenewals)),
	}
	for _, b := range s.RentCollection {
		items := make([]TrendItemResponse, 0, len(b.Items))
		for _, it := range b.Items {
			items = append(items, TrendItemResponse(it))
		}
		res.RentCollectionTrend = append(res.RentCollectionTrend, TrendBucketResponse{
			Month:      b.Month,
			MonthTotal: b.MonthTotal,
			Items:      items,
		})
	}
	for _, r := range s.UpcomingRenewals {
		res.UpcomingRenewals = append(res.UpcomingRenewals, RenewalResponse{
			ID:            r.AgreementID,
			TenantName:    r.TenantName,
			BuildingName:  r.BuildingName,
			UnitCode:      r.UnitCode,
			EndDate:       r.EndDate.Format(dateLayout),
			DaysRemaining: r.DaysRemaining,
		})
	}
	return res
}

type DashboardCompareResponse struct {
	Current  DashboardResponse  `json:"current"`
	Previous DashboardResponse  `json:"previous"`
	Deltas   map[string]float64 `json:"deltas"`
}

func FromDashboardComparison(c entities.DashboardComparison) DashboardCompareResponse {
	return DashboardCompareResponse{
		Current:  FromDashboardSummary(c.Current),
		Previous: FromDashboardSummary(c.Previous),
		Deltas:   c.Deltas,
	}
}
