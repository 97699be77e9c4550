package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromAgreement_DatesAndRelations(t *testing.T) {
	end := day(2025, 12, 31)
	unit := &entities.Unit{ID: "u-1", UnitNumber: "4A", Building: &entities.Building{ID: "b-1", Name: "Lake View"}}
	a := entities.RentalAgreement{
		ID:          "a-1",
		TenantID:    "t-1",
		UnitID:      "u-1",
		StartDate:   day(2025, 1, 1),
		EndDate:     &end,
		MonthlyRent: 15000,
		Status:      entities.AgreementStatusActive,
		Tenant:      &entities.Tenant{ID: "t-1", Name: "Rahim"},
		Unit:        unit,
	}
	res := FromAgreement(a)
	if res.StartDate != "2025-01-01" {
		t.Fatalf("unexpected start date %q", res.StartDate)
	}
	if res.EndDate == nil || *res.EndDate != "2025-12-31" {
		t.Fatalf("unexpected end date %v", res.EndDate)
	}
	if res.EndDateActual != nil {
		t.Fatalf("expected nil end_date_actual")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["end_date_actual"] != nil {
		t.Fatalf("expected null end_date_actual, got %v", body["end_date_actual"])
	}
	unitBody := body["unit"].(map[string]any)
	if unitBody["building"].(map[string]any)["name"] != "Lake View" {
		t.Fatalf("expected building in unit: %v", unitBody)
	}
}

func TestFromAgreement_Payments(t *testing.T) {
	a := entities.RentalAgreement{ID: "a-1", StartDate: day(2025, 1, 1), Status: entities.AgreementStatusActive}

	raw, err := json.Marshal(FromAgreement(a))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := body["payments"]; ok {
		t.Fatalf("expected payments omitted when not loaded: %s", raw)
	}

	a.Payments = []entities.Payment{}
	raw, err = json.Marshal(FromAgreement(a))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body = map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list, ok := body["payments"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty payments list, got %v", body["payments"])
	}

	a.Payments = []entities.Payment{{ID: "p-1", AgreementID: "a-1", BillingMonth: day(2025, 2, 1), AmountDue: 15000, Status: entities.PaymentStatusUnpaid}}
	res := FromAgreement(a)
	if res.Payments == nil || len(*res.Payments) != 1 || (*res.Payments)[0].BillingMonth != "2025-02-01" {
		t.Fatalf("unexpected payments %+v", res.Payments)
	}
}

func TestFromOutstandingPayment_Remaining(t *testing.T) {
	p := entities.Payment{
		ID:           "p-1",
		BillingMonth: day(2025, 3, 1),
		AmountDue:    15000,
		AmountPaid:   9999.99,
		Status:       entities.PaymentStatusPartial,
		Agreement:    &entities.RentalAgreement{ID: "a-1", StartDate: day(2025, 1, 1), Status: entities.AgreementStatusActive},
	}
	res := FromOutstandingPayment(p)
	if res.Remaining != 5000.01 {
		t.Fatalf("expected remaining 5000.01, got %v", res.Remaining)
	}
	if res.BillingMonth != "2025-03-01" {
		t.Fatalf("unexpected billing month %q", res.BillingMonth)
	}
	if res.Agreement == nil || res.Agreement.StartDate != "2025-01-01" {
		t.Fatalf("unexpected agreement summary %+v", res.Agreement)
	}
}

func TestFromPage_Envelope(t *testing.T) {
	page := entities.Paginate([]entities.Payment{{ID: "p-1"}, {ID: "p-2"}, {ID: "p-3"}}, 2, 2)
	res := FromPage(page, FromPayment)
	if len(res.Data) != 1 || res.Data[0].ID != "p-3" {
		t.Fatalf("unexpected data %+v", res.Data)
	}
	if res.Meta != (PageMeta{CurrentPage: 2, LastPage: 2, PerPage: 2, Total: 3}) {
		t.Fatalf("unexpected meta %+v", res.Meta)
	}

	empty := FromPage(entities.Paginate([]entities.Payment{}, 1, 0), FromPayment)
	raw, _ := json.Marshal(empty)
	if string(raw) != `{"data":[],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":0}}` {
		t.Fatalf("unexpected body %s", raw)
	}
}

func TestFromDashboardSummary(t *testing.T) {
	s := entities.DashboardSummary{
		Period: entities.PeriodRange{
			Token: "30d",
			Start: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC),
		},
		TotalRentCollected: 30000,
		TotalUnits:         3,
		OccupiedUnits:      2,
		VacantUnits:        1,
		RentCollection: []entities.TrendBucket{{
			Month:      "2025-03",
			MonthTotal: 30000,
			Items:      []entities.TrendItem{{TenantName: "Rahim", BuildingName: "Lake View", Total: 15000}},
		}},
		UpcomingRenewals: []entities.RenewalForecast{{
			AgreementID: "a-1", TenantName: "Rahim", UnitCode: "4A", EndDate: day(2025, 4, 1), DaysRemaining: 17,
		}},
	}
	res := FromDashboardSummary(s)
	if res.Period != "30d" {
		t.Fatalf("unexpected period %q", res.Period)
	}
	if res.Range.Start != "2025-02-14 00:00:00" || res.Range.End != "2025-03-15 23:59:59" {
		t.Fatalf("unexpected range %+v", res.Range)
	}
	if res.TotalOccupiedUnits != 2 || res.TotalVacantUnits != 1 {
		t.Fatalf("unexpected unit counts %+v", res)
	}
	if res.RentCollectionTrend[0].Items[0].TenantName != "Rahim" {
		t.Fatalf("unexpected trend %+v", res.RentCollectionTrend)
	}
	if r := res.UpcomingRenewals[0]; r.ID != "a-1" || r.EndDate != "2025-04-01" || r.DaysRemaining != 17 {
		t.Fatalf("unexpected renewal %+v", r)
	}
}
