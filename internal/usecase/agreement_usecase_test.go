package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase/interfaces"
	mock_interfaces "github.com/mm01rahman/LandlordBD/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	testOwner   = entities.Actor{UserID: "user-1"}
	testNow     = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	testToday   = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	testBuild   = entities.Building{ID: "b-1", UserID: "user-1", Name: "Lake View"}
	testTenant  = entities.Tenant{ID: "t-1", UserID: "user-1", Name: "Rahim"}
	testUnit    = entities.Unit{ID: "u-1", BuildingID: "b-1", UnitNumber: "4A", Status: entities.UnitStatusVacant, Building: &testBuild}
	otherBuild  = entities.Building{ID: "b-9", UserID: "user-2", Name: "Elsewhere"}
	foreignUnit = entities.Unit{ID: "u-9", BuildingID: "b-9", UnitNumber: "1", Building: &otherBuild}
)

func newAgreementUseCaseForTest(ctrl *gomock.Controller) (*AgreementUseCase, *mock_interfaces.MockIAgreementRepository, *mock_interfaces.MockIPropertyRepository) {
	uc, repo, payments, props := newAgreementUseCaseWithLedger(ctrl)
	payments.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	return uc, repo, props
}

func newAgreementUseCaseWithLedger(ctrl *gomock.Controller) (*AgreementUseCase, *mock_interfaces.MockIAgreementRepository, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIPropertyRepository) {
	repo := mock_interfaces.NewMockIAgreementRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	props := mock_interfaces.NewMockIPropertyRepository(ctrl)
	uc := NewAgreementUseCase(repo, payments, props, time.UTC, nil)
	uc.now = func() time.Time { return testNow }
	return uc, repo, payments, props
}

func expectExpand(props *mock_interfaces.MockIPropertyRepository) {
	props.EXPECT().ListTenantsByIDs(gomock.Any(), gomock.Any()).Return([]entities.Tenant{testTenant}, nil).AnyTimes()
	props.EXPECT().ListUnitsByIDs(gomock.Any(), gomock.Any()).Return([]entities.Unit{testUnit}, nil).AnyTimes()
}

func liveAgreement() entities.RentalAgreement {
	return entities.RentalAgreement{
		ID:          "a-1",
		UserID:      "user-1",
		TenantID:    "t-1",
		UnitID:      "u-1",
		StartDate:   testToday.AddDate(0, -2, 0),
		MonthlyRent: 15000,
		Status:      entities.AgreementStatusActive,
		RowVersion:  3,
	}
}

func TestAgreementUseCase_Create_Validations(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newAgreementUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{MonthlyRent: -1})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		for _, field := range []string{"tenant_id", "unit_id", "start_date", "monthly_rent"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Fatalf("expected error on %s, got %+v", field, vErr.Fields)
			}
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newAgreementUseCaseForTest(ctrl)

		end := testToday.AddDate(0, 0, -1)
		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday, EndDate: &end})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Fields["end_date"] == "" {
			t.Fatalf("expected end_date ValidationError, got %v", err)
		}
	})

	t.Run("amounts above the money column range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newAgreementUseCaseForTest(ctrl)

		deposit := 100000000.0
		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday, MonthlyRent: 1e20, SecurityDeposit: &deposit})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if vErr.Fields["monthly_rent"] != "The monthly rent must not be greater than 99999999.99." {
			t.Fatalf("unexpected monthly_rent message %q", vErr.Fields["monthly_rent"])
		}
		if vErr.Fields["security_deposit"] == "" {
			t.Fatalf("expected security_deposit error, got %+v", vErr.Fields)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "missing").Return(entities.Unit{}, nil)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "missing", StartDate: testToday})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Fields["unit_id"] == "" {
			t.Fatalf("expected unit_id ValidationError, got %v", err)
		}
	})

	t.Run("unit owned by someone else", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-9").Return(foreignUnit, nil)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-9", StartDate: testToday})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestAgreementUseCase_Create(t *testing.T) {
	t.Run("start today is active and occupies the unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-1").Return(testUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), []entities.UnitStatusUpdate{{UnitID: "u-1", Status: entities.UnitStatusOccupied}}).
			DoAndReturn(func(_ context.Context, a entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				if a.Status != entities.AgreementStatusActive || a.UserID != "user-1" || a.ID == "" {
					t.Fatalf("unexpected agreement: %+v", a)
				}
				if a.SecurityDeposit != 0 || a.RowVersion != 1 {
					t.Fatalf("expected defaults, got %+v", a)
				}
				return a, nil
			})

		got, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: " t-1 ", UnitID: "u-1", StartDate: testToday, MonthlyRent: 15000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Tenant == nil || got.Unit == nil || got.Unit.Building == nil {
			t.Fatalf("expected relations expanded: %+v", got)
		}
		if got.Unit.Status != entities.UnitStatusOccupied {
			t.Fatalf("expected unit occupied in response, got %s", got.Unit.Status)
		}
	})

	t.Run("future start is upcoming and leaves the unit alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-1").Return(testUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, a entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return a, nil
			})

		got, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday.AddDate(0, 0, 1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AgreementStatusUpcoming || got.Unit.Status != entities.UnitStatusVacant {
			t.Fatalf("expected upcoming with vacant unit, got %s / %s", got.Status, got.Unit.Status)
		}
	})

	t.Run("future start on an occupied unit conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-1").Return(testUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(liveAgreement(), nil)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday.AddDate(0, 1, 0)})
		if !errors.Is(err, ErrUnitHasActiveAgreement) {
			t.Fatalf("expected ErrUnitHasActiveAgreement, got %v", err)
		}
	})

	t.Run("unit already held", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-1").Return(testUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(liveAgreement(), nil)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday})
		if !errors.Is(err, ErrUnitHasActiveAgreement) {
			t.Fatalf("expected ErrUnitHasActiveAgreement, got %v", err)
		}
	})

	t.Run("storage uniqueness violation becomes a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		props.EXPECT().GetTenant(gomock.Any(), "t-1").Return(testTenant, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-1").Return(testUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RentalAgreement{}, interfaces.ErrUniqueActiveAgreement)

		_, err := uc.Create(context.Background(), testOwner, CreateAgreementInput{TenantID: "t-1", UnitID: "u-1", StartDate: testToday})
		var conflict *ConflictError
		if !errors.As(err, &conflict) || conflict.Message != "Unit already has an active agreement" {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestAgreementUseCase_End(t *testing.T) {
	t.Run("ends and vacates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		existing := liveAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), existing, gomock.Any(), []entities.UnitStatusUpdate{{UnitID: "u-1", Status: entities.UnitStatusVacant}}).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		got, err := uc.End(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AgreementStatusEnded || got.EndDateActual == nil || !got.EndDateActual.Equal(testToday) {
			t.Fatalf("unexpected ended agreement: %+v", got)
		}
		if got.RowVersion != existing.RowVersion+1 {
			t.Fatalf("expected row version bump, got %d", got.RowVersion)
		}
	})

	t.Run("second end keeps the original end date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		endedOn := testToday.AddDate(0, 0, -5)
		existing := liveAgreement()
		existing.Status = entities.AgreementStatusEnded
		existing.EndDateActual = &endedOn

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		got, err := uc.End(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.EndDateActual.Equal(endedOn) {
			t.Fatalf("expected end_date_actual unchanged, got %v", got.EndDateActual)
		}
	})

	t.Run("does not vacate a unit held by another live agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		upcoming := liveAgreement()
		upcoming.Status = entities.AgreementStatusUpcoming
		upcoming.StartDate = testToday.AddDate(0, 1, 0)
		other := liveAgreement()
		other.ID = "a-2"

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(upcoming, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(other, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		if _, err := uc.End(context.Background(), testOwner, "a-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newAgreementUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(entities.RentalAgreement{}, nil)

		if _, err := uc.End(context.Background(), testOwner, "a-1"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAgreementUseCase_Update(t *testing.T) {
	t.Run("ended agreements cannot be reopened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newAgreementUseCaseForTest(ctrl)

		ended := liveAgreement()
		ended.Status = entities.AgreementStatusEnded
		ended.EndDateActual = &testToday
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(ended, nil)

		active := entities.AgreementStatusActive
		_, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Status: &active})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Fields["status"] == "" {
			t.Fatalf("expected status ValidationError, got %v", err)
		}
	})

	t.Run("authorization runs before the ended check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		ended := liveAgreement()
		ended.Status = entities.AgreementStatusEnded
		ended.EndDateActual = &testToday
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(ended, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-9").Return(foreignUnit, nil)

		active := entities.AgreementStatusActive
		unitID := "u-9"
		_, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Status: &active, UnitID: &unitID})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("notes change promotes an upcoming agreement whose start date passed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		upcoming := liveAgreement()
		upcoming.Status = entities.AgreementStatusUpcoming
		upcoming.StartDate = testToday.AddDate(0, 0, -3)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(upcoming, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Update(gomock.Any(), upcoming, gomock.Any(), []entities.UnitStatusUpdate{{UnitID: "u-1", Status: entities.UnitStatusOccupied}}).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		notes := "x"
		got, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AgreementStatusActive {
			t.Fatalf("expected active, got %s", got.Status)
		}
		if got.Notes == nil || *got.Notes != "x" {
			t.Fatalf("expected notes saved, got %v", got.Notes)
		}
	})

	t.Run("rent above the money column range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newAgreementUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(liveAgreement(), nil)

		rent := 100000000.0
		_, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{MonthlyRent: &rent})
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Fields["monthly_rent"] == "" {
			t.Fatalf("expected monthly_rent ValidationError, got %v", err)
		}
	})

	t.Run("activation conflicts with another live agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newAgreementUseCaseForTest(ctrl)

		upcoming := liveAgreement()
		upcoming.Status = entities.AgreementStatusUpcoming
		other := liveAgreement()
		other.ID = "a-2"

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(upcoming, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(other, nil)

		active := entities.AgreementStatusActive
		_, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Status: &active})
		if !errors.Is(err, ErrUnitHasActiveAgreement) {
			t.Fatalf("expected ErrUnitHasActiveAgreement, got %v", err)
		}
	})

	t.Run("moving a live agreement to another unit vacates the old one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		existing := liveAgreement()
		newUnit := entities.Unit{ID: "u-2", BuildingID: "b-1", Building: &testBuild}

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		props.EXPECT().GetUnit(gomock.Any(), "u-2").Return(newUnit, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-2").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), existing, gomock.Any(), []entities.UnitStatusUpdate{
			{UnitID: "u-2", Status: entities.UnitStatusOccupied},
			{UnitID: "u-1", Status: entities.UnitStatusVacant},
		}).DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
			return next, nil
		})

		unitID := "u-2"
		rent := 18000.0
		got, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{UnitID: &unitID, MonthlyRent: &rent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UnitID != "u-2" || got.MonthlyRent != 18000 {
			t.Fatalf("unexpected agreement: %+v", got)
		}
	})

	t.Run("reassigning to a foreign tenant is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(liveAgreement(), nil)
		props.EXPECT().GetTenant(gomock.Any(), "t-9").Return(entities.Tenant{ID: "t-9", UserID: "user-2"}, nil)

		tenantID := "t-9"
		if _, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{TenantID: &tenantID}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("stale row version becomes a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newAgreementUseCaseForTest(ctrl)

		existing := liveAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RentalAgreement{}, interfaces.ErrStaleWrite)

		notes := "repainted"
		if _, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Notes: &notes}); !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestAgreementUseCase_GetByID_LazyPromotion(t *testing.T) {
	due := liveAgreement()
	due.Status = entities.AgreementStatusUpcoming
	due.StartDate = testToday

	t.Run("promotes when the start date arrived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(due, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(entities.RentalAgreement{}, nil)
		repo.EXPECT().Update(gomock.Any(), due, gomock.Any(), []entities.UnitStatusUpdate{{UnitID: "u-1", Status: entities.UnitStatusOccupied}}).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		got, err := uc.GetByID(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AgreementStatusActive {
			t.Fatalf("expected active, got %s", got.Status)
		}
	})

	t.Run("keeps upcoming when the unit is taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		other := liveAgreement()
		other.ID = "a-2"
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(due, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(other, nil)

		got, err := uc.GetByID(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AgreementStatusUpcoming {
			t.Fatalf("expected upcoming, got %s", got.Status)
		}
	})
}

func TestAgreementUseCase_LoadsPayments(t *testing.T) {
	t.Run("show attaches the agreement's payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, payments, props := newAgreementUseCaseWithLedger(ctrl)
		expectExpand(props)

		row := entities.Payment{ID: "p-1", AgreementID: "a-1", UserID: "user-1", AmountDue: 15000, Status: entities.PaymentStatusUnpaid}
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(liveAgreement(), nil)
		payments.EXPECT().List(gomock.Any(), entities.PaymentFilter{UserID: "user-1", AgreementID: "a-1"}).Return([]entities.Payment{row}, nil)

		got, err := uc.GetByID(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Payments) != 1 || got.Payments[0].ID != "p-1" {
			t.Fatalf("expected payment p-1, got %+v", got.Payments)
		}
	})

	t.Run("update returns an empty ledger as an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, payments, props := newAgreementUseCaseWithLedger(ctrl)
		expectExpand(props)

		existing := liveAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), existing, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})
		payments.EXPECT().List(gomock.Any(), entities.PaymentFilter{UserID: "user-1", AgreementID: "a-1"}).Return(nil, nil)

		notes := "repainted"
		got, err := uc.Update(context.Background(), testOwner, "a-1", UpdateAgreementInput{Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payments == nil || len(got.Payments) != 0 {
			t.Fatalf("expected empty non-nil payments, got %#v", got.Payments)
		}
	})

	t.Run("end does not load payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, props := newAgreementUseCaseWithLedger(ctrl)
		expectExpand(props)

		existing := liveAgreement()
		repo.EXPECT().GetByID(gomock.Any(), "user-1", "a-1").Return(existing, nil)
		repo.EXPECT().FindLiveByUnit(gomock.Any(), "u-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, next entities.RentalAgreement, _ []entities.UnitStatusUpdate) (entities.RentalAgreement, error) {
				return next, nil
			})

		got, err := uc.End(context.Background(), testOwner, "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Payments != nil {
			t.Fatalf("expected no payments on end, got %+v", got.Payments)
		}
	})
}

func TestAgreementUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newAgreementUseCaseForTest(ctrl)

		_, err := uc.List(context.Background(), testOwner, AgreementQuery{Status: "archived"})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("owner scoped filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, props := newAgreementUseCaseForTest(ctrl)
		expectExpand(props)

		repo.EXPECT().List(gomock.Any(), entities.AgreementFilter{UserID: "user-1", Status: entities.AgreementStatusActive, UnitID: "u-1"}).
			Return([]entities.RentalAgreement{liveAgreement()}, nil)

		got, err := uc.List(context.Background(), testOwner, AgreementQuery{Status: "active", UnitID: "u-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Tenant == nil || got[0].Unit == nil {
			t.Fatalf("unexpected list: %+v", got)
		}
	})
}
