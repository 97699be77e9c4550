package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/mm01rahman/LandlordBD/internal/adapter/http/handlers/mocks"
	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

func paymentRouter(h *PaymentHandler) *gin.Engine {
	r := newRouter()
	r.GET("/v1/payments", h.List)
	r.POST("/v1/payments", h.Create)
	r.GET("/v1/payments/:id", h.Show)
	r.PUT("/v1/payments/:id", h.Update)
	r.GET("/v1/outstanding", h.Outstanding)
	return r
}

func TestPaymentHandler_Create(t *testing.T) {
	t.Run("created with derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, in usecase.CreatePaymentInput) (entities.Payment, error) {
				if in.AgreementID != "a-1" || in.BillingMonth.Month() != time.March || in.AmountDue != 15000 || in.AmountPaid != 5000 {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Payment{
					ID: "p-1", AgreementID: "a-1", BillingMonth: date(2025, 3, 1),
					AmountDue: in.AmountDue, AmountPaid: in.AmountPaid, Status: entities.PaymentStatusPartial,
				}, nil
			})

		w := serve(r, http.MethodPost, "/v1/payments",
			`{"agreement_id":"a-1","billing_month":"2025-03","amount_due":15000,"amount_paid":5000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decode(t, w)
		if body["status"] != "partial" || body["billing_month"] != "2025-03-01" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("duplicate month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).Return(entities.Payment{}, usecase.ErrDuplicateBillingMonth)

		w := serve(r, http.MethodPost, "/v1/payments", `{"agreement_id":"a-1","billing_month":"2025-03","amount_due":15000}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("malformed billing month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		w := serve(r, http.MethodPost, "/v1/payments", `{"agreement_id":"a-1","billing_month":"03/2025","amount_due":15000}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		errs := decode(t, w)["errors"].(map[string]any)
		if _, ok := errs["billing_month"]; !ok {
			t.Fatalf("expected billing_month error, got %v", errs)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		w := serve(r, http.MethodPost, "/v1/payments", `{"agreement_id":"a-1","billing_month":"2025-03","amount_due":-1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("agreement lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Create(gomock.Any(), testActor, gomock.Any()).Return(entities.Payment{},
			&usecase.ValidationError{Fields: map[string]string{"agreement_id": "The selected agreement id is invalid."}})

		w := serve(r, http.MethodPost, "/v1/payments", `{"agreement_id":"nope","billing_month":"2025-03","amount_due":1}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if decode(t, w)["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_ShowUpdate(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().GetByID(gomock.Any(), testActor, "p-1").Return(entities.Payment{ID: "p-1", BillingMonth: date(2025, 3, 1)}, nil)

		w := serve(r, http.MethodGet, "/v1/payments/p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Update(gomock.Any(), testActor, "p-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Actor, _ string, in usecase.UpdatePaymentInput) (entities.Payment, error) {
				if in.AmountPaid == nil || *in.AmountPaid != 15000 || in.AmountDue != nil {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Payment{ID: "p-1", BillingMonth: date(2025, 3, 1), AmountDue: 15000, AmountPaid: 15000, Status: entities.PaymentStatusPaid}, nil
			})

		w := serve(r, http.MethodPut, "/v1/payments/p-1", `{"amount_paid":15000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decode(t, w)["status"] != "paid" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("update missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Update(gomock.Any(), testActor, "p-9", gomock.Any()).Return(entities.Payment{}, usecase.ErrNotFound)

		w := serve(r, http.MethodPut, "/v1/payments/p-9", `{"notes":"late"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListAndOutstanding(t *testing.T) {
	t.Run("list paginated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		want := usecase.PaymentQuery{BuildingID: "b-1", Month: "2025-03", Page: 2, PerPage: 1}
		uc.EXPECT().List(gomock.Any(), testActor, want).Return(entities.Page[entities.Payment]{
			Items:       []entities.Payment{{ID: "p-2", BillingMonth: date(2025, 3, 1)}},
			CurrentPage: 2, LastPage: 2, PerPage: 1, Total: 2,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/payments?building_id=b-1&month=2025-03&page=2&per_page=1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decode(t, w)
		meta := body["meta"].(map[string]any)
		if meta["total"] != float64(2) || meta["last_page"] != float64(2) {
			t.Fatalf("unexpected meta %v", meta)
		}
		if len(body["data"].([]any)) != 1 {
			t.Fatalf("unexpected data %v", body["data"])
		}
	})

	t.Run("list bad page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		w := serve(r, http.MethodGet, "/v1/payments?page=abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("outstanding adds remaining", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := paymentRouter(NewPaymentHandler(uc, nil))

		uc.EXPECT().Outstanding(gomock.Any(), testActor, usecase.OutstandingQuery{TenantID: "t-1"}).Return(entities.Page[entities.Payment]{
			Items: []entities.Payment{{
				ID: "p-1", BillingMonth: date(2025, 3, 1), AmountDue: 15000, AmountPaid: 10000, Status: entities.PaymentStatusPartial,
			}},
			CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 1,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/outstanding?tenant_id=t-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		row := decode(t, w)["data"].([]any)[0].(map[string]any)
		if row["remaining"] != float64(5000) || row["id"] != "p-1" {
			t.Fatalf("unexpected row %v", row)
		}
	})
}
