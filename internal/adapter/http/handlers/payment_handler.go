package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/request"
	response "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/response"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

// PaymentHandler exposes the rent ledger.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *logger.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: logger.OrNop(log).With("Handler", "Payment")}
}

// List godoc
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        tenant_id    query  string  false  "Tenant id"
// @Param        building_id  query  string  false  "Building id"
// @Param        unit_id      query  string  false  "Unit id"
// @Param        month        query  string  false  "Billing month (YYYY-MM)"
// @Param        status       query  string  false  "zero-due, unpaid, partial, paid or overpaid"
// @Param        page         query  int     false  "Page (1-based)"
// @Param        per_page     query  int     false  "Page size (1-100, default 15)"
// @Success      200  {object}  response.Paginated[response.PaymentResponse]
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q request.ListPaymentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	page, err := h.usecase.List(c.Request.Context(), actor, q.ToQuery())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromPayment))
}

// Create godoc
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Payment"
// @Success      201   {object}  response.PaymentResponse
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindFailed(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), actor, in)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	h.log.Debug("payment recorded", "payment_id", created.ID, "agreement_id", created.AgreementID, "status", created.Status)
	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// Show godoc
// @Summary      Show a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{id} [get]
func (h *PaymentHandler) Show(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payment, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// Update godoc
// @Summary      Update a payment
// @Description  The status is recomputed from the resulting amounts.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Payment id"
// @Param        body  body      request.UpdatePaymentRequest  true  "Changed fields"
// @Success      200   {object}  response.PaymentResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		bindFailed(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), actor, c.Param("id"), in)
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// Outstanding godoc
// @Summary      Outstanding balances
// @Description  Unpaid and partially paid rows with the remaining balance.
// @Tags         payments
// @Produce      json
// @Param        building_id  query  string  false  "Building id"
// @Param        tenant_id    query  string  false  "Tenant id"
// @Param        month        query  string  false  "Billing month (YYYY-MM)"
// @Param        page         query  int     false  "Page (1-based)"
// @Param        per_page     query  int     false  "Page size (1-100, default 15)"
// @Success      200  {object}  response.Paginated[response.OutstandingPaymentResponse]
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /outstanding [get]
func (h *PaymentHandler) Outstanding(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q request.OutstandingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	page, err := h.usecase.Outstanding(c.Request.Context(), actor, q.ToQuery())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, response.FromOutstandingPayment))
}
