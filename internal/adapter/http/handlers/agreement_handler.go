package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/request"
	response "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/response"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

// AgreementHandler exposes the rental agreement lifecycle.
type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
	log     *logger.Logger
}

func NewAgreementHandler(uc usecase.IAgreementUseCase, log *logger.Logger) *AgreementHandler {
	return &AgreementHandler{usecase: uc, log: logger.OrNop(log).With("Handler", "Agreement")}
}

// List godoc
// @Summary      List rental agreements
// @Tags         agreements
// @Produce      json
// @Param        status     query  string  false  "upcoming, active or ended"
// @Param        tenant_id  query  string  false  "Tenant id"
// @Param        unit_id    query  string  false  "Unit id"
// @Success      200  {array}   response.AgreementResponse
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements [get]
func (h *AgreementHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q request.ListAgreementsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}
	items, err := h.usecase.List(c.Request.Context(), actor, q.ToQuery())
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreements(items))
}

// Create godoc
// @Summary      Create a rental agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateAgreementRequest  true  "Agreement"
// @Success      201   {object}  response.AgreementResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements [post]
func (h *AgreementHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateAgreementRequest
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
	h.log.Debug("agreement created", "agreement_id", created.ID, "unit_id", created.UnitID, "status", created.Status)
	c.JSON(http.StatusCreated, response.FromAgreement(created))
}

// Show godoc
// @Summary      Show a rental agreement
// @Tags         agreements
// @Produce      json
// @Param        id   path      string  true  "Agreement id"
// @Success      200  {object}  response.AgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements/{id} [get]
func (h *AgreementHandler) Show(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	agreement, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// Update godoc
// @Summary      Update a rental agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Agreement id"
// @Param        body  body      request.UpdateAgreementRequest  true  "Changed fields"
// @Success      200   {object}  response.AgreementResponse
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements/{id} [put]
func (h *AgreementHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.UpdateAgreementRequest
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
	c.JSON(http.StatusOK, response.FromAgreement(updated))
}

// End godoc
// @Summary      End a rental agreement
// @Description  Marks the agreement ended as of today and vacates the unit.
// @Tags         agreements
// @Produce      json
// @Param        id   path      string  true  "Agreement id"
// @Success      200  {object}  response.EndAgreementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /agreements/{id}/end [post]
func (h *AgreementHandler) End(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ended, err := h.usecase.End(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	h.log.Debug("agreement ended", "agreement_id", ended.ID, "unit_id", ended.UnitID)
	c.JSON(http.StatusOK, response.EndAgreementResponse{
		Message:   "Agreement ended",
		Agreement: response.FromAgreement(ended),
	})
}
