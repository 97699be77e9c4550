package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/response"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Param        period  query     string  false  "7d, 30d, 90d or YTD, optionally suffixed with _prev (default 30d)"
// @Success      200     {object}  response.DashboardResponse
// @Security     Bearer
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	summary, err := h.usecase.Summary(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}

// Compare godoc
// @Summary      Dashboard comparison with the previous window
// @Tags         dashboard
// @Produce      json
// @Param        period  query     string  false  "Current window token"
// @Success      200     {object}  response.DashboardCompareResponse
// @Security     Bearer
// @Router       /dashboard/compare [get]
func (h *DashboardHandler) Compare(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cmp, err := h.usecase.Compare(c.Request.Context(), actor, c.Query("period"))
	if err != nil {
		writeError(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardComparison(cmp))
}
