package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mm01rahman/LandlordBD/internal/adapter/http/handlers"
)

const (
	PathAgreements  = "/agreements"
	PathPayments    = "/payments"
	PathOutstanding = "/outstanding"
	PathDashboard   = "/dashboard"
)

func addAgreementRoutes(rg *gin.RouterGroup, h *handlers.AgreementHandler) {
	agreements := rg.Group(PathAgreements)
	{
		agreements.GET("", h.List)
		agreements.POST("", h.Create)
		agreements.GET("/:id", h.Show)
		agreements.PUT("/:id", h.Update)
		agreements.POST("/:id/end", h.End)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", h.List)
		payments.POST("", h.Create)
		payments.GET("/:id", h.Show)
		payments.PUT("/:id", h.Update)
	}
	rg.GET(PathOutstanding, h.Outstanding)
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", h.Summary)
		dashboard.GET("/compare", h.Compare)
	}
}
