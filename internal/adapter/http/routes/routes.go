package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/mm01rahman/LandlordBD/docs"
	"github.com/mm01rahman/LandlordBD/internal/adapter/http/handlers"
	"github.com/mm01rahman/LandlordBD/internal/adapter/http/middleware"
	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

// Dependencies are the use cases served over HTTP.
type Dependencies struct {
	Agreements usecase.IAgreementUseCase
	Payments   usecase.IPaymentUseCase
	Dashboard  usecase.IDashboardUseCase
}

// Run opens the configured store, serves the API on cfg.Listen and shuts down
// gracefully when ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	loc := cfg.Location()
	deps := Dependencies{
		Agreements: usecase.NewAgreementUseCase(st.agreements, st.payments, st.properties, loc, log),
		Payments:   usecase.NewPaymentUseCase(st.payments, st.agreements, st.properties, log),
		Dashboard:  usecase.NewDashboardUseCase(st.payments, st.agreements, st.properties, loc, log),
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           NewRouter(cfg, deps, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.Listen, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// NewRouter wires middleware, documentation and the /v1 API.
func NewRouter(cfg config.Config, deps Dependencies, log *logger.Logger) *gin.Engine {
	log = logger.OrNop(log)
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	auth := middleware.NewAuth(cfg.JWTSecret, cfg.JWTIssuer, log)
	protected := v1.Group("")
	protected.Use(auth.RequireAuth())
	addAgreementRoutes(protected, handlers.NewAgreementHandler(deps.Agreements, log))
	addPaymentRoutes(protected, handlers.NewPaymentHandler(deps.Payments, log))
	addDashboardRoutes(protected, handlers.NewDashboardHandler(deps.Dashboard))
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, log *logger.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	router.Use(middleware.RequestContext())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
