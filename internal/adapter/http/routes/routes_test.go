package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mm01rahman/LandlordBD/internal/adapter/http/handlers/mocks"
	"github.com/mm01rahman/LandlordBD/internal/config"
	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:   "route-secret",
		Timezone:    "UTC",
		CORSOrigins: []string{"http://localhost:5173"},
		Tracing:     config.TracingFlags{ServiceName: "test"},
	}
}

func bearer(t *testing.T, secret, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agreements := mocks.NewMockIAgreementUseCase(ctrl)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	dashboard := mocks.NewMockIDashboardUseCase(ctrl)
	cfg := testConfig()
	r := NewRouter(cfg, Dependencies{Agreements: agreements, Payments: payments, Dashboard: dashboard}, nil)

	t.Run("ping is public", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("api requires a token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/agreements", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("actor comes from the token subject", func(t *testing.T) {
		agreements.EXPECT().List(gomock.Any(), entities.Actor{UserID: "user-7"}, usecase.AgreementQuery{}).
			Return([]entities.RentalAgreement{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/agreements", nil)
		req.Header.Set("Authorization", bearer(t, cfg.JWTSecret, "user-7"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("outstanding is mounted under v1", func(t *testing.T) {
		payments.EXPECT().Outstanding(gomock.Any(), entities.Actor{UserID: "user-7"}, usecase.OutstandingQuery{}).
			Return(entities.Page[entities.Payment]{CurrentPage: 1, LastPage: 1, PerPage: 15}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/outstanding", nil)
		req.Header.Set("Authorization", bearer(t, cfg.JWTSecret, "user-7"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("swagger ui", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOpenStore(t *testing.T) {
	cfg := testConfig()
	cfg.Store = config.StoreSQLite
	cfg.SQL = config.SQLFlags{DSN: "file::memory:", AutoMigrate: true}

	st, err := openStore(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer st.close()
	require.NotNil(t, st.agreements)
	require.NotNil(t, st.payments)
	require.NotNil(t, st.properties)

	cfg.Store = "mongo"
	_, err = openStore(context.Background(), cfg, nil)
	require.Error(t, err)
}
