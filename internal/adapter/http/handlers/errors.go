package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/mm01rahman/LandlordBD/internal/adapter/http/dto/request"
	"github.com/mm01rahman/LandlordBD/internal/adapter/http/middleware"
	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/usecase"
	"github.com/mm01rahman/LandlordBD/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthenticated", http.StatusUnauthorized)
)

func mapUseCaseError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	var cerr *usecase.ConflictError
	var ferr request.InvalidFields
	switch {
	case errors.As(err, &verr):
		return validationError(verr.Fields)
	case errors.As(err, &ferr):
		return validationError(ferr)
	case errors.As(err, &cerr):
		return pkg.NewDomainErrorSimple("CONFLICT", cerr.Message, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "This action is unauthorized.", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func validationError(fields map[string]string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "The given data was invalid.", http.StatusUnprocessableEntity).
		WithFields(fields)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindFailed answers a request whose body or query could not be bound.
func bindFailed(c *gin.Context, err error) {
	if fields := request.FieldErrors(err); fields != nil {
		writeError(c, validationError(fields))
		return
	}
	writeError(c, errInvalidRequest)
}

func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		writeError(c, errUnauthorized)
	}
	return actor, ok
}
