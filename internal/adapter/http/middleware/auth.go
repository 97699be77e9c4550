package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mm01rahman/LandlordBD/internal/domain/entities"
	"github.com/mm01rahman/LandlordBD/internal/infrastructure/logger"
	"github.com/mm01rahman/LandlordBD/pkg"
)

const actorKey = "actor"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
)

// Auth verifies HS256 bearer tokens issued by the session service and exposes
// the token subject as the request Actor.
type Auth struct {
	secret []byte
	issuer string
	log    *logger.Logger
}

func NewAuth(secret, issuer string, log *logger.Logger) *Auth {
	return &Auth{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		log:    logger.OrNop(log).With("Middleware", "Auth"),
	}
}

func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		actor, err := a.verify(raw)
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		SetActor(c, actor)
		c.Next()
	}
}

func (a *Auth) verify(raw string) (entities.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return entities.Actor{}, err
	}
	if !token.Valid {
		return entities.Actor{}, errors.New("token not valid")
	}
	actor := entities.Actor{UserID: strings.TrimSpace(claims.Subject)}
	if !actor.Valid() {
		return entities.Actor{}, errors.New("missing subject claim")
	}
	return actor, nil
}

// SetActor stores the authenticated Actor on the request context.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorKey, actor)
}

// ActorFromContext returns the Actor set by RequireAuth.
func ActorFromContext(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok && actor.Valid()
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
