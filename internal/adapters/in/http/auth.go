package http

import (
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// Authenticator turns a bearer token into the calling Party. Tokens are HS256
// signed with a shared secret and carry the caller's address as subject.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) Authenticator {
	return Authenticator{secret: []byte(secret)}
}

// IssueToken signs a token for party. It exists for operators and tests;
// the API itself never issues tokens.
func (a Authenticator) IssueToken(party kernel.Party, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = party.String()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a Authenticator) parse(header string) (kernel.Party, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return kernel.Party{}, jwt.ErrTokenMalformed
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Party{}, err
	}

	return kernel.NewParty(claims.Subject)
}

// RequireCaller rejects requests without a valid token and stores the caller
// in the echo context.
func (a Authenticator) RequireCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		party, err := a.parse(c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return errorResponse(c, http.StatusUnauthorized, "Unauthenticated", "Missing or invalid bearer token")
		}
		c.Set(callerKey, party)
		return next(c)
	}
}

func callerFrom(c echo.Context) kernel.Party {
	party, _ := c.Get(callerKey).(kernel.Party)
	return party
}
