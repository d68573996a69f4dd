package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/dto"
)

var (
	ErrMissingHeader = errors.New("authorization header missing")
	ErrInvalidFormat = errors.New("authorization header must be a bearer token")
	ErrEmptyToken    = errors.New("bearer token is empty")
)

// ExtractBearerToken pulls the token out of the Authorization header. The
// scheme comparison is case-insensitive; surrounding whitespace on the token
// is dropped.
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidFormat
	}

	token := strings.TrimSpace(rest)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// AbortWithUnauthorized ends the request with 401 and the API error
// envelope, same shape the store and proxy errors use.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Err(dto.CodeUnauthorized, err.Error()))
}
