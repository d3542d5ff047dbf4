package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"staybook/internal/auth"
)

// currentUserID extracts the authenticated user's id from the verified token
// placed in the request context by the JWT middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.UserUUID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
