package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware never ran on this route;
// fail closed with 401 before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// ctxToken returns the raw bearer token the Auth middleware validated.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}
