package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "errors"   // errors.Is distinguishes expiry from other token failures
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/visitor-entry-system/internal/utils" // token parsing and claim types
)

// Context keys under which JWTAuth stores the verified claims.  Handlers
// read these via c.Get() to scope every storage operation to the caller's
// building.
const (
    CtxUserID     = "user_id"
    CtxUsername   = "username"
    CtxRole       = "role"
    CtxBuildingID = "building_id"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the token's claims into the request context.  The provided secret
// must match the one used when issuing tokens.  This middleware is the sole
// authorization mechanism: there is no session table, so a request is
// authenticated exactly when its token's signature and expiry check out.
// The three failure modes keep distinct messages (missing, expired,
// invalid) but all map to 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header should start
            // with "Bearer " followed by the JWT.  If it doesn't, respond
            // with 401 Unauthorized indicating that authentication is
            // required.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is missing!"})
            }
            // Remove the "Bearer " prefix to obtain the raw token string.
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.ParseAccessToken(secret, raw)
            if err != nil {
                if errors.Is(err, utils.ErrTokenExpired) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token has expired!"})
                }
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token is invalid!"})
            }

            // Store the verified claims in the context with concrete types
            // so handlers don't repeat the numeric coercion.
            c.Set(CtxUserID, claims.UserID)
            c.Set(CtxUsername, claims.Username)
            c.Set(CtxRole, claims.Role)
            c.Set(CtxBuildingID, claims.BuildingID)
            // Call the next handler in the chain and return its result.
            return next(c)
        }
    }
}
