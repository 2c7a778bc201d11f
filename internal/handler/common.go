package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/middleware"
)

// getUserID extracts the authenticated user's id from echo.Context. JWTAuth
// stores it as uint64, but the coercion cases are kept for values that
// arrive through other paths (tests, numeric JSON claims).
func getUserID(c echo.Context) (uint64, error) {
	return ctxUint(c, middleware.CtxUserID)
}

// getBuildingID extracts the caller's building id from echo.Context. A zero
// or missing value means the token carries no building claim; protected
// visitor operations must refuse such callers with 403.
func getBuildingID(c echo.Context) (uint64, error) {
	n, err := ctxUint(c, middleware.CtxBuildingID)
	if err != nil || n == 0 {
		return 0, errors.New("no building in context")
	}
	return n, nil
}

func ctxUint(c echo.Context, key string) (uint64, error) {
	v := c.Get(key)
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid " + key + " in context")
}
