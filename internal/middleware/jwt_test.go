package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/utils"
)

const testSecret = "middleware-test-secret"

func run(t *testing.T, authHeader string, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/visitors", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := JWTAuth(testSecret)(next)(c)
	return rec, err
}

func TestJWTAuth_MissingToken(t *testing.T) {
	rec, err := run(t, "", func(c echo.Context) error {
		t.Fatal("next handler should not run without a token")
		return nil
	})
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Token is missing!") {
		t.Errorf("body = %s, want missing-token message", rec.Body.String())
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	rec, _ := run(t, "Bearer garbage", func(c echo.Context) error {
		t.Fatal("next handler should not run with a bad token")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Token is invalid!") {
		t.Errorf("body = %s, want invalid-token message", rec.Body.String())
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("some-other-secret", utils.TokenClaims{UserID: 1, BuildingID: 1}, 1)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec, _ := run(t, "Bearer "+tok.Token, func(c echo.Context) error { return nil })
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":         uint64(1),
		"building_id": uint64(1),
		"exp":         time.Now().UTC().Add(-time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	rec, _ := run(t, "Bearer "+raw, func(c echo.Context) error { return nil })
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Token has expired!") {
		t.Errorf("body = %s, want expired-token message", rec.Body.String())
	}
}

func TestJWTAuth_ValidTokenPopulatesContext(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, utils.TokenClaims{
		UserID:     42,
		Username:   "g1",
		Role:       "guard",
		BuildingID: 9,
	}, 24)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec, herr := run(t, "Bearer "+tok.Token, func(c echo.Context) error {
		called = true
		if got := c.Get(CtxUserID); got != uint64(42) {
			t.Errorf("user_id in context = %v, want 42", got)
		}
		if got := c.Get(CtxUsername); got != "g1" {
			t.Errorf("username in context = %v, want g1", got)
		}
		if got := c.Get(CtxRole); got != "guard" {
			t.Errorf("role in context = %v, want guard", got)
		}
		if got := c.Get(CtxBuildingID); got != uint64(9) {
			t.Errorf("building_id in context = %v, want 9", got)
		}
		return c.NoContent(http.StatusOK)
	})
	if herr != nil {
		t.Fatalf("handler error: %v", herr)
	}
	if !called {
		t.Fatal("next handler was not called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
