package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/config"
	"github.com/iliyamo/visitor-entry-system/internal/repository"
	"github.com/iliyamo/visitor-entry-system/internal/utils"
)

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserStore
}

func NewAuthHandler(cfg config.Config, u repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// validRoles are the only accepted values for user_role at registration.
// Role is informational beyond this point: no route discriminates between
// admin and guard.
var validRoles = map[string]bool{
	"super_admin": true,
	"admin":       true,
	"guard":       true,
}

// ----- DTOs -----

type registerReq struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	UserRole   string `json:"user_role"`
	BuildingID uint64 `json:"building_id"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	UserRole   string `json:"user_role"`
	BuildingID uint64 `json:"building_id"`
}

// Register creates a guard/admin account tied to a building.
// POST /register
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No data provided"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.UserRole == "" || req.BuildingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
	}
	if !validRoles[req.UserRole] {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user role"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Password, req.UserRole, req.BuildingID, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		}
		log.Printf("register: create user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error registering user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user_id": uid,
	})
}

// Login verifies credentials and issues a 24-hour access token carrying the
// user's identity and building claim. Unknown username and wrong password
// produce the same 401 body so the response never signals whether an
// account exists.
// POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No data provided"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing username or password"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		log.Printf("login: query user failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, utils.TokenClaims{
		UserID:     u.ID,
		Username:   u.Username,
		Role:       u.Role,
		BuildingID: u.BuildingID,
	}, h.Cfg.AccessTTLHrs)
	if err != nil {
		log.Printf("login: issue token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   access.Token,
		"user": userPart{
			UserID:     u.ID,
			Username:   u.Username,
			UserRole:   u.Role,
			BuildingID: u.BuildingID,
		},
	})
}
