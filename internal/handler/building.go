package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/repository"
)

// BuildingHandler serves the public building registry. Neither endpoint
// requires authentication: the listing feeds registration and login forms
// before any account exists.
type BuildingHandler struct {
	Buildings repository.BuildingStore
}

func NewBuildingHandler(b repository.BuildingStore) *BuildingHandler {
	return &BuildingHandler{Buildings: b}
}

type createBuildingReq struct {
	BuildingName    string `json:"building_name"`
	BuildingAddress string `json:"building_address"`
}

// ListBuildings returns all buildings sorted by name.
// GET /buildings
func (h *BuildingHandler) ListBuildings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Buildings.ListAll(ctx)
	if err != nil {
		log.Printf("buildings: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error managing buildings"})
	}
	if items == nil {
		items = []*repository.Building{}
	}
	return c.JSON(http.StatusOK, items)
}

// CreateBuilding registers a new building. The address is optional.
// POST /buildings
func (h *BuildingHandler) CreateBuilding(c echo.Context) error {
	var req createBuildingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No data provided"})
	}
	name := strings.TrimSpace(req.BuildingName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Building name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Buildings.Create(ctx, name, req.BuildingAddress)
	if err != nil {
		if errors.Is(err, repository.ErrBuildingExists) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Building name already exists"})
		}
		log.Printf("buildings: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error managing buildings"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "Building registered successfully",
		"building_id": id,
	})
}
