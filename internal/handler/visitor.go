package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/queue"
	"github.com/iliyamo/visitor-entry-system/internal/repository"
)

// defaultPhotoURL is stored when a check-in carries no photo.
const defaultPhotoURL = "https://placehold.co/150x150/cccccc/000000?text=No+Image"

// timeLayout is the wire format for entry/exit times in list responses.
const timeLayout = "2006-01-02 15:04:05"

// VisitorHandler serves the building-scoped visitor ledger. Every operation
// takes its building id from the verified token context; a building id in
// the request body is never read. Notify, when set, is called after a
// successful check-in so a broker event can reach downstream notifiers; it
// must not block or fail the request.
type VisitorHandler struct {
	Visitors repository.VisitorStore
	Notify   func(context.Context, queue.VisitorCheckedInEvent)
}

func NewVisitorHandler(v repository.VisitorStore) *VisitorHandler {
	return &VisitorHandler{Visitors: v}
}

type addVisitorReq struct {
	Name            string `json:"name"`
	RoomNumber      string `json:"room_number"`
	Purpose         string `json:"purpose"`
	VisitorMobile   string `json:"visitor_mobile"`
	RoomOwnerMobile string `json:"room_owner_mobile"`
	PhotoURL        string `json:"photo_url"`
}

type visitorResp struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	RoomNumber      string  `json:"room_number"`
	Purpose         string  `json:"purpose"`
	VisitorMobile   string  `json:"visitor_mobile"`
	RoomOwnerMobile string  `json:"room_owner_mobile"`
	PhotoURL        string  `json:"photo_url"`
	EntryTime       string  `json:"entry_time"`
	ExitTime        *string `json:"exit_time"`
	Status          string  `json:"status"`
	BuildingName    string  `json:"building_name"`
}

// AddVisitor records a check-in for the caller's building.
// POST /visitor
func (h *VisitorHandler) AddVisitor(c echo.Context) error {
	buildingID, err := getBuildingID(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "User not associated with a building."})
	}

	var req addVisitorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "No data provided"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.RoomNumber == "" || req.Purpose == "" ||
		req.VisitorMobile == "" || req.RoomOwnerMobile == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing required fields"})
	}
	photo := strings.TrimSpace(req.PhotoURL)
	if photo == "" {
		photo = defaultPhotoURL
	}

	v := &repository.Visitor{
		Name:            req.Name,
		RoomNumber:      req.RoomNumber,
		Purpose:         req.Purpose,
		VisitorMobile:   req.VisitorMobile,
		RoomOwnerMobile: req.RoomOwnerMobile,
		PhotoURL:        photo,
		BuildingID:      buildingID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Visitors.Create(ctx, v); err != nil {
		log.Printf("visitor: insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error adding visitor"})
	}

	if h.Notify != nil {
		recordedBy, _ := getUserID(c)
		ev := queue.VisitorCheckedInEvent{
			VisitorID:       v.ID,
			Name:            v.Name,
			RoomNumber:      v.RoomNumber,
			Purpose:         v.Purpose,
			RoomOwnerMobile: v.RoomOwnerMobile,
			BuildingID:      v.BuildingID,
			RecordedBy:      recordedBy,
			EntryTime:       v.EntryTime.Format(timeLayout),
		}
		// Detached from the request context so a slow broker cannot delay
		// or fail the response.
		go h.Notify(context.Background(), ev)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Visitor added successfully",
		"visitor_id": v.ID,
	})
}

// ListVisitors returns the caller's building ledger, most recent entry first.
// GET /visitors
func (h *VisitorHandler) ListVisitors(c echo.Context) error {
	buildingID, err := getBuildingID(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "User not associated with a building."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Visitors.ListByBuilding(ctx, buildingID)
	if err != nil {
		log.Printf("visitor: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching visitors"})
	}

	out := make([]visitorResp, 0, len(items))
	for _, v := range items {
		resp := visitorResp{
			ID:              v.ID,
			Name:            v.Name,
			RoomNumber:      v.RoomNumber,
			Purpose:         v.Purpose,
			VisitorMobile:   v.VisitorMobile,
			RoomOwnerMobile: v.RoomOwnerMobile,
			PhotoURL:        v.PhotoURL,
			EntryTime:       v.EntryTime.Format(timeLayout),
			Status:          v.Status,
			BuildingName:    v.BuildingName,
		}
		if v.ExitTime.Valid {
			s := v.ExitTime.Time.Format(timeLayout)
			resp.ExitTime = &s
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

// CheckoutVisitor marks a visitor OUT. The repository refuses entries that
// don't exist, belong to another building, or are already OUT; all three
// come back as the same 404 so nothing leaks about other buildings' data.
// PUT /visitor/:id/checkout
func (h *VisitorHandler) CheckoutVisitor(c echo.Context) error {
	buildingID, err := getBuildingID(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "User not associated with a building."})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid visitor id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Visitors.Checkout(ctx, id, buildingID); err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Visitor not found or not in your building, or already checked out"})
		}
		log.Printf("visitor: checkout failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error checking out visitor"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Visitor %d checked out successfully", id),
	})
}
