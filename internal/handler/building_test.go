package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/visitor-entry-system/internal/repository"
)

func getReq(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListBuildings_ReturnsNameSortedList(t *testing.T) {
	h := NewBuildingHandler(&mockBuildingStore{
		listAllFunc: func(ctx context.Context) ([]*repository.Building, error) {
			return []*repository.Building{
				{ID: 2, Name: "Annex"},
				{ID: 1, Name: "Main Campus Hostel"},
			}, nil
		},
	})
	c, rec := getReq(t, "/buildings")
	if err := h.ListBuildings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out []struct {
		BuildingID   uint64 `json:"building_id"`
		BuildingName string `json:"building_name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(out) != 2 || out[0].BuildingName != "Annex" || out[1].BuildingID != 1 {
		t.Errorf("unexpected listing: %+v", out)
	}
}

func TestListBuildings_EmptyIsArrayNotNull(t *testing.T) {
	h := NewBuildingHandler(&mockBuildingStore{
		listAllFunc: func(ctx context.Context) ([]*repository.Building, error) { return nil, nil },
	})
	c, rec := getReq(t, "/buildings")
	if err := h.ListBuildings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got == "null\n" || got == "null" {
		t.Error("empty listing should encode as [], not null")
	}
}

func TestListBuildings_StorageError(t *testing.T) {
	h := NewBuildingHandler(&mockBuildingStore{
		listAllFunc: func(ctx context.Context) ([]*repository.Building, error) { return nil, sql.ErrConnDone },
	})
	c, rec := getReq(t, "/buildings")
	if err := h.ListBuildings(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestCreateBuilding_MissingName(t *testing.T) {
	h := NewBuildingHandler(&mockBuildingStore{})
	c, rec := postJSON(t, "/buildings", `{"building_address":"12 Elm St"}`)
	if err := h.CreateBuilding(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBuilding_DuplicateName(t *testing.T) {
	h := NewBuildingHandler(&mockBuildingStore{
		createFunc: func(ctx context.Context, name, address string) (uint64, error) {
			return 0, repository.ErrBuildingExists
		},
	})
	c, rec := postJSON(t, "/buildings", `{"building_name":"Annex"}`)
	if err := h.CreateBuilding(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCreateBuilding_Success(t *testing.T) {
	var gotName, gotAddr string
	h := NewBuildingHandler(&mockBuildingStore{
		createFunc: func(ctx context.Context, name, address string) (uint64, error) {
			gotName, gotAddr = name, address
			return 4, nil
		},
	})
	c, rec := postJSON(t, "/buildings", `{"building_name":"Annex","building_address":"12 Elm St"}`)
	if err := h.CreateBuilding(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if gotName != "Annex" || gotAddr != "12 Elm St" {
		t.Errorf("store received %q/%q", gotName, gotAddr)
	}
	var body struct {
		BuildingID uint64 `json:"building_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.BuildingID != 4 {
		t.Errorf("building_id = %d, want 4", body.BuildingID)
	}
}
