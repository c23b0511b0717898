package handlers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pashagolub/pgxmock/v4"

	"restoflow/internal/middleware"
)

func TestGetMenuPricesAsStrings(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.GET("/api/menu", GetMenu(st))

	mock.ExpectQuery("SELECT item_id, name, category, price::text, is_available FROM menu_items").
		WillReturnRows(pgxmock.NewRows([]string{"item_id", "name", "category", "price", "is_available"}).
			AddRow(int64(1), "Soup", "starter", "6.5", true))

	w := doJSON(r, http.MethodGet, "/api/menu", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := `[{"item_id":1,"name":"Soup","category":"starter","price":"6.50","is_available":true}]`
	if w.Body.String() != want {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	assertExpectations(t, mock)
}

func TestGetMenuDatabaseError(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.GET("/api/menu", GetMenu(st))

	mock.ExpectQuery("FROM menu_items").WillReturnError(errors.New("relation does not exist"))

	w := doJSON(r, http.MethodGet, "/api/menu", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if decodeBody(t, w)["error"] != "relation does not exist" {
		t.Fatalf("expected driver message, got %s", w.Body.String())
	}
	assertExpectations(t, mock)
}

func TestCreateMenuItem(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.POST("/api/menu", CreateMenuItem(st))

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Lemonade", "drinks", "3.00", true).
		WillReturnRows(pgxmock.NewRows([]string{"item_id"}).AddRow(int64(12)))

	w := doJSON(r, http.MethodPost, "/api/menu", `{"name":"Lemonade","category":"drinks","price":3}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["id"] != float64(12) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	assertExpectations(t, mock)
}

func TestCreateMenuItemValidation(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.POST("/api/menu", CreateMenuItem(st))

	w := doJSON(r, http.MethodPost, "/api/menu", `{"name":"Lemonade","category":"soda","price":"3.00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	details, _ := decodeBody(t, w)["details"].(map[string]any)
	if details["category"] != "oneof" {
		t.Fatalf("expected category detail, got %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/menu", `{"name":"Lemonade","category":"drinks","price":"-1"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", w.Code)
	}
	assertExpectations(t, mock)
}

func TestUpdateMenuAvailability(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.PATCH("/api/menu/:id", UpdateMenuAvailability(st))

	mock.ExpectExec("UPDATE menu_items SET is_available").
		WithArgs(false, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE menu_items SET is_available").
		WithArgs(true, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	if w := doJSON(r, http.MethodPatch, "/api/menu/4", `{"is_available":false}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodPatch, "/api/menu/99", `{"is_available":true}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	assertExpectations(t, mock)
}

func TestUpdateMenuAvailabilityBadInput(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.PATCH("/api/menu/:id", UpdateMenuAvailability(st))

	if w := doJSON(r, http.MethodPatch, "/api/menu/abc", `{"is_available":true}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/api/menu/4", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing flag, got %d", w.Code)
	}
	assertExpectations(t, mock)
}

func TestCreateMenuItemRequiresPrice(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.POST("/api/menu", CreateMenuItem(st))

	for _, body := range []string{
		`{"name":"Soup","category":"starter"}`,
		`{"name":"Soup","category":"starter","price":null}`,
	} {
		w := doJSON(r, http.MethodPost, "/api/menu", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, w.Code)
		}
		details, _ := decodeBody(t, w)["details"].(map[string]any)
		if details["price"] != "required" {
			t.Fatalf("%s: expected price detail, got %s", body, w.Body.String())
		}
	}
	assertExpectations(t, mock)
}

func TestMenuLogsCarryRequestID(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	mock, st := newMockStore(t)
	r := newTestRouter()
	r.POST("/api/menu", CreateMenuItem(st))
	r.PATCH("/api/menu/:id", UpdateMenuAvailability(st))

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs("Tea", "drinks", "2.00", true).
		WillReturnRows(pgxmock.NewRows([]string{"item_id"}).AddRow(int64(13)))
	mock.ExpectExec("UPDATE menu_items SET is_available").
		WithArgs(false, int64(13)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	send := func(method, path, body, requestID string) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.RequestIDHeader, requestID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code >= 300 {
			t.Fatalf("%s %s: unexpected status %d", method, path, w.Code)
		}
	}
	send(http.MethodPost, "/api/menu", `{"name":"Tea","category":"drinks","price":"2"}`, "till-1-create")
	send(http.MethodPatch, "/api/menu/13", `{"is_available":false}`, "till-1-toggle")

	out := buf.String()
	if !strings.Contains(out, "menu item 13 added (request till-1-create)") {
		t.Fatalf("create log line lacks request id: %s", out)
	}
	if !strings.Contains(out, "availability set to false (request till-1-toggle)") {
		t.Fatalf("availability log line lacks request id: %s", out)
	}
	assertExpectations(t, mock)
}
