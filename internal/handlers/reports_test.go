package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
)

func TestGetCustomers(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.GET("/api/customers", GetCustomers(st))

	mock.ExpectQuery("FROM customers").
		WillReturnRows(pgxmock.NewRows([]string{"customer_id", "name", "phone", "address"}).
			AddRow(int64(1), "Alice", "555-1234", "1 Main St"))

	w := doJSON(r, http.MethodGet, "/api/customers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := `[{"customer_id":1,"name":"Alice","phone":"555-1234","address":"1 Main St"}]`
	if w.Body.String() != want {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
	assertExpectations(t, mock)
}

func TestGetSummary(t *testing.T) {
	mock, st := newMockStore(t)
	r := newTestRouter()
	r.GET("/api/reports/summary", GetSummary(st))

	mock.ExpectQuery("FROM customers").
		WillReturnRows(pgxmock.NewRows([]string{"customer_id", "name", "phone", "address"}).
			AddRow(int64(1), "Alice", "555-1234", "").
			AddRow(int64(2), "Bob", "555-0000", ""))
	mock.ExpectQuery("FROM orders o").
		WillReturnRows(pgxmock.NewRows([]string{"order_id", "customer_id", "customer_name", "order_type", "total_price", "order_date_time", "created_by_user"}).
			AddRow(int64(1), int64(1), "Alice", "dine-in", "10.00", time.Now(), "jdoe"))
	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(pgxmock.NewRows([]string{"item_id", "name", "category", "price", "is_available"}).
			AddRow(int64(1), "Soup", "starter", "6.50", true))

	w := doJSON(r, http.MethodGet, "/api/reports/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["totalOrders"] != float64(1) || body["totalRevenue"] != "10.00" || body["averageSpent"] != "5.00" {
		t.Fatalf("unexpected summary %v", body)
	}
	assertExpectations(t, mock)
}
