package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"

	"restoflow/internal/events"
	"restoflow/internal/middleware"
	"restoflow/internal/store"
)

type fakePublisher struct {
	mu       sync.Mutex
	orders   []events.OrderPlaced
	payments []events.PaymentRecorded
	err      error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, e events.OrderPlaced) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, e)
	return f.err
}

func (f *fakePublisher) PublishPaymentRecorded(_ context.Context, e events.PaymentRecorded) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, e)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

func newMockStore(t *testing.T) (pgxmock.PgxPoolIface, *store.Store) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, store.New(mock)
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return body
}

func assertExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
