package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"servix/backend/internal/domain"
	"servix/backend/internal/service"
	"servix/backend/internal/store/memory"
)

// newTestAPI builds a full API with an in-memory snapshot store, real
// AuthManager and real engine so handler tests exercise the complete
// request path.
func newTestAPI(t *testing.T) *API {
	t.Helper()

	svc, err := service.New(context.Background(), memory.New())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	auth := NewAuthManager("test-secret-key", time.Hour)

	return New(svc, auth, "*")
}

func login(t *testing.T, handler http.Handler, username, password string) string {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s failed: %d (body: %s)", username, rec.Code, rec.Body.String())
	}

	var body domain.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode login body: %v", err)
	}
	return body.AccessToken
}

func doJSON(t *testing.T, api *API, handler http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-CSRF-Token", api.generateCSRFToken())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("expected ok:true, got %v", body["ok"])
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()

	payload, _ := json.Marshal(map[string]string{
		"username": "admin",
		"password": "wrongpassword",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestHandleLogin_RateLimit(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()

	// The loginLimiter allows 5 attempts per minute.
	// Fire 6 requests from the same "IP" (httptest uses RemoteAddr "192.0.2.1:1234").
	payload, _ := json.Marshal(map[string]string{
		"username": "admin",
		"password": "badpass",
	})

	var lastCode int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after exhausting login attempts, got %d", lastCode)
	}
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()
	admin := login(t, handler, "admin", "admin123")

	rec := doJSON(t, api, handler, http.MethodPost, "/api/v1/products", admin, domain.ProductCreateRequest{
		Name:            "Filtro de aceite",
		Barcode:         "FIL-001",
		Quantity:        10,
		CostCents:       500,
		PriceGrossCents: 1190,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	var product domain.Product
	if err := json.NewDecoder(rec.Body).Decode(&product); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if product.PriceNetCents != 1000 {
		t.Fatalf("expected derived net 1000, got %d", product.PriceNetCents)
	}

	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/products/search?q=filtro", admin, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "FIL-001") {
		t.Fatalf("search did not find the product: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/products/barcode/FIL-001", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("barcode lookup: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, api, handler, http.MethodDelete, "/api/v1/products/"+product.ID, admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete product: expected 200, got %d (body: %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodDelete, "/api/v1/products/"+product.ID, admin, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestCashierCannotCreateProduct(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()
	cashier := login(t, handler, "caja1", "caja123")

	rec := doJSON(t, api, handler, http.MethodPost, "/api/v1/products", cashier, domain.ProductCreateRequest{
		Name:            "No permitido",
		PriceGrossCents: 1000,
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()
	admin := login(t, handler, "admin", "admin123")
	cashier := login(t, handler, "caja1", "caja123")

	rec := doJSON(t, api, handler, http.MethodPost, "/api/v1/products", admin, domain.ProductCreateRequest{
		Name:            "Bujia",
		Barcode:         "BUJ-001",
		Quantity:        10,
		PriceGrossCents: 1500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create product: %d", rec.Code)
	}
	var product domain.Product
	_ = json.NewDecoder(rec.Body).Decode(&product)

	rec = doJSON(t, api, handler, http.MethodPost, "/api/v1/register/open", cashier, domain.RegisterOpenRequest{OpeningCents: 10000})
	if rec.Code != http.StatusOK {
		t.Fatalf("open register: %d (body: %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodPost, "/api/v1/cart/items", cashier, domain.CartAddRequest{ProductID: product.ID, Qty: 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("add to cart: %d (body: %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodPatch, "/api/v1/cart/items/"+product.ID, cashier, domain.CartUpdateRequest{Delta: 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("update cart quantity: %d (body: %s)", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodPost, "/api/v1/checkout", cashier, domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCash,
		PaidCents:     5000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d (body: %s)", rec.Code, rec.Body.String())
	}
	var sale domain.Sale
	if err := json.NewDecoder(rec.Body).Decode(&sale); err != nil {
		t.Fatalf("decode sale: %v", err)
	}
	if sale.TicketNumber != 1001 || sale.TotalCents != 3000 || sale.ChangeCents != 2000 {
		t.Fatalf("unexpected sale: %+v", sale)
	}

	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/register", cashier, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"balance_cents":13000`) {
		t.Fatalf("register status: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodGet, fmt.Sprintf("/api/v1/sales/%d/receipt", sale.TicketNumber), cashier, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Ticket #1001") {
		t.Fatalf("receipt: %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/sales/export", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("sales export: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Fatalf("expected CSV content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "1001") {
		t.Fatalf("export missing the sale: %s", rec.Body.String())
	}
}

func TestCheckoutWithoutOpenRegisterConflicts(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()
	cashier := login(t, handler, "caja1", "caja123")

	rec := doJSON(t, api, handler, http.MethodPost, "/api/v1/checkout", cashier, domain.CheckoutRequest{
		PaymentMethod: domain.PaymentCash,
		PaidCents:     1000,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 when register is closed, got %d (body: %s)", rec.Code, rec.Body.String())
	}
}

func TestRequireAuth(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without bearer token, got %d", rec.Code)
	}

	cashier := login(t, handler, "caja1", "caja123")
	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/reports/dashboard", cashier, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cashier on admin report, got %d", rec.Code)
	}
}

func TestRegisterCloseReturnsClosure(t *testing.T) {
	api := newTestAPI(t)
	handler := api.Handler()
	admin := login(t, handler, "admin", "admin123")
	cashier := login(t, handler, "caja1", "caja123")

	doJSON(t, api, handler, http.MethodPost, "/api/v1/register/open", cashier, domain.RegisterOpenRequest{OpeningCents: 5000})

	rec := doJSON(t, api, handler, http.MethodPost, "/api/v1/register/close", cashier, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("close register: %d (body: %s)", rec.Code, rec.Body.String())
	}
	var closure domain.Closure
	if err := json.NewDecoder(rec.Body).Decode(&closure); err != nil {
		t.Fatalf("decode closure: %v", err)
	}
	if closure.OpeningCents != 5000 || closure.ClosingBalanceCents != 5000 {
		t.Fatalf("unexpected closure: %+v", closure)
	}

	rec = doJSON(t, api, handler, http.MethodPost, "/api/v1/register/close", cashier, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on double close, got %d", rec.Code)
	}

	rec = doJSON(t, api, handler, http.MethodGet, "/api/v1/closures", admin, nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), closure.ID) {
		t.Fatalf("closures listing: %d %s", rec.Code, rec.Body.String())
	}
}
