package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce/internal/domain"
	"github.com/gin-gonic/gin"
)

func authedDeps(role string) Deps {
	deps := testDeps()
	deps.UserSvc = &stubUserService{user: &domain.User{ID: 7, Username: "bob", Role: role}}
	return deps
}

func TestCheckoutHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleUser)
	deps.OrderSvc = &stubOrderService{order: &domain.Order{
		ID:          1,
		UserID:      7,
		TotalAmount: 38.5,
		Status:      domain.OrderStatusPending,
	}}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"address":"1 Main St","paymentMethod":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"totalAmount":38.5`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleUser)
	deps.OrderSvc = &stubOrderService{err: domain.ErrEmptyCart}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"address":"1 Main St","paymentMethod":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutHandler_InsufficientStockNamesAllProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleUser)
	deps.OrderSvc = &stubOrderService{err: &domain.InsufficientStockError{
		Products: []string{"Widget", "Gadget"},
	}}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"address":"1 Main St","paymentMethod":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, name := range []string{"Widget", "Gadget"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Fatalf("expected %s named in body: %s", name, rec.Body.String())
		}
	}
}

func TestGetOrderHandler_OtherUsersOrderHidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleUser)
	deps.OrderSvc = &stubOrderService{order: &domain.Order{ID: 3, UserID: 99}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/3", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetOrderHandler_AdminSeesAny(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleAdmin)
	deps.OrderSvc = &stubOrderService{order: &domain.Order{ID: 3, UserID: 99}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/orders/3", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSetOrderStatusHandler_QueryParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleAdmin)
	orderSvc := &stubOrderService{order: &domain.Order{ID: 3, Status: domain.OrderStatusShipped}}
	deps.OrderSvc = orderSvc
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodPut, "/orders/3/status?new_status=shipped", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if orderSvc.lastStatus != "shipped" {
		t.Fatalf("expected status shipped, got %q", orderSvc.lastStatus)
	}
}

func TestListAllOrders_RequiresAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, authedDeps(domain.RoleUser))

	req := httptest.NewRequest(http.MethodGet, "/orders/all", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeleteOrderHandler_NotOwned(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := authedDeps(domain.RoleUser)
	deps.OrderSvc = &stubOrderService{err: &domain.NotFoundError{Entity: "Order", ID: 3}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodDelete, "/orders/3", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}
