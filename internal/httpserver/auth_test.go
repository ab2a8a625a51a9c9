package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce/internal/domain"
	usersvc "ecommerce/internal/service/user"
	"github.com/gin-gonic/gin"
)

func TestSignupHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{
		user: &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser},
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignupHandler_DuplicateUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{
		signupErr: &domain.DuplicateError{Reason: "username or email already registered"},
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","email":"alice@example.com","password":"Sup3rSecret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{loginErr: usersvc.ErrInvalidCredentials}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_ReturnsTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{
		user: &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser},
	}
	router := buildRouter(logDiscard(), nil, deps)

	body := `{"username":"alice","password":"Sup3rSecret"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	for _, want := range []string{`"accessToken":"access"`, `"refreshToken":"refresh"`, `"tokenType":"bearer"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("expected %s in body: %s", want, rec.Body.String())
		}
	}
}

func TestMeHandler_ReturnsCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{
		user: &domain.User{ID: 7, Username: "bob", Role: domain.RoleUser},
	}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"username":"bob"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMeHandler_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.UserSvc = &stubUserService{lookupErr: usersvc.ErrInvalidToken}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
