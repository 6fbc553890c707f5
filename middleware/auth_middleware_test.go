package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/policy"
	"github.com/leadflow-simple/services"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type fakeUserFinder struct {
	users []models.User
}

func (f *fakeUserFinder) FindByID(id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserFinder) FindByEmail(email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func newTestRouter(t *testing.T, auth *services.AuthService, ops ...policy.Operation) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware(auth)}
	for _, op := range ops {
		handlers = append(handlers, Require(op))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
	})

	r.GET("/probe", handlers...)
	return r
}

func doProbe(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return body.Message
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	auth := services.NewAuthService(&fakeUserFinder{}, testSecret)
	r := newTestRouter(t, auth)

	for _, header := range []string{"", "Bearer ", "Basic abc", "nonsense"} {
		w := doProbe(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
		if msg := responseMessage(t, w); msg != "Authentication required" {
			t.Fatalf("header %q: unexpected message %q", header, msg)
		}
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	auth := services.NewAuthService(&fakeUserFinder{}, testSecret)
	r := newTestRouter(t, auth)

	w := doProbe(r, "Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := responseMessage(t, w); msg != "Invalid token" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	auth := services.NewAuthService(&fakeUserFinder{}, testSecret)
	r := newTestRouter(t, auth)

	claims := dto.TokenClaims{
		Role: string(models.RoleSeller),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	w := doProbe(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := responseMessage(t, w); msg != "Token expired" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthMiddlewareUnknownSubject(t *testing.T) {
	auth := services.NewAuthService(&fakeUserFinder{}, testSecret)
	r := newTestRouter(t, auth)

	token, err := auth.IssueToken("ghost", models.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := doProbe(r, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := responseMessage(t, w); msg != "User not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	finder := &fakeUserFinder{users: []models.User{{
		ID:           "u1",
		Email:        "seller@lead.com",
		Name:         "Sally Seller",
		Role:         models.RoleSeller,
		Active:       true,
		PasswordHash: "$2a$10$should.never.leave.the.server",
	}}}
	auth := services.NewAuthService(finder, testSecret)
	r := newTestRouter(t, auth)

	token, err := auth.IssueToken("u1", models.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := doProbe(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "$2a$10$") {
		t.Fatal("password hash leaked into the response")
	}
	if !strings.Contains(w.Body.String(), "seller@lead.com") {
		t.Fatalf("expected the resolved user in the body, got %s", w.Body.String())
	}
}

func TestRequireDeniesDisallowedRole(t *testing.T) {
	finder := &fakeUserFinder{users: []models.User{{
		ID:     "u1",
		Role:   models.RoleSeller,
		Active: true,
	}}}
	auth := services.NewAuthService(finder, testSecret)
	r := newTestRouter(t, auth, policy.OpDashboard)

	token, err := auth.IssueToken("u1", models.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	w := doProbe(r, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if msg := responseMessage(t, w); msg != "Access denied" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRequireAllowsPermittedRole(t *testing.T) {
	finder := &fakeUserFinder{users: []models.User{{
		ID:     "u2",
		Role:   models.RoleCoordinator,
		Active: true,
	}}}
	auth := services.NewAuthService(finder, testSecret)
	r := newTestRouter(t, auth, policy.OpDashboard)

	token, err := auth.IssueToken("u2", models.RoleCoordinator)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if w := doProbe(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
