package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UCDC-Institute/Website_BCMS/models"
	"github.com/UCDC-Institute/Website_BCMS/services"
)

func protectedRouter(roles []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{JWTMiddleware()}
	if roles != nil {
		handlers = append(handlers, RolesMiddleware(roles))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := services.NewClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	router.GET("/protected", handlers...)
	return router
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token, err := services.SignSessionToken(&models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Admin",
		Email: "admin@ucdc.co.in",
		Role:  role,
	})
	if err != nil {
		t.Fatalf("sign: %s", err)
	}
	return token
}

func TestJWTMiddlewareNoToken(t *testing.T) {
	router := protectedRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareBadToken(t *testing.T) {
	router := protectedRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestJWTMiddlewareCookie(t *testing.T) {
	router := protectedRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{
		Name:  services.AUTH_COOKIE,
		Value: signToken(t, models.ADMIN),
	})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestJWTMiddlewareBearerFallback(t *testing.T) {
	router := protectedRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.ADMIN))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRolesMiddleware(t *testing.T) {
	router := protectedRouter([]string{models.ADMIN})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.ADMIN))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.EDITOR))
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("editor status = %d, want 401", w.Code)
	}
}
