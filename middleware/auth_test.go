package middleware

import (
	"net/http"
	"net/http/httptest"
	"pet-shop/utils"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := newTestRouter()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := newTestRouter()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	router := newTestRouter()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{
			"user_id": c.GetInt("user_id"),
			"role":    c.GetString("user_role"),
		})
	})

	token, err := utils.GenerateToken(9, "seller@example.com", "seller")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestLoginRequiredRedirectsAnonymous(t *testing.T) {
	router := newTestRouter()
	router.GET("/cart", LoginRequired(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cart", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != LoginURL {
		t.Fatalf("expected redirect to %s, got %q", LoginURL, loc)
	}
}

func TestLoginRequiredRedirectsBadToken(t *testing.T) {
	router := newTestRouter()
	router.GET("/cart", LoginRequired(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
}

func TestLoginRequiredPassesValidToken(t *testing.T) {
	router := newTestRouter()
	router.GET("/cart", LoginRequired(), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": c.GetInt("user_id")})
	})

	token, err := utils.GenerateToken(3, "buyer@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestSellerMiddlewareRoles(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{"seller", http.StatusOK},
		{"admin", http.StatusOK},
		{"customer", http.StatusForbidden},
	}

	for _, tc := range cases {
		router := newTestRouter()
		router.GET("/admin/pets",
			func(c *gin.Context) { c.Set("user_role", tc.role) },
			SellerMiddleware(),
			func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin/pets", nil)
		router.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("role %s: expected %d, got %d", tc.role, tc.want, w.Code)
		}
	}
}

func TestAdminMiddlewareRejectsSeller(t *testing.T) {
	router := newTestRouter()
	router.GET("/admin/categories",
		func(c *gin.Context) { c.Set("user_role", "seller") },
		AdminMiddleware(),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/categories", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
