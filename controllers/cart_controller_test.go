package controllers

import (
	"net/http"
	"net/http/httptest"
	"pet-shop/models"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	models.DB = mock
	t.Cleanup(mock.Close)
	return mock
}

func asUser(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", "customer")
	}
}

func newCartRouter(userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := &CartController{}
	router.POST("/cart/add/:id", asUser(userID), ctrl.AddToCart)
	router.POST("/cart/remove/:id", asUser(userID), ctrl.RemoveFromCart)
	router.GET("/cart", asUser(userID), ctrl.GetCart)
	return router
}

func TestAddToCartTwiceLeavesOneItem(t *testing.T) {
	mock := newMockPool(t)
	router := newCartRouter(1)

	// The second add hits the same (cart_id, pet_id) row and the
	// conflict clause turns it into a no-op.
	for _, inserted := range []int64{1, 0} {
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pets WHERE id=\$1\)`).
			WithArgs(7).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(`ON CONFLICT \(user_id\) DO UPDATE`).
			WithArgs(1, pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectExec(`ON CONFLICT \(cart_id, pet_id\) DO NOTHING`).
			WithArgs(3, 7, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", inserted))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/cart/add/7", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d body=%s", w.Code, w.Body.String())
		}
		if loc := w.Header().Get("Location"); loc != "/cart" {
			t.Fatalf("expected redirect to /cart, got %q", loc)
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddToCartMissingPet(t *testing.T) {
	mock := newMockPool(t)
	router := newCartRouter(1)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pets WHERE id=\$1\)`).
		WithArgs(99).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cart/add/99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveFromCartAbsentPetIsNoOp(t *testing.T) {
	mock := newMockPool(t)
	router := newCartRouter(1)

	mock.ExpectExec(`DELETE FROM cart_items`).
		WithArgs(7, 1).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/cart/remove/7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("removing an absent item must still redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/cart" {
		t.Fatalf("expected redirect to /cart, got %q", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetCartMarksOutOfStockItems(t *testing.T) {
	mock := newMockPool(t)
	router := newCartRouter(1)

	mock.ExpectQuery(`FROM cart_items ci`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "pet_id", "name", "price", "stock", "image_url"}).
			AddRow(10, 7, "Rex", 300, 1, "").
			AddRow(11, 8, "Mimi", 150, 0, ""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/cart", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"subtotal":450`) {
		t.Errorf("expected subtotal 450 in body: %s", body)
	}
	if !strings.Contains(body, `"available":false`) {
		t.Errorf("expected zero-stock item flagged unavailable: %s", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
