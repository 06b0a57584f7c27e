package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newAddressRouter(userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewAddressController()
	router.GET("/api/addresses/:id", asUser(userID), ctrl.GetAddressByID)
	router.PUT("/api/addresses/:id", asUser(userID), ctrl.UpdateAddress)
	router.DELETE("/api/addresses/:id", asUser(userID), ctrl.DeleteAddress)
	return router
}

func TestGetAddressOwnedByAnotherUserIs404(t *testing.T) {
	mock := newMockPool(t)
	router := newAddressRouter(1)

	// The query is scoped to the caller, so a row owned by user 2
	// simply does not match.
	mock.ExpectQuery(`FROM addresses WHERE id=\$1 AND user_id=\$2`).
		WithArgs(5, 1).
		WillReturnError(pgx.ErrNoRows)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/addresses/5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's address, got %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetAddressOwnedByCaller(t *testing.T) {
	mock := newMockPool(t)
	router := newAddressRouter(1)

	mock.ExpectQuery(`FROM addresses WHERE id=\$1 AND user_id=\$2`).
		WithArgs(5, 1).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "first_name", "last_name", "email",
			"address_line1", "address_line2", "zip_code", "district", "phone_number", "created_at",
		}).AddRow(5, 1, "Ana", "Lima", "ana@example.com",
			"12 Harbour Street", "", "20100", "Centro", "+55 21 99999 0000", time.Now()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/addresses/5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAddressOwnedByAnotherUserIs404(t *testing.T) {
	mock := newMockPool(t)
	router := newAddressRouter(1)

	mock.ExpectExec(`UPDATE addresses SET`).
		WithArgs("Ana", "Lima", "ana@example.com", "12 Harbour Street", "",
			"20100", "Centro", "+55 21 99999 0000", 5, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/addresses/5", strings.NewReader(checkoutAddressJSON))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no owned row matches, got %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAddressOwnedByAnotherUserIs404(t *testing.T) {
	mock := newMockPool(t)
	router := newAddressRouter(1)

	mock.ExpectExec(`DELETE FROM addresses WHERE id=\$1 AND user_id=\$2`).
		WithArgs(5, 1).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/addresses/5", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no owned row matches, got %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
