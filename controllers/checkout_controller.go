package controllers

import (
	"context"
	"fmt"
	"net/http"
	"pet-shop/models"
	"pet-shop/repositories"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type CheckoutController struct {
	addressRepo *repositories.AddressRepository
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{
		addressRepo: repositories.NewAddressRepository(),
	}
}

// GetCheckout godoc
// @Summary Get checkout page data
// @Description Get the cart summary and default address for the checkout form. Redirects back to the cart when any item is out of stock.
// @Tags Checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Success 303
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var hasUnavailable bool
	err := models.DB.QueryRow(context.Background(),
		`SELECT EXISTS(
			SELECT 1 FROM cart_items ci
			JOIN carts ct ON ct.id = ci.cart_id
			JOIN pets p ON p.id = ci.pet_id
			WHERE ct.user_id=$1 AND p.stock < 1)`,
		userID).Scan(&hasUnavailable)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load checkout"})
		return
	}
	if hasUnavailable {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT p.id, p.name, p.price, COALESCE(p.image_url, '')
		 FROM cart_items ci
		 JOIN carts ct ON ct.id = ci.cart_id
		 JOIN pets p ON p.id = ci.pet_id
		 WHERE ct.user_id=$1
		 ORDER BY ci.id`, userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load checkout"})
		return
	}
	defer rows.Close()

	items := []gin.H{}
	total := 0
	for rows.Next() {
		var petID, price int
		var name, imageURL string
		if err := rows.Scan(&petID, &name, &price, &imageURL); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load checkout"})
			return
		}
		items = append(items, gin.H{
			"pet_id":    petID,
			"name":      name,
			"price":     price,
			"image_url": imageURL,
		})
		total += price
	}

	data := gin.H{
		"items": items,
		"total": total,
	}

	if address, err := ctrl.addressRepo.Latest(context.Background(), userID); err == nil {
		data["address"] = address
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Checkout retrieved",
		"data":    data,
	})
}

// PostCheckout godoc
// @Summary Place order
// @Description Convert the cart into an order. Saves the submitted address, decrements stock for every pet in the cart inside one transaction, and empties the cart. Fails with 409 if any pet sold out meanwhile.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Delivery address"
// @Security BearerAuth
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) PostCheckout(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddressRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid address", "errors": errs})
		return
	}

	ctx := context.Background()
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}
	defer tx.Rollback(ctx)

	now := time.Now()

	var addressID int
	err = tx.QueryRow(ctx,
		`INSERT INTO addresses (user_id, first_name, last_name, email, address_line1, address_line2, zip_code, district, phone_number, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		userID, req.FirstName, req.LastName, req.Email, req.AddressLine1, req.AddressLine2,
		req.ZipCode, req.District, req.PhoneNumber, now).Scan(&addressID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	var cartID int
	err = tx.QueryRow(ctx,
		"SELECT id FROM carts WHERE user_id=$1", userID).Scan(&cartID)
	if err == pgx.ErrNoRows {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	// Lock the pet rows for the rest of the transaction so two
	// checkouts cannot both pass the stock check on the same pet.
	rows, err := tx.Query(ctx,
		`SELECT ci.pet_id, p.name, p.stock
		 FROM cart_items ci
		 JOIN pets p ON p.id = ci.pet_id
		 WHERE ci.cart_id=$1
		 ORDER BY ci.id
		 FOR UPDATE OF p`, cartID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	type lineItem struct {
		petID int
		name  string
	}
	items := []lineItem{}
	for rows.Next() {
		var item lineItem
		var stock int
		if err := rows.Scan(&item.petID, &item.name, &stock); err != nil {
			rows.Close()
			c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
			return
		}
		if stock < 1 {
			rows.Close()
			c.JSON(409, gin.H{"success": false, "message": fmt.Sprintf("%s is no longer available", item.name)})
			return
		}
		items = append(items, item)
	}
	rows.Close()

	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	var orderID int
	err = tx.QueryRow(ctx,
		"INSERT INTO orders (user_id, address_id, created_at) VALUES ($1,$2,$3) RETURNING id",
		userID, addressID, now).Scan(&orderID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	for _, item := range items {
		// The conditional decrement is the real guard; the locked
		// read above only produces a friendlier error message.
		tag, err := tx.Exec(ctx,
			"UPDATE pets SET stock = stock - 1, updated_at=$1 WHERE id=$2 AND stock >= 1",
			now, item.petID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
			return
		}
		if tag.RowsAffected() == 0 {
			c.JSON(409, gin.H{"success": false, "message": fmt.Sprintf("%s is no longer available", item.name)})
			return
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO order_items (order_id, pet_id) VALUES ($1,$2)",
			orderID, item.petID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
			return
		}
	}

	_, err = tx.Exec(ctx, "DELETE FROM cart_items WHERE cart_id=$1", cartID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	if err := tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		return
	}

	invalidatePetCache()

	go func(email string, orderID, count int) {
		svc, err := models.NewEmailService()
		if err != nil {
			return
		}
		svc.SendOrderConfirmationEmail(email, orderID, count)
	}(req.Email, orderID, len(items))

	c.Header("Location", fmt.Sprintf("/orders/%d", orderID))
	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"order_id": orderID,
			"items":    len(items),
		},
	})
}
