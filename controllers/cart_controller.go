package controllers

import (
	"context"
	"net/http"
	"pet-shop/models"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type CartController struct{}

// getOrCreateCart returns the user's cart id, creating the row on first
// use. The upsert keeps concurrent first adds from racing on the
// UNIQUE(user_id) constraint.
func getOrCreateCart(ctx context.Context, userID int) (int, error) {
	var cartID int
	err := models.DB.QueryRow(ctx,
		`INSERT INTO carts (user_id, created_at) VALUES ($1,$2)
		 ON CONFLICT (user_id) DO UPDATE SET user_id=EXCLUDED.user_id
		 RETURNING id`,
		userID, time.Now()).Scan(&cartID)
	return cartID, err
}

// AddToCart godoc
// @Summary Add pet to cart
// @Description Add a pet to the current user's cart. Adding the same pet twice is a no-op.
// @Tags Cart
// @Produce json
// @Param id path int true "Pet ID"
// @Security BearerAuth
// @Success 303
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/add/{id} [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	petID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	var exists bool
	models.DB.QueryRow(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM pets WHERE id=$1)", petID).Scan(&exists)
	if !exists {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	cartID, err := getOrCreateCart(context.Background(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add to cart"})
		return
	}

	_, err = models.DB.Exec(context.Background(),
		`INSERT INTO cart_items (cart_id, pet_id, created_at) VALUES ($1,$2,$3)
		 ON CONFLICT (cart_id, pet_id) DO NOTHING`,
		cartID, petID, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to add to cart"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// RemoveFromCart godoc
// @Summary Remove pet from cart
// @Description Remove a pet from the current user's cart
// @Tags Cart
// @Produce json
// @Param id path int true "Pet ID"
// @Security BearerAuth
// @Success 303
// @Router /cart/remove/{id} [post]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	userID := c.GetInt("user_id")
	petID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	models.DB.Exec(context.Background(),
		`DELETE FROM cart_items
		 WHERE pet_id=$1 AND cart_id IN (SELECT id FROM carts WHERE user_id=$2)`,
		petID, userID)

	c.Redirect(http.StatusSeeOther, "/cart")
}

// GetCart godoc
// @Summary Get cart contents
// @Description List the pets in the current user's cart with availability and subtotal
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	rows, err := models.DB.Query(context.Background(),
		`SELECT ci.id, p.id, p.name, p.price, p.stock, COALESCE(p.image_url, '')
		 FROM cart_items ci
		 JOIN carts ct ON ct.id = ci.cart_id
		 JOIN pets p ON p.id = ci.pet_id
		 WHERE ct.user_id=$1
		 ORDER BY ci.id`, userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve cart"})
		return
	}
	defer rows.Close()

	items := []gin.H{}
	subtotal := 0
	for rows.Next() {
		var itemID, petID, price, stock int
		var name, imageURL string
		rows.Scan(&itemID, &petID, &name, &price, &stock, &imageURL)
		items = append(items, gin.H{
			"id":        itemID,
			"pet_id":    petID,
			"name":      name,
			"price":     price,
			"image_url": imageURL,
			"available": stock >= 1,
		})
		subtotal += price
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items":    items,
			"subtotal": subtotal,
			"count":    len(items),
		},
	})
}
