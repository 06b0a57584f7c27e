package controllers

import (
	"context"
	"pet-shop/models"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type OrderController struct{}

// GetOrders godoc
// @Summary Get order history
// @Description Get the current user's orders, newest first
// @Tags Orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Security BearerAuth
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	var total int
	if err := models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE user_id=$1", userID).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}

	// Totals come from the live catalog rows; order_items only link.
	rows, err := models.DB.Query(context.Background(),
		`SELECT o.id, o.created_at, COUNT(oi.id), COALESCE(SUM(p.price), 0)
		 FROM orders o
		 LEFT JOIN order_items oi ON oi.order_id = o.id
		 LEFT JOIN pets p ON p.id = oi.pet_id
		 WHERE o.user_id=$1
		 GROUP BY o.id, o.created_at
		 ORDER BY o.created_at DESC, o.id DESC
		 LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	defer rows.Close()

	orders := []gin.H{}
	for rows.Next() {
		var id, itemCount, totalPrice int
		var createdAt time.Time
		if err := rows.Scan(&id, &createdAt, &itemCount, &totalPrice); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
			return
		}
		orders = append(orders, gin.H{
			"id":         id,
			"item_count": itemCount,
			"total":      totalPrice,
			"created_at": createdAt,
		})
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    orders,
		"meta": gin.H{
			"current_page": page,
			"per_page":     limit,
			"total_items":  total,
			"total_pages":  totalPages,
		},
	})
}

// GetOrderByID godoc
// @Summary Get order detail
// @Description Get one of the current user's orders with its items and delivery address. Other users' orders answer 404.
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	var addressID int
	var createdAt time.Time
	err = models.DB.QueryRow(context.Background(),
		"SELECT address_id, created_at FROM orders WHERE id=$1 AND user_id=$2",
		id, userID).Scan(&addressID, &createdAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT oi.id, oi.pet_id, p.name, p.price, COALESCE(p.image_url, '')
		 FROM order_items oi
		 JOIN pets p ON p.id = oi.pet_id
		 WHERE oi.order_id=$1
		 ORDER BY oi.id`, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}
	defer rows.Close()

	items := []gin.H{}
	total := 0
	for rows.Next() {
		var itemID, petID, price int
		var petName, imageURL string
		if err := rows.Scan(&itemID, &petID, &petName, &price, &imageURL); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
			return
		}
		items = append(items, gin.H{
			"id":        itemID,
			"pet_id":    petID,
			"name":      petName,
			"price":     price,
			"image_url": imageURL,
		})
		total += price
	}

	var address models.Address
	models.DB.QueryRow(context.Background(),
		`SELECT id, first_name, last_name, email, address_line1, COALESCE(address_line2, ''), zip_code, district, phone_number
		 FROM addresses WHERE id=$1`, addressID).Scan(
		&address.ID, &address.FirstName, &address.LastName, &address.Email,
		&address.AddressLine1, &address.AddressLine2, &address.ZipCode, &address.District, &address.PhoneNumber)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved",
		"data": gin.H{
			"id":         id,
			"items":      items,
			"total":      total,
			"address":    address,
			"created_at": createdAt,
		},
	})
}
