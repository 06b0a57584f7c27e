package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"pet-shop/config"
	"pet-shop/libs"
	"pet-shop/models"
	"pet-shop/utils"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type PetController struct{}

func cachePetsList(key string, payload interface{}) {
	if models.RedisClient == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	models.RedisClient.Set(context.Background(), key, data, 5*time.Minute)
}

// removePetImage discards a replaced or orphaned pet image, wherever
// it lives. Failures are ignored; a stale image is not worth a 500.
func removePetImage(imageURL, publicID string) {
	if publicID != "" {
		libs.DeletePetImage(publicID)
		return
	}
	if strings.HasPrefix(imageURL, "/uploads/") {
		utils.DeleteFile(strings.TrimPrefix(imageURL, "/uploads/"))
	}
}

func invalidatePetCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "pets_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetPets godoc
// @Summary Get pet listing
// @Description Get paginated pets, optionally filtered by category name
// @Tags Pets
// @Produce json
// @Param category query string false "Category name"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *PetController) GetPets(c *gin.Context) {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 12
	}
	offset := (page - 1) * limit

	cacheKey := fmt.Sprintf("pets_list_p%d_l%d", page, limit)
	if category == "" && models.RedisClient != nil {
		cached, err := models.RedisClient.Get(context.Background(), cacheKey).Result()
		if err == nil {
			var payload gin.H
			if json.Unmarshal([]byte(cached), &payload) == nil {
				c.JSON(200, payload)
				return
			}
		}
	}

	countQuery := "SELECT COUNT(*) FROM pets"
	listQuery := `SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name,
		p.vaccinated, COALESCE(p.image_url, ''), p.created_at
		FROM pets p JOIN categories c ON c.id = p.category_id`
	args := []interface{}{}
	countArgs := []interface{}{}

	if category != "" {
		countQuery += " WHERE category_id IN (SELECT id FROM categories WHERE name=$1)"
		listQuery += " WHERE c.name = $1"
		args = append(args, category)
		countArgs = append(countArgs, category)
	}

	var total int
	models.DB.QueryRow(context.Background(), countQuery, countArgs...).Scan(&total)

	listQuery += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(context.Background(), listQuery, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve pets"})
		return
	}
	defer rows.Close()

	pets := []gin.H{}
	for rows.Next() {
		var id, price, stock, categoryID int
		var name, description, categoryName, imageURL string
		var vaccinated bool
		var createdAt time.Time
		rows.Scan(&id, &name, &description, &price, &stock, &categoryID,
			&categoryName, &vaccinated, &imageURL, &createdAt)
		pets = append(pets, gin.H{
			"id":          id,
			"name":        name,
			"description": description,
			"price":       price,
			"stock":       stock,
			"category":    categoryName,
			"vaccinated":  vaccinated,
			"image_url":   imageURL,
			"available":   stock >= 1,
			"created_at":  createdAt,
		})
	}

	totalPages := (total + limit - 1) / limit
	payload := gin.H{
		"success": true,
		"message": "Pets retrieved",
		"data":    pets,
		"meta": gin.H{
			"current_page": page,
			"per_page":     limit,
			"total_items":  total,
			"total_pages":  totalPages,
		},
	}

	if category == "" {
		cachePetsList(cacheKey, payload)
	}

	c.JSON(200, payload)
}

// GetPetByID godoc
// @Summary Get pet detail
// @Description Get a pet with its reviews, rating summary and recommendations
// @Tags Pets
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /pets/{id} [get]
func (ctrl *PetController) GetPetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	var p models.Pet
	var categoryName string
	err = models.DB.QueryRow(context.Background(),
		`SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, c.name,
		 p.seller_id, p.vaccinated, COALESCE(p.image_url, ''), p.created_at, p.updated_at
		 FROM pets p JOIN categories c ON c.id = p.category_id WHERE p.id=$1`,
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID, &categoryName,
		&p.SellerID, &p.Vaccinated, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	reviews := []gin.H{}
	rows, err := models.DB.Query(context.Background(),
		`SELECT r.id, r.rating, r.comment, u.email, r.created_at
		 FROM reviews r JOIN users u ON u.id = r.user_id
		 WHERE r.pet_id=$1 ORDER BY r.created_at DESC`, id)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var reviewID, rating int
			var comment, reviewer string
			var createdAt time.Time
			rows.Scan(&reviewID, &rating, &comment, &reviewer, &createdAt)
			reviews = append(reviews, gin.H{
				"id":         reviewID,
				"rating":     rating,
				"comment":    comment,
				"reviewer":   reviewer,
				"created_at": createdAt,
			})
		}
	}

	var reviewCount int
	var avgRating float64
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM reviews WHERE pet_id=$1",
		id).Scan(&reviewCount, &avgRating)

	recommendations := []gin.H{}
	recRows, err := models.DB.Query(context.Background(),
		`SELECT id, name, price, COALESCE(image_url, ''), stock
		 FROM pets WHERE category_id=$1 AND id!=$2 ORDER BY created_at DESC LIMIT 3`,
		p.CategoryID, id)
	if err == nil {
		defer recRows.Close()
		for recRows.Next() {
			var recID, recPrice, recStock int
			var recName, recImage string
			recRows.Scan(&recID, &recName, &recPrice, &recImage, &recStock)
			recommendations = append(recommendations, gin.H{
				"id":        recID,
				"name":      recName,
				"price":     recPrice,
				"image_url": recImage,
				"available": recStock >= 1,
			})
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Pet retrieved",
		"data": gin.H{
			"id":              p.ID,
			"name":            p.Name,
			"description":     p.Description,
			"price":           p.Price,
			"stock":           p.Stock,
			"category":        categoryName,
			"vaccinated":      p.Vaccinated,
			"image_url":       p.ImageURL,
			"available":       p.Stock >= 1,
			"rating":          avgRating,
			"review_count":    reviewCount,
			"reviews":         reviews,
			"recommendations": recommendations,
		},
	})
}

// CreatePet godoc
// @Summary Create new pet
// @Description Add a pet to the catalog (Seller/Admin only)
// @Tags Admin - Pets
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Pet name"
// @Param description formData string false "Description"
// @Param price formData int true "Price"
// @Param stock formData int true "Stock"
// @Param category_id formData int true "Category ID"
// @Param vaccinated formData bool false "Vaccinated"
// @Param image formData file false "Pet image"
// @Security BearerAuth
// @Success 201 {object} models.Response
// @Router /admin/pets [post]
func (ctrl *PetController) CreatePet(c *gin.Context) {
	userID := c.GetInt("user_id")

	name := c.PostForm("name")
	description := c.PostForm("description")
	price, errPrice := strconv.Atoi(c.PostForm("price"))
	stock, errStock := strconv.Atoi(c.PostForm("stock"))
	categoryID, errCat := strconv.Atoi(c.PostForm("category_id"))
	vaccinated := c.PostForm("vaccinated") == "true" || c.PostForm("vaccinated") == "yes"

	if name == "" || errPrice != nil || errStock != nil || errCat != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name, price, stock and category_id are required"})
		return
	}
	if price < 0 || stock < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Price and stock must not be negative"})
		return
	}

	var catExists int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM categories WHERE id=$1", categoryID).Scan(&catExists)
	if catExists == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category not found"})
		return
	}

	imageURL := ""
	publicID := ""
	file, err := c.FormFile("image")
	if err == nil {
		relPath, err := utils.UploadFile(c, file, "pets")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		if libs.Configured() {
			url, pid, err := libs.UploadPetImage(filepath.Join(config.AppConfig.UploadDir, relPath))
			if err == nil {
				imageURL = url
				publicID = pid
			}
		} else {
			imageURL = "/uploads/" + relPath
		}
	}

	now := time.Now()
	var petID int
	err = models.DB.QueryRow(context.Background(),
		`INSERT INTO pets (name, description, price, stock, category_id, seller_id, vaccinated, image_url, cloudinary_public_id, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),NULLIF($9,''),$10,$11) RETURNING id`,
		name, description, price, stock, categoryID, userID, vaccinated, imageURL, publicID, now, now).Scan(&petID)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create pet"})
		return
	}

	invalidatePetCache()

	c.JSON(201, gin.H{
		"success": true,
		"message": "Pet created successfully",
		"data": gin.H{
			"id":        petID,
			"name":      name,
			"price":     price,
			"stock":     stock,
			"image_url": imageURL,
		},
	})
}

// UpdatePet godoc
// @Summary Update pet
// @Description Update a pet (sellers may only touch their own pets)
// @Tags Admin - Pets
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Pet ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/pets/{id} [patch]
func (ctrl *PetController) UpdatePet(c *gin.Context) {
	userID := c.GetInt("user_id")
	role := c.GetString("user_role")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	ownerQuery := "SELECT name, description, price, stock, category_id, vaccinated, COALESCE(image_url, ''), COALESCE(cloudinary_public_id, '') FROM pets WHERE id=$1"
	ownerArgs := []interface{}{id}
	if role != "admin" {
		ownerQuery += " AND seller_id=$2"
		ownerArgs = append(ownerArgs, userID)
	}

	var name, description, imageURL, publicID string
	var price, stock, categoryID int
	var vaccinated bool
	err = models.DB.QueryRow(context.Background(), ownerQuery, ownerArgs...).Scan(
		&name, &description, &price, &stock, &categoryID, &vaccinated, &imageURL, &publicID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	if v := c.PostForm("name"); v != "" {
		name = v
	}
	if v := c.PostForm("description"); v != "" {
		description = v
	}
	if v := c.PostForm("price"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			price = parsed
		}
	}
	if v := c.PostForm("stock"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			stock = parsed
		}
	}
	if v := c.PostForm("category_id"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			var catExists int
			models.DB.QueryRow(context.Background(),
				"SELECT COUNT(*) FROM categories WHERE id=$1", parsed).Scan(&catExists)
			if catExists == 0 {
				c.JSON(400, gin.H{"success": false, "message": "Category not found"})
				return
			}
			categoryID = parsed
		}
	}
	if v := c.PostForm("vaccinated"); v != "" {
		vaccinated = v == "true" || v == "yes"
	}

	file, err := c.FormFile("image")
	if err == nil {
		relPath, err := utils.UploadFile(c, file, "pets")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		oldImageURL, oldPublicID := imageURL, publicID
		imageURL, publicID = "", ""
		if libs.Configured() {
			url, pid, err := libs.UploadPetImage(filepath.Join(config.AppConfig.UploadDir, relPath))
			if err == nil {
				imageURL = url
				publicID = pid
			}
		} else {
			imageURL = "/uploads/" + relPath
		}
		removePetImage(oldImageURL, oldPublicID)
	}

	_, err = models.DB.Exec(context.Background(),
		`UPDATE pets SET name=$1, description=$2, price=$3, stock=$4, category_id=$5,
		 vaccinated=$6, image_url=NULLIF($7,''), cloudinary_public_id=NULLIF($8,''), updated_at=$9 WHERE id=$10`,
		name, description, price, stock, categoryID, vaccinated, imageURL, publicID, time.Now(), id)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update pet"})
		return
	}

	invalidatePetCache()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Pet updated successfully",
	})
}

// DeletePet godoc
// @Summary Delete pet
// @Description Delete a pet (sellers may only delete their own pets)
// @Tags Admin - Pets
// @Produce json
// @Param id path int true "Pet ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/pets/{id} [delete]
func (ctrl *PetController) DeletePet(c *gin.Context) {
	userID := c.GetInt("user_id")
	role := c.GetString("user_role")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	imgQuery := "SELECT COALESCE(image_url, ''), COALESCE(cloudinary_public_id, '') FROM pets WHERE id=$1"
	deleteQuery := "DELETE FROM pets WHERE id=$1"
	args := []interface{}{id}
	if role != "admin" {
		imgQuery += " AND seller_id=$2"
		deleteQuery += " AND seller_id=$2"
		args = append(args, userID)
	}

	var imageURL, publicID string
	if err := models.DB.QueryRow(context.Background(), imgQuery, args...).Scan(&imageURL, &publicID); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	tag, err := models.DB.Exec(context.Background(), deleteQuery, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete pet"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Pet not found"})
		return
	}

	invalidatePetCache()
	removePetImage(imageURL, publicID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Pet deleted successfully",
	})
}
