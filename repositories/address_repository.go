package repositories

import (
	"context"
	"pet-shop/models"
	"time"
)

// AddressRepository scopes every statement to the owning user; there is
// no unscoped access path.
type AddressRepository struct{}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{}
}

const addressColumns = "id, user_id, first_name, last_name, email, address_line1, COALESCE(address_line2, ''), zip_code, district, phone_number, created_at"

func (r *AddressRepository) List(ctx context.Context, userID int) ([]models.Address, error) {
	rows, err := models.DB.Query(ctx,
		"SELECT "+addressColumns+" FROM addresses WHERE user_id=$1 ORDER BY created_at DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email,
			&a.AddressLine1, &a.AddressLine2, &a.ZipCode, &a.District, &a.PhoneNumber, &a.CreatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *AddressRepository) GetByID(ctx context.Context, id, userID int) (*models.Address, error) {
	var a models.Address
	err := models.DB.QueryRow(ctx,
		"SELECT "+addressColumns+" FROM addresses WHERE id=$1 AND user_id=$2",
		id, userID).Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email,
		&a.AddressLine1, &a.AddressLine2, &a.ZipCode, &a.District, &a.PhoneNumber, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Latest returns the most recently created address, the default shown
// on the checkout form. pgx.ErrNoRows when the user has none.
func (r *AddressRepository) Latest(ctx context.Context, userID int) (*models.Address, error) {
	var a models.Address
	err := models.DB.QueryRow(ctx,
		"SELECT "+addressColumns+" FROM addresses WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1",
		userID).Scan(&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Email,
		&a.AddressLine1, &a.AddressLine2, &a.ZipCode, &a.District, &a.PhoneNumber, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create forces the owner to userID regardless of payload content.
func (r *AddressRepository) Create(ctx context.Context, userID int, req models.AddressRequest) (*models.Address, error) {
	a := models.Address{
		UserID:       userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		ZipCode:      req.ZipCode,
		District:     req.District,
		PhoneNumber:  req.PhoneNumber,
	}

	err := models.DB.QueryRow(ctx,
		`INSERT INTO addresses (user_id, first_name, last_name, email, address_line1, address_line2, zip_code, district, phone_number, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id, created_at`,
		userID, req.FirstName, req.LastName, req.Email, req.AddressLine1, req.AddressLine2,
		req.ZipCode, req.District, req.PhoneNumber, time.Now()).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Update touches only rows owned by userID. Returns false when no row
// matched, which callers report as not found.
func (r *AddressRepository) Update(ctx context.Context, id, userID int, req models.AddressRequest) (bool, error) {
	tag, err := models.DB.Exec(ctx,
		`UPDATE addresses SET first_name=$1, last_name=$2, email=$3, address_line1=$4, address_line2=$5,
		 zip_code=$6, district=$7, phone_number=$8 WHERE id=$9 AND user_id=$10`,
		req.FirstName, req.LastName, req.Email, req.AddressLine1, req.AddressLine2,
		req.ZipCode, req.District, req.PhoneNumber, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AddressRepository) Delete(ctx context.Context, id, userID int) (bool, error) {
	tag, err := models.DB.Exec(ctx,
		"DELETE FROM addresses WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
