package repositories

import (
	"context"
	"fmt"
	"pet-shop/models"
	"strings"
)

type PetRepository struct{}

func NewPetRepository() *PetRepository {
	return &PetRepository{}
}

// PetFilter accumulates the optional search criteria. Nil pointer
// fields mean the criterion was not supplied at all.
type PetFilter struct {
	Category   string
	PriceMin   *int
	PriceMax   *int
	Name       string
	Vaccinated *bool
}

const petColumns = "id, name, description, price, stock, category_id, seller_id, vaccinated, COALESCE(image_url, ''), created_at, updated_at"

// BuildSearchQuery compiles the filter into a single SQL statement with
// positional args. All supplied criteria combine with AND; an empty
// filter compiles to the unfiltered catalog query.
func (r *PetRepository) BuildSearchQuery(filter PetFilter) (string, []interface{}) {
	query := "SELECT " + petColumns + " FROM pets"
	args := []interface{}{}
	whereConditions := []string{}
	paramIndex := 1

	if filter.Category != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("category_id IN (SELECT id FROM categories WHERE name=$%d)", paramIndex))
		args = append(args, filter.Category)
		paramIndex++
	}

	if filter.PriceMin != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("price >= $%d", paramIndex))
		args = append(args, *filter.PriceMin)
		paramIndex++
	}

	if filter.PriceMax != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("price <= $%d", paramIndex))
		args = append(args, *filter.PriceMax)
		paramIndex++
	}

	if filter.Name != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("LOWER(name) LIKE LOWER($%d)", paramIndex))
		args = append(args, "%"+filter.Name+"%")
		paramIndex++
	}

	if filter.Vaccinated != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("vaccinated = $%d", paramIndex))
		args = append(args, *filter.Vaccinated)
		paramIndex++
	}

	if len(whereConditions) > 0 {
		query += " WHERE " + strings.Join(whereConditions, " AND ")
	}

	query += " ORDER BY created_at DESC"

	return query, args
}

func (r *PetRepository) Search(ctx context.Context, filter PetFilter) ([]models.Pet, error) {
	query, args := r.BuildSearchQuery(filter)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := []models.Pet{}
	for rows.Next() {
		var p models.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.SellerID, &p.Vaccinated, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *PetRepository) GetByID(ctx context.Context, id int) (*models.Pet, error) {
	var p models.Pet
	err := models.DB.QueryRow(ctx,
		"SELECT "+petColumns+" FROM pets WHERE id=$1",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.SellerID, &p.Vaccinated, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
