package services

import (
	"context"
	"fmt"
	"pet-shop/models"
	"pet-shop/repositories"
	"strconv"
	"strings"
)

type SearchService struct {
	petRepo *repositories.PetRepository
}

func NewSearchService() *SearchService {
	return &SearchService{
		petRepo: repositories.NewPetRepository(),
	}
}

// ParseFilter turns raw query-string values into a typed filter.
// Prices must parse as non-negative integers; the vaccinated flag is
// true only for the literal "yes". Empty strings mean "not supplied".
func ParseFilter(category, priceMin, priceMax, name, vaccinated string) (repositories.PetFilter, error) {
	filter := repositories.PetFilter{
		Category: strings.TrimSpace(category),
		Name:     strings.TrimSpace(name),
	}

	if priceMin = strings.TrimSpace(priceMin); priceMin != "" {
		v, err := strconv.Atoi(priceMin)
		if err != nil || v < 0 {
			return filter, fmt.Errorf("invalid price_min: %q", priceMin)
		}
		filter.PriceMin = &v
	}

	if priceMax = strings.TrimSpace(priceMax); priceMax != "" {
		v, err := strconv.Atoi(priceMax)
		if err != nil || v < 0 {
			return filter, fmt.Errorf("invalid price_max: %q", priceMax)
		}
		filter.PriceMax = &v
	}

	if vaccinated = strings.TrimSpace(vaccinated); vaccinated != "" {
		v := vaccinated == "yes"
		filter.Vaccinated = &v
	}

	return filter, nil
}

func (s *SearchService) Search(ctx context.Context, filter repositories.PetFilter) ([]models.Pet, error) {
	return s.petRepo.Search(ctx, filter)
}
