package services

import (
	"database/sql"
	"errors"

	"github.com/bariskaplan/portfolio-hub/internal/models"
	"github.com/bariskaplan/portfolio-hub/internal/repositories"
)

type CartService struct {
	cartRepo *repositories.CartRepository
}

func NewCartService(cartRepo *repositories.CartRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
	}
}

// AddToCart validates the input, inserts the cart row and returns the
// freshly read row. A project_id that references no project surfaces as
// models.ErrProjectNotFound via the foreign key constraint.
func (s *CartService) AddToCart(input *models.CartInput) (*models.CartItem, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return nil, errs
	}

	id, err := s.cartRepo.Add(input.ProjectID)
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetByID(id)
}

// GetCartItems retrieves all cart rows with their project details
func (s *CartService) GetCartItems() ([]*models.CartItemDetail, error) {
	return s.cartRepo.ListWithProjects()
}

// RemoveFromCart removes a cart row by ID
func (s *CartService) RemoveFromCart(id int64) error {
	if err := s.cartRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrCartItemNotFound
		}
		return err
	}
	return nil
}
