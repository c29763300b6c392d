package repo

import (
	"errors"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicatedValueUnique is returned when a product id is already taken.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) (models.Product, error)
	Filter(filter ProductFilter) ([]models.Product, int, error)
}
