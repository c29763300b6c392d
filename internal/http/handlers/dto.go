package handlers

import (
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// ProductRequest is a validated create or update payload.
type ProductRequest struct {
	Name        string  `json:"name" example:"Widget"`
	Description string  `json:"description" example:"A widget"`
	Price       float64 `json:"price" example:"9.99"`
	Category    string  `json:"category" example:"Tools"`
	InStock     bool    `json:"inStock" example:"true"`
}

type ProductResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Category    string     `json:"category"`
	InStock     bool       `json:"inStock"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type ProductsSearchResult struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func newProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
