package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/obs"
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

var errProductNotFound = &NotFoundError{Message: "Product not found"}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) error {
	req, err := parseProduct(w, r)
	if err != nil {
		return err
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		InStock:     req.InStock,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := productRepo.Create(product)
	if err != nil {
		return fmt.Errorf("could not create product: %w", err)
	}

	obs.Logger.WithField("product_id", created.ID).Info("product created")
	return writeJSON(w, http.StatusCreated, newProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Description Filters by category and name, then paginates
// @Tags products
// @Produce json
// @Param category query string false "Category, case-insensitive exact match"
// @Param search query string false "Case-insensitive substring of the name"
// @Param page query int false "Page number, starting at 1" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	page, err := parsePositiveInt(q, "page", defaultPage)
	if err != nil {
		return err
	}
	limit, err := parsePositiveInt(q, "limit", defaultLimit)
	if err != nil {
		return err
	}

	filter := repo.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     page,
		Limit:    limit,
	}
	products, total, err := productRepo.Filter(filter)
	if err != nil {
		return fmt.Errorf("could not filter products: %w", err)
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages(total, limit),
			TotalItems:   total,
			ItemsPerPage: limit,
		},
	}
	for i, p := range products {
		resp.Data[i] = newProductResponse(p)
	}
	return writeJSON(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) error {
	product, err := productRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return errProductNotFound
		}
		return fmt.Errorf("could not fetch product: %w", err)
	}
	return writeJSON(w, http.StatusOK, newProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces every editable field; the body must be a complete product
// @Tags products
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) error {
	req, err := parseProduct(w, r)
	if err != nil {
		return err
	}

	id := chi.URLParam(r, "id")
	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return errProductNotFound
		}
		return fmt.Errorf("could not fetch product: %w", err)
	}

	updated, err := productRepo.Update(mergeProduct(existing, req, time.Now().UTC()))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return errProductNotFound
		}
		return fmt.Errorf("could not update product: %w", err)
	}

	obs.Logger.WithField("product_id", updated.ID).Info("product updated")
	return writeJSON(w, http.StatusOK, newProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse "The removed product"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) error {
	removed, err := productRepo.Delete(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return errProductNotFound
		}
		return fmt.Errorf("could not delete product: %w", err)
	}

	obs.Logger.WithField("product_id", removed.ID).Info("product deleted")
	return writeJSON(w, http.StatusOK, newProductResponse(removed))
}

// totalPages is ceil(total/limit) without the overflow of total+limit-1.
func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total-1)/limit + 1
}

// parsePositiveInt reads q[key] as an integer >= 1, falling back to def when absent.
func parsePositiveInt(q url.Values, key string, def int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, &ValidationError{Message: key + " must be a positive integer"}
	}
	return v, nil
}
