package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

const (
	errName        = "Name is required and must be a non-empty string"
	errDescription = "Description is required and must be a string"
	errPrice       = "Price is required and must be a non-negative number"
	errCategory    = "Category is required and must be a string"
	errInStock     = "inStock is required and must be a boolean"
	errInvalidBody = "Invalid JSON body"
)

// parseProduct reads the request body and turns it into a validated ProductRequest.
func parseProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, error) {
	var fields map[string]json.RawMessage
	if err := readJSON(w, r, &fields); err != nil {
		return ProductRequest{}, &ValidationError{Message: errInvalidBody}
	}
	return validateProduct(fields)
}

// field decodes fields[key] and reports whether it is present with JSON type T.
// JSON numbers decode as float64.
func field[T any](fields map[string]json.RawMessage, key string) (T, bool) {
	var zero T
	raw, ok := fields[key]
	if !ok {
		return zero, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// validateProduct checks the rules in order and reports the first one broken.
func validateProduct(fields map[string]json.RawMessage) (ProductRequest, error) {
	var p ProductRequest
	var ok bool

	if p.Name, ok = field[string](fields, "name"); !ok || strings.TrimSpace(p.Name) == "" {
		return ProductRequest{}, &ValidationError{Message: errName}
	}
	if p.Description, ok = field[string](fields, "description"); !ok {
		return ProductRequest{}, &ValidationError{Message: errDescription}
	}
	if p.Price, ok = field[float64](fields, "price"); !ok || p.Price < 0 {
		return ProductRequest{}, &ValidationError{Message: errPrice}
	}
	if p.Category, ok = field[string](fields, "category"); !ok {
		return ProductRequest{}, &ValidationError{Message: errCategory}
	}
	if p.InStock, ok = field[bool](fields, "inStock"); !ok {
		return ProductRequest{}, &ValidationError{Message: errInStock}
	}
	return p, nil
}

// mergeProduct replaces the client-editable fields of existing with req.
// ID and CreatedAt are kept; UpdatedAt is set to now.
func mergeProduct(existing models.Product, req ProductRequest, now time.Time) models.Product {
	merged := existing
	merged.Name = req.Name
	merged.Description = req.Description
	merged.Price = req.Price
	merged.Category = req.Category
	merged.InStock = req.InStock
	merged.UpdatedAt = &now
	return merged
}
