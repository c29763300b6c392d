package repo

import (
	"strings"
	"sync"

	"github.com/rogerio-castellano/product-catalog/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != "" && !strings.EqualFold(p.Category, pf.Category) {
		return false
	}
	if pf.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Search)) {
		return false
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Filter returns the requested page of matching products and the number of
// products matching before pagination.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	total := len(filtered)

	if pf.Page < 1 || pf.Limit < 1 {
		return filtered, total, nil
	}

	// compare before multiplying so huge pages cannot overflow the offset
	if pf.Page-1 > total/pf.Limit {
		return []models.Product{}, total, nil
	}
	start := clamp((pf.Page-1)*pf.Limit, 0, total)
	end := total
	if pf.Limit < total-start {
		end = start + pf.Limit
	}

	return filtered[start:end], total, nil
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(product.ID) >= 0 {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// Update replaces an existing product in place.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(product.ID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	r.products[i] = product
	return product, nil
}

// Delete removes a product from the repository by its ID and returns it.
func (r *InMemoryProductRepository) Delete(id string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	removed := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)
	return removed, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}

// indexOf expects the caller to hold the lock.
func (r *InMemoryProductRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
