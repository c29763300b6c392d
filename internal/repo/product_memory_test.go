package repo

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r *InMemoryProductRepository, products ...models.Product) {
	t.Helper()
	for _, p := range products {
		_, err := r.Create(p)
		require.NoError(t, err)
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestCreateAndGetByID(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, err := r.Create(models.Product{ID: "a", Name: "Hammer", Category: "Tools"})
	require.NoError(t, err)
	assert.Equal(t, "a", created.ID)

	got, err := r.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Hammer", got.Name)

	_, err = r.GetByID("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r, models.Product{ID: "a"})

	_, err := r.Create(models.Product{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	all, _ := r.GetAll()
	assert.Len(t, all, 1)
}

func TestGetAllReturnsCopy(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r, models.Product{ID: "a", Name: "Hammer"})

	all, err := r.GetAll()
	require.NoError(t, err)
	all[0].Name = "changed"

	got, _ := r.GetByID("a")
	assert.Equal(t, "Hammer", got.Name)
}

func TestUpdateKeepsPosition(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r, models.Product{ID: "a"}, models.Product{ID: "b", Name: "old"}, models.Product{ID: "c"})

	updated, err := r.Update(models.Product{ID: "b", Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)

	all, _ := r.GetAll()
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
	assert.Equal(t, "new", all[1].Name)

	_, err = r.Update(models.Product{ID: "zzz"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeletePreservesOrder(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r, models.Product{ID: "a"}, models.Product{ID: "b"}, models.Product{ID: "c"})

	removed, err := r.Delete("b")
	require.NoError(t, err)
	assert.Equal(t, "b", removed.ID)

	all, _ := r.GetAll()
	assert.Equal(t, []string{"a", "c"}, ids(all))

	_, err = r.Delete("b")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFilter(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r,
		models.Product{ID: "1", Name: "Claw Hammer", Category: "Tools"},
		models.Product{ID: "2", Name: "Go in Action", Category: "Books"},
		models.Product{ID: "3", Name: "Sledge hammer", Category: "tools"},
		models.Product{ID: "4", Name: "Screwdriver", Category: "TOOLS"},
	)

	tests := []struct {
		name      string
		filter    ProductFilter
		wantIDs   []string
		wantTotal int
	}{
		{"no filter", ProductFilter{}, []string{"1", "2", "3", "4"}, 4},
		{"category is case-insensitive", ProductFilter{Category: "tools"}, []string{"1", "3", "4"}, 3},
		{"category is exact", ProductFilter{Category: "tool"}, []string{}, 0},
		{"search is case-insensitive substring", ProductFilter{Search: "HAMMER"}, []string{"1", "3"}, 2},
		{"category then search", ProductFilter{Category: "Tools", Search: "driver"}, []string{"4"}, 1},
		{"first page", ProductFilter{Page: 1, Limit: 2}, []string{"1", "2"}, 4},
		{"second page", ProductFilter{Page: 2, Limit: 2}, []string{"3", "4"}, 4},
		{"partial last page", ProductFilter{Page: 2, Limit: 3}, []string{"4"}, 4},
		{"page past the end", ProductFilter{Page: 5, Limit: 2}, []string{}, 4},
		{"filtered page", ProductFilter{Category: "tools", Page: 2, Limit: 2}, []string{"4"}, 3},
		{"page whose offset overflows int", ProductFilter{Page: math.MaxInt/2 + 2, Limit: 4}, []string{}, 4},
		{"huge limit first page", ProductFilter{Page: 1, Limit: math.MaxInt}, []string{"1", "2", "3", "4"}, 4},
		{"huge limit second page", ProductFilter{Page: 2, Limit: math.MaxInt}, []string{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Filter(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestConcurrentCreates(t *testing.T) {
	r := NewInMemoryProductRepository()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Create(models.Product{ID: fmt.Sprintf("p%d", i)})
		}(i)
	}
	wg.Wait()

	all, err := r.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 100)
}

func TestClear(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r, models.Product{ID: "a"})

	r.Clear()

	all, _ := r.GetAll()
	assert.Empty(t, all)
}
