package repo

type InMemoryMetricsRepository struct {
	productRepo ProductRepository
}

// GetCatalogStats implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetCatalogStats() (CatalogStats, error) {
	s := CatalogStats{Categories: map[string]int{}}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return s, err
	}
	s.TotalProducts = len(products)

	for _, product := range products {
		s.Categories[product.Category]++
	}

	return s, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(productRepo ProductRepository) {
	i.productRepo = productRepo
}
