package repo

// CatalogStats is the aggregate view of the whole catalog.
type CatalogStats struct {
	TotalProducts int            `json:"totalProducts"`
	Categories    map[string]int `json:"categories"`
}

type MetricsRepository interface {
	GetCatalogStats() (CatalogStats, error)
}
