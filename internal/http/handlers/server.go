package handlers

import (
	repo "github.com/rogerio-castellano/product-catalog/internal/repo"
)

var (
	productRepo repo.ProductRepository
	metricsRepo repo.MetricsRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
