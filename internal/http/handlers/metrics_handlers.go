package handlers

import (
	"fmt"
	"net/http"
)

// GetProductStatsHandler godoc
// @Summary Catalog statistics
// @Description Total product count and product count per category
// @Tags products
// @Produce json
// @Success 200 {object} repo.CatalogStats
// @Failure 500 {object} ErrorResponse
// @Router /api/products/stats [get]
func GetProductStatsHandler(w http.ResponseWriter, r *http.Request) error {
	s, err := metricsRepo.GetCatalogStats()
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}
	return writeJSON(w, http.StatusOK, s)
}

// RootHandler godoc
// @Summary Greeting
// @Tags status
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func RootHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello World"})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags status
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
