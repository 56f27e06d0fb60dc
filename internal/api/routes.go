package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/Francohu/mechanobiology-data-dashboard/internal/api/handlers"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/dataset"
	"github.com/Francohu/mechanobiology-data-dashboard/internal/web"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, provider dataset.Provider, page *web.Page) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(provider)

	// Server-rendered live dashboard
	router.Get("/", page.ServeHTTP)

	// Register prediction routes
	huma.Register(api, huma.Operation{
		OperationID: "predictBFR",
		Method:      http.MethodPost,
		Path:        "/api/predict",
		Summary:     "Predict bone formation rate",
		Description: "Evaluates the loading response model for a single frequency, strain amplitude and duration triple",
		Tags:        []string{"Prediction"},
	}, dashboardHandler.Predict)

	huma.Register(api, huma.Operation{
		OperationID: "getDataset",
		Method:      http.MethodGet,
		Path:        "/api/dataset",
		Summary:     "Get the synthetic dataset",
		Description: "Returns the memoized synthetic loading dataset backing the dashboard tables and charts",
		Tags:        []string{"Dataset"},
	}, dashboardHandler.GetDataset)
}
