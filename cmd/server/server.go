package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Simplici0/dfm-advisor/internal/dfm"
	"github.com/Simplici0/dfm-advisor/internal/materials"
	"github.com/Simplici0/dfm-advisor/internal/pricing"
)

const (
	analysisMethod = "rule-based-ai-simulation"
	serviceVersion = "1.0.0"
)

type materialStore interface {
	ListMaterials(ctx context.Context) ([]materials.Material, error)
	Material(ctx context.Context, key string) (materials.Material, error)
	ListPrices(ctx context.Context) (map[string]materials.Price, error)
}

type server struct {
	store        materialStore
	engine       *dfm.Engine
	rates        pricing.Rates
	maxBodyBytes int64
	logger       *zap.Logger
}

func newServer(store materialStore, rates pricing.Rates, maxBodyBytes int64, logger *zap.Logger) *server {
	return &server{
		store:        store,
		engine:       dfm.NewEngine(),
		rates:        rates,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.requestLogging)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", s.handleHealth)
	r.Post("/api/analyze-dfm", s.handleAnalyzeDfM)
	r.Get("/api/get-material-prices", s.handleMaterialPrices)
	r.Get("/api/materials", s.handleMaterialsList)
	r.Get("/api/materials/{key}", s.handleMaterialGet)
	r.Post("/api/estimate", s.handleEstimate)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Version: serviceVersion})
}

type analyzeResponse struct {
	Success        bool             `json:"success"`
	Suggestions    []dfm.Suggestion `json:"suggestions"`
	AnalysisMethod string           `json:"analysis_method"`
}

func (s *server) handleAnalyzeDfM(w http.ResponseWriter, r *http.Request) {
	var part dfm.PartDescriptor
	if err := s.readJSON(w, r, &part); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:        true,
		Suggestions:    s.engine.Analyze(part),
		AnalysisMethod: analysisMethod,
	})
}

type pricesResponse struct {
	Success bool                       `json:"success"`
	Prices  map[string]materials.Price `json:"prices"`
}

func (s *server) handleMaterialPrices(w http.ResponseWriter, r *http.Request) {
	prices, err := s.store.ListPrices(r.Context())
	if err != nil {
		s.internalError(w, r, "failed to load material prices", err)
		return
	}

	writeJSON(w, http.StatusOK, pricesResponse{Success: true, Prices: prices})
}

type materialsResponse struct {
	Success   bool                 `json:"success"`
	Materials []materials.Material `json:"materials"`
}

func (s *server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListMaterials(r.Context())
	if err != nil {
		s.internalError(w, r, "failed to load materials", err)
		return
	}

	writeJSON(w, http.StatusOK, materialsResponse{Success: true, Materials: list})
}

type materialResponse struct {
	Success  bool               `json:"success"`
	Material materials.Material `json:"material"`
}

func (s *server) handleMaterialGet(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))

	m, err := s.store.Material(r.Context(), key)
	if errors.Is(err, materials.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown material: "+key)
		return
	}
	if err != nil {
		s.internalError(w, r, "failed to load material", err)
		return
	}

	writeJSON(w, http.StatusOK, materialResponse{Success: true, Material: m})
}

type estimateRequest struct {
	Geometry *dfm.Geometry `json:"geometry"`
	Material string        `json:"material"`
}

type estimateResponse struct {
	Success        bool               `json:"success"`
	Material       materials.Material `json:"material"`
	Estimate       pricing.Result     `json:"estimate"`
	Suggestions    []dfm.Suggestion   `json:"suggestions"`
	AnalysisMethod string             `json:"analysis_method"`
}

// handleEstimate prices a part from its geometry and catalog material, then
// runs the DfM rules against the estimated unit cost.
func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := s.readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := strings.TrimSpace(req.Material)
	if key == "" {
		writeError(w, http.StatusBadRequest, "material is required")
		return
	}

	m, err := s.store.Material(r.Context(), key)
	if errors.Is(err, materials.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unknown material: "+key)
		return
	}
	if err != nil {
		s.internalError(w, r, "failed to load material", err)
		return
	}

	f := dfm.Extract(dfm.PartDescriptor{Geometry: req.Geometry})
	estimate := pricing.Estimate(
		pricing.PartInput{
			VolumeCm3:       f.Volume,
			BoxXmm:          f.BoxX,
			BoxYmm:          f.BoxY,
			BoxZmm:          f.BoxZ,
			ComplexityScore: f.Complexity,
		},
		pricing.MaterialInput{
			DensityGPerCm3: m.Density,
			PricePerKg:     m.PricePerKg,
			Machinability:  m.Machinability,
		},
		s.rates,
	)

	suggestions := s.engine.Analyze(dfm.PartDescriptor{
		Geometry:    req.Geometry,
		Material:    &dfm.Material{Name: m.Name, Machinability: dfm.Float(m.Machinability)},
		CurrentCost: dfm.Float(estimate.Totals.Total),
	})

	writeJSON(w, http.StatusOK, estimateResponse{
		Success:        true,
		Material:       m,
		Estimate:       estimate,
		Suggestions:    suggestions,
		AnalysisMethod: analysisMethod,
	})
}

func (s *server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(msg,
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, msg)
}
