package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saferoute-in/saferoute-go/internal/gateway"
	"github.com/saferoute-in/saferoute-go/internal/models"
	"github.com/saferoute-in/saferoute-go/internal/repository"
	"github.com/saferoute-in/saferoute-go/internal/scoring"
)

const (
	defaultZoom          = 12
	defaultReportRadiusM = 500.0
	maxReportRadiusM     = 5000.0
	reportListWindow     = 7 * 24 * time.Hour
)

type Handler struct {
	engine  *scoring.Engine
	gateway *gateway.Gateway
	scores  repository.ScoreRepository
	reports repository.ReportRepository
}

func NewHandler(engine *scoring.Engine, gw *gateway.Gateway, scores repository.ScoreRepository, reports repository.ReportRepository) *Handler {
	return &Handler{
		engine:  engine,
		gateway: gw,
		scores:  scores,
		reports: reports,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	v1.GET("/safety/score", h.getScore)
	v1.GET("/safety/heatmap", h.getHeatmap)
	v1.POST("/reports", h.createReport)
	v1.GET("/reports", h.listReports)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getScore(c *gin.Context) {
	coord, ok := parseCoordinate(c)
	if !ok {
		return
	}
	sctx, ok := parseContext(c)
	if !ok {
		return
	}

	score, err := h.engine.ComputeScore(c.Request.Context(), coord, sctx)
	if err != nil {
		var invalidCoord *models.InvalidCoordinateError
		if errors.As(err, &invalidCoord) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute score"})
		return
	}

	// Best effort: the score is still served when persistence fails.
	if err := h.scores.SaveScore(c.Request.Context(), score); err != nil {
		slog.Warn("failed to persist score", "error", err)
	}

	c.JSON(http.StatusOK, score)
}

func (h *Handler) getHeatmap(c *gin.Context) {
	bounds, ok := parseBounds(c)
	if !ok {
		return
	}
	sctx, ok := parseContext(c)
	if !ok {
		return
	}

	zoom := defaultZoom
	if z := c.Query("zoom"); z != "" {
		parsed, err := strconv.Atoi(z)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "zoom must be an integer"})
			return
		}
		zoom = parsed
	}

	result, err := h.gateway.Resolve(c.Request.Context(), models.HeatmapRequest{
		Bounds:  bounds,
		Zoom:    zoom,
		Context: sctx,
	})
	if err != nil {
		var invalidReq *models.InvalidRequestError
		if errors.As(err, &invalidReq) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("heatmap resolution failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build heatmap"})
		return
	}

	if c.Query("format") == "geojson" {
		c.Header("Content-Type", "application/geo+json")
		c.JSON(http.StatusOK, toGeoJSON(result.Points))
		return
	}
	c.JSON(http.StatusOK, result)
}

type createReportRequest struct {
	Latitude    float64 `json:"lat" binding:"required"`
	Longitude   float64 `json:"lng" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
}

func (h *Handler) createReport(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
		return
	}

	coord := models.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude}
	if !coord.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate"})
		return
	}

	category, err := models.ParseReportCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Coordinate:  coord,
		Category:    category,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := h.reports.AddReport(c.Request.Context(), report); err != nil {
		slog.Error("failed to store report", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

func (h *Handler) listReports(c *gin.Context) {
	coord, ok := parseCoordinate(c)
	if !ok {
		return
	}

	radius := defaultReportRadiusM
	if r := c.Query("radius"); r != "" {
		parsed, err := strconv.ParseFloat(r, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius must be a positive number"})
			return
		}
		radius = parsed
	}
	if radius > maxReportRadiusM {
		radius = maxReportRadiusM
	}

	since := time.Now().Add(-reportListWindow)
	reports, err := h.reports.ListReportsNear(c.Request.Context(), coord, radius, since, 100)
	if err != nil {
		slog.Error("failed to list reports", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"count":   len(reports),
	})
}
