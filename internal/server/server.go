package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"go-fare-compare/internal/scraper"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	msgMissingLocation = "⚠️ Please enter both pickup and drop locations"
	msgFetchFailed     = "❌ Unable to fetch fare information. Please try again later."
)

// FareFetcher runs one fetch cycle.
type FareFetcher interface {
	FetchAll(ctx context.Context, req scraper.FareRequest) ([]scraper.Quote, error)
}

type Handler struct {
	log     *zap.Logger
	fetcher FareFetcher
}

type pageData struct {
	Pickup  string
	Drop    string
	Warning string
	Error   string
	Quotes  []scraper.Quote
	RawJSON string
}

type fareResponse struct {
	Pickup  string          `json:"pickup"`
	Drop    string          `json:"drop"`
	Results []scraper.Quote `json:"results"`
}

// New wires the form, JSON API and health routes.
func New(log *zap.Logger, fetcher FareFetcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	h := &Handler{log: log, fetcher: fetcher}
	r.GET("/", h.index)
	r.POST("/fares", h.checkFares)
	r.GET("/api/fares", h.apiFares)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return r
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{})
}

func (h *Handler) checkFares(c *gin.Context) {
	data := pageData{
		Pickup: c.PostForm("pickup"),
		Drop:   c.PostForm("drop"),
	}

	req, err := scraper.NewFareRequest(data.Pickup, data.Drop)
	if err != nil {
		data.Warning = msgMissingLocation
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	quotes, err := h.fetcher.FetchAll(c.Request.Context(), req)
	if err != nil || len(quotes) == 0 {
		h.log.Error("❌ Fare comparison failed", zap.Error(err))
		data.Error = msgFetchFailed
		c.HTML(http.StatusBadGateway, "index.html", data)
		return
	}

	raw, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		h.log.Warn("⚠️ Failed to marshal raw results", zap.Error(err))
	}
	data.Quotes = quotes
	data.RawJSON = string(raw)
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Handler) apiFares(c *gin.Context) {
	req, err := scraper.NewFareRequest(c.Query("pickup"), c.Query("drop"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quotes, err := h.fetcher.FetchAll(c.Request.Context(), req)
	if err != nil || len(quotes) == 0 {
		if err == nil {
			err = errors.New("no quotes returned")
		}
		h.log.Error("❌ Fare comparison failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to fetch fare information"})
		return
	}

	c.JSON(http.StatusOK, fareResponse{
		Pickup:  req.Pickup,
		Drop:    req.Drop,
		Results: quotes,
	})
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
