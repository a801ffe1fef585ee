package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"arbitrage-dashboard-go/internal/models"
	"arbitrage-dashboard-go/internal/orders"
	"arbitrage-dashboard-go/internal/render"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIHandler holds dependencies for the page and API endpoints.
type APIHandler struct {
	log        *zap.Logger
	source     orders.Source
	title      string
	ordersFile string
	startTime  time.Time
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, source orders.Source, title, ordersFile string) *APIHandler {
	return &APIHandler{
		log:        log,
		source:     source,
		title:      title,
		ordersFile: ordersFile,
		startTime:  time.Now(),
	}
}

// PageHandler renders the card page. Every request is one page lifetime:
// a fresh container filled by a single load.
func (h *APIHandler) PageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}

	log := h.log.With(zap.String("load_id", uuid.NewString()))
	container := render.NewContainer()

	// A failed load leaves the container empty; the page is still served.
	_ = render.NewLoader(h.source, log).LoadData(r.Context(), container)

	var buf bytes.Buffer
	if err := (render.Page{Title: h.title, Container: container}).Write(&buf); err != nil {
		log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// OrdersFileHandler serves the orders.csv file from disk.
func (h *APIHandler) OrdersFileHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, h.ordersFile)
}

// TradesHandler returns all trade records, most recent first.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	text, err := h.source.FetchText(r.Context())
	if err != nil {
		h.log.Error("Failed to get trades", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusBadGateway)
		return
	}

	records, _ := orders.Parse(text)
	if records == nil {
		records = []models.TradeRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.log.Error("Failed to write trades response", zap.Error(err))
	}
}

// StatusResponse is the structure for the /api/status endpoint.
type StatusResponse struct {
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	Uptime    string `json:"uptime"`
}

// StatusHandler reports that the server is up.
func (h *APIHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	status := StatusResponse{
		Status:    "ok",
		StartTime: h.startTime.Format(time.RFC3339),
		Uptime:    time.Since(h.startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.log.Error("Failed to write status response", zap.Error(err))
	}
}

// newMux wires the routes.
func newMux(h *APIHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/status", h.StatusHandler)
	mux.HandleFunc("GET /api/trades", h.TradesHandler)
	mux.HandleFunc("GET /orders.csv", h.OrdersFileHandler)
	mux.HandleFunc("GET /", h.PageHandler)

	return mux
}
