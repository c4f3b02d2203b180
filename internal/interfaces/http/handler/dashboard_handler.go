package handler

import (
	"io/fs"
	"net/http"

	"github.com/autoguardian/vehicle-safety/pkg/logger"
)

// DashboardHandler serves the single page operator dashboard.
type DashboardHandler struct {
	assets fs.FS
	logger *logger.Logger
}

// NewDashboardHandler expects index.html at the root of assets.
func NewDashboardHandler(assets fs.FS, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{assets: assets, logger: logger}
}

func (h *DashboardHandler) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := fs.ReadFile(h.assets, "index.html")
	if err != nil {
		h.logger.Error("Failed to read dashboard page", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(page); err != nil {
		h.logger.Debug("Failed to write dashboard page", "error", err.Error())
	}
}
