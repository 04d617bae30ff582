package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/linkmeta/internal/domain"
	"github.com/jonesrussell/linkmeta/internal/logger"
)

// Resolver is the core boundary the HTTP layer depends on.
type Resolver interface {
	Resolve(ctx context.Context, link string) (*domain.Record, error)
}

// Handler handles HTTP requests for the resolution API.
type Handler struct {
	resolver Resolver
	logger   logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(resolver Resolver, log logger.Logger) *Handler {
	return &Handler{resolver: resolver, logger: log}
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Resolve handles GET /api/v1/resolve?link=…
func (h *Handler) Resolve(c *gin.Context) {
	record, ok := h.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

// ResolveCompact handles GET /api/v1/resolve/compact?link=… and renders the
// record as a one-line attribution string.
func (h *Handler) ResolveCompact(c *gin.Context) {
	record, ok := h.resolve(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("© %s | %s | %s", record.Year, record.Channel, record.URL))
}

// resolve runs the shared query-parsing, resolution and error mapping. The
// second return value is false when a response has already been written.
func (h *Handler) resolve(c *gin.Context) (*domain.Record, bool) {
	link := c.Query("link")
	if link == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "link query parameter is required"})
		return nil, false
	}

	h.logger.Info("Resolving link", logger.String("link", link))

	record, err := h.resolver.Resolve(c.Request.Context(), link)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	return record, true
}

// statusFor maps the core error taxonomy onto HTTP status codes: links the
// service does not recognize are the caller's problem, everything else is an
// upstream/gateway problem.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrUnsupportedHost) {
		return http.StatusUnprocessableEntity
	}
	// Upstream failures and extraction failures both mean the gateway to
	// the platform let us down.
	return http.StatusBadGateway
}
