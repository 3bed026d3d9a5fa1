package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Reply answers a single free-text query.
func (h *Handler) Reply(c *gin.Context) {
	var req faq.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "request_too_large", errMessage(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Reply(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Categories lists the knowledge base categories.
func (h *Handler) Categories(c *gin.Context) {
	items, err := h.faqSvc.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": items})
}

// Trending returns the most common answered and unanswered queries.
func (h *Handler) Trending(c *gin.Context) {
	trending, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, trending)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
