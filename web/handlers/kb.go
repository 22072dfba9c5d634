package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellness-bot/web/services"
)

// KBHandler serves the knowledge-base query endpoints.
type KBHandler struct {
	resolve *services.ResolveService
	search  *services.SearchService
	reload  *services.ReloadService
	stats   *services.StatsService
	logger  *zap.Logger
}

type respondRequest struct {
	Text  string `json:"text" form:"text"`
	Email string `json:"email" form:"email"`
}

func NewKBHandler(resolve *services.ResolveService, search *services.SearchService, reload *services.ReloadService, stats *services.StatsService, logger *zap.Logger) *KBHandler {
	return &KBHandler{
		resolve: resolve,
		search:  search,
		reload:  reload,
		stats:   stats,
		logger:  logger,
	}
}

// Respond resolves a free-text wellness query and returns either the
// aggregated bilingual answer or a fallback with suggestions. Note that empty
// text is not a client error: the pipeline answers it with the fixed
// enter-a-query prompt.
func (h *KBHandler) Respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	response, err := h.resolve.Respond(c.Request.Context(), req.Text, strings.TrimSpace(req.Email))
	if err != nil {
		respondWithError(c, http.StatusServiceUnavailable, err,
			"The knowledge base is temporarily unavailable, please try again.", h.logger,
			zap.String("query", req.Text))
		return
	}

	c.JSON(http.StatusOK, response)
}

// Search returns typeahead suggestions for the search bar.
func (h *KBHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	suggestions := h.search.Suggest(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Reload rebuilds the alias index and drops the caches after an admin edit.
func (h *KBHandler) Reload(c *gin.Context) {
	if err := h.reload.Reload(c.Request.Context()); err != nil {
		respondWithError(c, http.StatusServiceUnavailable, err,
			"Reload failed, previous knowledge base still active.", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

// Stats reports how many queries fell through unmatched inside the trailing
// window (default 24 hours), for alias-coverage curation.
func (h *KBHandler) Stats(c *gin.Context) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", "24"))
	if err != nil || hours <= 0 {
		respondWithClientError(c, http.StatusBadRequest, "Invalid hours parameter.")
		return
	}

	count, err := h.stats.UnmatchedCount(c.Request.Context(), time.Duration(hours)*time.Hour)
	if err != nil {
		respondWithError(c, http.StatusServiceUnavailable, err,
			"Query statistics are temporarily unavailable.", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unmatched_queries": count, "window_hours": hours})
}

// Health is the liveness endpoint.
func (h *KBHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
