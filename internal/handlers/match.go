package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pubg-tracker/internal/cache"
)

// ArtifactReader is the cache surface the query handlers read. Implemented by
// cache.Cache; tests substitute a fake.
type ArtifactReader interface {
	GetSummaries(ctx context.Context) ([]byte, error)
	GetMatch(ctx context.Context, matchID string) ([]byte, error)
	GetSeasonStats(ctx context.Context) ([]byte, error)
}

// MatchHandler serves the mirrored match artifacts. It is read-only: the
// tracker owns all writes, this service only reflects the cache.
type MatchHandler struct {
	cache ArtifactReader
	log   *logrus.Entry
}

// NewMatchHandler creates the handler.
func NewMatchHandler(cacheClient ArtifactReader) *MatchHandler {
	return &MatchHandler{
		cache: cacheClient,
		log:   logrus.WithField("handler", "match"),
	}
}

// GetMatches returns the summary ledger: GET /matches
func (h *MatchHandler) GetMatches(c *gin.Context) {
	blob, err := h.cache.GetSummaries(c.Request.Context())
	if err != nil {
		h.respondCacheError(c, err, "match summaries not available")
		return
	}
	c.Data(http.StatusOK, "application/json", blob)
}

// GetMatch returns one enriched combat log: GET /match/:id
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID := c.Param("id")
	blob, err := h.cache.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		h.respondCacheError(c, err, "no data for match "+matchID)
		return
	}
	c.Data(http.StatusOK, "application/json", blob)
}

// GetSeasonStats returns the season aggregates: GET /season
func (h *MatchHandler) GetSeasonStats(c *gin.Context) {
	blob, err := h.cache.GetSeasonStats(c.Request.Context())
	if err != nil {
		h.respondCacheError(c, err, "season stats not available")
		return
	}
	c.Data(http.StatusOK, "application/json", blob)
}

func (h *MatchHandler) respondCacheError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, cache.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	h.log.WithError(err).Error("cache read failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch data from cache"})
}
