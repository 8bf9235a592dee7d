package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lamyinia/riichi-engine/internal/config"
	"github.com/lamyinia/riichi-engine/internal/replay"
	"github.com/lamyinia/riichi-engine/internal/replay/cache"
	"github.com/lamyinia/riichi-engine/internal/replay/mjai"
	"github.com/lamyinia/riichi-engine/internal/replay/mjsoul"
)

const cacheTTL = 24 * time.Hour

// Handler binds the verify endpoint to a ruleset and a shared report cache.
type Handler struct {
	Rules config.Ruleset
	Cache cache.Cache
}

type verifyRequest struct {
	Dialect               string `json:"dialect" binding:"required"`
	Log                   string `json:"log" binding:"required"`
	Seed                  int64  `json:"seed"`
	MjsoulAnkanType2Added bool   `json:"mjsoul_ankan_type2_added"`
}

// Verify decodes the posted log in the requested dialect, replays it
// through a fresh engine, and returns the resulting Report as JSON. A log
// identical (by content hash) to one already verified is served from Cache
// instead of re-running the replay.
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := cacheKey(req)
	if cached, ok, err := h.Cache.Get(c.Request.Context(), key); err == nil && ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	var events []replay.Event
	var err error
	switch req.Dialect {
	case "mjai":
		events, err = mjai.DecodeBytes([]byte(req.Log))
	case "mjsoul":
		policy := mjsoul.AnkanType2IsConcealed
		if req.MjsoulAnkanType2Added {
			policy = mjsoul.AnkanType2IsAdded
		}
		events, err = mjsoul.Decode([]byte(req.Log), policy)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dialect: " + req.Dialect})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver := replay.NewDriver(h.Rules, req.Seed)
	report, err := driver.Verify(events)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	report.WithHostInfo()

	body, err := json.Marshal(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.Cache.Set(context.Background(), key, body, cacheTTL); err != nil {
		// a cache write failure never invalidates an already-computed report
		c.Header("X-Cache-Error", err.Error())
	}

	status := http.StatusOK
	if !report.OK() {
		status = http.StatusUnprocessableEntity
	}
	c.Data(status, "application/json", body)
}

func cacheKey(req verifyRequest) string {
	sum := sha256.Sum256([]byte(req.Dialect + "\x00" + req.Log))
	return hex.EncodeToString(sum[:])
}
