package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drainwise/drainwise-backend/internal/apierr"
	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/repos"
	"github.com/drainwise/drainwise-backend/internal/requestdata"
	"github.com/drainwise/drainwise-backend/internal/services"
	"github.com/drainwise/drainwise-backend/internal/types"
)

type PricingConfigHandler struct {
	log           *logger.Logger
	configService services.PricingConfigService
	configSaver   services.ConfigSaver
}

func NewPricingConfigHandler(log *logger.Logger, configService services.PricingConfigService, configSaver services.ConfigSaver) *PricingConfigHandler {
	return &PricingConfigHandler{
		log:           log.With("handler", "PricingConfigHandler"),
		configService: configService,
		configSaver:   configSaver,
	}
}

// GET /api/pr2-clean?sector=&categoryId=
func (h *PricingConfigHandler) List(c *gin.Context) {
	filter := repos.ConfigFilter{
		Sector:     types.Sector(c.Query("sector")),
		CategoryID: c.Query("categoryId"),
	}
	results, err := h.configService.List(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), filter)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, results)
}

// GET /api/pr2-clean/category/:categoryId?pipeSize=
// Newest configurations first.
func (h *PricingConfigHandler) ListByCategory(c *gin.Context) {
	results, err := h.configService.ListByCategory(
		c.Request.Context(),
		requestdata.OwnerID(c.Request.Context()),
		c.Param("categoryId"),
		c.Query("pipeSize"),
	)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, results)
}

// GET /api/pr2-clean/:id
func (h *PricingConfigHandler) Get(c *gin.Context) {
	id, ok := configID(c)
	if !ok {
		return
	}
	cfg, err := h.configService.GetByID(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// POST /api/pr2-clean
func (h *PricingConfigHandler) Create(c *gin.Context) {
	var payload services.ConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondBadRequest(c, err)
		return
	}
	created, err := h.configService.Create(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), payload)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, created)
}

// PUT /api/pr2-clean/:id
// Full replace: fields absent from the body get defaults, not prior values.
func (h *PricingConfigHandler) Update(c *gin.Context) {
	id, ok := configID(c)
	if !ok {
		return
	}
	var payload services.ConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondBadRequest(c, err)
		return
	}
	updated, err := h.configService.Update(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), id, payload)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, updated)
}

// POST /api/pr2-clean/:id/auto-save
// Accepted immediately; the write lands after the settle delay, and bursts
// collapse to the last body received.
func (h *PricingConfigHandler) AutoSave(c *gin.Context) {
	id, ok := configID(c)
	if !ok {
		return
	}
	var payload services.ConfigPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondBadRequest(c, err)
		return
	}
	h.configSaver.Queue(requestdata.OwnerID(c.Request.Context()), id, payload)
	c.JSON(http.StatusAccepted, gin.H{"queued": true, "id": id})
}

// POST /api/pr2-clean/auto-detect-pipe-size
func (h *PricingConfigHandler) AutoDetectPipeSize(c *gin.Context) {
	var req services.AutoDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	cfg, err := h.configService.AutoDetectPipeSize(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, cfg)
}

// DELETE /api/pr2-clean/:id
// Body must carry userConfirmed: true; anything else leaves the row alone.
func (h *PricingConfigHandler) Delete(c *gin.Context) {
	id, ok := configID(c)
	if !ok {
		return
	}
	var req struct {
		UserConfirmed bool `json:"userConfirmed"`
	}
	// An absent or empty body means unconfirmed, not malformed.
	_ = c.ShouldBindJSON(&req)

	result, err := h.configService.Delete(c.Request.Context(), requestdata.OwnerID(c.Request.Context()), id, req.UserConfirmed)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func configID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RespondError(c, apierr.Validation("invalid configuration id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
