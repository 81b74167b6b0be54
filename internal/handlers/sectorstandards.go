package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/drainwise/drainwise-backend/internal/services"
	"github.com/drainwise/drainwise-backend/internal/types"
)

type SectorStandardsHandler struct {
	standardsService services.SectorStandardsService
}

func NewSectorStandardsHandler(standardsService services.SectorStandardsService) *SectorStandardsHandler {
	return &SectorStandardsHandler{standardsService: standardsService}
}

// GET /api/sector-standards
func (h *SectorStandardsHandler) List(c *gin.Context) {
	RespondOK(c, h.standardsService.List())
}

// GET /api/sector-standards/:sector
func (h *SectorStandardsHandler) Get(c *gin.Context) {
	cfg, err := h.standardsService.Get(types.Sector(c.Param("sector")))
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, cfg)
}
