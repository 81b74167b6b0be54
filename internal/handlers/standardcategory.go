package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/services"
)

type StandardCategoryHandler struct {
	log             *logger.Logger
	categoryService services.StandardCategoryService
}

func NewStandardCategoryHandler(log *logger.Logger, categoryService services.StandardCategoryService) *StandardCategoryHandler {
	return &StandardCategoryHandler{
		log:             log.With("handler", "StandardCategoryHandler"),
		categoryService: categoryService,
	}
}

// GET /api/standard-categories
func (h *StandardCategoryHandler) List(c *gin.Context) {
	results, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, results)
}

// POST /api/standard-categories
// 409 when the derived id already exists.
func (h *StandardCategoryHandler) Create(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, err)
		return
	}
	created, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, created)
}
