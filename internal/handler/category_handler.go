package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
	sessions     *session.Manager
}

func NewCategoryHandler(categoryRepo *repository.CategoryRepository, sessions *session.Manager) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
		sessions:     sessions,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list categories", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load categories")
		return
	}
	render(c, h.sessions, "categories.html", gin.H{"Categories": categories})
}

func (h *CategoryHandler) Add(c *gin.Context) {
	category := &models.Category{Name: c.PostForm("name")}

	if err := h.categoryRepo.Create(category); err != nil {
		// Unique index on name rejects duplicates
		logger.Log.Warn("Failed to create category",
			zap.String("name", category.Name),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not create category")
	}

	redirect(c, "/categories")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Category not found")
		redirect(c, "/categories")
		return
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete category",
			zap.Uint("category_id", id),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not delete category")
	}

	redirect(c, "/categories")
}
