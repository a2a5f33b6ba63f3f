package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/session"
	"auction-admin/internal/utils"
	"auction-admin/pkg/logger"
)

type UserHandler struct {
	userRepo *repository.UserRepository
	sessions *session.Manager
}

func NewUserHandler(userRepo *repository.UserRepository, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		sessions: sessions,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list users", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load users")
		return
	}
	render(c, h.sessions, "users.html", gin.H{"Users": users})
}

func (h *UserHandler) AddForm(c *gin.Context) {
	render(c, h.sessions, "user_form.html", nil)
}

// Add creates a user from the admin form. Unlike self-registration, the
// operator form carries no validation beyond what the store enforces.
func (h *UserHandler) Add(c *gin.Context) {
	hash, err := utils.HashPassword(c.PostForm("password"))
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not create user")
		redirect(c, "/users")
		return
	}

	user := &models.User{
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		PasswordHash: hash,
		Status:       models.UserActive,
		Role:         models.Role(c.PostForm("role")),
	}

	if err := h.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user", zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not create user")
		redirect(c, "/users")
		return
	}

	redirect(c, "/users")
}

func (h *UserHandler) EditForm(c *gin.Context) {
	user := h.fetch(c)
	if user == nil {
		return
	}
	render(c, h.sessions, "user_form.html", gin.H{"User": user})
}

// Edit overwrites every editable field unconditionally.
func (h *UserHandler) Edit(c *gin.Context) {
	user := h.fetch(c)
	if user == nil {
		return
	}

	user.Name = c.PostForm("name")
	user.Email = c.PostForm("email")
	user.Status = models.UserStatus(c.PostForm("status"))
	user.Role = models.Role(c.PostForm("role"))

	if err := h.userRepo.Update(user); err != nil {
		logger.Log.Error("Failed to update user",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not update user")
	}

	redirect(c, "/users")
}

// Deactivate flips the soft status flag; the row stays.
func (h *UserHandler) Deactivate(c *gin.Context) {
	user := h.fetch(c)
	if user == nil {
		return
	}

	if err := h.userRepo.Deactivate(user.ID); err != nil {
		logger.Log.Error("Failed to deactivate user",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not deactivate user")
	}

	redirect(c, "/users")
}

// fetch loads the target user or, failing that, redirects back to the list
// with a flash and returns nil.
func (h *UserHandler) fetch(c *gin.Context) *models.User {
	id, err := parseID(c)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "User not found")
		redirect(c, "/users")
		return nil
	}

	user, err := h.userRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch user", zap.Uint("user_id", id), zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not load user")
		redirect(c, "/users")
		return nil
	}
	if user == nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "User not found")
		redirect(c, "/users")
		return nil
	}

	return user
}
