package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/service"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

// Home routes by session state: logged in goes to the dashboard, everyone
// else to the login page.
func (h *AuthHandler) Home(c *gin.Context) {
	if _, ok := h.sessions.User(c.Request); ok {
		redirect(c, "/dashboard")
		return
	}
	redirect(c, "/login")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, h.sessions, "login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", err.Error())
		redirect(c, "/login")
		return
	}

	if err := h.sessions.SetUser(c.Writer, c.Request, user); err != nil {
		logger.Log.Error("Failed to save session",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not start a session")
		redirect(c, "/login")
		return
	}

	redirect(c, "/dashboard")
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, h.sessions, "register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")
	role := models.Role(c.PostForm("role"))

	if _, err := h.authService.Register(name, email, password, confirm, role); err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", err.Error())
		redirect(c, "/register")
		return
	}

	h.sessions.AddFlash(c.Writer, c.Request, "success", "Registration successful, please log in")
	redirect(c, "/login")
}

// Logout clears every session marker unconditionally.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		logger.Log.Warn("Failed to clear session", zap.Error(err))
	}
	redirect(c, "/login")
}
