package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aalify-X/progrify-be/database"
	"github.com/Aalify-X/progrify-be/middleware"
	"github.com/Aalify-X/progrify-be/utils"
)

// PageHandler renders the browser-facing pages. The protected ones sit
// behind the auth middleware; this handler only decides where the landing
// page sends the visitor.
type PageHandler struct {
	store  *database.SessionStore
	secret string
}

func NewPageHandler(store *database.SessionStore, secret string) *PageHandler {
	return &PageHandler{
		store:  store,
		secret: secret,
	}
}

// HandleHome routes by verification state.
func (h *PageHandler) HandleHome(c *gin.Context) {
	if h.hasSession(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/verify")
}

func (h *PageHandler) hasSession(c *gin.Context) bool {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil {
		return false
	}
	claims, err := utils.ParseSessionToken(cookie, h.secret)
	if err != nil {
		return false
	}
	_, ok := h.store.Get(claims.SessionID)
	return ok
}

func (h *PageHandler) HandleVerifyPage(c *gin.Context) {
	c.HTML(http.StatusOK, "whop.html", nil)
}

func (h *PageHandler) HandleDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *PageHandler) HandlePDFTools(c *gin.Context) {
	c.HTML(http.StatusOK, "pdf_document_intelligence.html", nil)
}

func (h *PageHandler) HandleFlashcards(c *gin.Context) {
	c.HTML(http.StatusOK, "flashcards.html", nil)
}

func (h *PageHandler) HandleWhiteboard(c *gin.Context) {
	c.HTML(http.StatusOK, "whiteboard.html", nil)
}

func (h *PageHandler) HandleDigitalPlanner(c *gin.Context) {
	c.HTML(http.StatusOK, "digital_planner.html", nil)
}
