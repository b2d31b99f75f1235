package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Aalify-X/progrify-be/database"
	"github.com/Aalify-X/progrify-be/middleware"
	"github.com/Aalify-X/progrify-be/service"
	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

type VerifyHandler struct {
	store    *database.SessionStore
	verifier service.TokenVerifier
	secret   string
	secure   bool
}

func NewVerifyHandler(store *database.SessionStore, verifier service.TokenVerifier, secret string, secure bool) *VerifyHandler {
	return &VerifyHandler{
		store:    store,
		verifier: verifier,
		secret:   secret,
		secure:   secure,
	}
}

// HandleVerifyWhop validates the bearer token against the subscription
// provider and establishes a session on success. A failed verification
// never creates a session.
func (h *VerifyHandler) HandleVerifyWhop(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.JSON(http.StatusUnauthorized, types.VerifyResponse{
			Success: false,
			Message: "No token provided",
		})
		return
	}

	user, err := h.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		log.Printf("token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, types.VerifyResponse{
			Success: false,
			Message: "Invalid token",
		})
		return
	}

	sess := h.store.Create(user)
	if err := middleware.SetSessionCookie(c, h.secret, sess.ID, h.secure); err != nil {
		h.store.Delete(sess.ID)
		c.JSON(http.StatusInternalServerError, types.VerifyResponse{
			Success: false,
			Message: "Failed to establish session",
		})
		return
	}

	c.JSON(http.StatusOK, types.VerifyResponse{
		Success:  true,
		Redirect: "/dashboard",
	})
}

// HandleLogout drops the server-side session and expires the cookie.
func (h *VerifyHandler) HandleLogout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if claims, err := utils.ParseSessionToken(cookie, h.secret); err == nil {
			h.store.Delete(claims.SessionID)
		}
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/verify")
}
