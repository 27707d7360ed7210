package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ErosMello/jornalescolar/apperrors"
	"github.com/ErosMello/jornalescolar/auth"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	identity, err := h.gateway.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created, verify your email to activate it",
		"uid":     identity.UID,
	})
}

func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	identity, err := h.gateway.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	perm := h.gateway.Permission(ctx, identity)

	token, err := auth.IssueToken(h.cfg.JWTSecret, identity, perm.IsAdmin)
	if err != nil {
		logrus.WithError(err).Error("token issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"uid":     identity.UID,
		"email":   identity.Email,
		"isAdmin": perm.IsAdmin,
	})
}

func (h *Handlers) Logout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.gateway.SignOut(ctx, c.GetString("uid")); err != nil {
		logrus.WithError(err).Warn("sign-out failed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// MyPermission resolves the caller's record, creating the non-admin default
// on first lookup.
func (h *Handlers) MyPermission(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	identity := auth.Identity{UID: c.GetString("uid"), Email: c.GetString("email"), EmailVerified: true}
	perm := h.gateway.Permission(ctx, identity)

	c.JSON(http.StatusOK, perm)
}
