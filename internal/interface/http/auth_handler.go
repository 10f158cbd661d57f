package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/VinaySonwane/note-App/internal/application"
	"github.com/VinaySonwane/note-App/pkg/response"
	"github.com/VinaySonwane/note-App/pkg/validation"
)

// AuthHandler exposes the passwordless registration and sign-in endpoints.
type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

const dobLayout = "2006-01-02"

type registerRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	DOB   string `json:"dob" binding:"required,datetime=2006-01-02"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type resendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type googleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type sessionResponse struct {
	Token string                     `json:"token"`
	User  application.UserProjection `json:"user"`
}

// Register POST /api/users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"dob": "must be a date in format " + dobLayout})
		return
	}

	switch err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, dob); {
	case err == nil:
		response.Success[any](c, http.StatusCreated, nil, "registration successful! an OTP has been sent to your email")
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
	case errors.Is(err, application.ErrNotifyFailed):
		// The user row exists; the client recovers via resend-otp.
		response.Error[any](c, http.StatusInternalServerError, "user registered, but failed to send OTP", nil)
	default:
		h.Logger.WithError(err).Error("registration failed")
		response.Error[any](c, http.StatusInternalServerError, "server error during registration", nil)
	}
}

// VerifyOTP POST /api/users/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, sessionResponse{Token: res.Token, User: res.User}, "otp verified successfully")
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusBadRequest, "user not found", nil)
	case errors.Is(err, application.ErrNoChallenge):
		response.Error[any](c, http.StatusBadRequest, "no pending otp", nil)
	case errors.Is(err, application.ErrOTPExpired):
		response.Error[any](c, http.StatusBadRequest, "otp expired", nil)
	case errors.Is(err, application.ErrOTPMismatch):
		response.Error[any](c, http.StatusBadRequest, "invalid otp", nil)
	default:
		h.Logger.WithError(err).Error("otp verification failed")
		response.Error[any](c, http.StatusInternalServerError, "server error during otp verification", nil)
	}
}

// ResendOTP POST /api/users/resend-otp
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req resendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	switch err := h.Svc.ResendOTP(c.Request.Context(), req.Email); {
	case err == nil:
		response.Success[any](c, http.StatusOK, nil, "a new OTP has been sent to your email")
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	default:
		h.Logger.WithError(err).Error("otp resend failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}

// GoogleAuth POST /api/users/google-auth
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.GoogleSignIn(c.Request.Context(), req.Credential)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, sessionResponse{Token: res.Token, User: res.User}, "google sign-in successful")
	case errors.Is(err, application.ErrInvalidCredential):
		response.Error[any](c, http.StatusBadRequest, "invalid google token", nil)
	default:
		h.Logger.WithError(err).Error("google sign-in failed")
		response.Error[any](c, http.StatusInternalServerError, "google authentication failed", nil)
	}
}
