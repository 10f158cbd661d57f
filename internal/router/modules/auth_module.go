package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VinaySonwane/note-App/internal/container"
	handlers "github.com/VinaySonwane/note-App/internal/interface/http"
	"github.com/VinaySonwane/note-App/internal/interface/middleware"
)

// AuthModule wires the public passwordless auth endpoints.
// POST /api/users/register, /api/users/verify-otp, /api/users/resend-otp,
// /api/users/google-auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// OTP issuance is throttled harder than verification so a single IP
	// cannot mailbomb an address.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	resendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	googleLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	users := rg.Group("/users")
	{
		users.POST("/register", registerLimiter, m.Handler.Register)
		users.POST("/verify-otp", verifyLimiter, m.Handler.VerifyOTP)
		users.POST("/resend-otp", resendLimiter, m.Handler.ResendOTP)
		users.POST("/google-auth", googleLimiter, m.Handler.GoogleAuth)
	}
}
