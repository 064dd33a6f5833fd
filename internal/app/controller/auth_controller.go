package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onnuriprint/onnuriprint-backend/config"
	"github.com/onnuriprint/onnuriprint-backend/internal/errors"
	"github.com/onnuriprint/onnuriprint-backend/internal/middleware"
	"github.com/onnuriprint/onnuriprint-backend/pkg/util"
)

// AuthController 관리자 로그인 (단일 계정, 설정 기반)
type AuthController struct {
	adminCfg *config.AdminConfig
	jwtCfg   *config.JWTConfig
}

func NewAuthController(adminCfg *config.AdminConfig, jwtCfg *config.JWTConfig) *AuthController {
	return &AuthController{adminCfg: adminCfg, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 관리자 로그인
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.RespondWithValidationError(c, map[string]string{
			"email":    "이메일은 필수입니다",
			"password": "비밀번호는 필수입니다",
		})
		return
	}

	if ctrl.adminCfg.PasswordHash == "" {
		log.Warn("관리자 비밀번호 해시가 설정되지 않음", nil)
		errors.Unauthorized(c, "관리자 로그인이 비활성화되어 있습니다")
		return
	}

	if req.Email != ctrl.adminCfg.Email ||
		!util.VerifyPassword(ctrl.adminCfg.PasswordHash, req.Password) {
		log.Warn("관리자 로그인 실패", map[string]interface{}{
			"email": req.Email,
		})
		errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthInvalidCredentials,
			"이메일 또는 비밀번호가 올바르지 않습니다")
		return
	}

	token, err := util.GenerateToken(req.Email, "admin", ctrl.jwtCfg.Secret, ctrl.jwtCfg.AccessTokenExpiry)
	if err != nil {
		log.Error("토큰 발급 실패", err, nil)
		errors.InternalError(c, "")
		return
	}

	log.Info("관리자 로그인", map[string]interface{}{
		"email": req.Email,
	})
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int64(ctrl.jwtCfg.AccessTokenExpiry.Seconds()),
	})
}
