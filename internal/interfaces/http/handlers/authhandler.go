package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/agent/usecases"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// AuthHandler serves registration, login and email verification.
type AuthHandler struct {
	registerUC *usecases.RegisterAgentUseCase
	loginUC    *usecases.LoginUseCase
	refreshUC  *usecases.RefreshTokenUseCase
	verifyUC   *usecases.VerifyEmailUseCase
	resendUC   *usecases.ResendVerificationUseCase
}

func NewAuthHandler(
	registerUC *usecases.RegisterAgentUseCase,
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	verifyUC *usecases.VerifyEmailUseCase,
	resendUC *usecases.ResendVerificationUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		refreshUC:  refreshUC,
		verifyUC:   verifyUC,
		resendUC:   resendUC,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterAgentCommand{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Account created, verification code sent")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type verifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), usecases.VerifyEmailCommand{
		AgentID: actorID(c),
		Code:    req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *AuthHandler) ResendVerification(c *gin.Context) {
	if err := h.resendUC.Execute(c.Request.Context(), actorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}
