package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/agent/usecases"
	"github.com/casaplex/casaplex/internal/domain/agent"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// AgentHandler serves the public directory, the profile endpoints and the
// operator account console.
type AgentHandler struct {
	listUC       *usecases.ListAgentsUseCase
	profileUC    *usecases.GetAgentProfileUseCase
	ownProfileUC *usecases.GetOwnProfileUseCase
	updateUC     *usecases.UpdateProfileUseCase
	passwordUC   *usecases.ChangePasswordUseCase
	deleteUC     *usecases.DeleteAccountUseCase
	adminListUC  *usecases.ListAgentsAdminUseCase
	promoteUC    *usecases.PromoteAgentUseCase
	deactivateUC *usecases.DeactivateAgentUseCase
}

func NewAgentHandler(
	listUC *usecases.ListAgentsUseCase,
	profileUC *usecases.GetAgentProfileUseCase,
	ownProfileUC *usecases.GetOwnProfileUseCase,
	updateUC *usecases.UpdateProfileUseCase,
	passwordUC *usecases.ChangePasswordUseCase,
	deleteUC *usecases.DeleteAccountUseCase,
	adminListUC *usecases.ListAgentsAdminUseCase,
	promoteUC *usecases.PromoteAgentUseCase,
	deactivateUC *usecases.DeactivateAgentUseCase,
) *AgentHandler {
	return &AgentHandler{
		listUC:       listUC,
		profileUC:    profileUC,
		ownProfileUC: ownProfileUC,
		updateUC:     updateUC,
		passwordUC:   passwordUC,
		deleteUC:     deleteUC,
		adminListUC:  adminListUC,
		promoteUC:    promoteUC,
		deactivateUC: deactivateUC,
	}
}

func (h *AgentHandler) ListDirectory(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAgentsCommand{
		Search: c.Query("search"),
		Page:   utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *AgentHandler) GetProfile(c *gin.Context) {
	result, err := h.profileUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *AgentHandler) GetOwnProfile(c *gin.Context) {
	result, err := h.ownProfileUC.Execute(c.Request.Context(), actorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type updateProfileRequest struct {
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       string            `json:"phone"`
	Description string            `json:"description"`
	AvatarURL   string            `json:"avatar_url"`
	Links       agent.SocialLinks `json:"links"`
}

func (h *AgentHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		AgentID:     actorID(c),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		AvatarURL:   req.AvatarURL,
		Links:       req.Links,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AgentHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.passwordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		AgentID:     actorID(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Password changed", nil)
}

func (h *AgentHandler) DeleteAccount(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), actorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *AgentHandler) ListAdmin(c *gin.Context) {
	result, err := h.adminListUC.Execute(c.Request.Context(), usecases.ListAgentsAdminCommand{
		Search: c.Query("search"),
		Page:   utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *AgentHandler) Promote(c *gin.Context) {
	result, err := h.promoteUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *AgentHandler) Deactivate(c *gin.Context) {
	result, err := h.deactivateUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
