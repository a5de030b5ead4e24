package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/contact/usecases"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ContactHandler serves the public contact form and the operator inbox.
type ContactHandler struct {
	submitUC *usecases.SubmitContactUseCase
	listUC   *usecases.ListContactMessagesUseCase
	reviewUC *usecases.MarkContactReviewedUseCase
	deleteUC *usecases.DeleteContactMessageUseCase
}

func NewContactHandler(
	submitUC *usecases.SubmitContactUseCase,
	listUC *usecases.ListContactMessagesUseCase,
	reviewUC *usecases.MarkContactReviewedUseCase,
	deleteUC *usecases.DeleteContactMessageUseCase,
) *ContactHandler {
	return &ContactHandler{
		submitUC: submitUC,
		listUC:   listUC,
		reviewUC: reviewUC,
		deleteUC: deleteUC,
	}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitContactCommand{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Message received")
}

func (h *ContactHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListContactMessagesCommand{
		UnreviewedOnly: utils.QueryBool(c, "unreviewed"),
		Page:           utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ContactHandler) MarkReviewed(c *gin.Context) {
	messageID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reviewUC.Execute(c.Request.Context(), messageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	messageID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), messageID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
