package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/article/usecases"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// CategoryHandler serves the category catalog: a public list for the blog
// filter and operator-only editing.
type CategoryHandler struct {
	listUC   *usecases.ListCategoriesUseCase
	createUC *usecases.CreateCategoryUseCase
	renameUC *usecases.RenameCategoryUseCase
	deleteUC *usecases.DeleteCategoryUseCase
}

func NewCategoryHandler(
	listUC *usecases.ListCategoriesUseCase,
	createUC *usecases.CreateCategoryUseCase,
	renameUC *usecases.RenameCategoryUseCase,
	deleteUC *usecases.DeleteCategoryUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		listUC:   listUC,
		createUC: createUC,
		renameUC: renameUC,
		deleteUC: deleteUC,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type categoryRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.Title)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *CategoryHandler) Rename(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.renameUC.Execute(c.Request.Context(), categoryID, req.Title)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), categoryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
