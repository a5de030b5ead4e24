package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/listing/usecases"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// CityHandler serves the city catalog: a public list for the search form
// and operator-only editing.
type CityHandler struct {
	listUC   *usecases.ListCitiesUseCase
	createUC *usecases.CreateCityUseCase
	renameUC *usecases.RenameCityUseCase
	deleteUC *usecases.DeleteCityUseCase
}

func NewCityHandler(
	listUC *usecases.ListCitiesUseCase,
	createUC *usecases.CreateCityUseCase,
	renameUC *usecases.RenameCityUseCase,
	deleteUC *usecases.DeleteCityUseCase,
) *CityHandler {
	return &CityHandler{
		listUC:   listUC,
		createUC: createUC,
		renameUC: renameUC,
		deleteUC: deleteUC,
	}
}

func (h *CityHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type cityRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CityHandler) Create(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *CityHandler) Rename(c *gin.Context) {
	cityID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.renameUC.Execute(c.Request.Context(), cityID, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *CityHandler) Delete(c *gin.Context) {
	cityID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
