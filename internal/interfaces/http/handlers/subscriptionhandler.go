package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/subscription/usecases"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// SubscriptionHandler serves the public plan catalog, the purchase flow
// and the operator plan console.
type SubscriptionHandler struct {
	listPlansUC  *usecases.ListPlansUseCase
	purchaseUC   *usecases.PurchaseSubscriptionUseCase
	currentUC    *usecases.GetCurrentSubscriptionUseCase
	createPlanUC *usecases.CreatePlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	deletePlanUC *usecases.DeletePlanUseCase
}

func NewSubscriptionHandler(
	listPlansUC *usecases.ListPlansUseCase,
	purchaseUC *usecases.PurchaseSubscriptionUseCase,
	currentUC *usecases.GetCurrentSubscriptionUseCase,
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		listPlansUC:  listPlansUC,
		purchaseUC:   purchaseUC,
		currentUC:    currentUC,
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		deletePlanUC: deletePlanUC,
	}
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type purchaseRequest struct {
	PlanSID string `json:"plan_sid" binding:"required"`
}

func (h *SubscriptionHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.purchaseUC.Execute(c.Request.Context(), usecases.PurchaseSubscriptionCommand{
		AgentID: actorID(c),
		PlanSID: req.PlanSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Subscription activated")
}

func (h *SubscriptionHandler) GetCurrent(c *gin.Context) {
	result, err := h.currentUC.Execute(c.Request.Context(), actorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type planRequest struct {
	Name         string `json:"name" binding:"required"`
	ListingQuota uint   `json:"listing_quota" binding:"required"`
	DurationDays uint   `json:"duration_days" binding:"required"`
	Price        uint64 `json:"price"`
}

func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:         req.Name,
		ListingQuota: req.ListingQuota,
		DurationDays: req.DurationDays,
		Price:        req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanSID:      c.Param("sid"),
		Name:         req.Name,
		ListingQuota: req.ListingQuota,
		DurationDays: req.DurationDays,
		Price:        req.Price,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
