package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/listing/usecases"
	"github.com/casaplex/casaplex/internal/domain/listing"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ListingHandler serves the public catalog, the agent dashboard and the
// operator moderation queue for listings.
type ListingHandler struct {
	searchUC   *usecases.SearchListingsUseCase
	latestUC   *usecases.LatestListingsUseCase
	boundsUC   *usecases.GetSearchBoundsUseCase
	byAgentUC  *usecases.ListingsByAgentUseCase
	getUC      *usecases.GetListingUseCase
	createUC   *usecases.CreateListingUseCase
	updateUC   *usecases.UpdateListingUseCase
	deleteUC   *usecases.DeleteListingUseCase
	submitUC   *usecases.SubmitListingUseCase
	ownListUC  *usecases.ListOwnListingsUseCase
	countsUC   *usecases.GetListingCountsUseCase
	reviewUC   *usecases.ListListingsForReviewUseCase
	approveUC  *usecases.ApproveListingUseCase
	rejectUC   *usecases.RejectListingUseCase
}

func NewListingHandler(
	searchUC *usecases.SearchListingsUseCase,
	latestUC *usecases.LatestListingsUseCase,
	boundsUC *usecases.GetSearchBoundsUseCase,
	byAgentUC *usecases.ListingsByAgentUseCase,
	getUC *usecases.GetListingUseCase,
	createUC *usecases.CreateListingUseCase,
	updateUC *usecases.UpdateListingUseCase,
	deleteUC *usecases.DeleteListingUseCase,
	submitUC *usecases.SubmitListingUseCase,
	ownListUC *usecases.ListOwnListingsUseCase,
	countsUC *usecases.GetListingCountsUseCase,
	reviewUC *usecases.ListListingsForReviewUseCase,
	approveUC *usecases.ApproveListingUseCase,
	rejectUC *usecases.RejectListingUseCase,
) *ListingHandler {
	return &ListingHandler{
		searchUC:  searchUC,
		latestUC:  latestUC,
		boundsUC:  boundsUC,
		byAgentUC: byAgentUC,
		getUC:     getUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		submitUC:  submitUC,
		ownListUC: ownListUC,
		countsUC:  countsUC,
		reviewUC:  reviewUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
	}
}

func parseListingFilter(c *gin.Context) listing.Filter {
	filter := listing.Filter{
		Search:   c.Query("search"),
		CityID:   utils.QueryUintPtr(c, "city_id"),
		PriceMin: utils.QueryUint64Ptr(c, "price_min"),
		PriceMax: utils.QueryUint64Ptr(c, "price_max"),
		SizeMin:  utils.QueryUintPtr(c, "size_min"),
		SizeMax:  utils.QueryUintPtr(c, "size_max"),
		RoomsMin: utils.QueryUintPtr(c, "rooms_min"),
		RoomsMax: utils.QueryUintPtr(c, "rooms_max"),
		YearMin:  utils.QueryUintPtr(c, "year_min"),
		YearMax:  utils.QueryUintPtr(c, "year_max"),
	}
	if raw := c.Query("deal_type"); raw != "" {
		if dealType, err := listing.ParseDealType(raw); err == nil {
			filter.DealType = &dealType
		}
	}
	for name, field := range map[string]**bool{
		"elevator":  &filter.Elevator,
		"parking":   &filter.Parking,
		"storeroom": &filter.Storeroom,
	} {
		if utils.QueryBool(c, name) {
			yes := true
			*field = &yes
		}
	}
	return filter
}

func (h *ListingHandler) Search(c *gin.Context) {
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchListingsCommand{
		Filter: parseListingFilter(c),
		Page:   utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ListingHandler) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	result, err := h.latestUC.Execute(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ListingHandler) Bounds(c *gin.Context) {
	result, err := h.boundsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListByAgent serves the published listings on an agent's public profile.
func (h *ListingHandler) ListByAgent(c *gin.Context) {
	result, err := h.byAgentUC.Execute(c.Request.Context(), usecases.ListingsByAgentCommand{
		AgentSID: c.Param("sid"),
		Page:     utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ListingHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetListingCommand{
		ActorID:   actorID(c),
		ActorRole: actorRole(c),
		SID:       c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type listingRequest struct {
	CityID      uint     `json:"city_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	DealType    string   `json:"deal_type" binding:"required,dealtype"`
	Price       uint64   `json:"price"`
	MonthlyRent *uint64  `json:"monthly_rent"`
	SizeM2      uint     `json:"size_m2"`
	Rooms       uint     `json:"rooms"`
	BuildYear   uint     `json:"build_year"`
	Floor       int      `json:"floor"`
	Elevator    bool     `json:"elevator"`
	Parking     bool     `json:"parking"`
	Storeroom   bool     `json:"storeroom"`
	ImageURL    string   `json:"image_url"`
	Gallery     []string `json:"gallery"`
	Status      string   `json:"status" binding:"omitempty,pubstatus"`
}

func (r *listingRequest) attrs() listing.Attributes {
	return listing.Attributes{
		SizeM2:    r.SizeM2,
		Rooms:     r.Rooms,
		BuildYear: r.BuildYear,
		Floor:     r.Floor,
		Elevator:  r.Elevator,
		Parking:   r.Parking,
		Storeroom: r.Storeroom,
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateListingCommand{
		ActorID:         actorID(c),
		ActorRole:       actorRole(c),
		CityID:          req.CityID,
		Title:           req.Title,
		Description:     req.Description,
		DealType:        req.DealType,
		Price:           req.Price,
		MonthlyRent:     req.MonthlyRent,
		Attrs:           req.attrs(),
		ImageURL:        req.ImageURL,
		Gallery:         req.Gallery,
		RequestedStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req listingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateListingCommand{
		ActorID:         actorID(c),
		ActorRole:       actorRole(c),
		SID:             c.Param("sid"),
		CityID:          req.CityID,
		Title:           req.Title,
		Description:     req.Description,
		DealType:        req.DealType,
		Price:           req.Price,
		MonthlyRent:     req.MonthlyRent,
		Attrs:           req.attrs(),
		ImageURL:        req.ImageURL,
		Gallery:         req.Gallery,
		RequestedStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteListingCommand{
		ActorID:   actorID(c),
		ActorRole: actorRole(c),
		SID:       c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *ListingHandler) Submit(c *gin.Context) {
	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitListingCommand{
		ActorID:   actorID(c),
		ActorRole: actorRole(c),
		SID:       c.Param("sid"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ListingHandler) ListOwn(c *gin.Context) {
	result, err := h.ownListUC.Execute(c.Request.Context(), usecases.ListOwnListingsCommand{
		OwnerID: actorID(c),
		Status:  c.Query("status"),
		Page:    utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ListingHandler) Counts(c *gin.Context) {
	result, err := h.countsUC.Execute(c.Request.Context(), actorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ListingHandler) ListForReview(c *gin.Context) {
	result, err := h.reviewUC.Execute(c.Request.Context(), usecases.ListListingsForReviewCommand{
		Status: c.Query("status"),
		Page:   utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ListingHandler) Approve(c *gin.Context) {
	result, err := h.approveUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type rejectRequest struct {
	Note string `json:"note" binding:"required"`
}

func (h *ListingHandler) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectListingCommand{
		SID:  c.Param("sid"),
		Note: req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
