package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/casaplex/casaplex/internal/application/article/usecases"
	"github.com/casaplex/casaplex/internal/domain/article"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// ArticleHandler serves the public blog, the agent dashboard and the
// operator moderation queue for articles.
type ArticleHandler struct {
	searchUC   *usecases.SearchArticlesUseCase
	latestUC   *usecases.LatestArticlesUseCase
	byAuthorUC *usecases.ArticlesByAuthorUseCase
	getUC      *usecases.GetArticleUseCase
	createUC   *usecases.CreateArticleUseCase
	updateUC   *usecases.UpdateArticleUseCase
	deleteUC   *usecases.DeleteArticleUseCase
	submitUC   *usecases.SubmitArticleUseCase
	ownListUC  *usecases.ListOwnArticlesUseCase
	countsUC   *usecases.GetArticleCountsUseCase
	reviewUC   *usecases.ListArticlesForReviewUseCase
	approveUC  *usecases.ApproveArticleUseCase
	rejectUC   *usecases.RejectArticleUseCase
}

func NewArticleHandler(
	searchUC *usecases.SearchArticlesUseCase,
	latestUC *usecases.LatestArticlesUseCase,
	byAuthorUC *usecases.ArticlesByAuthorUseCase,
	getUC *usecases.GetArticleUseCase,
	createUC *usecases.CreateArticleUseCase,
	updateUC *usecases.UpdateArticleUseCase,
	deleteUC *usecases.DeleteArticleUseCase,
	submitUC *usecases.SubmitArticleUseCase,
	ownListUC *usecases.ListOwnArticlesUseCase,
	countsUC *usecases.GetArticleCountsUseCase,
	reviewUC *usecases.ListArticlesForReviewUseCase,
	approveUC *usecases.ApproveArticleUseCase,
	rejectUC *usecases.RejectArticleUseCase,
) *ArticleHandler {
	return &ArticleHandler{
		searchUC:   searchUC,
		latestUC:   latestUC,
		byAuthorUC: byAuthorUC,
		getUC:      getUC,
		createUC:   createUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		submitUC:   submitUC,
		ownListUC:  ownListUC,
		countsUC:   countsUC,
		reviewUC:   reviewUC,
		approveUC:  approveUC,
		rejectUC:   rejectUC,
	}
}

func (h *ArticleHandler) Search(c *gin.Context) {
	result, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchArticlesCommand{
		Filter: article.Filter{
			Search:     c.Query("search"),
			CategoryID: utils.QueryUintPtr(c, "category_id"),
		},
		Page: utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ArticleHandler) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	result, err := h.latestUC.Execute(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListByAuthor serves the visible articles on an agent's public profile.
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	result, err := h.byAuthorUC.Execute(c.Request.Context(), usecases.ArticlesByAuthorCommand{
		AgentSID: c.Param("sid"),
		Page:     utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetArticleCommand{
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

type articleRequest struct {
	Title       string     `json:"title" binding:"required"`
	Body        string     `json:"body" binding:"required"`
	ImageURL    string     `json:"image_url"`
	CategoryIDs []uint     `json:"category_ids"`
	PublishAt   *time.Time `json:"publish_at"`
	Status      string     `json:"status" binding:"omitempty,pubstatus"`
}

func (r *articleRequest) publishAt() time.Time {
	if r.PublishAt == nil {
		return time.Time{}
	}
	return *r.PublishAt
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateArticleCommand{
		ActorID:         actorID(c),
		Title:           req.Title,
		Body:            req.Body,
		ImageURL:        req.ImageURL,
		CategoryIDs:     req.CategoryIDs,
		PublishAt:       req.publishAt(),
		RequestedStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		ActorID:         actorID(c),
		ActorRole:       actorRole(c),
		SID:             c.Param("sid"),
		Title:           req.Title,
		Body:            req.Body,
		ImageURL:        req.ImageURL,
		CategoryIDs:     req.CategoryIDs,
		PublishAt:       req.publishAt(),
		RequestedStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{
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

func (h *ArticleHandler) Submit(c *gin.Context) {
	result, err := h.submitUC.Execute(c.Request.Context(), usecases.SubmitArticleCommand{
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

func (h *ArticleHandler) ListOwn(c *gin.Context) {
	result, err := h.ownListUC.Execute(c.Request.Context(), usecases.ListOwnArticlesCommand{
		AuthorID: actorID(c),
		Status:   c.Query("status"),
		Page:     utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ArticleHandler) Counts(c *gin.Context) {
	result, err := h.countsUC.Execute(c.Request.Context(), actorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ArticleHandler) ListForReview(c *gin.Context) {
	result, err := h.reviewUC.Execute(c.Request.Context(), usecases.ListArticlesForReviewCommand{
		Status: c.Query("status"),
		Page:   utils.ParsePage(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ArticleHandler) Approve(c *gin.Context) {
	result, err := h.approveUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ArticleHandler) Reject(c *gin.Context) {
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectArticleCommand{
		SID:  c.Param("sid"),
		Note: req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
