package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	faqusecases "github.com/casaplex/casaplex/internal/application/faq/usecases"
	settingusecases "github.com/casaplex/casaplex/internal/application/setting/usecases"
	"github.com/casaplex/casaplex/internal/domain/setting"
	"github.com/casaplex/casaplex/internal/shared/utils"
)

// SiteHandler serves the site presentation settings and the FAQ page.
type SiteHandler struct {
	getSettingsUC    *settingusecases.GetSiteSettingsUseCase
	updateSettingsUC *settingusecases.UpdateSiteSettingsUseCase
	listFAQsUC       *faqusecases.ListFAQsUseCase
	saveFAQUC        *faqusecases.SaveFAQUseCase
	deleteFAQUC      *faqusecases.DeleteFAQUseCase
}

func NewSiteHandler(
	getSettingsUC *settingusecases.GetSiteSettingsUseCase,
	updateSettingsUC *settingusecases.UpdateSiteSettingsUseCase,
	listFAQsUC *faqusecases.ListFAQsUseCase,
	saveFAQUC *faqusecases.SaveFAQUseCase,
	deleteFAQUC *faqusecases.DeleteFAQUseCase,
) *SiteHandler {
	return &SiteHandler{
		getSettingsUC:    getSettingsUC,
		updateSettingsUC: updateSettingsUC,
		listFAQsUC:       listFAQsUC,
		saveFAQUC:        saveFAQUC,
		deleteFAQUC:      deleteFAQUC,
	}
}

func (h *SiteHandler) GetSettings(c *gin.Context) {
	utils.OKResponse(c, h.getSettingsUC.Execute(c.Request.Context()))
}

type siteSettingsRequest struct {
	SiteName   string              `json:"site_name" binding:"required"`
	LogoURL    string              `json:"logo_url"`
	FooterLogo string              `json:"footer_logo"`
	HeroTitle  string              `json:"hero_title"`
	HeroText   string              `json:"hero_text"`
	AboutText  string              `json:"about_text"`
	Contact    setting.ContactInfo `json:"contact"`
	Social     setting.SocialLinks `json:"social"`
}

func (h *SiteHandler) UpdateSettings(c *gin.Context) {
	var req siteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateSettingsUC.Execute(c.Request.Context(), settingusecases.UpdateSiteSettingsCommand{
		SiteName:   req.SiteName,
		LogoURL:    req.LogoURL,
		FooterLogo: req.FooterLogo,
		HeroTitle:  req.HeroTitle,
		HeroText:   req.HeroText,
		AboutText:  req.AboutText,
		Contact:    req.Contact,
		Social:     req.Social,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *SiteHandler) ListFAQs(c *gin.Context) {
	result, err := h.listFAQsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

type faqRequest struct {
	Title  string `json:"title" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

func (h *SiteHandler) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.saveFAQUC.Execute(c.Request.Context(), faqusecases.SaveFAQCommand{
		Title:  req.Title,
		Answer: req.Answer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

func (h *SiteHandler) UpdateFAQ(c *gin.Context) {
	faqID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.saveFAQUC.Execute(c.Request.Context(), faqusecases.SaveFAQCommand{
		ID:     faqID,
		Title:  req.Title,
		Answer: req.Answer,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *SiteHandler) DeleteFAQ(c *gin.Context) {
	faqID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFAQUC.Execute(c.Request.Context(), faqID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
