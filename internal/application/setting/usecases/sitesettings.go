package usecases

import (
	"context"
	"fmt"

	"github.com/casaplex/casaplex/internal/application/setting/dto"
	"github.com/casaplex/casaplex/internal/domain/setting"
	"github.com/casaplex/casaplex/internal/shared/errors"
	"github.com/casaplex/casaplex/internal/shared/logger"
)

// GetSiteSettingsUseCase serves the cached snapshot to every public page.
type GetSiteSettingsUseCase struct {
	provider setting.Provider
}

func NewGetSiteSettingsUseCase(provider setting.Provider) *GetSiteSettingsUseCase {
	return &GetSiteSettingsUseCase{provider: provider}
}

func (uc *GetSiteSettingsUseCase) Execute(context.Context) dto.SiteSettingsResponse {
	return dto.NewSiteSettingsResponse(uc.provider.Current())
}

type UpdateSiteSettingsCommand struct {
	SiteName   string
	LogoURL    string
	FooterLogo string
	HeroTitle  string
	HeroText   string
	AboutText  string
	Contact    setting.ContactInfo
	Social     setting.SocialLinks
}

// UpdateSiteSettingsUseCase persists an operator edit and refreshes the
// provider so the change is live immediately. The first edit creates the
// active row.
type UpdateSiteSettingsUseCase struct {
	settingRepo setting.Repository
	provider    setting.Provider
	logger      logger.Interface
}

func NewUpdateSiteSettingsUseCase(
	settingRepo setting.Repository,
	provider setting.Provider,
	logger logger.Interface,
) *UpdateSiteSettingsUseCase {
	return &UpdateSiteSettingsUseCase{
		settingRepo: settingRepo,
		provider:    provider,
		logger:      logger,
	}
}

func (uc *UpdateSiteSettingsUseCase) Execute(ctx context.Context, cmd UpdateSiteSettingsCommand) (*dto.SiteSettingsResponse, error) {
	params := setting.UpdateParams{
		SiteName:   cmd.SiteName,
		LogoURL:    cmd.LogoURL,
		FooterLogo: cmd.FooterLogo,
		HeroTitle:  cmd.HeroTitle,
		HeroText:   cmd.HeroText,
		AboutText:  cmd.AboutText,
		Contact:    cmd.Contact,
		Social:     cmd.Social,
	}

	active, err := uc.settingRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	if active == nil {
		active, err = setting.NewSiteSetting(cmd.SiteName)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := active.Update(params); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.settingRepo.Create(ctx, active); err != nil {
			uc.logger.Errorw("failed to create site settings", "error", err)
			return nil, fmt.Errorf("failed to create site settings: %w", err)
		}
	} else {
		if err := active.Update(params); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.settingRepo.Update(ctx, active); err != nil {
			uc.logger.Errorw("failed to update site settings", "error", err)
			return nil, fmt.Errorf("failed to update site settings: %w", err)
		}
	}

	if err := uc.provider.Refresh(ctx); err != nil {
		uc.logger.Warnw("settings refresh failed after update", "error", err)
	}

	uc.logger.Infow("site settings updated", "site_name", cmd.SiteName)
	resp := dto.NewSiteSettingsResponse(active.Snapshot())
	return &resp, nil
}
