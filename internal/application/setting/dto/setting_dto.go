package dto

import "github.com/casaplex/casaplex/internal/domain/setting"

// ContactInfoResponse mirrors the site contact block.
type ContactInfoResponse struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SocialLinksResponse mirrors the site footer links.
type SocialLinksResponse struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// SiteSettingsResponse is the API shape of the site presentation settings.
type SiteSettingsResponse struct {
	SiteName   string              `json:"site_name"`
	LogoURL    string              `json:"logo_url,omitempty"`
	FooterLogo string              `json:"footer_logo,omitempty"`
	HeroTitle  string              `json:"hero_title,omitempty"`
	HeroText   string              `json:"hero_text,omitempty"`
	AboutText  string              `json:"about_text,omitempty"`
	Contact    ContactInfoResponse `json:"contact"`
	Social     SocialLinksResponse `json:"social"`
}

// NewSiteSettingsResponse maps a settings snapshot.
func NewSiteSettingsResponse(s setting.Snapshot) SiteSettingsResponse {
	return SiteSettingsResponse{
		SiteName:   s.SiteName,
		LogoURL:    s.LogoURL,
		FooterLogo: s.FooterLogo,
		HeroTitle:  s.HeroTitle,
		HeroText:   s.HeroText,
		AboutText:  s.AboutText,
		Contact: ContactInfoResponse{
			Email:   s.Contact.Email,
			Phone:   s.Contact.Phone,
			Address: s.Contact.Address,
		},
		Social: SocialLinksResponse{
			Facebook:  s.Social.Facebook,
			Twitter:   s.Social.Twitter,
			Instagram: s.Social.Instagram,
			Telegram:  s.Social.Telegram,
			LinkedIn:  s.Social.LinkedIn,
			YouTube:   s.Social.YouTube,
		},
	}
}
