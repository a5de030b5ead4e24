// Package setting holds the site-wide presentation settings exposed to
// every page as a typed snapshot.
package setting

import (
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
)

// ContactInfo groups the site's public contact channels.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// SocialLinks groups the site's public social profiles.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

// SiteSetting is the active presentation configuration row. Request code
// never reads it directly; it goes through the Provider snapshot.
type SiteSetting struct {
	id          uint
	siteName    string
	logoURL     string
	footerLogo  string
	heroTitle   string
	heroText    string
	aboutText   string
	contact     ContactInfo
	social      SocialLinks
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSiteSetting creates a settings row.
func NewSiteSetting(siteName string) (*SiteSetting, error) {
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return nil, fmt.Errorf("site name is required")
	}
	now := biztime.NowUTC()
	return &SiteSetting{siteName: siteName, createdAt: now, updatedAt: now}, nil
}

// ReconstructParams rehydrates a SiteSetting from persistence.
type ReconstructParams struct {
	ID         uint
	SiteName   string
	LogoURL    string
	FooterLogo string
	HeroTitle  string
	HeroText   string
	AboutText  string
	Contact    ContactInfo
	Social     SocialLinks
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Reconstruct builds a SiteSetting from stored state.
func Reconstruct(p ReconstructParams) (*SiteSetting, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("setting ID cannot be zero")
	}
	if p.SiteName == "" {
		return nil, fmt.Errorf("site name is required")
	}
	return &SiteSetting{
		id:         p.ID,
		siteName:   p.SiteName,
		logoURL:    p.LogoURL,
		footerLogo: p.FooterLogo,
		heroTitle:  p.HeroTitle,
		heroText:   p.HeroText,
		aboutText:  p.AboutText,
		contact:    p.Contact,
		social:     p.Social,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
	}, nil
}

func (s *SiteSetting) ID() uint             { return s.id }
func (s *SiteSetting) SiteName() string     { return s.siteName }
func (s *SiteSetting) LogoURL() string      { return s.logoURL }
func (s *SiteSetting) FooterLogo() string   { return s.footerLogo }
func (s *SiteSetting) HeroTitle() string    { return s.heroTitle }
func (s *SiteSetting) HeroText() string     { return s.heroText }
func (s *SiteSetting) AboutText() string    { return s.aboutText }
func (s *SiteSetting) Contact() ContactInfo { return s.contact }
func (s *SiteSetting) Social() SocialLinks  { return s.social }
func (s *SiteSetting) CreatedAt() time.Time { return s.createdAt }
func (s *SiteSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID assigns the database identity after insertion.
func (s *SiteSetting) SetID(newID uint) error {
	if s.id != 0 {
		return fmt.Errorf("setting ID already set")
	}
	s.id = newID
	return nil
}

// UpdateParams carries a full settings edit.
type UpdateParams struct {
	SiteName   string
	LogoURL    string
	FooterLogo string
	HeroTitle  string
	HeroText   string
	AboutText  string
	Contact    ContactInfo
	Social     SocialLinks
}

// Update replaces the presentation fields.
func (s *SiteSetting) Update(p UpdateParams) error {
	name := strings.TrimSpace(p.SiteName)
	if name == "" {
		return fmt.Errorf("site name is required")
	}
	s.siteName = name
	s.logoURL = p.LogoURL
	s.footerLogo = p.FooterLogo
	s.heroTitle = p.HeroTitle
	s.heroText = p.HeroText
	s.aboutText = p.AboutText
	s.contact = p.Contact
	s.social = p.Social
	s.updatedAt = biztime.NowUTC()
	return nil
}

// Snapshot is the immutable view handed to request code.
type Snapshot struct {
	SiteName   string
	LogoURL    string
	FooterLogo string
	HeroTitle  string
	HeroText   string
	AboutText  string
	Contact    ContactInfo
	Social     SocialLinks
	LoadedAt   time.Time
}

// Snapshot captures the current state as an immutable view.
func (s *SiteSetting) Snapshot() Snapshot {
	return Snapshot{
		SiteName:   s.siteName,
		LogoURL:    s.logoURL,
		FooterLogo: s.footerLogo,
		HeroTitle:  s.heroTitle,
		HeroText:   s.heroText,
		AboutText:  s.aboutText,
		Contact:    s.contact,
		Social:     s.social,
		LoadedAt:   biztime.NowUTC(),
	}
}
