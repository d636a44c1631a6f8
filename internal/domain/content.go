package domain

import (
	"encoding/json"
	"regexp"
	"time"

	"catalog-site-service/internal/i18n"
)

// Video page tags.
const (
	VideoPageHome  = "home"
	VideoPageAbout = "about"
)

// YouTubeURLPattern matches the YouTube domains accepted for Video.YouTubeURL.
var YouTubeURLPattern = regexp.MustCompile(`^https?://((www|m)\.)?(youtube\.com|youtu\.be)/`)

// CarouselText holds the language-variant fields of a CarouselItem.
type CarouselText struct {
	Title    string `json:"title" validate:"max=150"`
	Subtitle string `json:"subtitle" validate:"max=250"`
}

// CarouselItem is a homepage slide.
type CarouselItem struct {
	ID           int64                    `json:"id"`
	Image        string                   `json:"image"`
	LinkURL      string                   `json:"link_url"`
	IsActive     bool                     `json:"is_active"`
	Ordering     int                      `json:"ordering"`
	Translations i18n.Table[CarouselText] `json:"translations"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// SectionHeaderText holds the language-variant fields of a SectionHeader.
type SectionHeaderText struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// SectionHeader is a slug-keyed page section heading.
type SectionHeader struct {
	ID           int64                         `json:"id"`
	Slug         string                        `json:"slug"`
	IsActive     bool                          `json:"is_active"`
	Translations i18n.Table[SectionHeaderText] `json:"translations"`
}

// AdvantageText holds the language-variant fields of an Advantage.
type AdvantageText struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
}

// Advantage is an ordered, togglable "why us" block on the about page.
type Advantage struct {
	ID           int64                     `json:"id"`
	Icon         string                    `json:"icon"`
	Ordering     int                       `json:"ordering"`
	IsActive     bool                      `json:"is_active"`
	Translations i18n.Table[AdvantageText] `json:"translations"`
}

// MetricText holds the language-variant fields of a Metric.
type MetricText struct {
	Name   string `json:"name" validate:"required,max=120"`
	Value  string `json:"value" validate:"required,max=60"`
	Suffix string `json:"suffix" validate:"max=20"`
}

// Metric is a headline figure ("120+ projects").
type Metric struct {
	ID           int64                  `json:"id"`
	Ordering     int                    `json:"ordering"`
	IsActive     bool                   `json:"is_active"`
	Translations i18n.Table[MetricText] `json:"translations"`
}

// TeamMemberText holds the language-variant fields of a TeamMember.
type TeamMemberText struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Role     string `json:"role" validate:"required,max=120"`
	ShortBio string `json:"short_bio"`
}

// TeamMember is a person card on the about page.
type TeamMember struct {
	ID           int64                      `json:"id"`
	Photo        string                     `json:"photo"`
	SocialLinks  *json.RawMessage           `json:"social_links,omitempty"`
	Ordering     int                        `json:"ordering"`
	IsActive     bool                       `json:"is_active"`
	Translations i18n.Table[TeamMemberText] `json:"translations"`
}

// ValueText holds the language-variant fields of a Value.
type ValueText struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"required"`
}

// Value is a company-values block on the about page.
type Value struct {
	ID           int64                 `json:"id"`
	Icon         string                `json:"icon"`
	Ordering     int                   `json:"ordering"`
	IsActive     bool                  `json:"is_active"`
	Translations i18n.Table[ValueText] `json:"translations"`
}

// VideoText holds the language-variant fields of a Video.
type VideoText struct {
	Title string `json:"title" validate:"max=200"`
}

// Video is tagged by page and must carry either an uploaded file or a
// YouTube URL.
type Video struct {
	ID           int64                 `json:"id"`
	Page         string                `json:"page"`
	File         *string               `json:"file,omitempty"`
	YouTubeURL   *string               `json:"youtube_url,omitempty"`
	IsActive     bool                  `json:"is_active"`
	Ordering     int                   `json:"ordering"`
	Translations i18n.Table[VideoText] `json:"translations"`
	CreatedAt    time.Time             `json:"created_at"`
}

// HasSource reports whether the video carries a playable source.
func (v *Video) HasSource() bool {
	return (v.File != nil && *v.File != "") || (v.YouTubeURL != nil && *v.YouTubeURL != "")
}

// CompanyInfoText holds the language-variant fields of CompanyInfo.
type CompanyInfoText struct {
	MissionText string `json:"mission_text"`
	AboutText   string `json:"about_text"`
}

// CompanyInfo is a singleton: creation is blocked once one row exists.
type CompanyInfo struct {
	ID           int64                       `json:"id"`
	Contacts     *json.RawMessage            `json:"contacts,omitempty"`
	Translations i18n.Table[CompanyInfoText] `json:"translations"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// SocialMap bundles social links and the map embed shown in the footer.
// At most one row is active: activating a row deactivates all others.
type SocialMap struct {
	ID          int64            `json:"id"`
	SocialLinks *json.RawMessage `json:"social_links,omitempty"`
	MapEmbed    string           `json:"map_embed"`
	IsActive    bool             `json:"is_active"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
