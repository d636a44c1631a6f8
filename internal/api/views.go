package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"catalog-site-service/internal/domain"
)

// Public view models: one entity rendered in one resolved language, with
// media paths expanded to URLs. The admin API returns the raw domain structs
// with the full translation tables instead.

type CategoryView struct {
	ID            int64  `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ProductsCount *int64 `json:"products_count,omitempty"`
}

type ProductImageView struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text,omitempty"`
	Ordering  int    `json:"ordering"`
	IsPrimary bool   `json:"is_primary"`
}

type ProductView struct {
	ID          int64              `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	IsFeatured  bool               `json:"is_featured"`
	Category    *CategoryView      `json:"category,omitempty"`
	Images      []ProductImageView `json:"images"`
	CreatedAt   time.Time          `json:"created_at"`
}

type CarouselItemView struct {
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url,omitempty"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Ordering int    `json:"ordering"`
}

type SectionHeaderView struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type AdvantageView struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ordering    int    `json:"ordering"`
}

type MetricView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	Suffix   string `json:"suffix,omitempty"`
	Ordering int    `json:"ordering"`
}

type TeamMemberView struct {
	ID          int64            `json:"id"`
	Photo       string           `json:"photo,omitempty"`
	FullName    string           `json:"full_name"`
	Role        string           `json:"role"`
	ShortBio    string           `json:"short_bio,omitempty"`
	SocialLinks *json.RawMessage `json:"social_links,omitempty"`
	Ordering    int              `json:"ordering"`
}

type ValueView struct {
	ID          int64  `json:"id"`
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Ordering    int    `json:"ordering"`
}

type VideoView struct {
	ID         int64   `json:"id"`
	Page       string  `json:"page"`
	File       *string `json:"file,omitempty"`
	YouTubeURL *string `json:"youtube_url,omitempty"`
	Title      string  `json:"title,omitempty"`
	Ordering   int     `json:"ordering"`
}

type CompanyInfoView struct {
	MissionText string           `json:"mission_text"`
	AboutText   string           `json:"about_text"`
	Contacts    *json.RawMessage `json:"contacts,omitempty"`
}

type SocialMapView struct {
	SocialLinks *json.RawMessage `json:"social_links,omitempty"`
	MapEmbed    string           `json:"map_embed"`
}

type ContactAddressView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title,omitempty"`
	City     string `json:"city,omitempty"`
	Address  string `json:"address"`
	Ordering int    `json:"ordering"`
}

type ContactPhoneView struct {
	ID       int64  `json:"id"`
	Phone    string `json:"phone"`
	Label    string `json:"label,omitempty"`
	Ordering int    `json:"ordering"`
}

type ContactEmailView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Label    string `json:"label,omitempty"`
	Ordering int    `json:"ordering"`
}

type WorkingHoursView struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
	Note     string `json:"note,omitempty"`
}

type ContactTopicView struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// --- Builders ---

func (h *HTTPHandler) mediaURL(relPath string) string {
	if h.media == nil {
		return relPath
	}
	return h.media.URL(relPath)
}

func (h *HTTPHandler) categoryView(c *domain.Category, lang string) *CategoryView {
	if c == nil {
		return nil
	}
	text, _, _ := c.Translations.Resolve(lang, h.site.DefaultLanguage)
	return &CategoryView{
		ID:            c.ID,
		Slug:          c.Slug,
		Name:          text.Name,
		Description:   text.Description,
		ProductsCount: c.ProductsCount,
	}
}

func (h *HTTPHandler) productView(p *domain.Product, lang string) ProductView {
	text, _, _ := p.Translations.Resolve(lang, h.site.DefaultLanguage)
	images := make([]ProductImageView, 0, len(p.Images))
	for i := range p.Images {
		img := &p.Images[i]
		imgText, _, _ := img.Translations.Resolve(lang, h.site.DefaultLanguage)
		images = append(images, ProductImageView{
			ID:        img.ID,
			Image:     h.mediaURL(img.Image),
			AltText:   imgText.AltText,
			Ordering:  img.Ordering,
			IsPrimary: img.IsPrimary,
		})
	}
	return ProductView{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        text.Name,
		Description: text.Description,
		Price:       p.Price,
		IsFeatured:  p.IsFeatured,
		Category:    h.categoryView(p.Category, lang),
		Images:      images,
		CreatedAt:   p.CreatedAt,
	}
}

func (h *HTTPHandler) productViews(products []domain.Product, lang string) []ProductView {
	out := make([]ProductView, 0, len(products))
	for i := range products {
		out = append(out, h.productView(&products[i], lang))
	}
	return out
}

func (h *HTTPHandler) carouselViews(items []domain.CarouselItem, lang string) []CarouselItemView {
	out := make([]CarouselItemView, 0, len(items))
	for i := range items {
		it := &items[i]
		text, _, _ := it.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, CarouselItemView{
			ID:       it.ID,
			Image:    h.mediaURL(it.Image),
			LinkURL:  it.LinkURL,
			Title:    text.Title,
			Subtitle: text.Subtitle,
			Ordering: it.Ordering,
		})
	}
	return out
}

func (h *HTTPHandler) sectionHeaderViews(headers []domain.SectionHeader, lang string) []SectionHeaderView {
	out := make([]SectionHeaderView, 0, len(headers))
	for i := range headers {
		sh := &headers[i]
		text, _, _ := sh.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, SectionHeaderView{Slug: sh.Slug, Title: text.Title, Description: text.Description})
	}
	return out
}

func (h *HTTPHandler) advantageViews(items []domain.Advantage, lang string) []AdvantageView {
	out := make([]AdvantageView, 0, len(items))
	for i := range items {
		a := &items[i]
		text, _, _ := a.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, AdvantageView{ID: a.ID, Icon: a.Icon, Title: text.Title, Description: text.Description, Ordering: a.Ordering})
	}
	return out
}

func (h *HTTPHandler) metricViews(items []domain.Metric, lang string) []MetricView {
	out := make([]MetricView, 0, len(items))
	for i := range items {
		m := &items[i]
		text, _, _ := m.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, MetricView{ID: m.ID, Name: text.Name, Value: text.Value, Suffix: text.Suffix, Ordering: m.Ordering})
	}
	return out
}

func (h *HTTPHandler) teamMemberViews(items []domain.TeamMember, lang string) []TeamMemberView {
	out := make([]TeamMemberView, 0, len(items))
	for i := range items {
		tm := &items[i]
		text, _, _ := tm.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, TeamMemberView{
			ID:          tm.ID,
			Photo:       h.mediaURL(tm.Photo),
			FullName:    text.FullName,
			Role:        text.Role,
			ShortBio:    text.ShortBio,
			SocialLinks: tm.SocialLinks,
			Ordering:    tm.Ordering,
		})
	}
	return out
}

func (h *HTTPHandler) valueViews(items []domain.Value, lang string) []ValueView {
	out := make([]ValueView, 0, len(items))
	for i := range items {
		v := &items[i]
		text, _, _ := v.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, ValueView{ID: v.ID, Icon: v.Icon, Title: text.Title, Description: text.Description, Ordering: v.Ordering})
	}
	return out
}

func (h *HTTPHandler) videoViews(items []domain.Video, lang string) []VideoView {
	out := make([]VideoView, 0, len(items))
	for i := range items {
		v := &items[i]
		if !v.HasSource() {
			continue
		}
		text, _, _ := v.Translations.Resolve(lang, h.site.DefaultLanguage)
		file := v.File
		if file != nil && *file != "" {
			u := h.mediaURL(*file)
			file = &u
		}
		out = append(out, VideoView{
			ID:         v.ID,
			Page:       v.Page,
			File:       file,
			YouTubeURL: v.YouTubeURL,
			Title:      text.Title,
			Ordering:   v.Ordering,
		})
	}
	return out
}

func (h *HTTPHandler) companyInfoView(ci *domain.CompanyInfo, lang string) *CompanyInfoView {
	if ci == nil {
		return nil
	}
	text, _, _ := ci.Translations.Resolve(lang, h.site.DefaultLanguage)
	return &CompanyInfoView{MissionText: text.MissionText, AboutText: text.AboutText, Contacts: ci.Contacts}
}

func (h *HTTPHandler) contactAddressViews(items []domain.ContactAddress, lang string) []ContactAddressView {
	out := make([]ContactAddressView, 0, len(items))
	for i := range items {
		a := &items[i]
		text, _, _ := a.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, ContactAddressView{ID: a.ID, Title: text.Title, City: text.City, Address: text.Address, Ordering: a.Ordering})
	}
	return out
}

func (h *HTTPHandler) contactPhoneViews(items []domain.ContactPhone, lang string) []ContactPhoneView {
	out := make([]ContactPhoneView, 0, len(items))
	for i := range items {
		p := &items[i]
		text, _, _ := p.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, ContactPhoneView{ID: p.ID, Phone: p.Phone, Label: text.Label, Ordering: p.Ordering})
	}
	return out
}

func (h *HTTPHandler) contactEmailViews(items []domain.ContactEmail, lang string) []ContactEmailView {
	out := make([]ContactEmailView, 0, len(items))
	for i := range items {
		e := &items[i]
		text, _, _ := e.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, ContactEmailView{ID: e.ID, Email: e.Email, Label: text.Label, Ordering: e.Ordering})
	}
	return out
}

func (h *HTTPHandler) workingHoursView(wh *domain.ContactWorkingHours, lang string) *WorkingHoursView {
	if wh == nil {
		return nil
	}
	text, _, _ := wh.Translations.Resolve(lang, h.site.DefaultLanguage)
	return &WorkingHoursView{Weekdays: text.Weekdays, Saturday: text.Saturday, Sunday: text.Sunday, Note: text.Note}
}

func (h *HTTPHandler) contactTopicViews(items []domain.ContactTopic, lang string) []ContactTopicView {
	out := make([]ContactTopicView, 0, len(items))
	for i := range items {
		t := &items[i]
		text, _, _ := t.Translations.Resolve(lang, h.site.DefaultLanguage)
		out = append(out, ContactTopicView{ID: t.ID, Slug: t.Slug, Name: text.Name})
	}
	return out
}
