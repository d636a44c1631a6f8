package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
)

func (h *HTTPHandler) registerAdminContentRoutes(r chi.Router) {
	r.Route("/carousel", func(r chi.Router) {
		r.Get("/", h.AdminListCarousel)
		r.Post("/", h.AdminCreateCarouselItem)
		r.Post("/bulk-active", h.AdminSetCarouselActive)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.AdminGetCarouselItem)
			r.Put("/", h.AdminUpdateCarouselItem)
			r.Delete("/", h.AdminDeleteCarouselItem)
		})
	})

	r.Route("/sections", func(r chi.Router) {
		r.Get("/", h.AdminListSectionHeaders)
		r.Post("/", h.AdminCreateSectionHeader)
		r.Put("/{id}", h.AdminUpdateSectionHeader)
		r.Delete("/{id}", h.AdminDeleteSectionHeader)
	})

	r.Route("/advantages", func(r chi.Router) {
		r.Get("/", h.AdminListAdvantages)
		r.Post("/", h.AdminCreateAdvantage)
		r.Post("/bulk-active", h.AdminSetAdvantagesActive)
		r.Put("/{id}", h.AdminUpdateAdvantage)
		r.Delete("/{id}", h.AdminDeleteAdvantage)
	})

	r.Route("/metrics", func(r chi.Router) {
		r.Get("/", h.AdminListMetrics)
		r.Post("/", h.AdminCreateMetric)
		r.Post("/bulk-active", h.AdminSetMetricsActive)
		r.Put("/{id}", h.AdminUpdateMetric)
		r.Delete("/{id}", h.AdminDeleteMetric)
	})

	r.Route("/team", func(r chi.Router) {
		r.Get("/", h.AdminListTeamMembers)
		r.Post("/", h.AdminCreateTeamMember)
		r.Post("/bulk-active", h.AdminSetTeamMembersActive)
		r.Put("/{id}", h.AdminUpdateTeamMember)
		r.Delete("/{id}", h.AdminDeleteTeamMember)
	})

	r.Route("/values", func(r chi.Router) {
		r.Get("/", h.AdminListValues)
		r.Post("/", h.AdminCreateValue)
		r.Post("/bulk-active", h.AdminSetValuesActive)
		r.Put("/{id}", h.AdminUpdateValue)
		r.Delete("/{id}", h.AdminDeleteValue)
	})

	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.AdminListVideos)
		r.Post("/", h.AdminCreateVideo)
		r.Put("/{id}", h.AdminUpdateVideo)
		r.Delete("/{id}", h.AdminDeleteVideo)
	})

	r.Route("/company-info", func(r chi.Router) {
		r.Get("/", h.AdminGetCompanyInfo)
		r.Post("/", h.AdminCreateCompanyInfo)
		r.Put("/", h.AdminUpdateCompanyInfo)
	})

	r.Route("/social-map", func(r chi.Router) {
		r.Get("/", h.AdminListSocialMaps)
		r.Post("/", h.AdminCreateSocialMap)
		r.Put("/{id}", h.AdminUpdateSocialMap)
		r.Delete("/{id}", h.AdminDeleteSocialMap)
	})
}

// --- Carousel ---

// CarouselItemInput is the admin payload for a homepage slide.
type CarouselItemInput struct {
	Image        string                         `json:"image" validate:"required"`
	LinkURL      string                         `json:"link_url" validate:"omitempty,max=500"`
	IsActive     *bool                          `json:"is_active"`
	Ordering     int                            `json:"ordering"`
	Translations map[string]domain.CarouselText `json:"translations" validate:"dive"`
}

func (input *CarouselItemInput) toDomain(id int64) *domain.CarouselItem {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return &domain.CarouselItem{
		ID:           id,
		Image:        input.Image,
		LinkURL:      input.LinkURL,
		IsActive:     isActive,
		Ordering:     input.Ordering,
		Translations: i18n.Table[domain.CarouselText](input.Translations),
	}
}

func (h *HTTPHandler) AdminListCarousel(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListCarouselItems(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListCarousel")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminGetCarouselItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid carousel item ID format")
		return
	}
	item, err := h.content.GetCarouselItem(r.Context(), id)
	if err != nil {
		h.storeError(w, err, "AdminGetCarouselItem")
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

func (h *HTTPHandler) AdminCreateCarouselItem(w http.ResponseWriter, r *http.Request) {
	var input CarouselItemInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	created, err := h.content.CreateCarouselItem(r.Context(), input.toDomain(0))
	if err != nil {
		h.storeError(w, err, "AdminCreateCarouselItem")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateCarouselItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid carousel item ID format")
		return
	}
	var input CarouselItemInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.content.UpdateCarouselItem(r.Context(), input.toDomain(id))
	if err != nil {
		h.storeError(w, err, "AdminUpdateCarouselItem")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteCarouselItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid carousel item ID format")
		return
	}
	if err := h.content.DeleteCarouselItem(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteCarouselItem")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetCarouselActive(w http.ResponseWriter, r *http.Request) {
	h.bulkActive(w, r, h.content.SetCarouselItemsActive, "AdminSetCarouselActive")
}

// bulkActive shares the decode/respond shape of every bulk toggle endpoint.
func (h *HTTPHandler) bulkActive(w http.ResponseWriter, r *http.Request,
	setter func(ctx context.Context, ids []int64, active bool) (int64, error), op string) {
	var input BulkActiveInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := setter(r.Context(), input.IDs, input.Active)
	if err != nil {
		h.storeError(w, err, op)
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, BulkActiveResult{Updated: updated})
}

// --- Section headers ---

// SectionHeaderInput is the admin payload for a page section heading.
type SectionHeaderInput struct {
	Slug         string                              `json:"slug" validate:"max=140"`
	IsActive     *bool                               `json:"is_active"`
	Translations map[string]domain.SectionHeaderText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListSectionHeaders(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListSectionHeaders(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListSectionHeaders")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateSectionHeader(w http.ResponseWriter, r *http.Request) {
	var input SectionHeaderInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	created, err := h.content.CreateSectionHeader(r.Context(), &domain.SectionHeader{
		Slug:         input.Slug,
		IsActive:     isActive,
		Translations: i18n.Table[domain.SectionHeaderText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateSectionHeader")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateSectionHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID format")
		return
	}
	var input SectionHeaderInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	updated, err := h.content.UpdateSectionHeader(r.Context(), &domain.SectionHeader{
		ID:           id,
		Slug:         input.Slug,
		IsActive:     isActive,
		Translations: i18n.Table[domain.SectionHeaderText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateSectionHeader")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteSectionHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID format")
		return
	}
	if err := h.content.DeleteSectionHeader(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteSectionHeader")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Ordered blocks (advantages, metrics, team, values) ---

// BlockInput covers the icon/ordering/is_active shape shared by advantages
// and values.
type BlockInput[T any] struct {
	Icon         string       `json:"icon" validate:"omitempty,max=80"`
	Ordering     int          `json:"ordering"`
	IsActive     *bool        `json:"is_active"`
	Translations map[string]T `json:"translations" validate:"required,dive"`
}

func (input *BlockInput[T]) active() bool {
	if input.IsActive != nil {
		return *input.IsActive
	}
	return true
}

func (h *HTTPHandler) AdminListAdvantages(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListAdvantages(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListAdvantages")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateAdvantage(w http.ResponseWriter, r *http.Request) {
	var input BlockInput[domain.AdvantageText]
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.content.CreateAdvantage(r.Context(), &domain.Advantage{
		Icon:         input.Icon,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.AdvantageText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateAdvantage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateAdvantage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid advantage ID format")
		return
	}
	var input BlockInput[domain.AdvantageText]
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.content.UpdateAdvantage(r.Context(), &domain.Advantage{
		ID:           id,
		Icon:         input.Icon,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.AdvantageText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateAdvantage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteAdvantage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid advantage ID format")
		return
	}
	if err := h.content.DeleteAdvantage(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteAdvantage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetAdvantagesActive(w http.ResponseWriter, r *http.Request) {
	h.bulkActive(w, r, h.content.SetAdvantagesActive, "AdminSetAdvantagesActive")
}

// MetricInput is the admin payload for a headline figure.
type MetricInput struct {
	Ordering     int                          `json:"ordering"`
	IsActive     *bool                        `json:"is_active"`
	Translations map[string]domain.MetricText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListMetrics(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListMetrics(r.Context(), false, 0)
	if err != nil {
		h.storeError(w, err, "AdminListMetrics")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateMetric(w http.ResponseWriter, r *http.Request) {
	var input MetricInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	created, err := h.content.CreateMetric(r.Context(), &domain.Metric{
		Ordering:     input.Ordering,
		IsActive:     isActive,
		Translations: i18n.Table[domain.MetricText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateMetric")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid metric ID format")
		return
	}
	var input MetricInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	updated, err := h.content.UpdateMetric(r.Context(), &domain.Metric{
		ID:           id,
		Ordering:     input.Ordering,
		IsActive:     isActive,
		Translations: i18n.Table[domain.MetricText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateMetric")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid metric ID format")
		return
	}
	if err := h.content.DeleteMetric(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteMetric")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetMetricsActive(w http.ResponseWriter, r *http.Request) {
	h.bulkActive(w, r, h.content.SetMetricsActive, "AdminSetMetricsActive")
}

// TeamMemberInput is the admin payload for a team card.
type TeamMemberInput struct {
	Photo        string                           `json:"photo"`
	SocialLinks  *json.RawMessage                 `json:"social_links,omitempty"`
	Ordering     int                              `json:"ordering"`
	IsActive     *bool                            `json:"is_active"`
	Translations map[string]domain.TeamMemberText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListTeamMembers(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListTeamMembers(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListTeamMembers")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var input TeamMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	created, err := h.content.CreateTeamMember(r.Context(), &domain.TeamMember{
		Photo:        input.Photo,
		SocialLinks:  input.SocialLinks,
		Ordering:     input.Ordering,
		IsActive:     isActive,
		Translations: i18n.Table[domain.TeamMemberText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateTeamMember")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid team member ID format")
		return
	}
	var input TeamMemberInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	updated, err := h.content.UpdateTeamMember(r.Context(), &domain.TeamMember{
		ID:           id,
		Photo:        input.Photo,
		SocialLinks:  input.SocialLinks,
		Ordering:     input.Ordering,
		IsActive:     isActive,
		Translations: i18n.Table[domain.TeamMemberText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateTeamMember")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid team member ID format")
		return
	}
	if err := h.content.DeleteTeamMember(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteTeamMember")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetTeamMembersActive(w http.ResponseWriter, r *http.Request) {
	h.bulkActive(w, r, h.content.SetTeamMembersActive, "AdminSetTeamMembersActive")
}

func (h *HTTPHandler) AdminListValues(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListValues(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListValues")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateValue(w http.ResponseWriter, r *http.Request) {
	var input BlockInput[domain.ValueText]
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.content.CreateValue(r.Context(), &domain.Value{
		Icon:         input.Icon,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ValueText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateValue")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateValue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid value ID format")
		return
	}
	var input BlockInput[domain.ValueText]
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.content.UpdateValue(r.Context(), &domain.Value{
		ID:           id,
		Icon:         input.Icon,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ValueText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateValue")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteValue(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid value ID format")
		return
	}
	if err := h.content.DeleteValue(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteValue")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetValuesActive(w http.ResponseWriter, r *http.Request) {
	h.bulkActive(w, r, h.content.SetValuesActive, "AdminSetValuesActive")
}

// --- Videos ---

// VideoInput is the admin payload for a page video. Exactly the rules the
// store cannot express live here: page must be a known tag, a YouTube URL
// must point at YouTube, and at least one source must be present.
type VideoInput struct {
	Page         string                      `json:"page" validate:"required,oneof=home about"`
	File         *string                     `json:"file,omitempty"`
	YouTubeURL   *string                     `json:"youtube_url,omitempty"`
	IsActive     *bool                       `json:"is_active"`
	Ordering     int                         `json:"ordering"`
	Translations map[string]domain.VideoText `json:"translations" validate:"dive"`
}

func (input *VideoInput) toDomain(id int64) (*domain.Video, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	v := &domain.Video{
		ID:           id,
		Page:         input.Page,
		File:         input.File,
		YouTubeURL:   input.YouTubeURL,
		IsActive:     isActive,
		Ordering:     input.Ordering,
		Translations: i18n.Table[domain.VideoText](input.Translations),
	}
	if !v.HasSource() {
		return nil, errors.New("either file or youtube_url is required")
	}
	if v.YouTubeURL != nil && *v.YouTubeURL != "" && !domain.YouTubeURLPattern.MatchString(*v.YouTubeURL) {
		return nil, errors.New("youtube_url must be a YouTube link")
	}
	return v, nil
}

func (h *HTTPHandler) AdminListVideos(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListVideos(r.Context(), r.URL.Query().Get("page_tag"), false)
	if err != nil {
		h.storeError(w, err, "AdminListVideos")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateVideo(w http.ResponseWriter, r *http.Request) {
	var input VideoInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	video, err := input.toDomain(0)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.content.CreateVideo(r.Context(), video)
	if err != nil {
		h.storeError(w, err, "AdminCreateVideo")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid video ID format")
		return
	}
	var input VideoInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	video, err := input.toDomain(id)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.content.UpdateVideo(r.Context(), video)
	if err != nil {
		h.storeError(w, err, "AdminUpdateVideo")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid video ID format")
		return
	}
	if err := h.content.DeleteVideo(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteVideo")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Company info ---

// CompanyInfoInput is the admin payload for the company-info singleton.
type CompanyInfoInput struct {
	Contacts     *json.RawMessage                  `json:"contacts,omitempty"`
	Translations map[string]domain.CompanyInfoText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminGetCompanyInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.content.GetCompanyInfo(r.Context())
	if err != nil {
		h.storeError(w, err, "AdminGetCompanyInfo")
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

func (h *HTTPHandler) AdminCreateCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var input CompanyInfoInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.content.CreateCompanyInfo(r.Context(), &domain.CompanyInfo{
		Contacts:     input.Contacts,
		Translations: i18n.Table[domain.CompanyInfoText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateCompanyInfo")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var input CompanyInfoInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	current, err := h.content.GetCompanyInfo(r.Context())
	if err != nil {
		h.storeError(w, err, "AdminUpdateCompanyInfo")
		return
	}
	updated, err := h.content.UpdateCompanyInfo(r.Context(), &domain.CompanyInfo{
		ID:           current.ID,
		Contacts:     input.Contacts,
		Translations: i18n.Table[domain.CompanyInfoText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateCompanyInfo")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

// --- Social map ---

// SocialMapInput is the admin payload for a footer links/map row.
type SocialMapInput struct {
	SocialLinks *json.RawMessage `json:"social_links,omitempty"`
	MapEmbed    string           `json:"map_embed"`
	IsActive    bool             `json:"is_active"`
}

func (h *HTTPHandler) AdminListSocialMaps(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListSocialMaps(r.Context())
	if err != nil {
		h.storeError(w, err, "AdminListSocialMaps")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateSocialMap(w http.ResponseWriter, r *http.Request) {
	var input SocialMapInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	created, err := h.content.CreateSocialMap(r.Context(), &domain.SocialMap{
		SocialLinks: input.SocialLinks,
		MapEmbed:    input.MapEmbed,
		IsActive:    input.IsActive,
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateSocialMap")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateSocialMap(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid social map ID format")
		return
	}
	var input SocialMapInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.content.UpdateSocialMap(r.Context(), &domain.SocialMap{
		ID:          id,
		SocialLinks: input.SocialLinks,
		MapEmbed:    input.MapEmbed,
		IsActive:    input.IsActive,
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateSocialMap")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteSocialMap(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid social map ID format")
		return
	}
	if err := h.content.DeleteSocialMap(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteSocialMap")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}
