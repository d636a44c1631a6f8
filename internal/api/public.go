package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/store"
)

const homeFeaturedLimit = 8

// --- Home ---

// HomePageView is the assembled payload behind the landing page.
type HomePageView struct {
	Carousel []CarouselItemView  `json:"carousel"`
	Featured []ProductView       `json:"featured_products"`
	Sections []SectionHeaderView `json:"sections"`
	Videos   []VideoView         `json:"videos"`
}

func (h *HTTPHandler) GetHomePage(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	ctx := r.Context()

	carousel, err := h.content.ListCarouselItems(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetHomePage carousel: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble home page")
		return
	}
	featured, _, err := h.products.ListProducts(ctx, store.ListProductsParams{
		Lang:         lang,
		ActiveOnly:   true,
		FeaturedOnly: true,
		Limit:        homeFeaturedLimit,
	})
	if err != nil {
		log.Printf("ERROR: GetHomePage featured products: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble home page")
		return
	}
	sections, err := h.content.ListSectionHeaders(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetHomePage sections: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble home page")
		return
	}
	videos, err := h.content.ListVideos(ctx, domain.VideoPageHome, true)
	if err != nil {
		log.Printf("ERROR: GetHomePage videos: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble home page")
		return
	}

	respondWithJSON(w, http.StatusOK, HomePageView{
		Carousel: h.carouselViews(carousel, lang),
		Featured: h.productViews(featured, lang),
		Sections: h.sectionHeaderViews(sections, lang),
		Videos:   h.videoViews(videos, lang),
	})
}

func (h *HTTPHandler) ListCarousel(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	cacheKey := "carousel:" + lang
	if cached, found := h.cache.Get(cacheKey); found {
		respondWithJSON(w, http.StatusOK, cached)
		return
	}

	items, err := h.content.ListCarouselItems(r.Context(), true)
	if err != nil {
		log.Printf("ERROR: ListCarousel: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve carousel")
		return
	}
	views := h.carouselViews(items, lang)
	h.cache.SetDefault(cacheKey, views)
	respondWithJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) ListHomeVideos(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	videos, err := h.content.ListVideos(r.Context(), domain.VideoPageHome, true)
	if err != nil {
		log.Printf("ERROR: ListHomeVideos: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve videos")
		return
	}
	respondWithJSON(w, http.StatusOK, h.videoViews(videos, lang))
}

// --- Catalog ---

func (h *HTTPHandler) ListCatalogCategories(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	cacheKey := "categories:" + lang
	if cached, found := h.cache.Get(cacheKey); found {
		respondWithJSON(w, http.StatusOK, cached)
		return
	}

	categories, err := h.categories.ListCategories(r.Context(), true)
	if err != nil {
		log.Printf("ERROR: ListCatalogCategories: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		views = append(views, *h.categoryView(&categories[i], lang))
	}
	h.cache.SetDefault(cacheKey, views)
	respondWithJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) ListCatalogProducts(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	qParams := r.URL.Query()
	page, limit, offset := paginationQuery(r, h.site.CatalogPageSize)

	params := store.ListProductsParams{
		Lang:       lang,
		ActiveOnly: true,
		Limit:      limit,
		Offset:     offset,
	}

	if slug := qParams.Get("category"); slug != "" {
		params.CategorySlug = &slug
	}
	if q := qParams.Get("q"); q != "" {
		params.SearchQuery = &q
	} else if q := qParams.Get("search"); q != "" {
		params.SearchQuery = &q
	}
	if s := qParams.Get("price_gte"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			respondWithError(w, http.StatusBadRequest, "Invalid price_gte format")
			return
		}
		params.MinPrice = &d
	}
	if s := qParams.Get("price_lte"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil || d.IsNegative() {
			respondWithError(w, http.StatusBadRequest, "Invalid price_lte format")
			return
		}
		params.MaxPrice = &d
	}
	if params.MinPrice != nil && params.MaxPrice != nil && params.MinPrice.GreaterThan(*params.MaxPrice) {
		respondWithError(w, http.StatusBadRequest, "price_gte cannot exceed price_lte")
		return
	}
	if featuredStr := qParams.Get("is_featured"); featuredStr == "true" {
		params.FeaturedOnly = true
	}

	// ordering follows the query convention "field" / "-field"
	if ordering := qParams.Get("ordering"); ordering != "" {
		field, desc := strings.CutPrefix(ordering, "-")
		switch field {
		case "price", "created_at":
			params.SortBy = field
			if desc {
				params.SortOrder = "desc"
			} else {
				params.SortOrder = "asc"
			}
		default:
			respondWithError(w, http.StatusBadRequest, "Invalid ordering field. Allowed: price, created_at")
			return
		}
	}

	products, totalCount, err := h.products.ListProducts(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: ListCatalogProducts: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	response := struct {
		Data       []ProductView  `json:"data"`
		Pagination PaginationInfo `json:"pagination"`
	}{
		Data:       h.productViews(products, lang),
		Pagination: paginate(page, limit, totalCount),
	}
	respondWithJSON(w, http.StatusOK, response)
}

func (h *HTTPHandler) GetCatalogProduct(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "Missing product slug")
		return
	}

	product, err := h.products.GetProductBySlug(r.Context(), slug, true)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			respondWithError(w, http.StatusNotFound, store.ErrProductNotFound.Error())
			return
		}
		log.Printf("ERROR: GetCatalogProduct %q: %v", slug, err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}
	respondWithJSON(w, http.StatusOK, h.productView(product, lang))
}

// --- About ---

// AboutPageView is the assembled payload behind the about page.
type AboutPageView struct {
	Company    *CompanyInfoView `json:"company,omitempty"`
	Advantages []AdvantageView  `json:"advantages"`
	Metrics    []MetricView     `json:"metrics"`
	Team       []TeamMemberView `json:"team"`
	Values     []ValueView      `json:"values"`
	Videos     []VideoView      `json:"videos"`
}

func (h *HTTPHandler) GetAboutPage(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	ctx := r.Context()

	company, err := h.content.GetCompanyInfo(ctx)
	if err != nil && !errors.Is(err, store.ErrCompanyInfoNotFound) {
		log.Printf("ERROR: GetAboutPage company info: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}
	advantages, err := h.content.ListAdvantages(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetAboutPage advantages: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}
	metrics, err := h.content.ListMetrics(ctx, true, 0)
	if err != nil {
		log.Printf("ERROR: GetAboutPage metrics: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}
	team, err := h.content.ListTeamMembers(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetAboutPage team: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}
	values, err := h.content.ListValues(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetAboutPage values: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}
	videos, err := h.content.ListVideos(ctx, domain.VideoPageAbout, true)
	if err != nil {
		log.Printf("ERROR: GetAboutPage videos: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble about page")
		return
	}

	respondWithJSON(w, http.StatusOK, AboutPageView{
		Company:    h.companyInfoView(company, lang),
		Advantages: h.advantageViews(advantages, lang),
		Metrics:    h.metricViews(metrics, lang),
		Team:       h.teamMemberViews(team, lang),
		Values:     h.valueViews(values, lang),
		Videos:     h.videoViews(videos, lang),
	})
}

func (h *HTTPHandler) ListAboutAdvantages(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListAdvantages(r.Context(), true)
	if err != nil {
		log.Printf("ERROR: ListAboutAdvantages: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve advantages")
		return
	}
	respondWithJSON(w, http.StatusOK, h.advantageViews(items, h.lang(r)))
}

// ListAboutMetrics returns the active metrics; ?limit=N keeps only the first
// N by ordering, so compact surfaces can ask for the top few.
func (h *HTTPHandler) ListAboutMetrics(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit format")
			return
		}
		limit = n
	}
	items, err := h.content.ListMetrics(r.Context(), true, limit)
	if err != nil {
		log.Printf("ERROR: ListAboutMetrics: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve metrics")
		return
	}
	respondWithJSON(w, http.StatusOK, h.metricViews(items, h.lang(r)))
}

func (h *HTTPHandler) ListAboutTeam(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListTeamMembers(r.Context(), true)
	if err != nil {
		log.Printf("ERROR: ListAboutTeam: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve team")
		return
	}
	respondWithJSON(w, http.StatusOK, h.teamMemberViews(items, h.lang(r)))
}

func (h *HTTPHandler) ListAboutValues(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListValues(r.Context(), true)
	if err != nil {
		log.Printf("ERROR: ListAboutValues: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve values")
		return
	}
	respondWithJSON(w, http.StatusOK, h.valueViews(items, h.lang(r)))
}

func (h *HTTPHandler) GetAboutCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.content.GetCompanyInfo(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrCompanyInfoNotFound) {
			respondWithError(w, http.StatusNotFound, store.ErrCompanyInfoNotFound.Error())
			return
		}
		log.Printf("ERROR: GetAboutCompany: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve company info")
		return
	}
	respondWithJSON(w, http.StatusOK, h.companyInfoView(company, h.lang(r)))
}

// --- Contact page ---

// ContactPageView is the assembled payload behind the contact page.
type ContactPageView struct {
	Addresses    []ContactAddressView `json:"addresses"`
	Phones       []ContactPhoneView   `json:"phones"`
	Emails       []ContactEmailView   `json:"emails"`
	WorkingHours *WorkingHoursView    `json:"working_hours,omitempty"`
	Topics       []ContactTopicView   `json:"topics"`
	SocialMap    *SocialMapView       `json:"social_map,omitempty"`
}

func (h *HTTPHandler) GetContactPage(w http.ResponseWriter, r *http.Request) {
	lang := h.lang(r)
	ctx := r.Context()

	addresses, err := h.contacts.ListContactAddresses(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetContactPage addresses: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}
	phones, err := h.contacts.ListContactPhones(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetContactPage phones: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}
	emails, err := h.contacts.ListContactEmails(ctx, true)
	if err != nil {
		log.Printf("ERROR: GetContactPage emails: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}
	hours, err := h.contacts.GetActiveWorkingHours(ctx)
	if err != nil && !errors.Is(err, store.ErrWorkingHoursNotFound) {
		log.Printf("ERROR: GetContactPage working hours: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}
	topics, err := h.contacts.ListContactTopics(ctx)
	if err != nil {
		log.Printf("ERROR: GetContactPage topics: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}
	socialMap, err := h.content.GetActiveSocialMap(ctx)
	if err != nil && !errors.Is(err, store.ErrSocialMapNotFound) {
		log.Printf("ERROR: GetContactPage social map: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to assemble contact page")
		return
	}

	view := ContactPageView{
		Addresses:    h.contactAddressViews(addresses, lang),
		Phones:       h.contactPhoneViews(phones, lang),
		Emails:       h.contactEmailViews(emails, lang),
		WorkingHours: h.workingHoursView(hours, lang),
		Topics:       h.contactTopicViews(topics, lang),
	}
	if socialMap != nil {
		view.SocialMap = &SocialMapView{SocialLinks: socialMap.SocialLinks, MapEmbed: socialMap.MapEmbed}
	}
	respondWithJSON(w, http.StatusOK, view)
}
