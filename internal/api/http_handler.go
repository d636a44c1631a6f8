package api

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"

	"catalog-site-service/internal/config"
	"catalog-site-service/internal/media"
	"catalog-site-service/internal/notify"
	"catalog-site-service/internal/store"
)

// HTTPHandler holds dependencies for HTTP handlers.
type HTTPHandler struct {
	categories store.CategoryStorer
	products   store.ProductStorer
	content    store.ContentStorer
	contacts   store.ContactStorer
	notifier   notify.Notifier
	media      *media.Store
	cache      *cache.Cache
	validate   *validator.Validate
	site       config.SiteConfig
	adminToken string
}

// Deps bundles the handler's collaborators.
type Deps struct {
	Categories store.CategoryStorer
	Products   store.ProductStorer
	Content    store.ContentStorer
	Contacts   store.ContactStorer
	Notifier   notify.Notifier
	Media      *media.Store
	Site       config.SiteConfig
	AdminToken string
}

// NewHTTPHandler creates a new HTTPHandler with dependencies. A nil Notifier
// degrades to log-only delivery.
func NewHTTPHandler(d Deps) *HTTPHandler {
	notifier := d.Notifier
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &HTTPHandler{
		categories: d.Categories,
		products:   d.Products,
		content:    d.Content,
		contacts:   d.Contacts,
		notifier:   notifier,
		media:      d.Media,
		cache:      cache.New(d.Site.CacheTTL, 2*d.Site.CacheTTL),
		validate:   validator.New(),
		site:       d.Site,
		adminToken: d.AdminToken,
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorsResponse carries per-field validation messages together with an
// echo of the submitted values, so a form can re-render what the user typed.
type FieldErrorsResponse struct {
	Errors    map[string]string `json:"errors"`
	Submitted any               `json:"submitted,omitempty"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil { // Avoid writing empty body for 204 No Content
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// lang picks the response language: the ?lang= query value when it is one of
// the configured codes, the default language otherwise.
func (h *HTTPHandler) lang(r *http.Request) string {
	if l := r.URL.Query().Get("lang"); l != "" && h.site.KnownLanguage(l) {
		return l
	}
	return h.site.DefaultLanguage
}

// parseIDParam extracts a positive int64 URL parameter.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// clientIP follows the intake rule: the first X-Forwarded-For entry when the
// header is present, the connection's remote host otherwise.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// paginationQuery reads page/limit with the given default page size.
func paginationQuery(r *http.Request, defaultLimit int) (page, limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	return page, limit, (page - 1) * limit
}

// PaginationInfo is the envelope metadata on list responses.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func paginate(page, limit, totalCount int) PaginationInfo {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}
	return PaginationInfo{Page: page, Limit: limit, TotalItems: totalCount, TotalPages: totalPages}
}

// adminOnly rejects requests that do not carry the configured bearer token.
func (h *HTTPHandler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || h.adminToken == "" || token != h.adminToken {
			respondWithError(w, http.StatusUnauthorized, "Missing or invalid credentials")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// flushCache drops the read-side response cache after an admin write.
func (h *HTTPHandler) flushCache() {
	h.cache.Flush()
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/schema", h.GetSchema)
		r.Get("/docs", h.GetDocs)

		r.Route("/home", func(r chi.Router) {
			r.Get("/", h.GetHomePage)
			r.Get("/carousel", h.ListCarousel)
			r.Get("/videos", h.ListHomeVideos)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", h.ListCatalogCategories)
			r.Get("/products", h.ListCatalogProducts)
			r.Get("/products/{slug}", h.GetCatalogProduct)
		})

		r.Route("/about", func(r chi.Router) {
			r.Get("/", h.GetAboutPage)
			r.Get("/advantages", h.ListAboutAdvantages)
			r.Get("/metrics", h.ListAboutMetrics)
			r.Get("/team", h.ListAboutTeam)
			r.Get("/values", h.ListAboutValues)
			r.Get("/company", h.GetAboutCompany)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.GetContactPage)
			r.Post("/requests", h.CreateContactRequest)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.adminOnly)
			h.registerAdminRoutes(r)
		})
	})
}
