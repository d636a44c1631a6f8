package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/media"
	"catalog-site-service/internal/store"
)

const maxUploadBytes = 32 << 20

// registerAdminRoutes wires the token-guarded CRUD surface. Admin responses
// return the raw domain structs with full translation tables.
func (h *HTTPHandler) registerAdminRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.AdminListCategories)
		r.Post("/", h.AdminCreateCategory)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.AdminGetCategory)
			r.Put("/", h.AdminUpdateCategory)
			r.Delete("/", h.AdminDeleteCategory)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.AdminListProducts)
		r.Post("/", h.AdminCreateProduct)
		r.Post("/bulk-active", h.AdminSetProductsActive)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.AdminGetProduct)
			r.Put("/", h.AdminUpdateProduct)
			r.Delete("/", h.AdminDeleteProduct)
			r.Get("/images", h.AdminListProductImages)
			r.Post("/images", h.AdminCreateProductImage)
		})
	})
	r.Route("/product-images/{id}", func(r chi.Router) {
		r.Put("/", h.AdminUpdateProductImage)
		r.Delete("/", h.AdminDeleteProductImage)
	})

	h.registerAdminContentRoutes(r)
	h.registerAdminContactRoutes(r)

	r.Post("/media", h.AdminUploadMedia)
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation, writing the 400 itself. Returns false when the request is done.
func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	defer r.Body.Close()
	if err := h.validate.Struct(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// checkLanguages rejects translation keys outside the configured set.
func checkLanguages[T any](h *HTTPHandler, m map[string]T) error {
	for lang := range m {
		if !h.site.KnownLanguage(lang) {
			return fmt.Errorf("unknown language code %q", lang)
		}
	}
	if len(m) == 0 {
		return errors.New("at least one translation is required")
	}
	return nil
}

var notFoundErrors = []error{
	store.ErrCategoryNotFound, store.ErrProductNotFound, store.ErrProductImageNotFound,
	store.ErrCarouselItemNotFound, store.ErrSectionHeaderNotFound, store.ErrAdvantageNotFound,
	store.ErrMetricNotFound, store.ErrTeamMemberNotFound, store.ErrValueNotFound,
	store.ErrVideoNotFound, store.ErrCompanyInfoNotFound, store.ErrSocialMapNotFound,
	store.ErrContactAddressNotFound, store.ErrContactPhoneNotFound, store.ErrContactEmailNotFound,
	store.ErrWorkingHoursNotFound, store.ErrContactTopicNotFound, store.ErrContactRequestNotFound,
}

var conflictErrors = []error{
	store.ErrSlugExists, store.ErrCategoryNameExists, store.ErrCategoryInUse,
	store.ErrPrimaryImageExists, store.ErrCompanyInfoExists, store.ErrActiveHoursExists,
}

// storeError maps store sentinels onto HTTP status codes; everything else is
// a logged 500.
func (h *HTTPHandler) storeError(w http.ResponseWriter, err error, op string) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			respondWithError(w, http.StatusNotFound, sentinel.Error())
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			respondWithError(w, http.StatusConflict, sentinel.Error())
			return
		}
	}
	log.Printf("ERROR: %s: %v", op, err)
	respondWithError(w, http.StatusInternalServerError, "Operation failed")
}

// BulkActiveInput selects rows for a bulk activate/deactivate.
type BulkActiveInput struct {
	IDs    []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
	Active bool    `json:"active"`
}

// BulkActiveResult reports how many rows the bulk toggle touched.
type BulkActiveResult struct {
	Updated int64 `json:"updated"`
}

// --- Categories ---

// CategoryInput is the admin payload for creating/updating a category.
// An empty slug requests auto-assignment from the default-language name.
type CategoryInput struct {
	Slug         string                         `json:"slug" validate:"max=140"`
	Translations map[string]domain.CategoryText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListCategories(r.Context(), true)
	if err != nil {
		h.storeError(w, err, "AdminListCategories")
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

func (h *HTTPHandler) AdminGetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	category, err := h.categories.GetCategory(r.Context(), id)
	if err != nil {
		h.storeError(w, err, "AdminGetCategory")
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

func (h *HTTPHandler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.categories.CreateCategory(r.Context(), &domain.Category{
		Slug:         input.Slug,
		Translations: i18n.Table[domain.CategoryText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateCategory")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	var input CategoryInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.categories.UpdateCategory(r.Context(), &domain.Category{
		ID:           id,
		Slug:         input.Slug,
		Translations: i18n.Table[domain.CategoryText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateCategory")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	if err := h.categories.DeleteCategory(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteCategory")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Products ---

// ProductInput is the admin payload for creating/updating a product.
type ProductInput struct {
	Slug         string                        `json:"slug" validate:"max=200"`
	Price        decimal.Decimal               `json:"price"`
	IsActive     *bool                         `json:"is_active"`
	IsFeatured   bool                          `json:"is_featured"`
	CategoryID   int64                         `json:"category_id" validate:"required,gt=0"`
	Translations map[string]domain.ProductText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) productFromInput(id int64, input *ProductInput) *domain.Product {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return &domain.Product{
		ID:           id,
		Slug:         input.Slug,
		Price:        input.Price,
		IsActive:     isActive,
		IsFeatured:   input.IsFeatured,
		CategoryID:   input.CategoryID,
		Translations: i18n.Table[domain.ProductText](input.Translations),
	}
}

func (h *HTTPHandler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := paginationQuery(r, h.site.CatalogPageSize)
	params := store.ListProductsParams{
		Lang:   h.site.DefaultLanguage,
		Limit:  limit,
		Offset: offset,
	}
	if slug := r.URL.Query().Get("category"); slug != "" {
		params.CategorySlug = &slug
	}
	if q := r.URL.Query().Get("q"); q != "" {
		params.SearchQuery = &q
	}
	products, totalCount, err := h.products.ListProducts(r.Context(), params)
	if err != nil {
		h.storeError(w, err, "AdminListProducts")
		return
	}
	response := struct {
		Data       []domain.Product `json:"data"`
		Pagination PaginationInfo   `json:"pagination"`
	}{Data: products, Pagination: paginate(page, limit, totalCount)}
	respondWithJSON(w, http.StatusOK, response)
}

func (h *HTTPHandler) AdminGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		h.storeError(w, err, "AdminGetProduct")
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

func (h *HTTPHandler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Price.IsNegative() {
		respondWithError(w, http.StatusBadRequest, "price cannot be negative")
		return
	}
	created, err := h.products.CreateProduct(r.Context(), h.productFromInput(0, &input))
	if err != nil {
		h.storeError(w, err, "AdminCreateProduct")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	var input ProductInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if input.Price.IsNegative() {
		respondWithError(w, http.StatusBadRequest, "price cannot be negative")
		return
	}
	updated, err := h.products.UpdateProduct(r.Context(), h.productFromInput(id, &input))
	if err != nil {
		h.storeError(w, err, "AdminUpdateProduct")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteProduct")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) AdminSetProductsActive(w http.ResponseWriter, r *http.Request) {
	var input BulkActiveInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.products.SetProductsActive(r.Context(), input.IDs, input.Active)
	if err != nil {
		h.storeError(w, err, "AdminSetProductsActive")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, BulkActiveResult{Updated: updated})
}

// --- Product images ---

// ProductImageInput is the admin payload for a product image record. The
// image itself goes through the media upload endpoint first.
type ProductImageInput struct {
	Image        string                             `json:"image" validate:"required"`
	Ordering     int                                `json:"ordering"`
	IsPrimary    bool                               `json:"is_primary"`
	Translations map[string]domain.ProductImageText `json:"translations" validate:"dive"`
}

func (h *HTTPHandler) AdminListProductImages(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	images, err := h.products.ListProductImages(r.Context(), productID)
	if err != nil {
		h.storeError(w, err, "AdminListProductImages")
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}

func (h *HTTPHandler) AdminCreateProductImage(w http.ResponseWriter, r *http.Request) {
	productID, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	var input ProductImageInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	created, err := h.products.CreateProductImage(r.Context(), &domain.ProductImage{
		ProductID:    productID,
		Image:        input.Image,
		Ordering:     input.Ordering,
		IsPrimary:    input.IsPrimary,
		Translations: i18n.Table[domain.ProductImageText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateProductImage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateProductImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid image ID format")
		return
	}
	var input struct {
		ProductImageInput
		ProductID int64 `json:"product_id" validate:"required,gt=0"`
	}
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.products.UpdateProductImage(r.Context(), &domain.ProductImage{
		ID:           id,
		ProductID:    input.ProductID,
		Image:        input.Image,
		Ordering:     input.Ordering,
		IsPrimary:    input.IsPrimary,
		Translations: i18n.Table[domain.ProductImageText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateProductImage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteProductImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid image ID format")
		return
	}
	if err := h.products.DeleteProductImage(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteProductImage")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Media upload ---

// MediaUploadResult reports where the stored file lives.
type MediaUploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// AdminUploadMedia stores a multipart file under MEDIA_ROOT with a random
// name. The "dir" form value selects the subdirectory ("products",
// "carousel", "team", "videos", ...).
func (h *HTTPHandler) AdminUploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	subdir := r.FormValue("dir")
	if subdir == "" {
		subdir = "uploads"
	}

	relPath, err := h.media.Save(file, header, subdir)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) || errors.Is(err, media.ErrInvalidSubdir) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR: AdminUploadMedia: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	respondWithJSON(w, http.StatusCreated, MediaUploadResult{Path: relPath, URL: h.media.URL(relPath)})
}
