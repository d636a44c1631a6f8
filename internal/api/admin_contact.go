package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/store"
)

func (h *HTTPHandler) registerAdminContactRoutes(r chi.Router) {
	r.Route("/contact-addresses", func(r chi.Router) {
		r.Get("/", h.AdminListContactAddresses)
		r.Post("/", h.AdminCreateContactAddress)
		r.Put("/{id}", h.AdminUpdateContactAddress)
		r.Delete("/{id}", h.AdminDeleteContactAddress)
	})
	r.Route("/contact-phones", func(r chi.Router) {
		r.Get("/", h.AdminListContactPhones)
		r.Post("/", h.AdminCreateContactPhone)
		r.Put("/{id}", h.AdminUpdateContactPhone)
		r.Delete("/{id}", h.AdminDeleteContactPhone)
	})
	r.Route("/contact-emails", func(r chi.Router) {
		r.Get("/", h.AdminListContactEmails)
		r.Post("/", h.AdminCreateContactEmail)
		r.Put("/{id}", h.AdminUpdateContactEmail)
		r.Delete("/{id}", h.AdminDeleteContactEmail)
	})
	r.Route("/working-hours", func(r chi.Router) {
		r.Get("/", h.AdminListWorkingHours)
		r.Post("/", h.AdminCreateWorkingHours)
		r.Put("/{id}", h.AdminUpdateWorkingHours)
		r.Delete("/{id}", h.AdminDeleteWorkingHours)
	})
	r.Route("/contact-topics", func(r chi.Router) {
		r.Get("/", h.AdminListContactTopics)
		r.Post("/", h.AdminCreateContactTopic)
		r.Put("/{id}", h.AdminUpdateContactTopic)
		r.Delete("/{id}", h.AdminDeleteContactTopic)
	})
	// the intake log is read-only
	r.Route("/contact-requests", func(r chi.Router) {
		r.Get("/", h.AdminListContactRequests)
		r.Get("/{id}", h.AdminGetContactRequest)
	})
}

// --- Addresses ---

// ContactAddressInput is the admin payload for an office address.
type ContactAddressInput struct {
	Ordering     int                                  `json:"ordering"`
	IsActive     *bool                                `json:"is_active"`
	Translations map[string]domain.ContactAddressText `json:"translations" validate:"required,dive"`
}

func (input *ContactAddressInput) toDomain(id int64) *domain.ContactAddress {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	return &domain.ContactAddress{
		ID:           id,
		Ordering:     input.Ordering,
		IsActive:     isActive,
		Translations: i18n.Table[domain.ContactAddressText](input.Translations),
	}
}

func (h *HTTPHandler) AdminListContactAddresses(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListContactAddresses(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListContactAddresses")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateContactAddress(w http.ResponseWriter, r *http.Request) {
	var input ContactAddressInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.contacts.CreateContactAddress(r.Context(), input.toDomain(0))
	if err != nil {
		h.storeError(w, err, "AdminCreateContactAddress")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateContactAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid address ID format")
		return
	}
	var input ContactAddressInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.contacts.UpdateContactAddress(r.Context(), input.toDomain(id))
	if err != nil {
		h.storeError(w, err, "AdminUpdateContactAddress")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteContactAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid address ID format")
		return
	}
	if err := h.contacts.DeleteContactAddress(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteContactAddress")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Phones ---

// ContactChannelInput covers phone and email records: one invariant value
// plus a translated label.
type ContactChannelInput struct {
	Value        string                               `json:"value" validate:"required,max=150"`
	Ordering     int                                  `json:"ordering"`
	IsActive     *bool                                `json:"is_active"`
	Translations map[string]domain.ContactChannelText `json:"translations" validate:"dive"`
}

func (input *ContactChannelInput) active() bool {
	if input.IsActive != nil {
		return *input.IsActive
	}
	return true
}

func (h *HTTPHandler) AdminListContactPhones(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListContactPhones(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListContactPhones")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateContactPhone(w http.ResponseWriter, r *http.Request) {
	var input ContactChannelInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	created, err := h.contacts.CreateContactPhone(r.Context(), &domain.ContactPhone{
		Phone:        input.Value,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ContactChannelText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateContactPhone")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateContactPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid phone ID format")
		return
	}
	var input ContactChannelInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.contacts.UpdateContactPhone(r.Context(), &domain.ContactPhone{
		ID:           id,
		Phone:        input.Value,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ContactChannelText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateContactPhone")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteContactPhone(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid phone ID format")
		return
	}
	if err := h.contacts.DeleteContactPhone(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteContactPhone")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Emails ---

func (h *HTTPHandler) AdminListContactEmails(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListContactEmails(r.Context(), false)
	if err != nil {
		h.storeError(w, err, "AdminListContactEmails")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateContactEmail(w http.ResponseWriter, r *http.Request) {
	var input ContactChannelInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	created, err := h.contacts.CreateContactEmail(r.Context(), &domain.ContactEmail{
		Email:        input.Value,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ContactChannelText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateContactEmail")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateContactEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid email ID format")
		return
	}
	var input ContactChannelInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	updated, err := h.contacts.UpdateContactEmail(r.Context(), &domain.ContactEmail{
		ID:           id,
		Email:        input.Value,
		Ordering:     input.Ordering,
		IsActive:     input.active(),
		Translations: i18n.Table[domain.ContactChannelText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateContactEmail")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteContactEmail(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid email ID format")
		return
	}
	if err := h.contacts.DeleteContactEmail(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteContactEmail")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Working hours ---

// WorkingHoursInput is the admin payload for a footer schedule.
type WorkingHoursInput struct {
	IsActive     bool                               `json:"is_active"`
	Translations map[string]domain.WorkingHoursText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListWorkingHours(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListWorkingHours(r.Context())
	if err != nil {
		h.storeError(w, err, "AdminListWorkingHours")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateWorkingHours(w http.ResponseWriter, r *http.Request) {
	var input WorkingHoursInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.contacts.CreateWorkingHours(r.Context(), &domain.ContactWorkingHours{
		IsActive:     input.IsActive,
		Translations: i18n.Table[domain.WorkingHoursText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateWorkingHours")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid working hours ID format")
		return
	}
	var input WorkingHoursInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.contacts.UpdateWorkingHours(r.Context(), &domain.ContactWorkingHours{
		ID:           id,
		IsActive:     input.IsActive,
		Translations: i18n.Table[domain.WorkingHoursText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateWorkingHours")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid working hours ID format")
		return
	}
	if err := h.contacts.DeleteWorkingHours(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteWorkingHours")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Topics ---

// ContactTopicInput is the admin payload for a request topic.
type ContactTopicInput struct {
	Slug         string                             `json:"slug" validate:"max=140"`
	Translations map[string]domain.ContactTopicText `json:"translations" validate:"required,dive"`
}

func (h *HTTPHandler) AdminListContactTopics(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListContactTopics(r.Context())
	if err != nil {
		h.storeError(w, err, "AdminListContactTopics")
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) AdminCreateContactTopic(w http.ResponseWriter, r *http.Request) {
	var input ContactTopicInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.contacts.CreateContactTopic(r.Context(), &domain.ContactTopic{
		Slug:         input.Slug,
		Translations: i18n.Table[domain.ContactTopicText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminCreateContactTopic")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *HTTPHandler) AdminUpdateContactTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid topic ID format")
		return
	}
	var input ContactTopicInput
	if !h.decodeAndValidate(w, r, &input) {
		return
	}
	if err := checkLanguages(h, input.Translations); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.contacts.UpdateContactTopic(r.Context(), &domain.ContactTopic{
		ID:           id,
		Slug:         input.Slug,
		Translations: i18n.Table[domain.ContactTopicText](input.Translations),
	})
	if err != nil {
		h.storeError(w, err, "AdminUpdateContactTopic")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HTTPHandler) AdminDeleteContactTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid topic ID format")
		return
	}
	if err := h.contacts.DeleteContactTopic(r.Context(), id); err != nil {
		h.storeError(w, err, "AdminDeleteContactTopic")
		return
	}
	h.flushCache()
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Intake log (read-only) ---

func (h *HTTPHandler) AdminListContactRequests(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := paginationQuery(r, 20)
	params := store.ListContactRequestsParams{Limit: limit, Offset: offset}
	if topicStr := r.URL.Query().Get("topic_id"); topicStr != "" {
		topicID, err := strconv.ParseInt(topicStr, 10, 64)
		if err != nil || topicID <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid topic_id format")
			return
		}
		params.TopicID = &topicID
	}

	requests, totalCount, err := h.contacts.ListContactRequests(r.Context(), params)
	if err != nil {
		h.storeError(w, err, "AdminListContactRequests")
		return
	}
	response := struct {
		Data       []domain.ContactRequest `json:"data"`
		Pagination PaginationInfo          `json:"pagination"`
	}{Data: requests, Pagination: paginate(page, limit, totalCount)}
	respondWithJSON(w, http.StatusOK, response)
}

func (h *HTTPHandler) AdminGetContactRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid request ID format")
		return
	}
	request, err := h.contacts.GetContactRequest(r.Context(), id)
	if err != nil {
		h.storeError(w, err, "AdminGetContactRequest")
		return
	}
	respondWithJSON(w, http.StatusOK, request)
}
