package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"encoding/json"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/store"
)

// ContactRequestInput is the public intake payload. Name, phone, message and
// an affirmative consent are mandatory; everything else is optional.
type ContactRequestInput struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	TopicID *int64  `json:"topic_id,omitempty"`
	Message string  `json:"message"`
	Consent bool    `json:"consent"`
}

// validateIntake applies the form rules field by field so the response can
// name every problem at once.
func validateIntake(input *ContactRequestInput) map[string]string {
	fieldErrors := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Phone) == "" {
		fieldErrors["phone"] = "Phone is required"
	}
	if strings.TrimSpace(input.Message) == "" {
		fieldErrors["message"] = "Message is required"
	}
	if !input.Consent {
		fieldErrors["consent"] = "Consent to data processing is required"
	}
	if input.Email != nil && *input.Email != "" && !strings.Contains(*input.Email, "@") {
		fieldErrors["email"] = "Invalid email address"
	}
	return fieldErrors
}

// CreateContactRequest persists a form submission and fires one best-effort
// notification. A failed notification never fails the request.
func (h *HTTPHandler) CreateContactRequest(w http.ResponseWriter, r *http.Request) {
	var input ContactRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if fieldErrors := validateIntake(&input); len(fieldErrors) > 0 {
		respondWithJSON(w, http.StatusBadRequest, FieldErrorsResponse{Errors: fieldErrors, Submitted: input})
		return
	}

	request := &domain.ContactRequest{
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     input.Email,
		TopicID:   input.TopicID,
		Message:   strings.TrimSpace(input.Message),
		Consent:   input.Consent,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}

	created, err := h.contacts.CreateContactRequest(r.Context(), request)
	if err != nil {
		if errors.Is(err, store.ErrContactTopicNotFound) {
			respondWithJSON(w, http.StatusBadRequest, FieldErrorsResponse{
				Errors:    map[string]string{"topic_id": "Unknown topic"},
				Submitted: input,
			})
			return
		}
		log.Printf("ERROR: CreateContactRequest store operation failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to submit contact request")
		return
	}

	topicName := ""
	if created.TopicID != nil {
		if topic, err := h.contacts.GetContactTopic(r.Context(), *created.TopicID); err == nil {
			text, _, _ := topic.Translations.Resolve(h.site.DefaultLanguage, h.site.DefaultLanguage)
			topicName = text.Name
		}
	}
	if err := h.notifier.ContactRequestReceived(r.Context(), created, topicName); err != nil {
		log.Printf("WARN: contact request %d saved but notification failed: %v", created.ID, err)
	}

	respondWithJSON(w, http.StatusCreated, created)
}
