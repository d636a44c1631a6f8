package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/store"
)

func postContactRequest(t *testing.T, serverURL string, payload ContactRequestInput) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	res, err := http.Post(serverURL+"/api/contacts/requests", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return res
}

func TestHTTPHandler_CreateContactRequest_Success(t *testing.T) {
	mockContacts := new(MockContactStorer)
	mockNotifier := new(MockNotifier)
	server := setupTestServer(t, Deps{Contacts: mockContacts, Notifier: mockNotifier})

	created := &domain.ContactRequest{
		ID:        42,
		Name:      "Иван",
		Phone:     "+7 777 000 11 22",
		Message:   "Нужен насос",
		Consent:   true,
		CreatedAt: time.Now(),
	}
	mockContacts.On("CreateContactRequest", mock.Anything, mock.MatchedBy(func(cr *domain.ContactRequest) bool {
		return cr.Name == "Иван" && cr.Phone == "+7 777 000 11 22" && cr.Consent
	})).Return(created, nil).Once()
	mockNotifier.On("ContactRequestReceived", mock.Anything, created, "").Return(nil).Once()

	res := postContactRequest(t, server.URL, ContactRequestInput{
		Name:    "Иван",
		Phone:   "+7 777 000 11 22",
		Message: "Нужен насос",
		Consent: true,
	})
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var response domain.ContactRequest
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Equal(t, int64(42), response.ID)

	mockContacts.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestHTTPHandler_CreateContactRequest_WithTopic_NotifiesTopicName(t *testing.T) {
	mockContacts := new(MockContactStorer)
	mockNotifier := new(MockNotifier)
	server := setupTestServer(t, Deps{Contacts: mockContacts, Notifier: mockNotifier})

	topicID := int64(3)
	created := &domain.ContactRequest{ID: 7, Name: "Айгуль", Phone: "+7 701 123 45 67", Message: "Вопрос по сервису", Consent: true, TopicID: &topicID}
	topic := &domain.ContactTopic{
		ID:   topicID,
		Slug: "servis",
		Translations: i18n.Table[domain.ContactTopicText]{
			"ru": {Name: "Сервис"},
		},
	}

	mockContacts.On("CreateContactRequest", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).Return(created, nil).Once()
	mockContacts.On("GetContactTopic", mock.Anything, topicID).Return(topic, nil).Once()
	mockNotifier.On("ContactRequestReceived", mock.Anything, created, "Сервис").Return(nil).Once()

	res := postContactRequest(t, server.URL, ContactRequestInput{
		Name:    "Айгуль",
		Phone:   "+7 701 123 45 67",
		TopicID: PtrTo(topicID),
		Message: "Вопрос по сервису",
		Consent: true,
	})
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	mockContacts.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestHTTPHandler_CreateContactRequest_ValidationErrors(t *testing.T) {
	mockContacts := new(MockContactStorer)
	server := setupTestServer(t, Deps{Contacts: mockContacts})

	res := postContactRequest(t, server.URL, ContactRequestInput{
		Name:    "",
		Phone:   "+7 777 000 11 22",
		Email:   PtrTo("not-an-email"),
		Message: "Привет",
		Consent: false,
	})
	defer res.Body.Close()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var response struct {
		Errors    map[string]string   `json:"errors"`
		Submitted ContactRequestInput `json:"submitted"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))

	assert.Contains(t, response.Errors, "name")
	assert.Contains(t, response.Errors, "consent")
	assert.Contains(t, response.Errors, "email")
	assert.NotContains(t, response.Errors, "phone")
	// the submitted payload is echoed back so the form can re-render
	assert.Equal(t, "+7 777 000 11 22", response.Submitted.Phone)

	mockContacts.AssertNotCalled(t, "CreateContactRequest", mock.Anything, mock.Anything)
}

func TestHTTPHandler_CreateContactRequest_UnknownTopic(t *testing.T) {
	mockContacts := new(MockContactStorer)
	server := setupTestServer(t, Deps{Contacts: mockContacts})

	mockContacts.On("CreateContactRequest", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
		Return(nil, store.ErrContactTopicNotFound).Once()

	res := postContactRequest(t, server.URL, ContactRequestInput{
		Name:    "Иван",
		Phone:   "+7 777 000 11 22",
		TopicID: PtrTo(int64(999)),
		Message: "Тема не существует",
		Consent: true,
	})
	defer res.Body.Close()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var response struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Contains(t, response.Errors, "topic_id")

	mockContacts.AssertExpectations(t)
}

func TestHTTPHandler_CreateContactRequest_NotifierFailureStill201(t *testing.T) {
	mockContacts := new(MockContactStorer)
	mockNotifier := new(MockNotifier)
	server := setupTestServer(t, Deps{Contacts: mockContacts, Notifier: mockNotifier})

	created := &domain.ContactRequest{ID: 5, Name: "Иван", Phone: "+7 777 000 11 22", Message: "Тест", Consent: true}
	mockContacts.On("CreateContactRequest", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).Return(created, nil).Once()
	mockNotifier.On("ContactRequestReceived", mock.Anything, created, "").
		Return(errors.New("telegram api returned status 502")).Once()

	res := postContactRequest(t, server.URL, ContactRequestInput{
		Name:    "Иван",
		Phone:   "+7 777 000 11 22",
		Message: "Тест",
		Consent: true,
	})
	defer res.Body.Close()

	// delivery is best-effort: the stored record wins
	require.Equal(t, http.StatusCreated, res.StatusCode)
	mockContacts.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}
