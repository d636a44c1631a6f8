package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-site-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_ContactRequestReceived(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"chat_id":    r.PostFormValue("chat_id"),
			"text":       r.PostFormValue("text"),
			"parse_mode": r.PostFormValue("parse_mode"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewTelegramNotifier("test-token", "-100123", 5*time.Second)
	require.NotNil(t, notifier)
	notifier.baseURL = server.URL

	email := "ivan@example.com"
	createdAt := time.Date(2026, time.August, 29, 14, 30, 0, 0, time.Local)
	cr := &domain.ContactRequest{
		ID:        1,
		Name:      "Иван <b>",
		Phone:     "+7 700 123 45 67",
		Email:     &email,
		Message:   "Интересует цена",
		Consent:   true,
		IP:        "198.51.100.4",
		CreatedAt: createdAt,
	}

	err := notifier.ContactRequestReceived(context.Background(), cr, "Оптовые закупки")

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "-100123", gotForm["chat_id"])
	assert.Equal(t, "HTML", gotForm["parse_mode"])
	assert.Contains(t, gotForm["text"], "Иван &lt;b&gt;", "User input must be HTML-escaped")
	assert.Contains(t, gotForm["text"], "ivan@example.com")
	assert.Contains(t, gotForm["text"], "Оптовые закупки")
	assert.Contains(t, gotForm["text"], "198.51.100.4")
	assert.Contains(t, gotForm["text"], "29.08.2026 14:30", "Message must carry the local-time submission timestamp")
}

func TestFormatContactRequest_MissingEmailPlaceholder(t *testing.T) {
	text := formatContactRequest(&domain.ContactRequest{
		Name:      "Айгуль",
		Phone:     "+7 701 765 43 21",
		Message:   "Вопрос по доставке",
		Consent:   true,
		CreatedAt: time.Now(),
	}, "")

	assert.Contains(t, text, "Email:</b> не указан")
	assert.Contains(t, text, "Время:")
}

func TestTelegramNotifier_ContactRequestReceived_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	notifier := NewTelegramNotifier("bad-token", "-100123", 5*time.Second)
	require.NotNil(t, notifier)
	notifier.baseURL = server.URL

	err := notifier.ContactRequestReceived(context.Background(), &domain.ContactRequest{
		Name: "Test", Phone: "+7", Message: "msg", Consent: true,
	}, "")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "401"), "Error should carry the status code")
}

func TestNewTelegramNotifier_MissingCredentials(t *testing.T) {
	assert.Nil(t, NewTelegramNotifier("", "-100123", time.Second))
	assert.Nil(t, NewTelegramNotifier("token", "", time.Second))
}
