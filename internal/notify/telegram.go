package notify

import (
	"context"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"catalog-site-service/internal/domain"
)

// Notifier receives intake events. Implementations must be safe for
// concurrent use; failures are the caller's to log and swallow, submission
// must not depend on delivery.
type Notifier interface {
	ContactRequestReceived(ctx context.Context, cr *domain.ContactRequest, topicName string) error
}

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts a formatted message to a Telegram chat via the Bot
// API sendMessage method.
type TelegramNotifier struct {
	client   *http.Client
	baseURL  string
	botToken string
	chatID   string
}

// NewTelegramNotifier builds a notifier with its own bounded-timeout HTTP
// client. Returns nil (a no-op for the caller to check) when credentials are
// not configured.
func NewTelegramNotifier(botToken, chatID string, timeout time.Duration) *TelegramNotifier {
	if botToken == "" || chatID == "" {
		return nil
	}
	return &TelegramNotifier{
		client:   &http.Client{Timeout: timeout},
		baseURL:  telegramAPIBase,
		botToken: botToken,
		chatID:   chatID,
	}
}

// ContactRequestReceived sends one sendMessage call per intake record.
func (n *TelegramNotifier) ContactRequestReceived(ctx context.Context, cr *domain.ContactRequest, topicName string) error {
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", formatContactRequest(cr, topicName))
	form.Set("parse_mode", "HTML")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("notify: build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: telegram responded %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// formatContactRequest renders the intake record as a Telegram HTML message.
// User-supplied fields are escaped so markup in a form submission cannot
// break the message.
func formatContactRequest(cr *domain.ContactRequest, topicName string) string {
	var b strings.Builder
	b.WriteString("<b>Новая заявка с сайта</b>\n\n")
	fmt.Fprintf(&b, "<b>Имя:</b> %s\n", html.EscapeString(cr.Name))
	fmt.Fprintf(&b, "<b>Телефон:</b> %s\n", html.EscapeString(cr.Phone))
	email := "не указан"
	if cr.Email != nil && *cr.Email != "" {
		email = *cr.Email
	}
	fmt.Fprintf(&b, "<b>Email:</b> %s\n", html.EscapeString(email))
	if topicName != "" {
		fmt.Fprintf(&b, "<b>Тема:</b> %s\n", html.EscapeString(topicName))
	}
	fmt.Fprintf(&b, "<b>Сообщение:</b>\n%s\n", html.EscapeString(cr.Message))
	fmt.Fprintf(&b, "\n<i>Время: %s</i>", cr.CreatedAt.Local().Format("02.01.2006 15:04"))
	if cr.IP != "" {
		fmt.Fprintf(&b, "\n<i>IP: %s</i>", html.EscapeString(cr.IP))
	}
	return b.String()
}

// LogNotifier is the fallback used when Telegram credentials are absent: it
// only records that a request arrived.
type LogNotifier struct{}

func (LogNotifier) ContactRequestReceived(_ context.Context, cr *domain.ContactRequest, _ string) error {
	log.Printf("INFO: contact request %d received from %s (telegram notifications disabled)", cr.ID, cr.Phone)
	return nil
}
