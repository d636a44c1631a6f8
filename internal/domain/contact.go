package domain

import (
	"time"

	"catalog-site-service/internal/i18n"
)

// ContactAddressText holds the language-variant fields of a ContactAddress.
type ContactAddressText struct {
	Title   string `json:"title" validate:"max=150"`
	City    string `json:"city" validate:"max=120"`
	Address string `json:"address" validate:"required"`
}

// ContactAddress is an ordered, togglable office address record.
type ContactAddress struct {
	ID           int64                          `json:"id"`
	Ordering     int                            `json:"ordering"`
	IsActive     bool                           `json:"is_active"`
	Translations i18n.Table[ContactAddressText] `json:"translations"`
}

// ContactChannelText holds the translated label of a phone or email record.
type ContactChannelText struct {
	Label string `json:"label" validate:"max=120"`
}

// ContactPhone is an ordered, togglable phone record with a translated label.
type ContactPhone struct {
	ID           int64                          `json:"id"`
	Phone        string                         `json:"phone"`
	Ordering     int                            `json:"ordering"`
	IsActive     bool                           `json:"is_active"`
	Translations i18n.Table[ContactChannelText] `json:"translations"`
}

// ContactEmail is an ordered, togglable email record with a translated label.
type ContactEmail struct {
	ID           int64                          `json:"id"`
	Email        string                         `json:"email"`
	Ordering     int                            `json:"ordering"`
	IsActive     bool                           `json:"is_active"`
	Translations i18n.Table[ContactChannelText] `json:"translations"`
}

// WorkingHoursText holds the language-variant fields of ContactWorkingHours.
type WorkingHoursText struct {
	Weekdays string `json:"weekdays" validate:"required,max=200"`
	Saturday string `json:"saturday" validate:"required,max=200"`
	Sunday   string `json:"sunday" validate:"required,max=200"`
	Note     string `json:"note" validate:"max=200"`
}

// ContactWorkingHours describes the schedule shown in the footer.
// At most one row may be active.
type ContactWorkingHours struct {
	ID           int64                        `json:"id"`
	IsActive     bool                         `json:"is_active"`
	Translations i18n.Table[WorkingHoursText] `json:"translations"`
}

// ContactTopicText holds the translated display name of a ContactTopic.
type ContactTopicText struct {
	Name string `json:"name" validate:"required,max=150"`
}

// ContactTopic categorizes inbound contact requests. The slug is unique and
// auto-assigned on first save.
type ContactTopic struct {
	ID           int64                        `json:"id"`
	Slug         string                       `json:"slug"`
	Translations i18n.Table[ContactTopicText] `json:"translations"`
}

// ContactRequest is an immutable intake record created by a public form
// submission. It is never updated or deleted by the application; the topic
// reference is nulled if the topic is later removed.
type ContactRequest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	TopicID   *int64    `json:"topic_id,omitempty"`
	Message   string    `json:"message"`
	Consent   bool      `json:"consent"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
