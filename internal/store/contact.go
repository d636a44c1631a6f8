package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/slugid"
)

const (
	addressTextsQ       = `SELECT contact_address_id, language_code, title, city, address FROM contact_address_translations WHERE contact_address_id = ANY($1);`
	deleteAddressTextsQ = `DELETE FROM contact_address_translations WHERE contact_address_id = $1;`
	insertAddressTextQ  = `INSERT INTO contact_address_translations (contact_address_id, language_code, title, city, address) VALUES ($1, $2, $3, $4, $5);`

	phoneTextsQ       = `SELECT contact_phone_id, language_code, label FROM contact_phone_translations WHERE contact_phone_id = ANY($1);`
	deletePhoneTextsQ = `DELETE FROM contact_phone_translations WHERE contact_phone_id = $1;`
	insertPhoneTextQ  = `INSERT INTO contact_phone_translations (contact_phone_id, language_code, label) VALUES ($1, $2, $3);`

	emailTextsQ       = `SELECT contact_email_id, language_code, label FROM contact_email_translations WHERE contact_email_id = ANY($1);`
	deleteEmailTextsQ = `DELETE FROM contact_email_translations WHERE contact_email_id = $1;`
	insertEmailTextQ  = `INSERT INTO contact_email_translations (contact_email_id, language_code, label) VALUES ($1, $2, $3);`

	hoursTextsQ       = `SELECT working_hours_id, language_code, weekdays, saturday, sunday, note FROM working_hours_translations WHERE working_hours_id = ANY($1);`
	deleteHoursTextsQ = `DELETE FROM working_hours_translations WHERE working_hours_id = $1;`
	insertHoursTextQ  = `INSERT INTO working_hours_translations (working_hours_id, language_code, weekdays, saturday, sunday, note) VALUES ($1, $2, $3, $4, $5, $6);`

	topicTextsQ       = `SELECT contact_topic_id, language_code, name FROM contact_topic_translations WHERE contact_topic_id = ANY($1);`
	deleteTopicTextsQ = `DELETE FROM contact_topic_translations WHERE contact_topic_id = $1;`
	insertTopicTextQ  = `INSERT INTO contact_topic_translations (contact_topic_id, language_code, name) VALUES ($1, $2, $3);`

	contactRequestColumns = `id, name, phone, email, topic_id, message, consent, ip, user_agent, created_at`
)

// --- Addresses ---

func addressTextRows(t i18n.Table[domain.ContactAddressText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title, txt.City, txt.Address})
	}
	return rows
}

func scanAddressText(rows *sql.Rows) (int64, string, domain.ContactAddressText, error) {
	var id int64
	var lang string
	var t domain.ContactAddressText
	err := rows.Scan(&id, &lang, &t.Title, &t.City, &t.Address)
	return id, lang, t, err
}

func (s *PostgresStore) ListContactAddresses(ctx context.Context, activeOnly bool) ([]domain.ContactAddress, error) {
	query := `SELECT id, ordering, is_active FROM contact_addresses`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListContactAddresses query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactAddress{}
	var ids []int64
	for rows.Next() {
		var a domain.ContactAddress
		if err := rows.Scan(&a.ID, &a.Ordering, &a.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListContactAddresses scan: %w", err)
		}
		items = append(items, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListContactAddresses iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, addressTextsQ, ids, scanAddressText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) CreateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error) {
	created := *a
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO contact_addresses (ordering, is_active) VALUES ($1, $2) RETURNING id;`,
			created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateContactAddress insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteAddressTextsQ, insertAddressTextQ, created.ID, addressTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateContactAddress(ctx context.Context, a *domain.ContactAddress) (*domain.ContactAddress, error) {
	updated := *a
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE contact_addresses SET ordering = $1, is_active = $2 WHERE id = $3;`,
			updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateContactAddress update: %w", err)
		}
		if err := rowsAffected(res, ErrContactAddressNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteAddressTextsQ, insertAddressTextQ, updated.ID, addressTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteContactAddress(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_addresses WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteContactAddress: %w", err)
	}
	return rowsAffected(res, ErrContactAddressNotFound)
}

// --- Phones ---

func channelTextRows(t i18n.Table[domain.ContactChannelText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		rows = append(rows, []any{lang, t[lang].Label})
	}
	return rows
}

func scanChannelText(rows *sql.Rows) (int64, string, domain.ContactChannelText, error) {
	var id int64
	var lang string
	var t domain.ContactChannelText
	err := rows.Scan(&id, &lang, &t.Label)
	return id, lang, t, err
}

func (s *PostgresStore) ListContactPhones(ctx context.Context, activeOnly bool) ([]domain.ContactPhone, error) {
	query := `SELECT id, phone, ordering, is_active FROM contact_phones`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListContactPhones query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactPhone{}
	var ids []int64
	for rows.Next() {
		var p domain.ContactPhone
		if err := rows.Scan(&p.ID, &p.Phone, &p.Ordering, &p.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListContactPhones scan: %w", err)
		}
		items = append(items, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListContactPhones iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, phoneTextsQ, ids, scanChannelText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) CreateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error) {
	created := *p
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO contact_phones (phone, ordering, is_active) VALUES ($1, $2, $3) RETURNING id;`,
			created.Phone, created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateContactPhone insert: %w", err)
		}
		return replaceTexts(ctx, tx, deletePhoneTextsQ, insertPhoneTextQ, created.ID, channelTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateContactPhone(ctx context.Context, p *domain.ContactPhone) (*domain.ContactPhone, error) {
	updated := *p
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE contact_phones SET phone = $1, ordering = $2, is_active = $3 WHERE id = $4;`,
			updated.Phone, updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateContactPhone update: %w", err)
		}
		if err := rowsAffected(res, ErrContactPhoneNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deletePhoneTextsQ, insertPhoneTextQ, updated.ID, channelTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteContactPhone(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_phones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteContactPhone: %w", err)
	}
	return rowsAffected(res, ErrContactPhoneNotFound)
}

// --- Emails ---

func (s *PostgresStore) ListContactEmails(ctx context.Context, activeOnly bool) ([]domain.ContactEmail, error) {
	query := `SELECT id, email, ordering, is_active FROM contact_emails`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListContactEmails query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactEmail{}
	var ids []int64
	for rows.Next() {
		var e domain.ContactEmail
		if err := rows.Scan(&e.ID, &e.Email, &e.Ordering, &e.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListContactEmails scan: %w", err)
		}
		items = append(items, e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListContactEmails iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, emailTextsQ, ids, scanChannelText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) CreateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error) {
	created := *e
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO contact_emails (email, ordering, is_active) VALUES ($1, $2, $3) RETURNING id;`,
			created.Email, created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateContactEmail insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteEmailTextsQ, insertEmailTextQ, created.ID, channelTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateContactEmail(ctx context.Context, e *domain.ContactEmail) (*domain.ContactEmail, error) {
	updated := *e
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE contact_emails SET email = $1, ordering = $2, is_active = $3 WHERE id = $4;`,
			updated.Email, updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateContactEmail update: %w", err)
		}
		if err := rowsAffected(res, ErrContactEmailNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteEmailTextsQ, insertEmailTextQ, updated.ID, channelTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteContactEmail(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_emails WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteContactEmail: %w", err)
	}
	return rowsAffected(res, ErrContactEmailNotFound)
}

// --- Working hours (at most one active) ---

func hoursTextRows(t i18n.Table[domain.WorkingHoursText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Weekdays, txt.Saturday, txt.Sunday, txt.Note})
	}
	return rows
}

func scanHoursText(rows *sql.Rows) (int64, string, domain.WorkingHoursText, error) {
	var id int64
	var lang string
	var t domain.WorkingHoursText
	err := rows.Scan(&id, &lang, &t.Weekdays, &t.Saturday, &t.Sunday, &t.Note)
	return id, lang, t, err
}

func (s *PostgresStore) ListWorkingHours(ctx context.Context) ([]domain.ContactWorkingHours, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, is_active FROM working_hours ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("store: ListWorkingHours query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactWorkingHours{}
	var ids []int64
	for rows.Next() {
		var wh domain.ContactWorkingHours
		if err := rows.Scan(&wh.ID, &wh.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListWorkingHours scan: %w", err)
		}
		items = append(items, wh)
		ids = append(ids, wh.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListWorkingHours iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, hoursTextsQ, ids, scanHoursText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetActiveWorkingHours(ctx context.Context) (*domain.ContactWorkingHours, error) {
	var wh domain.ContactWorkingHours
	err := s.db.QueryRowContext(ctx,
		`SELECT id, is_active FROM working_hours WHERE is_active = TRUE ORDER BY id ASC LIMIT 1;`,
	).Scan(&wh.ID, &wh.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkingHoursNotFound
		}
		return nil, fmt.Errorf("store: GetActiveWorkingHours: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, hoursTextsQ, []int64{wh.ID}, scanHoursText)
	if err != nil {
		return nil, err
	}
	wh.Translations = texts[wh.ID]
	return &wh, nil
}

func hasOtherActiveHours(ctx context.Context, q queryer, excludeID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM working_hours WHERE is_active = TRUE AND id <> $1);`, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store: active working hours check: %w", err)
	}
	return exists, nil
}

// CreateWorkingHours rejects a save that would leave two active schedules.
// Unlike the social map, activation here does not silently deactivate the
// other row.
func (s *PostgresStore) CreateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error) {
	created := *wh
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.IsActive {
			other, err := hasOtherActiveHours(ctx, tx, 0)
			if err != nil {
				return err
			}
			if other {
				return ErrActiveHoursExists
			}
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO working_hours (is_active) VALUES ($1) RETURNING id;`,
			created.IsActive).Scan(&created.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrActiveHoursExists
			}
			return fmt.Errorf("store: CreateWorkingHours insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteHoursTextsQ, insertHoursTextQ, created.ID, hoursTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateWorkingHours(ctx context.Context, wh *domain.ContactWorkingHours) (*domain.ContactWorkingHours, error) {
	updated := *wh
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if updated.IsActive {
			other, err := hasOtherActiveHours(ctx, tx, updated.ID)
			if err != nil {
				return err
			}
			if other {
				return ErrActiveHoursExists
			}
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE working_hours SET is_active = $1 WHERE id = $2;`,
			updated.IsActive, updated.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrActiveHoursExists
			}
			return fmt.Errorf("store: UpdateWorkingHours update: %w", err)
		}
		if err := rowsAffected(res, ErrWorkingHoursNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteHoursTextsQ, insertHoursTextQ, updated.ID, hoursTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteWorkingHours(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM working_hours WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteWorkingHours: %w", err)
	}
	return rowsAffected(res, ErrWorkingHoursNotFound)
}

// --- Topics ---

func topicTextRows(t i18n.Table[domain.ContactTopicText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		rows = append(rows, []any{lang, t[lang].Name})
	}
	return rows
}

func scanTopicText(rows *sql.Rows) (int64, string, domain.ContactTopicText, error) {
	var id int64
	var lang string
	var t domain.ContactTopicText
	err := rows.Scan(&id, &lang, &t.Name)
	return id, lang, t, err
}

func (s *PostgresStore) ListContactTopics(ctx context.Context) ([]domain.ContactTopic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, slug FROM contact_topics ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("store: ListContactTopics query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactTopic{}
	var ids []int64
	for rows.Next() {
		var t domain.ContactTopic
		if err := rows.Scan(&t.ID, &t.Slug); err != nil {
			return nil, fmt.Errorf("store: ListContactTopics scan: %w", err)
		}
		items = append(items, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListContactTopics iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, topicTextsQ, ids, scanTopicText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetContactTopic(ctx context.Context, id int64) (*domain.ContactTopic, error) {
	var t domain.ContactTopic
	err := s.db.QueryRowContext(ctx, `SELECT id, slug FROM contact_topics WHERE id = $1;`, id).
		Scan(&t.ID, &t.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContactTopicNotFound
		}
		return nil, fmt.Errorf("store: GetContactTopic: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, topicTextsQ, []int64{t.ID}, scanTopicText)
	if err != nil {
		return nil, err
	}
	t.Translations = texts[t.ID]
	return &t, nil
}

func (s *PostgresStore) CreateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error) {
	created := *t
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.Slug == "" {
			text, _, ok := created.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: CreateContactTopic requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "contact_topics", slugid.Make(text.Name), 0)
			if err != nil {
				return err
			}
			created.Slug = slug
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO contact_topics (slug) VALUES ($1) RETURNING id;`,
			created.Slug).Scan(&created.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: CreateContactTopic insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteTopicTextsQ, insertTopicTextQ, created.ID, topicTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateContactTopic(ctx context.Context, t *domain.ContactTopic) (*domain.ContactTopic, error) {
	updated := *t
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE contact_topics SET slug = $1 WHERE id = $2;`,
			updated.Slug, updated.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: UpdateContactTopic update: %w", err)
		}
		if err := rowsAffected(res, ErrContactTopicNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteTopicTextsQ, insertTopicTextQ, updated.ID, topicTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteContactTopic removes a topic. Intake rows that referenced it keep
// their data with topic_id set to NULL by the schema.
func (s *PostgresStore) DeleteContactTopic(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_topics WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteContactTopic: %w", err)
	}
	return rowsAffected(res, ErrContactTopicNotFound)
}

// --- Contact requests (append-only intake log) ---

func scanContactRequest(row interface{ Scan(...any) error }, cr *domain.ContactRequest) error {
	return row.Scan(&cr.ID, &cr.Name, &cr.Phone, &cr.Email, &cr.TopicID,
		&cr.Message, &cr.Consent, &cr.IP, &cr.UserAgent, &cr.CreatedAt)
}

func (s *PostgresStore) CreateContactRequest(ctx context.Context, cr *domain.ContactRequest) (*domain.ContactRequest, error) {
	created := *cr
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contact_requests (name, phone, email, topic_id, message, consent, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;`,
		created.Name, created.Phone, created.Email, created.TopicID,
		created.Message, created.Consent, created.IP, created.UserAgent,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isFKViolation(err) {
			return nil, ErrContactTopicNotFound
		}
		return nil, fmt.Errorf("store: CreateContactRequest insert: %w", err)
	}
	return &created, nil
}

func (s *PostgresStore) ListContactRequests(ctx context.Context, params ListContactRequestsParams) ([]domain.ContactRequest, int, error) {
	where := ""
	var args []any
	if params.TopicID != nil {
		where = " WHERE topic_id = $1"
		args = append(args, *params.TopicID)
	}

	var total int
	countQ := `SELECT COUNT(*) FROM contact_requests` + where + `;`
	if err := s.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store: ListContactRequests count: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM contact_requests%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d;`,
		contactRequestColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: ListContactRequests query: %w", err)
	}
	defer rows.Close()

	items := []domain.ContactRequest{}
	for rows.Next() {
		var cr domain.ContactRequest
		if err := scanContactRequest(rows, &cr); err != nil {
			return nil, 0, fmt.Errorf("store: ListContactRequests scan: %w", err)
		}
		items = append(items, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store: ListContactRequests iteration: %w", err)
	}
	return items, total, nil
}

func (s *PostgresStore) GetContactRequest(ctx context.Context, id int64) (*domain.ContactRequest, error) {
	var cr domain.ContactRequest
	err := scanContactRequest(s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM contact_requests WHERE id = $1;`, contactRequestColumns), id), &cr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContactRequestNotFound
		}
		return nil, fmt.Errorf("store: GetContactRequest: %w", err)
	}
	return &cr, nil
}
