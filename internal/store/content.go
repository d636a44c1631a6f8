package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/slugid"
)

const (
	carouselTextsQ       = `SELECT carousel_item_id, language_code, title, subtitle FROM carousel_item_translations WHERE carousel_item_id = ANY($1);`
	deleteCarouselTextsQ = `DELETE FROM carousel_item_translations WHERE carousel_item_id = $1;`
	insertCarouselTextQ  = `INSERT INTO carousel_item_translations (carousel_item_id, language_code, title, subtitle) VALUES ($1, $2, $3, $4);`

	sectionTextsQ       = `SELECT section_header_id, language_code, title, description FROM section_header_translations WHERE section_header_id = ANY($1);`
	deleteSectionTextsQ = `DELETE FROM section_header_translations WHERE section_header_id = $1;`
	insertSectionTextQ  = `INSERT INTO section_header_translations (section_header_id, language_code, title, description) VALUES ($1, $2, $3, $4);`

	advantageTextsQ       = `SELECT advantage_id, language_code, title, description FROM advantage_translations WHERE advantage_id = ANY($1);`
	deleteAdvantageTextsQ = `DELETE FROM advantage_translations WHERE advantage_id = $1;`
	insertAdvantageTextQ  = `INSERT INTO advantage_translations (advantage_id, language_code, title, description) VALUES ($1, $2, $3, $4);`

	metricTextsQ       = `SELECT metric_id, language_code, name, value, suffix FROM metric_translations WHERE metric_id = ANY($1);`
	deleteMetricTextsQ = `DELETE FROM metric_translations WHERE metric_id = $1;`
	insertMetricTextQ  = `INSERT INTO metric_translations (metric_id, language_code, name, value, suffix) VALUES ($1, $2, $3, $4, $5);`

	teamTextsQ       = `SELECT team_member_id, language_code, full_name, role, short_bio FROM team_member_translations WHERE team_member_id = ANY($1);`
	deleteTeamTextsQ = `DELETE FROM team_member_translations WHERE team_member_id = $1;`
	insertTeamTextQ  = `INSERT INTO team_member_translations (team_member_id, language_code, full_name, role, short_bio) VALUES ($1, $2, $3, $4, $5);`

	valueTextsQ       = `SELECT value_id, language_code, title, description FROM company_value_translations WHERE value_id = ANY($1);`
	deleteValueTextsQ = `DELETE FROM company_value_translations WHERE value_id = $1;`
	insertValueTextQ  = `INSERT INTO company_value_translations (value_id, language_code, title, description) VALUES ($1, $2, $3, $4);`

	videoTextsQ       = `SELECT video_id, language_code, title FROM video_translations WHERE video_id = ANY($1);`
	deleteVideoTextsQ = `DELETE FROM video_translations WHERE video_id = $1;`
	insertVideoTextQ  = `INSERT INTO video_translations (video_id, language_code, title) VALUES ($1, $2, $3);`

	companyTextsQ       = `SELECT company_info_id, language_code, mission_text, about_text FROM company_info_translations WHERE company_info_id = ANY($1);`
	deleteCompanyTextsQ = `DELETE FROM company_info_translations WHERE company_info_id = $1;`
	insertCompanyTextQ  = `INSERT INTO company_info_translations (company_info_id, language_code, mission_text, about_text) VALUES ($1, $2, $3, $4);`
)

// rawJSONArg converts an optional JSON payload to its SQL representation.
func rawJSONArg(raw *json.RawMessage) []byte {
	if raw != nil && len(*raw) > 0 {
		return *raw
	}
	return []byte("null")
}

// scanRawJSON converts a scanned nullable JSON column back.
func scanRawJSON(ns sql.NullString) *json.RawMessage {
	if ns.Valid && ns.String != "" && ns.String != "null" {
		raw := json.RawMessage(ns.String)
		return &raw
	}
	return nil
}

// textOrEmpty binds an optional text field against a NOT NULL '' column.
func textOrEmpty(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

// --- Carousel ---

func (s *PostgresStore) ListCarouselItems(ctx context.Context, activeOnly bool) ([]domain.CarouselItem, error) {
	query := `SELECT id, image, link_url, is_active, ordering, created_at, updated_at FROM carousel_items`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id DESC;`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListCarouselItems query: %w", err)
	}
	defer rows.Close()

	items := []domain.CarouselItem{}
	var ids []int64
	for rows.Next() {
		var it domain.CarouselItem
		if err := rows.Scan(&it.ID, &it.Image, &it.LinkURL, &it.IsActive, &it.Ordering, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: ListCarouselItems scan: %w", err)
		}
		items = append(items, it)
		ids = append(ids, it.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListCarouselItems iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, carouselTextsQ, ids, func(rows *sql.Rows) (int64, string, domain.CarouselText, error) {
		var id int64
		var lang string
		var t domain.CarouselText
		err := rows.Scan(&id, &lang, &t.Title, &t.Subtitle)
		return id, lang, t, err
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetCarouselItem(ctx context.Context, id int64) (*domain.CarouselItem, error) {
	var it domain.CarouselItem
	err := s.db.QueryRowContext(ctx,
		`SELECT id, image, link_url, is_active, ordering, created_at, updated_at FROM carousel_items WHERE id = $1;`, id,
	).Scan(&it.ID, &it.Image, &it.LinkURL, &it.IsActive, &it.Ordering, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCarouselItemNotFound
		}
		return nil, fmt.Errorf("store: GetCarouselItem: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, carouselTextsQ, []int64{it.ID}, func(rows *sql.Rows) (int64, string, domain.CarouselText, error) {
		var id int64
		var lang string
		var t domain.CarouselText
		err := rows.Scan(&id, &lang, &t.Title, &t.Subtitle)
		return id, lang, t, err
	})
	if err != nil {
		return nil, err
	}
	it.Translations = texts[it.ID]
	return &it, nil
}

func carouselTextRows(t i18n.Table[domain.CarouselText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title, txt.Subtitle})
	}
	return rows
}

func (s *PostgresStore) CreateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error) {
	created := *it
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO carousel_items (image, link_url, is_active, ordering)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at, updated_at;`,
			created.Image, created.LinkURL, created.IsActive, created.Ordering,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return fmt.Errorf("store: CreateCarouselItem insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteCarouselTextsQ, insertCarouselTextQ, created.ID, carouselTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateCarouselItem(ctx context.Context, it *domain.CarouselItem) (*domain.CarouselItem, error) {
	updated := *it
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE carousel_items
			SET image = $1, link_url = $2, is_active = $3, ordering = $4, updated_at = CURRENT_TIMESTAMP
			WHERE id = $5;`,
			updated.Image, updated.LinkURL, updated.IsActive, updated.Ordering, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateCarouselItem update: %w", err)
		}
		if err := rowsAffected(res, ErrCarouselItemNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteCarouselTextsQ, insertCarouselTextQ, updated.ID, carouselTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteCarouselItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM carousel_items WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteCarouselItem: %w", err)
	}
	return rowsAffected(res, ErrCarouselItemNotFound)
}

func (s *PostgresStore) SetCarouselItemsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return s.setActive(ctx, "carousel_items", ids, active, true)
}

// setActive flips is_active for a set of rows. withTimestamp updates the
// updated_at column on tables that carry one.
func (s *PostgresStore) setActive(ctx context.Context, table string, ids []int64, active bool, withTimestamp bool) (int64, error) {
	query := fmt.Sprintf(`UPDATE %s SET is_active = $1 WHERE id = ANY($2);`, table)
	if withTimestamp {
		query = fmt.Sprintf(`UPDATE %s SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = ANY($2);`, table)
	}
	res, err := s.db.ExecContext(ctx, query, active, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("store: setActive on %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: setActive rows affected: %w", err)
	}
	return n, nil
}

// --- Section headers ---

func sectionTextRows(t i18n.Table[domain.SectionHeaderText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title, txt.Description})
	}
	return rows
}

func scanSectionText(rows *sql.Rows) (int64, string, domain.SectionHeaderText, error) {
	var id int64
	var lang string
	var t domain.SectionHeaderText
	err := rows.Scan(&id, &lang, &t.Title, &t.Description)
	return id, lang, t, err
}

func (s *PostgresStore) ListSectionHeaders(ctx context.Context, activeOnly bool) ([]domain.SectionHeader, error) {
	query := `SELECT id, slug, is_active FROM section_headers`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY slug ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListSectionHeaders query: %w", err)
	}
	defer rows.Close()

	headers := []domain.SectionHeader{}
	var ids []int64
	for rows.Next() {
		var sh domain.SectionHeader
		if err := rows.Scan(&sh.ID, &sh.Slug, &sh.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListSectionHeaders scan: %w", err)
		}
		headers = append(headers, sh)
		ids = append(ids, sh.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListSectionHeaders iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, sectionTextsQ, ids, scanSectionText)
	if err != nil {
		return nil, err
	}
	for i := range headers {
		headers[i].Translations = texts[headers[i].ID]
	}
	return headers, nil
}

func (s *PostgresStore) GetSectionHeaderBySlug(ctx context.Context, slug string) (*domain.SectionHeader, error) {
	var sh domain.SectionHeader
	err := s.db.QueryRowContext(ctx, `SELECT id, slug, is_active FROM section_headers WHERE slug = $1;`, slug).
		Scan(&sh.ID, &sh.Slug, &sh.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSectionHeaderNotFound
		}
		return nil, fmt.Errorf("store: GetSectionHeaderBySlug: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, sectionTextsQ, []int64{sh.ID}, scanSectionText)
	if err != nil {
		return nil, err
	}
	sh.Translations = texts[sh.ID]
	return &sh, nil
}

func (s *PostgresStore) CreateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error) {
	created := *sh
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.Slug == "" {
			text, _, ok := created.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: CreateSectionHeader requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "section_headers", slugid.Make(text.Title), 0)
			if err != nil {
				return err
			}
			created.Slug = slug
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO section_headers (slug, is_active) VALUES ($1, $2) RETURNING id;`,
			created.Slug, created.IsActive).Scan(&created.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: CreateSectionHeader insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteSectionTextsQ, insertSectionTextQ, created.ID, sectionTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateSectionHeader(ctx context.Context, sh *domain.SectionHeader) (*domain.SectionHeader, error) {
	updated := *sh
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE section_headers SET slug = $1, is_active = $2 WHERE id = $3;`,
			updated.Slug, updated.IsActive, updated.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: UpdateSectionHeader update: %w", err)
		}
		if err := rowsAffected(res, ErrSectionHeaderNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteSectionTextsQ, insertSectionTextQ, updated.ID, sectionTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteSectionHeader(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM section_headers WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteSectionHeader: %w", err)
	}
	return rowsAffected(res, ErrSectionHeaderNotFound)
}

// --- Advantages ---

func advantageTextRows(t i18n.Table[domain.AdvantageText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title, txt.Description})
	}
	return rows
}

func scanAdvantageText(rows *sql.Rows) (int64, string, domain.AdvantageText, error) {
	var id int64
	var lang string
	var t domain.AdvantageText
	err := rows.Scan(&id, &lang, &t.Title, &t.Description)
	return id, lang, t, err
}

func (s *PostgresStore) ListAdvantages(ctx context.Context, activeOnly bool) ([]domain.Advantage, error) {
	query := `SELECT id, icon, ordering, is_active FROM advantages`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListAdvantages query: %w", err)
	}
	defer rows.Close()

	items := []domain.Advantage{}
	var ids []int64
	for rows.Next() {
		var a domain.Advantage
		if err := rows.Scan(&a.ID, &a.Icon, &a.Ordering, &a.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListAdvantages scan: %w", err)
		}
		items = append(items, a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListAdvantages iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, advantageTextsQ, ids, scanAdvantageText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetAdvantage(ctx context.Context, id int64) (*domain.Advantage, error) {
	var a domain.Advantage
	err := s.db.QueryRowContext(ctx, `SELECT id, icon, ordering, is_active FROM advantages WHERE id = $1;`, id).
		Scan(&a.ID, &a.Icon, &a.Ordering, &a.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdvantageNotFound
		}
		return nil, fmt.Errorf("store: GetAdvantage: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, advantageTextsQ, []int64{a.ID}, scanAdvantageText)
	if err != nil {
		return nil, err
	}
	a.Translations = texts[a.ID]
	return &a, nil
}

func (s *PostgresStore) CreateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error) {
	created := *a
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO advantages (icon, ordering, is_active) VALUES ($1, $2, $3) RETURNING id;`,
			created.Icon, created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateAdvantage insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteAdvantageTextsQ, insertAdvantageTextQ, created.ID, advantageTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateAdvantage(ctx context.Context, a *domain.Advantage) (*domain.Advantage, error) {
	updated := *a
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE advantages SET icon = $1, ordering = $2, is_active = $3 WHERE id = $4;`,
			updated.Icon, updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateAdvantage update: %w", err)
		}
		if err := rowsAffected(res, ErrAdvantageNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteAdvantageTextsQ, insertAdvantageTextQ, updated.ID, advantageTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteAdvantage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM advantages WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteAdvantage: %w", err)
	}
	return rowsAffected(res, ErrAdvantageNotFound)
}

func (s *PostgresStore) SetAdvantagesActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return s.setActive(ctx, "advantages", ids, active, false)
}

// --- Metrics ---

func metricTextRows(t i18n.Table[domain.MetricText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Name, txt.Value, txt.Suffix})
	}
	return rows
}

func scanMetricText(rows *sql.Rows) (int64, string, domain.MetricText, error) {
	var id int64
	var lang string
	var t domain.MetricText
	err := rows.Scan(&id, &lang, &t.Name, &t.Value, &t.Suffix)
	return id, lang, t, err
}

func (s *PostgresStore) ListMetrics(ctx context.Context, activeOnly bool, limit int) ([]domain.Metric, error) {
	query := `SELECT id, ordering, is_active FROM metrics`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	query += `;`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: ListMetrics query: %w", err)
	}
	defer rows.Close()

	items := []domain.Metric{}
	var ids []int64
	for rows.Next() {
		var m domain.Metric
		if err := rows.Scan(&m.ID, &m.Ordering, &m.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListMetrics scan: %w", err)
		}
		items = append(items, m)
		ids = append(ids, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListMetrics iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, metricTextsQ, ids, scanMetricText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetMetric(ctx context.Context, id int64) (*domain.Metric, error) {
	var m domain.Metric
	err := s.db.QueryRowContext(ctx, `SELECT id, ordering, is_active FROM metrics WHERE id = $1;`, id).
		Scan(&m.ID, &m.Ordering, &m.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMetricNotFound
		}
		return nil, fmt.Errorf("store: GetMetric: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, metricTextsQ, []int64{m.ID}, scanMetricText)
	if err != nil {
		return nil, err
	}
	m.Translations = texts[m.ID]
	return &m, nil
}

func (s *PostgresStore) CreateMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	created := *m
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO metrics (ordering, is_active) VALUES ($1, $2) RETURNING id;`,
			created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateMetric insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteMetricTextsQ, insertMetricTextQ, created.ID, metricTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateMetric(ctx context.Context, m *domain.Metric) (*domain.Metric, error) {
	updated := *m
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE metrics SET ordering = $1, is_active = $2 WHERE id = $3;`,
			updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateMetric update: %w", err)
		}
		if err := rowsAffected(res, ErrMetricNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteMetricTextsQ, insertMetricTextQ, updated.ID, metricTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteMetric(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM metrics WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteMetric: %w", err)
	}
	return rowsAffected(res, ErrMetricNotFound)
}

func (s *PostgresStore) SetMetricsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return s.setActive(ctx, "metrics", ids, active, false)
}

// --- Team members ---

func teamTextRows(t i18n.Table[domain.TeamMemberText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.FullName, txt.Role, txt.ShortBio})
	}
	return rows
}

func scanTeamText(rows *sql.Rows) (int64, string, domain.TeamMemberText, error) {
	var id int64
	var lang string
	var t domain.TeamMemberText
	err := rows.Scan(&id, &lang, &t.FullName, &t.Role, &t.ShortBio)
	return id, lang, t, err
}

func (s *PostgresStore) ListTeamMembers(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	query := `SELECT id, photo, social_links, ordering, is_active FROM team_members`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListTeamMembers query: %w", err)
	}
	defer rows.Close()

	items := []domain.TeamMember{}
	var ids []int64
	for rows.Next() {
		var tm domain.TeamMember
		var links sql.NullString
		if err := rows.Scan(&tm.ID, &tm.Photo, &links, &tm.Ordering, &tm.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListTeamMembers scan: %w", err)
		}
		tm.SocialLinks = scanRawJSON(links)
		items = append(items, tm)
		ids = append(ids, tm.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListTeamMembers iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, teamTextsQ, ids, scanTeamText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetTeamMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	var tm domain.TeamMember
	var links sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, photo, social_links, ordering, is_active FROM team_members WHERE id = $1;`, id,
	).Scan(&tm.ID, &tm.Photo, &links, &tm.Ordering, &tm.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("store: GetTeamMember: %w", err)
	}
	tm.SocialLinks = scanRawJSON(links)
	texts, err := loadTexts(ctx, s.db, teamTextsQ, []int64{tm.ID}, scanTeamText)
	if err != nil {
		return nil, err
	}
	tm.Translations = texts[tm.ID]
	return &tm, nil
}

func (s *PostgresStore) CreateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error) {
	created := *tm
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO team_members (photo, social_links, ordering, is_active) VALUES ($1, $2, $3, $4) RETURNING id;`,
			created.Photo, rawJSONArg(created.SocialLinks), created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateTeamMember insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteTeamTextsQ, insertTeamTextQ, created.ID, teamTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateTeamMember(ctx context.Context, tm *domain.TeamMember) (*domain.TeamMember, error) {
	updated := *tm
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE team_members SET photo = $1, social_links = $2, ordering = $3, is_active = $4 WHERE id = $5;`,
			updated.Photo, rawJSONArg(updated.SocialLinks), updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateTeamMember update: %w", err)
		}
		if err := rowsAffected(res, ErrTeamMemberNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteTeamTextsQ, insertTeamTextQ, updated.ID, teamTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteTeamMember(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteTeamMember: %w", err)
	}
	return rowsAffected(res, ErrTeamMemberNotFound)
}

func (s *PostgresStore) SetTeamMembersActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return s.setActive(ctx, "team_members", ids, active, false)
}

// --- Values ---

func valueTextRows(t i18n.Table[domain.ValueText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title, txt.Description})
	}
	return rows
}

func scanValueText(rows *sql.Rows) (int64, string, domain.ValueText, error) {
	var id int64
	var lang string
	var t domain.ValueText
	err := rows.Scan(&id, &lang, &t.Title, &t.Description)
	return id, lang, t, err
}

func (s *PostgresStore) ListValues(ctx context.Context, activeOnly bool) ([]domain.Value, error) {
	query := `SELECT id, icon, ordering, is_active FROM company_values`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY ordering ASC, id ASC;`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListValues query: %w", err)
	}
	defer rows.Close()

	items := []domain.Value{}
	var ids []int64
	for rows.Next() {
		var v domain.Value
		if err := rows.Scan(&v.ID, &v.Icon, &v.Ordering, &v.IsActive); err != nil {
			return nil, fmt.Errorf("store: ListValues scan: %w", err)
		}
		items = append(items, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListValues iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, valueTextsQ, ids, scanValueText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetValue(ctx context.Context, id int64) (*domain.Value, error) {
	var v domain.Value
	err := s.db.QueryRowContext(ctx, `SELECT id, icon, ordering, is_active FROM company_values WHERE id = $1;`, id).
		Scan(&v.ID, &v.Icon, &v.Ordering, &v.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrValueNotFound
		}
		return nil, fmt.Errorf("store: GetValue: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, valueTextsQ, []int64{v.ID}, scanValueText)
	if err != nil {
		return nil, err
	}
	v.Translations = texts[v.ID]
	return &v, nil
}

func (s *PostgresStore) CreateValue(ctx context.Context, v *domain.Value) (*domain.Value, error) {
	created := *v
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO company_values (icon, ordering, is_active) VALUES ($1, $2, $3) RETURNING id;`,
			created.Icon, created.Ordering, created.IsActive).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("store: CreateValue insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteValueTextsQ, insertValueTextQ, created.ID, valueTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateValue(ctx context.Context, v *domain.Value) (*domain.Value, error) {
	updated := *v
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE company_values SET icon = $1, ordering = $2, is_active = $3 WHERE id = $4;`,
			updated.Icon, updated.Ordering, updated.IsActive, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateValue update: %w", err)
		}
		if err := rowsAffected(res, ErrValueNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteValueTextsQ, insertValueTextQ, updated.ID, valueTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteValue(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM company_values WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteValue: %w", err)
	}
	return rowsAffected(res, ErrValueNotFound)
}

func (s *PostgresStore) SetValuesActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	return s.setActive(ctx, "company_values", ids, active, false)
}

// --- Videos ---

func videoTextRows(t i18n.Table[domain.VideoText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Title})
	}
	return rows
}

func scanVideoText(rows *sql.Rows) (int64, string, domain.VideoText, error) {
	var id int64
	var lang string
	var t domain.VideoText
	err := rows.Scan(&id, &lang, &t.Title)
	return id, lang, t, err
}

func (s *PostgresStore) ListVideos(ctx context.Context, page string, activeOnly bool) ([]domain.Video, error) {
	var clauses []string
	var args []any
	if page != "" {
		clauses = append(clauses, fmt.Sprintf("page = $%d", len(args)+1))
		args = append(args, page)
	}
	if activeOnly {
		clauses = append(clauses, "is_active = TRUE")
	}
	query := `SELECT id, page, file, youtube_url, is_active, ordering, created_at FROM videos`
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY ordering ASC, created_at DESC;`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: ListVideos query: %w", err)
	}
	defer rows.Close()

	items := []domain.Video{}
	var ids []int64
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Page, &v.File, &v.YouTubeURL, &v.IsActive, &v.Ordering, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: ListVideos scan: %w", err)
		}
		items = append(items, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListVideos iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, videoTextsQ, ids, scanVideoText)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Translations = texts[items[i].ID]
	}
	return items, nil
}

func (s *PostgresStore) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	var v domain.Video
	err := s.db.QueryRowContext(ctx,
		`SELECT id, page, file, youtube_url, is_active, ordering, created_at FROM videos WHERE id = $1;`, id,
	).Scan(&v.ID, &v.Page, &v.File, &v.YouTubeURL, &v.IsActive, &v.Ordering, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, fmt.Errorf("store: GetVideo: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, videoTextsQ, []int64{v.ID}, scanVideoText)
	if err != nil {
		return nil, err
	}
	v.Translations = texts[v.ID]
	return &v, nil
}

func (s *PostgresStore) CreateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	created := *v
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO videos (page, file, youtube_url, is_active, ordering)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at;`,
			created.Page, textOrEmpty(created.File), textOrEmpty(created.YouTubeURL), created.IsActive, created.Ordering,
		).Scan(&created.ID, &created.CreatedAt)
		if err != nil {
			return fmt.Errorf("store: CreateVideo insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteVideoTextsQ, insertVideoTextQ, created.ID, videoTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateVideo(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	updated := *v
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE videos SET page = $1, file = $2, youtube_url = $3, is_active = $4, ordering = $5 WHERE id = $6;`,
			updated.Page, textOrEmpty(updated.File), textOrEmpty(updated.YouTubeURL), updated.IsActive, updated.Ordering, updated.ID)
		if err != nil {
			return fmt.Errorf("store: UpdateVideo update: %w", err)
		}
		if err := rowsAffected(res, ErrVideoNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteVideoTextsQ, insertVideoTextQ, updated.ID, videoTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteVideo(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteVideo: %w", err)
	}
	return rowsAffected(res, ErrVideoNotFound)
}

// --- Company info (hard singleton) ---

func companyTextRows(t i18n.Table[domain.CompanyInfoText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.MissionText, txt.AboutText})
	}
	return rows
}

func scanCompanyText(rows *sql.Rows) (int64, string, domain.CompanyInfoText, error) {
	var id int64
	var lang string
	var t domain.CompanyInfoText
	err := rows.Scan(&id, &lang, &t.MissionText, &t.AboutText)
	return id, lang, t, err
}

func (s *PostgresStore) GetCompanyInfo(ctx context.Context) (*domain.CompanyInfo, error) {
	var ci domain.CompanyInfo
	var contacts sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, contacts, updated_at FROM company_info ORDER BY id ASC LIMIT 1;`,
	).Scan(&ci.ID, &contacts, &ci.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyInfoNotFound
		}
		return nil, fmt.Errorf("store: GetCompanyInfo: %w", err)
	}
	ci.Contacts = scanRawJSON(contacts)
	texts, err := loadTexts(ctx, s.db, companyTextsQ, []int64{ci.ID}, scanCompanyText)
	if err != nil {
		return nil, err
	}
	ci.Translations = texts[ci.ID]
	return &ci, nil
}

// CreateCompanyInfo rejects a second row outright: CompanyInfo is a hard
// singleton. The check and the insert share a transaction, and the schema
// carries a unique-on-constant index as a backstop.
func (s *PostgresStore) CreateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	created := *ci
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM company_info);`).Scan(&exists); err != nil {
			return fmt.Errorf("store: CreateCompanyInfo existence check: %w", err)
		}
		if exists {
			return ErrCompanyInfoExists
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO company_info (contacts) VALUES ($1) RETURNING id, updated_at;`,
			rawJSONArg(created.Contacts)).Scan(&created.ID, &created.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrCompanyInfoExists
			}
			return fmt.Errorf("store: CreateCompanyInfo insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteCompanyTextsQ, insertCompanyTextQ, created.ID, companyTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateCompanyInfo(ctx context.Context, ci *domain.CompanyInfo) (*domain.CompanyInfo, error) {
	updated := *ci
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`UPDATE company_info SET contacts = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING updated_at;`,
			rawJSONArg(updated.Contacts), updated.ID).Scan(&updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrCompanyInfoNotFound
			}
			return fmt.Errorf("store: UpdateCompanyInfo update: %w", err)
		}
		return replaceTexts(ctx, tx, deleteCompanyTextsQ, insertCompanyTextQ, updated.ID, companyTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// --- Social map (at most one active, via side effect) ---

func scanSocialMap(row interface{ Scan(...any) error }, sm *domain.SocialMap) error {
	var links sql.NullString
	if err := row.Scan(&sm.ID, &links, &sm.MapEmbed, &sm.IsActive, &sm.UpdatedAt); err != nil {
		return err
	}
	sm.SocialLinks = scanRawJSON(links)
	return nil
}

func (s *PostgresStore) ListSocialMaps(ctx context.Context) ([]domain.SocialMap, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, social_links, map_embed, is_active, updated_at FROM social_map ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("store: ListSocialMaps query: %w", err)
	}
	defer rows.Close()

	items := []domain.SocialMap{}
	for rows.Next() {
		var sm domain.SocialMap
		if err := scanSocialMap(rows, &sm); err != nil {
			return nil, fmt.Errorf("store: ListSocialMaps scan: %w", err)
		}
		items = append(items, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListSocialMaps iteration: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetActiveSocialMap(ctx context.Context) (*domain.SocialMap, error) {
	var sm domain.SocialMap
	err := scanSocialMap(s.db.QueryRowContext(ctx,
		`SELECT id, social_links, map_embed, is_active, updated_at FROM social_map WHERE is_active = TRUE ORDER BY id ASC LIMIT 1;`), &sm)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSocialMapNotFound
		}
		return nil, fmt.Errorf("store: GetActiveSocialMap: %w", err)
	}
	return &sm, nil
}

// CreateSocialMap saves a new row. Activating it deactivates every other row
// in the same transaction rather than rejecting, so exactly one row is active
// afterwards.
func (s *PostgresStore) CreateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error) {
	created := *sm
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.IsActive {
			if _, err := tx.ExecContext(ctx,
				`UPDATE social_map SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE is_active = TRUE;`); err != nil {
				return fmt.Errorf("store: CreateSocialMap deactivate others: %w", err)
			}
		}
		err := tx.QueryRowContext(ctx,
			`INSERT INTO social_map (social_links, map_embed, is_active) VALUES ($1, $2, $3) RETURNING id, updated_at;`,
			rawJSONArg(created.SocialLinks), created.MapEmbed, created.IsActive).Scan(&created.ID, &created.UpdatedAt)
		if err != nil {
			return fmt.Errorf("store: CreateSocialMap insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateSocialMap(ctx context.Context, sm *domain.SocialMap) (*domain.SocialMap, error) {
	updated := *sm
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if updated.IsActive {
			if _, err := tx.ExecContext(ctx,
				`UPDATE social_map SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP WHERE is_active = TRUE AND id <> $1;`,
				updated.ID); err != nil {
				return fmt.Errorf("store: UpdateSocialMap deactivate others: %w", err)
			}
		}
		err := tx.QueryRowContext(ctx,
			`UPDATE social_map SET social_links = $1, map_embed = $2, is_active = $3, updated_at = CURRENT_TIMESTAMP WHERE id = $4 RETURNING updated_at;`,
			rawJSONArg(updated.SocialLinks), updated.MapEmbed, updated.IsActive, updated.ID).Scan(&updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrSocialMapNotFound
			}
			return fmt.Errorf("store: UpdateSocialMap update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteSocialMap(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM social_map WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteSocialMap: %w", err)
	}
	return rowsAffected(res, ErrSocialMapNotFound)
}
