package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/slugid"
)

// Predefined errors for store operations.
var (
	ErrCategoryNotFound       = errors.New("store: category not found")
	ErrCategoryInUse          = errors.New("store: category has products and cannot be deleted")
	ErrSlugExists             = errors.New("store: slug already exists")
	ErrProductNotFound        = errors.New("store: product not found")
	ErrProductImageNotFound   = errors.New("store: product image not found")
	ErrPrimaryImageExists     = errors.New("store: product already has a primary image")
	ErrCarouselItemNotFound   = errors.New("store: carousel item not found")
	ErrSectionHeaderNotFound  = errors.New("store: section header not found")
	ErrAdvantageNotFound      = errors.New("store: advantage not found")
	ErrMetricNotFound         = errors.New("store: metric not found")
	ErrTeamMemberNotFound     = errors.New("store: team member not found")
	ErrValueNotFound          = errors.New("store: value not found")
	ErrVideoNotFound          = errors.New("store: video not found")
	ErrCompanyInfoNotFound    = errors.New("store: company info not found")
	ErrCompanyInfoExists      = errors.New("store: company info already exists (singleton)")
	ErrSocialMapNotFound      = errors.New("store: social map not found")
	ErrContactAddressNotFound = errors.New("store: contact address not found")
	ErrContactPhoneNotFound   = errors.New("store: contact phone not found")
	ErrContactEmailNotFound   = errors.New("store: contact email not found")
	ErrWorkingHoursNotFound   = errors.New("store: working hours not found")
	ErrActiveHoursExists      = errors.New("store: another active working hours record exists")
	ErrContactTopicNotFound   = errors.New("store: contact topic not found")
	ErrContactRequestNotFound = errors.New("store: contact request not found")
)

// PostgresStore implements the storer interfaces using PostgreSQL.
type PostgresStore struct {
	db          *sql.DB
	defaultLang string
}

// NewPostgresStore creates a new PostgresStore instance. defaultLang is the
// language whose translation row feeds slug derivation.
func NewPostgresStore(db *sql.DB, defaultLang string) *PostgresStore {
	return &PostgresStore{db: db, defaultLang: defaultLang}
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	log.Println("INFO: Closing database connection pool...")
	if err := s.db.Close(); err != nil {
		log.Printf("ERROR: Failed to close database connection pool: %v", err)
		return err
	}
	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// withTx runs fn inside a transaction. The multi-row invariant checks
// (singletons, primary image, slug assignment) all go through here so the
// check and the write share one unit of work.
func (s *PostgresStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("WARN: transaction rollback failed: %v", rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit transaction: %w", err)
	}
	return nil
}

// nextFreeSlug resolves the base slug against existing rows of table,
// appending -1, -2, ... until a free value is found. table is always a
// compile-time constant at the call sites.
func nextFreeSlug(ctx context.Context, q queryer, table, base string, excludeID int64) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE slug = $1 AND id <> $2)`, table)
		if err := q.QueryRowContext(ctx, query, candidate, excludeID).Scan(&exists); err != nil {
			return "", fmt.Errorf("store: slug lookup on %s: %w", table, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = slugid.WithSuffix(base, n)
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique violation,
// optionally scoped to a named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// isFKViolation reports whether err is a PostgreSQL foreign key violation.
func isFKViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

// rowsAffected maps a zero-row result to the entity's not-found sentinel.
func rowsAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// loadTexts fetches translation rows for a set of owner ids. query must
// select (owner_id, language_code, fields...) filtered by owner_id = ANY($1);
// scan decodes one row.
func loadTexts[T any](ctx context.Context, q queryer, query string, ids []int64,
	scan func(rows *sql.Rows) (int64, string, T, error)) (map[int64]i18n.Table[T], error) {

	out := make(map[int64]i18n.Table[T], len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("store: load translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ownerID, lang, text, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan translation row: %w", err)
		}
		if out[ownerID] == nil {
			out[ownerID] = i18n.Table[T]{}
		}
		out[ownerID][lang] = text
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: translation iteration: %w", err)
	}
	return out, nil
}

// replaceTexts rewrites the full translation set of one owner: delete all
// rows, then insert one per language. rows carry the per-language column
// values in insertQ's order after the owner id.
func replaceTexts(ctx context.Context, q queryer, deleteQ, insertQ string, ownerID int64, rows [][]any) error {
	if _, err := q.ExecContext(ctx, deleteQ, ownerID); err != nil {
		return fmt.Errorf("store: delete translations: %w", err)
	}
	for _, r := range rows {
		args := append([]any{ownerID}, r...)
		if _, err := q.ExecContext(ctx, insertQ, args...); err != nil {
			return fmt.Errorf("store: insert translation: %w", err)
		}
	}
	return nil
}
