package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/slugid"
)

var ErrCategoryNameExists = errors.New("store: category name already exists for this language")

const (
	categoryTextsQ       = `SELECT category_id, language_code, name, description FROM category_translations WHERE category_id = ANY($1);`
	deleteCategoryTextsQ = `DELETE FROM category_translations WHERE category_id = $1;`
	insertCategoryTextQ  = `INSERT INTO category_translations (category_id, language_code, name, description) VALUES ($1, $2, $3, $4);`

	productTextsQ       = `SELECT product_id, language_code, name, description FROM product_translations WHERE product_id = ANY($1);`
	deleteProductTextsQ = `DELETE FROM product_translations WHERE product_id = $1;`
	insertProductTextQ  = `INSERT INTO product_translations (product_id, language_code, name, description) VALUES ($1, $2, $3, $4);`

	imageTextsQ       = `SELECT product_image_id, language_code, alt_text FROM product_image_translations WHERE product_image_id = ANY($1);`
	deleteImageTextsQ = `DELETE FROM product_image_translations WHERE product_image_id = $1;`
	insertImageTextQ  = `INSERT INTO product_image_translations (product_image_id, language_code, alt_text) VALUES ($1, $2, $3);`

	productColumns = `id, slug, price, is_active, is_featured, category_id, created_at, updated_at`
)

func categoryTextRows(t i18n.Table[domain.CategoryText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Name, txt.Description})
	}
	return rows
}

func scanCategoryText(rows *sql.Rows) (int64, string, domain.CategoryText, error) {
	var id int64
	var lang string
	var txt domain.CategoryText
	err := rows.Scan(&id, &lang, &txt.Name, &txt.Description)
	return id, lang, txt, err
}

func productTextRows(t i18n.Table[domain.ProductText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.Name, txt.Description})
	}
	return rows
}

func scanProductText(rows *sql.Rows) (int64, string, domain.ProductText, error) {
	var id int64
	var lang string
	var txt domain.ProductText
	err := rows.Scan(&id, &lang, &txt.Name, &txt.Description)
	return id, lang, txt, err
}

func imageTextRows(t i18n.Table[domain.ProductImageText]) [][]any {
	rows := make([][]any, 0, len(t))
	for _, lang := range t.Languages() {
		txt := t[lang]
		rows = append(rows, []any{lang, txt.AltText})
	}
	return rows
}

func scanImageText(rows *sql.Rows) (int64, string, domain.ProductImageText, error) {
	var id int64
	var lang string
	var txt domain.ProductImageText
	err := rows.Scan(&id, &lang, &txt.AltText)
	return id, lang, txt, err
}

// --- CategoryStorer implementation ---

func (s *PostgresStore) ListCategories(ctx context.Context, withCounts bool) ([]domain.Category, error) {
	query := `SELECT id, slug FROM categories ORDER BY slug ASC;`
	if withCounts {
		query = `
		SELECT c.id, c.slug, COUNT(p.id) FILTER (WHERE p.is_active) AS products_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.slug
		ORDER BY c.slug ASC;`
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: ListCategories query: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	var ids []int64
	for rows.Next() {
		var c domain.Category
		if withCounts {
			var count int64
			if err := rows.Scan(&c.ID, &c.Slug, &count); err != nil {
				return nil, fmt.Errorf("store: ListCategories scan: %w", err)
			}
			c.ProductsCount = &count
		} else if err := rows.Scan(&c.ID, &c.Slug); err != nil {
			return nil, fmt.Errorf("store: ListCategories scan: %w", err)
		}
		categories = append(categories, c)
		ids = append(ids, c.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: ListCategories iteration: %w", err)
	}

	texts, err := loadTexts(ctx, s.db, categoryTextsQ, ids, scanCategoryText)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Translations = texts[categories[i].ID]
	}
	return categories, nil
}

func (s *PostgresStore) getCategory(ctx context.Context, q queryer, where string, arg any) (*domain.Category, error) {
	var c domain.Category
	err := q.QueryRowContext(ctx, `SELECT id, slug FROM categories WHERE `+where+`;`, arg).Scan(&c.ID, &c.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("store: get category: %w", err)
	}
	texts, err := loadTexts(ctx, q, categoryTextsQ, []int64{c.ID}, scanCategoryText)
	if err != nil {
		return nil, err
	}
	c.Translations = texts[c.ID]
	return &c, nil
}

func (s *PostgresStore) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.getCategory(ctx, s.db, `id = $1`, id)
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return s.getCategory(ctx, s.db, `slug = $1`, slug)
}

func (s *PostgresStore) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	created := *c
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.Slug == "" {
			text, _, ok := created.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: CreateCategory requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "categories", slugid.Make(text.Name), 0)
			if err != nil {
				return err
			}
			created.Slug = slug
		}
		err := tx.QueryRowContext(ctx, `INSERT INTO categories (slug) VALUES ($1) RETURNING id;`, created.Slug).Scan(&created.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: CreateCategory insert: %w", err)
		}
		if err := replaceTexts(ctx, tx, deleteCategoryTextsQ, insertCategoryTextQ, created.ID, categoryTextRows(created.Translations)); err != nil {
			if isUniqueViolation(err, "category_translations_language_name_key") {
				return ErrCategoryNameExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	updated := *c
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if updated.Slug == "" {
			text, _, ok := updated.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: UpdateCategory requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "categories", slugid.Make(text.Name), updated.ID)
			if err != nil {
				return err
			}
			updated.Slug = slug
		}
		res, err := tx.ExecContext(ctx, `UPDATE categories SET slug = $1 WHERE id = $2;`, updated.Slug, updated.ID)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			return fmt.Errorf("store: UpdateCategory update: %w", err)
		}
		if err := rowsAffected(res, ErrCategoryNotFound); err != nil {
			return err
		}
		if err := replaceTexts(ctx, tx, deleteCategoryTextsQ, insertCategoryTextQ, updated.ID, categoryTextRows(updated.Translations)); err != nil {
			if isUniqueViolation(err, "category_translations_language_name_key") {
				return ErrCategoryNameExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteCategory(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		// products.category_id is ON DELETE RESTRICT
		if isFKViolation(err) {
			return ErrCategoryInUse
		}
		return fmt.Errorf("store: DeleteCategory: %w", err)
	}
	return rowsAffected(res, ErrCategoryNotFound)
}

// --- ProductStorer implementation ---

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.Slug, &p.Price, &p.IsActive, &p.IsFeatured, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
}

func (s *PostgresStore) ListProducts(ctx context.Context, params ListProductsParams) ([]domain.Product, int, error) {
	var queryArgs []any
	var whereClauses []string
	argID := 1

	if params.ActiveOnly {
		whereClauses = append(whereClauses, "is_active = TRUE")
	}
	if params.FeaturedOnly {
		whereClauses = append(whereClauses, "is_featured = TRUE")
	}
	if params.CategorySlug != nil && *params.CategorySlug != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("category_id = (SELECT id FROM categories WHERE slug = $%d)", argID))
		queryArgs = append(queryArgs, *params.CategorySlug)
		argID++
	}
	if params.SearchQuery != nil && *params.SearchQuery != "" {
		// Match against the translation row the caller's language resolves to:
		// the requested language when that row exists, any language otherwise.
		whereClauses = append(whereClauses, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM product_translations t
			WHERE t.product_id = products.id
			  AND (t.name ILIKE $%d OR t.description ILIKE $%d)
			  AND (t.language_code = $%d OR NOT EXISTS (
				SELECT 1 FROM product_translations t2
				WHERE t2.product_id = products.id AND t2.language_code = $%d)))`,
			argID, argID, argID+1, argID+1))
		queryArgs = append(queryArgs, "%"+*params.SearchQuery+"%", params.Lang)
		argID += 2
	}
	if params.MinPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price >= $%d", argID))
		queryArgs = append(queryArgs, *params.MinPrice)
		argID++
	}
	if params.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argID))
		queryArgs = append(queryArgs, *params.MaxPrice)
		argID++
	}

	whereCondition := ""
	if len(whereClauses) > 0 {
		whereCondition = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM products" + whereCondition
	var totalCount int
	if err := s.db.QueryRowContext(ctx, countQuery, queryArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("store: ListProducts count: %w", err)
	}
	if totalCount == 0 {
		return []domain.Product{}, 0, nil
	}

	sortColumn := "created_at"
	if params.SortBy == "price" {
		sortColumn = "price"
	}
	sortOrder := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	dataQuery := fmt.Sprintf("SELECT %s FROM products%s ORDER BY %s %s, id DESC LIMIT $%d OFFSET $%d",
		productColumns, whereCondition, sortColumn, sortOrder, argID, argID+1)
	finalArgs := append(queryArgs, params.Limit, params.Offset)

	rows, err := s.db.QueryContext(ctx, dataQuery, finalArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: ListProducts query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, params.Limit)
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("store: ListProducts scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store: ListProducts iteration: %w", err)
	}

	if err := s.attachProductRelations(ctx, products); err != nil {
		return nil, 0, err
	}
	return products, totalCount, nil
}

// attachProductRelations loads translations, images and categories for a page
// of products.
func (s *PostgresStore) attachProductRelations(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(products))
	catIDs := make([]int64, 0, len(products))
	seenCat := map[int64]bool{}
	for _, p := range products {
		ids = append(ids, p.ID)
		if !seenCat[p.CategoryID] {
			seenCat[p.CategoryID] = true
			catIDs = append(catIDs, p.CategoryID)
		}
	}

	texts, err := loadTexts(ctx, s.db, productTextsQ, ids, scanProductText)
	if err != nil {
		return err
	}
	images, err := s.loadProductImages(ctx, ids)
	if err != nil {
		return err
	}
	categories, err := s.loadCategoriesByID(ctx, catIDs)
	if err != nil {
		return err
	}
	for i := range products {
		p := &products[i]
		p.Translations = texts[p.ID]
		p.Images = images[p.ID]
		p.Category = categories[p.CategoryID]
	}
	return nil
}

func (s *PostgresStore) loadCategoriesByID(ctx context.Context, ids []int64) (map[int64]*domain.Category, error) {
	out := make(map[int64]*domain.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, slug FROM categories WHERE id = ANY($1);`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("store: load categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Slug); err != nil {
			return nil, fmt.Errorf("store: load categories scan: %w", err)
		}
		out[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load categories iteration: %w", err)
	}
	texts, err := loadTexts(ctx, s.db, categoryTextsQ, ids, scanCategoryText)
	if err != nil {
		return nil, err
	}
	for id, c := range out {
		c.Translations = texts[id]
	}
	return out, nil
}

// loadProductImages returns images keyed by product, ordered primary-first,
// then by explicit ordering, then by id.
func (s *PostgresStore) loadProductImages(ctx context.Context, productIDs []int64) (map[int64][]domain.ProductImage, error) {
	out := make(map[int64][]domain.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, product_id, image, ordering, is_primary
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY is_primary DESC, ordering ASC, id ASC;`, pq.Array(productIDs))
	if err != nil {
		return nil, fmt.Errorf("store: load product images: %w", err)
	}
	defer rows.Close()

	var imageIDs []int64
	index := map[int64]*domain.ProductImage{}
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.Image, &img.Ordering, &img.IsPrimary); err != nil {
			return nil, fmt.Errorf("store: load product images scan: %w", err)
		}
		out[img.ProductID] = append(out[img.ProductID], img)
		imageIDs = append(imageIDs, img.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load product images iteration: %w", err)
	}
	for pid := range out {
		for i := range out[pid] {
			index[out[pid][i].ID] = &out[pid][i]
		}
	}
	texts, err := loadTexts(ctx, s.db, imageTextsQ, imageIDs, scanImageText)
	if err != nil {
		return nil, err
	}
	for id, t := range texts {
		if img := index[id]; img != nil {
			img.Translations = t
		}
	}
	return out, nil
}

func (s *PostgresStore) getProduct(ctx context.Context, where string, args ...any) (*domain.Product, error) {
	var p domain.Product
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s;`, productColumns, where)
	if err := scanProduct(s.db.QueryRowContext(ctx, query, args...), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("store: get product: %w", err)
	}
	products := []domain.Product{p}
	if err := s.attachProductRelations(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (s *PostgresStore) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.getProduct(ctx, `id = $1`, id)
}

// GetProductBySlug resolves a product for the public detail page. With
// activeOnly an inactive row behaves exactly like a missing one.
func (s *PostgresStore) GetProductBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Product, error) {
	if activeOnly {
		return s.getProduct(ctx, `slug = $1 AND is_active = TRUE`, slug)
	}
	return s.getProduct(ctx, `slug = $1`, slug)
}

func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created := *p
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.Slug == "" {
			text, _, ok := created.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: CreateProduct requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "products", slugid.Make(text.Name), 0)
			if err != nil {
				return err
			}
			created.Slug = slug
		}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO products (slug, price, is_active, is_featured, category_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at;`,
			created.Slug, created.Price, created.IsActive, created.IsFeatured, created.CategoryID,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			if isFKViolation(err) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("store: CreateProduct insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteProductTextsQ, insertProductTextQ, created.ID, productTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated := *p
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if updated.Slug == "" {
			text, _, ok := updated.Translations.Resolve(s.defaultLang, s.defaultLang)
			if !ok {
				return fmt.Errorf("store: UpdateProduct requires at least one translation")
			}
			slug, err := nextFreeSlug(ctx, tx, "products", slugid.Make(text.Name), updated.ID)
			if err != nil {
				return err
			}
			updated.Slug = slug
		}
		err := tx.QueryRowContext(ctx, `
			UPDATE products
			SET slug = $1, price = $2, is_active = $3, is_featured = $4, category_id = $5, updated_at = CURRENT_TIMESTAMP
			WHERE id = $6
			RETURNING created_at, updated_at;`,
			updated.Slug, updated.Price, updated.IsActive, updated.IsFeatured, updated.CategoryID, updated.ID,
		).Scan(&updated.CreatedAt, &updated.UpdatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrProductNotFound
			}
			if isUniqueViolation(err, "") {
				return ErrSlugExists
			}
			if isFKViolation(err) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("store: UpdateProduct update: %w", err)
		}
		return replaceTexts(ctx, tx, deleteProductTextsQ, insertProductTextQ, updated.ID, productTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteProduct: %w", err)
	}
	return rowsAffected(res, ErrProductNotFound)
}

func (s *PostgresStore) SetProductsActive(ctx context.Context, ids []int64, active bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET is_active = $1, updated_at = CURRENT_TIMESTAMP WHERE id = ANY($2);`,
		active, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("store: SetProductsActive: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("store: SetProductsActive rows affected: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) ListProductImages(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	images, err := s.loadProductImages(ctx, []int64{productID})
	if err != nil {
		return nil, err
	}
	out := images[productID]
	if out == nil {
		out = []domain.ProductImage{}
	}
	return out, nil
}

// hasOtherPrimaryImage reports whether a different image of the same product
// is already flagged primary.
func hasOtherPrimaryImage(ctx context.Context, q queryer, productID, excludeID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM product_images WHERE product_id = $1 AND is_primary = TRUE AND id <> $2);`,
		productID, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store: primary image lookup: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) CreateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error) {
	created := *img
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if created.IsPrimary {
			taken, err := hasOtherPrimaryImage(ctx, tx, created.ProductID, 0)
			if err != nil {
				return err
			}
			if taken {
				return ErrPrimaryImageExists
			}
		}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO product_images (product_id, image, ordering, is_primary)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
			created.ProductID, created.Image, created.Ordering, created.IsPrimary,
		).Scan(&created.ID)
		if err != nil {
			if isFKViolation(err) {
				return ErrProductNotFound
			}
			return fmt.Errorf("store: CreateProductImage insert: %w", err)
		}
		return replaceTexts(ctx, tx, deleteImageTextsQ, insertImageTextQ, created.ID, imageTextRows(created.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PostgresStore) UpdateProductImage(ctx context.Context, img *domain.ProductImage) (*domain.ProductImage, error) {
	updated := *img
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if updated.IsPrimary {
			taken, err := hasOtherPrimaryImage(ctx, tx, updated.ProductID, updated.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrPrimaryImageExists
			}
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE product_images
			SET image = $1, ordering = $2, is_primary = $3
			WHERE id = $4 AND product_id = $5;`,
			updated.Image, updated.Ordering, updated.IsPrimary, updated.ID, updated.ProductID)
		if err != nil {
			return fmt.Errorf("store: UpdateProductImage update: %w", err)
		}
		if err := rowsAffected(res, ErrProductImageNotFound); err != nil {
			return err
		}
		return replaceTexts(ctx, tx, deleteImageTextsQ, insertImageTextQ, updated.ID, imageTextRows(updated.Translations))
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PostgresStore) DeleteProductImage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("store: DeleteProductImage: %w", err)
	}
	return rowsAffected(res, ErrProductImageNotFound)
}
