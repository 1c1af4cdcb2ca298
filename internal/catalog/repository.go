package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"
)

// Repository reads the product catalog out of sqlite. The catalog is loaded
// once at startup; nothing writes to it afterwards.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func (r *Repository) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, title, brand, category, description, price, sale_price,
		       main_image, images, specs, rating, stock,
		       on_sale, featured, recommended
		FROM products
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var (
		p          domain.Product
		salePrice  sql.NullFloat64
		imagesJSON string
		specsJSON  string
	)

	err := rows.Scan(
		&p.ID,
		&p.Title,
		&p.Brand,
		&p.Category,
		&p.Description,
		&p.Price,
		&salePrice,
		&p.MainImage,
		&imagesJSON,
		&specsJSON,
		&p.Rating,
		&p.Stock,
		&p.OnSale,
		&p.Featured,
		&p.Recommended,
	)
	if err != nil {
		return p, fmt.Errorf("failed to scan product: %w", err)
	}

	if salePrice.Valid {
		p.SalePrice = &salePrice.Float64
	}
	if imagesJSON != "" {
		if err := json.Unmarshal([]byte(imagesJSON), &p.Images); err != nil {
			return p, fmt.Errorf("failed to decode images for product %s: %w", p.ID, err)
		}
	}
	if specsJSON != "" {
		if err := json.Unmarshal([]byte(specsJSON), &p.Specs); err != nil {
			return p, fmt.Errorf("failed to decode specs for product %s: %w", p.ID, err)
		}
	}

	return p, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
