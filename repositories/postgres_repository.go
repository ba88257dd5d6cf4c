package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tienda-hogar/models"
)

// PostgresProductStore implements the same load/save contract on a
// productos table, for deployments that outgrow the flat file.
//
//	CREATE TABLE productos (
//	    id        INT PRIMARY KEY,
//	    nombre    TEXT NOT NULL,
//	    precio    INT NOT NULL,
//	    stock     INT NOT NULL,
//	    codigo    TEXT NOT NULL DEFAULT '',
//	    categoria TEXT NOT NULL DEFAULT '',
//	    peso      DOUBLE PRECISION NOT NULL DEFAULT 0,
//	    imagen    TEXT NOT NULL DEFAULT ''
//	);
type PostgresProductStore struct {
	pool *pgxpool.Pool
}

func NewPostgresProductStore(pool *pgxpool.Pool) *PostgresProductStore {
	return &PostgresProductStore{pool: pool}
}

func (s *PostgresProductStore) Load(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, nombre, precio, stock, codigo, categoria, peso, imagen
	          FROM productos ORDER BY id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query productos: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Code, &p.Category, &p.Weight, &p.Image); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Save replaces the table contents in one transaction, mirroring the
// whole-file overwrite of the JSON driver.
func (s *PostgresProductStore) Save(ctx context.Context, products []models.Product) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE productos`); err != nil {
		return fmt.Errorf("truncate productos: %w", err)
	}

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(
			`INSERT INTO productos (id, nombre, precio, stock, codigo, categoria, peso, imagen)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, p.Name, p.Price, p.Stock, p.Code, p.Category, p.Weight, p.Image,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert productos: %w", err)
	}

	return tx.Commit(ctx)
}
