package faqsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// PostgresSource reads records from a table shaped as
// (id, question, answer, category, keywords text[]), ordered by id.
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgresSource constructs the source. The table name must already be a
// validated identifier.
func NewPostgresSource(pool *pgxpool.Pool, table string) *PostgresSource {
	if table == "" {
		table = "faq_entries"
	}
	return &PostgresSource{pool: pool, table: table}
}

// Name implements faq.Source.
func (s *PostgresSource) Name() string {
	return "postgres:" + s.table
}

// Load implements faq.Source.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.Record, error) {
	rows, err := s.pool.Query(ctx, s.selectQuery())
	if err != nil {
		return nil, fmt.Errorf("query faq entries: %w", err)
	}
	defer rows.Close()

	var records []faq.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq entry: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PostgresSource) selectQuery() string {
	return fmt.Sprintf(`
		SELECT question, answer, category, COALESCE(keywords, '{}')
		FROM %s
		ORDER BY id
	`, s.table)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (faq.Record, error) {
	var rec faq.Record
	if err := row.Scan(&rec.Question, &rec.Answer, &rec.Category, &rec.Keywords); err != nil {
		return faq.Record{}, err
	}
	return rec, nil
}

var _ faq.Source = (*PostgresSource)(nil)
