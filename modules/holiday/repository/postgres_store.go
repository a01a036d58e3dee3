package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"equimeet/core/database"
	"equimeet/core/logger"
	"equimeet/modules/holiday/entity"
)

// PostgresStore keeps holiday cache entries in the holiday_cache table,
// one row per (country_code, year).
type PostgresStore struct {
	DB database.Database
}

func NewPostgresStore(db database.Database) *PostgresStore {
	return &PostgresStore{DB: db}
}

type cacheRow struct {
	CountryCode string    `db:"country_code"`
	Year        int       `db:"year"`
	Holidays    []byte    `db:"holidays"`
	FetchedAt   time.Time `db:"fetched_at"`
}

func (r *PostgresStore) Get(ctx context.Context, countryCode string, year int) (*entity.CacheEntry, error) {
	query := `
		SELECT country_code, year, holidays, fetched_at
		FROM holiday_cache
		WHERE country_code = $1 AND year = $2
	`

	var row cacheRow
	err := r.DB.GetContext(ctx, &row, query, countryCode, year)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PostgresStore:Get", err)
		return nil, err
	}

	var holidays []entity.Holiday
	if err := json.Unmarshal(row.Holidays, &holidays); err != nil {
		logger.Error("PostgresStore:Get:Unmarshal", err)
		return nil, err
	}

	return &entity.CacheEntry{
		CountryCode: row.CountryCode,
		Year:        row.Year,
		Holidays:    holidays,
		FetchedAt:   row.FetchedAt,
	}, nil
}

func (r *PostgresStore) Upsert(ctx context.Context, entry *entity.CacheEntry) error {
	holidays, err := json.Marshal(entry.Holidays)
	if err != nil {
		logger.Error("PostgresStore:Upsert:Marshal", err)
		return err
	}

	query := `
		INSERT INTO holiday_cache (country_code, year, holidays, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (country_code, year) DO UPDATE SET
			holidays = $3, fetched_at = $4
	`

	if err := r.DB.ExecContext(ctx, query, entry.CountryCode, entry.Year, holidays, entry.FetchedAt); err != nil {
		logger.Error("PostgresStore:Upsert", err)
		return err
	}
	return nil
}

func (r *PostgresStore) Keys(ctx context.Context) ([]entity.CacheKey, error) {
	query := `SELECT country_code, year FROM holiday_cache ORDER BY country_code, year`

	var rows []struct {
		CountryCode string `db:"country_code"`
		Year        int    `db:"year"`
	}
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		logger.Error("PostgresStore:Keys", err)
		return nil, err
	}

	keys := make([]entity.CacheKey, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, entity.CacheKey{CountryCode: row.CountryCode, Year: row.Year})
	}
	return keys, nil
}
