package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// defaultCategories are inserted once, when the category table is empty.
var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"General", "General category"},
	{"Technology", "Technology related items"},
	{"Education", "Education related items"},
	{"Health", "Health and wellness"},
}

// CreateDefaultData seeds the default categories when the table is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int64
	if err := dbPool.QueryRow(ctx, "SELECT COUNT(*) FROM category").Scan(&count); err != nil {
		lgr.Error().Err(err).Msg("Error counting categories for seed check")
		return err
	}

	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Categories already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default categories...")
	for _, c := range defaultCategories {
		_, err := dbPool.Exec(ctx,
			"INSERT INTO category (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
			c.Name, c.Description)
		if err != nil {
			lgr.Error().Err(err).Str("name", c.Name).Msg("Error seeding category")
			return err
		}
	}

	lgr.Info().Int("count", len(defaultCategories)).Msg("Default categories seeded")
	return nil
}
