package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/TadiwanasheNdombo/aura-document-system/gen/ent"
)

// OpenSQLite opens a file-backed or in-memory SQLite database for the
// CLI tools, where a Postgres instance is overkill. The schema is
// created on the spot.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*ent.Client, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)"
	if path == "" || path == ":memory:" {
		dsn = "file:aura?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	// in-memory databases vanish when their last connection closes
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("creating sqlite schema: %w", err)
	}
	logger.Info("sqlite database ready", "dsn", dsn)
	return client, nil
}
