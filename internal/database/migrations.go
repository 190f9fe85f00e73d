package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema creates the tables the login-as-customer action reads and writes.
// Every statement is idempotent so Migrate can run on each start.
const schema = `
CREATE TABLE IF NOT EXISTS store (
    store_id  BIGINT PRIMARY KEY,
    code      TEXT NOT NULL UNIQUE,
    name      TEXT NOT NULL,
    base_url  TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS customer_entity (
    entity_id  BIGSERIAL PRIMARY KEY,
    email      TEXT NOT NULL,
    firstname  TEXT NOT NULL DEFAULT '',
    lastname   TEXT NOT NULL DEFAULT '',
    store_id   BIGINT NOT NULL REFERENCES store(store_id),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS login_as_customer_assistance_allowed (
    customer_id BIGINT PRIMARY KEY REFERENCES customer_entity(entity_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS login_as_customer (
    id          TEXT PRIMARY KEY,
    customer_id BIGINT NOT NULL,
    admin_id    BIGINT NOT NULL,
    secret_hash TEXT NOT NULL UNIQUE,
    created_at  TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_login_as_customer_admin_id ON login_as_customer(admin_id);
CREATE INDEX IF NOT EXISTS idx_login_as_customer_created_at ON login_as_customer(created_at);
`

// Migrate applies the schema to the database behind pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
