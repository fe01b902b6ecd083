// Package pgprobe checks reachability of the Postgres-backed remote
// store. Schema sync against it expects PostgreSQL-flavored generator
// output.
package pgprobe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Probe opens a connection to the DSN and pings it. One round trip, no
// retries; the error is returned for the caller to surface.
func Probe(ctx context.Context, dsn string) error {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("pgprobe: connect: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("pgprobe: ping: %w", err)
	}
	return nil
}
