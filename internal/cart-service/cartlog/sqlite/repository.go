// Package sqlite provides a SQLite-backed cartlog.Repository.
//
// WAL mode is enabled on Open so journal appends from mutation requests do
// not block readers of the history.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jcmexdev/bookstore-cart/internal/cart-service/cartlog"

	// Pure-Go driver; no CGO needed in the container image.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_journal (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    cart_id      TEXT    NOT NULL,
    operation    TEXT    NOT NULL,
    item_id      TEXT    NOT NULL DEFAULT '',
    detail       TEXT    NOT NULL DEFAULT '',
    outcome      TEXT    NOT NULL DEFAULT '',
    version      INTEGER NOT NULL,
    total        TEXT    NOT NULL DEFAULT '',
    request_id   TEXT    NOT NULL DEFAULT '',
    trace_id     TEXT    NOT NULL DEFAULT '',
    span_id      TEXT    NOT NULL DEFAULT '',
    recorded_at  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cart_journal_cart ON cart_journal(cart_id, version);
CREATE INDEX IF NOT EXISTS idx_cart_journal_trace ON cart_journal(trace_id);
`

var _ cartlog.Repository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
//
//	repo, err := sqlite.Open("./data/cart-journal.db")
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	// One writer connection; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Save(ctx context.Context, e *cartlog.Entry) error {
	const q = `
		INSERT INTO cart_journal
			(cart_id, operation, item_id, detail, outcome, version, total, request_id, trace_id, span_id, recorded_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		e.CartID,
		string(e.Operation),
		e.ItemID,
		e.Detail,
		e.Outcome,
		e.Version,
		e.Total,
		e.RequestID,
		e.TraceID,
		e.SpanID,
		formatTime(e.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save journal entry for %q: %w", e.CartID, err)
	}
	return nil
}

// ListByCart returns the journal of one cart, oldest first.
func (r *Repository) ListByCart(ctx context.Context, cartID string) ([]cartlog.Entry, error) {
	const q = `
		SELECT cart_id, operation, item_id, detail, outcome, version, total,
		       request_id, trace_id, span_id, recorded_at
		FROM   cart_journal
		WHERE  cart_id = ?
		ORDER  BY id ASC`

	rows, err := r.db.QueryContext(ctx, q, cartID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list journal for %q: %w", cartID, err)
	}
	defer rows.Close()

	var out []cartlog.Entry
	for rows.Next() {
		var e cartlog.Entry
		var recordedAt string
		if err := rows.Scan(
			&e.CartID, &e.Operation, &e.ItemID, &e.Detail, &e.Outcome, &e.Version, &e.Total,
			&e.RequestID, &e.TraceID, &e.SpanID, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan journal row: %w", err)
		}
		if e.RecordedAt, err = parseTime(recordedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
