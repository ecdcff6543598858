package cartlog

import "context"

// Repository persists journal entries. Each Save appends; nothing is
// updated in place.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
}

// Discard is a Repository that drops every entry. It is used when no
// journal path is configured.
type Discard struct{}

func (Discard) Save(context.Context, *Entry) error { return nil }
