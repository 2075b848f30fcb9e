package store

import "context"

// Unavailable is the Store used when no database is configured. Every
// operation fails with ErrUnavailable; the server still starts so the
// health endpoints can report the missing configuration.
type Unavailable struct{}

func NewUnavailable() Unavailable { return Unavailable{} }

func (Unavailable) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Find(ctx context.Context, collection string, filter Filter, dest any) error {
	return ErrUnavailable
}

func (Unavailable) FindOne(ctx context.Context, collection string, filter Filter, dest any) error {
	return ErrUnavailable
}

func (Unavailable) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	return 0, ErrUnavailable
}

func (Unavailable) Collections(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}
