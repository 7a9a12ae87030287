package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/foodie/internal/domain"
	"github.com/nikolayk812/foodie/internal/port"
)

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces time.Now, tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// repositoryError maps port.ErrNotFound to notFound and wraps anything else
// as domain.ErrRepository.
func repositoryError(err error, notFound error) error {
	if errors.Is(err, port.ErrNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %w", domain.ErrRepository, err)
}
