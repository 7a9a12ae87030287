package steps

import (
	"context"
)

type Step interface {
	Name() string
	Run(ctx context.Context, dataCtx DataContext) error
}

// DataContext carries values between the steps of one pipeline run.
type DataContext map[string]string

// Renderer renders a named prompt template.
type Renderer interface {
	Render(name string, values map[string]string) (string, error)
}
