package template

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed data/*.tmpl
var data embed.FS

// Template names, one per file under data/.
const (
	SuggestionSystem = "suggestion_system.tmpl"
	Suggestion       = "suggestion.tmpl"
	ExpirySystem     = "expiry_system.tmpl"
	Expiry           = "expiry.tmpl"
	IdentifySystem   = "identify_system.tmpl"
	Identify         = "identify.tmpl"
	ReceiptSystem    = "receipt_system.tmpl"
	Receipt          = "receipt.tmpl"
)

type Engine struct {
	templates *template.Template
}

func NewEngine() (*Engine, error) {
	tmpl, err := template.New("prompts").
		Option("missingkey=error").
		ParseFS(data, "data/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("template.ParseFS: %w", err)
	}

	return &Engine{templates: tmpl}, nil
}

// Render executes the named template. Missing keys are an error.
func (e *Engine) Render(name string, values map[string]string) (string, error) {
	if e.templates.Lookup(name) == nil {
		return "", fmt.Errorf("template[%s] not found", name)
	}

	var output strings.Builder
	if err := e.templates.ExecuteTemplate(&output, name, values); err != nil {
		return "", fmt.Errorf("tmpl.ExecuteTemplate[%s]: %w", name, err)
	}

	return strings.TrimSpace(output.String()), nil
}
