package steps

import (
	"context"
	"fmt"
)

type CreatePrompt struct {
	renderer     Renderer
	templateName string
	inputKeys    []string
	promptKey    string
}

// NewCreatePrompt renders templateName with the inputKeys values of the data
// context and stores the result under promptKey.
func NewCreatePrompt(renderer Renderer, templateName string, inputKeys []string, promptKey string) (CreatePrompt, error) {
	var s CreatePrompt

	if renderer == nil {
		return s, fmt.Errorf("renderer is nil")
	}
	if templateName == "" {
		return s, fmt.Errorf("templateName is empty")
	}
	if promptKey == "" {
		return s, fmt.Errorf("promptKey is empty")
	}

	return CreatePrompt{
		renderer:     renderer,
		templateName: templateName,
		inputKeys:    inputKeys,
		promptKey:    promptKey,
	}, nil
}

func (s CreatePrompt) Name() string {
	return "create_prompt"
}

func (s CreatePrompt) Run(_ context.Context, dataCtx DataContext) error {
	templateData := make(map[string]string, len(s.inputKeys))

	for _, key := range s.inputKeys {
		value, ok := dataCtx[key]
		if !ok {
			return fmt.Errorf("key[%s] not found in data context", key)
		}
		templateData[key] = value
	}

	prompt, err := s.renderer.Render(s.templateName, templateData)
	if err != nil {
		return fmt.Errorf("renderer.Render[%s]: %w", s.templateName, err)
	}

	dataCtx[s.promptKey] = prompt

	return nil
}
