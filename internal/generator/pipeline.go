package generator

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/nikolayk812/foodie/internal/generator/steps"
	"github.com/tmc/langchaingo/llms"
)

// Data context keys shared by the pipelines built here.
const (
	SystemPromptKey = "system_prompt"
	PromptKey       = "prompt"
	ImageKey        = "image"
	ImageURLKey     = "image_url"
	LLMResponseKey  = "llm_response"
	JSONKey         = "json"
)

// Pipeline runs its steps in order. It keeps no state between runs
// and is safe for concurrent use.
type Pipeline struct {
	steps []steps.Step
}

func NewPipeline(pSteps ...steps.Step) (Pipeline, error) {
	var p Pipeline

	if len(pSteps) == 0 {
		return p, fmt.Errorf("steps are empty")
	}

	return Pipeline{steps: pSteps}, nil
}

// Run executes the steps on a copy of input and returns the resulting data context.
func (p Pipeline) Run(ctx context.Context, input steps.DataContext) (steps.DataContext, error) {
	dataCtx := make(steps.DataContext, len(input)+4)
	maps.Copy(dataCtx, input)

	for idx, step := range p.steps {
		if err := step.Run(ctx, dataCtx); err != nil {
			return nil, fmt.Errorf("step.Run[%d][%s]: %w", idx, step.Name(), err)
		}
	}

	return dataCtx, nil
}

// Prompt names the system and user templates of a pipeline and the data
// context keys the user template reads.
type Prompt struct {
	SystemTemplate string
	UserTemplate   string
	InputKeys      []string
}

// NewTextPipeline: prompts -> LLM call -> JSON extraction. The JSON ends up under JSONKey.
func NewTextPipeline(llm llms.Model, renderer steps.Renderer, prompt Prompt, callOpts ...steps.LLMCallOption) (Pipeline, error) {
	return buildPipeline(llm, renderer, prompt, false, callOpts)
}

// NewVisionPipeline is NewTextPipeline with the image under ImageKey attached to the user message.
func NewVisionPipeline(llm llms.Model, renderer steps.Renderer, prompt Prompt, callOpts ...steps.LLMCallOption) (Pipeline, error) {
	return buildPipeline(llm, renderer, prompt, true, callOpts)
}

func buildPipeline(llm llms.Model, renderer steps.Renderer, prompt Prompt, withImage bool, callOpts []steps.LLMCallOption) (Pipeline, error) {
	var results []steps.Step

	callOpts = slices.Clone(callOpts)

	if withImage {
		step, err := steps.NewNormalizeImage(ImageKey, ImageURLKey)
		if err != nil {
			return Pipeline{}, fmt.Errorf("steps.NewNormalizeImage: %w", err)
		}
		results = append(results, step)

		callOpts = append(callOpts, steps.WithImage(ImageURLKey))
	}

	systemStep, err := steps.NewCreatePrompt(renderer, prompt.SystemTemplate, nil, SystemPromptKey)
	if err != nil {
		return Pipeline{}, fmt.Errorf("steps.NewCreatePrompt[system]: %w", err)
	}
	results = append(results, systemStep)

	userStep, err := steps.NewCreatePrompt(renderer, prompt.UserTemplate, prompt.InputKeys, PromptKey)
	if err != nil {
		return Pipeline{}, fmt.Errorf("steps.NewCreatePrompt[user]: %w", err)
	}
	results = append(results, userStep)

	callOpts = append(callOpts, steps.WithSystemPrompt(SystemPromptKey))

	llmStep, err := steps.NewLLMCall(llm, PromptKey, LLMResponseKey, callOpts...)
	if err != nil {
		return Pipeline{}, fmt.Errorf("steps.NewLLMCall: %w", err)
	}
	results = append(results, llmStep)

	extractStep, err := steps.NewExtractJSON(LLMResponseKey, JSONKey)
	if err != nil {
		return Pipeline{}, fmt.Errorf("steps.NewExtractJSON: %w", err)
	}
	results = append(results, extractStep)

	return NewPipeline(results...)
}
