// Package generator runs the question pipeline: select parameters, build
// the prompt, call the completion client, optionally refine, and resolve
// failures against the fallback policy.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abdulachik/cozyconnect/internal/catalog"
	"github.com/abdulachik/cozyconnect/internal/config"
	"github.com/abdulachik/cozyconnect/internal/prompt"
)

// ErrValidationFailed reports that the refinement stage could not produce
// an acceptable question within its attempt budget.
var ErrValidationFailed = errors.New("validation produced no acceptable question")

// Completer is the completion client the pipeline calls.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Metadata describes the parameters behind a generated question.
type Metadata struct {
	Theme       string `json:"theme"`
	Subtheme    string `json:"subtheme,omitempty"`
	SecondTheme string `json:"secondTheme,omitempty"`
	Perspective string `json:"perspective"`
	Modifier    string `json:"modifier,omitempty"`
	WordLimit   int    `json:"wordLimit,omitempty"`
}

// Result is one generated question with its metadata.
type Result struct {
	Question string   `json:"question"`
	Metadata Metadata `json:"metadata"`
	Fallback bool     `json:"-"` // true when the question came from the static table
}

// Config holds pipeline configuration.
type Config struct {
	Selector       *catalog.Selector
	Completer      Completer
	MaxRetries     int    // refinement attempt budget, default 1
	RefinementMode string // config.RefinementOff, Rewrite or Validate
	FallbackPolicy string // config.FallbackPolicyFallback or Error
}

// Generator is the question pipeline.
type Generator struct {
	selector       *catalog.Selector
	completer      Completer
	maxRetries     int
	refinementMode string
	fallbackPolicy string
}

// New creates a generator.
func New(cfg Config) *Generator {
	g := &Generator{
		selector:       cfg.Selector,
		completer:      cfg.Completer,
		maxRetries:     cfg.MaxRetries,
		refinementMode: cfg.RefinementMode,
		fallbackPolicy: cfg.FallbackPolicy,
	}
	if g.selector == nil {
		g.selector = catalog.NewSelector(catalog.SelectorConfig{})
	}
	if g.maxRetries < 1 {
		g.maxRetries = 1
	}
	if g.refinementMode == "" {
		g.refinementMode = config.RefinementOff
	}
	if g.fallbackPolicy == "" {
		g.fallbackPolicy = config.FallbackPolicyFallback
	}
	return g
}

// Generate runs the pipeline once. With the fallback policy enabled a total
// provider failure yields a canned question instead of an error; with the
// error policy the last failure propagates.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	sel := g.selector.Select()
	result := &Result{
		Metadata: Metadata{
			Theme:       sel.Theme,
			Subtheme:    sel.Subtheme,
			SecondTheme: sel.SecondTheme,
			Perspective: sel.Perspective,
			Modifier:    sel.Modifier,
			WordLimit:   sel.WordLimit,
		},
	}

	question, err := g.generate(ctx, sel)
	if err != nil {
		slog.Error("question generation failed",
			"theme", sel.Theme,
			"perspective", sel.Perspective,
			"error", err,
		)
		if g.fallbackPolicy == config.FallbackPolicyFallback && ctx.Err() == nil {
			result.Question = g.selector.Fallback(sel.Perspective)
			result.Fallback = true
			return result, nil
		}
		return nil, err
	}

	result.Question = question
	return result, nil
}

func (g *Generator) generate(ctx context.Context, sel catalog.Selection) (string, error) {
	raw, err := g.completer.Complete(ctx, prompt.BuildGeneration(sel))
	if err != nil {
		return "", fmt.Errorf("generate question: %w", err)
	}

	question := strings.TrimSpace(raw)
	if question == "" {
		return "", fmt.Errorf("provider returned an empty question")
	}

	switch g.refinementMode {
	case config.RefinementRewrite:
		return g.rewrite(ctx, question)
	case config.RefinementValidate:
		return g.validate(ctx, question)
	default:
		return question, nil
	}
}

// rewrite runs the unconditional second pass. It is best-effort: a failed
// rewrite keeps the first-pass question rather than failing the request.
func (g *Generator) rewrite(ctx context.Context, question string) (string, error) {
	refined, err := g.completer.Complete(ctx, prompt.BuildRefinement(question))
	if err != nil {
		slog.Warn("refinement pass failed, keeping first-pass question", "error", err)
		return question, nil
	}
	refined = strings.TrimSpace(refined)
	if refined == "" {
		return question, nil
	}
	return refined, nil
}

// validate runs the judge pass up to the attempt budget, following rewrites
// until a verdict parses. Exhausting the budget fails the generation.
func (g *Generator) validate(ctx context.Context, question string) (string, error) {
	for attempt := 1; attempt <= g.maxRetries; attempt++ {
		reply, err := g.completer.Complete(ctx, prompt.BuildValidation(question))
		if err != nil {
			return "", fmt.Errorf("validate question: %w", err)
		}
		if accepted, ok := prompt.ParseValidation(reply, question); ok {
			return accepted, nil
		}
		slog.Warn("validation reply had no usable verdict", "attempt", attempt, "max_retries", g.maxRetries)
	}
	return "", ErrValidationFailed
}
