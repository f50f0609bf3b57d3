package app

import (
	"github.com/abdulachik/cozyconnect/internal/catalog"
	"github.com/abdulachik/cozyconnect/internal/config"
	"github.com/abdulachik/cozyconnect/internal/generator"
	"github.com/abdulachik/cozyconnect/internal/llm"
	"github.com/abdulachik/cozyconnect/internal/server"
)

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Provider  llm.Provider
	Client    *llm.Client
	Generator *generator.Generator
	Server    *server.Server
}

// New creates a new application instance with all dependencies wired up.
func New(cfg *config.Config) (*App, error) {
	provider, err := llm.NewProvider(llm.ProviderConfig{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		AppURL:      cfg.AppURL,
	})
	if err != nil {
		return nil, err
	}

	client := llm.NewClient(llm.ClientConfig{
		Provider:   provider,
		Timeout:    cfg.GenerationTimeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})

	selector := catalog.NewSelector(catalog.SelectorConfig{
		WordLimitMin: cfg.WordLimitMin,
		WordLimitMax: cfg.WordLimitMax,
	})

	gen := generator.New(generator.Config{
		Selector:       selector,
		Completer:      client,
		MaxRetries:     cfg.MaxRetries,
		RefinementMode: cfg.RefinementMode,
		FallbackPolicy: cfg.FallbackPolicy,
	})

	return &App{
		Config:    cfg,
		Provider:  provider,
		Client:    client,
		Generator: gen,
		Server:    server.New(cfg, gen),
	}, nil
}
