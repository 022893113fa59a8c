// Package provider resolves the translation service configuration for one
// call. Environment variables are re-read on every resolution: credentials
// may change between invocations, so nothing here is cached.
package provider

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Provider profile names accepted by the service argument.
const (
	OpenRouter = "openrouter"
	OpenAI     = "openai"
)

// Hardcoded defaults applied when neither argument nor environment sets a value.
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterModel   = "google/gemini-2.5-flash"
	DefaultOpenAIModel       = "gpt-4o-mini"
)

// EnvConfig holds provider settings read from the process environment.
type EnvConfig struct {
	// OpenRouterAPIKey authenticates against OpenRouter.
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	// OpenRouterBaseURL is the OpenRouter endpoint.
	OpenRouterBaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	// OpenRouterModel is the default OpenRouter model.
	OpenRouterModel string `env:"OPENROUTER_MODEL" envDefault:"google/gemini-2.5-flash"`
	// OpenAIAPIKey authenticates against OpenAI.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	// OpenAIBaseURL overrides the OpenAI endpoint.
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	// OpenAIModel is the default OpenAI model.
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// LoadEnv parses provider environment variables.
func LoadEnv() (EnvConfig, error) {
	return env.ParseAs[EnvConfig]()
}

// ServiceConfig is the concrete configuration for one translation attempt.
type ServiceConfig struct {
	// Service is the provider profile name.
	Service string
	// APIKey is the credential for the selected provider.
	APIKey string
	// BaseURL is the provider endpoint.
	BaseURL string
	// Model is the model used for translation.
	Model string
}

// UnknownServiceError indicates a service argument outside the known profiles.
type UnknownServiceError struct {
	// Service is the rejected value.
	Service string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("Unknown service: %s. Use '%s' or '%s'", e.Service, OpenRouter, OpenAI)
}

// MissingKeyError indicates the selected provider has no credential configured.
type MissingKeyError struct {
	// EnvVar is the absent environment variable.
	EnvVar string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.EnvVar)
}

// Resolve merges the per-call service selection and model override with
// environment-derived defaults. An explicit modelOverride always wins over the
// environment value; the credential check runs before any engine work so a
// misconfigured provider never reaches engine initialization.
func Resolve(service, modelOverride string, cfg EnvConfig) (ServiceConfig, error) {
	switch service {
	case OpenRouter:
		if cfg.OpenRouterAPIKey == "" {
			return ServiceConfig{}, &MissingKeyError{EnvVar: "OPENROUTER_API_KEY"}
		}
		model := modelOverride
		if model == "" {
			model = cfg.OpenRouterModel
		}
		return ServiceConfig{
			Service: OpenRouter,
			APIKey:  cfg.OpenRouterAPIKey,
			BaseURL: cfg.OpenRouterBaseURL,
			Model:   model,
		}, nil
	case OpenAI:
		if cfg.OpenAIAPIKey == "" {
			return ServiceConfig{}, &MissingKeyError{EnvVar: "OPENAI_API_KEY"}
		}
		model := modelOverride
		if model == "" {
			model = cfg.OpenAIModel
		}
		return ServiceConfig{
			Service: OpenAI,
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   model,
		}, nil
	default:
		return ServiceConfig{}, &UnknownServiceError{Service: service}
	}
}

// Status is the environment-derived capability snapshot returned by the
// get_translation_status tool. API keys are reported as booleans only.
type Status struct {
	// Service is the server product name.
	Service string `json:"service"`
	// Version is the server version.
	Version string `json:"version"`
	// OpenRouterConfigured reports whether an OpenRouter key is present.
	OpenRouterConfigured bool `json:"openrouter_configured"`
	// OpenRouterModel is the resolved default OpenRouter model.
	OpenRouterModel string `json:"openrouter_model"`
	// OpenRouterBaseURL is the resolved OpenRouter endpoint.
	OpenRouterBaseURL string `json:"openrouter_base_url"`
	// OpenAIConfigured reports whether an OpenAI key is present.
	OpenAIConfigured bool `json:"openai_configured"`
	// OpenAIModel is the resolved default OpenAI model.
	OpenAIModel string `json:"openai_model"`
	// SupportedLanguages is the fixed language catalogue.
	SupportedLanguages []string `json:"supported_languages"`
}

// SupportedLanguages is the fixed catalogue of language codes the engine
// handles well.
var SupportedLanguages = []string{
	"en (English)",
	"zh (Chinese)",
	"vi (Vietnamese)",
	"ja (Japanese)",
	"ko (Korean)",
	"es (Spanish)",
	"fr (French)",
	"de (German)",
	"pt (Portuguese)",
	"ru (Russian)",
	"ar (Arabic)",
	"th (Thai)",
	"id (Indonesian)",
}

// Snapshot builds the capability snapshot from the given environment config.
func Snapshot(cfg EnvConfig, name, version string) Status {
	return Status{
		Service:              name,
		Version:              version,
		OpenRouterConfigured: cfg.OpenRouterAPIKey != "",
		OpenRouterModel:      cfg.OpenRouterModel,
		OpenRouterBaseURL:    cfg.OpenRouterBaseURL,
		OpenAIConfigured:     cfg.OpenAIAPIKey != "",
		OpenAIModel:          cfg.OpenAIModel,
		SupportedLanguages:   SupportedLanguages,
	}
}
