// Package provider assembles FieldExtractors from configuration.
package provider

import (
	"fmt"
	"log/slog"

	"github.com/elitizon/invoicepipe/internal/common"
	"github.com/elitizon/invoicepipe/internal/llm"
	"github.com/elitizon/invoicepipe/internal/llm/anthropic"
	"github.com/elitizon/invoicepipe/internal/llm/gemini"
	"github.com/elitizon/invoicepipe/internal/llm/openai"
)

// FromConfig builds a FieldExtractor from the configured providers.
// With one provider configured you get that provider's client directly;
// with several you get a fallback chain in precedence order
// (openai > gemini > anthropic) that skips rate-limited providers.
func FromConfig(cfg *common.Config, logger *slog.Logger) (llm.FieldExtractor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var extractors []llm.FieldExtractor
	var names []string

	if cfg.Providers.OpenAI.APIKey != "" {
		extractors = append(extractors, openai.NewClient(openai.Config{
			APIKey:      cfg.Providers.OpenAI.APIKey,
			Model:       cfg.Providers.OpenAI.Model,
			Temperature: cfg.Providers.Temperature,
			Timeout:     cfg.Providers.Timeout,
		}, logger))
		names = append(names, common.ProviderOpenAI)
	}
	if cfg.Providers.Gemini.APIKey != "" {
		extractors = append(extractors, gemini.NewClient(gemini.Config{
			APIKey:      cfg.Providers.Gemini.APIKey,
			Model:       cfg.Providers.Gemini.Model,
			Temperature: cfg.Providers.Temperature,
			Timeout:     cfg.Providers.Timeout,
		}, logger))
		names = append(names, common.ProviderGemini)
	}
	if cfg.Providers.Anthropic.APIKey != "" {
		extractors = append(extractors, anthropic.NewClient(anthropic.Config{
			APIKey:      cfg.Providers.Anthropic.APIKey,
			Model:       cfg.Providers.Anthropic.Model,
			Temperature: cfg.Providers.Temperature,
			Timeout:     cfg.Providers.Timeout,
		}, logger))
		names = append(names, common.ProviderAnthropic)
	}

	switch len(extractors) {
	case 0:
		return nil, fmt.Errorf("no LLM provider configured: set OPENAI_API_KEY, GEMINI_API_KEY or ANTHROPIC_API_KEY")
	case 1:
		logger.Info("llm.provider.selected", "provider", names[0])
		return extractors[0], nil
	default:
		logger.Info("llm.provider.fallback_chain", "providers", names)
		return llm.NewFallbackExtractor(extractors, names, logger), nil
	}
}
