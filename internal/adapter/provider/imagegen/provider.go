package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/opsdesk-backend/internal/config"
	"github.com/heartmarshall/opsdesk-backend/internal/domain"
)

// Provider generates character portraits through an OpenAI-compatible
// images API.
type Provider struct {
	client *openai.Client
	model  string
	size   string
	log    *slog.Logger
}

// NewProvider creates a Provider from config. It returns nil when image
// generation is not configured; a nil Provider reports domain.ErrUnavailable.
func NewProvider(cfg config.ImageGenConfig, logger *slog.Logger) *Provider {
	if !cfg.Enabled() {
		return nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	logger.Info("image generation enabled", slog.String("model", cfg.Model))

	return &Provider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		size:   cfg.Size,
		log:    logger.With("adapter", "imagegen"),
	}
}

// GenerateImage returns the URL of an image rendered from prompt.
func (p *Provider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if p == nil {
		return "", fmt.Errorf("imagegen: %w", domain.ErrUnavailable)
	}

	p.log.DebugContext(ctx, "image request", slog.String("model", p.model), slog.Int("prompt_len", len(prompt)))

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.model,
		N:              1,
		Size:           p.size,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusBadRequest {
			return "", domain.NewValidationError("image_prompt", apiErr.Message)
		}
		p.log.ErrorContext(ctx, "image request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("imagegen: create image: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("imagegen: empty response")
	}
	return resp.Data[0].URL, nil
}
