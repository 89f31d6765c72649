package embedding

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"skillswap/internal/config"
	"skillswap/internal/domain/matching"
)

const (
	ProviderNone        = "none"
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
)

// New builds the configured provider. It returns a nil Embedder when
// embeddings are disabled so matching uses the keyword heuristic only.
func New(ctx context.Context, cfg config.EmbeddingConfig, log *zap.Logger) (matching.Embedder, error) {
	switch cfg.Provider {
	case "", ProviderNone:
		return nil, nil
	case ProviderHuggingFace:
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = matching.DefaultEmbedTimeout
		}
		return NewHuggingFace(cfg.BaseURL, cfg.Model, cfg.APIKey, &http.Client{Timeout: timeout + time.Second}, log), nil
	case ProviderGemini:
		g, err := NewGemini(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
