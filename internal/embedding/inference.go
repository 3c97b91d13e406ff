package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// inferenceProvider talks to an HTTP inference backend that exposes raw
// per-token hidden states for a batch of inputs.
type inferenceProvider struct {
	baseURL      string
	serviceToken string
	model        string
	quantization string
	maxSeqLength int
	httpClient   *http.Client
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference: missing EMBEDDING_ENDPOINT")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.Endpoint, "/")

	return &inferenceProvider{
		baseURL:      base,
		serviceToken: cfg.ServiceToken,
		model:        cfg.Model,
		quantization: cfg.Quantization,
		maxSeqLength: cfg.MaxSeqLength,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// TokenStates requests the per-token hidden states for the given texts.
// Inputs longer than the configured sequence length are truncated by the
// backend; the quantization mode is forwarded for the backend to honor.
func (p *inferenceProvider) TokenStates(ctx context.Context, texts []string) ([][][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("inference: no texts provided")
	}

	reqBody := map[string]any{
		"model":      p.model,
		"inputs":     texts,
		"truncate":   true,
		"max_length": p.maxSeqLength,
		"dtype":      p.quantization,
	}

	url := fmt.Sprintf("%s/embed_all", p.baseURL)

	var parsed [][][]float64
	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed) != len(texts) {
		return nil, fmt.Errorf("inference: got %d results for %d texts", len(parsed), len(texts))
	}

	return parsed, nil
}

// Close releases idle connections held by the provider's HTTP client.
func (p *inferenceProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}
