package embedding

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Logger defines the interface for logging operations in the embedding package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Client is the public entrypoint for computing embeddings.
//
// It hides provider details from the application layer and owns the
// pooling/normalization policy. Concurrent Embed calls proceed
// independently; the client mutates no shared state after Load.
type Client struct {
	cfg      *Config
	provider Provider
	logger   Logger

	loaded    atomic.Bool
	dimension atomic.Int64
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// Application code should depend on *Client, not on Provider.
func NewClient(cfg *Config, logger Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{cfg: cfg, provider: p, logger: logger}, nil
}

// NewClientWithProvider constructs a Client around an existing provider.
// Used by tests to substitute a fake backend.
func NewClientWithProvider(cfg *Config, provider Provider, logger Logger) *Client {
	return &Client{cfg: cfg, provider: provider, logger: logger}
}

// Load verifies the backend actually serves the configured model by
// running one embedding through it, and records the output dimension.
// It must succeed before the service starts accepting requests.
func (c *Client) Load(ctx context.Context) error {
	vecs, err := c.Embed(ctx, []string{"warmup"}, false)
	if err != nil {
		return fmt.Errorf("embedding: backend probe failed: %w", err)
	}

	c.dimension.Store(int64(len(vecs[0])))
	c.loaded.Store(true)

	c.logger.Info("embedding backend ready", nil, map[string]interface{}{
		"model":     c.cfg.Model,
		"dimension": len(vecs[0]),
	})
	return nil
}

// Loaded reports whether the startup probe has completed. It is never
// re-probed per request; a live inference test belongs to Load, not to
// the health path.
func (c *Client) Loaded() bool {
	return c.loaded.Load()
}

// Dimension returns the backend's output vector dimension, known after Load.
func (c *Client) Dimension() int {
	return int(c.dimension.Load())
}

// ModelName returns the configured model identifier.
func (c *Client) ModelName() string {
	return c.cfg.Model
}

// Embed computes one vector per input text: mean pooling over the
// backend's token states, then optional L2 normalization.
//
// Batches larger than the backend's per-request cap are chunked and the
// chunks fanned out concurrently; output order always matches input
// order. All vectors of a call must share one dimension.
func (c *Client) Embed(ctx context.Context, texts []string, normalize bool) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}

	chunkSize := c.cfg.MaxBackendBatch
	if chunkSize <= 0 {
		chunkSize = DefaultMaxBackendBatch
	}

	vectors := make([][]float64, len(texts))
	g, gctx := errgroup.WithContext(ctx)

	for start := 0; start < len(texts); start += chunkSize {
		end := min(start+chunkSize, len(texts))

		g.Go(func() error {
			states, err := c.provider.TokenStates(gctx, texts[start:end])
			if err != nil {
				// Full detail stays server-side; callers get the
				// uniform kind with nothing internal attached.
				c.logger.Error("inference backend call failed", err, map[string]interface{}{
					"batch_size": end - start,
					"model":      c.cfg.Model,
				})
				return ErrInferenceFailed
			}

			for i, tokens := range states {
				pooled, err := meanPool(tokens)
				if err != nil {
					c.logger.Error("pooling failed", err, nil)
					return ErrInferenceFailed
				}
				vectors[start+i] = pooled
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dim := len(vectors[0])
	for _, vec := range vectors {
		if len(vec) != dim {
			c.logger.Error("dimension mismatch within batch", nil, map[string]interface{}{
				"expected": dim,
				"got":      len(vec),
			})
			return nil, ErrInconsistentDimension
		}
	}

	if normalize {
		for i := range vectors {
			vectors[i] = l2Normalize(vectors[i])
		}
	}

	return vectors, nil
}

// Close allows the client to release any internal resources used by the provider.
func (c *Client) Close() error {
	c.loaded.Store(false)
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
