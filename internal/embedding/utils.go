package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
)

// postJSON sends an HTTP POST request to the inference backend.
// It marshals the given body as JSON, attaches required headers,
// handles HTTP error codes, and decodes the response JSON into `out`.
func (p *inferenceProvider) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.serviceToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	// Treat any non-2xx status code as an error.
	if resp.StatusCode >= 300 {
		return fmt.Errorf("http %d for %s", resp.StatusCode, url)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}

	return nil
}

// meanPool averages the per-token hidden states into one vector.
func meanPool(tokens [][]float64) ([]float64, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no token states to pool")
	}

	dim := len(tokens[0])
	pooled := make([]float64, dim)
	for _, token := range tokens {
		if len(token) != dim {
			return nil, ErrInconsistentDimension
		}
		for i, v := range token {
			pooled[i] += v
		}
	}

	n := float64(len(tokens))
	for i := range pooled {
		pooled[i] /= n
	}
	return pooled, nil
}

// l2Normalize rescales the vector to unit Euclidean norm in place.
// The zero vector is returned unchanged.
func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}

	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
