package server

// EmbedRequest is the wire payload for POST /embed.
// Normalize defaults to true when omitted.
type EmbedRequest struct {
	Text      string `json:"text"`
	Normalize *bool  `json:"normalize,omitempty"`
}

// BatchEmbedRequest is the wire payload for POST /batch-embed.
// Normalize applies uniformly to the whole batch and defaults to true.
type BatchEmbedRequest struct {
	Texts     []string `json:"texts"`
	Normalize *bool    `json:"normalize,omitempty"`
}

// EmbedResponse is the success payload for POST /embed.
type EmbedResponse struct {
	Embeddings []float64 `json:"embeddings"`
	Dimension  int       `json:"dimension"`
	Model      string    `json:"model"`
}

// BatchEmbedResponse is the success payload for POST /batch-embed.
type BatchEmbedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
	Dimension  int         `json:"dimension"`
	Model      string      `json:"model"`
	Count      int         `json:"count"`
}

// HealthResponse is the payload for GET /health. The endpoint reports
// degraded state with a 200; it never errors.
type HealthResponse struct {
	Status         string `json:"status"`
	ModelLoaded    bool   `json:"model_loaded"`
	StoreConnected bool   `json:"store_connected"`
}

// RootResponse is the service metadata payload for GET /.
type RootResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse is the uniform error envelope for all failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

func normalizeFlag(p *bool) bool {
	if p == nil {
		return true
	}
	return *p
}
