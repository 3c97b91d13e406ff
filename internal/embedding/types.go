package embedding

import "context"

// Provider is the contract to the external inference backend.
type Provider interface {
	// TokenStates runs the forward pass for the given texts and returns
	// the raw per-token hidden states, one [tokens][dims] matrix per
	// input text, in input order.
	TokenStates(ctx context.Context, texts []string) ([][][]float64, error)
}
