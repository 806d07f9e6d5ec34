package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Embedder produces one embedding vector per input text. Implementations
// are expected to vectorize the whole batch in a single call.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// OllamaEmbedder talks to an Ollama-compatible embedding endpoint.
type OllamaEmbedder struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

type embedRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

// NewOllamaEmbedder builds the embedding client and verifies the model
// with a probe call. Model unavailability is fatal at construction time;
// there is no per-call recovery downstream.
func NewOllamaEmbedder(ctx context.Context, baseURL, model string, timeout time.Duration, logger *zap.Logger) (*OllamaEmbedder, error) {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2)

	e := &OllamaEmbedder{
		client: client,
		model:  model,
		logger: logger.Named("embedder"),
	}

	if _, err := e.Embed(ctx, []string{"probe"}); err != nil {
		return nil, fmt.Errorf("embedding model %q unavailable at %s: %w", model, baseURL, err)
	}

	e.logger.Info("embedding model ready",
		zap.String("base_url", baseURL),
		zap.String("model", model))
	return e, nil
}

// Embed returns one unit-normalized vector per input text.
func (e *OllamaEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var out embedResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(embedRequest{Model: e.model, Input: texts}).
		SetResult(&out).
		Post("/api/embed")
	if err != nil {
		return nil, fmt.Errorf("embed request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("embed request: %s: %s", resp.Status(), resp.String())
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed request: got %d vectors for %d inputs", len(out.Embeddings), len(texts))
	}

	for i := range out.Embeddings {
		normalizeVector(out.Embeddings[i])
	}
	return out.Embeddings, nil
}

// normalizeVector scales v to unit length in place, so that cosine
// similarity reduces to a dot product.
func normalizeVector(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
}

// cosineSimilarity assumes both vectors are unit-normalized.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
