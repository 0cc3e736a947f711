package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// MockEmbedder produces deterministic pseudo-embeddings derived from a hash
// of the input text. Useful for tests and fully offline operation: identical
// texts map to identical vectors, so similarity queries stay stable.
type MockEmbedder struct {
	dim int
}

// NewMockEmbedder creates a mock embedder with the given dimensionality.
func NewMockEmbedder(dim int) *MockEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &MockEmbedder{dim: dim}
}

func (e *MockEmbedder) Name() string {
	return "mock-embed"
}

func (e *MockEmbedder) Dimensions() int {
	return e.dim
}

func (e *MockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	_ = ctx
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vectors = append(vectors, deterministicVector(text, e.dim))
	}
	return vectors, nil
}

func deterministicVector(text string, dim int) []float32 {
	vec := make([]float32, dim)
	seed := sha256.Sum256([]byte(text))

	var norm float64
	for i := 0; i < dim; i++ {
		// Re-hash the seed with the index to fill arbitrary dimensions.
		var buf [36]byte
		copy(buf[:32], seed[:])
		binary.LittleEndian.PutUint32(buf[32:], uint32(i))
		h := sha256.Sum256(buf[:])
		v := float64(binary.LittleEndian.Uint32(h[:4]))/float64(math.MaxUint32)*2 - 1
		vec[i] = float32(v)
		norm += v * v
	}

	// Normalize so cosine similarity behaves like a real embedding space.
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec
}
