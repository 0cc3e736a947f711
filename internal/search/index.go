package search

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	chromem "github.com/philippgille/chromem-go"

	"paperdesk/internal/embeddings"
)

// SemanticIndex scores documents against a query by embedding
// similarity, using an in-memory chromem collection per query.
type SemanticIndex struct {
	db      *chromem.DB
	embedFn chromem.EmbeddingFunc
}

// NewSemanticIndex creates a SemanticIndex over the given embedder.
func NewSemanticIndex(embedder embeddings.Embedder) *SemanticIndex {
	return &SemanticIndex{
		db:      chromem.NewDB(),
		embedFn: embeddings.ToChromemFunc(embedder),
	}
}

// Similarities returns one cosine similarity per document, in input order.
func (x *SemanticIndex) Similarities(ctx context.Context, query string, docs []string) ([]float64, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	name := "query-" + uuid.New().String()
	col, err := x.db.GetOrCreateCollection(name, nil, x.embedFn)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	defer x.db.DeleteCollection(name)

	chromDocs := make([]chromem.Document, len(docs))
	for i, doc := range docs {
		chromDocs[i] = chromem.Document{ID: strconv.Itoa(i), Content: doc}
	}
	if err := col.AddDocuments(ctx, chromDocs, 1); err != nil {
		return nil, fmt.Errorf("add documents: %w", err)
	}

	hits, err := col.Query(ctx, query, len(docs), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("chromem query: %w", err)
	}

	sims := make([]float64, len(docs))
	for _, hit := range hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= len(sims) {
			continue
		}
		sims[i] = float64(hit.Similarity)
	}
	return sims, nil
}
