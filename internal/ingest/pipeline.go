// ABOUTME: Ingestion pipeline orchestrating fetch, chunk, embed, and store
// ABOUTME: Merges new chunks into an existing index, creating one when absent
package ingest

import (
	"fmt"
	"log"

	"github.com/harper/sitechat/internal/chunker"
	"github.com/harper/sitechat/internal/index"
	"github.com/harper/sitechat/internal/models"
)

// Fetcher retrieves a URL's content as cleaned plain text
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Pipeline ingests a batch of URLs into a vector index
type Pipeline struct {
	fetcher  Fetcher
	chunker  *chunker.Chunker
	embedder index.Embedder
}

// New creates an ingestion pipeline
func New(fetcher Fetcher, ch *chunker.Chunker, embedder index.Embedder) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		chunker:  ch,
		embedder: embedder,
	}
}

// Ingest processes each URL in order: fetch, chunk, tag with the source URL.
// Unreachable sources are recorded with zero chunks and skipped; the rest of
// the batch is still ingested. When any chunks were produced, they are added
// to the index at indexPath (created on first use) in one batch and
// persisted. Re-ingesting the same URLs appends duplicate entries; that is an
// accepted property of the append-only index, not an error.
func (p *Pipeline) Ingest(urls []string, indexPath string) (*models.IngestSummary, error) {
	// Reject a bad chunk configuration before any network work
	if err := p.chunker.Validate(); err != nil {
		return nil, err
	}

	summary := &models.IngestSummary{Results: make([]models.URLResult, 0, len(urls))}
	var pending []models.Chunk

	for _, url := range urls {
		text, err := p.fetcher.Fetch(url)
		if err != nil {
			log.Printf("Skipping %s: %v", url, err)
			summary.Results = append(summary.Results, models.URLResult{URL: url, Chunks: 0, Fetched: false})
			continue
		}

		pieces, err := p.chunker.Split(text)
		if err != nil {
			return nil, fmt.Errorf("chunking %s: %w", url, err)
		}

		for i, piece := range pieces {
			pending = append(pending, models.Chunk{Text: piece, Source: url, Position: i})
		}

		summary.Results = append(summary.Results, models.URLResult{URL: url, Chunks: len(pieces), Fetched: true})
		log.Printf("Processed URL: %s - added %d chunks", url, len(pieces))
	}

	if len(pending) == 0 {
		log.Printf("No content to add to the index")
		return summary, nil
	}

	store, err := index.Open(indexPath, p.embedder)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	added, err := store.Add(pending)
	if err != nil {
		return nil, fmt.Errorf("adding chunks: %w", err)
	}

	if err := store.Save(); err != nil {
		return nil, fmt.Errorf("saving index: %w", err)
	}

	summary.TotalAdded = added
	log.Printf("Total entries in the index: %d", store.Len())
	return summary, nil
}
