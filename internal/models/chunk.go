// ABOUTME: Chunk and IndexEntry structures for the vector index
// ABOUTME: Chunks are ephemeral ingestion output, entries are what the index persists
package models

import "time"

// Chunk is a word-bounded span of source text produced by the chunker.
// Position is the ordinal of the chunk within its source document.
type Chunk struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Position int    `json:"position"`
}

// IndexEntry is a chunk plus its embedding vector as stored in the index.
// Entries are append-only and never mutated in place.
type IndexEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Position  int       `json:"position"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResult is an index entry paired with its similarity score for a query.
type SearchResult struct {
	Text            string  `json:"text"`
	Source          string  `json:"source"`
	SimilarityScore float64 `json:"similarity_score"`
}
