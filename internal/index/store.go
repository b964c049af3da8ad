// ABOUTME: File-persisted vector index with cosine similarity search
// ABOUTME: Persists vectors and a side chunk mapping as JSON under one directory
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/sitechat/internal/models"
)

// ErrIndexNotFound is returned by Load when no index exists at the path.
// Answering requires a pre-built index; it never silently creates one.
var ErrIndexNotFound = errors.New("vector index not found")

// On-disk layout: vectors and the id-to-chunk mapping are stored side by side
const (
	vectorsFile = "vectors.json"
	mappingFile = "mapping.json"
)

// Embedder converts text into an embedding vector
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// entryMeta is the persisted chunk mapping, one record per index entry
type entryMeta struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is an append-only vector index bound to a directory path. The
// in-memory entries are shared read-only across concurrent searches; Add and
// Save are expected to run from a single ingestion process. Two processes
// saving to the same path race last-writer-wins; the store does not serialize
// cross-process writers.
type Store struct {
	path     string
	embedder Embedder

	mu      sync.RWMutex
	entries []models.IndexEntry
}

// Open loads the index at path if one exists, otherwise returns an empty
// index bound to that path. Use at ingestion time.
func Open(path string, embedder Embedder) (*Store, error) {
	s, err := Load(path, embedder)
	if errors.Is(err, ErrIndexNotFound) {
		return &Store{path: path, embedder: embedder}, nil
	}
	return s, err
}

// Load reads a previously saved index from path. Returns ErrIndexNotFound
// when no index has been persisted there. Use at answer time.
func Load(path string, embedder Embedder) (*Store, error) {
	mappingData, err := os.ReadFile(filepath.Join(path, mappingFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return nil, fmt.Errorf("reading index mapping: %w", err)
	}

	vectorsData, err := os.ReadFile(filepath.Join(path, vectorsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}
		return nil, fmt.Errorf("reading index vectors: %w", err)
	}

	var metas []entryMeta
	if err := json.Unmarshal(mappingData, &metas); err != nil {
		return nil, fmt.Errorf("unmarshaling index mapping: %w", err)
	}

	vectors := map[string][]float64{}
	if err := json.Unmarshal(vectorsData, &vectors); err != nil {
		return nil, fmt.Errorf("unmarshaling index vectors: %w", err)
	}

	entries := make([]models.IndexEntry, 0, len(metas))
	for _, m := range metas {
		vector, ok := vectors[m.ID]
		if !ok {
			return nil, fmt.Errorf("index corrupt: no vector for entry %s", m.ID)
		}
		entries = append(entries, models.IndexEntry{
			ID:        m.ID,
			Text:      m.Text,
			Source:    m.Source,
			Position:  m.Position,
			Vector:    vector,
			CreatedAt: m.CreatedAt,
		})
	}

	return &Store{path: path, embedder: embedder, entries: entries}, nil
}

// Add embeds each chunk and appends the resulting entries. Entries are never
// replaced, so re-adding the same chunks produces duplicates by design.
// Returns the number of entries added.
func (s *Store) Add(chunks []models.Chunk) (int, error) {
	added := make([]models.IndexEntry, 0, len(chunks))
	for _, chunk := range chunks {
		vector, err := s.embedder.GenerateEmbedding(chunk.Text)
		if err != nil {
			return 0, fmt.Errorf("embedding chunk from %s: %w", chunk.Source, err)
		}
		added = append(added, models.IndexEntry{
			ID:        uuid.New().String(),
			Text:      chunk.Text,
			Source:    chunk.Source,
			Position:  chunk.Position,
			Vector:    vector,
			CreatedAt: time.Now(),
		})
	}

	s.mu.Lock()
	s.entries = append(s.entries, added...)
	s.mu.Unlock()

	return len(added), nil
}

// Save persists the index so a later Open or Load reconstructs an equivalent
// one: same chunks, same metadata, same vectors.
func (s *Store) Save() error {
	s.mu.RLock()
	metas := make([]entryMeta, 0, len(s.entries))
	vectors := make(map[string][]float64, len(s.entries))
	for _, e := range s.entries {
		metas = append(metas, entryMeta{
			ID:        e.ID,
			Text:      e.Text,
			Source:    e.Source,
			Position:  e.Position,
			CreatedAt: e.CreatedAt,
		})
		vectors[e.ID] = e.Vector
	}
	s.mu.RUnlock()

	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	mappingData, err := json.MarshalIndent(metas, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index mapping: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.path, mappingFile), mappingData, 0644); err != nil {
		return fmt.Errorf("writing index mapping: %w", err)
	}

	vectorsData, err := json.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("marshaling index vectors: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.path, vectorsFile), vectorsData, 0644); err != nil {
		return fmt.Errorf("writing index vectors: %w", err)
	}

	return nil
}

// Search embeds the query with the same embedder used at ingestion and
// returns the k most similar entries, best first. An empty index yields an
// empty result, not an error.
func (s *Store) Search(query string, k int) ([]models.SearchResult, error) {
	if s.Len() == 0 {
		return []models.SearchResult{}, nil
	}

	queryVector, err := s.embedder.GenerateEmbedding(query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	s.mu.RLock()
	results := make([]models.SearchResult, 0, len(s.entries))
	for _, e := range s.entries {
		results = append(results, models.SearchResult{
			Text:            e.Text,
			Source:          e.Source,
			SimilarityScore: cosineSimilarity(queryVector, e.Vector),
		})
	}
	s.mu.RUnlock()

	// Stable sort keeps insertion order among equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if len(results) > k {
		results = results[:k]
	}

	return results, nil
}

// Len returns the number of entries in the index
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Path returns the directory the index persists to
func (s *Store) Path() string {
	return s.path
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
