// ABOUTME: Chunker splits plain text into overlapping word-count-bounded windows
// ABOUTME: Overlap keeps concepts spanning a boundary intact in at least one chunk
package chunker

import (
	"errors"
	"strings"
)

// ErrInvalidChunkConfig is returned when the overlap is at least as large as
// the chunk size, which would make the window stride zero or negative.
var ErrInvalidChunkConfig = errors.New("chunk overlap must be smaller than chunk size")

// Default chunking parameters, in words
const (
	DefaultChunkSize     = 500
	DefaultOverlap       = 50
	DefaultMinChunkWords = 50
)

// Chunker produces fixed-size overlapping word windows from plain text
type Chunker struct {
	ChunkSize     int
	Overlap       int
	MinChunkWords int
}

// New creates a Chunker with the default parameters
func New() *Chunker {
	return &Chunker{
		ChunkSize:     DefaultChunkSize,
		Overlap:       DefaultOverlap,
		MinChunkWords: DefaultMinChunkWords,
	}
}

// Validate checks the chunking parameters. Callers should validate before any
// fetching or embedding work starts.
func (c *Chunker) Validate() error {
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkConfig
	}
	if c.Overlap < 0 || c.Overlap >= c.ChunkSize {
		return ErrInvalidChunkConfig
	}
	return nil
}

// Split breaks text into overlapping windows of up to ChunkSize words,
// advancing ChunkSize-Overlap words per step. Windows shorter than
// MinChunkWords are discarded, so a document with fewer qualifying words than
// the minimum yields no chunks at all. Empty text yields an empty slice.
func (c *Chunker) Split(text string) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}, nil
	}

	stride := c.ChunkSize - c.Overlap
	chunks := []string{}

	for i := 0; i < len(words); i += stride {
		end := i + c.ChunkSize
		if end > len(words) {
			end = len(words)
		}
		if end-i >= c.MinChunkWords {
			chunks = append(chunks, strings.Join(words[i:end], " "))
		}
	}

	return chunks, nil
}
