// ABOUTME: Retrieval-augmented answering: retrieve top chunks, synthesize an answer
// ABOUTME: Falls back to a fixed apology without an LLM call when nothing matches
package answer

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/harper/sitechat/internal/models"
)

var (
	// ErrEmptyQuestion rejects blank questions before any retrieval
	ErrEmptyQuestion = errors.New("question must not be empty")
	// ErrIndexNotInitialized signals that no index was loaded at startup.
	// The service still runs; answering is just not ready yet.
	ErrIndexNotInitialized = errors.New("vector index not initialized")
)

// NoMatchAnswer is returned verbatim when retrieval finds nothing
const NoMatchAnswer = "I'm sorry, I couldn't find relevant information."

// followUpMessages are cosmetic encouragements appended to every answer.
// One is chosen uniformly at random, independent of the question.
var followUpMessages = []string{
	"Feel free to challenge me with your next question!",
	"What else can I assist you with today?",
	"I'm here to help - what's next on your mind?",
	"Would you like to dig deeper into anything?",
	"Curious about anything else on these pages?",
}

// Searcher retrieves the most relevant indexed chunks for a query
type Searcher interface {
	Search(query string, k int) ([]models.SearchResult, error)
}

// Synthesizer produces a natural-language answer grounded in context chunks
type Synthesizer interface {
	SynthesizeAnswer(ctx context.Context, question string, contexts []string) (string, error)
}

// Answerer answers questions against a loaded vector index
type Answerer struct {
	searcher    Searcher
	synthesizer Synthesizer
	topK        int
}

// New creates an Answerer. A nil searcher means the index was never loaded;
// Answer will report ErrIndexNotInitialized per request rather than the
// constructor failing, so the surrounding service can still start.
func New(searcher Searcher, synthesizer Synthesizer, topK int) *Answerer {
	if topK <= 0 {
		topK = 5
	}
	return &Answerer{
		searcher:    searcher,
		synthesizer: synthesizer,
		topK:        topK,
	}
}

// Ready reports whether an index is loaded and answering can proceed
func (a *Answerer) Ready() bool {
	return a.searcher != nil
}

// Answer runs the retrieval-augmented flow for one question: retrieve top-K
// chunks, then either synthesize an answer from them or fall back to the
// fixed apology when nothing was retrieved. Source attribution reports only
// the top-ranked chunk's source, and only when it is a URL.
func (a *Answerer) Answer(ctx context.Context, question string) (*models.AnswerResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}
	if a.searcher == nil {
		return nil, ErrIndexNotInitialized
	}

	results, err := a.searcher.Search(question, a.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieving chunks: %w", err)
	}

	if len(results) == 0 {
		// Nothing to ground an answer in; skip the LLM call entirely
		return &models.AnswerResult{
			Question: question,
			Answer:   NoMatchAnswer,
			Sources:  []string{},
			FollowUp: randomFollowUp(),
		}, nil
	}

	contexts := make([]string, len(results))
	for i, r := range results {
		contexts[i] = r.Text
	}

	synthesized, err := a.synthesizer.SynthesizeAnswer(ctx, question, contexts)
	if err != nil {
		return nil, fmt.Errorf("synthesizing answer: %w", err)
	}

	sources := []string{}
	if top := results[0].Source; strings.HasPrefix(top, "http") {
		sources = append(sources, top)
	}

	return &models.AnswerResult{
		Question: question,
		Answer:   synthesized,
		Sources:  sources,
		FollowUp: randomFollowUp(),
	}, nil
}

func randomFollowUp() string {
	return followUpMessages[rand.IntN(len(followUpMessages))]
}
