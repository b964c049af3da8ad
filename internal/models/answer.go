// ABOUTME: AnswerResult is the per-request output of the answering flow
// ABOUTME: Sources carries at most the top-ranked chunk's origin URL
package models

// AnswerResult is returned for each answered question. Sources holds zero or
// one identifiers: the top-ranked retrieved chunk's source, and only when it
// is a URL. FollowUp is a randomly chosen encouragement string and carries no
// information about the answer.
type AnswerResult struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Sources  []string `json:"sources"`
	FollowUp string   `json:"follow_up"`
}
