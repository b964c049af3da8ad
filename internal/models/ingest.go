// ABOUTME: Ingestion-side models: fetched documents and per-run summaries
// ABOUTME: SourceDocument is ephemeral, IngestSummary is reported to the caller
package models

// SourceDocument is the cleaned text fetched from one source. It exists only
// for the duration of an ingestion run.
type SourceDocument struct {
	Source string
	Text   string
}

// URLResult records how many chunks one URL contributed. Fetched is false when
// the source was unreachable and skipped.
type URLResult struct {
	URL     string `json:"url"`
	Chunks  int    `json:"chunks"`
	Fetched bool   `json:"fetched"`
}

// IngestSummary reports the outcome of one ingestion run, in input order.
type IngestSummary struct {
	Results    []URLResult `json:"results"`
	TotalAdded int         `json:"total_added"`
}
