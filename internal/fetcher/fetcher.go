// ABOUTME: Fetcher downloads a web page and reduces it to plain text
// ABOUTME: Strips script/style/markup and collapses whitespace for chunking
package fetcher

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultTimeout bounds each fetch so one slow source cannot stall a batch
const DefaultTimeout = 10 * time.Second

// userAgent mimics a desktop browser; some help sites refuse unknown clients
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Pre-compiled regular expressions for markup removal.
var (
	scriptTag    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag  = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	htmlComments = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags      = regexp.MustCompile(`<[^>]+>`)
)

// Fetcher retrieves URL content as cleaned plain text
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the given per-request timeout.
// Zero or negative timeouts fall back to DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs an HTTP GET and returns the page's plain text. Any network,
// timeout, or non-2xx failure is returned as an error; callers are expected
// to treat that as a skippable source, not a fatal condition.
func (f *Fetcher) Fetch(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	return StripMarkup(string(body)), nil
}

// StripMarkup removes script and style blocks, all remaining tags, and HTML
// entities, then collapses runs of whitespace to single spaces.
func StripMarkup(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")
	// Tags become spaces so adjacent elements don't run together
	content = allTags.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)
	return strings.Join(strings.Fields(content), " ")
}
