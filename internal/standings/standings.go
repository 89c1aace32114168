// Package standings fetches the external league-standings page and
// normalizes it into a headers/rows table.
package standings

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSourceURL is the upstream standings page for the team.
const DefaultSourceURL = "https://www.lzvcup.be/teams/overview/461"

const userAgent = "ene-chille-app/1.0"

// Labels used when the first header cell's sub-slots are missing, and the
// full header fallback for when the header row is structurally absent.
const (
	defaultPositionLabel = "Pos"
	defaultTeamLabel     = "Ploeg"
)

var fallbackHeaders = []string{
	"Pos", "Ploeg", "Gespeeld", "Gewonnen", "Gelijk", "Verloren",
	"Doelpunten voor", "Doelpunten tegen", "Saldo", "Ptn/M", "Punten",
}

// pointsPerMatchPattern matches the points-per-match column label
// ("Ptn/M", "ptn m", "Ptn / M") which is excluded from output.
var pointsPerMatchPattern = regexp.MustCompile(`(?i)^ptn\.?\s*/?\s*m\.?$`)

var whitespace = regexp.MustCompile(`\s+`)

// Table is the normalized standings payload.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Source  string     `json:"source"`
}

// UpstreamError reports a failed fetch of the standings page.
type UpstreamError struct {
	URL    string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client fetches and parses the standings page.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	if url == "" {
		url = DefaultSourceURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads the standings page and returns the normalized table.
// A failed request or non-2xx status yields an *UpstreamError.
func (c *Client) Fetch() (*Table, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &UpstreamError{URL: c.url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{URL: c.url, Status: resp.StatusCode}
	}

	return Parse(resp.Body, c.url)
}

// Parse extracts the standings table from the page markup.
//
// The page renders the table as a list: one item per team, with a
// header item carrying the "table-header" marker class. The first cell
// of every item holds two sub-slots (position and team); the remaining
// cells are metric columns. The points-per-match column is resolved by
// its header label and dropped from both headers and rows.
func Parse(r io.Reader, source string) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse standings page: %w", err)
	}

	posLabel, teamLabel, metricHeaders := extractHeaders(doc)

	// Resolve the column to drop once, against the header labels. Rows
	// splice their metric cells at the same metric offset; both sides
	// count metrics from the position/team split, so the offset is
	// shared by construction rather than by raw index reuse.
	dropIdx := -1
	for i, h := range metricHeaders {
		if pointsPerMatchPattern.MatchString(h) {
			dropIdx = i
			break
		}
	}
	metricHeaders = splice(metricHeaders, dropIdx)

	headers := append([]string{posLabel, teamLabel}, metricHeaders...)

	var rows [][]string
	doc.Find("ul.team-standings > li").Each(func(_ int, item *goquery.Selection) {
		if item.HasClass("table-header") {
			return
		}
		cells := item.Find("div.cell")
		if cells.Length() == 0 {
			return
		}

		first := cells.First()
		pos := cleanText(first.Find("span.position").First().Text())
		team := cleanText(first.Find("span.team").First().Text())

		var metrics []string
		cells.Slice(1, cells.Length()).Each(func(_ int, cell *goquery.Selection) {
			metrics = append(metrics, cleanText(cell.Text()))
		})
		metrics = splice(metrics, dropIdx)

		rows = append(rows, append([]string{pos, team}, metrics...))
	})

	return &Table{Headers: headers, Rows: rows, Source: source}, nil
}

// extractHeaders reads the header item's cells. The first cell is split
// into the position and team sub-labels; the rest become metric labels,
// each taken as the longest non-empty, non-"#" text among the cell's
// nested nodes. A missing header item falls back to the fixed label set.
func extractHeaders(doc *goquery.Document) (string, string, []string) {
	header := doc.Find("ul.team-standings > li.table-header").First()
	if header.Length() == 0 {
		return fallbackHeaders[0], fallbackHeaders[1], append([]string(nil), fallbackHeaders[2:]...)
	}

	cells := header.Find("div.cell")
	if cells.Length() == 0 {
		return fallbackHeaders[0], fallbackHeaders[1], append([]string(nil), fallbackHeaders[2:]...)
	}

	first := cells.First()
	posLabel := cleanText(first.Find("span.position").First().Text())
	if posLabel == "" {
		posLabel = defaultPositionLabel
	}
	teamLabel := cleanText(first.Find("span.team").First().Text())
	if teamLabel == "" {
		teamLabel = defaultTeamLabel
	}

	var metricHeaders []string
	cells.Slice(1, cells.Length()).Each(func(_ int, cell *goquery.Selection) {
		metricHeaders = append(metricHeaders, bestLabel(cell))
	})
	return posLabel, teamLabel, metricHeaders
}

// bestLabel picks the longest non-empty, non-"#" text among the cell's
// descendant nodes, falling back to the cell's own flattened text. The
// upstream markup nests abbreviated and full labels in the same cell.
func bestLabel(cell *goquery.Selection) string {
	best := ""
	consider := func(text string) {
		text = cleanText(text)
		if text == "" || text == "#" {
			return
		}
		if len(text) > len(best) {
			best = text
		}
	}
	cell.Find("*").Each(func(_ int, n *goquery.Selection) {
		consider(n.Text())
	})
	if best == "" {
		consider(cell.Text())
	}
	return best
}

func cleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

func splice(cells []string, idx int) []string {
	if idx < 0 || idx >= len(cells) {
		return cells
	}
	return append(cells[:idx], cells[idx+1:]...)
}
