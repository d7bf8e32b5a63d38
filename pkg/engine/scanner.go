package engine

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// DefaultFetchTimeout bounds the single GET issued per provider
	DefaultFetchTimeout = 10 * time.Second

	maxRedirects = 5
	maxBodyBytes = 2 << 20

	scannerUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// ContentFetcher retrieves the body of a public page. The production
// implementation is HTTPFetcher; tests substitute fixture content.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher issues a single GET with a fixed timeout and a defensive
// redirect cap. No retries: a failed fetch degrades the provider's
// evidence, it never aborts the batch.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", scannerUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Scanner probes a provider website for certification and disclosure
// evidence, one finding per configured criterion.
type Scanner struct {
	Fetcher  ContentFetcher
	Criteria []CriterionSpec
}

func NewScanner(fetcher ContentFetcher, criteria []CriterionSpec) *Scanner {
	if criteria == nil {
		criteria = DefaultCriteria()
	}
	return &Scanner{Fetcher: fetcher, Criteria: criteria}
}

// Scan returns one EvidenceFinding per criterion, in criteria order. A
// missing website yields UNREACHABLE findings without touching the network;
// a failed fetch yields UNREACHABLE findings with a warning.
func (s *Scanner) Scan(ctx context.Context, websiteURL string) []EvidenceFinding {
	websiteURL = strings.TrimSpace(websiteURL)
	if websiteURL == "" {
		Debugf("no website provided, marking evidence unreachable")
		return s.unreachable("")
	}

	body, err := s.Fetcher.Fetch(ctx, websiteURL)
	if err != nil {
		fmt.Printf("[Scanner] Warning: %s unreachable: %v\n", websiteURL, err)
		return s.unreachable(websiteURL)
	}

	pg := parsePage(body)
	findings := make([]EvidenceFinding, 0, len(s.Criteria))
	for _, spec := range s.Criteria {
		findings = append(findings, matchCriterion(spec, pg, websiteURL))
	}
	return findings
}

func (s *Scanner) unreachable(sourceURL string) []EvidenceFinding {
	findings := make([]EvidenceFinding, 0, len(s.Criteria))
	for _, spec := range s.Criteria {
		findings = append(findings, EvidenceFinding{
			Tag:       spec.Tag,
			Status:    StatusUnreachable,
			SourceURL: sourceURL,
		})
	}
	return findings
}

// page is the parsed view of a fetched body: the lowercased text for
// substring matching plus the extracted anchors for PDF-link detection.
type page struct {
	raw   string
	lower string
	links []pageLink
}

type pageLink struct {
	href string // lowercased
	text string // lowercased
}

func parsePage(body string) page {
	pg := page{raw: body, lower: strings.ToLower(body)}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		// substring matching still works on the raw body
		return pg
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = attr.Val
					break
				}
			}
			pg.links = append(pg.links, pageLink{
				href: strings.ToLower(href),
				text: strings.ToLower(nodeText(n)),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return pg
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func matchCriterion(spec CriterionSpec, pg page, sourceURL string) EvidenceFinding {
	f := EvidenceFinding{Tag: spec.Tag, Status: StatusNotFound, SourceURL: sourceURL}

	for _, alias := range spec.Aliases {
		if idx := strings.Index(pg.lower, alias); idx >= 0 {
			f.Status = StatusFound
			f.Snippet = snippetAround(pg.raw, idx, len(alias))
			return f
		}
	}

	if spec.RequiresPDF {
		var pdfs []pageLink
		for _, l := range pg.links {
			if isPDFLink(l.href) {
				pdfs = append(pdfs, l)
			}
		}
		// Strongest signal: a PDF link that itself names a keyword
		for _, l := range pdfs {
			for _, kw := range spec.Keywords {
				if strings.Contains(l.href, kw) || strings.Contains(l.text, kw) {
					f.Status = StatusFound
					f.Snippet = l.href
					return f
				}
			}
		}
		// Weaker: a PDF link with the keywords in the surrounding content
		if len(pdfs) > 0 {
			for _, kw := range spec.Keywords {
				if idx := strings.Index(pg.lower, kw); idx >= 0 {
					f.Status = StatusFound
					f.Snippet = snippetAround(pg.raw, idx, len(kw))
					return f
				}
			}
		}
	}

	return f
}

func isPDFLink(href string) bool {
	if href == "" {
		return false
	}
	// drop query/fragment before checking the extension
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	return strings.HasSuffix(href, ".pdf")
}

// snippetAround returns a short window of text surrounding a match
func snippetAround(body string, idx, matchLen int) string {
	const window = 60
	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + window
	if end > len(body) {
		end = len(body)
	}
	return strings.Join(strings.Fields(body[start:end]), " ")
}
