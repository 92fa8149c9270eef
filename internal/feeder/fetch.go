package feeder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// DefaultUserAgent is sent with page fetches so common bot blocks do not
// reject the request outright.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// PageFetcher fetches a web page and extracts its visible text, with line
// breaks preserved between block elements.
type PageFetcher struct {
	client    *http.Client
	userAgent string
	maxSizeMB int
}

func NewPageFetcher(timeout time.Duration, userAgent string, maxSizeMB int) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxSizeMB: maxSizeMB,
	}
}

// Fetch implements the Fetcher capability.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, pageURL)
	}

	maxBytes := int64(f.maxSizeMB) * 1024 * 1024
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pageURL, err)
	}

	text, err := visibleText(string(data))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// Some pages keep their body text outside plain block elements.
	// Fall back to article extraction before declaring the page empty.
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", pageURL, err)
	}
	article, err := readability.FromReader(strings.NewReader(string(data)), parsed)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", pageURL, err)
	}
	return article.TextContent, nil
}

// visibleText strips script/style/noscript markup and walks the body,
// inserting line breaks after block elements.
func visibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return blockText(body), nil
}

func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			if text := strings.TrimSpace(s.Text()); text != "" {
				b.WriteString(text)
				b.WriteString(" ")
			}
		case "br":
			b.WriteString("\n")
		case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "li", "ul", "ol",
			"blockquote", "pre", "table", "tr", "section", "article", "header",
			"footer", "nav", "main", "aside":
			if inner := strings.TrimSpace(blockText(s)); inner != "" {
				b.WriteString(inner)
				b.WriteString("\n")
			}
		default:
			// Inline element: recurse without a break.
			b.WriteString(blockText(s))
		}
	})
	return b.String()
}
