package resume2pdf

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The rendering contract promises self-contained HTML. This check exists
// to catch accidental external references introduced by template edits:
// remote stylesheets, CDN fonts, analytics hooks. It only reports; it
// never blocks a render or alters its output.

// remoteURLRe matches http(s) URLs inside inline CSS (@import, url(...)).
var remoteURLRe = regexp.MustCompile(`https?://[^\s"')]+`)

// externalReferences scans rendered HTML for references that would leave
// the document: remote src/href attributes, scripts, and remote URLs in
// inline styles. Returns one human-readable finding per reference.
func externalReferences(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []string{fmt.Sprintf("compatibility scan failed: %v", err)}
	}

	var findings []string

	doc.Find("[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && isRemote(src) {
			findings = append(findings, fmt.Sprintf("external %s source: %s", nodeName(s), src))
		}
	})

	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && isRemote(href) {
			findings = append(findings, "external linked resource: "+href)
		}
	})

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			src = "(inline)"
		}
		findings = append(findings, "script element present: "+src)
	})

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		for _, url := range remoteURLRe.FindAllString(s.Text(), -1) {
			findings = append(findings, "remote URL in stylesheet: "+url)
		}
	})

	return findings
}

// reportExternalReferences logs each finding at warn level.
func reportExternalReferences(html string, logger *slog.Logger) {
	for _, finding := range externalReferences(html) {
		logger.Warn("compatibility check", "finding", finding)
	}
}

func isRemote(url string) bool {
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "//")
}

func nodeName(s *goquery.Selection) string {
	if len(s.Nodes) > 0 {
		return s.Nodes[0].Data
	}
	return "element"
}
