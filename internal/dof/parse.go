package dof

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Selector cascades mirror the DOF's inconsistent markup: the first
// selector that yields usable elements wins.
var (
	resultSelectors = []string{
		"tr",
		".resultado-busqueda",
		".item-resultado",
		".search-result",
		".documento-item",
		"div[class*=result]",
		"div[class*=documento]",
	}

	publicationSelectors = []string{
		".publicacion-reciente",
		".ultima-publicacion",
		".item-publicacion",
		"a[href*=nota_detalle]",
		"table tr",
		"div[class*=nota]",
		"div[class*=publicacion]",
	}

	contentSelectors = []string{
		".documento-contenido",
		".contenido-documento",
		".texto-documento",
		".articulo-texto",
		".document-body",
		"main",
		".content",
		"#content",
	}

	skipTitleWords = []string{"login", "usuario", "clave", "votar"}

	whitespaceRe = regexp.MustCompile(`\s+`)
)

func parseSearchResults(html, baseURL string, limit int) ([]DocumentSummary, error) {
	return parseCascade(html, baseURL, limit, resultSelectors)
}

func parsePublicationList(html, baseURL string, limit int) ([]DocumentSummary, error) {
	return parseCascade(html, baseURL, limit, publicationSelectors)
}

func parseCascade(html, baseURL string, limit int, selectors []string) ([]DocumentSummary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var results []DocumentSummary
	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if summary := extractSummary(sel, baseURL); summary != nil {
				results = append(results, *summary)
			}
			return len(results) < limit
		})
		if len(results) > 0 {
			break
		}
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func extractSummary(sel *goquery.Selection, baseURL string) *DocumentSummary {
	title := cleanText(sel.Find(".titulo, h3, .nombre-documento, a, td a, strong").First().Text())
	if title == "" {
		text := cleanText(sel.Text())
		if len(text) > 10 && len(text) < 200 {
			title = text
		}
	}

	if len(title) < 5 {
		return nil
	}
	lower := strings.ToLower(title)
	for _, skip := range skipTitleWords {
		if strings.Contains(lower, skip) {
			return nil
		}
	}

	docURL := ""
	if href, ok := sel.Attr("href"); ok && href != "" {
		// The selection is the anchor itself.
		docURL = resolveURL(baseURL, href)
	} else if href, ok := sel.Find("a").First().Attr("href"); ok && href != "" {
		docURL = resolveURL(baseURL, href)
	}

	date := ""
	if text := cleanText(sel.Find(".fecha, .date, td:nth-child(2), td:nth-child(3)").First().Text()); looksLikeDate(text) {
		date = text
	}

	summary := ""
	if text := cleanText(sel.Find(".resumen, .descripcion, .summary, td:nth-child(4), td:last-child").First().Text()); len(text) > 10 {
		summary = truncate(text, 200)
	}

	docType := "Documento"
	if text := cleanText(sel.Find(".tipo, .type, td:first-child").First().Text()); text != "" && len(text) < 50 {
		docType = text
	}

	if docURL == "" {
		docURL = baseURL + "/busqueda_detalle.php"
	}

	return &DocumentSummary{
		Title:   title,
		Date:    date,
		URL:     docURL,
		Summary: summary,
		Type:    docType,
	}
}

func resolveURL(baseURL, href string) string {
	switch {
	case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
		return href
	case strings.HasPrefix(href, "/"):
		return baseURL + href
	default:
		return baseURL + "/" + href
	}
}

func looksLikeDate(text string) bool {
	if len(text) <= 4 {
		return false
	}
	return strings.ContainsAny(text, "0123456789")
}

// extractContent pulls the document body text, falling back to the whole
// page when no known content container is present.
func extractContent(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			var parts []string
			sel.Each(func(_ int, s *goquery.Selection) {
				parts = append(parts, s.Text())
			})
			return cleanText(strings.Join(parts, " ")), nil
		}
	}

	return cleanText(doc.Find("body").Text()), nil
}

func cleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// truncate caps text at max bytes without splitting a rune.
func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
