// Package extract turns raw program-page markup into structured
// ProgramRecords using source-specific selector rulesets.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

// MaxFieldLength bounds every free-text field to keep storage and rendering
// cost predictable. Truncation is silent.
const MaxFieldLength = 2000

// Ruleset describes how to pull a program record out of one source's pages.
// Each adapter supplies its own.
type Ruleset struct {
	// TitleSelectors are tried in order; the first selector yielding text
	// wins. A page with no extractable title is not a program page.
	TitleSelectors []string
	// ContentSelectors locate the main content container; falls back to
	// the document body.
	ContentSelectors []string
	// MaxParagraphs caps how many leading paragraphs feed the description.
	MaxParagraphs int
	// EligibilityKeywords and ApplyKeywords tag the section headings whose
	// following content becomes the eligibility and how-to-apply text.
	EligibilityKeywords []string
	ApplyKeywords       []string
	// TitleTrimmers strip site-name suffixes and similar noise.
	TitleTrimmers []*regexp.Regexp
}

var headingTags = "h2, h3, h4"

// Extract parses one page. It returns (nil, nil) when the page has no
// extractable title; that is the "not a program page" signal, not a failure.
func Extract(html, sourceURL string, rules Ruleset) (*catalog.ProgramRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := firstText(doc, rules.TitleSelectors)
	if title == "" {
		return nil, nil
	}
	title = cleanTitle(title, rules.TitleTrimmers)

	description := leadingParagraphs(doc, rules)
	eligibility := sectionText(doc, rules.EligibilityKeywords)
	howToApply := sectionText(doc, rules.ApplyKeywords)

	category := InferCategory(title, description)

	rec := &catalog.ProgramRecord{
		Name:     title,
		Category: &category,
	}
	if description != "" {
		rec.Description = catalog.Ptr(Truncate(description))
	}
	if eligibility != "" {
		rec.EligibilitySummary = catalog.Ptr(Truncate(eligibility))
	}
	if howToApply != "" {
		rec.HowToApply = catalog.Ptr(Truncate(howToApply))
	}
	if sourceURL != "" {
		rec.SourceURL = catalog.Ptr(sourceURL)
	}
	return rec, nil
}

// Truncate silently bounds s to MaxFieldLength runes.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxFieldLength {
		return s
	}
	return string(runes[:MaxFieldLength])
}

func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func cleanTitle(title string, trimmers []*regexp.Regexp) string {
	for _, re := range trimmers {
		title = re.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}

func leadingParagraphs(doc *goquery.Document, rules Ruleset) string {
	content := doc.Selection
	for _, sel := range rules.ContentSelectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			content = found
			break
		}
	}
	if content == doc.Selection {
		if body := doc.Find("body").First(); body.Length() > 0 {
			content = body
		}
	}

	limit := rules.MaxParagraphs
	if limit <= 0 {
		limit = 5
	}
	var parts []string
	content.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
		return len(parts) < limit
	})
	return strings.Join(parts, " ")
}

// sectionText collects the paragraph and list content following any heading
// whose text contains one of the keywords, up to the next heading.
func sectionText(doc *goquery.Document, keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	var parts []string
	doc.Find(headingTags).Each(func(i int, heading *goquery.Selection) {
		headingText := strings.ToLower(strings.TrimSpace(heading.Text()))
		if !containsAny(headingText, keywords) {
			return
		}
		heading.NextUntil(headingTags).Each(func(j int, sib *goquery.Selection) {
			if !sib.Is("p, ul, ol, li") {
				return
			}
			if text := strings.TrimSpace(sib.Text()); text != "" {
				parts = append(parts, text)
			}
		})
	})
	return strings.Join(parts, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
