package extract_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/extract"
)

var testRules = extract.Ruleset{
	TitleSelectors:      []string{"h1", "title"},
	ContentSelectors:    []string{".content"},
	MaxParagraphs:       5,
	EligibilityKeywords: []string{"eligibility", "qualify"},
	ApplyKeywords:       []string{"apply", "how to"},
}

func TestExtract_FullPage(t *testing.T) {
	html := `
		<html><body>
		<h1>Food Assistance Program</h1>
		<div class="content">
			<p>Helps families buy groceries.</p>
			<p>Benefits load onto an EBT card.</p>
		</div>
		<h2>Eligibility Requirements</h2>
		<p>Income must be below 130% FPL.</p>
		<ul><li>Florida resident</li></ul>
		<h2>How to Apply</h2>
		<p>Apply online through ACCESS Florida.</p>
		</body></html>`

	rec, err := extract.Extract(html, "https://example.org/snap", testRules)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "Food Assistance Program", rec.Name)
	require.NotNil(t, rec.Category)
	assert.Equal(t, catalog.CategoryFood, *rec.Category)
	require.NotNil(t, rec.Description)
	assert.Contains(t, *rec.Description, "Helps families buy groceries.")
	require.NotNil(t, rec.EligibilitySummary)
	assert.Contains(t, *rec.EligibilitySummary, "130% FPL")
	assert.Contains(t, *rec.EligibilitySummary, "Florida resident")
	require.NotNil(t, rec.HowToApply)
	assert.Contains(t, *rec.HowToApply, "ACCESS Florida")
	require.NotNil(t, rec.SourceURL)
	assert.Equal(t, "https://example.org/snap", *rec.SourceURL)
}

func TestExtract_NoTitleIsNotAProgramPage(t *testing.T) {
	rec, err := extract.Extract(`<html><body><p>nothing here</p></body></html>`, "u", testRules)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestExtract_SectionStopsAtNextHeading(t *testing.T) {
	html := `
		<html><body>
		<h1>Some Program</h1>
		<h2>Eligibility</h2>
		<p>Must be a resident.</p>
		<h2>Contact</h2>
		<p>Call us at 211.</p>
		</body></html>`

	rec, err := extract.Extract(html, "", testRules)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.EligibilitySummary)
	assert.Contains(t, *rec.EligibilitySummary, "Must be a resident.")
	assert.NotContains(t, *rec.EligibilitySummary, "Call us")
}

func TestExtract_ParagraphLimit(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><h1>Wordy Program</h1><div class="content">`)
	for i := 0; i < 10; i++ {
		b.WriteString("<p>paragraph</p>")
	}
	b.WriteString(`</div></body></html>`)

	rules := testRules
	rules.MaxParagraphs = 3
	rec, err := extract.Extract(b.String(), "", rules)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Description)
	assert.Equal(t, 3, strings.Count(*rec.Description, "paragraph"))
}

func TestTruncate(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, extract.Truncate(short))

	long := strings.Repeat("x", extract.MaxFieldLength+50)
	got := extract.Truncate(long)
	assert.Len(t, []rune(got), extract.MaxFieldLength)

	// Multibyte runes count as one character, never split mid-rune.
	wide := strings.Repeat("ñ", extract.MaxFieldLength+1)
	got = extract.Truncate(wide)
	assert.Len(t, []rune(got), extract.MaxFieldLength)
	assert.Equal(t, strings.Repeat("ñ", extract.MaxFieldLength), got)
}
