package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/extract"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        catalog.Category
	}{
		{"snap keyword", "SNAP Benefits", "", catalog.CategoryFood},
		{"wic keyword", "WIC", "nutrition for mothers", catalog.CategoryFood},
		{"medicaid", "Medicaid Coverage", "", catalog.CategoryHealthcare},
		{"housing", "Rent Assistance", "", catalog.CategoryHousing},
		{"disability", "SSDI", "", catalog.CategoryDisability},
		{"veteran", "Veteran Support", "", catalog.CategoryVeteran},
		{"childcare", "TANF", "cash for families", catalog.CategoryChildcare},
		{"employment", "Job Training", "", catalog.CategoryEmployment},
		{"education", "Pell Grant", "", catalog.CategoryEducation},
		{"case insensitive", "FOOD PANTRY", "", catalog.CategoryFood},
		{"description only", "Helping Hands", "free food for residents", catalog.CategoryFood},
		{"no match falls back", "General Aid", "support for residents", catalog.CategoryFinancial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extract.InferCategory(tt.title, tt.description))
		})
	}
}

func TestInferCategory_Precedence(t *testing.T) {
	// "food" appears earlier in the rule table than "health", so a program
	// mentioning both is categorized as food. The ordering is load-bearing.
	got := extract.InferCategory("Food and Health Services", "")
	assert.Equal(t, catalog.CategoryFood, got)

	// Earlier rules win over later ones even when the later keyword is in
	// the title and the earlier one only in the description.
	got = extract.InferCategory("Student Aid", "help buying food")
	assert.Equal(t, catalog.CategoryFood, got)
}

func TestCategoryRules_CoverAllKeywordGroups(t *testing.T) {
	seen := map[catalog.Category]bool{}
	for _, rule := range extract.CategoryRules {
		assert.NotEmpty(t, rule.Keywords)
		seen[rule.Category] = true
	}
	// Financial is the fallback, never a keyword rule.
	assert.NotContains(t, seen, catalog.CategoryFinancial)
}
