package extract

import (
	"strings"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

// CategoryRule pairs a keyword group with the category it implies.
type CategoryRule struct {
	Keywords []string
	Category catalog.Category
}

// CategoryRules is evaluated in order and the first matching group wins, so
// more specific groups must precede generic ones. The ordering is data, not
// code structure, so tests can assert precedence directly.
var CategoryRules = []CategoryRule{
	{Keywords: []string{"snap", "food", "nutrition", "wic"}, Category: catalog.CategoryFood},
	{Keywords: []string{"medicaid", "medicare", "health", "medical"}, Category: catalog.CategoryHealthcare},
	{Keywords: []string{"housing", "hud", "section 8", "rent", "shelter"}, Category: catalog.CategoryHousing},
	{Keywords: []string{"ssi", "ssdi", "disability"}, Category: catalog.CategoryDisability},
	{Keywords: []string{"veteran", "va "}, Category: catalog.CategoryVeteran},
	{Keywords: []string{"child", "family", "tanf"}, Category: catalog.CategoryChildcare},
	{Keywords: []string{"job", "employment", "work", "unemployment"}, Category: catalog.CategoryEmployment},
	{Keywords: []string{"education", "pell", "student"}, Category: catalog.CategoryEducation},
}

// DefaultCategory is returned when no keyword group matches.
const DefaultCategory = catalog.CategoryFinancial

// InferCategory maps a program's title and description onto a category by
// testing the lower-cased concatenation against CategoryRules in order.
func InferCategory(title, description string) catalog.Category {
	text := strings.ToLower(title + " " + description)
	for _, rule := range CategoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}
