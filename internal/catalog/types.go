// Package catalog defines the canonical data model shared by the ingestion
// pipeline, the reconciliation store, and the matching/estimation layers.
package catalog

import "time"

// Category classifies a program into one of the fixed service areas.
type Category string

// Program categories. The set is closed; InferCategory in the extract
// package maps free text onto it.
const (
	CategoryFood       Category = "food"
	CategoryHealthcare Category = "healthcare"
	CategoryHousing    Category = "housing"
	CategoryFinancial  Category = "financial"
	CategoryChildcare  Category = "childcare"
	CategoryEmployment Category = "employment"
	CategoryEducation  Category = "education"
	CategoryDisability Category = "disability"
	CategoryVeteran    Category = "veteran"
)

// Frequency describes how often a benefit is paid out.
type Frequency string

// Benefit payout frequencies.
const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyOneTime Frequency = "one-time"
	FrequencyAnnual  Frequency = "annual"
	FrequencyOngoing Frequency = "ongoing"
	FrequencyDaily   Frequency = "daily"
)

// Eligibility is a sparse map of named predicates parsed out of free-text
// eligibility rules, e.g. "has_income_limit": true or "fpl_percentage": 130.
// A missing key means unknown, not false.
type Eligibility map[string]any

// Flag reports whether the named predicate is present and truthy.
func (e Eligibility) Flag(key string) bool {
	if e == nil {
		return false
	}
	v, ok := e[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Number returns the named predicate as a float64 if present and numeric.
func (e Eligibility) Number(key string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	switch v := e[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// ProgramRecord is one benefit or service program as produced by a source
// adapter or read back from the catalog. Optional fields are pointers so the
// reconciliation merge can tell "not supplied" apart from an explicit value;
// a nil field never overwrites stored data.
type ProgramRecord struct {
	ID int64

	// Code is the stable external key (e.g. "SNAP-FL"). Records without a
	// code are never matched against existing rows.
	Code string

	Name   string
	NameES *string

	Category    *Category
	Subcategory *string

	Description   *string
	DescriptionES *string

	BenefitsSummary   *string
	BenefitsSummaryES *string
	BenefitAmountMin  *float64
	BenefitAmountMax  *float64
	BenefitFrequency  *Frequency

	EligibilitySummary   *string
	EligibilitySummaryES *string
	Eligibility          Eligibility

	HowToApply     *string
	HowToApplyES   *string
	ApplicationURL *string
	ProcessingTime *string

	SourceURL    *string
	SourceName   *string
	LastVerified *time.Time

	Confidence  *float64
	IsActive    *bool
	IsEmergency *bool

	ServesState  []string
	ServesCounty []string

	ContactPhone   *string
	ContactEmail   *string
	ContactWebsite *string
}

// DisplayName returns the Spanish name when lang is "es" and a Spanish
// variant exists, otherwise the English name.
func (p ProgramRecord) DisplayName(lang string) string {
	if lang == "es" && p.NameES != nil && *p.NameES != "" {
		return *p.NameES
	}
	return p.Name
}

// ProviderRecord is a physical or organizational service point. Identity for
// merge purposes is (Name, City); two providers sharing both are treated as
// one.
type ProviderRecord struct {
	ID     int64
	Name   string
	NameES *string
	Type   *string

	Street *string
	City   string
	State  *string
	Zip    *string
	County *string

	Phone   *string
	Website *string

	// Hours maps a lowercase weekday name to an opening-hours string.
	Hours map[string]string

	Services  []string
	Languages []string

	IsActive bool
}

// IncomeLimit is one row of a program's income-limit table. Uniqueness is
// the triple (ProgramID, HouseholdSize, EffectiveDate).
type IncomeLimit struct {
	ProgramID     int64
	HouseholdSize int
	MonthlyLimit  float64
	FPLPercentage int
	EffectiveDate time.Time
}

// Ptr returns a pointer to v; a shorthand for building sparse records.
func Ptr[T any](v T) *T {
	return &v
}
