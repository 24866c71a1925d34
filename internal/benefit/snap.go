// Package benefit estimates monthly SNAP benefits with the simplified 2024
// Florida figures. The numbers are published tables, not a policy engine;
// every estimate carries a disclaimer.
package benefit

import "math"

// 2024 figures for Florida, by household size 1-8. Larger households are
// clamped to size 8.
var (
	// 130% of the Federal Poverty Level, monthly gross income limits.
	snapIncomeLimits = map[int]float64{
		1: 1580, 2: 2137, 3: 2694, 4: 3250,
		5: 3807, 6: 4364, 7: 4921, 8: 5478,
	}

	// Maximum monthly allotments.
	snapMaxBenefits = map[int]float64{
		1: 234, 2: 430, 3: 616, 4: 782,
		5: 929, 6: 1114, 7: 1232, 8: 1408,
	}

	// Standard deductions.
	snapStandardDeduction = map[int]float64{
		1: 198, 2: 198, 3: 198, 4: 208,
		5: 244, 6: 279, 7: 314, 8: 349,
	}
)

// Cap on the excess shelter deduction for households without an elderly or
// disabled member.
const shelterDeductionCap = 624

const disclaimer = "This is an estimate only. Actual benefits are determined by Florida DCF."

// Details itemizes the arithmetic behind an estimate.
type Details struct {
	GrossIncome       float64 `json:"gross_income"`
	StandardDeduction float64 `json:"standard_deduction"`
	ShelterDeduction  float64 `json:"shelter_deduction"`
	NetIncome         float64 `json:"net_income"`
}

// Estimate is the outcome of one SNAP calculation. When Eligible is false,
// Reason explains why and the benefit fields are zero.
type Estimate struct {
	Eligible         bool     `json:"eligible"`
	Reason           string   `json:"reason,omitempty"`
	EstimatedMonthly float64  `json:"estimated_monthly,omitempty"`
	MaximumPossible  float64  `json:"maximum_possible,omitempty"`
	IncomeLimit      float64  `json:"income_limit,omitempty"`
	YourIncome       float64  `json:"your_income,omitempty"`
	Details          *Details `json:"calculation_details,omitempty"`
	Disclaimer       string   `json:"disclaimer,omitempty"`
}

// EstimateSNAP computes a simplified monthly SNAP benefit: gross income is
// screened against 130% FPL, then reduced by the standard deduction and a
// capped excess shelter deduction, and the allotment is the size maximum
// less 30% of net income.
func EstimateSNAP(householdSize int, grossIncome, rent, utilities float64) Estimate {
	size := householdSize
	if size < 1 {
		size = 1
	}
	if size > 8 {
		size = 8
	}

	limit := snapIncomeLimits[size]
	if grossIncome > limit {
		return Estimate{
			Eligible:    false,
			Reason:      "Income exceeds 130% of Federal Poverty Level",
			IncomeLimit: limit,
			YourIncome:  grossIncome,
		}
	}

	netIncome := grossIncome - snapStandardDeduction[size]

	shelterCosts := rent + utilities
	shelterDeduction := shelterCosts - netIncome*0.5
	if shelterDeduction < 0 {
		shelterDeduction = 0
	}
	if shelterDeduction > shelterDeductionCap {
		shelterDeduction = shelterDeductionCap
	}

	netIncome -= shelterDeduction
	if netIncome < 0 {
		netIncome = 0
	}

	maxBenefit := snapMaxBenefits[size]
	benefit := maxBenefit - netIncome*0.3
	if benefit < 0 {
		benefit = 0
	}
	if benefit > maxBenefit {
		benefit = maxBenefit
	}

	return Estimate{
		Eligible:         true,
		EstimatedMonthly: math.Round(benefit),
		MaximumPossible:  maxBenefit,
		Details: &Details{
			GrossIncome:       grossIncome,
			StandardDeduction: snapStandardDeduction[size],
			ShelterDeduction:  math.Round(shelterDeduction),
			NetIncome:         math.Round(netIncome),
		},
		Disclaimer: disclaimer,
	}
}
