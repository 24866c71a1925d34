// Package match scores catalog programs against a household profile. The
// score is a relevance heuristic for ordering results, not an eligibility
// determination.
package match

import (
	"sort"

	"github.com/thingvallatech/community-assist/internal/catalog"
)

// Component weights. They sum to 1.0 so a perfect match scores exactly 1.
const (
	weightCategory    = 0.35
	weightSituation   = 0.25
	weightDemographic = 0.20
	weightIncome      = 0.20
)

// Only programs above this threshold are shown to the user.
const minScore = 0.1

// Profile describes the household seeking assistance.
type Profile struct {
	HouseholdSize int      `json:"household_size"`
	IncomeRange   string   `json:"income_range"`
	Needs         []string `json:"needs"`
	Situations    []string `json:"situations"`
	HasChildren   bool     `json:"has_children"`
	HasSenior     bool     `json:"has_senior"`
	HasDisability bool     `json:"has_disability"`
	IsVeteran     bool     `json:"is_veteran"`
	County        string   `json:"county"`
}

// Match pairs a program with its relevance score.
type Match struct {
	Program catalog.ProgramRecord `json:"program"`
	Score   float64               `json:"score"`
	Percent int                   `json:"match_score"`
}

// Score rates how well a program fits the profile, in [0, 1].
func Score(profile Profile, program catalog.ProgramRecord) float64 {
	score := 0.0

	// Category: full weight when the program's category is a stated need,
	// partial credit for any categorized program.
	if program.Category != nil {
		if containsString(profile.Needs, string(*program.Category)) {
			score += weightCategory
		} else {
			score += weightCategory * 0.2
		}
	}

	// Situation: emergency programs fully match any stated crisis;
	// otherwise a program whose eligibility flags name one of the
	// situations gets half credit.
	if len(profile.Situations) > 0 {
		if program.IsEmergency != nil && *program.IsEmergency {
			score += weightSituation
		} else {
			for _, situation := range profile.Situations {
				if program.Eligibility.Flag(situation) {
					score += weightSituation * 0.5
					break
				}
			}
		}
	}

	// Demographics: quarter credit per matched group. A program with no
	// demographic signal scores a neutral 0.5 so it is not buried.
	demographic := 0.0
	if profile.HasChildren && program.Eligibility.Flag("serves_families") {
		demographic += 0.25
	}
	if profile.HasSenior && program.Eligibility.Flag("serves_seniors") {
		demographic += 0.25
	}
	if profile.HasDisability && program.Eligibility.Flag("serves_disabled") {
		demographic += 0.25
	}
	if profile.IsVeteran && program.Eligibility.Flag("serves_veterans") {
		demographic += 0.25
	}
	if demographic == 0 {
		demographic = 0.5
	}
	score += weightDemographic * demographic

	// Income: without verified income data, an income-limited program gets
	// a flat 0.7 of the weight; no income requirement is a full match.
	if program.Eligibility.Flag("has_income_limit") {
		score += weightIncome * 0.7
	} else {
		score += weightIncome
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Rank scores every program and returns those above the relevance
// threshold, best first. Ties keep the input order, which the store already
// sorts by confidence.
func Rank(profile Profile, programs []catalog.ProgramRecord) []Match {
	var matches []Match
	for _, program := range programs {
		score := Score(profile, program)
		if score > minScore {
			matches = append(matches, Match{
				Program: program,
				Score:   score,
				Percent: int(score*100 + 0.5),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
