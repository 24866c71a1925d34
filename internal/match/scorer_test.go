package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thingvallatech/community-assist/internal/catalog"
	"github.com/thingvallatech/community-assist/internal/match"
)

func foodProgram() catalog.ProgramRecord {
	return catalog.ProgramRecord{
		Name:     "Food Pantry",
		Category: catalog.Ptr(catalog.CategoryFood),
		Eligibility: catalog.Eligibility{
			"has_income_limit": true,
			"serves_families":  true,
		},
	}
}

func TestScore_Bounded(t *testing.T) {
	profile := match.Profile{
		Needs:         []string{"food"},
		Situations:    []string{"emergency_assistance"},
		HasChildren:   true,
		HasSenior:     true,
		HasDisability: true,
		IsVeteran:     true,
	}
	program := foodProgram()
	program.IsEmergency = catalog.Ptr(true)
	program.Eligibility = catalog.Eligibility{
		"serves_families": true,
		"serves_seniors":  true,
		"serves_disabled": true,
		"serves_veterans": true,
	}

	score := match.Score(profile, program)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_CategoryNeedMatch(t *testing.T) {
	base := match.Profile{Needs: []string{"housing"}}
	hit := match.Profile{Needs: []string{"food"}}

	program := foodProgram()
	assert.Greater(t, match.Score(hit, program), match.Score(base, program))
}

func TestScore_EmergencyBeatsNonEmergencyForCrisis(t *testing.T) {
	profile := match.Profile{Situations: []string{"eviction"}}

	emergency := foodProgram()
	emergency.IsEmergency = catalog.Ptr(true)
	regular := foodProgram()

	assert.Greater(t, match.Score(profile, emergency), match.Score(profile, regular))
}

func TestScore_SituationFlagGivesPartialCredit(t *testing.T) {
	profile := match.Profile{Situations: []string{"emergency_assistance"}}

	flagged := foodProgram()
	flagged.Eligibility = catalog.Eligibility{"emergency_assistance": true}
	plain := foodProgram()
	plain.Eligibility = catalog.Eligibility{}

	assert.Greater(t, match.Score(profile, flagged), match.Score(profile, plain))
}

func TestScore_DemographicNeutralDefault(t *testing.T) {
	// No demographic overlap scores the same as no demographic signal at
	// all; unknown programs are not buried below known mismatches.
	profile := match.Profile{HasChildren: true}

	unknown := foodProgram()
	unknown.Eligibility = catalog.Eligibility{"has_income_limit": true}
	score := match.Score(profile, unknown)

	noProfile := match.Score(match.Profile{}, unknown)
	assert.Equal(t, noProfile, score)
}

func TestScore_NoIncomeLimitScoresHigher(t *testing.T) {
	profile := match.Profile{Needs: []string{"food"}}

	open := foodProgram()
	open.Eligibility = catalog.Eligibility{"has_income_limit": false}
	limited := foodProgram()

	assert.Greater(t, match.Score(profile, open), match.Score(profile, limited))
}

func TestRank_FiltersAndSorts(t *testing.T) {
	profile := match.Profile{Needs: []string{"food"}, HasChildren: true}

	best := foodProgram()
	mid := foodProgram()
	mid.Name = "Housing Help"
	mid.Category = catalog.Ptr(catalog.CategoryHousing)
	uncategorized := catalog.ProgramRecord{Name: "Mystery"}

	matches := match.Rank(profile, []catalog.ProgramRecord{uncategorized, mid, best})
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	assert.Equal(t, "Food Pantry", matches[0].Program.Name)
	for _, m := range matches {
		assert.Greater(t, m.Score, 0.1)
		assert.Equal(t, int(m.Score*100+0.5), m.Percent)
	}
}

func TestRank_StableForTies(t *testing.T) {
	profile := match.Profile{Needs: []string{"food"}}

	first := foodProgram()
	first.Name = "Pantry A"
	second := foodProgram()
	second.Name = "Pantry B"

	matches := match.Rank(profile, []catalog.ProgramRecord{first, second})
	require.Len(t, matches, 2)
	assert.Equal(t, "Pantry A", matches[0].Program.Name)
	assert.Equal(t, "Pantry B", matches[1].Program.Name)
}
