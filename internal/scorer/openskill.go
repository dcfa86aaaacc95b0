package scorer

import (
	"fmt"

	"github.com/eullerpereira94/openskill"

	"github.com/cs16stats/statsweb/internal/logparser"
)

const (
	openskillInitialRating      = 25.0
	openskillInitialUncertainty = openskillInitialRating / 3.0
)

// OpenSkillScorer is an alternative duel rater on the openskill model: every
// kill is a 1v1 game won by the attacker. Same match filter as GlickoScorer.
type OpenSkillScorer struct {
	MinRounds int
}

func (OpenSkillScorer) Name() string { return "OpenSkill ranking" }

func (OpenSkillScorer) Explanation() string {
	return "openskill rating where every kill counts as a won 1v1 game"
}

func (s OpenSkillScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	type playerRating struct {
		skill       float64
		uncertainty float64
	}

	ratings := make(map[int64]*playerRating)
	names := make(map[int64]logparser.Player)

	rating := func(p logparser.Player) *playerRating {
		r, ok := ratings[p.SteamID]
		if !ok {
			r = &playerRating{skill: openskillInitialRating, uncertainty: openskillInitialUncertainty}
			ratings[p.SteamID] = r
			names[p.SteamID] = p
		}
		return r
	}

	for _, match := range reports {
		if len(match.RoundReports()) < 2 {
			continue
		}
		for _, kill := range match.AllKills() {
			attacker, victim := rating(kill.Attacker), rating(kill.Victim)

			attackerTeam := openskill.NewTeam(openskill.NewRating(&openskill.NewRatingParams{
				AveragePlayerSkill:     attacker.skill,
				SkillUncertaintyDegree: attacker.uncertainty,
			}, nil))
			victimTeam := openskill.NewTeam(openskill.NewRating(&openskill.NewRatingParams{
				AveragePlayerSkill:     victim.skill,
				SkillUncertaintyDegree: victim.uncertainty,
			}, nil))

			teams := openskill.Rate([]openskill.Team{attackerTeam, victimTeam}, openskill.Options{
				Scores: []int64{1, 0},
			})

			attacker.skill = teams[0][0].AveragePlayerSkill
			attacker.uncertainty = teams[0][0].SkillUncertaintyDegree
			victim.skill = teams[1][0].AveragePlayerSkill
			victim.uncertainty = teams[1][0].SkillUncertaintyDegree
		}
	}

	confidence := confidenceByRounds(reports, s.MinRounds)

	scores := make([]PlayerScore, 0, len(ratings))
	for id, r := range ratings {
		// ordinal-style conservative estimate
		value := r.skill - 3*r.uncertainty
		scores = append(scores, PlayerScore{
			Player:     names[id],
			Value:      value,
			Display:    fmt.Sprintf("%.2f", value),
			Confidence: confidence[id],
		})
	}
	return scores
}
