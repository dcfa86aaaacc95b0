package scorer

import (
	"fmt"
	"math"

	"github.com/cs16stats/statsweb/internal/logparser"
)

const (
	glickoInitialRating = 1500.0
	glickoInitialRD     = 350.0
	// glickoDecay widens the rating deviation of players who sat a match
	// out, so confidence in stale ratings drops over time.
	glickoDecay = 34.6

	glickoQ = math.Ln10 / 400
)

type glickoRating struct {
	rating float64
	rd     float64
}

func newGlickoRating() *glickoRating {
	return &glickoRating{rating: glickoInitialRating, rd: glickoInitialRD}
}

// registerWin rates a single finished duel, updating winner and loser from
// each other's pre-duel values.
func (winner *glickoRating) registerWin(loser *glickoRating) {
	w, l := *winner, *loser
	winner.update(l, 1)
	loser.update(w, 0)
}

// update applies the Glicko-1 single-game update against opponent with
// outcome s (1 = win, 0 = loss).
func (r *glickoRating) update(opponent glickoRating, s float64) {
	g := 1 / math.Sqrt(1+3*glickoQ*glickoQ*opponent.rd*opponent.rd/(math.Pi*math.Pi))
	e := 1 / (1 + math.Pow(10, -g*(r.rating-opponent.rating)/400))
	dSquaredInv := glickoQ * glickoQ * g * g * e * (1 - e)

	denom := 1/(r.rd*r.rd) + dSquaredInv
	r.rating += glickoQ / denom * g * (s - e)
	r.rd = math.Sqrt(1 / denom)
}

// didNotCompete grows the deviation back toward its initial value.
func (r *glickoRating) didNotCompete() {
	r.rd = math.Min(math.Sqrt(r.rd*r.rd+glickoDecay*glickoDecay), glickoInitialRD)
}

// GlickoScorer treats every kill as a rated duel between the two involved
// players, with the killer as the winner. Matches with fewer than two
// finished rounds are considered noise and skipped.
type GlickoScorer struct {
	MinRounds int
}

func (GlickoScorer) Name() string { return "ELO ranking" }

func (GlickoScorer) Explanation() string {
	return "dynamic rating similar to chess ELO: killing a player rated far above you earns more points, dying to one rated below you costs more"
}

func (s GlickoScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	ratings := make(map[int64]*glickoRating)
	names := make(map[int64]logparser.Player)

	rating := func(p logparser.Player) *glickoRating {
		r, ok := ratings[p.SteamID]
		if !ok {
			r = newGlickoRating()
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
			rating(kill.Attacker).registerWin(rating(kill.Victim))
		}

		present := make(map[int64]bool)
		for _, p := range match.AllPlayers() {
			present[p.SteamID] = true
		}
		for id, r := range ratings {
			if !present[id] {
				r.didNotCompete()
			}
		}
	}

	confidence := confidenceByRounds(reports, s.MinRounds)

	scores := make([]PlayerScore, 0, len(ratings))
	for id, r := range ratings {
		lower, upper := r.rating-1.96*r.rd, r.rating+1.96*r.rd
		scores = append(scores, PlayerScore{
			Player: names[id],
			// sorting by the interval's lower bound punishes uncertainty
			Value:      lower,
			Display:    fmt.Sprintf("[%.2f, %.2f]", lower, upper),
			Confidence: confidence[id],
		})
	}
	return scores
}

func confidenceByRounds(reports logparser.MatchReportCollection, minRounds int) map[int64]float64 {
	confidence := make(map[int64]float64)
	for player, stats := range reports.CollectStats() {
		if stats.TotalRoundsPlayed() >= minRounds {
			confidence[player.SteamID] = 1
		}
	}
	return confidence
}
