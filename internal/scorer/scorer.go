// Package scorer ranks players over a collection of match reports. Each
// Strategy assigns every player a score, a display string and a confidence;
// players below a strategy's round threshold get confidence 0 and are
// dropped from tables.
package scorer

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/cs16stats/statsweb/internal/logparser"
)

type PlayerScore struct {
	Player     logparser.Player
	Value      float64
	Display    string
	Confidence float64
}

type Strategy interface {
	Name() string
	Explanation() string
	Scores(reports logparser.MatchReportCollection) []PlayerScore
}

// SortedScoreTable ranks confident scores in descending order.
func SortedScoreTable(reports logparser.MatchReportCollection, s Strategy) []PlayerScore {
	var table []PlayerScore
	for _, score := range s.Scores(reports) {
		if score.Confidence > 0 {
			table = append(table, score)
		}
	}
	slices.SortStableFunc(table, func(a, b PlayerScore) bool {
		return a.Value > b.Value
	})
	return table
}

// BestPlayer returns the top of the table, or false when nobody qualifies.
func BestPlayer(reports logparser.MatchReportCollection, s Strategy) (PlayerScore, bool) {
	table := SortedScoreTable(reports, s)
	if len(table) == 0 {
		return PlayerScore{}, false
	}
	return table[0], true
}

// statScores builds a score per player from the collected stats table,
// applying the minimum-rounds confidence filter.
func statScores(
	reports logparser.MatchReportCollection,
	minRounds int,
	score func(*logparser.PlayerStats) (value float64, display string),
) []PlayerScore {
	table := reports.CollectStats()
	scores := make([]PlayerScore, 0, len(table))
	for player, stats := range table {
		value, display := score(stats)
		confidence := 1.0
		if stats.TotalRoundsPlayed() < minRounds {
			confidence = 0
		}
		scores = append(scores, PlayerScore{
			Player:     player,
			Value:      value,
			Display:    display,
			Confidence: confidence,
		})
	}
	return scores
}

// ClassicScorer is the stock CS 1.6 scoreboard metric.
type ClassicScorer struct{}

func (ClassicScorer) Name() string        { return "Classic score" }
func (ClassicScorer) Explanation() string { return "kills - deaths" }

func (ClassicScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, 0, func(stats *logparser.PlayerStats) (float64, string) {
		score := stats.Kills - stats.Deaths
		return float64(score), fmt.Sprintf("%d", score)
	})
}

// WinRateScorer scores the percentage of rounds won.
type WinRateScorer struct {
	// MinRounds is how many rounds a player must have finished to be ranked.
	MinRounds int
}

func (WinRateScorer) Name() string        { return "Win rate" }
func (WinRateScorer) Explanation() string { return "percentage of rounds won by the player" }

func (s WinRateScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, s.MinRounds, func(stats *logparser.PlayerStats) (float64, string) {
		played := stats.TotalRoundsPlayed()
		if played == 0 {
			return 0, "0.00%"
		}
		rate := float64(stats.RoundsWon) / float64(played)
		return rate, fmt.Sprintf("%.2f%%", rate*100)
	})
}

// TimeSpentScorer scores hours spent playing rounds.
type TimeSpentScorer struct{}

func (TimeSpentScorer) Name() string        { return "Time spent" }
func (TimeSpentScorer) Explanation() string { return "hours spent on the server" }

func (TimeSpentScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, 0, func(stats *logparser.PlayerStats) (float64, string) {
		return stats.TimePlayed.Hours(), formatDuration(stats.TimePlayed)
	})
}

func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

type KillsScorer struct{}

func (KillsScorer) Name() string        { return "Kills" }
func (KillsScorer) Explanation() string { return "total kills" }

func (KillsScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, 0, func(stats *logparser.PlayerStats) (float64, string) {
		return float64(stats.Kills), fmt.Sprintf("%d", stats.Kills)
	})
}

type DeathsScorer struct{}

func (DeathsScorer) Name() string        { return "Deaths" }
func (DeathsScorer) Explanation() string { return "total deaths" }

func (DeathsScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, 0, func(stats *logparser.PlayerStats) (float64, string) {
		return float64(stats.Deaths), fmt.Sprintf("%d", stats.Deaths)
	})
}

type TotalRoundsScorer struct{}

func (TotalRoundsScorer) Name() string        { return "Total rounds" }
func (TotalRoundsScorer) Explanation() string { return "rounds finished" }

func (TotalRoundsScorer) Scores(reports logparser.MatchReportCollection) []PlayerScore {
	return statScores(reports, 0, func(stats *logparser.PlayerStats) (float64, string) {
		played := stats.TotalRoundsPlayed()
		return float64(played), fmt.Sprintf("%d", played)
	})
}
