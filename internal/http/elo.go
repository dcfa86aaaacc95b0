package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/cs16stats/statsweb/internal/logparser"
	"github.com/cs16stats/statsweb/internal/scorer"
)

type rankingEntry struct {
	Position int
	Name     string
	Rating   string
}

// eloPage re-parses the server logs and renders the duel rating table.
func (s *Server) eloPage(ctx *fiber.Ctx) error {
	reports, err := logparser.ParseDirectory(s.logsDir)
	if err != nil {
		return fmt.Errorf("failed to parse server logs: %w", err)
	}

	table := scorer.SortedScoreTable(reports, s.duelScorer)

	entries := lo.Map(table, func(score scorer.PlayerScore, i int) rankingEntry {
		return rankingEntry{
			Position: i + 1,
			Name:     score.Player.Nickname,
			Rating:   score.Display,
		}
	})

	noStore(ctx)

	return ctx.Render("templates/elo", fiber.Map{
		"PageTitle":   s.duelScorer.Name(),
		"Explanation": s.duelScorer.Explanation(),
		"Entries":     entries,
	})
}
