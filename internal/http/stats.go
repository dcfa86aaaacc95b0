package http

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/cs16stats/statsweb/internal/csstats"
	"github.com/cs16stats/statsweb/internal/report"
)

// statsPage re-reads and re-renders the ranking file on every request. The
// stats mod may be rewriting the file while we read it; a torn read shows up
// as a decode error for that request, never as a partial table.
func (s *Server) statsPage(ctx *fiber.Ctx) error {
	records, err := csstats.DecodeFile(s.statsPath)
	if err != nil {
		return fmt.Errorf("failed to load ranking file: %w", err)
	}

	var table bytes.Buffer
	if err := report.RenderTable(&table, records); err != nil {
		return fmt.Errorf("failed to render stats table: %w", err)
	}

	noStore(ctx)

	return ctx.Render("templates/stats", fiber.Map{
		"PageTitle": "Player rankings",
		"Table":     template.HTML(table.String()),
	})
}
