package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/bmizerany/assert"

	"github.com/cs16stats/statsweb/internal/csstats"
)

func render(t *testing.T, records []csstats.PlayerRecord) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderTable(&buf, records); err != nil {
		t.Fatalf("render: %s", err)
	}
	return buf.String()
}

func cells(row string) []string {
	row = strings.TrimPrefix(strings.TrimSuffix(row, "</td></tr>"), "<tr><td>")
	return strings.Split(row, "</td><td>")
}

func dataRows(html string) []string {
	var rows []string
	for _, line := range strings.Split(html, "\n") {
		if strings.HasPrefix(line, "<tr><td>") {
			rows = append(rows, line)
		}
	}
	return rows
}

func TestRenderEmptyTable(t *testing.T) {
	html := render(t, nil)

	assert.T(t, strings.Contains(html, `<table id="statsTable">`))
	assert.T(t, strings.Contains(html, "<th>Name</th>"))
	assert.Equal(t, 0, len(dataRows(html)))
}

func TestRenderDerivedMetrics(t *testing.T) {
	html := render(t, []csstats.PlayerRecord{{
		Name:             "Mcd.",
		Kills:            42,
		Deaths:           17,
		ShotsFired:       812,
		ShotsHit:         203,
		Headshots:        19,
		BombsDefused:     3,
		ExplosionsCaused: 1,
	}})

	rows := dataRows(html)
	assert.Equal(t, 1, len(rows))

	row := cells(rows[0])
	assert.Equal(t, []string{
		"1", "Mcd.", "42", "17", "203", "812", "19",
		"25",    // score = kills - deaths
		"0.250", // accuracy = 203/812
		"0.052", // lethality = 42/812
		"0.094", // headshot ratio = 19/203
		"3", "1",
		"2", // net bomb = 3 - 1
	}, row)
}

func TestRenderGuardsZeroDenominators(t *testing.T) {
	html := render(t, []csstats.PlayerRecord{{Name: "afk", Kills: 5, Deaths: 2}})

	row := cells(dataRows(html)[0])
	assert.Equal(t, "", row[8])  // accuracy
	assert.Equal(t, "", row[9])  // lethality
	assert.Equal(t, "", row[10]) // headshot ratio
}

func TestRenderHeadshotRatioGuardIsIndependent(t *testing.T) {
	// fired shots but hit nothing: accuracy and lethality render, ratio not
	html := render(t, []csstats.PlayerRecord{{Name: "spray", ShotsFired: 100}})

	row := cells(dataRows(html)[0])
	assert.Equal(t, "0.000", row[8])
	assert.Equal(t, "0.000", row[9])
	assert.Equal(t, "", row[10])
}

func TestRenderNegativeScore(t *testing.T) {
	html := render(t, []csstats.PlayerRecord{{Name: "feeder", Kills: 3, Deaths: 10}})

	row := cells(dataRows(html)[0])
	assert.Equal(t, "-7", row[7])
}

func TestRenderPreservesOrderAndRanks(t *testing.T) {
	html := render(t, []csstats.PlayerRecord{
		{Name: "A", Kills: 1},
		{Name: "B", Kills: 99},
		{Name: "C", Kills: 50},
	})

	rows := dataRows(html)
	assert.Equal(t, 3, len(rows))
	for i, name := range []string{"A", "B", "C"} {
		row := cells(rows[i])
		assert.Equal(t, strconv.Itoa(i+1), row[0])
		assert.Equal(t, name, row[1])
	}
}

func TestRenderEscapesPlayerNames(t *testing.T) {
	html := render(t, []csstats.PlayerRecord{{Name: `<script>alert("x")</script>`}})

	assert.T(t, !strings.Contains(html, "<script>"))
	assert.T(t, strings.Contains(html, "&lt;script&gt;"))
}
