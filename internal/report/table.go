// Package report renders decoded ranking records as an HTML stats table.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/samber/lo"

	"github.com/cs16stats/statsweb/internal/csstats"
)

// The fragment is meant to be embedded into a page that applies client-side
// sorting and paging, keyed on the table id.
const tableTemplate = `<table id="statsTable">
<thead>
<tr><th>#</th><th>Name</th><th>Kills</th><th>Deaths</th><th>Hits</th><th>Shots</th><th>Headshots</th><th>Score</th><th>Accuracy</th><th>Lethality</th><th>HS ratio</th><th>Defused</th><th>Explosions</th><th>Net bomb</th></tr>
</thead>
<tbody>
{{range .}}<tr><td>{{.Rank}}</td><td>{{.Name}}</td><td>{{.Kills}}</td><td>{{.Deaths}}</td><td>{{.ShotsHit}}</td><td>{{.ShotsFired}}</td><td>{{.Headshots}}</td><td>{{.Score}}</td><td>{{.Accuracy}}</td><td>{{.Lethality}}</td><td>{{.HeadshotRatio}}</td><td>{{.BombsDefused}}</td><td>{{.ExplosionsCaused}}</td><td>{{.NetBombScore}}</td></tr>
{{end}}</tbody>
</table>
`

var tableTmpl = template.Must(template.New("statsTable").Parse(tableTemplate))

type row struct {
	Rank             int
	Name             string
	Kills            uint32
	Deaths           uint32
	ShotsHit         uint32
	ShotsFired       uint32
	Headshots        uint32
	Score            int64
	Accuracy         string
	Lethality        string
	HeadshotRatio    string
	BombsDefused     uint32
	ExplosionsCaused uint32
	NetBombScore     int64
}

// RenderTable writes the stats table fragment for records, preserving input
// order: row N is rank N. Player names are HTML-escaped.
func RenderTable(w io.Writer, records []csstats.PlayerRecord) error {
	rows := lo.Map(records, func(rec csstats.PlayerRecord, i int) row {
		return row{
			Rank:             i + 1,
			Name:             rec.Name,
			Kills:            rec.Kills,
			Deaths:           rec.Deaths,
			ShotsHit:         rec.ShotsHit,
			ShotsFired:       rec.ShotsFired,
			Headshots:        rec.Headshots,
			Score:            int64(rec.Kills) - int64(rec.Deaths),
			Accuracy:         ratio(rec.ShotsHit, rec.ShotsFired),
			Lethality:        ratio(rec.Kills, rec.ShotsFired),
			HeadshotRatio:    ratio(rec.Headshots, rec.ShotsHit),
			BombsDefused:     rec.BombsDefused,
			ExplosionsCaused: rec.ExplosionsCaused,
			NetBombScore:     int64(rec.BombsDefused) - int64(rec.ExplosionsCaused),
		}
	})

	return tableTmpl.Execute(w, rows)
}

// ratio formats num/den to three decimals, or blank when the denominator is
// zero.
func ratio(num, den uint32) string {
	if den == 0 {
		return ""
	}
	return fmt.Sprintf("%.3f", float64(num)/float64(den))
}
