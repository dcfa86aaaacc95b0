package logparser

import (
	"testing"
	"time"

	"github.com/bmizerany/assert"
)

const sampleLog = `L 04/09/2020 - 20:47:30: Loading map "awp_india"
L 04/09/2020 - 20:47:31: World triggered "Game_Commencing"
L 04/09/2020 - 20:47:32: "Mcd.<1><STEAM_0:0:538382878><>" joined team "CT"
L 04/09/2020 - 20:47:33: "Rocho<2><STEAM_0:1:86787335><>" joined team "TERRORIST"
L 04/09/2020 - 20:47:34: World triggered "Round_Start"
L 04/09/2020 - 20:47:40: "Mcd.<1><STEAM_0:0:538382878><CT>" attacked "Rocho<2><STEAM_0:1:86787335><TERRORIST>" with "ak47" (damage "27") (damage_armor "5") (health "73") (armor "95")
L 04/09/2020 - 20:47:41: "Mcd.<1><STEAM_0:0:538382878><CT>" killed "Rocho<2><STEAM_0:1:86787335><TERRORIST>" with "ak47"
L 04/09/2020 - 20:47:42: Team "CT" triggered "CTs_Win" (CT "1") (T "0")
L 04/09/2020 - 20:47:43: World triggered "Round_End"
L 04/09/2020 - 20:47:50: World triggered "Round_Start"
L 04/09/2020 - 20:47:55: "Rocho<2><STEAM_0:1:86787335><TERRORIST>" attacked "Mcd.<1><STEAM_0:0:538382878><CT>" with "awp" (damage "108") (damage_armor "40") (health "-8") (armor "60")
L 04/09/2020 - 20:47:56: "Rocho<2><STEAM_0:1:86787335><TERRORIST>" killed "Mcd.<1><STEAM_0:0:538382878><CT>" with "awp"
L 04/09/2020 - 20:47:57: Team "TERRORIST" triggered "Terrorists_Win" (CT "1") (T "1")
L 04/09/2020 - 20:47:58: World triggered "Round_End"
L 04/09/2020 - 20:48:00: this line means nothing to anyone
L 04/09/2020 - 21:07:51: Team "CT" scored "1" with "2" players
`

var (
	mcd   = Player{Nickname: "Mcd.", SteamID: 538382878}
	rocho = Player{Nickname: "Rocho", SteamID: 86787335}
)

func sampleReport(t *testing.T) *MatchReport {
	t.Helper()
	report, err := FromText(sampleLog).MatchReport()
	if err != nil {
		t.Fatalf("match report: %s", err)
	}
	return report
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(timestampLayout, value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestParserReadsTheMap(t *testing.T) {
	assert.Equal(t, "awp_india", sampleReport(t).MapName())
}

func TestParserReadsMatchStartAndEnd(t *testing.T) {
	report := sampleReport(t)

	assert.Equal(t, ts(t, "04/09/2020 - 20:47:30"), report.StartTime())
	assert.Equal(t, ts(t, "04/09/2020 - 21:07:51"), report.EndTime())
}

func TestParserReadsRoundBoundaries(t *testing.T) {
	rounds := sampleReport(t).RoundReports()

	assert.Equal(t, 2, len(rounds))
	assert.Equal(t, ts(t, "04/09/2020 - 20:47:34"), rounds[0].StartTime())
	assert.Equal(t, ts(t, "04/09/2020 - 20:47:43"), rounds[0].EndTime())
}

func TestParserSkipsUnhandledLines(t *testing.T) {
	events := FromText("junk line\n" + sampleLog + "more junk\n").Events()

	for _, e := range events {
		assert.T(t, !e.Timestamp().IsZero())
	}
}

func TestMatchReportCountsKillsAndDeaths(t *testing.T) {
	report := sampleReport(t)

	mcdStats := report.PlayerStats(mcd)
	assert.Equal(t, 1, mcdStats.Kills)
	assert.Equal(t, 1, mcdStats.Deaths)
	assert.Equal(t, 27, mcdStats.DamageInflicted)
	assert.Equal(t, 108, mcdStats.DamageReceived)
	assert.Equal(t, 27, mcdStats.DamageByWeapon[Weapon{Name: "ak47"}])

	rochoStats := report.PlayerStats(rocho)
	assert.Equal(t, 1, rochoStats.Kills)
	assert.Equal(t, 1, rochoStats.Deaths)
}

func TestMatchReportCountsRoundsWonAndLost(t *testing.T) {
	report := sampleReport(t)

	mcdStats := report.PlayerStats(mcd)
	assert.Equal(t, 1, mcdStats.RoundsWon)
	assert.Equal(t, 1, mcdStats.RoundsLost)
	assert.Equal(t, 2, mcdStats.TotalRoundsPlayed())
}

func TestMatchReportScores(t *testing.T) {
	scores := sampleReport(t).Scores()

	assert.Equal(t, 1, scores[CTTeam])
	assert.Equal(t, 1, scores[TerroristTeam])
}

func TestMatchReportAllKills(t *testing.T) {
	kills := sampleReport(t).AllKills()

	assert.Equal(t, 2, len(kills))
	assert.Equal(t, mcd.SteamID, kills[0].Attacker.SteamID)
	assert.Equal(t, rocho.SteamID, kills[1].Attacker.SteamID)
}

func TestMatchReportFirstKill(t *testing.T) {
	kill, ok := sampleReport(t).FirstKill()

	assert.T(t, ok)
	assert.Equal(t, mcd.SteamID, kill.Attacker.SteamID)
	assert.Equal(t, "ak47", kill.Weapon.Name)
}

func TestCollectionAggregatesAcrossMatches(t *testing.T) {
	reports := MatchReportCollection{sampleReport(t), sampleReport(t)}

	table := reports.CollectStats()

	assert.Equal(t, 2, len(table))
	for player, stats := range table {
		assert.Equal(t, 2, stats.Kills)
		assert.Equal(t, 2, stats.Deaths)
		assert.Equal(t, 4, stats.TotalRoundsPlayed())
		if player.SteamID != mcd.SteamID && player.SteamID != rocho.SteamID {
			t.Fatalf("unexpected player in table: %+v", player)
		}
	}
}

func TestPlayerIdentityIsSteamID(t *testing.T) {
	renamed := `L 04/09/2020 - 20:47:30: Loading map "de_dust2"
L 04/09/2020 - 20:47:31: World triggered "Game_Commencing"
L 04/09/2020 - 20:47:32: "NewNick<1><STEAM_0:0:538382878><>" joined team "CT"
L 04/09/2020 - 20:47:33: "Rocho<2><STEAM_0:1:86787335><>" joined team "TERRORIST"
L 04/09/2020 - 20:47:34: World triggered "Round_Start"
L 04/09/2020 - 20:47:41: "NewNick<1><STEAM_0:0:538382878><CT>" killed "Rocho<2><STEAM_0:1:86787335><TERRORIST>" with "deagle"
L 04/09/2020 - 20:47:42: Team "CT" triggered "CTs_Win" (CT "1") (T "0")
L 04/09/2020 - 20:47:43: World triggered "Round_End"
L 04/09/2020 - 21:07:51: Team "CT" scored "1" with "2" players
`
	report, err := FromText(renamed).MatchReport()
	assert.Equal(t, nil, err)

	// stats accumulate against the Steam ID even though the nickname changed
	stats := report.PlayerStats(mcd)
	assert.Equal(t, 1, stats.Kills)
}

func TestTimePlayedAccumulatesRoundDurations(t *testing.T) {
	stats := sampleReport(t).PlayerStats(mcd)

	// 9s first round + 8s second round
	assert.Equal(t, 17*time.Second, stats.TimePlayed)
}
