package logparser

import (
	"time"
)

// PlayerStats is the running tally of one player's performance across the
// rounds fed into it.
type PlayerStats struct {
	DamageInflicted int
	DamageReceived  int
	Kills           int
	Deaths          int
	RoundsWon       int
	RoundsLost      int
	DamageByWeapon  map[Weapon]int
	TimePlayed      time.Duration
}

func NewPlayerStats() *PlayerStats {
	return &PlayerStats{DamageByWeapon: make(map[Weapon]int)}
}

func (s *PlayerStats) TotalRoundsPlayed() int { return s.RoundsWon + s.RoundsLost }

// RoundReport is an immutable record of one ended round.
type RoundReport struct {
	startTime time.Time
	endTime   time.Time
	events    []Event
	teams     map[Team][]Player
	winner    Team
}

func newRoundReport(start, end time.Time, events []Event, teams map[Team][]Player, winner Team) RoundReport {
	frozen := make(map[Team][]Player, len(teams))
	for team, players := range teams {
		frozen[team] = append([]Player(nil), players...)
	}
	return RoundReport{
		startTime: start,
		endTime:   end,
		events:    append([]Event(nil), events...),
		teams:     frozen,
		winner:    winner,
	}
}

func (r RoundReport) StartTime() time.Time { return r.startTime }
func (r RoundReport) EndTime() time.Time   { return r.endTime }
func (r RoundReport) Events() []Event      { return r.events }
func (r RoundReport) WinnerTeam() Team     { return r.winner }

func (r RoundReport) TeamComposition(team Team) []Player { return r.teams[team] }

// AllPlayers returns both playing teams, spectators excluded.
func (r RoundReport) AllPlayers() []Player {
	return append(r.TeamComposition(CTTeam), r.TeamComposition(TerroristTeam)...)
}

func (r RoundReport) AddToPlayerStats(p Player, stats *PlayerStats) {
	for _, e := range r.events {
		if se, ok := e.(statsEvent); ok {
			se.impactPlayerStats(p, stats, r)
		}
	}
	if playerIn(p, r.AllPlayers()) {
		stats.TimePlayed += r.endTime.Sub(r.startTime)
	}
}

// MatchReport is an immutable record of an ended match.
type MatchReport struct {
	matchEvents []Event
	mapName     string
	rounds      []RoundReport
}

func newMatchReport(matchEvents []Event, mapName string, rounds []RoundReport) *MatchReport {
	return &MatchReport{
		matchEvents: append([]Event(nil), matchEvents...),
		mapName:     mapName,
		rounds:      append([]RoundReport(nil), rounds...),
	}
}

func (m *MatchReport) MapName() string             { return m.mapName }
func (m *MatchReport) RoundReports() []RoundReport { return m.rounds }

func (m *MatchReport) StartTime() time.Time { return m.matchEvents[0].Timestamp() }
func (m *MatchReport) EndTime() time.Time   { return m.matchEvents[len(m.matchEvents)-1].Timestamp() }

// Scores counts rounds won per playing team.
func (m *MatchReport) Scores() map[Team]int {
	scores := map[Team]int{CTTeam: 0, TerroristTeam: 0}
	for _, round := range m.rounds {
		if winner := round.WinnerTeam(); winner != "" {
			scores[winner]++
		}
	}
	return scores
}

// AllPlayers returns every player seen in any round, deduplicated by Steam
// ID (first nickname seen wins).
func (m *MatchReport) AllPlayers() []Player {
	var players []Player
	seen := make(map[int64]bool)
	for _, round := range m.rounds {
		for _, p := range round.AllPlayers() {
			if !seen[p.SteamID] {
				seen[p.SteamID] = true
				players = append(players, p)
			}
		}
	}
	return players
}

// AllKills returns every kill in round order.
func (m *MatchReport) AllKills() []KillEvent {
	var kills []KillEvent
	for _, round := range m.rounds {
		for _, e := range round.Events() {
			if kill, ok := e.(KillEvent); ok {
				kills = append(kills, kill)
			}
		}
	}
	return kills
}

// FirstKill returns the first kill of the match, or false when nobody died.
func (m *MatchReport) FirstKill() (KillEvent, bool) {
	for _, round := range m.rounds {
		for _, e := range round.Events() {
			if kill, ok := e.(KillEvent); ok {
				return kill, true
			}
		}
	}
	return KillEvent{}, false
}

func (m *MatchReport) PlayerStats(p Player) *PlayerStats {
	stats := NewPlayerStats()
	m.AddToPlayerStats(p, stats)
	return stats
}

func (m *MatchReport) AddToPlayerStats(p Player, stats *PlayerStats) {
	for _, round := range m.rounds {
		round.AddToPlayerStats(p, stats)
	}
}

// MatchReportCollection aggregates stats over many matches.
type MatchReportCollection []*MatchReport

// PlayerTable maps each player to their stats accumulated over the whole
// collection.
type PlayerTable map[Player]*PlayerStats

func (c MatchReportCollection) CollectStats() PlayerTable {
	stats := make(map[int64]*PlayerStats)
	names := make(map[int64]Player)

	for _, match := range c {
		for _, p := range match.AllPlayers() {
			if _, ok := stats[p.SteamID]; !ok {
				stats[p.SteamID] = NewPlayerStats()
				names[p.SteamID] = p
			}
			match.AddToPlayerStats(p, stats[p.SteamID])
		}
	}

	table := make(PlayerTable, len(stats))
	for id, s := range stats {
		table[names[id]] = s
	}
	return table
}
