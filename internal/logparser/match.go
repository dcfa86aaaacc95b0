package logparser

import "errors"

// roundInProgress buffers events of the current round until it ends.
type roundInProgress struct {
	events []Event
	winner Team
	ended  bool
}

func (r *roundInProgress) recordEvent(e Event) { r.events = append(r.events, e) }

func (r *roundInProgress) setWinnerTeam(t Team) { r.winner = t }

func (r *roundInProgress) report(teams map[Team][]Player) RoundReport {
	first, last := r.events[0], r.events[len(r.events)-1]
	return newRoundReport(first.Timestamp(), last.Timestamp(), r.events, teams, r.winner)
}

// MatchInProgress accumulates events into match state while a log file is
// being parsed. A match is a sequence of rounds played on one map; every log
// file contains one match.
type MatchInProgress struct {
	mapName     string
	matchEvents []Event
	endedRounds []RoundReport
	ongoing     *roundInProgress
	teams       map[Team][]Player
	ended       bool
}

func NewMatchInProgress() *MatchInProgress {
	return &MatchInProgress{teams: make(map[Team][]Player)}
}

// Apply feeds one event into the match.
func (m *MatchInProgress) Apply(e Event) { e.impactMatch(m) }

func (m *MatchInProgress) setMapName(name string) { m.mapName = name }

func (m *MatchInProgress) recordMatchEvent(e Event) { m.matchEvents = append(m.matchEvents, e) }

func (m *MatchInProgress) recordRoundEvent(e Event) {
	if m.ongoing != nil {
		m.ongoing.recordEvent(e)
	}
}

func (m *MatchInProgress) startNewRound() {
	if m.ongoing != nil && m.ongoing.ended && len(m.ongoing.events) > 0 {
		m.endedRounds = append(m.endedRounds, m.ongoing.report(m.teams))
	}
	m.ongoing = &roundInProgress{}
}

func (m *MatchInProgress) endCurrentRound() {
	if m.ongoing != nil {
		m.ongoing.ended = true
	}
}

func (m *MatchInProgress) impactCurrentRound(e roundEvent) {
	if m.ongoing != nil {
		e.impactRound(m.ongoing)
	}
}

func (m *MatchInProgress) addPlayerToTeam(team Team, p Player) {
	m.removePlayerIfPresent(p)
	m.teams[team] = append(m.teams[team], p)
}

func (m *MatchInProgress) removePlayerIfPresent(p Player) {
	for team, players := range m.teams {
		for i, other := range players {
			if other.SteamID == p.SteamID {
				m.teams[team] = append(players[:i:i], players[i+1:]...)
				break
			}
		}
	}
}

func (m *MatchInProgress) start() {}

func (m *MatchInProgress) end() {
	if m.ended {
		return
	}
	if m.ongoing != nil && m.ongoing.ended && len(m.ongoing.events) > 0 {
		m.endedRounds = append(m.endedRounds, m.ongoing.report(m.teams))
		m.ongoing = nil
	}
	m.ended = true
}

// Report returns the immutable report of an ended match.
func (m *MatchInProgress) Report() (*MatchReport, error) {
	if !m.ended {
		return nil, errors.New("match has not ended")
	}
	if len(m.matchEvents) == 0 {
		return nil, errors.New("match has no events")
	}
	return newMatchReport(m.matchEvents, m.mapName, m.endedRounds), nil
}

// RoundReports returns the rounds ended so far, for logs cut off mid-match.
func (m *MatchInProgress) RoundReports() []RoundReport {
	return append([]RoundReport(nil), m.endedRounds...)
}
