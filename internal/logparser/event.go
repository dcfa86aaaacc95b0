package logparser

import "time"

// Event is something that happened on the game server, one per log line.
// An event knows how to impact a match in progress.
type Event interface {
	Timestamp() time.Time
	impactMatch(m *MatchInProgress)
}

// roundEvent is an event that belongs to the ongoing round.
type roundEvent interface {
	Event
	impactRound(r *roundInProgress)
}

// statsEvent is an event that contributes to a player's stats tally.
type statsEvent interface {
	impactPlayerStats(p Player, stats *PlayerStats, round RoundReport)
}

type baseEvent struct {
	ts time.Time
}

func (e baseEvent) Timestamp() time.Time { return e.ts }

type MapLoadingEvent struct {
	baseEvent
	MapName string
}

func (e MapLoadingEvent) impactMatch(m *MatchInProgress) {
	m.setMapName(e.MapName)
	m.recordMatchEvent(e)
}

type RoundStartEvent struct {
	baseEvent
}

func (e RoundStartEvent) impactMatch(m *MatchInProgress) {
	m.startNewRound()
	m.recordRoundEvent(e)
}

func (e RoundStartEvent) impactRound(r *roundInProgress) { r.recordEvent(e) }

type RoundEndEvent struct {
	baseEvent
}

func (e RoundEndEvent) impactMatch(m *MatchInProgress) {
	m.recordRoundEvent(e)
	m.endCurrentRound()
}

func (e RoundEndEvent) impactRound(r *roundInProgress) { r.recordEvent(e) }

type AttackEvent struct {
	baseEvent
	Attacker    Player
	Victim      Player
	Weapon      Weapon
	Damage      int
	DamageArmor int
	Health      int
	Armor       int
}

func (e AttackEvent) impactMatch(m *MatchInProgress) { m.impactCurrentRound(e) }

func (e AttackEvent) impactRound(r *roundInProgress) { r.recordEvent(e) }

func (e AttackEvent) impactPlayerStats(p Player, stats *PlayerStats, _ RoundReport) {
	if p.SteamID == e.Attacker.SteamID {
		stats.DamageInflicted += e.Damage
		stats.DamageByWeapon[e.Weapon] += e.Damage
	}
	if p.SteamID == e.Victim.SteamID {
		stats.DamageReceived += e.Damage
	}
}

type KillEvent struct {
	baseEvent
	Attacker Player
	Victim   Player
	Weapon   Weapon
}

func (e KillEvent) impactMatch(m *MatchInProgress) { m.impactCurrentRound(e) }

func (e KillEvent) impactRound(r *roundInProgress) { r.recordEvent(e) }

func (e KillEvent) impactPlayerStats(p Player, stats *PlayerStats, _ RoundReport) {
	if p.SteamID == e.Attacker.SteamID {
		stats.Kills++
	}
	if p.SteamID == e.Victim.SteamID {
		stats.Deaths++
	}
}

type MatchStartedEvent struct {
	baseEvent
}

func (e MatchStartedEvent) impactMatch(m *MatchInProgress) {
	m.recordMatchEvent(e)
	m.start()
}

type MatchEndEvent struct {
	baseEvent
}

func (e MatchEndEvent) impactMatch(m *MatchInProgress) {
	m.recordMatchEvent(e)
	m.end()
}

type PlayerJoinsTeamEvent struct {
	baseEvent
	Player Player
	Team   Team
}

func (e PlayerJoinsTeamEvent) impactMatch(m *MatchInProgress) {
	m.recordMatchEvent(e)
	m.addPlayerToTeam(e.Team, e.Player)
}

type PlayerDisconnectsEvent struct {
	baseEvent
	Player Player
}

func (e PlayerDisconnectsEvent) impactMatch(m *MatchInProgress) {
	m.removePlayerIfPresent(e.Player)
}

type TeamWinEvent struct {
	baseEvent
	Team Team
}

func (e TeamWinEvent) impactMatch(m *MatchInProgress) { m.impactCurrentRound(e) }

func (e TeamWinEvent) impactRound(r *roundInProgress) {
	r.setWinnerTeam(e.Team)
	r.recordEvent(e)
}

func (e TeamWinEvent) impactPlayerStats(p Player, stats *PlayerStats, round RoundReport) {
	if playerIn(p, round.TeamComposition(e.Team)) {
		stats.RoundsWon++
	} else if playerIn(p, round.AllPlayers()) {
		stats.RoundsLost++
	}
}

// ServerEvent covers server-originated lines that carry no match state.
type ServerEvent struct {
	baseEvent
}

func (e ServerEvent) impactMatch(*MatchInProgress) {}

func playerIn(p Player, players []Player) bool {
	for _, other := range players {
		if other.SteamID == p.SteamID {
			return true
		}
	}
	return false
}
