package logparser

import "regexp"

// Player identifies someone in the game. Identity is the Steam ID: nicknames
// change between reconnects, so everything that aggregates across matches
// keys on SteamID.
type Player struct {
	Nickname string
	SteamID  int64
}

type Weapon struct {
	Name string
}

type Team string

const (
	CTTeam        Team = "CT"
	TerroristTeam Team = "TERRORIST"
	SpectatorTeam Team = "SPECTATOR"
)

var playerRegex = regexp.MustCompile(`(.*)<\d+><STEAM_0:[01]:(\d+)><[A-Z]*>`)
