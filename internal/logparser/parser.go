// Package logparser turns Half-Life engine server logs into match reports
// with per-player statistics.
package logparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// errUnhandledLine marks log lines that map to no known event. They are
// skipped, not fatal: HL logs are full of chatter.
var errUnhandledLine = errors.New("unhandled log line")

const timestampLayout = "01/02/2006 - 15:04:05"

var timestampRegex = regexp.MustCompile(`L (\d{2}/\d{2}/\d{4} - \d{2}:\d{2}:\d{2}):`)

var (
	mapLoadingRegex = regexp.MustCompile(`Loading map "(.*)"`)
	roundStartRegex = regexp.MustCompile(`World triggered "Round_Start"`)
	roundEndRegex   = regexp.MustCompile(`World triggered "Round_End"|World triggered "Restart_Round_`)
	attackRegex     = regexp.MustCompile(`"(.+)" attacked "(.+)" with "(\w+)" \(damage "(\d+)"\) \(damage_armor "(\d+)"\) \(health "(-?\d+)"\) \(armor "(-?\d+)"\)`)
	killRegex       = regexp.MustCompile(`"(.+)" killed "(.+)" with "(\w+)"`)
	matchStartRegex = regexp.MustCompile(`World triggered "Game_Commencing"`)
	matchEndRegex   = regexp.MustCompile(`Team "CT" scored|Log file closed`)
	joinTeamRegex   = regexp.MustCompile(`"(.+)" joined team "([A-Z]+)"`)
	disconnectRegex = regexp.MustCompile(`"(.+)" disconnected`)
	teamWinRegex    = regexp.MustCompile(`Team "([A-Z]+)" triggered "\w+_Win"`)
	serverRegex     = regexp.MustCompile(`Server`)
)

// Parser reads one log file worth of lines.
type Parser struct {
	lines []string
}

func FromText(text string) *Parser {
	return &Parser{lines: strings.Split(text, "\n")}
}

func FromReader(r io.Reader) (*Parser, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Parser{lines: lines}, nil
}

func FromFile(path string) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	p, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}

// Events parses every line, silently skipping the ones that match no known
// event.
func (p *Parser) Events() []Event {
	var events []Event
	for _, line := range p.lines {
		event, err := parseLine(line)
		if err != nil {
			slog.Debug("ignoring log line", "line", line)
			continue
		}
		events = append(events, event)
	}
	return events
}

// MatchReport folds all events into the completed match this log describes.
func (p *Parser) MatchReport() (*MatchReport, error) {
	match := NewMatchInProgress()
	for _, event := range p.Events() {
		match.Apply(event)
	}
	return match.Report()
}

// RoundReports returns the ended rounds of a log cut off mid-match.
func (p *Parser) RoundReports() []RoundReport {
	match := NewMatchInProgress()
	for _, event := range p.Events() {
		match.Apply(event)
	}
	return match.RoundReports()
}

// ParseDirectory parses every .log file in dir into a match report.
// Unparseable files are skipped with a warning so one corrupt log cannot
// take the whole ranking down.
func ParseDirectory(dir string) (MatchReportCollection, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return nil, err
	}

	var reports MatchReportCollection
	for _, path := range paths {
		parser, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		report, err := parser.MatchReport()
		if err != nil {
			slog.Warn("skipping log file", "path", path, "error", err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func parseLine(line string) (Event, error) {
	ts, ok := parseTimestamp(line)
	if !ok {
		return nil, errUnhandledLine
	}
	base := baseEvent{ts: ts}

	switch {
	case roundStartRegex.MatchString(line):
		return RoundStartEvent{base}, nil
	case roundEndRegex.MatchString(line):
		return RoundEndEvent{base}, nil
	case matchStartRegex.MatchString(line):
		return MatchStartedEvent{base}, nil
	case matchEndRegex.MatchString(line):
		return MatchEndEvent{base}, nil
	}

	if m := mapLoadingRegex.FindStringSubmatch(line); m != nil {
		return MapLoadingEvent{base, m[1]}, nil
	}

	if m := attackRegex.FindStringSubmatch(line); m != nil {
		attacker, ok1 := parsePlayer(m[1])
		victim, ok2 := parsePlayer(m[2])
		if ok1 && ok2 {
			return AttackEvent{
				baseEvent:   base,
				Attacker:    attacker,
				Victim:      victim,
				Weapon:      Weapon{Name: m[3]},
				Damage:      atoi(m[4]),
				DamageArmor: atoi(m[5]),
				Health:      atoi(m[6]),
				Armor:       atoi(m[7]),
			}, nil
		}
	}

	if m := killRegex.FindStringSubmatch(line); m != nil {
		attacker, ok1 := parsePlayer(m[1])
		victim, ok2 := parsePlayer(m[2])
		if ok1 && ok2 {
			return KillEvent{baseEvent: base, Attacker: attacker, Victim: victim, Weapon: Weapon{Name: m[3]}}, nil
		}
	}

	if m := joinTeamRegex.FindStringSubmatch(line); m != nil {
		if player, ok := parsePlayer(m[1]); ok {
			return PlayerJoinsTeamEvent{baseEvent: base, Player: player, Team: Team(m[2])}, nil
		}
	}

	if m := disconnectRegex.FindStringSubmatch(line); m != nil {
		if player, ok := parsePlayer(m[1]); ok {
			return PlayerDisconnectsEvent{baseEvent: base, Player: player}, nil
		}
	}

	if m := teamWinRegex.FindStringSubmatch(line); m != nil {
		return TeamWinEvent{baseEvent: base, Team: Team(m[1])}, nil
	}

	if serverRegex.MatchString(line) {
		return ServerEvent{base}, nil
	}

	return nil, errUnhandledLine
}

func parseTimestamp(line string) (time.Time, bool) {
	m := timestampRegex.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	ts, err := time.Parse(timestampLayout, m[1])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func parsePlayer(s string) (Player, bool) {
	m := playerRegex.FindStringSubmatch(s)
	if m == nil {
		return Player{}, false
	}
	steamID, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Player{}, false
	}
	return Player{Nickname: m[1], SteamID: steamID}, true
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
