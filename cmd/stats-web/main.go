package main

import (
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"log/slog"

	"github.com/cs16stats/statsweb/internal/http"
	"github.com/cs16stats/statsweb/internal/scorer"
)

var (
	statsFile  string
	logsDir    string
	duelRating string
	minRounds  int
)

func main() {
	flag.StringVar(&statsFile, "stats-file", "csstats.dat", "Path to the ranking file written by the stats mod")
	flag.StringVar(&logsDir, "logs-dir", "logs", "Directory of HL server log files")
	flag.StringVar(&duelRating, "duel-rating", "glicko", "Duel rating algorithm for the elo page: glicko or openskill")
	flag.IntVar(&minRounds, "min-rounds", 10, "Rounds a player must finish to appear in the elo ranking")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var duelScorer scorer.Strategy
	switch duelRating {
	case "glicko":
		duelScorer = scorer.GlickoScorer{MinRounds: minRounds}
	case "openskill":
		duelScorer = scorer.OpenSkillScorer{MinRounds: minRounds}
	default:
		log.Fatalf("unknown duel rating algorithm: %s", duelRating)
	}

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	server := http.NewServer(statsFile, logsDir, duelScorer)

	slog.Info("starting server", "port", port, "stats_file", statsFile, "logs_dir", logsDir)

	if err := server.Run(port); err != nil {
		log.Fatalf("failed to run server: %s", err)
	}
}
