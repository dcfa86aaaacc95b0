package http

import (
	"embed"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"

	"github.com/cs16stats/statsweb/internal/scorer"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

type Server struct {
	statsPath  string
	logsDir    string
	duelScorer scorer.Strategy

	app *fiber.App
}

func NewServer(statsPath, logsDir string, duelScorer scorer.Strategy) *Server {
	app := fiber.New(fiber.Config{
		AppName: "statsweb",
		Views:   html.NewFileSystem(http.FS(templateFS), ".tmpl"),
	})

	s := &Server{
		statsPath:  statsPath,
		logsDir:    logsDir,
		duelScorer: duelScorer,
		app:        app,
	}

	s.app.Get("/stats.html", s.statsPage)
	s.app.Get("/elo.html", s.eloPage)

	s.app.Use("/", filesystem.New(filesystem.Config{
		MaxAge:     3600,
		Root:       http.FS(assetFS),
		PathPrefix: "assets",
		Index:      "index.html",
	}))

	return s
}

func (s *Server) Run(port string) error {
	return s.app.Listen(":" + port)
}

// noStore marks a response as uncacheable: both pages are regenerated from
// the game server's files on every request.
func noStore(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-store")
	ctx.Set(fiber.HeaderPragma, "no-cache")
}
