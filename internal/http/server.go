package http

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"spotlist-analytics-service/internal/config"
	"spotlist-analytics-service/internal/controller"
	"spotlist-analytics-service/internal/routes"
)

// Server wraps the Fiber application setup.
type Server struct {
	app *fiber.App
}

// NewServer configures routes and middleware. Report payloads can carry
// tens of thousands of records, so the JSON codec is swapped for goccy.
func NewServer(appCfg *config.Config, reportController controller.ReportController) *Server {
	fiberCfg := fiber.Config{
		DisableStartupMessage: true,
		Prefork:               appCfg.FiberPrefork,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	}
	app := fiber.New(fiberCfg)
	app.Use(recover.New())

	routes.Register(app, reportController)

	return &Server{app: app}
}

// Listen runs the server on provided addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
