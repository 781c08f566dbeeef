package statistics

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	EndpointPathMetrics = "/metrics"
	EndpointPathAlive   = "/alive"
)

// NewServer creates the metrics webserver, serving the metrics of the given gatherer
func NewServer(gatherer prometheus.Gatherer) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Secure())
	server.Use(middleware.Recover())

	server.GET(EndpointPathAlive, isAlive)
	server.GET(EndpointPathMetrics, echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	return server
}

func Address(port int) string {
	return fmt.Sprintf(":%d", port)
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
