// Package debug serves runtime statistics while the game runs.
//
// Charts are available at http://<addr>/debug/statsview and the standard
// pprof handlers at http://<addr>/debug/pprof/.
package debug

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultAddr is where the stats server listens unless configured otherwise.
const DefaultAddr = "localhost:12600"

// LaunchStatsView starts the stats server on its own goroutine.
// Serve errors are logged; the game keeps running without stats. The server
// lives until the process exits.
func LaunchStatsView(addr string, logger *log.Logger) {
	if addr == "" {
		addr = DefaultAddr
	}
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("stats server stopped", "addr", addr, "err", err)
		}
	}()

	logger.Info("stats server available", "url", "http://"+addr+"/debug/statsview")
}
