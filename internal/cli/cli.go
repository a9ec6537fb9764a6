// Package cli implements the jyotish command-line interface.
//
// Commands compute charts from TOML input files, print the panchanga
// and aspect list, render the aspect network, serve the HTTP API and
// manage the chart cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/pkg/buildinfo"
	"github.com/rsharan/jyotish/pkg/cache"
)

const (
	// appName is the application name used for directories and display.
	appName = "jyotish"

	// defaultCacheTTL bounds how long computed charts stay reusable on
	// disk before an ephemeris correction should win.
	defaultCacheTTL = 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "jyotish",
		Short:        "Jyotish computes Vedic astrology charts from ephemeris data",
		Long:         `Jyotish is a deterministic computation engine for Vedic astrology: it derives divisional (varga) charts, nakshatra placements, the panchanga and planetary aspects from externally supplied ecliptic longitudes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.chartCommand())
	root.AddCommand(c.panchangaCommand())
	root.AddCommand(c.aspectsCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the chart cache for CLI use. Cache failures degrade
// to the null cache so a broken cache directory never blocks a reading.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}
