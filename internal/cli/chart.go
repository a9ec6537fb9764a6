package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/pkg/cache"
	"github.com/rsharan/jyotish/pkg/chart"
	"github.com/rsharan/jyotish/pkg/errors"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// chartOpts holds the command-line flags for the chart command.
type chartOpts struct {
	format  string // output format: "table" or "json"
	output  string // output file path; empty means stdout
	noCache bool   // bypass the chart cache
}

// chartCommand creates the chart command: compute the full chart from
// a TOML input file and print it.
func (c *CLI) chartCommand() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "chart [input.toml]",
		Short: "Compute the full chart from an ephemeris input file",
		Long: `Compute the divisional (varga) table, nakshatra placements, panchanga
and planetary aspects from a TOML input file of ecliptic longitudes.

Computed charts are cached by input hash under ~/.cache/jyotish/ so
repeated readings of the same input are served from disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateChartFormat(opts.format); err != nil {
				return err
			}
			return c.runChart(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the chart cache")

	return cmd
}

func (c *CLI) runChart(cmd *cobra.Command, path string, opts chartOpts) error {
	ctx := cmd.Context()
	logger := c.Logger
	prog := newProgress(logger)

	in, err := chart.LoadInput(path)
	if err != nil {
		return err
	}

	hash, err := chart.InputHash(in)
	if err != nil {
		return err
	}
	store := newCache(opts.noCache)
	defer store.Close()
	key := cache.NewDefaultKeyer().ChartKey(hash)

	var data []byte
	cached := false
	if b, ok, err := store.Get(ctx, key); err == nil && ok {
		data = b
		cached = true
	}

	result, err := chart.Compute(in)
	if err != nil {
		return err
	}
	if data == nil {
		var buf bytes.Buffer
		if err := chart.WriteJSON(result, &buf); err != nil {
			return err
		}
		data = buf.Bytes()
		if err := store.Set(ctx, key, data, defaultCacheTTL); err != nil {
			logger.Debug("cache chart", "err", err)
		}
	}
	logger.Debug("chart ready", "bodies", len(result.Varga), "hash", hash, "cached", cached)

	if opts.format == formatJSON {
		if opts.output != "" {
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "write %s", opts.output)
			}
			printSuccess("Wrote chart")
			printFile(opts.output)
			return nil
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(StyleTitle.Render("Varga"))
	fmt.Println(renderVargaTable(result.Varga))
	fmt.Println()
	fmt.Println(StyleTitle.Render("Nakshatras"))
	fmt.Println(renderNakshatraTable(result.Nakshatras))
	fmt.Println()
	fmt.Println(StyleTitle.Render("Panchanga"))
	fmt.Print(renderPanchanga(result.Panchanga))
	fmt.Println()
	fmt.Println(StyleTitle.Render("Aspects"))
	fmt.Println(renderAspectTable(result.Aspects))
	printCacheStatus(cached)
	prog.done("Computed chart")
	return nil
}

// validateChartFormat checks the --format flag.
func validateChartFormat(f string) error {
	switch f {
	case formatTable, formatJSON:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat,
		"unknown format %q (valid: %s)", f, strings.Join([]string{formatTable, formatJSON}, ", "))
}
