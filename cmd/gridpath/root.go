package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridfile"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// errBadLogFlag reports an unknown --log-level or --log-format value.
var errBadLogFlag = errors.New("invalid logging flag")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "gridpath",
		Short:         "Plan minimum-cost routes over weighted grid maps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), ro.logLevel, ro.logFormat)
			if err != nil {
				return err
			}
			ro.logger = logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "text", "log format: text, json")

	cmd.AddCommand(
		newFindCmd(ro),
		newFieldCmd(ro),
		newComponentsCmd(ro),
		newGenerateCmd(ro),
	)

	return cmd
}

// newLogger builds a slog logger writing to w at the given level and format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("%w: --log-level %q", errBadLogFlag, level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: --log-format %q", errBadLogFlag, format)
	}
}

// loadGrid reads the document named by path and builds its grid.
func loadGrid(logger *slog.Logger, path string) (*gridfile.Document, *gridgraph.Grid, error) {
	doc, err := gridfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Grid()
	if err != nil {
		return nil, nil, err
	}
	logger.Info("grid loaded",
		slog.String("file", path),
		slog.Int("rows", g.Rows),
		slog.Int("cols", g.Cols),
	)

	return doc, g, nil
}

// coordOr parses flag when set and otherwise asks the document.
func coordOr(flag, name string, fromDoc func() (gridgraph.Coord, error)) (gridgraph.Coord, error) {
	if flag != "" {
		return gridfile.ParseCoord(flag)
	}
	c, err := fromDoc()
	if err != nil {
		return c, fmt.Errorf("%w (or pass --%s)", err, name)
	}

	return c, nil
}
