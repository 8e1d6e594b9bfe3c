// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-archive"
	"golang.org/x/sync/errgroup"
)

// CLI are the cli parameters for the archive-ls binary
type CLI struct {
	Archives    []string         `arg:"" optional:"" name:"archive" help:"Archive files."`
	Format      string           `optional:"" placeholder:"NAME" help:"Read all archives as this format instead of detecting it from the file name."`
	Help        bool             `short:"?" help:"Print help."`
	Humanize    bool             `short:"h" help:"Humanize bytes."`
	ListFormats bool             `name:"list-archive-formats" help:"List supported archive formats."`
	Long        bool             `short:"l" help:"Print extended metadata."`
	Parallel    bool             `short:"P" help:"Read archives in parallel. Output keeps the order of the arguments."`
	Verbose     bool             `short:"v" optional:"" help:"Verbose logging."`
	Version     kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into archive-ls as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("archive-ls"),
		kong.Description("List the entries of archive files."),
		kong.NoDefaultHelp(),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	if cli.Help {
		_ = kctx.PrintUsage(false)
		os.Exit(0)
	}

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := cli.Execute(os.Stdout, logger); err != nil {
		log.Println(fmt.Errorf("error during listing: %w", err))
		os.Exit(-1)
	}
}

// Execute writes the listing requested by the cli parameters to w.
func (c *CLI) Execute(w io.Writer, logger *slog.Logger) error {
	if c.ListFormats {
		for _, line := range archive.DescribeAll() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	opts := []archive.ConfigOption{archive.WithLogger(logger)}
	if c.Format != "" {
		f, err := archive.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		opts = append(opts, archive.WithFormat(f))
	}

	if !c.Parallel {
		for _, path := range c.Archives {
			if err := c.listArchive(w, path, opts); err != nil {
				return err
			}
		}
		return nil
	}

	// one buffer per archive, flushed in argument order
	outputs := make([]bytes.Buffer, len(c.Archives))
	var g errgroup.Group
	for i, path := range c.Archives {
		g.Go(func() error {
			return c.listArchive(&outputs[i], path, opts)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// listArchive prints one line per entry of the archive at path.
func (c *CLI) listArchive(w io.Writer, path string, opts []archive.ConfigOption) (err error) {
	a, err := archive.Open(path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	entries, err := a.Entries()
	if err != nil {
		return err
	}
	for entry, err := range entries.All() {
		if err != nil {
			return err
		}
		name, err := entry.Path()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %s%s\n", path, name, c.sizeColumn(entry.Size())); err != nil {
			return err
		}
	}
	return nil
}

// sizeColumn returns the size column including its leading separator, or an
// empty string without --long.
func (c *CLI) sizeColumn(size int64) string {
	switch {
	case !c.Long:
		return ""
	case c.Humanize:
		return " " + humanize(size)
	default:
		return " " + strconv.FormatInt(size, 10)
	}
}
