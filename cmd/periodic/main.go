// periodic prints the occurrences of an interval descriptor. It is a
// diagnostic aid for checking how a descriptor is interpreted.
//
// Usage:
//
//	periodic [flags] <descriptor>
//
// Examples:
//
//	periodic "monthly in 2008"
//	periodic --from 2008/03/15 --count 4 "every 2 weeks from 2008/01/01"
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/xwinata/periodic"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var from string
	var count int
	var debug bool

	flagSet := pflag.NewFlagSet("periodic", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&from, "from", "", "reference date (default: the descriptor's begin date, else today)")
	flagSet.IntVarP(&count, "count", "n", 10, "maximum number of occurrences to print")
	flagSet.BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if flagSet.NArg() == 0 {
		return fmt.Errorf("missing descriptor")
	}
	descriptor := strings.Join(flagSet.Args(), " ")

	iv, err := periodic.Parse(descriptor)
	if err != nil {
		return err
	}
	logger.Debug("parsed interval",
		"descriptor", descriptor,
		"days", iv.Days,
		"months", iv.Months,
		"years", iv.Years,
		"begin", formatOptional(iv.Begin),
		"end", formatOptional(iv.End))

	var ref time.Time
	switch {
	case from != "":
		if ref, err = periodic.ParseDate(from); err != nil {
			return err
		}
	case iv.Begin.IsZero():
		ref = time.Now()
	}

	fmt.Fprintf(stdout, "interval: %s\n", iv)
	if !iv.IsSet() {
		fmt.Fprintln(stdout, "does not recur")
	}

	cursor := periodic.NewCursor(iv, periodic.SetLogger(logger))
	next, ok, err := cursor.First(ref)
	for i := 0; i < count && ok; i++ {
		fmt.Fprintln(stdout, periodic.FormatDate(next))
		if !iv.IsSet() {
			break
		}
		next, ok, err = cursor.Next()
	}
	if err != nil {
		return err
	}
	logger.Debug("done", "at", periodic.FormatDatetime(time.Now()))
	return nil
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return periodic.FormatDate(t)
}
