package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/cli"
	"github.com/phroun/cellpager/tscreen"
	"github.com/spf13/cobra"
)

// session is a surface that owns the host terminal between Start and Stop
type session interface {
	cellpager.Surface
	Start() error
	Stop() error
}

// openSession creates the surface selected by --backend. title labels the
// ansi frame when --border is set.
func openSession(cmd *cobra.Command, title string) (session, error) {
	backend, _ := cmd.Flags().GetString("backend")
	borderName, _ := cmd.Flags().GetString("border")
	border, err := cellpager.ParseBorderStyle(borderName)
	if err != nil {
		return nil, err
	}

	switch backend {
	case "ansi":
		t, err := cli.New(cli.Options{
			AutoSize:    true,
			BorderStyle: border,
			Title:       title,
		})
		if err != nil {
			return nil, err
		}
		return t, nil
	case "tcell":
		s, err := tscreen.New(tscreen.Options{})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

// withSession starts a session, hands it to fn, and always stops it again
// before returning (even when fn panics) so that errors are printed on a
// restored terminal.
func withSession(cmd *cobra.Command, title string, fn func(cellpager.Surface) error) error {
	s, err := openSession(cmd, title)
	if err != nil {
		return err
	}
	return runSession(s, fn)
}

func runSession(s session, fn func(cellpager.Surface) error) (err error) {
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		if serr := s.Stop(); serr != nil && err == nil {
			err = serr
		}
	}()
	return fn(s)
}

// newLogger returns a logger writing to --log-file, or discarding everything
// when no file was given. The returned func closes the file.
func newLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("log-file")
	debug, _ := cmd.Flags().GetBool("debug")
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), func() { f.Close() }, nil
}
