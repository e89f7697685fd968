package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/phroun/cellpager"
	"github.com/phroun/cellpager/demos"
	"github.com/phroun/cellpager/pager"
	"github.com/phroun/cellpager/theme"
	"github.com/spf13/cobra"
)

func cmdPager() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "pager <source-file>",
		Short: "page through a source file with highlighting",
		Args:  cobra.ExactArgs(1), // require path to source file
		RunE: func(cmd *cobra.Command, args []string) error {
			// the file is opened before the display takes over the terminal;
			// failing here is a usage error
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			defer f.Close()
			cmd.SilenceUsage = true

			logger, closeLog, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			palette := theme.Default()
			if themeFile, _ := cmd.Flags().GetString("theme"); themeFile != "" {
				if palette, err = theme.Load(themeFile); err != nil {
					return err
				}
			}
			indicator, _ := cmd.Flags().GetString("indicator")

			var stats pager.Stats
			err = withSession(cmd, filepath.Base(args[0]), func(s cellpager.Surface) error {
				p := pager.New(s, pager.Options{
					Palette:   palette,
					Indicator: indicator,
					Logger:    logger.With("file", args[0]),
				})
				defer func() { stats = p.Stats() }()
				return p.Run(f)
			})
			if err != nil {
				logger.Error("pager failed", "file", args[0], "err", err)
				return err
			}
			logger.Info("paged", "file", args[0], "words", stats.Words, "pages", stats.Pages, "bytes", stats.Bytes)
			return nil
		},
	}
	return cmd
}

func cmdHello() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "hello",
		Short:        "print a greeting and wait for a key",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, "hello", demos.Hello)
		},
	}
	return cmd
}

func cmdKeypress() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "keypress",
		Short:        "read one key and show its name",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			return withSession(cmd, "keypress", func(s cellpager.Surface) error {
				key, err := demos.Keypress(s)
				if err != nil {
					return err
				}
				logger.Debug("keypress", "key", key.String())
				return nil
			})
		},
	}
	return cmd
}

func cmdWindow() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "window",
		Short:        "move a bordered window with the arrow keys",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			borderName, _ := cmd.Flags().GetString("border")
			style, err := cellpager.ParseBorderStyle(borderName)
			if err != nil {
				return err
			}
			return withSession(cmd, "window", func(s cellpager.Surface) error {
				return demos.Window(s, style)
			})
		},
	}
	return cmd
}

func cmdMenu() *cobra.Command {
	items := []string{"Choice 1", "Choice 2", "Choice 3", "Choice 4", "Exit"}
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringSliceVarP(&items, "item", "i", items, "menu entry (repeatable)")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "menu",
		Short:        "choose an entry from a menu",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := -1
			err := withSession(cmd, "menu", func(s cellpager.Surface) (err error) {
				choice, err = demos.Menu(s, items)
				return err
			})
			if err != nil {
				return err
			}
			if choice >= 0 {
				fmt.Println(items[choice])
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
