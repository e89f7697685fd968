package main

import (
	"fmt"
	"log"
	"os"

	"github.com/phroun/cellpager"
	"github.com/spf13/cobra"
)

func main() {
	if err := cmdRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdRoot() *cobra.Command {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("backend", "ansi", "display backend (ansi or tcell)")
		cmd.PersistentFlags().String("border", "none", "frame drawn around the ansi surface (none, single, double, heavy, rounded)")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().String("indicator", "", "text shown while waiting for a key")
		cmd.PersistentFlags().String("log-file", "", "append logs to this file")
		cmd.PersistentFlags().String("theme", "", "load highlight colors from a TOML file")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "cellpager",
		Short: "Terminal source pager with keyword highlighting",
		Long:  `Page through source files a screenful at a time, coloring keywords, types, comments and literals.`,
	}
	cmd.AddCommand(cmdPager())
	cmd.AddCommand(cmdHello())
	cmd.AddCommand(cmdKeypress())
	cmd.AddCommand(cmdWindow())
	cmd.AddCommand(cmdMenu())
	cmd.AddCommand(cmdVersion())
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(cellpager.Version().String())
				return nil
			}
			fmt.Println(cellpager.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
