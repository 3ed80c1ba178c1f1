// Command shaderlinkc links a bundle of compiled per-stage shader sources
// into one program and reports the result.
//
// Usage:
//
//	shaderlinkc link program.json [--limits limits.toml] [--verbose]
//	shaderlinkc version
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shaderlinkVersion = "0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:   "shaderlinkc",
		Short: "Shader program linker CLI",
	}
	root.AddCommand(getCmdLink())
	root.AddCommand(getCmdVersion())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shaderlinkc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "shaderlinkc version %s\n", shaderlinkVersion)
			return nil
		},
	}
}

func getCmdLink() *cobra.Command {
	var limitsPath string
	var verbose bool

	linkCmd := &cobra.Command{
		Use:   "link <bundle.json>",
		Short: "Link a bundle of compiled shader stages into one program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if !verbose {
				log.SetLevel(logrus.WarnLevel)
			}

			return runLink(cmd, args[0], limitsPath, log)
		},
	}

	linkCmd.Flags().StringVar(&limitsPath, "limits", "", "path to a TOML limits file (default: built-in desktop GL limits)")
	linkCmd.Flags().BoolVar(&verbose, "verbose", false, "log each linker pass as it runs")

	return linkCmd
}
