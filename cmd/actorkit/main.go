// Command actorkit is a thin CLI wrapper proving the library is
// embeddable. It implements no runtime logic of its own — spec.md places
// the command-line entry point out of scope; this exists only so
// github.com/spf13/cobra, part of the reference pack's stack, has a home
// in the tree rather than being dropped outright.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "actorkit",
		Short: "actorkit is a single-process actor runtime library",
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the actorkit version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Print a note that actorkit is a library; runs no actor system",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "actorkit is a library; embed it in a Go program to run an actor system")
			return nil
		},
	})

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
