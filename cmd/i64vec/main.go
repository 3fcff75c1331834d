package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// i64vec produces reference tables for the emulated 64-bit integer using the
// native int64, and checks the emulation against those same tables.

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cmd := rootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "i64vec",
		Short:         "Reference vectors for the emulated 64-bit integer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		genCmd(),
		checkCmd(),
	)
	return cmd
}
