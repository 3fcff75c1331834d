package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-num32/internal/vectors"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <op>",
		Short: "Print a table of hi, lo result pairs computed with int64",
		Long: "Print a table of hi, lo result pairs computed with int64.\n\n" +
			"Ops: " + opList() + "\n\n" +
			"Binary ops pair every test pattern with every other; shifts use\n" +
			"every count from 0 to 64. Division by zero prints a zero pair.",
		Args: cobra.ExactArgs(1),
		RunE: runGen,
	}
	cmd.Flags().Bool("dump", false, "dump the full rows instead of the table")
	cmd.Flags().Int("per-line", 3, "pairs per output line")
	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	op, err := vectors.ParseOp(args[0])
	if err != nil {
		return errors.Wrap(err, "gen")
	}
	dump, _ := cmd.Flags().GetBool("dump")
	perLine, _ := cmd.Flags().GetInt("per-line")
	if perLine < 1 {
		return errors.Errorf("gen: --per-line must be at least 1, found %d", perLine)
	}

	rows := vectors.Table(op)
	out := cmd.OutOrStdout()
	if dump {
		spew.Fdump(out, rows)
		return nil
	}
	return errors.Wrapf(writeTable(out, rows, perLine), "gen %s", op)
}

func writeTable(w io.Writer, rows []vectors.Row, perLine int) error {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, row := range rows {
		if i%perLine == 0 {
			sb.WriteString("\t")
		}
		sb.WriteString(row.Want.String())
		sb.WriteString(",")
		if i%perLine == perLine-1 || i == len(rows)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func opList() string {
	names := make([]string, len(vectors.AllOps))
	for i, op := range vectors.AllOps {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

func formatRow(op vectors.Op, row vectors.Row) string {
	switch {
	case op.Binary():
		return fmt.Sprintf("%s(%d, %d)", op, row.A.Int64(), row.B.Int64())
	case op.Shift():
		return fmt.Sprintf("%s(%d, %d)", op, row.A.Int64(), row.N)
	default:
		return fmt.Sprintf("%s(%.0f)", op, row.F)
	}
}
