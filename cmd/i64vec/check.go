package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeebo/mwc"

	num "github.com/shabbyrobe/go-num32"
	"github.com/shabbyrobe/go-num32/internal/vectors"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [op...]",
		Short: "Compare the emulated operations against int64",
		Long: "Compare the emulated operations against int64 over the fixed test\n" +
			"patterns, plus --random extra operands per op. With no ops, all of\n" +
			"them are checked: " + opList(),
		RunE: runCheck,
	}
	cmd.Flags().Int("random", 0, "extra random operands per op")
	cmd.Flags().BoolP("verbose", "v", false, "print a summary line per op")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	random, _ := cmd.Flags().GetInt("random")
	verbose, _ := cmd.Flags().GetBool("verbose")

	ops := vectors.AllOps
	if len(args) > 0 {
		ops = nil
		for _, arg := range args {
			op, err := vectors.ParseOp(arg)
			if err != nil {
				return errors.Wrap(err, "check")
			}
			ops = append(ops, op)
		}
	}

	rng := mwc.Rand()
	out := cmd.OutOrStdout()

	var failed int
	for _, op := range ops {
		rows := append(vectors.Table(op), randomRows(op, random, &rng)...)
		bad := checkRows(out, op, rows)
		if verbose {
			fmt.Fprintf(out, "%s: %d/%d failed\n", op, bad, len(rows))
		}
		failed += bad
	}

	if failed > 0 {
		return errors.Errorf("check: %d mismatches", failed)
	}
	return nil
}

func checkRows(w io.Writer, op vectors.Op, rows []vectors.Row) (failed int) {
	for _, row := range rows {
		if row.Skip {
			continue
		}
		got := apply(op, row)
		if got != row.Want {
			failed++
			fmt.Fprintf(w, "%s: got %s, want %s\n", formatRow(op, row), got, row.Want)
		}
	}
	return failed
}

// apply runs op through the emulated type.
func apply(op vectors.Op, row vectors.Row) vectors.Pattern {
	a := num.I64FromRaw(row.A.Hi, row.A.Lo)
	b := num.I64FromRaw(row.B.Hi, row.B.Lo)

	var v num.I64
	switch op {
	case vectors.OpAdd:
		v = a.Add(b)
	case vectors.OpSub:
		v = a.Sub(b)
	case vectors.OpMul:
		v = a.Mul(b)
	case vectors.OpQuo:
		v = a.Quo(b)
	case vectors.OpRem:
		v = a.Rem(b)
	case vectors.OpLsh:
		v = a.Lsh(row.N)
	case vectors.OpRsh:
		v = a.Rsh(row.N)
	case vectors.OpURsh:
		v = a.URsh(row.N)
	case vectors.OpFromDouble:
		// Out of range input clamps; the error only says so.
		v, _ = num.I64FromFloat64(row.F)
	default:
		panic(fmt.Errorf("i64vec: unsupported op %q", op))
	}

	hi, lo := v.Raw()
	return vectors.Pattern{Hi: hi, Lo: lo}
}

func randomRows(op vectors.Op, n int, source num.RandSource) []vectors.Row {
	rows := make([]vectors.Row, 0, n)
	for i := 0; i < n; i++ {
		a := randomPattern(source)
		switch {
		case op.Binary():
			rows = append(rows, vectors.BinaryRow(op, a, randomPattern(source)))
		case op.Shift():
			// -96..95 covers negative counts and counts past 64.
			count := int32(source.Uint64()%192) - 96
			rows = append(rows, vectors.ShiftRow(op, a, count))
		default:
			rows = append(rows, vectors.FloatRow(a, float64(a.Int64())))
		}
	}
	return rows
}

func randomPattern(source num.RandSource) vectors.Pattern {
	hi, lo := num.RandI64(source).Raw()
	return vectors.Pattern{Hi: hi, Lo: lo}
}
