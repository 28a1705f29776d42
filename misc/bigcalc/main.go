package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/spf13/cobra"
)

// A small calculator over bignum.BigUint, handy for checking results by hand
// and for eyeballing limb layouts with --dump.

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type calc struct {
	out  io.Writer
	dump bool
	bits bool
}

func run(args []string, out io.Writer) error {
	c := &calc{out: out}
	root := c.command()
	root.SetArgs(args)
	root.SetOut(out)
	return root.Execute()
}

func (c *calc) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision unsigned integer calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&c.dump, "dump", false, "dump the result's limbs")
	root.PersistentFlags().BoolVar(&c.bits, "bits", false, "print the result as 64-bit binary groups")

	binary := func(use, short string, op func(a, b bignum.BigUint) (bignum.BigUint, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <b>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := parseOperands(args)
				if err != nil {
					return err
				}
				result, err := op(ops[0], ops[1])
				if err != nil {
					return err
				}
				return c.print(result)
			},
		}
	}

	shift := func(use, short string, op func(a bignum.BigUint, n uint) bignum.BigUint) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <a> <bits>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := parseOperands(args[:1])
				if err != nil {
					return err
				}
				n, err := strconv.ParseUint(args[1], 10, 0)
				if err != nil {
					return errors.Wrapf(err, "bigcalc: shift amount %q", args[1])
				}
				return c.print(op(ops[0], uint(n)))
			},
		}
	}

	modexp := &cobra.Command{
		Use:   "modexp <base> <exp> <mod>",
		Short: "Modular exponentiation, (base ** exp) % mod",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			result, err := ops[0].ModExp(ops[1], ops[2])
			if err != nil {
				return err
			}
			return c.print(result)
		},
	}

	root.AddCommand(
		binary("add", "Add two values", func(a, b bignum.BigUint) (bignum.BigUint, error) { return a.Add(b), nil }),
		binary("sub", "Subtract b from a", bignum.BigUint.Sub),
		binary("mul", "Multiply two values", func(a, b bignum.BigUint) (bignum.BigUint, error) { return a.Mul(b), nil }),
		binary("quo", "Truncated quotient of a / b", bignum.BigUint.Quo),
		binary("rem", "Remainder of a / b", bignum.BigUint.Rem),
		binary("exp", "Raise a to the power of b", func(a, b bignum.BigUint) (bignum.BigUint, error) { return a.Exp(b), nil }),
		shift("lsh", "Shift a left", bignum.BigUint.Lsh),
		shift("rsh", "Shift a right", bignum.BigUint.Rsh),
		modexp,
	)
	return root
}

func (c *calc) print(v bignum.BigUint) error {
	if c.bits {
		if _, err := fmt.Fprintln(c.out, v.BitString()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(c.out, v.String()); err != nil {
			return err
		}
	}
	if c.dump {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true}
		cfg.Fdump(c.out, v.Limbs())
	}
	return nil
}

func parseOperands(args []string) ([]bignum.BigUint, error) {
	ops := make([]bignum.BigUint, len(args))
	for i, arg := range args {
		v, err := bignum.FromString(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "bigcalc: operand %d", i+1)
		}
		ops[i] = v
	}
	return ops, nil
}
