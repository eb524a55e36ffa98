package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/bitvec"
)

var (
	// ErrUnknownCommand is returned for a statement with an unrecognized name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a command gets the wrong number of arguments.
	ErrUsage = errors.New("wrong number of arguments")
)

// Runner executes commands against its current vector.
type Runner struct {
	vec    *bitvec.BitVector
	out    io.Writer
	logger *bitvec.Logger
}

// New creates a Runner whose current vector is empty.
func New(optFns ...Option) *Runner {
	opts := options{
		logger: bitvec.NoopLogger(),
		out:    io.Discard,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		vec:    &bitvec.BitVector{},
		out:    opts.out,
		logger: opts.logger,
	}
}

// Vector returns the current vector.
func (r *Runner) Vector() *bitvec.BitVector {
	return r.vec
}

// Run parses src and executes every command, stopping at the first failure.
func (r *Runner) Run(ctx context.Context, src io.Reader) error {
	cmds, err := Parse(src)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Exec(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// RunString is a shorthand for Run over a string.
func (r *Runner) RunString(ctx context.Context, src string) error {
	return r.Run(ctx, strings.NewReader(src))
}

// Exec executes a single command.
func (r *Runner) Exec(ctx context.Context, cmd Command) error {
	err := r.exec(cmd)
	r.logger.LogOp(ctx, cmd.Name, r.vec.Size(), err)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd.Name, err)
	}
	return nil
}

func (r *Runner) exec(cmd Command) error {
	args := cmd.Args
	switch cmd.Name {
	case "new":
		if len(args) < 1 || len(args) > 2 {
			return ErrUsage
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		var value uint64
		if len(args) == 2 {
			if value, err = parseWord(args[1]); err != nil {
				return err
			}
		}
		v, err := bitvec.NewWithValue(n, value)
		if err != nil {
			return err
		}
		r.vec = v
		return nil

	case "parse":
		if len(args) != 1 {
			return ErrUsage
		}
		v, err := bitvec.Parse(args[0])
		if err != nil {
			return err
		}
		r.vec = v
		return nil

	case "push":
		if len(args) != 1 {
			return ErrUsage
		}
		bit, err := strconv.ParseBool(args[0])
		if err != nil {
			return err
		}
		r.vec.PushBack(bit)
		return nil

	case "resize":
		if len(args) < 1 || len(args) > 2 {
			return ErrUsage
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		fill := false
		if len(args) == 2 {
			if fill, err = strconv.ParseBool(args[1]); err != nil {
				return err
			}
		}
		return r.vec.Resize(n, fill)

	case "set":
		switch len(args) {
		case 0:
			return r.vec.SetAll()
		case 1, 2:
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			value := true
			if len(args) == 2 {
				if value, err = strconv.ParseBool(args[1]); err != nil {
					return err
				}
			}
			return r.vec.Set(i, value)
		default:
			return ErrUsage
		}

	case "reset":
		switch len(args) {
		case 0:
			return r.vec.ResetAll()
		case 1:
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return r.vec.Reset(i)
		default:
			return ErrUsage
		}

	case "get":
		if len(args) != 1 {
			return ErrUsage
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		bit, err := r.vec.Get(i)
		if err != nil {
			return err
		}
		if bit {
			return r.println("1")
		}
		return r.println("0")

	case "not":
		if len(args) != 0 {
			return ErrUsage
		}
		v, err := r.vec.Not()
		if err != nil {
			return err
		}
		r.vec = v
		return nil

	case "and", "or", "xor":
		if len(args) != 1 {
			return ErrUsage
		}
		other, err := bitvec.Parse(args[0])
		if err != nil {
			return err
		}
		switch cmd.Name {
		case "and":
			return r.vec.And(other)
		case "or":
			return r.vec.Or(other)
		default:
			return r.vec.Xor(other)
		}

	case "shl", "shr":
		if len(args) != 1 {
			return ErrUsage
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if cmd.Name == "shl" {
			return r.vec.ShiftLeft(n)
		}
		return r.vec.ShiftRight(n)

	case "clear":
		if len(args) != 0 {
			return ErrUsage
		}
		r.vec.Clear()
		return nil

	case "print":
		if len(args) != 0 {
			return ErrUsage
		}
		s, err := r.vec.ToString()
		if err != nil {
			return err
		}
		return r.println(s)

	case "count":
		if len(args) != 0 {
			return ErrUsage
		}
		c, err := r.vec.Count()
		if err != nil {
			return err
		}
		return r.println(strconv.Itoa(c))

	case "size":
		if len(args) != 0 {
			return ErrUsage
		}
		return r.println(strconv.Itoa(r.vec.Size()))

	case "empty":
		if len(args) != 0 {
			return ErrUsage
		}
		return r.println(strconv.FormatBool(r.vec.IsEmpty()))

	case "any", "none":
		if len(args) != 0 {
			return ErrUsage
		}
		query := r.vec.Any
		if cmd.Name == "none" {
			query = r.vec.None
		}
		ok, err := query()
		if err != nil {
			return err
		}
		return r.println(strconv.FormatBool(ok))

	default:
		return ErrUnknownCommand
	}
}

func (r *Runner) println(s string) error {
	_, err := fmt.Fprintln(r.out, s)
	return err
}

// parseWord parses a Go integer literal or one of ^0, ^0<<k, ^0>>k.
func parseWord(s string) (uint64, error) {
	rest, ok := strings.CutPrefix(s, "^0")
	if !ok {
		return strconv.ParseUint(s, 0, 64)
	}
	if rest == "" {
		return bitvec.AllOnes, nil
	}
	if len(rest) < 3 {
		return 0, fmt.Errorf("invalid word %q", s)
	}

	k, err := strconv.ParseUint(rest[2:], 10, 6)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: %w", s, err)
	}
	switch rest[:2] {
	case "<<":
		return bitvec.AllOnes << k, nil
	case ">>":
		return bitvec.AllOnes >> k, nil
	default:
		return 0, fmt.Errorf("invalid word %q", s)
	}
}
