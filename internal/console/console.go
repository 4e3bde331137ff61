// Package console implements the interactive administrator and client menus.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"salonbook/internal/domain"
)

type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	stopWord string

	catalog  CatalogService
	schedule ScheduleService
	bookings BookingService
	log      *zap.Logger
}

type Options struct {
	In       io.Reader
	Out      io.Writer
	StopWord string
	Catalog  CatalogService
	Schedule ScheduleService
	Bookings BookingService
	Log      *zap.Logger
}

func New(opts Options) *Console {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	stop := strings.TrimSpace(opts.StopWord)
	if stop == "" {
		stop = "stop"
	}
	return &Console{
		in:       bufio.NewScanner(opts.In),
		out:      opts.Out,
		stopWord: stop,
		catalog:  opts.Catalog,
		schedule: opts.Schedule,
		bookings: opts.Bookings,
		log:      log,
	}
}

// Run shows the main menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.println("")
		c.println("1. Administrator")
		c.println("2. Client")
		c.println("0. Exit")

		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = c.adminMenu(ctx)
		case "2":
			err = c.clientFlow(ctx)
		case "0":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Unknown option.")
			continue
		}
		if err != nil {
			return ignoreEOF(err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// prompt prints label and reads one trimmed line. It returns io.EOF when input ends.
func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) isStop(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), c.stopWord)
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrValidation, s)
	}
	return n, nil
}

// promptInt reads a number. A malformed value is returned as a validation
// error; callers abort the current action on it.
func (c *Console) promptInt(label string) (int64, error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	return parseInt(line)
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := parseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// report prints err in user terms. It returns io.EOF and context errors
// unchanged so callers can stop.
func (c *Console) report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		return err
	case errors.Is(err, domain.ErrValidation):
		c.printf("Invalid input: %v\n", err)
	case errors.Is(err, domain.ErrNotFound):
		c.printf("Not found: %v\n", err)
	case errors.Is(err, domain.ErrSlotUnavailable):
		c.println("Sorry, this slot is no longer available.")
	case errors.Is(err, domain.ErrDayHasBookings):
		c.printf("Day has bookings and was left unchanged: %v\n", err)
	default:
		c.log.Error("action failed", zap.Error(err))
		c.printf("An error occurred: %v\n", err)
	}
	return nil
}
