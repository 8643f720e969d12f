// Package console provides the interactive terminal front ends for the
// stopwatch and the multi-runner race.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/jimmitjoo/hogby-pace/internal/services/export"
)

// handler executes one command line. It reports true when the console
// should exit.
type handler interface {
	execute(cmd string, args []string) bool
	printHelp()
	completer() *readline.PrefixCompleter
}

// base holds what every console shares.
type base struct {
	out      io.Writer
	exporter *export.Service
	format   export.Format
	logger   zerolog.Logger
	confirm  func(prompt string) bool
}

func (b *base) printf(format string, args ...any) {
	fmt.Fprintf(b.out, format, args...)
}

func (b *base) println(args ...any) {
	fmt.Fprintln(b.out, args...)
}

func (b *base) export(sheet export.Sheet, args []string) {
	format := b.format
	if len(args) > 0 {
		f, err := export.ParseFormat(args[0])
		if err != nil {
			b.println(err)
			return
		}
		format = f
	}
	path, err := b.exporter.Export(sheet, format)
	if err != nil {
		b.printf("Export failed: %v\n", err)
		return
	}
	b.printf("Wrote %s\n", path)
}

// dispatch splits a line and hands it to h.
func dispatch(h handler, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	switch cmd {
	case "help", "?":
		h.printHelp()
		return false
	case "quit", "exit", "q":
		return true
	}
	return h.execute(cmd, parts[1:])
}

// run drives h from a readline prompt until quit, EOF or ctx is done.
func run(ctx context.Context, prompt string, h handler, b *base) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		AutoComplete:    h.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	b.out = rl.Stdout()
	b.confirm = func(question string) bool {
		rl.SetPrompt(question + " [y/N] ")
		defer rl.SetPrompt(prompt)
		answer, err := rl.Readline()
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	h.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if dispatch(h, line) {
			return nil
		}
	}
}
