package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// Score is the result of a finished round.
type Score struct {
	Correct int `yaml:"correct"`
	Total   int `yaml:"total"`
}

// Round is a mini-game round played one question at a time.
type Round interface {
	// Session plays the next question and returns errEnd when none are left.
	Session(ctx context.Context) error
	Score() Score
}

// GameCLI reads answers from stdin and prints questions and feedback.
type GameCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewGameCLI(stdin io.Reader, stdout io.Writer) *GameCLI {
	return &GameCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run plays round until it ends, the input runs out or ctx is done.
func (cli *GameCLI) Run(ctx context.Context, round Round) (Score, error) {
	for {
		if err := ctx.Err(); err != nil {
			return round.Score(), err
		}
		if err := round.Session(ctx); err != nil {
			if errors.Is(err, errEnd) {
				return round.Score(), nil
			}
			return round.Score(), fmt.Errorf("play round: %w", err)
		}
	}
}

func (cli *GameCLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, format, args...)
}

func (cli *GameCLI) correct(format string, args ...any) {
	cli.printf("✅ ")
	_, _ = cli.green.Fprintf(cli.stdoutWriter, format+"\n", args...)
}

func (cli *GameCLI) wrong(format string, args ...any) {
	cli.printf("❌ ")
	_, _ = cli.red.Fprintf(cli.stdoutWriter, format+"\n", args...)
}

// readLine returns the next trimmed input line. Running out of input ends the round.
func (cli *GameCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errEnd
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (cli *GameCLI) ask(prompt string) (string, error) {
	cli.printf("%s ", prompt)
	return cli.readLine()
}

// choose lists options and returns the zero-based index picked.
func (cli *GameCLI) choose(options []string) (int, error) {
	for i, option := range options {
		cli.printf("  %d. %s\n", i+1, option)
	}
	for {
		answer, err := cli.ask(">")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		cli.printf("Please enter a number between 1 and %d\n", len(options))
	}
}

// Confirm asks a yes/no question. Anything but y or yes, including running
// out of input, is a no.
func (cli *GameCLI) Confirm(prompt string) (bool, error) {
	answer, err := cli.ask(prompt + " [y/N]")
	if errors.Is(err, errEnd) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
