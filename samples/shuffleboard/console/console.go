package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-store-go/samples/shuffleboard"
)

var errUnknownInput = errors.New("unknown input")

var (
	leading  = color.New(color.FgGreen, color.Bold)
	trailing = color.New(color.FgYellow)
	level    = color.New(color.FgCyan)
	problem  = color.New(color.FgRed)
)

type Names struct {
	PlayerOne string
	PlayerTwo string
}

// parseInput maps a line of input to an action. quit is set for "q".
func parseInput(line string) (action shuffleboard.Action, quit bool, err error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "1":
		return shuffleboard.AddPlayerOnePoint{}, false, nil
	case "2":
		return shuffleboard.AddPlayerTwoPoint{}, false, nil
	case "r":
		return shuffleboard.ResetScores{}, false, nil
	case "q":
		return nil, true, nil
	default:
		return nil, false, fmt.Errorf("%w %q", errUnknownInput, line)
	}
}

func scoreColors(scores shuffleboard.Scores) (one *color.Color, two *color.Color) {
	switch scores.Leader() {
	case shuffleboard.PlayerOne:
		return leading, trailing
	case shuffleboard.PlayerTwo:
		return trailing, leading
	default:
		return level, level
	}
}

func render(out io.Writer, names Names, scores shuffleboard.Scores) {
	one, two := scoreColors(scores)

	fmt.Fprintf(out, "%s %s : %s %s\n",
		names.PlayerOne,
		one.Sprint(scores.PlayerOneScore),
		two.Sprint(scores.PlayerTwoScore),
		names.PlayerTwo,
	)
}

func play(ctx context.Context, in io.Reader, out io.Writer, names Names, log *zerolog.Logger) error {
	scoreboard, err := shuffleboard.NewScoreboard(log)
	if err != nil {
		return err
	}

	unsubscribe := scoreboard.Subscribe(func() {
		render(out, names, scoreboard.GetState())
	})
	defer unsubscribe()

	render(out, names, scoreboard.GetState())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		action, quit, err := parseInput(line)
		if quit {
			return nil
		}
		if err != nil {
			problem.Fprintln(out, err)
			continue
		}

		if err := scoreboard.Dispatch(ctx, action); err != nil {
			problem.Fprintln(out, err)
		}
	}

	return scanner.Err()
}
