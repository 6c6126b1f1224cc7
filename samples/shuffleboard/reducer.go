package shuffleboard

import (
	"errors"
	"fmt"
	"math"

	"github.com/weegigs/wee-store-go/we"
)

var (
	ErrInvalidAward  = errors.New("invalid award")
	ErrScoreOverflow = errors.New("score overflow")
)

func Reduce(state Scores, action Action) (Scores, error) {
	switch a := action.(type) {
	case AddPlayerOnePoint:
		return award(state, AwardPoints{Player: PlayerOne, Points: 1})
	case AddPlayerTwoPoint:
		return award(state, AwardPoints{Player: PlayerTwo, Points: 1})
	case AwardPoints:
		return award(state, a)
	case ResetScores:
		return Scores{}, nil
	case Unrecognized:
		return state, nil
	default:
		return state, nil
	}
}

func award(state Scores, a AwardPoints) (Scores, error) {
	if a.Points < 0 {
		return state, fmt.Errorf("%w: %d points", ErrInvalidAward, a.Points)
	}

	switch a.Player {
	case PlayerOne:
		if a.Points > math.MaxInt-state.PlayerOneScore {
			return state, fmt.Errorf("%w: player one cannot take %d more points", ErrScoreOverflow, a.Points)
		}
		return Scores{
			PlayerOneScore: state.PlayerOneScore + a.Points,
			PlayerTwoScore: state.PlayerTwoScore,
		}, nil
	case PlayerTwo:
		if a.Points > math.MaxInt-state.PlayerTwoScore {
			return state, fmt.Errorf("%w: player two cannot take %d more points", ErrScoreOverflow, a.Points)
		}
		return Scores{
			PlayerOneScore: state.PlayerOneScore,
			PlayerTwoScore: state.PlayerTwoScore + a.Points,
		}, nil
	default:
		return state, fmt.Errorf("%w: unknown player %d", ErrInvalidAward, a.Player)
	}
}

// Reducer declares an empty scoreboard as the starting state.
func Reducer() we.Reducer[Scores, Action] {
	return we.DefaultedReducer[Scores, Action]{
		Initial: Scores{},
		Reducer: Reduce,
	}
}
