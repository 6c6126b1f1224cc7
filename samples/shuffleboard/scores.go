package shuffleboard

import "github.com/weegigs/wee-store-go/we"

const ScoresState = we.StateType("shuffleboard:scores")

// Scores is the scoreboard for a two player game. Both counters are never
// negative.
type Scores struct {
	PlayerOneScore int `json:"playerOneScore"`
	PlayerTwoScore int `json:"playerTwoScore"`
}

func (Scores) StateType() we.StateType {
	return ScoresState
}

func (s Scores) Leader() Player {
	switch {
	case s.PlayerOneScore > s.PlayerTwoScore:
		return PlayerOne
	case s.PlayerTwoScore > s.PlayerOneScore:
		return PlayerTwo
	default:
		return NoPlayer
	}
}
