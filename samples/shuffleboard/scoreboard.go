package shuffleboard

import (
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-store-go/we"
)

type Scoreboard = we.Store[Scores, Action]

func NewScoreboard(log *zerolog.Logger) (*Scoreboard, error) {
	return we.New[Scores, Action](Reducer(), we.WithLogger[Scores, Action](log))
}
