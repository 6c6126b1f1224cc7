package shuffleboard

import "github.com/weegigs/wee-store-go/we"

func Decoder() we.ActionDecoder[Action] {
	return &we.ActionRouter[Action]{
		Decoders: map[we.ActionType]we.ActionDecoder[Action]{
			AddPlayerOnePointAction: we.As[Action, AddPlayerOnePoint](),
			AddPlayerTwoPointAction: we.As[Action, AddPlayerTwoPoint](),
			AwardPointsAction:       we.As[Action, AwardPoints](),
			ResetScoresAction:       we.As[Action, ResetScores](),
		},
		Unrecognized: func(actionType we.ActionType) Action {
			return Unrecognized{Type: actionType}
		},
	}
}
