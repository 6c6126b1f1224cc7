package shuffleboard

import "github.com/weegigs/wee-store-go/we"

type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

// Action is the closed set of scoreboard actions.
type Action interface {
	we.ActionTyped
	scoreboardAction()
}

const AddPlayerOnePointAction = we.ActionType("ADD_PLAYER_ONE_POINT")

type AddPlayerOnePoint struct{}

func (AddPlayerOnePoint) ActionType() we.ActionType {
	return AddPlayerOnePointAction
}

func (AddPlayerOnePoint) scoreboardAction() {}

const AddPlayerTwoPointAction = we.ActionType("ADD_PLAYER_TWO_POINT")

type AddPlayerTwoPoint struct{}

func (AddPlayerTwoPoint) ActionType() we.ActionType {
	return AddPlayerTwoPointAction
}

func (AddPlayerTwoPoint) scoreboardAction() {}

const AwardPointsAction = we.ActionType("AWARD_POINTS")

type AwardPoints struct {
	Player Player `json:"player"`
	Points int    `json:"points"`
}

func (AwardPoints) ActionType() we.ActionType {
	return AwardPointsAction
}

func (AwardPoints) scoreboardAction() {}

const ResetScoresAction = we.ActionType("RESET_SCORES")

type ResetScores struct{}

func (ResetScores) ActionType() we.ActionType {
	return ResetScoresAction
}

func (ResetScores) scoreboardAction() {}

// Unrecognized stands in for actions arriving with a tag this package does not
// know, including an empty one.
type Unrecognized struct {
	Type we.ActionType
}

func (u Unrecognized) ActionType() we.ActionType {
	return u.Type
}

func (Unrecognized) scoreboardAction() {}
