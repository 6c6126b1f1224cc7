package we

import (
	"github.com/goccy/go-json"
)

type ActionType string

func (at ActionType) String() string {
	return string(at)
}

// ActionTyped is implemented by actions that carry an explicit discriminant.
type ActionTyped interface {
	ActionType() ActionType
}

func ActionTypeOf(action any) ActionType {
	switch a := action.(type) {
	case ActionTyped:
		return a.ActionType()
	case RemoteAction:
		return a.ActionType
	default:
		return ActionType(NameOf(action))
	}
}

// RemoteAction is the wire form of an action: its discriminant plus an
// optional JSON payload.
type RemoteAction struct {
	ActionType ActionType      `json:"type"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}
