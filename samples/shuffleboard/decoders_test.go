package shuffleboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weegigs/wee-store-go/we"
)

func decodesSimpleActions(t *testing.T) {
	decoder := Decoder()
	ctx := context.Background()

	action, err := decoder.Decode(ctx, we.RemoteAction{ActionType: AddPlayerOnePointAction})
	assert.NoError(t, err)
	assert.Equal(t, AddPlayerOnePoint{}, action)

	action, err = decoder.Decode(ctx, we.RemoteAction{ActionType: AddPlayerTwoPointAction, Payload: []byte("null")})
	assert.NoError(t, err)
	assert.Equal(t, AddPlayerTwoPoint{}, action)

	action, err = decoder.Decode(ctx, we.RemoteAction{ActionType: ResetScoresAction, Payload: []byte("{}")})
	assert.NoError(t, err)
	assert.Equal(t, ResetScores{}, action)
}

func decodesPayloads(t *testing.T) {
	action, err := Decoder().Decode(context.Background(), we.RemoteAction{
		ActionType: AwardPointsAction,
		Payload:    []byte(`{"player":2,"points":3}`),
	})

	assert.NoError(t, err)
	assert.Equal(t, AwardPoints{Player: PlayerTwo, Points: 3}, action)
}

func rejectsMalformedPayloads(t *testing.T) {
	_, err := Decoder().Decode(context.Background(), we.RemoteAction{
		ActionType: AwardPointsAction,
		Payload:    []byte(`{"player":"two"}`),
	})

	assert.Error(t, err)
}

func mapsUnknownTypesToUnrecognized(t *testing.T) {
	decoder := Decoder()

	action, err := decoder.Decode(context.Background(), we.RemoteAction{ActionType: "SCRATCH"})
	assert.NoError(t, err)
	assert.Equal(t, Unrecognized{Type: "SCRATCH"}, action)

	action, err = decoder.Decode(context.Background(), we.RemoteAction{})
	assert.NoError(t, err)
	assert.Equal(t, Unrecognized{}, action)
}

func TestDecoder(t *testing.T) {
	t.Run("decodes simple actions", decodesSimpleActions)
	t.Run("decodes payloads", decodesPayloads)
	t.Run("rejects malformed payloads", rejectsMalformedPayloads)
	t.Run("maps unknown types to unrecognized", mapsUnknownTypesToUnrecognized)
}
