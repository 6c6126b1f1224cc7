package shuffleboard

import (
	"context"
	"math"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-store-go/we"
)

func addsPlayerOnePoint(t *testing.T) {
	original := Scores{PlayerOneScore: 0, PlayerTwoScore: 0}

	next, err := Reduce(original, AddPlayerOnePoint{})

	assert.NoError(t, err)
	assert.Equal(t, Scores{PlayerOneScore: 1, PlayerTwoScore: 0}, next)
	assert.Equal(t, Scores{PlayerOneScore: 0, PlayerTwoScore: 0}, original)
}

func addsPlayerTwoPointsInSequence(t *testing.T) {
	state := Scores{}

	for i := 0; i < 2; i++ {
		var err error
		state, err = Reduce(state, AddPlayerTwoPoint{})
		assert.NoError(t, err)
	}

	assert.Equal(t, Scores{PlayerOneScore: 0, PlayerTwoScore: 2}, state)
}

func awardsPoints(t *testing.T) {
	state := Scores{PlayerOneScore: 2, PlayerTwoScore: 1}

	next, err := Reduce(state, AwardPoints{Player: PlayerTwo, Points: 3})
	assert.NoError(t, err)
	assert.Equal(t, Scores{PlayerOneScore: 2, PlayerTwoScore: 4}, next)

	next, err = Reduce(next, AwardPoints{Player: PlayerOne, Points: 0})
	assert.NoError(t, err)
	assert.Equal(t, Scores{PlayerOneScore: 2, PlayerTwoScore: 4}, next)
}

func rejectsInvalidAwards(t *testing.T) {
	state := Scores{PlayerOneScore: 2, PlayerTwoScore: 1}

	_, err := Reduce(state, AwardPoints{Player: PlayerOne, Points: -1})
	assert.ErrorIs(t, err, ErrInvalidAward)

	_, err = Reduce(state, AwardPoints{Player: NoPlayer, Points: 1})
	assert.ErrorIs(t, err, ErrInvalidAward)

	assert.Equal(t, Scores{PlayerOneScore: 2, PlayerTwoScore: 1}, state)
}

func rejectsOverflowingScores(t *testing.T) {
	maxed := Scores{PlayerOneScore: math.MaxInt, PlayerTwoScore: math.MaxInt - 2}

	_, err := Reduce(maxed, AddPlayerOnePoint{})
	assert.ErrorIs(t, err, ErrScoreOverflow)

	_, err = Reduce(maxed, AwardPoints{Player: PlayerTwo, Points: 3})
	assert.ErrorIs(t, err, ErrScoreOverflow)

	next, err := Reduce(maxed, AwardPoints{Player: PlayerTwo, Points: 2})
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt, next.PlayerTwoScore)

	decoded, err := Decoder().Decode(context.Background(), we.RemoteAction{
		ActionType: AwardPointsAction,
		Payload:    []byte(`{"player":1,"points":9223372036854775807}`),
	})
	require.NoError(t, err)

	state, err := Reduce(Scores{}, decoded)
	require.NoError(t, err)

	state, err = Reduce(state, AddPlayerOnePoint{})
	assert.ErrorIs(t, err, ErrScoreOverflow)
	assert.GreaterOrEqual(t, state.PlayerOneScore, 0)
}

func resetsScores(t *testing.T) {
	next, err := Reduce(Scores{PlayerOneScore: 7, PlayerTwoScore: 3}, ResetScores{})

	assert.NoError(t, err)
	assert.Equal(t, Scores{}, next)
}

func ignoresUnrecognizedActions(t *testing.T) {
	state := Scores{PlayerOneScore: 4, PlayerTwoScore: 5}

	next, err := Reduce(state, Unrecognized{Type: "ADD_PLAYER_THREE_POINT"})
	assert.NoError(t, err)
	assert.Equal(t, state, next)

	next, err = Reduce(state, Unrecognized{})
	assert.NoError(t, err)
	assert.Equal(t, state, next)

	next, err = Reduce(state, nil)
	assert.NoError(t, err)
	assert.Equal(t, state, next)
}

func reportsLeader(t *testing.T) {
	assert.Equal(t, NoPlayer, Scores{}.Leader())
	assert.Equal(t, PlayerOne, Scores{PlayerOneScore: 2, PlayerTwoScore: 1}.Leader())
	assert.Equal(t, PlayerTwo, Scores{PlayerOneScore: 2, PlayerTwoScore: 3}.Leader())
}

func TestReducer(t *testing.T) {
	t.Run("adds a point for player one", addsPlayerOnePoint)
	t.Run("adds points for player two in sequence", addsPlayerTwoPointsInSequence)
	t.Run("awards points", awardsPoints)
	t.Run("rejects invalid awards", rejectsInvalidAwards)
	t.Run("rejects overflowing scores", rejectsOverflowingScores)
	t.Run("resets scores", resetsScores)
	t.Run("ignores unrecognized actions", ignoresUnrecognizedActions)
	t.Run("reports the leader", reportsLeader)
}

func randomScores(f faker.Faker) Scores {
	return Scores{
		PlayerOneScore: f.IntBetween(0, 100),
		PlayerTwoScore: f.IntBetween(0, 100),
	}
}

func randomAction(f faker.Faker) Action {
	switch f.IntBetween(0, 4) {
	case 0:
		return AddPlayerOnePoint{}
	case 1:
		return AddPlayerTwoPoint{}
	case 2:
		return AwardPoints{Player: Player(f.IntBetween(0, 2)), Points: f.IntBetween(-2, 5)}
	case 3:
		return ResetScores{}
	default:
		return Unrecognized{Type: we.ActionType(f.Lorem().Word())}
	}
}

func TestReducerValidation(t *testing.T) {
	suite := we.NewReducerValidationSuite[Scores, Action](Reducer(), randomScores, randomAction)
	suite.Run(t)
}
