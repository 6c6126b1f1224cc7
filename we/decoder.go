package we

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
)

type ActionDecoder[A any] interface {
	Decode(ctx context.Context, remote RemoteAction) (A, error)
}

// DecoderFunction decodes the remote payload into T before converting it to
// an action. An absent payload leaves T at its zero value.
type DecoderFunction[A any, T any] func(ctx context.Context, payload T) (A, error)

func (f DecoderFunction[A, T]) Decode(ctx context.Context, remote RemoteAction) (A, error) {
	var payload T

	if len(remote.Payload) > 0 && string(remote.Payload) != "null" {
		if err := json.UnmarshalContext(ctx, remote.Payload, &payload); err != nil {
			var action A
			return action, errors.Wrapf(err, "failed to decode payload for %s", remote.ActionType)
		}
	}

	return f(ctx, payload)
}

// As decodes a remote action straight into T, which must itself be an A.
func As[A any, T any]() ActionDecoder[A] {
	var decoder DecoderFunction[A, T] = func(ctx context.Context, payload T) (A, error) {
		action, ok := any(payload).(A)
		if !ok {
			var zero A
			return zero, fmt.Errorf("%T is not a valid action", payload)
		}

		return action, nil
	}

	return decoder
}

// ActionRouter selects a decoder by action type. Missing or unknown types are
// handed to Unrecognized so the reducer can treat them as identity
// transitions; without it they fail with ActionNotFoundError.
type ActionRouter[A any] struct {
	Decoders     map[ActionType]ActionDecoder[A]
	Unrecognized func(actionType ActionType) A
}

func (r *ActionRouter[A]) Decode(ctx context.Context, remote RemoteAction) (A, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("decode %s", remote.ActionType))
	defer span.End()

	decoder := r.Decoders[remote.ActionType]
	if decoder == nil {
		if r.Unrecognized != nil {
			return r.Unrecognized(remote.ActionType), nil
		}

		var action A
		return action, ActionNotFound(remote.ActionType)
	}

	return decoder.Decode(ctx, remote)
}
