package wehttp

import (
	"github.com/goccy/go-json"

	"github.com/weegigs/wee-store-go/we"
)

type Resource = map[string]any

type SnapshotSerializer[S any] func(snapshot we.Snapshot[S]) (Resource, error)

// StateSerializer flattens the state's JSON fields into the resource.
func StateSerializer[S any](snapshot we.Snapshot[S]) (Resource, error) {
	serialized, err := json.Marshal(snapshot.State)
	if err != nil {
		return nil, err
	}

	resource := make(Resource)
	if err = json.Unmarshal(serialized, &resource); err != nil {
		return nil, err
	}

	return resource, nil
}

type ResourceEncoder[S any] struct {
	Serializer SnapshotSerializer[S]
}

func (encoder ResourceEncoder[S]) Encode(snapshot we.Snapshot[S]) (Resource, error) {
	serialize := encoder.Serializer
	if serialize == nil {
		serialize = StateSerializer[S]
	}

	resource, err := serialize(snapshot)
	if err != nil {
		return nil, err
	}

	resource["$type"] = snapshot.Type
	resource["$revision"] = snapshot.Revision

	return resource, nil
}
