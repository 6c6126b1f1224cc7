package we

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCovertsToISODatetime(t *testing.T) {
	timestamp := string(InitialRevision.Timestamp())
	assert.Equal(t, timestamp, time.Unix(0, 0).UTC().Format(RFC3339Milli))

	now := time.Now()
	generator := NewRevisionGenerator()
	revision := generator.NewRevision(now)

	timestamp = string(revision.Timestamp())
	assert.Equal(t, now.UTC().Format(RFC3339Milli), timestamp)

	parsed, err := revision.Timestamp().Time()
	if assert.NoError(t, err) {
		assert.Equal(t, now.UnixMilli(), parsed.UnixMilli())
	}
}

func TestRevisionsAreOrdered(t *testing.T) {
	generator := NewRevisionGenerator()
	now := time.Now()

	first := generator.NewRevision(now)
	second := generator.NewRevision(now)

	assert.Less(t, InitialRevision.String(), first.String())
	assert.Less(t, first.String(), second.String())
}
