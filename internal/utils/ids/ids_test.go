package ids

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsMonotonic(t *testing.T) {
	prev := New()
	for i := 0; i < 1000; i++ {
		next := New()
		require.Less(t, prev, next, "ids must sort in generation order")
		prev = next
	}
}

func TestNew_IsValidULID(t *testing.T) {
	_, err := ulid.ParseStrict(New())
	assert.NoError(t, err)
}
