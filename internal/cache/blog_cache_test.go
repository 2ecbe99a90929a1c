package cache

import (
	"testing"
	"time"

	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeList_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []dom.Blog{{ID: 1, Title: "a", Description: "b", CreatedAt: time.Now().UTC().Truncate(time.Second)}}
	b, err := encodeList(in)
	require.NoError(t, err)

	out, err := decodeList(b)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeDecodeList_EmptyListIsNotAMiss(t *testing.T) {
	t.Parallel()

	// A nil list must be stored as an empty JSON array and decode back to a
	// non-nil slice, so a cached empty blog table reads as a hit.
	b, err := encodeList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	out, err := decodeList(b)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeList_Malformed(t *testing.T) {
	t.Parallel()

	_, err := decodeList([]byte("{not json"))
	require.Error(t, err)
}
