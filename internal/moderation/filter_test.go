package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The dictionary uses neutral words to keep the cases readable; matching is
// the same machinery the default deny list runs through.
func TestFilterFlagged(t *testing.T) {
	req := require.New(t)
	filter, err := New([]string{"badger", "snake", "mushroom"})
	req.NoError(err)

	tests := []struct {
		name    string
		input   string
		flagged bool
	}{
		{
			name:    "plain match",
			input:   "look, a badger",
			flagged: true,
		},
		{
			name:    "uppercase",
			input:   "A BADGER!",
			flagged: true,
		},
		{
			name:    "leet speak",
			input:   "b4dg3r incoming",
			flagged: true,
		},
		{
			name:    "punctuation noise",
			input:   "s.n-a k.e",
			flagged: true,
		},
		{
			name:    "clean text",
			input:   "just a hedgehog",
			flagged: false,
		},
		{
			name:    "empty text",
			input:   "",
			flagged: false,
		},
		{
			name:    "symbols only",
			input:   "?!... -",
			flagged: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.flagged, filter.Flagged(tc.input))
		})
	}
}

func TestFilterMatches(t *testing.T) {
	req := require.New(t)
	filter, err := New([]string{"badger", "snake"})
	req.NoError(err)

	matches := filter.Matches("a badger and a SNAKE walk into a bar")
	req.Len(matches, 2)
	req.Contains(matches, "badger")
	req.Contains(matches, "snake")
}

func TestFilterEmptyDenyList(t *testing.T) {
	req := require.New(t)
	filter, err := New(nil)
	req.NoError(err)

	req.False(filter.Flagged("anything goes"))
	req.Empty(filter.Matches("anything goes"))
}

func TestDefaultWordsBuild(t *testing.T) {
	filter, err := New(DefaultWords)
	require.NoError(t, err)
	require.True(t, filter.Flagged("oh shit"))
	require.False(t, filter.Flagged("hello there"))
}
