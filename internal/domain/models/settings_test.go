package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoteValue(t *testing.T) {
	tests := []struct {
		in   string
		want VoteValue
	}{
		{"yes", VoteYes},
		{"yEs", VoteYes},
		{"NO", VoteNo},
		{"Abstain", VoteAbstain},
		{"aBsTaIn", VoteAbstain},
	}
	for _, tt := range tests {
		got, err := ParseVoteValue(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseVoteValue("maybe")
	assert.ErrorContains(t, err, "invalid vote")
}
