package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTempPassword_LengthAndAlphabet(t *testing.T) {
	p, err := generateTempPassword()
	require.NoError(t, err)
	require.Len(t, p, tempPasswordLength)

	for _, r := range p {
		require.True(t, strings.ContainsRune(tempPasswordAlphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateTempPassword_NotRepeating(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := generateTempPassword()
		require.NoError(t, err)
		require.False(t, seen[p], "duplicate temporary password generated")
		seen[p] = true
	}
}
