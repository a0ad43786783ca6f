package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(context.Context, string) (bool, error) {
	return false, nil
}

func TestUniqueSlugBasic(t *testing.T) {
	got, err := uniqueSlug(context.Background(), "Google Backend Intern", neverTaken)
	require.NoError(t, err)
	assert.Equal(t, "google-backend-intern", got)
}

func TestUniqueSlugCollisionGetsSuffix(t *testing.T) {
	taken := map[string]bool{"google-backend-intern": true}
	exists := func(_ context.Context, s string) (bool, error) {
		return taken[s], nil
	}

	got, err := uniqueSlug(context.Background(), "Google Backend Intern", exists)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "google-backend-intern-"))
	assert.Greater(t, len(got), len("google-backend-intern-"))
	assert.Equal(t, strings.ToLower(got), got)
}

func TestUniqueSlugNormalizesPunctuation(t *testing.T) {
	got, err := uniqueSlug(context.Background(), "Is C++ still worth learning?", neverTaken)
	require.NoError(t, err)
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "?")
}
