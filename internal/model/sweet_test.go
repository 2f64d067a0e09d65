package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		require.True(t, c.IsValid(), c.String())
	}
	require.Len(t, Categories, 7)
	require.False(t, Category("chocolate").IsValid())
	require.False(t, Category("").IsValid())
	require.False(t, Category("Cake").IsValid())
}
