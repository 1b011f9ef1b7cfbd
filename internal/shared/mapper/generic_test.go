package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMapSliceWithError(t *testing.T) {
	parse := func(s string) (int, error) { return strconv.Atoi(s) }

	got, err := MapSliceWithError([]string{"1", "2"}, parse)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapSliceWithError([]string{"1", "x"}, parse)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
