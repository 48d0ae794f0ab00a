package common_test

import (
	"testing"

	"github.com/nspcc-dev/supplychain-contract/common"
	"github.com/stretchr/testify/require"
)

func TestIntLists(t *testing.T) {
	list := []int{3, 1, 3}

	require.Equal(t, 0, common.IndexOfInt(list, 3))
	require.Equal(t, 1, common.IndexOfInt(list, 1))
	require.Equal(t, -1, common.IndexOfInt(list, 2))
	require.True(t, common.ContainsInt(list, 1))
	require.False(t, common.ContainsInt(nil, 1))

	require.Equal(t, []int{3, 1, 3}, common.AppendUniqueInt(list, 1))
	require.Equal(t, []int{3, 1, 3, 2}, common.AppendUniqueInt(list, 2))
}
