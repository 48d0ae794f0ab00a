package main

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestParseContract(t *testing.T) {
	h := util.Uint160{1, 2, 3, 4, 5}

	res, err := parseContract(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, res)

	res, err = parseContract(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, res)

	_, err = parseContract("not a contract")
	require.Error(t, err)
}
