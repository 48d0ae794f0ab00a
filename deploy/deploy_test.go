package deploy

import (
	"errors"
	"math"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestHeightAlignedTransactionModifier(t *testing.T) {
	t.Run("invalid invocation result state", func(t *testing.T) {
		var res result.Invoke
		res.State = "FAULT" // any non-HALT

		err := heightAlignedTransactionModifier(func() (uint32, error) { return 1, nil })(&res, new(transaction.Transaction))
		require.Error(t, err)
	})

	var validRes result.Invoke
	validRes.State = "HALT"

	t.Run("block count failure", func(t *testing.T) {
		m := heightAlignedTransactionModifier(func() (uint32, error) { return 0, errors.New("any") })
		require.Error(t, m(&validRes, new(transaction.Transaction)))
	})

	for _, tc := range []struct {
		blockCount    uint32
		expectedNonce uint32
		expectedVUB   uint32
	}{
		{blockCount: 0, expectedNonce: 0, expectedVUB: 100},
		{blockCount: 1, expectedNonce: 0, expectedVUB: 100},
		{blockCount: 100, expectedNonce: 0, expectedVUB: 100},
		{blockCount: 101, expectedNonce: 100, expectedVUB: 200},
		{blockCount: 200, expectedNonce: 100, expectedVUB: 200},
		{blockCount: 201, expectedNonce: 200, expectedVUB: 300},
		{blockCount: math.MaxUint32 - 49, expectedNonce: 100 * (math.MaxUint32 / 100), expectedVUB: math.MaxUint32},
	} {
		count := tc.blockCount
		m := heightAlignedTransactionModifier(func() (uint32, error) { return count, nil })

		var tx transaction.Transaction

		err := m(&validRes, &tx)
		require.NoError(t, err, tc)
		require.EqualValues(t, tc.expectedNonce, tx.Nonce, tc)
		require.EqualValues(t, tc.expectedVUB, tx.ValidUntilBlock, tc)
	}
}

func TestSyncAction(t *testing.T) {
	exp := nef.File{Checksum: 42}

	a, err := syncAction(nil, errors.New("Unknown contract (-102)"), exp)
	require.NoError(t, err)
	require.Equal(t, actionDeploy, a)

	netErr := errors.New("connection refused")
	_, err = syncAction(nil, netErr, exp)
	require.ErrorIs(t, err, netErr)

	var st state.Contract
	st.NEF.Checksum = 42

	a, err = syncAction(&st, nil, exp)
	require.NoError(t, err)
	require.Equal(t, actionNone, a)

	st.NEF.Checksum = 13

	a, err = syncAction(&st, nil, exp)
	require.NoError(t, err)
	require.Equal(t, actionUpdate, a)
	require.Equal(t, "update", a.String())
}

func TestDeploy_InvalidParameters(t *testing.T) {
	acc, err := wallet.NewAccount()
	require.NoError(t, err)

	valid := Prm{
		Logger:       zaptest.NewLogger(t),
		LocalAccount: acc,
		Contract: CommonDeployPrm{
			Manifest: *manifest.NewManifest("SupplyChain"),
		},
	}

	for name, modify := range map[string]func(*Prm){
		"logger":          func(p *Prm) { p.Logger = nil },
		"account":         func(p *Prm) { p.LocalAccount = nil },
		"manifest":        func(p *Prm) { p.Contract.Manifest = manifest.Manifest{} },
		"conversion mode": func(p *Prm) { p.ConversionMode = 7 },
	} {
		t.Run(name, func(t *testing.T) {
			prm := valid
			modify(&prm)
			require.Error(t, checkPrm(prm))
		})
	}

	// Blockchain is still missing.
	require.ErrorContains(t, checkPrm(valid), "blockchain")
}
