package supplychain_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
	"github.com/stretchr/testify/require"
)

func TestConvertToSupply(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")

	b.inv.InvokeFail(t, cst.ErrUnauthorized, "convertToSupply", b.hash, int64(2), int64(5), int64(1))
	b.inv.InvokeFail(t, cst.ErrUnauthorized, "convertToSupply", a.hash, int64(2), int64(5), int64(1))
	a.inv.InvokeFail(t, cst.ErrNotFound, "convertToSupply", a.hash, int64(3), int64(5), int64(1))
	a.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertToSupply", a.hash, int64(2), int64(0), int64(1))
	a.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertToSupply", a.hash, int64(2), int64(5), int64(-1))

	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(5), int64(3))
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(2), int64(1))
	h := a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(4), int64(3))

	require.Equal(t, []supplychain.Batch{{ID: 3, Quantity: 9}, {ID: 1, Quantity: 2}}, getSupply(t, c, a.hash, 2))
	require.Empty(t, getPastSupply(t, c, a.hash, 3))
	require.Empty(t, getSupply(t, c, b.hash, 2))

	events, err := supplychain.SupplyProducedEventsFromApplicationLog(appLog(t, c, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(4), events[0].Quantity.Int64())

	t.Run("additional owner", func(t *testing.T) {
		b.inv.Invoke(t, stackitem.Null{}, "addProductOwner", b.hash, int64(2), "wheat")
		b.inv.Invoke(t, stackitem.Null{}, "convertToSupply", b.hash, int64(2), int64(5), int64(1))

		require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 5}}, getSupply(t, c, b.hash, 2))
		require.Equal(t, []supplychain.Batch{{ID: 3, Quantity: 9}, {ID: 1, Quantity: 2}}, getSupply(t, c, a.hash, 2))
	})
}

func TestConvertPrerequisiteToSupply(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	b.inv.Invoke(t, stackitem.Null{}, "addProductWithRecipe", b.hash, int64(1), "flour", ints(2), ints(1))

	produce(t, a, b, 1, 2, 2, 1)
	produce(t, a, b, 2, 2, 3, 2)
	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 3}},
		getPrerequisiteSupply(t, c, b.hash, 2))

	t.Run("invalid", func(t *testing.T) {
		a.inv.InvokeFail(t, cst.ErrUnauthorized, "convertPrerequisiteToSupply", a.hash, int64(1), int64(2), int64(4),
			ints(), ints(1), ints(2))
		b.inv.InvokeFail(t, cst.ErrInsufficientBatch, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
			ints(), ints(1), ints(3))
		b.inv.InvokeFail(t, cst.ErrInsufficientBatch, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
			ints(), ints(7), ints(1))
		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
			ints(), ints(1, 2), ints(2))
		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
			ints(), ints(), ints())
		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
			ints(5), ints(1), ints(2))
		b.inv.InvokeFail(t, cst.ErrNotFound, "convertPrerequisiteToSupply", b.hash, int64(1), int64(5), int64(4),
			ints(), ints(1), ints(2))
	})

	h := b.inv.Invoke(t, int64(5), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(4),
		ints(), ints(1, 2), ints(2, 3))

	require.Equal(t, []supplychain.Batch{{ID: 4, Quantity: 5}}, getSupply(t, c, b.hash, 1))
	require.Equal(t, []int64{1, 2}, getPastSupply(t, c, b.hash, 4))
	require.Empty(t, getPrerequisiteSupply(t, c, b.hash, 2))

	events, err := supplychain.PrerequisiteConvertedEventsFromApplicationLog(appLog(t, c, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(4), events[0].BatchID.Int64())
	require.Equal(t, int64(5), events[0].Quantity.Int64())
}

func TestConvertPrerequisiteToSupply_Ratio(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	b.inv.Invoke(t, stackitem.Null{}, "addProductWithRecipe", b.hash, int64(1), "flour", ints(2), ints(4))
	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(3), "barley")

	produce(t, a, b, 1, 2, 10, 1)

	b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(7),
		ints(), ints(1), ints(6))
	b.inv.Invoke(t, int64(2), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(7),
		ints(), ints(1), ints(8))

	require.Equal(t, []supplychain.Batch{{ID: 7, Quantity: 2}}, getSupply(t, c, b.hash, 1))
	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 2}}, getPrerequisiteSupply(t, c, b.hash, 2))

	t.Run("product without recipe", func(t *testing.T) {
		a.inv.InvokeFail(t, cst.ErrNotFound, "convertPrerequisiteToSupply", a.hash, int64(3), int64(2), int64(7),
			ints(), ints(1), ints(1))
	})

	t.Run("same batch accumulates", func(t *testing.T) {
		produce(t, a, b, 2, 2, 4, 5)
		b.inv.Invoke(t, int64(1), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(7),
			ints(), ints(5), ints(4))

		require.Equal(t, []supplychain.Batch{{ID: 7, Quantity: 3}}, getSupply(t, c, b.hash, 1))
		require.Equal(t, []int64{1, 5}, getPastSupply(t, c, b.hash, 7))
	})

	t.Run("batch is recorded once", func(t *testing.T) {
		produce(t, a, b, 3, 2, 8, 6)
		b.inv.Invoke(t, int64(1), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(7),
			ints(), ints(6), ints(4))
		b.inv.Invoke(t, int64(1), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(7),
			ints(), ints(6), ints(4))

		require.Equal(t, []supplychain.Batch{{ID: 7, Quantity: 5}}, getSupply(t, c, b.hash, 1))
		require.Equal(t, []int64{1, 5, 6}, getPastSupply(t, c, b.hash, 7))
	})
}

func TestConvertPrerequisiteToSupply_MultiplePrerequisites(t *testing.T) {
	setup := func(t *testing.T, mode int64) (*company, *company) {
		c := newSupplyChainInvokerWithMode(t, mode)
		a := addCompany(t, c, "Farm")
		b := addCompany(t, c, "Bakery")

		a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "flour")
		a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(3), "salt")
		b.inv.Invoke(t, stackitem.Null{}, "addProductWithRecipe", b.hash, int64(10), "bread", ints(2, 3), ints(2, 1))

		produce(t, a, b, 1, 2, 10, 1)
		produce(t, a, b, 2, 3, 10, 2)
		return &a, &b
	}

	t.Run("strict", func(t *testing.T) {
		_, b := setup(t, cst.ConversionStrict)

		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(10), int64(2), int64(3),
			ints(2, 3), ints(1, 2), ints(6, 2))
		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(10), int64(2), int64(3),
			ints(), ints(1), ints(6))

		b.inv.Invoke(t, int64(3), "convertPrerequisiteToSupply", b.hash, int64(10), int64(2), int64(3),
			ints(2, 3), ints(1, 2), ints(6, 3))

		require.Equal(t, []supplychain.Batch{{ID: 3, Quantity: 3}}, getSupply(t, b.inv, b.hash, 10))
		require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 4}}, getPrerequisiteSupply(t, b.inv, b.hash, 2))
		require.Equal(t, []supplychain.Batch{{ID: 2, Quantity: 7}}, getPrerequisiteSupply(t, b.inv, b.hash, 3))
		require.Equal(t, []int64{1, 2}, getPastSupply(t, b.inv, b.hash, 3))
	})

	t.Run("limiting", func(t *testing.T) {
		_, b := setup(t, cst.ConversionLimiting)

		// Surplus flour would be debited without being converted.
		b.inv.InvokeFail(t, cst.ErrInvalidArgument, "convertPrerequisiteToSupply", b.hash, int64(10), int64(3), int64(3),
			ints(2, 3), ints(1, 2), ints(6, 1))
		require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 10}}, getPrerequisiteSupply(t, b.inv, b.hash, 2))
		require.Equal(t, []supplychain.Batch{{ID: 2, Quantity: 10}}, getPrerequisiteSupply(t, b.inv, b.hash, 3))

		b.inv.Invoke(t, int64(1), "convertPrerequisiteToSupply", b.hash, int64(10), int64(3), int64(3),
			ints(2, 3), ints(1, 2), ints(2, 1))
		b.inv.Invoke(t, int64(2), "convertPrerequisiteToSupply", b.hash, int64(10), int64(2), int64(3),
			ints(), ints(1), ints(4))
		b.inv.Invoke(t, int64(4), "convertPrerequisiteToSupply", b.hash, int64(10), int64(3), int64(3),
			ints(), ints(2), ints(4))

		require.Equal(t, []supplychain.Batch{{ID: 3, Quantity: 7}}, getSupply(t, b.inv, b.hash, 10))
		require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 4}}, getPrerequisiteSupply(t, b.inv, b.hash, 2))
		require.Equal(t, []supplychain.Batch{{ID: 2, Quantity: 5}}, getPrerequisiteSupply(t, b.inv, b.hash, 3))
		require.Equal(t, []int64{1, 2}, getPastSupply(t, b.inv, b.hash, 3))
	})
}

func TestProvenance_Transitive(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")
	d := addCompany(t, c, "Bakery")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	b.inv.Invoke(t, stackitem.Null{}, "addProductWithRecipe", b.hash, int64(1), "flour", ints(2), ints(1))
	d.inv.Invoke(t, stackitem.Null{}, "addProductWithRecipe", d.hash, int64(5), "bread", ints(1), ints(2))

	produce(t, a, b, 1, 2, 8, 1)
	b.inv.Invoke(t, int64(8), "convertPrerequisiteToSupply", b.hash, int64(1), int64(2), int64(3),
		ints(), ints(1), ints(8))
	require.Equal(t, []int64{1}, getPastSupply(t, c, b.hash, 3))

	d.inv.Invoke(t, stackitem.Null{}, "sendRequest", int64(1), d.hash, b.hash, int64(1), int64(8))
	b.inv.Invoke(t, stackitem.Null{}, "approveRequest", int64(1), d.hash, b.hash, int64(1), int64(8),
		ints(3), ints(8))
	d.inv.Invoke(t, int64(4), "convertPrerequisiteToSupply", d.hash, int64(5), int64(1), int64(4),
		ints(), ints(3), ints(8))

	require.Equal(t, []int64{3, 1}, getPastSupply(t, c, d.hash, 4))
	require.Equal(t, []supplychain.Batch{{ID: 4, Quantity: 4}}, getSupply(t, c, d.hash, 5))
	require.Empty(t, getSupply(t, c, b.hash, 1))
}
