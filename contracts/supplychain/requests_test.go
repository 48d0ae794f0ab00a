package supplychain_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
	"github.com/stretchr/testify/require"
)

func TestApproveRequest(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(15), int64(1))

	b.inv.Invoke(t, stackitem.Null{}, "sendRequest", int64(1), b.hash, a.hash, int64(2), int64(10))
	require.Len(t, getCompany(t, c, b.hash).OutgoingRequests, 1)
	require.Len(t, getCompany(t, c, a.hash).IncomingRequests, 1)

	h := a.inv.Invoke(t, stackitem.Null{}, "approveRequest", int64(1), b.hash, a.hash, int64(2), int64(10),
		ints(1), ints(10))

	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 5}}, getSupply(t, c, a.hash, 2))
	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 10}}, getPrerequisiteSupply(t, c, b.hash, 2))
	require.Empty(t, getCompany(t, c, b.hash).OutgoingRequests)
	require.Empty(t, getCompany(t, c, a.hash).IncomingRequests)

	log := appLog(t, c, h)
	transfers, err := supplychain.BatchTransferredEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, a.hash, transfers[0].Supplier)
	require.Equal(t, b.hash, transfers[0].Receiver)
	require.Equal(t, int64(1), transfers[0].BatchID.Int64())
	require.Equal(t, int64(10), transfers[0].Quantity.Int64())

	approvals, err := supplychain.RequestApprovedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, approvals, 1)

	t.Run("replay", func(t *testing.T) {
		a.inv.InvokeFail(t, cst.ErrNotFound, "approveRequest", int64(1), b.hash, a.hash, int64(2), int64(10),
			ints(1), ints(10))
	})

	t.Run("existing batch is incremented", func(t *testing.T) {
		b.inv.Invoke(t, stackitem.Null{}, "sendRequest", int64(2), b.hash, a.hash, int64(2), int64(5))
		a.inv.Invoke(t, stackitem.Null{}, "approveRequest", int64(2), b.hash, a.hash, int64(2), int64(5),
			ints(1), ints(5))

		require.Empty(t, getSupply(t, c, a.hash, 2))
		require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 15}}, getPrerequisiteSupply(t, c, b.hash, 2))
	})
}

func TestApproveRequest_Allocation(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(4), int64(1))
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(6), int64(2))
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(3), int64(3))

	b.inv.Invoke(t, stackitem.Null{}, "sendRequest", int64(7), b.hash, a.hash, int64(2), int64(8))

	approve := func(t *testing.T, msg string, batches, quantities []any) {
		a.inv.InvokeFail(t, msg, "approveRequest", int64(7), b.hash, a.hash, int64(2), int64(8),
			batches, quantities)
	}

	t.Run("quantity mismatch", func(t *testing.T) {
		approve(t, cst.ErrQuantityMismatch, ints(1, 2), ints(4, 3))
	})
	t.Run("insufficient batch", func(t *testing.T) {
		approve(t, cst.ErrInsufficientBatch, ints(1, 3), ints(5, 3))
		approve(t, cst.ErrInsufficientBatch, ints(1, 9), ints(4, 4))
	})
	t.Run("invalid allocation", func(t *testing.T) {
		approve(t, cst.ErrInvalidArgument, ints(1, 2), ints(8))
		approve(t, cst.ErrInvalidArgument, ints(), ints())
		approve(t, cst.ErrInvalidArgument, ints(1, 2), ints(10, -2))
	})
	t.Run("wrong tuple", func(t *testing.T) {
		a.inv.InvokeFail(t, cst.ErrNotFound, "approveRequest", int64(7), b.hash, a.hash, int64(2), int64(9),
			ints(1, 2), ints(4, 5))
	})
	t.Run("not a supplier", func(t *testing.T) {
		b.inv.InvokeFail(t, cst.ErrUnauthorized, "approveRequest", int64(7), b.hash, a.hash, int64(2), int64(8),
			ints(1, 2), ints(4, 4))
	})

	// Failed approvals leave everything in place.
	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 4}, {ID: 2, Quantity: 6}, {ID: 3, Quantity: 3}},
		getSupply(t, c, a.hash, 2))
	require.Empty(t, getPrerequisiteSupply(t, c, b.hash, 2))
	require.Len(t, getCompany(t, c, a.hash).IncomingRequests, 1)

	h := a.inv.Invoke(t, stackitem.Null{}, "approveRequest", int64(7), b.hash, a.hash, int64(2), int64(8),
		ints(3, 1, 2), ints(3, 4, 1))

	require.Equal(t, []supplychain.Batch{{ID: 2, Quantity: 5}}, getSupply(t, c, a.hash, 2))
	require.Equal(t, []supplychain.Batch{{ID: 3, Quantity: 3}, {ID: 1, Quantity: 4}, {ID: 2, Quantity: 1}},
		getPrerequisiteSupply(t, c, b.hash, 2))

	transfers, err := supplychain.BatchTransferredEventsFromApplicationLog(appLog(t, c, h))
	require.NoError(t, err)
	require.Len(t, transfers, 3)
}

func TestSendRequest_Invalid(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")
	u := unregistered(t, c)

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")

	b.inv.InvokeFail(t, cst.ErrInvalidArgument, "sendRequest", int64(1), b.hash, a.hash, int64(2), int64(0))
	b.inv.InvokeFail(t, cst.ErrInvalidArgument, "sendRequest", int64(1), b.hash, b.hash, int64(2), int64(1))
	b.inv.InvokeFail(t, cst.ErrNotFound, "sendRequest", int64(1), b.hash, a.hash, int64(9), int64(1))
	b.inv.InvokeFail(t, cst.ErrNotFound, "sendRequest", int64(1), b.hash, u.hash, int64(2), int64(1))
	u.inv.InvokeFail(t, cst.ErrNotFound, "sendRequest", int64(1), u.hash, a.hash, int64(2), int64(1))
	a.inv.InvokeFail(t, cst.ErrUnauthorized, "sendRequest", int64(1), b.hash, a.hash, int64(2), int64(1))
}

func TestDeclineRequest(t *testing.T) {
	c := newSupplyChainInvoker(t)
	a := addCompany(t, c, "Farm")
	b := addCompany(t, c, "Mill")

	a.inv.Invoke(t, stackitem.Null{}, "addProduct", a.hash, int64(2), "wheat")
	a.inv.Invoke(t, stackitem.Null{}, "convertToSupply", a.hash, int64(2), int64(15), int64(1))
	b.inv.Invoke(t, stackitem.Null{}, "sendRequest", int64(1), b.hash, a.hash, int64(2), int64(10))

	b.inv.InvokeFail(t, cst.ErrUnauthorized, "declineRequest", int64(1), b.hash, a.hash, int64(2), int64(10))
	a.inv.InvokeFail(t, cst.ErrNotFound, "declineRequest", int64(1), b.hash, a.hash, int64(2), int64(11))
	a.inv.Invoke(t, stackitem.Null{}, "declineRequest", int64(1), b.hash, a.hash, int64(2), int64(10))

	require.Empty(t, getCompany(t, c, b.hash).OutgoingRequests)
	require.Empty(t, getCompany(t, c, a.hash).IncomingRequests)
	require.Equal(t, []supplychain.Batch{{ID: 1, Quantity: 15}}, getSupply(t, c, a.hash, 2))
	require.Empty(t, getPrerequisiteSupply(t, c, b.hash, 2))

	a.inv.InvokeFail(t, cst.ErrNotFound, "approveRequest", int64(1), b.hash, a.hash, int64(2), int64(10),
		ints(1), ints(10))
}
