package supplychain_test

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
	"github.com/stretchr/testify/require"
)

const contractPath = "../supplychain"

type company struct {
	hash util.Uint160
	inv  *neotest.ContractInvoker
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deploySupplyChainContract(t *testing.T, e *neotest.Executor, mode int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, contractPath, path.Join(contractPath, "config.yml"))
	e.DeployContract(t, c, []any{e.CommitteeHash, mode})
	return c.Hash
}

// newSupplyChainInvoker returns invoker signed by the registry administrator.
func newSupplyChainInvoker(t *testing.T) *neotest.ContractInvoker {
	return newSupplyChainInvokerWithMode(t, cst.ConversionStrict)
}

func newSupplyChainInvokerWithMode(t *testing.T, mode int64) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deploySupplyChainContract(t, e, mode)
	return e.CommitteeInvoker(h)
}

func addCompany(t *testing.T, admin *neotest.ContractInvoker, name string) company {
	acc := admin.NewAccount(t)
	admin.Invoke(t, stackitem.Null{}, "addCompany", acc.ScriptHash(), name)
	return company{hash: acc.ScriptHash(), inv: admin.WithSigners(acc)}
}

// unregistered returns account with GAS but without company record.
func unregistered(t *testing.T, admin *neotest.ContractInvoker) company {
	acc := admin.NewAccount(t)
	return company{hash: acc.ScriptHash(), inv: admin.WithSigners(acc)}
}

func getCompany(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160) *supplychain.SupplychainCompanyInfo {
	s, err := c.TestInvoke(t, "getCompany", owner)
	require.NoError(t, err)

	info := new(supplychain.SupplychainCompanyInfo)
	require.NoError(t, info.FromStackItem(s.Pop().Item()))
	return info
}

func getProduct(t *testing.T, c *neotest.ContractInvoker, id int64) *supplychain.SupplychainProduct {
	s, err := c.TestInvoke(t, "getProduct", id)
	require.NoError(t, err)

	p := new(supplychain.SupplychainProduct)
	require.NoError(t, p.FromStackItem(s.Pop().Item()))
	return p
}

// getLedger returns batches of the ledger returned by the method. Total is
// checked against the sum of batch quantities.
func getLedger(t *testing.T, c *neotest.ContractInvoker, method string, owner util.Uint160, productID int64) []supplychain.Batch {
	s, err := c.TestInvoke(t, method, owner, productID)
	require.NoError(t, err)

	sup := new(supplychain.SupplychainSupply)
	require.NoError(t, sup.FromStackItem(s.Pop().Item()))

	batches, err := sup.Batches()
	require.NoError(t, err)
	return batches
}

func getSupply(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160, productID int64) []supplychain.Batch {
	return getLedger(t, c, "getSupply", owner, productID)
}

func getPrerequisiteSupply(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160, productID int64) []supplychain.Batch {
	return getLedger(t, c, "getPrerequisiteSupply", owner, productID)
}

func getPastSupply(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160, batchID int64) []int64 {
	s, err := c.TestInvoke(t, "getPastSupply", owner, batchID)
	require.NoError(t, err)
	return toInts(t, s.Pop().Item())
}

func getHeads(t *testing.T, c *neotest.ContractInvoker) []util.Uint160 {
	s, err := c.TestInvoke(t, "listHeadCompanies")
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]util.Uint160, 0, len(arr))
	for i := range arr {
		b, err := arr[i].TryBytes()
		require.NoError(t, err)
		h, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)
		res = append(res, h)
	}
	return res
}

func toInts(t *testing.T, item stackitem.Item) []int64 {
	arr, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]int64, 0, len(arr))
	for i := range arr {
		v, err := arr[i].TryInteger()
		require.NoError(t, err)
		res = append(res, v.Int64())
	}
	return res
}

func toInt64s(vs []*big.Int) []int64 {
	res := make([]int64, len(vs))
	for i := range vs {
		res[i] = vs[i].Int64()
	}
	return res
}

func ints(vs ...int64) []any {
	res := make([]any, len(vs))
	for i := range vs {
		res[i] = vs[i]
	}
	return res
}

func appLog(t *testing.T, c *neotest.ContractInvoker, h util.Uint256) *result.ApplicationLog {
	aer := c.GetTxExecResult(t, h)
	return &result.ApplicationLog{
		Container:     h,
		IsTransaction: true,
		Executions:    []state.Execution{aer.Execution},
	}
}

// produce puts quantity units of the product to the supplier output ledger
// and moves them to the receiver prerequisite ledger.
func produce(t *testing.T, supplier, receiver company, reqID, productID, quantity, batchID int64) {
	supplier.inv.Invoke(t, stackitem.Null{}, "convertToSupply", supplier.hash, productID, quantity, batchID)
	receiver.inv.Invoke(t, stackitem.Null{}, "sendRequest", reqID, receiver.hash, supplier.hash, productID, quantity)
	supplier.inv.Invoke(t, stackitem.Null{}, "approveRequest", reqID, receiver.hash, supplier.hash, productID, quantity,
		ints(batchID), ints(quantity))
}
