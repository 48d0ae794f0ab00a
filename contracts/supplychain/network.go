package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

// SendContract proposes from company to become a supplier of the productID
// product for to company. Proposal stays pending until to approves or
// declines it. Transaction must be signed by from.
//
// Produces ContractProposed notification.
func SendContract(id int, from, to interop.Hash160, productID int) {
	ctx := storage.GetContext()
	common.CheckWitness(from, errWitness)
	checkParties(ctx, from, to)
	getProduct(ctx, productID)

	p := ContractProposal{ID: id, From: from, To: to, ProductID: productID}

	outKey := companyKey(outContractsPrefix, from)
	common.SetSerialized(ctx, outKey, append(getContracts(ctx, outKey), p))

	inKey := companyKey(inContractsPrefix, to)
	common.SetSerialized(ctx, inKey, append(getContracts(ctx, inKey), p))

	runtime.Notify("ContractProposed", id, from, to, productID)
}

// ApproveContract accepts pending contract proposal and links from as an
// upstream supplier of to. Company that gets its first supplier stops being
// a head company. Transaction must be signed by to.
//
// Produces ContractApproved notification.
func ApproveContract(id int, from, to interop.Hash160, productID int) {
	ctx := storage.GetContext()
	common.CheckWitness(to, errWitness)
	common.CheckAccount(from)

	resolveContract(ctx, ContractProposal{ID: id, From: from, To: to, ProductID: productID})

	upKey := companyKey(upstreamPrefix, to)
	upstream := common.GetHashList(ctx, upKey)
	if len(upstream) == 0 {
		heads := common.GetHashList(ctx, headsKey)
		common.SetSerialized(ctx, headsKey, common.RemoveHash(heads, to))
	}
	if !common.ContainsHash(upstream, from) {
		common.SetSerialized(ctx, upKey, append(upstream, from))
	}

	downKey := companyKey(downstreamPrefix, from)
	downstream := common.GetHashList(ctx, downKey)
	if !common.ContainsHash(downstream, to) {
		common.SetSerialized(ctx, downKey, append(downstream, to))
	}

	prereqKey := companyKey(prerequisitesPrefix, to)
	prereqs := common.GetIntList(ctx, prereqKey)
	common.SetSerialized(ctx, prereqKey, common.AppendUniqueInt(prereqs, productID))

	runtime.Notify("ContractApproved", id, from, to, productID)
}

// DeclineContract drops pending contract proposal leaving supply graph
// untouched. Transaction must be signed by to.
//
// Produces ContractDeclined notification.
func DeclineContract(id int, from, to interop.Hash160, productID int) {
	ctx := storage.GetContext()
	common.CheckWitness(to, errWitness)
	common.CheckAccount(from)

	resolveContract(ctx, ContractProposal{ID: id, From: from, To: to, ProductID: productID})

	runtime.Notify("ContractDeclined", id, from, to, productID)
}

// checkParties panics if either side of a proposal is not registered or
// both sides are the same company.
func checkParties(ctx storage.Context, from, to interop.Hash160) {
	checkCompany(ctx, from)
	checkCompany(ctx, to)

	if from.Equals(to) {
		panic(cst.ErrInvalidArgument + ": proposal to itself")
	}
}

func getContracts(ctx storage.Context, key []byte) []ContractProposal {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]ContractProposal)
	}

	return []ContractProposal{}
}

// resolveContract removes one entry equal to p from both outgoing list of
// p.From and incoming list of p.To.
func resolveContract(ctx storage.Context, p ContractProposal) {
	outKey := companyKey(outContractsPrefix, p.From)
	out, ok := removeContract(getContracts(ctx, outKey), p)
	if !ok {
		panic(cst.ErrNotFound + ": contract proposal")
	}

	inKey := companyKey(inContractsPrefix, p.To)
	in, ok := removeContract(getContracts(ctx, inKey), p)
	if !ok {
		panic(cst.ErrNotFound + ": contract proposal")
	}

	common.SetSerialized(ctx, outKey, out)
	common.SetSerialized(ctx, inKey, in)
}

func removeContract(list []ContractProposal, p ContractProposal) ([]ContractProposal, bool) {
	var (
		res     = []ContractProposal{}
		removed bool
	)

	for i := range list {
		c := list[i]
		if !removed && c.ID == p.ID && c.ProductID == p.ProductID &&
			c.From.Equals(p.From) && c.To.Equals(p.To) {
			removed = true
			continue
		}
		res = append(res, c)
	}

	return res, removed
}
