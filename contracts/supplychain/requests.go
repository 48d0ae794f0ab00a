package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

// SendRequest asks to company for quantity units of the productID product.
// It has no effect on ledgers until to approves it. Transaction must be
// signed by from.
//
// Produces RequestProposed notification.
func SendRequest(id int, from, to interop.Hash160, productID, quantity int) {
	ctx := storage.GetContext()
	common.CheckWitness(from, errWitness)
	checkParties(ctx, from, to)
	getProduct(ctx, productID)

	if quantity <= 0 {
		panic(cst.ErrInvalidArgument + ": non-positive quantity")
	}

	r := RequestProposal{ID: id, From: from, To: to, ProductID: productID, Quantity: quantity}

	outKey := companyKey(outRequestsPrefix, from)
	common.SetSerialized(ctx, outKey, append(getRequests(ctx, outKey), r))

	inKey := companyKey(inRequestsPrefix, to)
	common.SetSerialized(ctx, inKey, append(getRequests(ctx, inKey), r))

	runtime.Notify("RequestProposed", id, from, to, productID, quantity)
}

// ApproveRequest fulfills pending request drawing quantities[i] units from
// batchIDs[i] batch of the supplier (to) output ledger. Every drawn portion
// is credited to the same batch of the requester (from) prerequisite ledger
// together with the provenance of the batch. Transaction must be signed by
// to.
//
// Produces BatchTransferred notification per allocation entry and
// RequestApproved notification.
func ApproveRequest(id int, from, to interop.Hash160, productID, quantity int, batchIDs []int, quantities []int) {
	ctx := storage.GetContext()
	common.CheckWitness(to, errWitness)
	common.CheckAccount(from)

	resolveRequest(ctx, RequestProposal{ID: id, From: from, To: to, ProductID: productID, Quantity: quantity})
	checkAllocation(quantity, batchIDs, quantities)

	outKey := companyItemKey(supplyPrefix, to, productID)
	inKey := companyItemKey(prereqSupplyPrefix, from, productID)

	out := getSupply(ctx, outKey)
	in := getSupply(ctx, inKey)
	for i := range batchIDs {
		out = debitSupply(out, batchIDs[i], quantities[i])
		in = creditSupply(in, batchIDs[i], quantities[i])
		carryProvenance(ctx, to, from, batchIDs[i])

		runtime.Notify("BatchTransferred", to, from, productID, batchIDs[i], quantities[i])
	}

	putSupply(ctx, outKey, out)
	putSupply(ctx, inKey, in)

	runtime.Notify("RequestApproved", id, from, to, productID, quantity)
}

// DeclineRequest drops pending request leaving ledgers untouched.
// Transaction must be signed by to.
//
// Produces RequestDeclined notification.
func DeclineRequest(id int, from, to interop.Hash160, productID, quantity int) {
	ctx := storage.GetContext()
	common.CheckWitness(to, errWitness)
	common.CheckAccount(from)

	resolveRequest(ctx, RequestProposal{ID: id, From: from, To: to, ProductID: productID, Quantity: quantity})

	runtime.Notify("RequestDeclined", id, from, to, productID, quantity)
}

func checkAllocation(quantity int, batchIDs []int, quantities []int) {
	if len(batchIDs) != len(quantities) {
		panic(cst.ErrInvalidArgument + ": allocation length mismatch")
	}
	if len(batchIDs) == 0 {
		panic(cst.ErrInvalidArgument + ": empty allocation")
	}

	sum := 0
	for i := range quantities {
		if quantities[i] <= 0 {
			panic(cst.ErrInvalidArgument + ": non-positive batch portion")
		}
		sum = sum + quantities[i]
	}

	if sum != quantity {
		panic(cst.ErrQuantityMismatch + ": allocated " + std.Itoa10(sum) + " of " + std.Itoa10(quantity))
	}
}

// carryProvenance makes source batches of the supplier batch known to the
// receiver, so that they can be recorded when the batch is converted.
func carryProvenance(ctx storage.Context, supplier, receiver interop.Hash160, batchID int) {
	past := common.GetIntList(ctx, companyItemKey(pastSupplyPrefix, supplier, batchID))
	if len(past) == 0 {
		return
	}

	key := companyItemKey(lineagePrefix, receiver, batchID)
	lineage := common.GetIntList(ctx, key)
	for i := range past {
		lineage = common.AppendUniqueInt(lineage, past[i])
	}
	common.SetSerialized(ctx, key, lineage)
}

func getRequests(ctx storage.Context, key []byte) []RequestProposal {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([]RequestProposal)
	}

	return []RequestProposal{}
}

// resolveRequest removes one entry equal to r from both outgoing list of
// r.From and incoming list of r.To.
func resolveRequest(ctx storage.Context, r RequestProposal) {
	outKey := companyKey(outRequestsPrefix, r.From)
	out, ok := removeRequest(getRequests(ctx, outKey), r)
	if !ok {
		panic(cst.ErrNotFound + ": request")
	}

	inKey := companyKey(inRequestsPrefix, r.To)
	in, ok := removeRequest(getRequests(ctx, inKey), r)
	if !ok {
		panic(cst.ErrNotFound + ": request")
	}

	common.SetSerialized(ctx, outKey, out)
	common.SetSerialized(ctx, inKey, in)
}

func removeRequest(list []RequestProposal, r RequestProposal) ([]RequestProposal, bool) {
	var (
		res     = []RequestProposal{}
		removed bool
	)

	for i := range list {
		c := list[i]
		if !removed && c.ID == r.ID && c.ProductID == r.ProductID && c.Quantity == r.Quantity &&
			c.From.Equals(r.From) && c.To.Equals(r.To) {
			removed = true
			continue
		}
		res = append(res, c)
	}

	return res, removed
}
