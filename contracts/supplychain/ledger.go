package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

// ConvertToSupply declares quantity freshly produced units of the product in
// the batchID batch of the owner output ledger. Existing batch is
// incremented. Owner must be one of the product owners and must sign the
// transaction.
//
// Produces SupplyProduced notification.
func ConvertToSupply(owner interop.Hash160, productID, quantity, batchID int) {
	ctx := storage.GetContext()
	common.CheckWitness(owner, errWitness)
	checkProducer(ctx, owner, productID)
	checkID(batchID, "batch")

	if quantity <= 0 {
		panic(cst.ErrInvalidArgument + ": non-positive quantity")
	}

	key := companyItemKey(supplyPrefix, owner, productID)
	putSupply(ctx, key, creditSupply(getSupply(ctx, key), batchID, quantity))

	runtime.Notify("SupplyProduced", owner, productID, batchID, quantity)
}

// ConvertPrerequisiteToSupply consumes batches of the owner prerequisite
// ledger and produces the outputProductID product in the newBatchID batch
// of the owner output ledger. quantities[i] units are taken from batchIDs[i]
// batch of prerequisiteProductIDs[i] product. Empty prerequisiteProductIDs
// means that every batch belongs to prerequisiteProductID, otherwise
// prerequisiteProductID must be one of them.
//
// Produced quantity follows from the product recipe and the conversion
// mode. Consumed quantities must be exact multiples of the recipe ones and
// give the same number of output units. Consumed batches and their own
// sources not recorded yet are appended to the past supply of the new batch. Owner must be one of the product owners and must
// sign the transaction.
//
// Produces PrerequisiteConverted notification.
func ConvertPrerequisiteToSupply(owner interop.Hash160, outputProductID, prerequisiteProductID, newBatchID int,
	prerequisiteProductIDs []int, batchIDs []int, quantities []int) int {
	ctx := storage.GetContext()
	common.CheckWitness(owner, errWitness)
	p := checkProducer(ctx, owner, outputProductID)
	checkID(newBatchID, "batch")

	r := p.Recipe
	if len(r.Prerequisites) == 0 {
		panic(cst.ErrNotFound + ": recipe of product " + std.Itoa10(outputProductID))
	}

	if len(prerequisiteProductIDs) == 0 {
		for i := 0; i < len(batchIDs); i++ {
			prerequisiteProductIDs = append(prerequisiteProductIDs, prerequisiteProductID)
		}
	} else if !common.ContainsInt(prerequisiteProductIDs, prerequisiteProductID) {
		panic(cst.ErrInvalidArgument + ": prerequisite " + std.Itoa10(prerequisiteProductID) + " is not consumed")
	}

	if len(batchIDs) == 0 {
		panic(cst.ErrInvalidArgument + ": nothing to consume")
	}
	if len(batchIDs) != len(quantities) || len(batchIDs) != len(prerequisiteProductIDs) {
		panic(cst.ErrInvalidArgument + ": consumption length mismatch")
	}

	consumed := []int{}
	for i := 0; i < len(r.Prerequisites); i++ {
		consumed = append(consumed, 0)
	}

	pastKey := companyItemKey(pastSupplyPrefix, owner, newBatchID)
	past := common.GetIntList(ctx, pastKey)

	for i := range batchIDs {
		n := common.IndexOfInt(r.Prerequisites, prerequisiteProductIDs[i])
		if n < 0 {
			panic(cst.ErrNotFound + ": prerequisite " + std.Itoa10(prerequisiteProductIDs[i]) + " in recipe")
		}
		if quantities[i] <= 0 {
			panic(cst.ErrInvalidArgument + ": non-positive batch portion")
		}

		key := companyItemKey(prereqSupplyPrefix, owner, prerequisiteProductIDs[i])
		putSupply(ctx, key, debitSupply(getSupply(ctx, key), batchIDs[i], quantities[i]))
		consumed[n] = consumed[n] + quantities[i]

		past = common.AppendUniqueInt(past, batchIDs[i])
		lineage := common.GetIntList(ctx, companyItemKey(lineagePrefix, owner, batchIDs[i]))
		for j := range lineage {
			past = common.AppendUniqueInt(past, lineage[j])
		}
	}

	produced := producedQuantity(r, consumed, getConversionMode(ctx))

	key := companyItemKey(supplyPrefix, owner, outputProductID)
	putSupply(ctx, key, creditSupply(getSupply(ctx, key), newBatchID, produced))
	common.SetSerialized(ctx, pastKey, past)

	runtime.Notify("PrerequisiteConverted", owner, outputProductID, newBatchID, produced)

	return produced
}

// GetSupply returns output ledger of the company for the product.
func GetSupply(owner interop.Hash160, productID int) Supply {
	ctx := storage.GetReadOnlyContext()
	common.CheckAccount(owner)
	return getSupply(ctx, companyItemKey(supplyPrefix, owner, productID))
}

// GetPrerequisiteSupply returns prerequisite ledger of the company for the
// product.
func GetPrerequisiteSupply(owner interop.Hash160, productID int) Supply {
	ctx := storage.GetReadOnlyContext()
	common.CheckAccount(owner)
	return getSupply(ctx, companyItemKey(prereqSupplyPrefix, owner, productID))
}

// GetPastSupply returns source batches of the company output batch in the
// order they were first consumed. Every batch is listed once, even if it was
// consumed into the output batch several times.
func GetPastSupply(owner interop.Hash160, batchID int) []int {
	ctx := storage.GetReadOnlyContext()
	common.CheckAccount(owner)
	return common.GetIntList(ctx, companyItemKey(pastSupplyPrefix, owner, batchID))
}

// checkProducer panics if owner is not listed among the product owners.
func checkProducer(ctx storage.Context, owner interop.Hash160, productID int) Product {
	p := getProduct(ctx, productID)
	if !common.ContainsHash(p.Owners, owner) {
		panic(cst.ErrUnauthorized + ": not a producer of " + std.Itoa10(productID))
	}

	return p
}

// producedQuantity returns the number of output units given consumed[i]
// units of r.Prerequisites[i]. Every consumed prerequisite must be spent
// completely, so nothing is debited without being converted.
func producedQuantity(r Recipe, consumed []int, mode int) int {
	produced := -1
	for i := range r.Prerequisites {
		if consumed[i] == 0 && mode == cst.ConversionLimiting {
			continue
		}
		if consumed[i]%r.Quantities[i] != 0 {
			panic(cst.ErrInvalidArgument + ": consumed " + std.Itoa10(consumed[i]) +
				" of " + std.Itoa10(r.Prerequisites[i]) + " is not a multiple of " + std.Itoa10(r.Quantities[i]))
		}

		units := consumed[i] / r.Quantities[i]
		if produced < 0 {
			produced = units
			continue
		}
		if units != produced {
			panic(cst.ErrInvalidArgument + ": unbalanced prerequisites")
		}
	}

	if produced <= 0 {
		panic(cst.ErrInvalidArgument + ": nothing produced")
	}

	return produced
}

func getSupply(ctx storage.Context, key []byte) Supply {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Supply)
	}

	return Supply{BatchIDs: []int{}, Quantities: []int{}}
}

// putSupply stores the ledger or removes it if it has no batches left.
func putSupply(ctx storage.Context, key []byte, s Supply) {
	if len(s.BatchIDs) == 0 {
		storage.Delete(ctx, key)
		return
	}

	common.SetSerialized(ctx, key, s)
}

// creditSupply adds quantity units to the batch creating it if needed.
func creditSupply(s Supply, batchID, quantity int) Supply {
	res := Supply{
		Total:      s.Total + quantity,
		BatchIDs:   s.BatchIDs,
		Quantities: s.Quantities,
	}

	i := common.IndexOfInt(res.BatchIDs, batchID)
	if i < 0 {
		res.BatchIDs = append(res.BatchIDs, batchID)
		res.Quantities = append(res.Quantities, quantity)
		return res
	}

	res.Quantities[i] = res.Quantities[i] + quantity
	return res
}

// debitSupply takes quantity units from the batch dropping it when nothing
// is left.
func debitSupply(s Supply, batchID, quantity int) Supply {
	i := common.IndexOfInt(s.BatchIDs, batchID)
	if i < 0 || s.Quantities[i] < quantity {
		panic(cst.ErrInsufficientBatch + ": batch " + std.Itoa10(batchID))
	}

	res := Supply{
		Total:      s.Total - quantity,
		BatchIDs:   []int{},
		Quantities: []int{},
	}

	for j := range s.BatchIDs {
		q := s.Quantities[j]
		if j == i {
			q = q - quantity
			if q == 0 {
				continue
			}
		}
		res.BatchIDs = append(res.BatchIDs, s.BatchIDs[j])
		res.Quantities = append(res.Quantities, q)
	}

	return res
}
