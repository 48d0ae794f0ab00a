package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

// AddProduct registers a new product without recipe produced by the owner
// company. Transaction must be signed by the owner.
//
// Produces ProductAdded notification.
func AddProduct(owner interop.Hash160, productID int, name string) {
	ctx := storage.GetContext()
	common.CheckWitness(owner, errWitness)
	checkCompany(ctx, owner)

	registerProduct(ctx, owner, productID, name, emptyRecipe(productID))
}

// AddProductWithoutRecipe registers a new product without recipe on behalf
// of the owner company. It can be invoked only by the registry
// administrator.
//
// Produces ProductAdded notification.
func AddProductWithoutRecipe(owner interop.Hash160, productID int, name string) {
	ctx := storage.GetContext()
	checkAdmin(ctx)
	checkCompany(ctx, owner)

	registerProduct(ctx, owner, productID, name, emptyRecipe(productID))
}

// AddProductWithRecipe registers a new product produced by the owner company
// from prerequisite products. quantities[i] is the number of
// prerequisites[i] units required for one unit of the product. Transaction
// must be signed by the owner.
//
// Produces ProductAdded notification.
func AddProductWithRecipe(owner interop.Hash160, productID int, name string, prerequisites []int, quantities []int) {
	ctx := storage.GetContext()
	common.CheckWitness(owner, errWitness)
	checkCompany(ctx, owner)
	checkRecipe(ctx, productID, prerequisites, quantities)

	registerProduct(ctx, owner, productID, name, Recipe{
		ProductID:     productID,
		Prerequisites: prerequisites,
		Quantities:    quantities,
	})
}

// AddProductOwner declares the owner company as one more producer of the
// existing product. The name must match the registered product name.
// Product recipe, if any, becomes the owner's recipe too.
//
// Produces ProductOwnerAdded notification.
func AddProductOwner(owner interop.Hash160, productID int, name string) {
	ctx := storage.GetContext()
	common.CheckWitness(owner, errWitness)
	checkCompany(ctx, owner)

	p := getProduct(ctx, productID)
	if p.Name != name {
		panic(cst.ErrNotFound + ": product " + name)
	}
	if common.ContainsHash(p.Owners, owner) {
		panic(cst.ErrDuplicateOwner)
	}

	p.Owners = append(p.Owners, owner)
	common.SetSerialized(ctx, productKey(productID), p)
	addProduction(ctx, owner, p.Recipe)

	runtime.Notify("ProductOwnerAdded", productID, owner)
}

// GetProduct returns the catalog entry of the product.
func GetProduct(productID int) Product {
	return getProduct(storage.GetReadOnlyContext(), productID)
}

// ListProducts returns all registered products.
func ListProducts() []Product {
	ctx := storage.GetReadOnlyContext()

	res := []Product{}
	it := storage.Find(ctx, []byte{productPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		p := iterator.Value(it).(Product)
		res = append(res, p)
	}

	return res
}

func getProduct(ctx storage.Context, productID int) Product {
	data := storage.Get(ctx, productKey(productID))
	if data == nil {
		panic(cst.ErrNotFound + ": product " + std.Itoa10(productID))
	}

	return std.Deserialize(data.([]byte)).(Product)
}

// productNameKey is a key of the name index entry. Name is hashed since
// storage keys are limited to 64 bytes.
func productNameKey(name string) []byte {
	return append([]byte{productNamePrefix}, crypto.Ripemd160([]byte(name))...)
}

func emptyRecipe(productID int) Recipe {
	return Recipe{
		ProductID:     productID,
		Prerequisites: []int{},
		Quantities:    []int{},
	}
}

func checkRecipe(ctx storage.Context, productID int, prerequisites []int, quantities []int) {
	if len(prerequisites) != len(quantities) {
		panic(cst.ErrInvalidArgument + ": recipe length mismatch")
	}
	if len(prerequisites) == 0 {
		panic(cst.ErrInvalidArgument + ": empty recipe")
	}

	for i := range prerequisites {
		if prerequisites[i] == productID {
			panic(cst.ErrInvalidArgument + ": product is its own prerequisite")
		}
		if quantities[i] <= 0 {
			panic(cst.ErrInvalidArgument + ": non-positive recipe quantity")
		}
		for j := 0; j < i; j++ {
			if prerequisites[j] == prerequisites[i] {
				panic(cst.ErrInvalidArgument + ": repeated prerequisite " + std.Itoa10(prerequisites[i]))
			}
		}
		if storage.Get(ctx, productKey(prerequisites[i])) == nil {
			panic(cst.ErrNotFound + ": prerequisite " + std.Itoa10(prerequisites[i]))
		}
	}
}

func registerProduct(ctx storage.Context, owner interop.Hash160, productID int, name string, r Recipe) {
	checkID(productID, "product")
	if len(name) == 0 {
		panic(cst.ErrInvalidArgument + ": empty product name")
	}

	if storage.Get(ctx, productKey(productID)) != nil {
		panic(cst.ErrDuplicateProduct + ": id " + std.Itoa10(productID))
	}

	nameKey := productNameKey(name)
	if storage.Get(ctx, nameKey) != nil {
		panic(cst.ErrDuplicateProduct + ": name " + name)
	}

	common.SetSerialized(ctx, productKey(productID), Product{
		ID:     productID,
		Name:   name,
		Owners: []interop.Hash160{owner},
		Recipe: r,
	})
	storage.Put(ctx, nameKey, productID)
	addProduction(ctx, owner, r)

	runtime.Notify("ProductAdded", productID, name, owner)
}

// addProduction records the product in the owner's productions. Non-empty
// recipe is stored for the owner and its prerequisites become the owner's
// prerequisite products.
func addProduction(ctx storage.Context, owner interop.Hash160, r Recipe) {
	key := companyKey(productionsPrefix, owner)
	productions := common.GetIntList(ctx, key)
	productions = common.AppendUniqueInt(productions, r.ProductID)
	common.SetSerialized(ctx, key, productions)

	if len(r.Prerequisites) == 0 {
		return
	}

	common.SetSerialized(ctx, companyItemKey(recipePrefix, owner, r.ProductID), r)

	key = companyKey(prerequisitesPrefix, owner)
	prereqs := common.GetIntList(ctx, key)
	for i := range r.Prerequisites {
		prereqs = common.AppendUniqueInt(prereqs, r.Prerequisites[i])
	}
	common.SetSerialized(ctx, key, prereqs)
}
