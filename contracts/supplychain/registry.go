package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

// AddCompany registers a new company identified by the owner account. New
// company has no suppliers, so it is appended to the head company list. It
// can be invoked only by the registry administrator.
//
// Produces CompanyAdded notification.
func AddCompany(owner interop.Hash160, name string) {
	ctx := storage.GetContext()
	checkAdmin(ctx)
	common.CheckAccount(owner)

	if len(name) == 0 {
		panic(cst.ErrInvalidArgument + ": empty company name")
	}

	key := companyKey(companyPrefix, owner)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrAlreadyExists)
	}

	common.SetSerialized(ctx, key, Company{Owner: owner, Name: name})

	heads := common.GetHashList(ctx, headsKey)
	heads = append(heads, owner)
	common.SetSerialized(ctx, headsKey, heads)

	runtime.Notify("CompanyAdded", owner, name)
}

// GetCompany returns full record of the registered company: its products,
// recipes, position in the supply graph and pending proposals.
func GetCompany(owner interop.Hash160) CompanyInfo {
	ctx := storage.GetReadOnlyContext()
	c := getCompany(ctx, owner)

	productions := common.GetIntList(ctx, companyKey(productionsPrefix, owner))
	recipes := []Recipe{}
	for i := range productions {
		data := storage.Get(ctx, companyItemKey(recipePrefix, owner, productions[i]))
		if data != nil {
			recipes = append(recipes, std.Deserialize(data.([]byte)).(Recipe))
		}
	}

	upstream := common.GetHashList(ctx, companyKey(upstreamPrefix, owner))

	return CompanyInfo{
		Owner:                c.Owner,
		Name:                 c.Name,
		Productions:          productions,
		PrerequisiteProducts: common.GetIntList(ctx, companyKey(prerequisitesPrefix, owner)),
		Recipes:              recipes,
		Upstream:             upstream,
		Downstream:           common.GetHashList(ctx, companyKey(downstreamPrefix, owner)),
		OutgoingContracts:    getContracts(ctx, companyKey(outContractsPrefix, owner)),
		IncomingContracts:    getContracts(ctx, companyKey(inContractsPrefix, owner)),
		OutgoingRequests:     getRequests(ctx, companyKey(outRequestsPrefix, owner)),
		IncomingRequests:     getRequests(ctx, companyKey(inRequestsPrefix, owner)),
		IsHead:               len(upstream) == 0,
	}
}

// ListCompanies returns all registered companies.
func ListCompanies() []Company {
	ctx := storage.GetReadOnlyContext()

	res := []Company{}
	it := storage.Find(ctx, []byte{companyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
	for iterator.Next(it) {
		c := iterator.Value(it).(Company)
		res = append(res, c)
	}

	return res
}

// IterateCompanies returns an iterator over all registered companies. Each
// item is a Company structure.
func IterateCompanies() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{companyPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// ListHeadCompanies returns companies without suppliers in the order they
// were registered.
func ListHeadCompanies() []interop.Hash160 {
	return common.GetHashList(storage.GetReadOnlyContext(), headsKey)
}

// IsHeadCompany checks whether the company has no suppliers.
func IsHeadCompany(owner interop.Hash160) bool {
	heads := common.GetHashList(storage.GetReadOnlyContext(), headsKey)
	return common.ContainsHash(heads, owner)
}

func getCompany(ctx storage.Context, owner interop.Hash160) Company {
	common.CheckAccount(owner)

	data := storage.Get(ctx, companyKey(companyPrefix, owner))
	if data == nil {
		panic(cst.ErrNotFound + ": company")
	}

	return std.Deserialize(data.([]byte)).(Company)
}

// checkCompany panics if owner is not a registered company.
func checkCompany(ctx storage.Context, owner interop.Hash160) {
	getCompany(ctx, owner)
}
