package supplychain

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/supplychain-contract/common"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
)

type (
	// Company is a registered participant of the supply chain network.
	Company struct {
		Owner interop.Hash160
		Name  string
	}

	// Recipe declares how many units of every prerequisite product are
	// needed to produce one unit of the output product. Prerequisites and
	// Quantities are parallel.
	Recipe struct {
		ProductID     int
		Prerequisites []int
		Quantities    []int
	}

	// Product is a catalog entry. Owners are the companies authorized to
	// produce it in the order they declared themselves. Product without
	// recipe has empty Recipe.Prerequisites.
	Product struct {
		ID     int
		Name   string
		Owners []interop.Hash160
		Recipe Recipe
	}

	// Supply is a single ledger of some company for some product. BatchIDs
	// keeps batches in the order they were created, Quantities is parallel
	// to it and Total is the sum of Quantities.
	Supply struct {
		Total      int
		BatchIDs   []int
		Quantities []int
	}

	// ContractProposal is a pending declaration of From that it will supply
	// ProductID to To.
	ContractProposal struct {
		ID        int
		From      interop.Hash160
		To        interop.Hash160
		ProductID int
	}

	// RequestProposal is a pending declaration of From that it wants
	// Quantity units of ProductID from To.
	RequestProposal struct {
		ID        int
		From      interop.Hash160
		To        interop.Hash160
		ProductID int
		Quantity  int
	}

	// CompanyInfo is a full projection of the company record.
	CompanyInfo struct {
		Owner                interop.Hash160
		Name                 string
		Productions          []int
		PrerequisiteProducts []int
		Recipes              []Recipe
		Upstream             []interop.Hash160
		Downstream           []interop.Hash160
		OutgoingContracts    []ContractProposal
		IncomingContracts    []ContractProposal
		OutgoingRequests     []RequestProposal
		IncomingRequests     []RequestProposal
		IsHead               bool
	}
)

const (
	adminKey          = "admin"
	headsKey          = "heads"
	conversionModeKey = "ConversionMode"

	companyPrefix       = 'c'
	productionsPrefix   = 'm'
	prerequisitesPrefix = 'e'
	recipePrefix        = 'r'
	upstreamPrefix      = 'u'
	downstreamPrefix    = 'd'
	outContractsPrefix  = 'o'
	inContractsPrefix   = 'i'
	outRequestsPrefix   = 'q'
	inRequestsPrefix    = 'Q'
	productPrefix       = 'p'
	productNamePrefix   = 'n'
	supplyPrefix        = 's'
	prereqSupplyPrefix  = 'S'
	pastSupplyPrefix    = 'x'
	lineagePrefix       = 'l'

	errWitness = cst.ErrUnauthorized + ": witness check failed"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin          interop.Hash160
		conversionMode int
	})

	common.CheckAccount(args.admin)
	checkConversionMode(args.conversionMode)

	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, conversionModeKey, args.conversionMode)
	common.SetSerialized(ctx, headsKey, []interop.Hash160{})

	runtime.Log("supply chain contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the registry administrator.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	checkAdmin(ctx)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("supply chain contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Admin returns the registry administrator account.
func Admin() interop.Hash160 {
	return getAdmin(storage.GetReadOnlyContext())
}

// ConversionMode returns the rule used by ConvertPrerequisiteToSupply to
// derive produced quantity from consumed prerequisites, see scconst.
func ConversionMode() int {
	return getConversionMode(storage.GetReadOnlyContext())
}

// SetConversionMode changes the conversion rule. It can be invoked only by
// the registry administrator.
//
// Produces ConversionModeChanged notification.
func SetConversionMode(mode int) {
	ctx := storage.GetContext()
	checkAdmin(ctx)
	checkConversionMode(mode)

	storage.Put(ctx, conversionModeKey, mode)
	runtime.Notify("ConversionModeChanged", mode)
}

func getAdmin(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

func checkAdmin(ctx storage.Context) {
	if !runtime.CheckWitness(getAdmin(ctx)) {
		panic(cst.ErrUnauthorized + ": administrator witness required")
	}
}

func getConversionMode(ctx storage.Context) int {
	return storage.Get(ctx, conversionModeKey).(int)
}

func checkConversionMode(mode int) {
	if mode != cst.ConversionStrict && mode != cst.ConversionLimiting {
		panic(cst.ErrInvalidArgument + ": unknown conversion mode " + std.Itoa10(mode))
	}
}

// checkID panics if id of the named entity is negative.
func checkID(id int, entity string) {
	if id < 0 {
		panic(cst.ErrInvalidArgument + ": negative " + entity + " id")
	}
}

func companyKey(prefix byte, owner interop.Hash160) []byte {
	return append([]byte{prefix}, owner...)
}

// companyItemKey is a key of the company's record identified by a single
// integer (product or batch ID). Owner has fixed length, so keys of
// different companies never share a prefix.
func companyItemKey(prefix byte, owner interop.Hash160, id int) []byte {
	return append(companyKey(prefix, owner), convert.ToBytes(id)...)
}

func productKey(id int) []byte {
	return append([]byte{productPrefix}, convert.ToBytes(id)...)
}
