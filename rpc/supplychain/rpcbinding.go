// Package supplychain contains RPC wrappers for SupplyChain contract.
package supplychain

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// SupplychainCompany is a contract-specific supplychain.Company type used by its methods.
type SupplychainCompany struct {
	Owner util.Uint160
	Name string
}

// SupplychainCompanyInfo is a contract-specific supplychain.CompanyInfo type used by its methods.
type SupplychainCompanyInfo struct {
	Owner util.Uint160
	Name string
	Productions []*big.Int
	PrerequisiteProducts []*big.Int
	Recipes []*SupplychainRecipe
	Upstream []util.Uint160
	Downstream []util.Uint160
	OutgoingContracts []*SupplychainContractProposal
	IncomingContracts []*SupplychainContractProposal
	OutgoingRequests []*SupplychainRequestProposal
	IncomingRequests []*SupplychainRequestProposal
	IsHead bool
}

// SupplychainContractProposal is a contract-specific supplychain.ContractProposal type used by its methods.
type SupplychainContractProposal struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
}

// SupplychainProduct is a contract-specific supplychain.Product type used by its methods.
type SupplychainProduct struct {
	ID *big.Int
	Name string
	Owners []util.Uint160
	Recipe *SupplychainRecipe
}

// SupplychainRecipe is a contract-specific supplychain.Recipe type used by its methods.
type SupplychainRecipe struct {
	ProductID *big.Int
	Prerequisites []*big.Int
	Quantities []*big.Int
}

// SupplychainRequestProposal is a contract-specific supplychain.RequestProposal type used by its methods.
type SupplychainRequestProposal struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
	Quantity *big.Int
}

// SupplychainSupply is a contract-specific supplychain.Supply type used by its methods.
type SupplychainSupply struct {
	Total *big.Int
	BatchIDs []*big.Int
	Quantities []*big.Int
}

// CompanyAddedEvent represents "CompanyAdded" event emitted by the contract.
type CompanyAddedEvent struct {
	Owner util.Uint160
	Name string
}

// ProductAddedEvent represents "ProductAdded" event emitted by the contract.
type ProductAddedEvent struct {
	ProductID *big.Int
	Name string
	Owner util.Uint160
}

// ProductOwnerAddedEvent represents "ProductOwnerAdded" event emitted by the contract.
type ProductOwnerAddedEvent struct {
	ProductID *big.Int
	Owner util.Uint160
}

// ContractProposedEvent represents "ContractProposed" event emitted by the contract.
type ContractProposedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
}

// ContractApprovedEvent represents "ContractApproved" event emitted by the contract.
type ContractApprovedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
}

// ContractDeclinedEvent represents "ContractDeclined" event emitted by the contract.
type ContractDeclinedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
}

// RequestProposedEvent represents "RequestProposed" event emitted by the contract.
type RequestProposedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
	Quantity *big.Int
}

// RequestApprovedEvent represents "RequestApproved" event emitted by the contract.
type RequestApprovedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
	Quantity *big.Int
}

// RequestDeclinedEvent represents "RequestDeclined" event emitted by the contract.
type RequestDeclinedEvent struct {
	ID *big.Int
	From util.Uint160
	To util.Uint160
	ProductID *big.Int
	Quantity *big.Int
}

// BatchTransferredEvent represents "BatchTransferred" event emitted by the contract.
type BatchTransferredEvent struct {
	Supplier util.Uint160
	Receiver util.Uint160
	ProductID *big.Int
	BatchID *big.Int
	Quantity *big.Int
}

// SupplyProducedEvent represents "SupplyProduced" event emitted by the contract.
type SupplyProducedEvent struct {
	Owner util.Uint160
	ProductID *big.Int
	BatchID *big.Int
	Quantity *big.Int
}

// PrerequisiteConvertedEvent represents "PrerequisiteConverted" event emitted by the contract.
type PrerequisiteConvertedEvent struct {
	Owner util.Uint160
	ProductID *big.Int
	BatchID *big.Int
	Quantity *big.Int
}

// ConversionModeChangedEvent represents "ConversionModeChanged" event emitted by the contract.
type ConversionModeChangedEvent struct {
	Mode *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Admin invokes `admin` method of contract.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// ConversionMode invokes `conversionMode` method of contract.
func (c *ContractReader) ConversionMode() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "conversionMode"))
}

// GetCompany invokes `getCompany` method of contract.
func (c *ContractReader) GetCompany(owner util.Uint160) (*SupplychainCompanyInfo, error) {
	return itemToSupplychainCompanyInfo(unwrap.Item(c.invoker.Call(c.hash, "getCompany", owner)))
}

// GetPastSupply invokes `getPastSupply` method of contract.
func (c *ContractReader) GetPastSupply(owner util.Uint160, batchID *big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "getPastSupply", owner, batchID))
}

// GetPrerequisiteSupply invokes `getPrerequisiteSupply` method of contract.
func (c *ContractReader) GetPrerequisiteSupply(owner util.Uint160, productID *big.Int) (*SupplychainSupply, error) {
	return itemToSupplychainSupply(unwrap.Item(c.invoker.Call(c.hash, "getPrerequisiteSupply", owner, productID)))
}

// GetProduct invokes `getProduct` method of contract.
func (c *ContractReader) GetProduct(productID *big.Int) (*SupplychainProduct, error) {
	return itemToSupplychainProduct(unwrap.Item(c.invoker.Call(c.hash, "getProduct", productID)))
}

// GetSupply invokes `getSupply` method of contract.
func (c *ContractReader) GetSupply(owner util.Uint160, productID *big.Int) (*SupplychainSupply, error) {
	return itemToSupplychainSupply(unwrap.Item(c.invoker.Call(c.hash, "getSupply", owner, productID)))
}

// IsHeadCompany invokes `isHeadCompany` method of contract.
func (c *ContractReader) IsHeadCompany(owner util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isHeadCompany", owner))
}

// IterateCompanies invokes `iterateCompanies` method of contract.
func (c *ContractReader) IterateCompanies() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateCompanies"))
}

// IterateCompaniesExpanded is similar to IterateCompanies (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateCompaniesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateCompanies", _numOfIteratorItems))
}

// ListCompanies invokes `listCompanies` method of contract.
func (c *ContractReader) ListCompanies() ([]*SupplychainCompany, error) {
	return func (item stackitem.Item, err error) ([]*SupplychainCompany, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*SupplychainCompany, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*SupplychainCompany, len(arr))
			for i := range res {
				res[i], err = itemToSupplychainCompany(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "listCompanies")))
}

// ListHeadCompanies invokes `listHeadCompanies` method of contract.
func (c *ContractReader) ListHeadCompanies() ([]util.Uint160, error) {
	return unwrap.ArrayOfUint160(c.invoker.Call(c.hash, "listHeadCompanies"))
}

// ListProducts invokes `listProducts` method of contract.
func (c *ContractReader) ListProducts() ([]*SupplychainProduct, error) {
	return func (item stackitem.Item, err error) ([]*SupplychainProduct, error) {
		if err != nil {
			return nil, err
		}
		return func (item stackitem.Item) ([]*SupplychainProduct, error) {
			arr, ok := item.Value().([]stackitem.Item)
			if !ok {
				return nil, errors.New("not an array")
			}
			res := make([]*SupplychainProduct, len(arr))
			for i := range res {
				res[i], err = itemToSupplychainProduct(arr[i], nil)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
			}
			return res, nil
		} (item)
	} (unwrap.Item(c.invoker.Call(c.hash, "listProducts")))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddCompany creates a transaction invoking `addCompany` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddCompany(owner util.Uint160, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addCompany", owner, name)
}

// AddCompanyTransaction creates a transaction invoking `addCompany` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddCompanyTransaction(owner util.Uint160, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addCompany", owner, name)
}

// AddCompanyUnsigned creates a transaction invoking `addCompany` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddCompanyUnsigned(owner util.Uint160, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addCompany", nil, owner, name)
}

// AddProduct creates a transaction invoking `addProduct` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProduct(owner util.Uint160, productID *big.Int, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addProduct", owner, productID, name)
}

// AddProductTransaction creates a transaction invoking `addProduct` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddProductTransaction(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addProduct", owner, productID, name)
}

// AddProductUnsigned creates a transaction invoking `addProduct` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddProductUnsigned(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addProduct", nil, owner, productID, name)
}

// AddProductOwner creates a transaction invoking `addProductOwner` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProductOwner(owner util.Uint160, productID *big.Int, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addProductOwner", owner, productID, name)
}

// AddProductOwnerTransaction creates a transaction invoking `addProductOwner` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddProductOwnerTransaction(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addProductOwner", owner, productID, name)
}

// AddProductOwnerUnsigned creates a transaction invoking `addProductOwner` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddProductOwnerUnsigned(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addProductOwner", nil, owner, productID, name)
}

// AddProductWithRecipe creates a transaction invoking `addProductWithRecipe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProductWithRecipe(owner util.Uint160, productID *big.Int, name string, prerequisites []any, quantities []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addProductWithRecipe", owner, productID, name, prerequisites, quantities)
}

// AddProductWithRecipeTransaction creates a transaction invoking `addProductWithRecipe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddProductWithRecipeTransaction(owner util.Uint160, productID *big.Int, name string, prerequisites []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addProductWithRecipe", owner, productID, name, prerequisites, quantities)
}

// AddProductWithRecipeUnsigned creates a transaction invoking `addProductWithRecipe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddProductWithRecipeUnsigned(owner util.Uint160, productID *big.Int, name string, prerequisites []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addProductWithRecipe", nil, owner, productID, name, prerequisites, quantities)
}

// AddProductWithoutRecipe creates a transaction invoking `addProductWithoutRecipe` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddProductWithoutRecipe(owner util.Uint160, productID *big.Int, name string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addProductWithoutRecipe", owner, productID, name)
}

// AddProductWithoutRecipeTransaction creates a transaction invoking `addProductWithoutRecipe` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddProductWithoutRecipeTransaction(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addProductWithoutRecipe", owner, productID, name)
}

// AddProductWithoutRecipeUnsigned creates a transaction invoking `addProductWithoutRecipe` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddProductWithoutRecipeUnsigned(owner util.Uint160, productID *big.Int, name string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addProductWithoutRecipe", nil, owner, productID, name)
}

// ApproveContract creates a transaction invoking `approveContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ApproveContract(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approveContract", id, from, to, productID)
}

// ApproveContractTransaction creates a transaction invoking `approveContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveContractTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approveContract", id, from, to, productID)
}

// ApproveContractUnsigned creates a transaction invoking `approveContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveContractUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approveContract", nil, id, from, to, productID)
}

// ApproveRequest creates a transaction invoking `approveRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ApproveRequest(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int, batchIDs []any, quantities []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "approveRequest", id, from, to, productID, quantity, batchIDs, quantities)
}

// ApproveRequestTransaction creates a transaction invoking `approveRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ApproveRequestTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int, batchIDs []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "approveRequest", id, from, to, productID, quantity, batchIDs, quantities)
}

// ApproveRequestUnsigned creates a transaction invoking `approveRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ApproveRequestUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int, batchIDs []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "approveRequest", nil, id, from, to, productID, quantity, batchIDs, quantities)
}

// ConvertPrerequisiteToSupply creates a transaction invoking `convertPrerequisiteToSupply` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConvertPrerequisiteToSupply(owner util.Uint160, outputProductID *big.Int, prerequisiteProductID *big.Int, newBatchID *big.Int, prerequisiteProductIDs []any, batchIDs []any, quantities []any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "convertPrerequisiteToSupply", owner, outputProductID, prerequisiteProductID, newBatchID, prerequisiteProductIDs, batchIDs, quantities)
}

// ConvertPrerequisiteToSupplyTransaction creates a transaction invoking `convertPrerequisiteToSupply` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConvertPrerequisiteToSupplyTransaction(owner util.Uint160, outputProductID *big.Int, prerequisiteProductID *big.Int, newBatchID *big.Int, prerequisiteProductIDs []any, batchIDs []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "convertPrerequisiteToSupply", owner, outputProductID, prerequisiteProductID, newBatchID, prerequisiteProductIDs, batchIDs, quantities)
}

// ConvertPrerequisiteToSupplyUnsigned creates a transaction invoking `convertPrerequisiteToSupply` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConvertPrerequisiteToSupplyUnsigned(owner util.Uint160, outputProductID *big.Int, prerequisiteProductID *big.Int, newBatchID *big.Int, prerequisiteProductIDs []any, batchIDs []any, quantities []any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "convertPrerequisiteToSupply", nil, owner, outputProductID, prerequisiteProductID, newBatchID, prerequisiteProductIDs, batchIDs, quantities)
}

// ConvertToSupply creates a transaction invoking `convertToSupply` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ConvertToSupply(owner util.Uint160, productID *big.Int, quantity *big.Int, batchID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "convertToSupply", owner, productID, quantity, batchID)
}

// ConvertToSupplyTransaction creates a transaction invoking `convertToSupply` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConvertToSupplyTransaction(owner util.Uint160, productID *big.Int, quantity *big.Int, batchID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "convertToSupply", owner, productID, quantity, batchID)
}

// ConvertToSupplyUnsigned creates a transaction invoking `convertToSupply` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConvertToSupplyUnsigned(owner util.Uint160, productID *big.Int, quantity *big.Int, batchID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "convertToSupply", nil, owner, productID, quantity, batchID)
}

// DeclineContract creates a transaction invoking `declineContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeclineContract(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "declineContract", id, from, to, productID)
}

// DeclineContractTransaction creates a transaction invoking `declineContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeclineContractTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "declineContract", id, from, to, productID)
}

// DeclineContractUnsigned creates a transaction invoking `declineContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeclineContractUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "declineContract", nil, id, from, to, productID)
}

// DeclineRequest creates a transaction invoking `declineRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeclineRequest(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "declineRequest", id, from, to, productID, quantity)
}

// DeclineRequestTransaction creates a transaction invoking `declineRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeclineRequestTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "declineRequest", id, from, to, productID, quantity)
}

// DeclineRequestUnsigned creates a transaction invoking `declineRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeclineRequestUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "declineRequest", nil, id, from, to, productID, quantity)
}

// SendContract creates a transaction invoking `sendContract` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SendContract(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sendContract", id, from, to, productID)
}

// SendContractTransaction creates a transaction invoking `sendContract` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SendContractTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sendContract", id, from, to, productID)
}

// SendContractUnsigned creates a transaction invoking `sendContract` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SendContractUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sendContract", nil, id, from, to, productID)
}

// SendRequest creates a transaction invoking `sendRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SendRequest(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "sendRequest", id, from, to, productID, quantity)
}

// SendRequestTransaction creates a transaction invoking `sendRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SendRequestTransaction(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "sendRequest", id, from, to, productID, quantity)
}

// SendRequestUnsigned creates a transaction invoking `sendRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SendRequestUnsigned(id *big.Int, from util.Uint160, to util.Uint160, productID *big.Int, quantity *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "sendRequest", nil, id, from, to, productID, quantity)
}

// SetConversionMode creates a transaction invoking `setConversionMode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetConversionMode(mode *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setConversionMode", mode)
}

// SetConversionModeTransaction creates a transaction invoking `setConversionMode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetConversionModeTransaction(mode *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setConversionMode", mode)
}

// SetConversionModeUnsigned creates a transaction invoking `setConversionMode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetConversionModeUnsigned(mode *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setConversionMode", nil, mode)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToSupplychainCompany converts stack item into *SupplychainCompany.
func itemToSupplychainCompany(item stackitem.Item, err error) (*SupplychainCompany, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainCompany)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainCompany from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainCompany) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// itemToSupplychainCompanyInfo converts stack item into *SupplychainCompanyInfo.
func itemToSupplychainCompanyInfo(item stackitem.Item, err error) (*SupplychainCompanyInfo, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainCompanyInfo)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainCompanyInfo from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainCompanyInfo) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 12 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Productions, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Productions: %w", err)
	}

	index++
	res.PrerequisiteProducts, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field PrerequisiteProducts: %w", err)
	}

	index++
	res.Recipes, err = func (item stackitem.Item) ([]*SupplychainRecipe, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SupplychainRecipe, len(arr))
		for i := range res {
			res[i], err = itemToSupplychainRecipe(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Recipes: %w", err)
	}

	index++
	res.Upstream, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Upstream: %w", err)
	}

	index++
	res.Downstream, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Downstream: %w", err)
	}

	index++
	res.OutgoingContracts, err = func (item stackitem.Item) ([]*SupplychainContractProposal, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SupplychainContractProposal, len(arr))
		for i := range res {
			res[i], err = itemToSupplychainContractProposal(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OutgoingContracts: %w", err)
	}

	index++
	res.IncomingContracts, err = func (item stackitem.Item) ([]*SupplychainContractProposal, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SupplychainContractProposal, len(arr))
		for i := range res {
			res[i], err = itemToSupplychainContractProposal(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field IncomingContracts: %w", err)
	}

	index++
	res.OutgoingRequests, err = func (item stackitem.Item) ([]*SupplychainRequestProposal, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SupplychainRequestProposal, len(arr))
		for i := range res {
			res[i], err = itemToSupplychainRequestProposal(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field OutgoingRequests: %w", err)
	}

	index++
	res.IncomingRequests, err = func (item stackitem.Item) ([]*SupplychainRequestProposal, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*SupplychainRequestProposal, len(arr))
		for i := range res {
			res[i], err = itemToSupplychainRequestProposal(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field IncomingRequests: %w", err)
	}

	index++
	res.IsHead, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field IsHead: %w", err)
	}

	return nil
}

// itemToSupplychainContractProposal converts stack item into *SupplychainContractProposal.
func itemToSupplychainContractProposal(item stackitem.Item, err error) (*SupplychainContractProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainContractProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainContractProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainContractProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	res.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	res.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	return nil
}

// itemToSupplychainProduct converts stack item into *SupplychainProduct.
func itemToSupplychainProduct(item stackitem.Item, err error) (*SupplychainProduct, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainProduct)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainProduct from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainProduct) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.Owners, err = func (item stackitem.Item) ([]util.Uint160, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]util.Uint160, len(arr))
		for i := range res {
			res[i], err = func (item stackitem.Item) (util.Uint160, error) {
				b, err := item.TryBytes()
				if err != nil {
					return util.Uint160{}, err
				}
				u, err := util.Uint160DecodeBytesBE(b)
				if err != nil {
					return util.Uint160{}, err
				}
				return u, nil
			} (arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owners: %w", err)
	}

	index++
	res.Recipe, err = itemToSupplychainRecipe(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Recipe: %w", err)
	}

	return nil
}

// itemToSupplychainRecipe converts stack item into *SupplychainRecipe.
func itemToSupplychainRecipe(item stackitem.Item, err error) (*SupplychainRecipe, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainRecipe)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainRecipe from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainRecipe) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	res.Prerequisites, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Prerequisites: %w", err)
	}

	index++
	res.Quantities, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Quantities: %w", err)
	}

	return nil
}

// itemToSupplychainRequestProposal converts stack item into *SupplychainRequestProposal.
func itemToSupplychainRequestProposal(item stackitem.Item, err error) (*SupplychainRequestProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainRequestProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainRequestProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainRequestProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	res.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	res.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	res.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// itemToSupplychainSupply converts stack item into *SupplychainSupply.
func itemToSupplychainSupply(item stackitem.Item, err error) (*SupplychainSupply, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SupplychainSupply)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SupplychainSupply from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SupplychainSupply) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Total, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	index++
	res.BatchIDs, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field BatchIDs: %w", err)
	}

	index++
	res.Quantities, err = func (item stackitem.Item) ([]*big.Int, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*big.Int, len(arr))
		for i := range res {
			res[i], err = arr[i].TryInteger()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Quantities: %w", err)
	}

	return nil
}

// CompanyAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "CompanyAdded" name from the provided [result.ApplicationLog].
func CompanyAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CompanyAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CompanyAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CompanyAdded" {
				continue
			}
			event := new(CompanyAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CompanyAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CompanyAddedEvent or
// returns an error if it's not possible to do to so.
func (e *CompanyAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	return nil
}

// ProductAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProductAdded" name from the provided [result.ApplicationLog].
func ProductAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProductAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProductAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProductAdded" {
				continue
			}
			event := new(ProductAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProductAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProductAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ProductAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.Name, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// ProductOwnerAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProductOwnerAdded" name from the provided [result.ApplicationLog].
func ProductOwnerAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProductOwnerAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProductOwnerAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProductOwnerAdded" {
				continue
			}
			event := new(ProductOwnerAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProductOwnerAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProductOwnerAddedEvent or
// returns an error if it's not possible to do to so.
func (e *ProductOwnerAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// ContractProposedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContractProposed" name from the provided [result.ApplicationLog].
func ContractProposedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContractProposedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContractProposedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContractProposed" {
				continue
			}
			event := new(ContractProposedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContractProposedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContractProposedEvent or
// returns an error if it's not possible to do to so.
func (e *ContractProposedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	return nil
}

// ContractApprovedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContractApproved" name from the provided [result.ApplicationLog].
func ContractApprovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContractApprovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContractApprovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContractApproved" {
				continue
			}
			event := new(ContractApprovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContractApprovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContractApprovedEvent or
// returns an error if it's not possible to do to so.
func (e *ContractApprovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	return nil
}

// ContractDeclinedEventsFromApplicationLog retrieves a set of all emitted events
// with "ContractDeclined" name from the provided [result.ApplicationLog].
func ContractDeclinedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ContractDeclinedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ContractDeclinedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ContractDeclined" {
				continue
			}
			event := new(ContractDeclinedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ContractDeclinedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ContractDeclinedEvent or
// returns an error if it's not possible to do to so.
func (e *ContractDeclinedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	return nil
}

// RequestProposedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestProposed" name from the provided [result.ApplicationLog].
func RequestProposedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestProposedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestProposedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestProposed" {
				continue
			}
			event := new(RequestProposedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestProposedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestProposedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestProposedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// RequestApprovedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestApproved" name from the provided [result.ApplicationLog].
func RequestApprovedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestApprovedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestApprovedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestApproved" {
				continue
			}
			event := new(RequestApprovedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestApprovedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestApprovedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestApprovedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// RequestDeclinedEventsFromApplicationLog retrieves a set of all emitted events
// with "RequestDeclined" name from the provided [result.ApplicationLog].
func RequestDeclinedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RequestDeclinedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RequestDeclinedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RequestDeclined" {
				continue
			}
			event := new(RequestDeclinedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RequestDeclinedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RequestDeclinedEvent or
// returns an error if it's not possible to do to so.
func (e *RequestDeclinedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.From, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// BatchTransferredEventsFromApplicationLog retrieves a set of all emitted events
// with "BatchTransferred" name from the provided [result.ApplicationLog].
func BatchTransferredEventsFromApplicationLog(log *result.ApplicationLog) ([]*BatchTransferredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BatchTransferredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "BatchTransferred" {
				continue
			}
			event := new(BatchTransferredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BatchTransferredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BatchTransferredEvent or
// returns an error if it's not possible to do to so.
func (e *BatchTransferredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Supplier, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Supplier: %w", err)
	}

	index++
	e.Receiver, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Receiver: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.BatchID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// SupplyProducedEventsFromApplicationLog retrieves a set of all emitted events
// with "SupplyProduced" name from the provided [result.ApplicationLog].
func SupplyProducedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SupplyProducedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SupplyProducedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SupplyProduced" {
				continue
			}
			event := new(SupplyProducedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SupplyProducedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SupplyProducedEvent or
// returns an error if it's not possible to do to so.
func (e *SupplyProducedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.BatchID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// PrerequisiteConvertedEventsFromApplicationLog retrieves a set of all emitted events
// with "PrerequisiteConverted" name from the provided [result.ApplicationLog].
func PrerequisiteConvertedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PrerequisiteConvertedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PrerequisiteConvertedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PrerequisiteConverted" {
				continue
			}
			event := new(PrerequisiteConvertedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PrerequisiteConvertedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PrerequisiteConvertedEvent or
// returns an error if it's not possible to do to so.
func (e *PrerequisiteConvertedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ProductID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ProductID: %w", err)
	}

	index++
	e.BatchID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BatchID: %w", err)
	}

	index++
	e.Quantity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Quantity: %w", err)
	}

	return nil
}

// ConversionModeChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConversionModeChanged" name from the provided [result.ApplicationLog].
func ConversionModeChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConversionModeChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConversionModeChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConversionModeChanged" {
				continue
			}
			event := new(ConversionModeChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConversionModeChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConversionModeChangedEvent or
// returns an error if it's not possible to do to so.
func (e *ConversionModeChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Mode, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Mode: %w", err)
	}

	return nil
}
