/*
Package supplychain implements SupplyChain contract which tracks products,
batches and their provenance across companies of a supply network.

Companies are registered by the administrator and identified by their account
script hash. A company declares products it produces, optionally with a
recipe of prerequisite products. Supplier relations are established by the
contract proposals which the consumer approves or declines. Goods are moved
by requests: requester asks for some quantity, supplier approves it naming
exact batches of its output ledger to draw from. Received batches land in the
requester prerequisite ledger and can be converted to the new output batches
according to the recipe. Every output batch remembers the batches it was made
of, including the sources of received batches, so the lineage of any finished
good can be traced back to the raw material batches.

Every method acting on behalf of the company takes the company account as an
argument and requires the transaction to be signed by it.

# Contract notifications

CompanyAdded notification. This notification is produced when the
administrator registers a new company.

	CompanyAdded:
	  - name: owner
	    type: Hash160
	  - name: name
	    type: String

ProductAdded notification. This notification is produced when a new product
is registered.

	ProductAdded:
	  - name: productID
	    type: Integer
	  - name: name
	    type: String
	  - name: owner
	    type: Hash160

ProductOwnerAdded notification. This notification is produced when one more
company declares itself a producer of the existing product.

	ProductOwnerAdded:
	  - name: productID
	    type: Integer
	  - name: owner
	    type: Hash160

ContractProposed, ContractApproved and ContractDeclined notifications. These
notifications are produced on each step of the contract proposal lifecycle.

	ContractProposed:
	  - name: id
	    type: Integer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: productID
	    type: Integer

RequestProposed, RequestApproved and RequestDeclined notifications. These
notifications are produced on each step of the request lifecycle.

	RequestProposed:
	  - name: id
	    type: Integer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: productID
	    type: Integer
	  - name: quantity
	    type: Integer

BatchTransferred notification. This notification is produced for every batch
portion moved by the approved request.

	BatchTransferred:
	  - name: supplier
	    type: Hash160
	  - name: receiver
	    type: Hash160
	  - name: productID
	    type: Integer
	  - name: batchID
	    type: Integer
	  - name: quantity
	    type: Integer

SupplyProduced and PrerequisiteConverted notifications. These notifications
are produced when the output batch is created or incremented.

	SupplyProduced:
	  - name: owner
	    type: Hash160
	  - name: productID
	    type: Integer
	  - name: batchID
	    type: Integer
	  - name: quantity
	    type: Integer

ConversionModeChanged notification. This notification is produced when the
administrator changes the conversion rule.

	ConversionModeChanged:
	  - name: mode
	    type: Integer
*/
package supplychain

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'admin' -> interop.Hash160
    registry administrator
  - 'ConversionMode' -> int
    rule of ConvertPrerequisiteToSupply, see scconst
  - 'heads' -> std.Serialize([]interop.Hash160)
    companies without suppliers in registration order
  - 'c' + owner -> std.Serialize(Company)
  - 'm' + owner -> std.Serialize([]int)
    products of the company
  - 'e' + owner -> std.Serialize([]int)
    prerequisite products of the company
  - 'r' + owner + productID -> std.Serialize(Recipe)
  - 'u' + owner / 'd' + owner -> std.Serialize([]interop.Hash160)
    suppliers and consumers
  - 'o' + owner / 'i' + owner -> std.Serialize([]ContractProposal)
    outgoing and incoming pending contracts
  - 'q' + owner / 'Q' + owner -> std.Serialize([]RequestProposal)
    outgoing and incoming pending requests
  - 'p' + productID -> std.Serialize(Product)
  - 'n' + RIPEMD160(name) -> productID
  - 's' + owner + productID -> std.Serialize(Supply)
    output ledger
  - 'S' + owner + productID -> std.Serialize(Supply)
    prerequisite ledger
  - 'x' + owner + batchID -> std.Serialize([]int)
    past supply of the output batch
  - 'l' + owner + batchID -> std.Serialize([]int)
    sources of the received batch

Integer key parts are NeoVM integers converted to bytes. Owner part always
has a fixed length, so at most one variable length part ends the key.

# Ledgers
Ledger keeps batch IDs in the order of creation and a parallel list of
quantities. Exhausted batches are removed, ledger without batches is removed
from the storage.
*/
