/*
Package migration provides framework to test migration of the SupplyChain
contract data.

The contract keeps the whole registry: companies, products, ledgers and batch
lineage. It is updated on the fly, so data migration must be performed
accurately, without backward compatibility loss. The package starts a test
blockchain with the contract state and storage taken from the dump (see
package dump) and lets the test update the contract and read the data via
contract API.
*/
package migration
