/*
Package dump provides I/O operations for collected states of the SupplyChain
contract.

State collection (including storage) allows you to inspect a "live" registry
offline and to reproduce it in tests. Dump holds the contract state and every
storage item tagged with the storage section it belongs to (companies,
products, ledgers and so on), so the files can be reviewed by hand.

The package works with dumps stored in the file system using human-readable
encoding.
*/
package dump
