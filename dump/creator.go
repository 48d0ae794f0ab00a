package dump

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Creator dumps state of the SupplyChain contract. Output file format:
//
//	'<label>-<block>-contract.json': JSON object with contract state
//	'<label>-<block>-storage.csv': CSV of contract storage
//
// Storage CSV are 'section,key,value' where section is the one returned by
// Section for the key and binary key-value are base64-encoded.
//
// Use ReadDump or IterateDumps to access existing dumps.
type Creator struct {
	dumpStreams

	contract snapshot

	storageCSV *csv.Writer
}

// NewCreator returns Creator which dumps the contract into given directory.
// The dump is identified by specified ID. Resulting Creator should be closed
// when finished working with it.
//
// NewCreator fails if dump with provided ID already exists.
func NewCreator(dir string, id ID) (*Creator, error) {
	if err := id.validate(); err != nil {
		return nil, fmt.Errorf("invalid dump ID: %w", err)
	}

	var res Creator

	err := initDumpStreams(&res.dumpStreams, dir, id, false)
	if err != nil {
		return nil, err
	}

	res.storageCSV = csv.NewWriter(res.dumpStreams.storage)

	return &res, nil
}

// SetContract sets state of the named contract. It must be called before
// Flush.
func (x *Creator) SetContract(name string, st state.Contract) {
	x.contract.Name = name
	x.contract.State = st
}

// Write saves given binary key-value into the dump as storage item.
func (x *Creator) Write(key, value []byte) error {
	err := x.storageCSV.Write([]string{
		Section(key),
		_encoding.EncodeToString(key),
		_encoding.EncodeToString(value),
	})
	if err != nil {
		return fmt.Errorf("write storage item as CSV data: %w", err)
	}

	x.contract.Items++

	return nil
}

// Flush flushes accumulated dump to the file system.
func (x *Creator) Flush() error {
	if x.contract.Name == "" {
		return fmt.Errorf("contract state is not set")
	}

	jEnc := json.NewEncoder(x.dumpStreams.contract)
	jEnc.SetIndent("", " ")

	err := jEnc.Encode(x.contract)
	if err != nil {
		return fmt.Errorf("encode contract state to JSON: %w", err)
	}

	x.storageCSV.Flush()

	err = x.storageCSV.Error()
	if err != nil {
		return fmt.Errorf("flush CSV data: %w", err)
	}

	return nil
}

// Close releases underlying resources of the Creator and makes it unusable.
func (x *Creator) Close() {
	x.close()
}
