package dump

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// Item is a single storage item of the dumped contract.
type Item struct {
	Section    string
	Key, Value []byte
}

// Reader reads the contract collected in the dump.
type Reader struct {
	contract snapshot
	items    []Item
}

// ReadDump reads the dump with specified ID from given directory.
func ReadDump(dir string, id ID) (*Reader, error) {
	var streams dumpStreams

	err := initDumpStreams(&streams, dir, id, true)
	if err != nil {
		return nil, err
	}

	defer streams.close()

	var r Reader

	err = r.fromDumpStreams(streams.contract, streams.storage)
	if err != nil {
		return nil, fmt.Errorf("read dump '%s': %w", id, err)
	}

	return &r, nil
}

// IterateDumps iterates over all dumps collected by the Creator in the
// specified directory in ascending order of their IDs, and passes ID and
// Reader of each dump into f. Missing directory has no dumps.
func IterateDumps(dir string, f func(ID, *Reader)) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dump directory: %w", err)
	}

	var ids []ID

	for i := range entries {
		name := entries[i].Name()
		if entries[i].IsDir() || !strings.HasSuffix(name, sep+contractFileSuffix) {
			continue
		}

		var id ID

		err = id.decodeFileName(name)
		if err != nil {
			return fmt.Errorf("decode dump ID from file name '%s': %w", name, err)
		}

		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Label != ids[j].Label {
			return ids[i].Label < ids[j].Label
		}
		return ids[i].Block < ids[j].Block
	})

	for i := range ids {
		r, err := ReadDump(dir, ids[i])
		if err != nil {
			return err
		}

		f(ids[i], r)
	}

	return nil
}

func (x *Reader) fromDumpStreams(rContract, rStorage io.Reader) error {
	err := json.NewDecoder(rContract).Decode(&x.contract)
	if err != nil {
		return fmt.Errorf("decode contract state from JSON: %w", err)
	}

	_csv := csv.NewReader(rStorage)
	_csv.FieldsPerRecord = 3

	for {
		rec, err := _csv.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read next CSV record: %w", err)
		}

		var item Item

		// out-of-range safety guaranteed by csv settings
		item.Section = rec[0]

		item.Key, err = _encoding.DecodeString(rec[1])
		if err != nil {
			return fmt.Errorf("decode storage item key: %w", err)
		}

		item.Value, err = _encoding.DecodeString(rec[2])
		if err != nil {
			return fmt.Errorf("decode storage item value: %w", err)
		}

		x.items = append(x.items, item)
	}

	if len(x.items) != x.contract.Items {
		return fmt.Errorf("storage has %d items, %d expected", len(x.items), x.contract.Items)
	}

	return nil
}

// Contract returns name and state of the dumped contract.
func (x *Reader) Contract() (string, state.Contract) {
	return x.contract.Name, x.contract.State
}

// IterateStorage passes all storage items of the dumped contract into f in
// the order they were written.
func (x *Reader) IterateStorage(f func(Item)) {
	for i := range x.items {
		f(x.items[i])
	}
}

// SectionSizes returns number of storage items in each non-empty section.
func (x *Reader) SectionSizes() map[string]int {
	res := make(map[string]int)
	for i := range x.items {
		res[x.items[i].Section]++
	}
	return res
}
