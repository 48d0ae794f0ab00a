package dump

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
)

// ID identifies the dump: the network it was taken from and the chain
// height.
type ID struct {
	// Label of the dump source (e.g. testnet, mainnet). Must not contain
	// hyphens.
	Label string
	// Blockchain height at which the state was pulled.
	Block uint32
}

// String returns hyphen-separated ID fields.
func (x ID) String() string {
	return x.Label + sep + strconv.FormatUint(uint64(x.Block), 10)
}

func (x ID) validate() error {
	switch {
	case x.Label == "":
		return errors.New("empty label")
	case strings.Contains(x.Label, sep):
		return fmt.Errorf("label '%s' contains '%s'", x.Label, sep)
	}
	return nil
}

// decodeFileName decodes ID fields from the name of the dump file.
func (x *ID) decodeFileName(s string) error {
	ss := strings.Split(s, sep)
	if len(ss) != 3 {
		return fmt.Errorf("expected 3 '%s'-separated items", sep)
	}

	n, err := strconv.ParseUint(ss[1], 10, 32)
	if err != nil {
		return fmt.Errorf("decode block number from '%s': %w", ss[1], err)
	}

	x.Label = ss[0]
	x.Block = uint32(n)

	return nil
}

// global encoding of binary values.
var _encoding = base64.StdEncoding

// snapshot is a JSON-encoded information about the dumped contract.
type snapshot struct {
	Name  string         `json:"name"`
	State state.Contract `json:"state"`
	Items int            `json:"items"`
}

// dumpStreams groups data streams for contract state and storage.
type dumpStreams struct {
	contract, storage io.ReadWriteCloser
}

// close closes all streams.
func (x *dumpStreams) close() {
	_ = x.storage.Close()
	_ = x.contract.Close()
}

const (
	// word separator used in dump file naming
	sep = "-"
	// suffix of file with contract state
	contractFileSuffix = "contract.json"
	// suffix of file with contract storage
	storageFileSuffix = "storage.csv"
)

func dumpFilePath(dir string, id ID, suffix string) string {
	return filepath.Join(dir, id.String()+sep+suffix)
}

// initDumpStreams opens data streams for the dump files located in the
// specified directory. If read flag is set, streams are read-only. Otherwise,
// files must not exist, and streams are write only.
func initDumpStreams(d *dumpStreams, dir string, id ID, read bool) error {
	var (
		err          error
		pathStorage  = dumpFilePath(dir, id, storageFileSuffix)
		pathContract = dumpFilePath(dir, id, contractFileSuffix)
		flag         = os.O_RDONLY
		perm         os.FileMode
	)

	if !read {
		for _, p := range []string{pathStorage, pathContract} {
			if err = checkFileNotExists(p); err != nil {
				return err
			}
		}

		flag = os.O_CREATE | os.O_WRONLY
		perm = 0600
	}

	d.storage, err = os.OpenFile(pathStorage, flag, perm)
	if err != nil {
		return fmt.Errorf("open file with storage items: %w", err)
	}

	d.contract, err = os.OpenFile(pathContract, flag, perm)
	if err != nil {
		_ = d.storage.Close()
		return fmt.Errorf("open file with contract state: %w", err)
	}

	return nil
}

// checkFileNotExists checks that there is no file at the specified path.
func checkFileNotExists(p string) error {
	_, err := os.Stat(p)
	if !os.IsNotExist(err) {
		if err == nil {
			err = os.ErrExist
		}
		return fmt.Errorf("file '%s' absence check failed: %w", p, err)
	}
	return nil
}
