package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/supplychain-contract/dump"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	chainLabel := flag.String("label", "", "Label of the blockchain environment (e.g. 'testnet')")
	contract := flag.String("contract", "", "SupplyChain contract address or hash (LE)")
	rootDir := flag.String("out", "testdata", "Directory to put the dump to")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *chainLabel == "":
		log.Fatal("missing blockchain label")
	case *contract == "":
		log.Fatal("missing contract address")
	}

	h, err := parseContract(*contract)
	if err != nil {
		log.Fatal(err)
	}

	err = os.MkdirAll(*rootDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create root dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, *rootDir, *chainLabel, h)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("SupplyChain contract is successfully dumped to '%s/'\n", *rootDir)
}

// parseContract accepts both Neo address and LE hex hash of the contract.
func parseContract(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(s)
	if err != nil {
		return h, fmt.Errorf("contract '%s' is neither address nor hash: %w", s, err)
	}

	return h, nil
}

func _dump(neoBlockchainRPCEndpoint, rootDir, label string, contract util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	st, version, err := b.getSupplyChainContract(contract)
	if err != nil {
		return err
	}

	log.Printf("Processing contract '%s' of version %d at block #%d...\n", st.Manifest.Name, version, b.currentBlock)

	d, err := dump.NewCreator(rootDir, dump.ID{
		Label: label,
		Block: b.currentBlock,
	})
	if err != nil {
		return fmt.Errorf("init local dumper: %w", err)
	}

	defer d.Close()

	d.SetContract("supplychain", st)

	err = b.iterateContractStorage(contract, d.Write)
	if err != nil {
		return fmt.Errorf("iterate contract storage: %w", err)
	}

	err = d.Flush()
	if err != nil {
		return fmt.Errorf("flush dump: %w", err)
	}

	return nil
}
