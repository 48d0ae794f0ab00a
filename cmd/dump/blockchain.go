package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
)

// name of the contract in its manifest.
const contractName = "SupplyChain"

// wrapper over Neo RPC providing blockchain services needed for current
// command.
type remoteBlockchain struct {
	rpc *rpcclient.Client

	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockChain(blockChainRPCEndpoint string) (*remoteBlockchain, error) {
	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	return &remoteBlockchain{
		rpc:          c,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// getSupplyChainContract requests state.Contract of the contract referenced
// by given address and makes sure it is the SupplyChain contract.
func (x *remoteBlockchain) getSupplyChainContract(h util.Uint160) (res state.Contract, version int64, err error) {
	contractState, err := x.rpc.GetContractStateByHash(h)
	if err != nil {
		return res, 0, fmt.Errorf("get state of the requested contract by hash '%s': %w", h.StringLE(), err)
	}

	if contractState.Manifest.Name != contractName {
		return res, 0, fmt.Errorf("contract '%s' is not %s but '%s'", h.StringLE(), contractName, contractState.Manifest.Name)
	}

	v, err := supplychain.NewReader(invoker.New(x.rpc, nil), h).Version()
	if err != nil {
		return res, 0, fmt.Errorf("get version of the contract '%s': %w", contractState.Manifest.Name, err)
	}

	return *contractState, v.Int64(), nil
}

// iterateContractStorage iterates over all storage items of the Neo smart
// contract referenced by given address and passes them into f.
// iterateContractStorage breaks on any f's error and returns it.
func (x *remoteBlockchain) iterateContractStorage(contract util.Uint160, f func(key, value []byte) error) error {
	stateRoot, err := x.rpc.GetStateRootByHeight(x.currentBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", x.currentBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, contract, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the requested contract at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
