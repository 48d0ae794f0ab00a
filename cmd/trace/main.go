package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contract := flag.String("contract", "", "SupplyChain contract address")
	company := flag.String("company", "", "Company address (default: list all companies)")
	batch := flag.Int64("batch", -1, "Output batch to trace back to its sources")
	limit := flag.Int("limit", 1000, "Maximum number of listed companies")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contract == "":
		log.Fatal("missing contract address")
	case *company == "" && *batch >= 0:
		log.Fatal("batch can be traced only for the company")
	}

	h, err := address.StringToUint160(*contract)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract address: %w", err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal(fmt.Errorf("RPC client dial: %w", err))
	}

	defer c.Close()

	err = c.Init()
	if err != nil {
		log.Fatal(fmt.Errorf("init RPC client: %w", err))
	}

	r := supplychain.NewReader(invoker.New(c, nil), h)

	if *company == "" {
		err = listCompanies(os.Stdout, r, *limit)
	} else {
		err = traceCompany(os.Stdout, r, *company, *batch)
	}
	if err != nil {
		log.Fatal(err)
	}
}
