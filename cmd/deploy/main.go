package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/supplychain-contract/deploy"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the wallet with the deployer account")
	accAddress := flag.String("address", "", "Deployer account address (default: the first wallet account)")
	password := flag.String("password", "", "Password of the deployer account")
	nefPath := flag.String("nef", "contracts/supplychain/contract.nef", "Path to the compiled contract")
	manifestPath := flag.String("manifest", "contracts/supplychain/manifest.json", "Path to the contract manifest")
	admin := flag.String("admin", "", "Registry administrator address (default: deployer account)")
	mode := flag.Int64("mode", 0, "Conversion mode: 0 for strict, 1 for limiting")
	timeout := flag.Duration("timeout", 2*time.Minute, "Deployment timeout")

	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	defer func() { _ = logger.Sync() }()

	switch {
	case *neoRPCEndpoint == "":
		logger.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		logger.Fatal("missing wallet")
	}

	acc, err := openAccount(*walletPath, *accAddress, *password)
	if err != nil {
		logger.Fatal("failed to open deployer account", zap.Error(err))
	}

	prm := deploy.Prm{
		Logger:         logger,
		LocalAccount:   acc,
		ConversionMode: *mode,
	}

	if *admin != "" {
		prm.Admin, err = address.StringToUint160(*admin)
		if err != nil {
			logger.Fatal("invalid administrator address", zap.Error(err))
		}
	}

	prm.Contract, err = readContract(*nefPath, *manifestPath)
	if err != nil {
		logger.Fatal("failed to read contract", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := rpcclient.New(ctx, *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		logger.Fatal("RPC client dial", zap.Error(err))
	}

	defer c.Close()

	err = c.Init()
	if err != nil {
		logger.Fatal("init RPC client", zap.Error(err))
	}

	prm.Blockchain = c

	h, err := deploy.Deploy(ctx, prm)
	if err != nil {
		logger.Fatal("deployment failed", zap.Error(err))
	}

	logger.Info("SupplyChain contract is ready",
		zap.String("address", address.Uint160ToString(h)), zap.String("hash", h.StringLE()))
}

// openAccount reads the wallet and decrypts the account with given address,
// or the first one if the address is empty.
func openAccount(walletPath, accAddress, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}

	defer w.Close()

	var acc *wallet.Account

	if accAddress == "" {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	} else {
		var h util.Uint160

		h, err = address.StringToUint160(accAddress)
		if err != nil {
			return nil, fmt.Errorf("decode account address: %w", err)
		}

		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s is missing in the wallet", accAddress)
		}
	}

	err = acc.Decrypt(password, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func readContract(nefPath, manifestPath string) (deploy.CommonDeployPrm, error) {
	var res deploy.CommonDeployPrm

	rawNEF, err := os.ReadFile(nefPath)
	if err != nil {
		return res, fmt.Errorf("read NEF file: %w", err)
	}

	res.NEF, err = nef.FileFromBytes(rawNEF)
	if err != nil {
		return res, fmt.Errorf("decode NEF file: %w", err)
	}

	rawManifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return res, fmt.Errorf("read manifest file: %w", err)
	}

	err = json.Unmarshal(rawManifest, &res.Manifest)
	if err != nil {
		return res, fmt.Errorf("decode manifest file: %w", err)
	}

	return res, nil
}
