package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	cst "github.com/nspcc-dev/supplychain-contract/contracts/supplychain/scconst"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required to deploy the supply chain contract.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetApplicationLog returns execution results of the transaction. It is
	// used to await sent transactions.
	GetApplicationLog(util.Uint256, *trigger.Type) (*result.ApplicationLog, error)

	// GetContractStateByHash returns network state of the smart contract by
	// its address. GetContractStateByHash returns error with 'Unknown
	// contract' substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Prm groups all parameters of the supply chain contract deployment
// procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance to deploy the contract to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// The contract address is derived from this account, so subsequent
	// Deploy calls with the same account update the same contract.
	LocalAccount *wallet.Account

	// Executable and manifest of the contract.
	Contract CommonDeployPrm

	// Registry administrator. Defaults to LocalAccount. Used only on initial
	// deployment.
	Admin util.Uint160

	// Conversion mode, see scconst. Used only on initial deployment.
	ConversionMode int64
}

// action is a step required to bring the contract on chain to the wanted
// state.
type action uint8

const (
	actionNone action = iota
	actionDeploy
	actionUpdate
)

func (a action) String() string {
	switch a {
	case actionNone:
		return "none"
	case actionDeploy:
		return "deploy"
	case actionUpdate:
		return "update"
	default:
		return fmt.Sprintf("unknown action %d", a)
	}
}

// Deploy deploys the supply chain contract into the Neo network represented
// by Prm.Blockchain, or updates it if the contract is already deployed with
// another executable. Deploy returns the contract address.
//
// Deploy sends at most one transaction and waits until it is accepted. An
// aborted transaction is reported as an error. Deployment progress is
// logged.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	var res util.Uint160

	if err := checkPrm(prm); err != nil {
		return res, fmt.Errorf("invalid parameters: %w", err)
	}

	act, err := actor.NewTuned(prm.Blockchain, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account: prm.LocalAccount.ScriptHash(),
			Scopes:  transaction.CalledByEntry,
		},
		Account: prm.LocalAccount,
	}}, actor.Options{
		CheckerModifier: heightAlignedTransactionModifier(prm.Blockchain.GetBlockCount),
	})
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	res = state.CreateContractHash(act.Sender(), prm.Contract.NEF.Checksum, prm.Contract.Manifest.Name)
	l := prm.Logger.With(zap.Stringer("address", res))

	st, err := prm.Blockchain.GetContractStateByHash(res)
	a, err := syncAction(st, err, prm.Contract.NEF)
	if err != nil {
		return res, fmt.Errorf("get state of the contract: %w", err)
	}

	l.Info("contract state checked", zap.Stringer("action", a))

	if err = ctx.Err(); err != nil {
		return res, err
	}

	var (
		txHash util.Uint256
		vub    uint32
	)

	switch a {
	case actionNone:
		l.Info("contract is up to date, nothing to do")
		return res, nil
	case actionDeploy:
		admin := prm.Admin
		if admin.Equals(util.Uint160{}) {
			admin = act.Sender()
		}

		l.Info("sending deploy transaction",
			zap.Stringer("admin", admin), zap.Int64("conversion mode", prm.ConversionMode))

		txHash, vub, err = management.New(act).Deploy(&prm.Contract.NEF, &prm.Contract.Manifest,
			[]any{admin, prm.ConversionMode})
	case actionUpdate:
		var rawNEF, rawManifest []byte

		rawNEF, err = prm.Contract.NEF.Bytes()
		if err != nil {
			return res, fmt.Errorf("encode NEF into binary: %w", err)
		}

		rawManifest, err = json.Marshal(prm.Contract.Manifest)
		if err != nil {
			return res, fmt.Errorf("encode manifest into JSON: %w", err)
		}

		l.Info("sending update transaction",
			zap.Uint32("old checksum", st.NEF.Checksum), zap.Uint32("new checksum", prm.Contract.NEF.Checksum))

		txHash, vub, err = supplychain.New(act, res).Update(rawNEF, rawManifest, nil)
	}

	aer, err := act.Wait(txHash, vub, err)
	if err != nil {
		return res, fmt.Errorf("%s contract: %w", a, err)
	}

	if aer.VMState != vmstate.Halt {
		return res, fmt.Errorf("%s contract: transaction %s aborted: %s", a, txHash.StringLE(), aer.FaultException)
	}

	l.Info("contract successfully synchronized", zap.Stringer("action", a), zap.Stringer("tx", txHash))

	return res, nil
}

func checkPrm(prm Prm) error {
	switch {
	case prm.Logger == nil:
		return errors.New("missing logger")
	case prm.Blockchain == nil:
		return errors.New("missing blockchain")
	case prm.LocalAccount == nil:
		return errors.New("missing local account")
	case prm.Contract.Manifest.Name == "":
		return errors.New("missing contract manifest")
	case prm.ConversionMode != cst.ConversionStrict && prm.ConversionMode != cst.ConversionLimiting:
		return fmt.Errorf("unknown conversion mode %d", prm.ConversionMode)
	}
	return nil
}

// syncAction selects an action by the result of the contract state request.
// Missing contract is deployed, contract with another executable is updated.
func syncAction(st *state.Contract, err error, exp nef.File) (action, error) {
	if err != nil {
		if strings.Contains(err.Error(), "Unknown contract") {
			return actionDeploy, nil
		}
		return actionNone, err
	}

	if st.NEF.Checksum == exp.Checksum {
		return actionNone, nil
	}

	return actionUpdate, nil
}

// returns actor.TransactionCheckerModifier which checks that invocation
// finished with 'HALT' state and, if so, sets transaction's nonce and
// ValidUntilBlock to 100*N and 100*(N+1) correspondingly, where
// 100*N <= current height < 100*(N+1). Deploy retried within the same span
// produces the same transaction, so it can't be applied twice.
func heightAlignedTransactionModifier(getBlockCount func() (uint32, error)) actor.TransactionCheckerModifier {
	return func(r *result.Invoke, tx *transaction.Transaction) error {
		err := actor.DefaultCheckerModifier(r, tx)
		if err != nil {
			return err
		}

		count, err := getBlockCount()
		if err != nil {
			return fmt.Errorf("get number of the latest block: %w", err)
		}

		var curHeight uint32
		if count > 0 {
			curHeight = count - 1
		}

		const span = 100
		n := curHeight / span

		tx.Nonce = n * span

		if math.MaxUint32-span > tx.Nonce {
			tx.ValidUntilBlock = tx.Nonce + span
		} else {
			tx.ValidUntilBlock = math.MaxUint32
		}

		return nil
	}
}
