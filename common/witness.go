package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrMalformedAccount appears when the account script hash has the wrong
// length and can't be checked or stored.
const ErrMalformedAccount = "invalid argument: malformed account"

// CheckAccount panics with ErrMalformedAccount if acc is not a valid
// script hash.
func CheckAccount(acc interop.Hash160) {
	if len(acc) != interop.Hash160Len {
		panic(ErrMalformedAccount)
	}
}

// CheckWitness checks witness of the passed account. It panics with
// ErrMalformedAccount if acc is malformed and with panicMsg if current
// transaction is not signed by acc.
func CheckWitness(acc interop.Hash160, panicMsg string) {
	CheckAccount(acc)
	if !runtime.CheckWitness(acc) {
		panic(panicMsg)
	}
}
