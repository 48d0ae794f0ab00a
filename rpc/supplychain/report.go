package supplychain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Batch is a single ledger entry.
type Batch struct {
	ID       int64
	Quantity int64
}

// Report is a snapshot of the company state: its record and ledgers of
// every product it produces or consumes. Ledgers are keyed by product ID,
// products without supply are omitted.
type Report struct {
	Company            *SupplychainCompanyInfo
	Supply             map[int64][]Batch
	PrerequisiteSupply map[int64][]Batch
}

// ErrInconsistentLedger is returned when ledger batch and quantity lists
// differ in length or quantities don't sum up to the total.
var ErrInconsistentLedger = errors.New("inconsistent ledger")

// Batches returns ledger entries in ledger order.
func (s *SupplychainSupply) Batches() ([]Batch, error) {
	if len(s.BatchIDs) != len(s.Quantities) {
		return nil, fmt.Errorf("%w: %d batches, %d quantities", ErrInconsistentLedger, len(s.BatchIDs), len(s.Quantities))
	}

	var (
		res = make([]Batch, 0, len(s.BatchIDs))
		sum = new(big.Int)
	)
	for i := range s.BatchIDs {
		res = append(res, Batch{ID: s.BatchIDs[i].Int64(), Quantity: s.Quantities[i].Int64()})
		sum.Add(sum, s.Quantities[i])
	}

	if s.Total != nil && sum.Cmp(s.Total) != 0 {
		return nil, fmt.Errorf("%w: total %s, sum %s", ErrInconsistentLedger, s.Total, sum)
	}

	return res, nil
}

// CompanyReport fetches company record and all its ledgers.
func (c *ContractReader) CompanyReport(owner util.Uint160) (*Report, error) {
	info, err := c.GetCompany(owner)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	rep := &Report{
		Company:            info,
		Supply:             make(map[int64][]Batch),
		PrerequisiteSupply: make(map[int64][]Batch),
	}

	for _, id := range info.Productions {
		s, err := c.GetSupply(owner, id)
		if err != nil {
			return nil, fmt.Errorf("get supply of %s: %w", id, err)
		}
		if err := putBatches(rep.Supply, id, s); err != nil {
			return nil, fmt.Errorf("supply of %s: %w", id, err)
		}
	}

	for _, id := range info.PrerequisiteProducts {
		s, err := c.GetPrerequisiteSupply(owner, id)
		if err != nil {
			return nil, fmt.Errorf("get prerequisite supply of %s: %w", id, err)
		}
		if err := putBatches(rep.PrerequisiteSupply, id, s); err != nil {
			return nil, fmt.Errorf("prerequisite supply of %s: %w", id, err)
		}
	}

	return rep, nil
}

// Companies returns up to limit registered companies. Iterator is expanded
// in the VM, so the result doesn't depend on RPC session support.
func (c *ContractReader) Companies(limit int) ([]*SupplychainCompany, error) {
	items, err := c.IterateCompaniesExpanded(limit)
	if err != nil {
		return nil, err
	}

	res := make([]*SupplychainCompany, 0, len(items))
	for i := range items {
		company, err := itemToSupplychainCompany(items[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res = append(res, company)
	}

	return res, nil
}

// Provenance returns source batches of the company output batch.
func (c *ContractReader) Provenance(owner util.Uint160, batchID int64) ([]int64, error) {
	past, err := c.GetPastSupply(owner, big.NewInt(batchID))
	if err != nil {
		return nil, err
	}

	res := make([]int64, len(past))
	for i := range past {
		res[i] = past[i].Int64()
	}

	return res, nil
}

func putBatches(m map[int64][]Batch, id *big.Int, s *SupplychainSupply) error {
	batches, err := s.Batches()
	if err != nil {
		return err
	}
	if len(batches) != 0 {
		m[id.Int64()] = batches
	}
	return nil
}
