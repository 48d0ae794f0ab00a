package main

import (
	"fmt"
	"io"
	"math/big"
	"sort"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/supplychain-contract/rpc/supplychain"
)

// reader is a part of supplychain.ContractReader used by the command.
type reader interface {
	Companies(limit int) ([]*supplychain.SupplychainCompany, error)
	ListHeadCompanies() ([]util.Uint160, error)
	CompanyReport(owner util.Uint160) (*supplychain.Report, error)
	Provenance(owner util.Uint160, batchID int64) ([]int64, error)
}

func listCompanies(w io.Writer, r reader, limit int) error {
	companies, err := r.Companies(limit)
	if err != nil {
		return fmt.Errorf("list companies: %w", err)
	}

	heads, err := r.ListHeadCompanies()
	if err != nil {
		return fmt.Errorf("list head companies: %w", err)
	}

	isHead := make(map[util.Uint160]struct{}, len(heads))
	for i := range heads {
		isHead[heads[i]] = struct{}{}
	}

	for _, c := range companies {
		mark := ""
		if _, ok := isHead[c.Owner]; ok {
			mark = " (head)"
		}
		fmt.Fprintf(w, "%s %s%s\n", address.Uint160ToString(c.Owner), c.Name, mark)
	}

	return nil
}

func traceCompany(w io.Writer, r reader, company string, batch int64) error {
	owner, err := address.StringToUint160(company)
	if err != nil {
		return fmt.Errorf("decode company address: %w", err)
	}

	rep, err := r.CompanyReport(owner)
	if err != nil {
		return fmt.Errorf("get company report: %w", err)
	}

	printReport(w, rep)

	if batch < 0 {
		return nil
	}

	sources, err := r.Provenance(owner, batch)
	if err != nil {
		return fmt.Errorf("get provenance of batch %d: %w", batch, err)
	}

	if len(sources) == 0 {
		fmt.Fprintf(w, "batch %d: no recorded sources\n", batch)
		return nil
	}

	fmt.Fprintf(w, "batch %d is made of batches %s\n", batch, joinInts(sources))

	return nil
}

func printReport(w io.Writer, rep *supplychain.Report) {
	c := rep.Company

	fmt.Fprintf(w, "company: %s (%s)\n", c.Name, address.Uint160ToString(c.Owner))
	fmt.Fprintf(w, "head: %t\n", c.IsHead)
	fmt.Fprintf(w, "products: %s\n", joinBigs(c.Productions))
	fmt.Fprintf(w, "prerequisites: %s\n", joinBigs(c.PrerequisiteProducts))

	for _, rcp := range c.Recipes {
		parts := make([]string, len(rcp.Prerequisites))
		for i := range rcp.Prerequisites {
			parts[i] = fmt.Sprintf("%s x%s", rcp.Prerequisites[i], rcp.Quantities[i])
		}
		fmt.Fprintf(w, "recipe of %s: %s\n", rcp.ProductID, strings.Join(parts, ", "))
	}

	fmt.Fprintf(w, "suppliers: %s\n", joinAddresses(c.Upstream))
	fmt.Fprintf(w, "consumers: %s\n", joinAddresses(c.Downstream))
	fmt.Fprintf(w, "pending: %d outgoing, %d incoming contracts; %d outgoing, %d incoming requests\n",
		len(c.OutgoingContracts), len(c.IncomingContracts), len(c.OutgoingRequests), len(c.IncomingRequests))

	printLedgers(w, "supply", rep.Supply)
	printLedgers(w, "prerequisite supply", rep.PrerequisiteSupply)
}

func printLedgers(w io.Writer, title string, ledgers map[int64][]supplychain.Batch) {
	ids := make([]int64, 0, len(ledgers))
	for id := range ledgers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		parts := make([]string, len(ledgers[id]))
		for i, b := range ledgers[id] {
			parts[i] = fmt.Sprintf("#%d: %d", b.ID, b.Quantity)
		}
		fmt.Fprintf(w, "%s of %d: %s\n", title, id, strings.Join(parts, ", "))
	}
}

func joinInts(vs []int64) string {
	ss := make([]string, len(vs))
	for i := range vs {
		ss[i] = fmt.Sprint(vs[i])
	}
	return "[" + strings.Join(ss, " ") + "]"
}

func joinBigs(vs []*big.Int) string {
	ss := make([]string, len(vs))
	for i := range vs {
		ss[i] = vs[i].String()
	}
	return "[" + strings.Join(ss, " ") + "]"
}

func joinAddresses(hs []util.Uint160) string {
	ss := make([]string, len(hs))
	for i := range hs {
		ss[i] = address.Uint160ToString(hs[i])
	}
	return "[" + strings.Join(ss, " ") + "]"
}
