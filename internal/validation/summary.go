// =============================================================================
// ASC to VCI Converter - Cargo Summaries
// =============================================================================

package validation

import (
	"sort"

	"github.com/ginjaninja78/ASC-to-VCI-conversion/internal/types"
)

// SpecialCargo lists the MSC containers flagged dangerous-goods or
// out-of-gauge, per side of the call.
type SpecialCargo struct {
	DischargeDG  []types.ContainerNumber
	DischargeOOG []types.ContainerNumber
	LoadDG       []types.ContainerNumber
	LoadOOG      []types.ContainerNumber
}

// SummarizeSpecialCargo collects DG and OOG containers from both registries,
// restricted to operator "MSC", each list sorted ascending.
func SummarizeSpecialCargo(discharge, load types.Registry) SpecialCargo {
	var cargo SpecialCargo
	for number, record := range discharge {
		if record.OperatorCode != "MSC" {
			continue
		}
		if record.IMO == 1 {
			cargo.DischargeDG = append(cargo.DischargeDG, number)
		}
		if record.OOGCargo == 1 {
			cargo.DischargeOOG = append(cargo.DischargeOOG, number)
		}
	}
	for number, record := range load {
		if record.OperatorCode != "MSC" {
			continue
		}
		if record.IMO == 1 {
			cargo.LoadDG = append(cargo.LoadDG, number)
		}
		if record.OOGCargo == 1 {
			cargo.LoadOOG = append(cargo.LoadOOG, number)
		}
	}
	for _, list := range [][]types.ContainerNumber{cargo.DischargeDG, cargo.DischargeOOG, cargo.LoadDG, cargo.LoadOOG} {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	}
	return cargo
}

// HasPartnerCargo reports whether any container in either registry carries
// a non-MSC operator code.
func HasPartnerCargo(discharge, load types.Registry) bool {
	for _, registry := range []types.Registry{discharge, load} {
		for _, record := range registry {
			if record.OperatorCode != "" && record.OperatorCode != "MSC" {
				return true
			}
		}
	}
	return false
}

// HasForeignAccount reports whether any container in either registry has
// been assigned an account code other than "MSC".
func HasForeignAccount(discharge, load types.Registry) bool {
	for _, registry := range []types.Registry{discharge, load} {
		for _, record := range registry {
			if record.Account != "" && record.Account != "MSC" {
				return true
			}
		}
	}
	return false
}
