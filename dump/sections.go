package dump

// Storage sections of the SupplyChain contract. See contracts/supplychain
// package docs for the storage model.
const (
	SectionSettings             = "settings"
	SectionCompany              = "company"
	SectionProductions          = "productions"
	SectionPrerequisiteProducts = "prerequisites"
	SectionRecipe               = "recipe"
	SectionUpstream             = "upstream"
	SectionDownstream           = "downstream"
	SectionOutgoingContracts    = "outContracts"
	SectionIncomingContracts    = "inContracts"
	SectionOutgoingRequests     = "outRequests"
	SectionIncomingRequests     = "inRequests"
	SectionProduct              = "product"
	SectionProductName          = "productName"
	SectionSupply               = "supply"
	SectionPrerequisiteSupply   = "prerequisiteSupply"
	SectionPastSupply           = "pastSupply"
	SectionLineage              = "lineage"
	SectionUnknown              = "unknown"
)

var prefixSections = map[byte]string{
	'c': SectionCompany,
	'm': SectionProductions,
	'e': SectionPrerequisiteProducts,
	'r': SectionRecipe,
	'u': SectionUpstream,
	'd': SectionDownstream,
	'o': SectionOutgoingContracts,
	'i': SectionIncomingContracts,
	'q': SectionOutgoingRequests,
	'Q': SectionIncomingRequests,
	'p': SectionProduct,
	'n': SectionProductName,
	's': SectionSupply,
	'S': SectionPrerequisiteSupply,
	'x': SectionPastSupply,
	'l': SectionLineage,
}

// Section returns storage section of the SupplyChain contract storage key.
func Section(key []byte) string {
	switch string(key) {
	case "admin", "heads", "ConversionMode":
		return SectionSettings
	}

	if len(key) > 0 {
		if s, ok := prefixSections[key[0]]; ok {
			return s
		}
	}

	return SectionUnknown
}
