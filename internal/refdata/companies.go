package refdata

import (
	"math/rand"
	"strings"
)

// Curated B2B SaaS company names, mixed real-sounding patterns. Consulted
// by the organization generator; the corpus is static per build.
var CompanyNames = []string{
	"Acme Corporation",
	"TechFlow Solutions",
	"CloudSync Inc",
	"DataVault Systems",
	"SecureNet Technologies",
	"InnovateLabs",
	"ScaleUp Software",
	"EnterpriseWorks",
	"NextGen Platforms",
	"AgileSolutions",
	"Streamline Analytics",
	"Precision Metrics",
	"Velocity Dynamics",
	"Catalyst Systems",
	"Nexus Intelligence",
	"Quantum Solutions",
	"Apex Technologies",
	"Summit Software",
	"Horizon Platforms",
	"Vertex Systems",
	"SynergyWorks",
	"Momentum Labs",
	"Pinnacle Software",
	"Elevate Technologies",
	"Ascend Systems",
	"Zenith Platforms",
	"Fusion Solutions",
	"Core Technologies",
	"Prime Systems",
	"Elite Software",
}

var domainTLDs = []string{"com", "io", "co", "tech"}

var domainAbbreviations = [][2]string{
	{"technologies", "tech"},
	{"systems", "sys"},
	{"solutions", "sol"},
	{"software", "soft"},
	{"platforms", "plat"},
}

var legalSuffixes = map[string]struct{}{
	"inc": {}, "corp": {}, "corporation": {}, "ltd": {}, "llc": {},
}

// CompanyDomain derives an email domain from a company name: lowercase,
// legal suffixes dropped, long words abbreviated, TLD drawn from the
// common set.
func CompanyDomain(name string, r *rand.Rand) string {
	var parts []string
	for _, word := range strings.Fields(strings.ToLower(name)) {
		if _, legal := legalSuffixes[word]; legal {
			continue
		}
		for _, abbr := range domainAbbreviations {
			if word == abbr[0] {
				word = abbr[1]
				break
			}
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, "") + "." + domainTLDs[r.Intn(len(domainTLDs))]
}
