package absorb

import "alchemia/internal/organ"

// BulkTarget routes a known non-repo directory to an organ without naming a
// repository.
type BulkTarget struct {
	Organ  organ.Organ
	Org    string
	Reason string
}

// ContainerRule routes paths passing through a special intake container.
// Rules are evaluated in slice order; the first token found in the path wins.
type ContainerRule struct {
	Token      string
	Name       string
	Organ      organ.Organ
	Org        string
	Repo       string
	Confidence float64
	Subdir     string
}

// Tables bundles the static alias and routing lookups consumed by the chain.
// Constructed once via DefaultTables and treated as immutable.
type Tables struct {
	// Variants maps stylized or historical directory names to canonical
	// registry repo names.
	Variants map[string]string
	// StagingOrgs maps ORG-{N}-*-staging directory names to their target
	// organization.
	StagingOrgs map[string]string
	// BulkDirs maps known non-repo directories to organ-level routing.
	BulkDirs map[string]BulkTarget
	// Containers lists the special intake container rules in priority order.
	Containers []ContainerRule
}

// DefaultTables returns the known-discrepancy tables. The contents are a
// curated list of real workspace quirks, not a heuristic.
func DefaultTables() Tables {
	return Tables{
		Variants: map[string]string{
			"hokage-chess--believe-it!":      "hokage-chess",
			"knowledge-base":                 "my-knowledge-base",
			"your--fit-tailored":             "your-fit-tailored",
			"auto-rev-epistemic-engine_spec": "auto-revision-epistemic-engine",
			"metasystem-core":                "metasystem-master",
			"shared-rememberance-gateway":    "shared-remembrance-gateway",
			"portfolio":                      "showcase-portfolio",
		},
		StagingOrgs: map[string]string{
			"ORG-IV-orchestration-staging":  organ.OrganIV.Org(),
			"ORG-V-public-process-staging":  organ.OrganV.Org(),
			"ORG-VI-community-staging":      organ.OrganVI.Org(),
			"ORG-VII-marketing-staging":     organ.OrganVII.Org(),
		},
		BulkDirs: map[string]BulkTarget{
			"OS-me":                {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "personal OS/meta-system workspace"},
			"omni-dromenon-machina": {Organ: organ.OrganII, Org: organ.OrganII.Org(), Reason: "performance engine not in registry"},
			"omni-dromenon-machina.BACKUP-20260207": {Organ: organ.OrganII, Org: organ.OrganII.Org(), Reason: "backup of performance engine"},
			"JST_":                   {Organ: organ.OrganVII, Org: organ.OrganVII.Org(), Reason: "social media/marketing content"},
			"4444J99":                {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "personal account workspace"},
			"4444JPP":                {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "personal account workspace"},
			"organvm-pactvm":         {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "planning workspace"},
			"mcp-servers":            {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "MCP server configs"},
			"cloudbase-mcp":          {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "cloud MCP tooling"},
			"src":                    {Organ: organ.OrganI, Org: organ.OrganI.Org(), Reason: "loose source files, theory default"},
			"self-patent-fulfillment": {Organ: organ.OrganI, Org: organ.OrganI.Org(), Reason: "self-patent concept"},
			"Projects":               {Organ: organ.OrganIV, Org: organ.OrganIV.Org(), Reason: "general projects folder"},
		},
		Containers: []ContainerRule{
			{
				Token:      "processCONTAINER",
				Name:       "process_container",
				Organ:      organ.OrganI,
				Org:        organ.OrganI.Org(),
				Repo:       "recursive-engine--generative-entity",
				Confidence: 0.85,
				Subdir:     "docs/source-materials/specs/",
			},
			{
				Token:      "inSORT",
				Name:       "insort_routing",
				Organ:      organ.OrganI,
				Org:        organ.OrganI.Org(),
				Repo:       "recursive-engine--generative-entity",
				Confidence: 0.8,
				Subdir:     "docs/source-materials/specs/",
			},
			{
				Token:      "MET4",
				Name:       "met4_routing",
				Organ:      organ.OrganI,
				Org:        organ.OrganI.Org(),
				Confidence: 0.8,
			},
		},
	}
}
