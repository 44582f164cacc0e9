package absorb

import (
	"sort"

	"alchemia/internal/organ"
)

// Lexicon holds the per-organ keyword sets driving the content-keyword rule.
type Lexicon map[organ.Organ][]string

// Organs returns the lexicon's organs in lexical identifier order. The order
// is the tie-break for equal keyword counts, so it must be deterministic.
func (l Lexicon) Organs() []organ.Organ {
	out := make([]organ.Organ, 0, len(l))
	for o := range l {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultLexicon returns the curated domain keywords per organ.
func DefaultLexicon() Lexicon {
	return Lexicon{
		organ.OrganI: {
			"epistemology", "recursive", "ontology", "ontological", "noumenon",
			"phenomenology", "symbolic", "recursion", "axiom", "morphe",
			"dialectic", "teleology", "hermeneutic", "formal logic",
		},
		organ.OrganII: {
			"generative art", "performance", "experiential", "dromenon",
			"ritual", "aesthetic", "creative coding", "visual art",
			"composition", "soundscape", "immersive", "mavs", "olevm",
		},
		organ.OrganIII: {
			"saas", "b2b", "b2c", "product", "revenue", "pricing",
			"customer", "subscription", "commerce", "marketplace",
			"startup", "business model", "monetization",
		},
		organ.OrganIV: {
			"orchestration", "governance", "routing", "workflow",
			"ci/cd", "pipeline", "automation", "dispatch", "agent",
		},
		organ.OrganV: {
			"essay", "blog", "public process", "building in public",
			"writing", "publication", "meta-commentary",
		},
		organ.OrganVI: {
			"community", "salon", "reading group", "discussion",
			"forum", "collective", "gathering",
		},
		organ.OrganVII: {
			"marketing", "posse", "distribution", "announcement",
			"social media", "newsletter", "outreach",
		},
	}
}

// CategoryRule maps a manifest category fragment to an organ. Rules are
// evaluated in slice order so matching stays deterministic.
type CategoryRule struct {
	Fragment string
	Organ    organ.Organ
}

// DefaultCategories returns the manifest category routing table.
func DefaultCategories() []CategoryRule {
	return []CategoryRule{
		{Fragment: "strategic & governance", Organ: organ.OrganIV},
		{Fragment: "technical specifications", Organ: organ.OrganI},
		{Fragment: "creative & artistic", Organ: organ.OrganII},
		{Fragment: "pedagogical & educational", Organ: organ.OrganVI},
		{Fragment: "commercial & product", Organ: organ.OrganIII},
		{Fragment: "public process & essays", Organ: organ.OrganV},
		{Fragment: "marketing & distribution", Organ: organ.OrganVII},
		{Fragment: "meta-system & infrastructure", Organ: organ.OrganIV},
	}
}
