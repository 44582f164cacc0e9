// Package organ defines the eight fixed organizational buckets material is
// routed to, along with their canonical organization names.
package organ

import (
	"fmt"
	"sort"
)

// Organ identifies one of the eight fixed top-level routing categories.
type Organ string

const (
	OrganI   Organ = "ORGAN-I"
	OrganII  Organ = "ORGAN-II"
	OrganIII Organ = "ORGAN-III"
	OrganIV  Organ = "ORGAN-IV"
	OrganV   Organ = "ORGAN-V"
	OrganVI  Organ = "ORGAN-VI"
	OrganVII Organ = "ORGAN-VII"
	Meta     Organ = "META"
)

type info struct {
	org     string
	display string
	domain  string
}

var organs = map[Organ]info{
	OrganI:   {org: "organvm-i-theoria", display: "Theoria", domain: "Theory, epistemology, recursion, ontology"},
	OrganII:  {org: "organvm-ii-poiesis", display: "Poiesis", domain: "Art, generative, performance, experiential"},
	OrganIII: {org: "organvm-iii-ergon", display: "Ergon", domain: "Commerce, SaaS, B2B, B2C products"},
	OrganIV:  {org: "organvm-iv-taxis", display: "Taxis", domain: "Orchestration, governance, routing"},
	OrganV:   {org: "organvm-v-logos", display: "Logos", domain: "Public process, essays, building in public"},
	OrganVI:  {org: "organvm-vi-koinonia", display: "Koinonia", domain: "Community, salons, reading groups"},
	OrganVII: {org: "organvm-vii-kerygma", display: "Kerygma", domain: "Marketing, POSSE distribution"},
	Meta:     {org: "meta-organvm", display: "Meta-Organvm", domain: "Umbrella governance, system-of-systems"},
}

// Parse converts a raw identifier into an Organ.
func Parse(value string) (Organ, error) {
	o := Organ(value)
	if _, ok := organs[o]; !ok {
		return "", fmt.Errorf("unknown organ %q", value)
	}
	return o, nil
}

// String returns the canonical identifier, e.g. "ORGAN-IV".
func (o Organ) String() string { return string(o) }

// Valid reports whether the organ is one of the eight known values.
func (o Organ) Valid() bool {
	_, ok := organs[o]
	return ok
}

// Org returns the canonical organization name for the organ,
// e.g. "organvm-iv-taxis" for ORGAN-IV.
func (o Organ) Org() string { return organs[o].org }

// DisplayName returns the human-readable name, e.g. "Taxis".
func (o Organ) DisplayName() string { return organs[o].display }

// Domain returns a one-line description of what the organ covers.
func (o Organ) Domain() string { return organs[o].domain }

// ForOrg resolves a canonical organization name back to its organ.
func ForOrg(org string) (Organ, bool) {
	for o, meta := range organs {
		if meta.org == org {
			return o, true
		}
	}
	return "", false
}

// All returns every organ in lexical identifier order. The ordering is
// load-bearing: keyword-scan ties resolve to the lexically smallest organ.
func All() []Organ {
	out := make([]Organ, 0, len(organs))
	for o := range organs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
