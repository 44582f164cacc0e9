// Package absorb implements the classification stage: a seven-rule,
// confidence-ranked decision chain that assigns every inventory entry to a
// target organ, organization, and (where resolvable) repository.
//
// The chain is a pure function of the entry and an immutable Context holding
// the registry index, the alias/variant tables, and the keyword lexicon.
// Rules run in strict priority order and the first match wins; entries no
// rule can place resolve to rule 7 (unresolved, flagged for review) so the
// chain is total over valid entries.
package absorb
