// Package inventory implements the intake stage: crawling source directories,
// fingerprinting every file, marking duplicates, enriching entries from the
// CSV manifest and .meta.json sidecars, and persisting the resulting snapshot
// the classifier consumes.
package inventory
