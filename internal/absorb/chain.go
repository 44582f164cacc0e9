package absorb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"alchemia/internal/inventory"
	"alchemia/internal/organ"
	"alchemia/internal/registry"
)

// Statuses persisted on classification results.
const (
	StatusClassified    = "CLASSIFIED"
	StatusPendingReview = "PENDING_REVIEW"
)

// workspaceMarker splits a crawled path into "the workspace" and "the project
// directory inside it": the component after the marker is the top-level
// directory the structural rules match against.
const workspaceMarker = "Workspace"

// Context carries the immutable lookup structures and scan limits shared by
// every rule evaluation. Built once per run; safe for concurrent readers.
type Context struct {
	Registry   *registry.Index
	Tables     Tables
	Lexicon    Lexicon
	Categories []CategoryRule

	MaxScanLines int
	MaxScanBytes int64
	ReadTimeout  time.Duration
}

// NewContext assembles a chain context with the default static tables.
func NewContext(idx *registry.Index) *Context {
	return &Context{
		Registry:     idx,
		Tables:       DefaultTables(),
		Lexicon:      DefaultLexicon(),
		Categories:   DefaultCategories(),
		MaxScanLines: 50,
		MaxScanBytes: 256 * 1024,
		ReadTimeout:  2 * time.Second,
	}
}

// Result is the output of classifying one entry. Exactly one rule produces it.
type Result struct {
	Rule         int         `json:"rule"`
	RuleName     string      `json:"rule_name"`
	Confidence   float64     `json:"confidence"`
	TargetOrgan  organ.Organ `json:"target_organ,omitempty"`
	TargetOrg    string      `json:"target_org,omitempty"`
	TargetRepo   string      `json:"target_repo,omitempty"`
	TargetSubdir string      `json:"target_subdir,omitempty"`
	Reason       string      `json:"reason"`
	NeedsReview  bool        `json:"needs_review"`
	Status       string      `json:"status"`
}

// extSubdirs routes files into the target repo's source-materials tree by
// extension. Anything unlisted lands in theory.
var extSubdirs = map[string]string{
	".md":   "theory",
	".txt":  "theory",
	".py":   "prototypes",
	".js":   "prototypes",
	".jsx":  "prototypes",
	".ts":   "prototypes",
	".tsx":  "prototypes",
	".html": "prototypes",
	".yaml": "specs",
	".yml":  "specs",
	".json": "specs",
	".pdf":  "research",
	".docx": "theory",
	".gdoc": "theory",
}

type ruleFunc func(ctx context.Context, entry *inventory.Entry, cc *Context) *Result

// chain lists the rule evaluators in priority order. The driver takes the
// first non-nil result; rule 7 is the fallthrough.
var chain = []ruleFunc{
	ruleDirectRepo,
	ruleNameVariant,
	ruleStaging,
	ruleContainers,
	ruleManifestCategory,
	ruleContentKeywords,
}

// Classify produces exactly one Result for the entry. The only failure mode
// is ErrInvalidEntry for an entry without a path; every other input resolves,
// at worst to the unresolved rule.
func Classify(ctx context.Context, entry inventory.Entry, cc *Context) (Result, error) {
	if strings.TrimSpace(entry.Path) == "" {
		return Result{}, Wrap(ErrInvalidEntry, "absorb", "classify", "missing path", nil)
	}

	for _, rule := range chain {
		if result := rule(ctx, &entry, cc); result != nil {
			return *result, nil
		}
	}

	return Result{
		Rule:        7,
		RuleName:    "unresolved",
		Confidence:  0.0,
		Reason:      "no classification rule matched",
		NeedsReview: true,
		Status:      StatusPendingReview,
	}, nil
}

// Rule 1: the top-level (or parent) directory name exactly equals a canonical
// registry repo name.
func ruleDirectRepo(_ context.Context, entry *inventory.Entry, cc *Context) *Result {
	for _, dir := range dirCandidates(entry) {
		record, ok := cc.Registry.LookupByName(dir)
		if !ok {
			continue
		}
		return &Result{
			Rule:         1,
			RuleName:     "direct_repo_match",
			Confidence:   1.0,
			TargetOrgan:  record.Organ,
			TargetOrg:    record.Org,
			TargetRepo:   record.Name,
			TargetSubdir: subdirFor(entry.Extension),
			Reason:       fmt.Sprintf("directory %q matches registry repo %q", dir, record.Name),
			Status:       StatusClassified,
		}
	}
	return nil
}

// Rule 2: the directory name appears in the explicit known-discrepancy table
// and resolves to a registry repo.
func ruleNameVariant(_ context.Context, entry *inventory.Entry, cc *Context) *Result {
	for _, dir := range dirCandidates(entry) {
		canonical, ok := cc.Tables.Variants[dir]
		if !ok {
			continue
		}
		record, ok := cc.Registry.LookupByName(canonical)
		if !ok {
			continue
		}
		return &Result{
			Rule:         2,
			RuleName:     "name_variant_match",
			Confidence:   0.95,
			TargetOrgan:  record.Organ,
			TargetOrg:    record.Org,
			TargetRepo:   record.Name,
			TargetSubdir: subdirFor(entry.Extension),
			Reason:       fmt.Sprintf("directory %q is a known variant of registry repo %q", dir, record.Name),
			Status:       StatusClassified,
		}
	}
	return nil
}

// Rule 3: staging-directory pattern (0.9) or known bulk-routing directory
// (0.75). Both leave the repo unresolved pending manual routing.
func ruleStaging(_ context.Context, entry *inventory.Entry, cc *Context) *Result {
	for _, dir := range dirCandidates(entry) {
		if org, ok := cc.Tables.StagingOrgs[dir]; ok {
			target, _ := organ.ForOrg(org)
			return &Result{
				Rule:         3,
				RuleName:     "staging_dir_match",
				Confidence:   0.9,
				TargetOrgan:  target,
				TargetOrg:    org,
				TargetSubdir: subdirFor(entry.Extension),
				Reason:       fmt.Sprintf("directory %q is the staging area for %s", dir, org),
				Status:       StatusClassified,
			}
		}
	}
	for _, dir := range dirCandidates(entry) {
		if bulk, ok := cc.Tables.BulkDirs[dir]; ok {
			return &Result{
				Rule:         3,
				RuleName:     "dir_to_organ",
				Confidence:   0.75,
				TargetOrgan:  bulk.Organ,
				TargetOrg:    bulk.Org,
				TargetSubdir: subdirFor(entry.Extension),
				Reason:       fmt.Sprintf("directory %q bulk-routes to %s (%s)", dir, bulk.Organ, bulk.Reason),
				Status:       StatusClassified,
			}
		}
	}
	return nil
}

// Rule 4: the path passes through a special intake container.
func ruleContainers(_ context.Context, entry *inventory.Entry, cc *Context) *Result {
	for _, container := range cc.Tables.Containers {
		if !strings.Contains(entry.RelativePath, container.Token) && !strings.Contains(entry.Path, container.Token) {
			continue
		}
		subdir := container.Subdir
		if subdir == "" {
			subdir = subdirFor(entry.Extension)
		}
		return &Result{
			Rule:         4,
			RuleName:     container.Name,
			Confidence:   container.Confidence,
			TargetOrgan:  container.Organ,
			TargetOrg:    container.Org,
			TargetRepo:   container.Repo,
			TargetSubdir: subdir,
			Reason:       fmt.Sprintf("path contains special container %q", container.Token),
			Status:       StatusClassified,
		}
	}
	return nil
}

// Rule 5: the manifest category routed through the fixed category table.
func ruleManifestCategory(_ context.Context, entry *inventory.Entry, cc *Context) *Result {
	category := strings.ToLower(strings.TrimSpace(entry.ManifestCategory()))
	if category == "" {
		return nil
	}
	for _, rule := range cc.Categories {
		if !strings.Contains(category, rule.Fragment) {
			continue
		}
		return &Result{
			Rule:         5,
			RuleName:     "manifest_category",
			Confidence:   0.8,
			TargetOrgan:  rule.Organ,
			TargetOrg:    rule.Organ.Org(),
			TargetSubdir: subdirFor(entry.Extension),
			Reason:       fmt.Sprintf("manifest category %q maps to %s", entry.ManifestCategory(), rule.Organ),
			Status:       StatusClassified,
		}
	}
	return nil
}

// Rule 6: keyword scan over the first lines of text-readable files. An organ
// needs at least 2 distinct keyword hits; confidence is 0.5 + 0.1 per hit,
// capped at 0.85. Equal counts resolve to the lexically smallest organ.
func ruleContentKeywords(ctx context.Context, entry *inventory.Entry, cc *Context) *Result {
	if _, ok := textExtensions[entry.Extension]; !ok {
		return nil
	}

	readCtx, cancel := context.WithTimeout(ctx, cc.ReadTimeout)
	defer cancel()
	content, ok := readFirstLines(readCtx, entry.Path, cc.MaxScanLines, cc.MaxScanBytes)
	if !ok {
		return nil
	}

	var bestOrgan organ.Organ
	bestScore := 0
	for _, o := range cc.Lexicon.Organs() {
		score := 0
		for _, keyword := range cc.Lexicon[o] {
			if strings.Contains(content, keyword) {
				score++
			}
		}
		// Strictly greater keeps the lexically smallest organ on ties.
		if score > bestScore {
			bestScore = score
			bestOrgan = o
		}
	}

	if bestScore < 2 {
		return nil
	}

	confidence := 0.5 + float64(bestScore)*0.1
	if confidence > 0.85 {
		confidence = 0.85
	}
	return &Result{
		Rule:         6,
		RuleName:     "content_keyword",
		Confidence:   confidence,
		TargetOrgan:  bestOrgan,
		TargetOrg:    bestOrgan.Org(),
		TargetSubdir: subdirFor(entry.Extension),
		Reason:       fmt.Sprintf("%d distinct %s keywords in first %d lines", bestScore, bestOrgan, cc.MaxScanLines),
		Status:       StatusClassified,
	}
}

// dirCandidates returns the directory names the structural rules match
// against: the component following the workspace marker first, then the
// entry's immediate parent. Duplicates are collapsed.
func dirCandidates(entry *inventory.Entry) []string {
	candidates := make([]string, 0, 2)
	if top := topLevelDir(entry.Path); top != "" {
		candidates = append(candidates, top)
	}
	if entry.ParentDir != "" && (len(candidates) == 0 || candidates[0] != entry.ParentDir) {
		candidates = append(candidates, entry.ParentDir)
	}
	return candidates
}

func topLevelDir(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == workspaceMarker && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func subdirFor(ext string) string {
	subdir, ok := extSubdirs[ext]
	if !ok {
		subdir = "theory"
	}
	return "docs/source-materials/" + subdir + "/"
}
