package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"alchemia/internal/absorb"
	"alchemia/internal/config"
	"alchemia/internal/inventory"
	"alchemia/internal/logging"
	"alchemia/internal/mapping"
	"alchemia/internal/registry"
)

// runIntakeStage crawls the configured source directories, enriches and
// deduplicates the entries, and writes the inventory snapshot.
func runIntakeStage(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string) (*inventory.Snapshot, error) {
	crawler := inventory.NewCrawler(logger)
	entries, err := crawler.Crawl(ctx, cfg.Paths.SourceDirs)
	if err != nil {
		return nil, fmt.Errorf("crawl source directories: %w", err)
	}

	if cfg.Manifest.CSVPath != "" {
		manifest, err := inventory.LoadManifest(cfg.Manifest.CSVPath)
		if err != nil {
			logger.Warn("manifest unavailable, skipping enrichment",
				logging.String("path", cfg.Manifest.CSVPath), logging.Error(err))
		} else {
			matched := inventory.EnrichFromManifest(entries, manifest)
			logger.Info("manifest enrichment complete",
				logging.Int("rows", len(manifest)), logging.Int("matched", matched))
		}
	}

	sidecars := inventory.EnrichFromSidecars(entries)
	duplicates := inventory.MarkDuplicates(entries)

	snap := inventory.NewSnapshot(runID, cfg.Paths.SourceDirs, entries)
	if err := inventory.WriteSnapshot(cfg.Paths.InventoryFile, snap); err != nil {
		return nil, err
	}

	logger.Info("inventory snapshot written",
		logging.String(logging.FieldStage, "intake"),
		logging.String(logging.FieldRunID, runID),
		logging.String("path", cfg.Paths.InventoryFile),
		logging.Int("files", snap.TotalFiles),
		logging.Int("sidecars", sidecars),
		logging.Int("duplicates", duplicates))
	return snap, nil
}

// runAbsorbStage classifies a snapshot's entries and writes the mapping
// document for the downstream deployment planner.
func runAbsorbStage(ctx context.Context, cfg *config.Config, logger *slog.Logger, runID string, snap *inventory.Snapshot) (*mapping.Document, error) {
	idx, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		return nil, err
	}

	cc := chainContext(idx, cfg)
	outcomes, stats, err := absorb.Run(ctx, snap.Entries, cc, absorb.Options{Workers: cfg.Absorb.Workers}, logger)
	if err != nil {
		return nil, err
	}

	doc := mapping.New(runID, cfg.Paths.InventoryFile, outcomes, stats)
	count, err := mapping.Write(cfg.Paths.MappingFile, doc)
	if err != nil {
		return nil, err
	}

	logger.Info("mapping written",
		logging.String(logging.FieldStage, "absorb"),
		logging.String(logging.FieldRunID, runID),
		logging.String("path", cfg.Paths.MappingFile),
		logging.Int("records", count))
	return doc, nil
}

func chainContext(idx *registry.Index, cfg *config.Config) *absorb.Context {
	cc := absorb.NewContext(idx)
	if cfg.Absorb.MaxScanLines > 0 {
		cc.MaxScanLines = cfg.Absorb.MaxScanLines
	}
	if cfg.Absorb.MaxScanBytes > 0 {
		cc.MaxScanBytes = cfg.Absorb.MaxScanBytes
	}
	if cfg.Absorb.ReadTimeoutSeconds > 0 {
		cc.ReadTimeout = time.Duration(cfg.Absorb.ReadTimeoutSeconds) * time.Second
	}
	return cc
}
