package absorb_test

import (
	"testing"

	"alchemia/internal/absorb"
	"alchemia/internal/organ"
)

func TestDefaultTablesVariants(t *testing.T) {
	tables := absorb.DefaultTables()
	if tables.Variants["hokage-chess--believe-it!"] != "hokage-chess" {
		t.Fatalf("unexpected variant mapping: %q", tables.Variants["hokage-chess--believe-it!"])
	}
	if tables.Variants["portfolio"] != "showcase-portfolio" {
		t.Fatalf("unexpected variant mapping: %q", tables.Variants["portfolio"])
	}
}

func TestDefaultTablesStagingCoversFourOrgans(t *testing.T) {
	tables := absorb.DefaultTables()
	if len(tables.StagingOrgs) != 4 {
		t.Fatalf("expected 4 staging dirs, got %d", len(tables.StagingOrgs))
	}
	for dir, org := range tables.StagingOrgs {
		if _, ok := organ.ForOrg(org); !ok {
			t.Fatalf("staging dir %q routes to unknown org %q", dir, org)
		}
	}
}

func TestDefaultTablesContainerPriority(t *testing.T) {
	tables := absorb.DefaultTables()
	if len(tables.Containers) != 3 {
		t.Fatalf("expected 3 container rules, got %d", len(tables.Containers))
	}
	if tables.Containers[0].Token != "processCONTAINER" {
		t.Fatalf("processCONTAINER must be checked first, got %q", tables.Containers[0].Token)
	}
	for _, container := range tables.Containers {
		if container.Confidence < 0.8 || container.Confidence > 0.85 {
			t.Fatalf("container %q confidence out of band: %v", container.Token, container.Confidence)
		}
	}
}

func TestDefaultLexiconOrgansSorted(t *testing.T) {
	lexicon := absorb.DefaultLexicon()
	organs := lexicon.Organs()
	if len(organs) != 7 {
		t.Fatalf("expected 7 keyword organs, got %d", len(organs))
	}
	for i := 1; i < len(organs); i++ {
		if organs[i-1] >= organs[i] {
			t.Fatalf("organs not sorted: %v", organs)
		}
	}
}
