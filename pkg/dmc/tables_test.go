package dmc

import (
	"testing"

	"github.com/chazu/dualmesh/pkg/gentables"
)

// The static tables are generated code; these tests pin them to the
// generator so a stale tables.go fails instead of silently drifting.

func TestDualPointsListMatchesGenerator(t *testing.T) {
	if dualPointsList != gentables.DualPointTable() {
		t.Error("dualPointsList differs from generator output; rerun go generate")
	}
}

func TestProblematicConfigsMatchesGenerator(t *testing.T) {
	if problematicConfigs != gentables.ProblematicConfigs() {
		t.Error("problematicConfigs differs from generator output; rerun go generate")
	}
}
