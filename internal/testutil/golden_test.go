package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod under %s: %v", root, err)
	}
}

func TestAssertGoldenMatchesCommittedFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(RepoRoot(t), "testdata", "states_view.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	AssertGolden(t, "states_view.golden", string(data))
}
