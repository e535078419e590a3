package gatecode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestGolden pins the canonical and JSON forms of a set of fixture documents.
// For every testdata/golden/<name>.code there is a <name>.json holding the
// exact compact JSON the codec must emit. The fixtures double as a
// cross-implementation conformance suite.
func TestGolden(t *testing.T) {
	goldenDir := filepath.Join("testdata", "golden")

	entries, err := os.ReadDir(goldenDir)
	if err != nil {
		t.Fatalf("failed to read golden dir: %v", err)
	}

	ran := 0
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".code") {
			continue
		}
		ran++
		name := strings.TrimSuffix(entry.Name(), ".code")
		t.Run(name, func(t *testing.T) {
			codeBytes, err := os.ReadFile(filepath.Join(goldenDir, name+".code"))
			if err != nil {
				t.Fatalf("failed to read code fixture: %v", err)
			}
			jsonBytes, err := os.ReadFile(filepath.Join(goldenDir, name+".json"))
			if err != nil {
				t.Fatalf("failed to read json fixture: %v", err)
			}
			code := strings.TrimSpace(string(codeBytes))
			wantJSON := strings.TrimSpace(string(jsonBytes))

			d, err := Parse(code)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			// Canonical string round trip, byte for byte.
			if got := Serialize(d); got != code {
				t.Errorf("serialize mismatch\n  got:  %s\n  want: %s", got, code)
			}

			// JSON emission matches the pinned tree exactly.
			gotJSON, err := ToJSON(d)
			if err != nil {
				t.Fatalf("ToJSON failed: %v", err)
			}
			if string(gotJSON) != wantJSON {
				t.Errorf("json mismatch\n  got:  %s\n  want: %s", gotJSON, wantJSON)
			}

			// The pinned tree decodes back to the same document.
			back, err := FromJSON([]byte(wantJSON))
			if err != nil {
				t.Fatalf("FromJSON failed: %v", err)
			}
			if !d.Equal(back) {
				t.Errorf("document mismatch after JSON round trip\n  %s", Serialize(back))
			}

			// Determinism: a second pass changes nothing.
			if again := Serialize(back); again != code {
				t.Errorf("non-deterministic output\n  first:  %s\n  second: %s", code, again)
			}
		})
	}
	if ran == 0 {
		t.Fatal("no golden fixtures found")
	}
}
