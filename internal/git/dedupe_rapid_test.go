package git

import (
	"testing"

	"pgregory.net/rapid"
)

func genPaths() *rapid.Generator[[]string] {
	elem := rapid.SampledFrom([]string{
		"a.go", "b.go", "c.go", "src/main.go", "src/util.go", "docs/readme.md",
	})
	return rapid.SliceOfN(elem, 0, 40)
}

func TestDedupeFirstSeen_NoDuplicates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := genPaths().Draw(t, "paths")
		out := dedupeFirstSeen(paths)

		seen := make(map[string]struct{})
		for _, p := range out {
			if _, ok := seen[p]; ok {
				t.Fatalf("duplicate %q in %v", p, out)
			}
			seen[p] = struct{}{}
		}
	})
}

func TestDedupeFirstSeen_PreservesFirstSeenOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := genPaths().Draw(t, "paths")
		out := dedupeFirstSeen(paths)

		// Walking the input and keeping first occurrences must reproduce the
		// output exactly.
		var want []string
		seen := make(map[string]struct{})
		for _, p := range paths {
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			want = append(want, p)
		}
		if len(out) != len(want) {
			t.Fatalf("got %v, want %v", out, want)
		}
		for i := range want {
			if out[i] != want[i] {
				t.Fatalf("got %v, want %v", out, want)
			}
		}
	})
}

func TestDedupeFirstSeen_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := genPaths().Draw(t, "paths")
		once := dedupeFirstSeen(paths)
		twice := dedupeFirstSeen(once)
		if len(once) != len(twice) {
			t.Fatalf("dedupe not idempotent: %v vs %v", once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("dedupe not idempotent: %v vs %v", once, twice)
			}
		}
	})
}
