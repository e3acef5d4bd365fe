package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const spaced = `5 3 _ _ 7 _ _ _ _
6 _ _ 1 9 5 _ _ _
_ 9 8 _ _ _ _ 6 _
8 _ _ _ 6 _ _ _ 3
4 _ _ 8 _ 3 _ _ 1
7 _ _ _ 2 _ _ _ 6
_ 6 _ _ _ _ 2 8 _
_ _ _ 4 1 9 _ _ 5
_ _ _ _ 8 _ _ 7 9
`

func TestLoadSpacedFormat(t *testing.T) {
	b, err := NewFS().Load(context.Background(), write(t, spaced))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Values[0][0] != 5 || b.Values[0][4] != 7 || b.Values[8][8] != 9 {
		t.Fatalf("wrong values:\n%s", b.String())
	}
	if !b.Fixed[0][0] || b.Fixed[0][2] {
		t.Fatal("Fixed flags should mirror the givens")
	}
	if got := b.Givens(); got != 30 {
		t.Fatalf("givens = %d, want 30", got)
	}
}

func TestLoadCondensedFormat(t *testing.T) {
	condensed := strings.NewReplacer(" ", "", "_", ".").Replace(spaced)
	b, err := NewFS().Load(context.Background(), write(t, condensed))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Values[1][3] != 1 || b.Values[7][5] != 9 {
		t.Fatalf("wrong values:\n%s", b.String())
	}
}

func TestLoadSkipsCommentsAndShortLines(t *testing.T) {
	content := "# generated for a test\n\n" + spaced
	if _, err := NewFS().Load(context.Background(), write(t, content)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"bad token", strings.Replace(spaced, "5 3", "5 x", 1), "invalid cell"},
		{"short row", strings.Replace(spaced, "5 3 _ _ 7 _ _ _ _", "5 3 _ _ 7 _ _ _", 1), "expected 9 cells"},
		{"too few rows", strings.Join(strings.SplitN(spaced, "\n", 5)[:4], "\n"), "expected 9 puzzle rows"},
		{"too many rows", spaced + "1 2 3 4 5 6 7 8 9\n", "more than 9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFS().Load(context.Background(), write(t, tc.content))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewFS().Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFS()
	in, err := fs.Load(ctx, write(t, spaced))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := fs.Save(ctx, path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := fs.Load(ctx, path)
	if err != nil {
		t.Fatalf("re-Load failed: %v", err)
	}
	if out.Values != in.Values {
		t.Fatal("round trip changed the grid")
	}
}
