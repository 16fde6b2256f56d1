package renderer

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/shopping"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden .md files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func sampleLedger(t *testing.T) *shopping.Ledger {
	t.Helper()
	l := shopping.NewLedger()
	if err := l.UpsertString("milk", "2", "1.15"); err != nil {
		t.Fatal(err)
	}
	if err := l.UpsertString("bread|white", "1", "2.5"); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestGolden(t *testing.T) {
	ten := shopping.Percent(10)
	single := shopping.NewLedger()
	single.Put("A", shopping.LineItem{Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")})

	testCases := []struct {
		name       string
		goldenFile string
		render     func() string
	}{
		{
			name:       "list",
			goldenFile: "testdata/list.md",
			render:     func() string { return ListMarkdown(sampleLedger(t), "USD") },
		},
		{
			name:       "empty list",
			goldenFile: "testdata/list_empty.md",
			render:     func() string { return ListMarkdown(shopping.NewLedger(), "USD") },
		},
		{
			name:       "total",
			goldenFile: "testdata/total.md",
			render: func() string {
				return TotalMarkdown(shopping.NewBreakdown(single, ten, ten), ten, ten, "USD")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.render()
			wantBytes, err := os.ReadFile(tc.goldenFile)
			if err != nil {
				t.Fatalf("failed to read golden file %q: %v", tc.goldenFile, err)
			}
			want := string(wantBytes)
			if got == want {
				return
			}
			if *fixGolden {
				if err := os.WriteFile(filepath.FromSlash(tc.goldenFile), []byte(got), 0644); err != nil {
					t.Fatalf("failed to update golden file: %v", err)
				}
				t.Logf("updated golden file %q", tc.goldenFile)
				return
			}
			t.Errorf("%s mismatch:\n%s", tc.name, createDiff(want, got))
		})
	}
}

// TestListIsATable checks that the rendered list parses as a markdown table
// with one row per item, even with names that contain markdown syntax.
func TestListIsATable(t *testing.T) {
	l := sampleLedger(t)
	if err := l.UpsertString("a | b | c", "3", "1"); err != nil {
		t.Fatal(err)
	}
	source := []byte(ListMarkdown(l, "EUR"))

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	var rows, cells int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case east.KindTableRow:
			rows++
		case east.KindTableHeader:
			cells = n.ChildCount()
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if rows != l.Len() {
		t.Errorf("got %d table rows, want %d", rows, l.Len())
	}
	if cells != 4 {
		t.Errorf("got %d columns, want 4", cells)
	}
}

func TestCount(t *testing.T) {
	for n, want := range map[int]string{0: "0 items", 1: "1 item", 12: "12 items"} {
		if got := Count(n); got != want {
			t.Errorf("Count(%d) = %q, want %q", n, got, want)
		}
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}
