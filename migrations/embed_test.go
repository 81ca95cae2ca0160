package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func listSQL(t *testing.T, dir string) []string {
	t.Helper()
	sub, err := fs.Sub(GetFS(), dir)
	if err != nil {
		t.Fatalf("missing %s migration set: %v", dir, err)
	}
	entries, err := fs.ReadDir(sub, ".")
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestDriverSetsCarrySameVersions(t *testing.T) {
	sqlite := listSQL(t, "sqlite")
	postgres := listSQL(t, "postgres")

	if len(sqlite) == 0 {
		t.Fatal("no sqlite migrations embedded")
	}
	if len(sqlite) != len(postgres) {
		t.Fatalf("version mismatch: sqlite has %d files, postgres has %d", len(sqlite), len(postgres))
	}
	for i := range sqlite {
		if sqlite[i] != postgres[i] {
			t.Errorf("file %d: sqlite %q vs postgres %q", i, sqlite[i], postgres[i])
		}
	}
}

func TestSchemasUseDriverDialect(t *testing.T) {
	for _, name := range listSQL(t, "postgres") {
		content, err := fs.ReadFile(GetFS(), "postgres/"+name)
		if err != nil {
			t.Fatalf("read postgres/%s: %v", name, err)
		}
		if strings.Contains(string(content), "AUTOINCREMENT") {
			t.Errorf("postgres/%s uses sqlite identity syntax", name)
		}
	}
	for _, name := range listSQL(t, "sqlite") {
		content, err := fs.ReadFile(GetFS(), "sqlite/"+name)
		if err != nil {
			t.Fatalf("read sqlite/%s: %v", name, err)
		}
		if strings.Contains(string(content), "GENERATED BY DEFAULT AS IDENTITY") {
			t.Errorf("sqlite/%s uses postgres identity syntax", name)
		}
	}
}
