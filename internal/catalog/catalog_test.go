package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reportviewer/pkg/models"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("%PDF-1.4"), 0o644))
	}
}

type staticLoader struct {
	table models.LinkTable
	calls int
}

func (l *staticLoader) Load(string) models.LinkTable {
	l.calls++
	return l.table
}

func TestSortNames(t *testing.T) {
	names := []string{"b.pdf", "A.pdf", "a.pdf", "C.pdf"}
	SortNames(names)
	assert.Equal(t, []string{"A.pdf", "a.pdf", "b.pdf", "C.pdf"}, names)
}

func TestLocalScanFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.pdf", "A.pdf", "c.txt", "upper.PDF")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o755))

	got, err := NewLocalScan(dir).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.pdf", "b.pdf"}, got)
}

func TestLocalScanFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	touch(t, other, "target.pdf")
	require.NoError(t, os.Symlink(filepath.Join(other, "target.pdf"), filepath.Join(dir, "linked.pdf")))
	require.NoError(t, os.Symlink(filepath.Join(other, "gone.pdf"), filepath.Join(dir, "dangling.pdf")))

	got, err := NewLocalScan(dir).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"linked.pdf"}, got)
}

func TestLocalScanEmptyDir(t *testing.T) {
	got, err := NewLocalScan(t.TempDir()).Files()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLocalScanMissingDir(t *testing.T) {
	s := NewLocalScan(filepath.Join(t.TempDir(), "absent"))

	_, err := s.Files()
	assert.ErrorIs(t, err, ErrDirNotFound)

	rec, err := s.English("a.pdf")
	require.NoError(t, err)
	assert.False(t, rec.Exists)
}

func TestLocalScanEnglish(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Annual Report.pdf", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0o755))
	s := NewLocalScan(dir)

	tests := []struct {
		name string
		want models.LinkRecord
	}{
		{
			name: "Annual Report.pdf",
			want: models.LinkRecord{
				Exists:      true,
				PreviewURL:  "/pdf/english/Annual%20Report.pdf",
				DownloadURL: "/pdf/english/Annual%20Report.pdf?download=1",
			},
		},
		{name: "notes.txt", want: models.LinkRecord{Exists: true, PreviewURL: "/pdf/english/notes.txt", DownloadURL: "/pdf/english/notes.txt?download=1"}},
		{name: "other.pdf"},
		{name: "folder.pdf"},
		{name: ".."},
		{name: "../" + filepath.Base(dir) + "/notes.txt"},
		{name: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.English(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalScanEnglishStatsOnlyTheNamedFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "report.pdf")
	// search permission without list permission: a lookup by name must not
	// need to read the directory
	require.NoError(t, os.Chmod(dir, 0o311))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	got, err := NewLocalScan(dir).English("report.pdf")
	require.NoError(t, err)
	assert.True(t, got.Exists)
}

func TestTableDrivenFiles(t *testing.T) {
	loader := &staticLoader{table: models.LinkTable{
		"b.pdf":      {Exists: true},
		"A.pdf":      {Exists: true},
		"c.txt":      {Exists: true},
		"hidden.pdf": {Exists: false},
	}}

	got, err := NewTableDriven("english_links.json", loader).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.pdf", "b.pdf"}, got)
}

func TestTableDrivenEmptyTable(t *testing.T) {
	got, err := NewTableDriven("x.json", &staticLoader{table: models.LinkTable{}}).Files()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTableDrivenReloadsEveryCall(t *testing.T) {
	loader := &staticLoader{table: models.LinkTable{"a.pdf": {Exists: true}}}
	s := NewTableDriven("x.json", loader)

	_, _ = s.Files()
	rec, _ := s.English("a.pdf")
	_, _ = s.Files()

	assert.True(t, rec.Exists)

	assert.Equal(t, 3, loader.calls)
}

func TestSourcesAreInterchangeable(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.pdf", "A.pdf", "c.txt")

	sources := map[string]Source{
		"local": NewLocalScan(dir),
		"table": NewTableDriven("x.json", &staticLoader{table: models.LinkTable{
			"b.pdf": {Exists: true}, "A.pdf": {Exists: true}, "c.txt": {Exists: true},
		}}),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			got, err := src.Files()
			require.NoError(t, err)
			assert.Equal(t, []string{"A.pdf", "b.pdf"}, got)
		})
	}
}
