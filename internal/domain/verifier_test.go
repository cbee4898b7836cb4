package domain

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modxml.dev/pkg/modxml/internal/adapter"
	m "modxml.dev/pkg/modxml/internal/model"
	"modxml.dev/pkg/modxml/internal/xmltree"
)

type fixedComparator struct {
	report m.DiffReport
}

func (c fixedComparator) Compare(_, _ *xmltree.Document) m.DiffReport {
	return c.report
}

func (c fixedComparator) CompareBytes(_, _ []byte) (m.DiffReport, error) {
	return c.report, nil
}

func writeDoc(t *testing.T, dir, name, content string) m.File {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.File{FullPath: m.Path(path), ShortPath: m.Path(name)}
}

func copySample(t *testing.T, dir, sample, name string) m.File {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("models", "testdata", sample))
	require.NoError(t, err)

	return writeDoc(t, dir, name, string(data))
}

func TestVerifier_Verify(t *testing.T) {
	dir := t.TempDir()
	fs := adapter.NewLocalSourceFSAdapter()

	tests := []struct {
		name       string
		file       m.File
		options    VerifierOptions
		wantStatus m.FileStatus
		wantModel  string
		wantError  string
	}{
		{
			name:       "sample passes",
			file:       copySample(t, dir, "banner_icons.xml", "banner_icons.xml"),
			wantStatus: m.Passed,
			wantModel:  "BannerIcons",
		},
		{
			name:       "malformed document",
			file:       writeDoc(t, dir, "broken.xml", "<base><a></base>"),
			wantStatus: m.ParseFailed,
			wantError:  "broken.xml",
		},
		{
			name:       "unknown model",
			file:       writeDoc(t, dir, "unknown.xml", `<inventory type="items"/>`),
			wantStatus: m.ModelMismatch,
			wantError:  "root <inventory>",
		},
		{
			name: "invalid typed value",
			file: writeDoc(t, dir, "physics_materials.xml",
				`<base type="physics_materials"><physics_materials><physics_material id="x" flammable="maybe"/></physics_materials></base>`),
			wantStatus: m.Errored,
			wantModel:  "PhysicsMaterials",
			wantError:  "flammable",
		},
		{
			name: "annotated wrapper before plain wrapper",
			file: writeDoc(t, dir, "std_annotated.xml",
				`<base type="string"><strings note="x"><string id="a" text="1"/></strings><strings><string id="b" text="2"/></strings></base>`),
			wantStatus: m.Passed,
			wantModel:  "LanguageStrings",
		},
		{
			name: "unmapped content in strict mode",
			file: writeDoc(t, dir, "module_strings.xml",
				`<base type="string"><strings><string id="a" text="b" /></strings><unknown /></base>`),
			options:    VerifierOptions{Strict: true},
			wantStatus: m.Errored,
			wantModel:  "LanguageStrings",
			wantError:  "/base/unknown[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewVerifier(fs, nil, tt.options).Verify(context.Background(), tt.file)

			assert.Equal(t, tt.wantStatus, result.Status, result.Error)
			assert.Equal(t, tt.wantModel, result.Model)

			if tt.wantError == "" {
				assert.Empty(t, result.Error)
				assert.True(t, result.Report.IsStructurallyEqual())
				assert.Empty(t, result.Diff)
			} else {
				assert.Contains(t, result.Error, tt.wantError)
			}
		})
	}
}

func TestVerifier_PreservesUnmappedContent(t *testing.T) {
	dir := t.TempDir()
	file := writeDoc(t, dir, "module_strings.xml",
		`<base type="string"><strings><string id="a" text="b" /></strings><unknown flag="1" /></base>`)

	result := NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).Verify(context.Background(), file)

	assert.Equal(t, m.Passed, result.Status, result.Error)
	assert.Equal(t, []string{"/base/unknown[0]"}, result.Unmapped)
}

func TestVerifier_LargeFile(t *testing.T) {
	dir := t.TempDir()
	file := copySample(t, dir, "combat_parameters.xml", "combat_parameters.xml")

	result := NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{FileSizeThreshold: 16}).
		Verify(context.Background(), file)

	assert.Equal(t, m.Passed, result.Status, result.Error)
	assert.True(t, result.Large)
	assert.Positive(t, result.File.Size)
}

func TestVerifier_FailedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := copySample(t, dir, "banner_icons.xml", "banner_icons.xml")

	report := m.DiffReport{TextDifferences: []string{"/base: A text='x', B text='y'"}}
	result := NewVerifier(adapter.NewLocalSourceFSAdapter(), fixedComparator{report: report}, VerifierOptions{}).
		Verify(context.Background(), file)

	assert.Equal(t, m.Failed, result.Status)
	assert.Equal(t, report, result.Report)
	assert.Empty(t, result.Error)
}

func TestVerifier_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	file := copySample(t, dir, "banner_icons.xml", "banner_icons.xml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).Verify(ctx, file)

	assert.Equal(t, m.Errored, result.Status)
	assert.Contains(t, result.Error, context.Canceled.Error())
}

func TestVerifier_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := copySample(t, dir, "std_module_strings_xml.xml", "std_module_strings_xml.xml")

	out, err := NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).
		RoundTrip(context.Background(), file.FullPath)
	require.NoError(t, err)

	assert.Equal(t, m.Passed, out.Result.Status, out.Result.Error)
	assert.Equal(t, "LanguageStrings", out.Result.Model)
	assert.True(t, strings.HasPrefix(string(out.Output), `<?xml version="1.0" encoding="utf-8"?>`))

	_, err = NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).
		RoundTrip(context.Background(), m.Path(filepath.Join(dir, "missing.xml")))
	assert.Error(t, err)
}

func TestVerifier_Project(t *testing.T) {
	dir := t.TempDir()
	file := writeDoc(t, dir, "module_strings.xml",
		`<base type="string"><strings><string id="a" text="b" /></strings></base>`)

	projection, err := NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).
		Project(context.Background(), file.FullPath)
	require.NoError(t, err)

	assert.Equal(t, "LanguageStrings", projection.Model)
	assert.Equal(t, "string", projection.Data["type"])

	_, err = NewVerifier(adapter.NewLocalSourceFSAdapter(), nil, VerifierOptions{}).
		Project(context.Background(), writeDoc(t, dir, "other.xml", "<other/>").FullPath)

	var mismatch *m.ModelMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "other", mismatch.Root)
}
