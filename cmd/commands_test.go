package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"modxml.dev/pkg/modxml/internal/domain"
	domainmocks "modxml.dev/pkg/modxml/internal/domain/mocks"
	m "modxml.dev/pkg/modxml/internal/model"
)

// executeSub runs one sub-command under a fresh root with the workflow swapped for a mock.
func executeSub(t *testing.T, newSub func() *cobra.Command, mockWorkflow domain.Workflow, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newSub())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() {
		workflow = originalWorkflow
		// Rebind the config keys to untouched flags.
		newRootCmd()
		newSub()
	})

	cmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "test.log")))

	return cmd.ExecuteContext(context.Background())
}

func TestVerifyCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Verify(mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return args.Directory == m.Path(defaultXMLDirectory) &&
			args.Reports == m.Path(defaultReportsDir) &&
			args.Parallel &&
			args.MaxParallelism == defaultMaxParallelism &&
			args.FileSizeThreshold == defaultFileSizeThreshold &&
			assert.ObjectsAreEqual([]m.OutputFormat{m.FormatConsole, m.FormatMarkdown, m.FormatCSV}, args.Formats) &&
			assert.ObjectsAreEqual(defaultExcludePatterns, args.Exclude)
	})).Return(m.Summary{Passed: 1, Files: []m.FileResult{{Status: m.Passed}}}, nil).Once()

	require.NoError(t, executeSub(t, newVerifyCmd, mockWorkflow, "verify"))
}

func TestVerifyCmd_Flags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Verify(mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return args.Directory == m.Path("data") &&
			args.MaxParallelism == 2 &&
			!args.Parallel &&
			args.FileSizeThreshold == 4096 &&
			args.Recursive &&
			args.Strict &&
			args.Reports == m.Path("out") &&
			assert.ObjectsAreEqual([]m.OutputFormat{m.FormatJSON, m.FormatHTML}, args.Formats) &&
			assert.ObjectsAreEqual([]string{"*.bak"}, args.Exclude) &&
			assert.ObjectsAreEqual([]m.Path{"defs"}, args.ModelDirectories)
	})).Return(m.Summary{}, nil).Once()

	err := executeSub(t, newVerifyCmd, mockWorkflow,
		"verify", "data",
		"-f", "json,html", "-p", "2", "--parallel=false", "--size-threshold", "4096",
		"-r", "--strict", "-o", "out", "-x", "*.bak", "-m", "defs",
	)
	require.NoError(t, err)
}

func TestVerifyCmd_ExitStatus(t *testing.T) {
	tests := []struct {
		name    string
		summary m.Summary
		err     error
		wantErr error
	}{
		{
			name:    "all passed",
			summary: m.Summary{Passed: 2, Files: make([]m.FileResult, 2)},
		},
		{
			name:    "failed files",
			summary: m.Summary{Passed: 1, Failed: 1, Files: make([]m.FileResult, 2)},
			wantErr: errVerificationFailed,
		},
		{
			name:    "errored files",
			summary: m.Summary{Errored: 1, Files: make([]m.FileResult, 1)},
			wantErr: errVerificationFailed,
		},
		{
			name:    "cancelled run",
			summary: m.Summary{Cancelled: true, Skipped: 3},
			wantErr: errVerificationFailed,
		},
		{
			name:    "fatal error",
			err:     domain.ErrNotDirectory,
			wantErr: domain.ErrNotDirectory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			mockWorkflow.EXPECT().Verify(mock.Anything, mock.Anything).Return(tt.summary, tt.err).Once()

			err := executeSub(t, newVerifyCmd, mockWorkflow, "verify")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyCmd_InvalidFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	err := executeSub(t, newVerifyCmd, mockWorkflow, "verify", "-f", "pdf")
	require.ErrorIs(t, err, m.ErrInvalidConfig)
}

func TestVerifyCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	err := executeSub(t, newVerifyCmd, mockWorkflow, "verify", "a", "b")
	require.Error(t, err)
}

func TestWatchCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Watch(mock.Anything, mock.MatchedBy(func(args domain.VerifyArgs) bool {
		return args.Directory == m.Path("data") && args.Recursive
	})).Return(nil).Once()

	require.NoError(t, executeSub(t, newWatchCmd, mockWorkflow, "watch", "data", "-r"))
}

func TestCompareCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantRaw bool
	}{
		{"normalized", []string{"compare", "a.xml", "b.xml"}, false},
		{"raw", []string{"compare", "a.xml", "b.xml", "--raw"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { compareRawFlag = false })

			mockWorkflow := domainmocks.NewMockWorkflow(t)
			mockWorkflow.EXPECT().Compare(mock.Anything, domain.CompareArgs{
				A:   m.Path("a.xml"),
				B:   m.Path("b.xml"),
				Raw: tt.wantRaw,
			}).Return(m.DiffReport{}, nil).Once()

			require.NoError(t, executeSub(t, newCompareCmd, mockWorkflow, tt.args...))
		})
	}
}

func TestCompareCmd_RequiresTwoFiles(t *testing.T) {
	err := executeSub(t, newCompareCmd, domainmocks.NewMockWorkflow(t), "compare", "a.xml")
	require.Error(t, err)
}

func TestCompareCmd_Error(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	parseErr := &m.ParseError{File: "b.xml", Err: errors.New("unexpected EOF")}
	mockWorkflow.EXPECT().Compare(mock.Anything, mock.Anything).Return(m.DiffReport{}, parseErr).Once()

	err := executeSub(t, newCompareCmd, mockWorkflow, "compare", "a.xml", "b.xml")

	var target *m.ParseError
	require.ErrorAs(t, err, &target)
}

func TestRoundTripCmd(t *testing.T) {
	t.Cleanup(func() {
		roundTripOutputFlag = ""
		roundTripPrintFlag = false
	})

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().RoundTrip(mock.Anything, domain.RoundTripArgs{
		Path:             m.Path("module_strings.xml"),
		ModelDirectories: []m.Path{"defs"},
		Strict:           true,
		Output:           m.Path("out.xml"),
		Print:            true,
	}).Return(m.FileResult{Status: m.Passed}, nil).Once()

	err := executeSub(t, newRoundTripCmd, mockWorkflow,
		"roundtrip", "module_strings.xml", "-w", "out.xml", "--print", "--strict", "-m", "defs")
	require.NoError(t, err)
}

func TestRoundTripCmd_FailedStatus(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().RoundTrip(mock.Anything, mock.Anything).
		Return(m.FileResult{Status: m.Failed}, nil).Once()

	err := executeSub(t, newRoundTripCmd, mockWorkflow, "roundtrip", "module_strings.xml")
	require.ErrorIs(t, err, errVerificationFailed)
	assert.Contains(t, err.Error(), "failed")
}

func TestDumpCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Dump(mock.Anything, mock.MatchedBy(func(args domain.DumpArgs) bool {
		return args.Path == m.Path("banner_icons.xml") && len(args.ModelDirectories) == 0
	})).Return(nil).Once()

	require.NoError(t, executeSub(t, newDumpCmd, mockWorkflow, "dump", "banner_icons.xml"))
}

func TestModelsCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Models(mock.Anything, domain.ModelsArgs{
		ModelDirectories: []m.Path{"defs", "more"},
	}).Return([]m.ModelInfo{{Name: "LanguageStrings"}}, nil).Once()

	require.NoError(t, executeSub(t, newModelsCmd, mockWorkflow, "models", "-m", "defs,more"))
}

func TestUnadaptedCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.UnadaptedArgs
	}{
		{
			name: "defaults",
			args: []string{"unadapted"},
			want: domain.UnadaptedArgs{
				Directory:        m.Path(defaultXMLDirectory),
				ModelDirectories: []m.Path{},
				Exclude:          defaultExcludePatterns,
			},
		},
		{
			name: "directory and flags",
			args: []string{"unadapted", "data", "-r", "-x", "*.bak", "-m", "defs"},
			want: domain.UnadaptedArgs{
				Directory:        "data",
				ModelDirectories: []m.Path{"defs"},
				Recursive:        true,
				Exclude:          []string{"*.bak"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := domainmocks.NewMockWorkflow(t)
			mockWorkflow.EXPECT().Unadapted(mock.Anything, mock.MatchedBy(func(args domain.UnadaptedArgs) bool {
				return args.Directory == tt.want.Directory &&
					args.Recursive == tt.want.Recursive &&
					len(args.ModelDirectories) == len(tt.want.ModelDirectories) &&
					assert.ObjectsAreEqual(tt.want.Exclude, args.Exclude)
			})).Return(nil, nil).Once()

			require.NoError(t, executeSub(t, newUnadaptedCmd, mockWorkflow, tt.args...))
		})
	}
}

func TestUnadaptedCmd_Error(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.EXPECT().Unadapted(mock.Anything, mock.Anything).Return(nil, domain.ErrNotDirectory).Once()

	err := executeSub(t, newUnadaptedCmd, mockWorkflow, "unadapted", "missing")
	assert.ErrorIs(t, err, domain.ErrNotDirectory)
}
