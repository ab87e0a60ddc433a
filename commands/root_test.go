package commands

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-datetime-bench/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so runs do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { util.SetLogger(nil) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "test/path"), expandPath("~/test/path"))
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))

	abs, _ := filepath.Abs("relative/path")
	assert.Equal(t, abs, expandPath("relative/path"))
}

func TestEnsureDir(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "test", "nested", "dir")

	require.NoError(t, ensureDir(testDir))
	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, ensureDir(testDir))
}

func TestRootCommandTable(t *testing.T) {
	out, err := execute(t, "--records", "5000", "--timezone", "UTC", "--preview", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Datetime Parsing Benchmark")
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "explicit")
	assert.Contains(t, out, "inferred")
	assert.Contains(t, out, "all strategies agree")
	assert.Contains(t, out, "Dataset preview (first 2 rows)")
	assert.Contains(t, out, "Estimated records")
}

func TestRootCommandJSON(t *testing.T) {
	out, err := execute(t, "-n", "3000", "--seed", "7", "--timezone", "UTC",
		"--strategies", "inferred,explicit", "-o", "json")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.EqualValues(t, 3000, report["records"])
	assert.EqualValues(t, 7, report["seed"])
	assert.Equal(t, "UTC", report["timezone"])

	timings := report["timings"].([]interface{})
	require.Len(t, timings, 2)
	assert.Equal(t, "inferred", timings[0].(map[string]interface{})["strategy"])
}

func TestRootCommandCSV(t *testing.T) {
	out, err := execute(t, "-n", "2000", "--timezone", "UTC", "--strategies", "explicit", "-o", "csv")
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "strategy", rows[0][0])
	assert.Equal(t, "explicit", rows[1][0])
}

func TestRootCommandExports(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "report.xlsx")
	prom := filepath.Join(dir, "bench.prom")

	_, err := execute(t, "-n", "2000", "--timezone", "UTC", "-o", "summary",
		"--export", xlsx, "--metrics-file", prom)
	require.NoError(t, err)

	assert.FileExists(t, xlsx)
	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dtbench_records 2000")
}

func TestRootCommandEnvironmentDefaults(t *testing.T) {
	t.Setenv("DTBENCH_RECORDS", "1500")
	t.Setenv("DTBENCH_OUTPUT", "json")
	t.Setenv("DTBENCH_TIMEZONE", "UTC")

	out, err := execute(t, "--strategies", "explicit")
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.EqualValues(t, 1500, report["records"])

	// flags override the environment
	out, err = execute(t, "--strategies", "explicit", "-n", "1200")
	require.NoError(t, err)
	require.NoError(t, sonic.UnmarshalString(out, &report))
	assert.EqualValues(t, 1200, report["records"])
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad output", []string{"-n", "100", "-o", "xml"}, "unsupported output format"},
		{"bad timezone", []string{"-n", "100", "--timezone", "Mars/Olympus"}, "timezone"},
		{"unknown strategy", []string{"-n", "100", "--strategies", "psychic"}, "unknown strategy"},
		{"no records", []string{"-n", "0", "--timezone", "UTC"}, "true record count must be positive"},
		{"bad export", []string{"-n", "2000", "--timezone", "UTC", "--export", "report.txt"}, "unsupported export format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootCommandLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "bench.log")
	_, err := execute(t, "-n", "1000", "--timezone", "UTC", "--strategies", "explicit",
		"-o", "summary", "--log-file", logPath, "--log-format", "json")
	require.NoError(t, err)
	util.SetLogger(nil)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"benchmark finished"`)
}
