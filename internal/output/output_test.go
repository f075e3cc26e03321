package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI() (*UI, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &UI{Out: out, ErrOut: errOut}, out, errOut
}

func TestInfo(t *testing.T) {
	u, out, _ := newTestUI()
	u.Info("loaded %d entries", 12)
	assert.Contains(t, out.String(), "loaded 12 entries")
}

func TestSuccess(t *testing.T) {
	u, out, _ := newTestUI()
	u.Success("written to %s", "report.xlsx")
	assert.Contains(t, out.String(), "written to report.xlsx")
}

func TestWarning(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Warning("output exists: %s", "report.xlsx")
	assert.Contains(t, errOut.String(), "output exists: report.xlsx")
}

func TestError(t *testing.T) {
	u, _, errOut := newTestUI()
	u.Error("failed %s", "badly")
	assert.Contains(t, errOut.String(), "failed badly")
}

func TestVerboseLog(t *testing.T) {
	u, out, _ := newTestUI()
	u.VerboseLog("detail %d", 1)
	assert.Empty(t, out.String())

	u.Verbose = true
	u.VerboseLog("detail %d", 1)
	assert.Contains(t, out.String(), "detail 1")
}

func TestDryRunMsg(t *testing.T) {
	u, _, errOut := newTestUI()
	u.DryRunMsg("would write %s", "file")
	assert.Empty(t, errOut.String())

	u.DryRun = true
	u.DryRunMsg("would write %s", "file")
	assert.Contains(t, errOut.String(), "[DRY-RUN]")
	assert.Contains(t, errOut.String(), "would write file")
}

func TestColorHelpers(t *testing.T) {
	// Color helpers should return non-empty strings
	assert.NotEmpty(t, Cyan("test"))
	assert.NotEmpty(t, Green("test"))
	assert.NotEmpty(t, Yellow("test"))
}

func TestTable(t *testing.T) {
	u, out, _ := newTestUI()
	table := u.Table([]string{"Project", "Time (h)"})
	require.NotNil(t, table)

	table.Append([]string{"P1 - C1", "01:59:30"})
	table.Append([]string{"P2", "02:00:00"})
	err := table.Render()
	require.NoError(t, err)

	result := out.String()
	assert.True(t, strings.Contains(result, "P1 - C1"), "table output should contain project labels")
	assert.True(t, strings.Contains(result, "02:00:00"), "table output should contain clock times")
}
