package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeLineCSV writes n rows of y = 2x + 1 with an id column.
func writeLineCSV(t *testing.T, dir string, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("id,x,y\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "r%d,%d,%d\n", i, i, 2*i+1)
	}
	path := filepath.Join(dir, "line.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

// writeSalesCSV writes a small mixed-kind dataset with exact statistics.
func writeSalesCSV(t *testing.T, dir string) string {
	t.Helper()
	content := `region,price,revenue
north,1,3
south,2,5
north,3,7
south,4,9
`
	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
