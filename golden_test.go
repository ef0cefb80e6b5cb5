package vmf_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfmt/go-vmf"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden parses each testdata/*.vmf file and compares against the
// matching .golden file: the canonical serialization (newline-terminated)
// for valid input, the verbose error message for invalid input.
func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.vmf")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no golden inputs found")

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual string
			doc, err := vmf.Parse[vmf.Owned, vmf.VerboseError](string(src))
			if err != nil {
				actual = err.Error() + "\n"
			} else {
				actual = doc.String() + "\n"
			}

			goldenFile := strings.TrimSuffix(file, ".vmf") + ".golden"
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, []byte(actual), 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err)
			assert.Equal(t, string(expected), actual)
		})
	}
}
