package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareScopes(t *testing.T) {
	dir := t.TempDir()
	leaky := filepath.Join(dir, "leaky.txt")
	writeFile(t, leaky, `# ::snt Bob sings.
(s / sing-01
      :ARG0 (p / person))

# ::snt He sings too.
(s / sing-01
      :ARG0 p)
`)
	clean := filepath.Join(dir, "clean.txt")
	writeFile(t, clean, sampleAMR)

	diffs, err := CompareScopes(context.Background(), []Input{{Path: clean}, {Path: leaky}}, 2)
	require.NoError(t, err)
	require.Len(t, diffs, 2)

	require.Equal(t, leaky, diffs[0].Input.Path)
	require.Equal(t, 2, diffs[0].Graphs)
	require.Equal(t, 1, diffs[0].Differ)
	require.Equal(t, GraphPair{
		Index:  1,
		Block:  "(sing-01 :ARG0 p)",
		Legacy: "(sing-01 :ARG0 (person))",
	}, diffs[0].Examples[0])

	require.Equal(t, clean, diffs[1].Input.Path)
	require.Zero(t, diffs[1].Differ)
}
