package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pbxpatch/internal/adapters/diff"
)

func TestUnified(t *testing.T) {
	before := []byte("a\nb\nc\n")
	after := []byte("a\nb\nx\nc\n")

	got, err := diff.New().Unified("p.pbxproj", before, after)
	require.NoError(t, err)

	want := "--- a/p.pbxproj\n" +
		"+++ b/p.pbxproj\n" +
		"@@ -1,3 +1,4 @@\n" +
		" a\n" +
		" b\n" +
		"+x\n" +
		" c\n"
	assert.Equal(t, want, got)
}

func TestUnified_Identical(t *testing.T) {
	content := []byte("same\n")
	got, err := diff.New().Unified("p.pbxproj", content, content)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnified_ZeroContextUsesDefault(t *testing.T) {
	d := &diff.Differ{}
	got, err := d.Unified("p", []byte("1\n2\n3\n4\n5\n"), []byte("1\n2\n3\n4\n5\n6\n"))
	require.NoError(t, err)
	assert.Contains(t, got, "@@ -3,3 +3,4 @@\n 3\n 4\n 5\n+6\n")
}
