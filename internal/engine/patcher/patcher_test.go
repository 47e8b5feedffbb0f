package patcher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/engine/patcher"
)

const (
	sentinel       = "96B7960B2F00F00100F7DF93"
	mlxBuildFileID = "96B7960D2F00F00300F7DF93"
)

func readFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "minimal.pbxproj"))
	require.NoError(t, err)
	return string(data)
}

// dropLine removes the first line containing marker.
func dropLine(t *testing.T, doc, marker string) string {
	t.Helper()
	lines := strings.SplitAfter(doc, "\n")
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "")
		}
	}
	t.Fatalf("marker %q not in fixture", marker)
	return ""
}

func TestPatch_Golden(t *testing.T) {
	p := patcher.New(domain.DefaultCatalog())

	res, err := p.Patch([]byte(readFixture(t)))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePatched, res.Outcome)

	g := goldie.New(t)
	g.Assert(t, "minimal_patched", res.Content)
}

func TestPatch_Idempotent(t *testing.T) {
	p := patcher.New(domain.DefaultCatalog())

	first, err := p.Patch([]byte(readFixture(t)))
	require.NoError(t, err)

	second, err := p.Patch(first.Content)
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeAlreadyPatched, second.Outcome)
	assert.Equal(t, string(first.Content), string(second.Content))
	assert.Empty(t, second.Injections)
}

func TestPatch_InjectionCompleteness(t *testing.T) {
	p := patcher.New(domain.DefaultCatalog())

	res, err := p.Patch([]byte(readFixture(t)))
	require.NoError(t, err)

	require.Len(t, res.Injections, 4)
	added := map[domain.Point]int{}
	for _, inj := range res.Injections {
		assert.True(t, inj.Applied, "point %s", inj.Point)
		assert.Positive(t, inj.Line, "point %s", inj.Point)
		added[inj.Point] = inj.Added
	}
	assert.Equal(t, 3, added[domain.PointBuildFiles])
	assert.Equal(t, 3, added[domain.PointFrameworksPhase])
	assert.Equal(t, 5, added[domain.PointTargetDependencies])
	assert.Equal(t, 18, added[domain.PointProductDepSection])

	in := strings.Count(readFixture(t), "\n")
	out := strings.Count(string(res.Content), "\n")
	assert.Equal(t, in+3+3+5+18, out)

	lines := strings.Split(string(res.Content), "\n")
	idx := indexOf(lines, domain.BuildFileSectionBegin)
	require.GreaterOrEqual(t, idx, 0)
	for i, name := range []string{"MLX", "MLXLLM", "MLXLMCommon"} {
		assert.Contains(t, lines[idx+1+i], "/* "+name+" in Frameworks */ = {isa = PBXBuildFile; productRef = ")
	}

	idx = indexOf(lines, "A1000020282A0001 /* Frameworks */ = {")
	require.GreaterOrEqual(t, idx, 0)
	assert.Contains(t, lines[idx+3], domain.FilesListOpen)
	assert.Equal(t, "\t\t\t\t"+mlxBuildFileID+" /* MLX in Frameworks */,", lines[idx+4])
	assert.Equal(t, "\t\t\t);", lines[idx+7])

	idx = indexOf(lines, domain.ProductTypeKey)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "\t\t\tpackageProductDependencies = (", lines[idx+1])
	assert.Equal(t, "\t\t\t);", lines[idx+5])
	assert.Equal(t, "\t\t};", lines[idx+6])

	idx = indexOf(lines, domain.ProjectSectionBegin)
	require.GreaterOrEqual(t, idx, 16)
	assert.Empty(t, lines[idx-1])
	assert.Equal(t, domain.ProductDepSectionEnd, lines[idx-2])
	assert.Equal(t, domain.ProductDepSectionBegin, lines[idx-18])
	assert.Equal(t, 1, strings.Count(string(res.Content), domain.ProductDepSectionBegin))
}

func TestPatch_SentinelOccurrences(t *testing.T) {
	p := patcher.New(domain.DefaultCatalog())

	res, err := p.Patch([]byte(readFixture(t)))
	require.NoError(t, err)

	// Build-file declaration, target dependency list and section sub-record.
	assert.Equal(t, 3, strings.Count(string(res.Content), sentinel))
	// Build-file declaration and frameworks phase reference.
	assert.Equal(t, 2, strings.Count(string(res.Content), mlxBuildFileID))
}

func TestPatch_StructuralBalance(t *testing.T) {
	p := patcher.New(domain.DefaultCatalog())
	in := readFixture(t)

	res, err := p.Patch([]byte(in))
	require.NoError(t, err)
	out := string(res.Content)

	balance := func(s, open, closing string) int {
		return strings.Count(s, open) - strings.Count(s, closing)
	}
	assert.Equal(t, balance(in, "{", "}"), balance(out, "{", "}"))
	assert.Equal(t, balance(in, "(", ")"), balance(out, "(", ")"))
	assert.Equal(t, 0, balance(out, "/* Begin ", "/* End "))
}

func TestPatch_IdentifierUniqueness(t *testing.T) {
	c := domain.DefaultCatalog()
	in := readFixture(t)

	for _, id := range c.SynthesizedIDs() {
		assert.NotContains(t, in, id.String())
	}

	t.Run("collision fails before mutation", func(t *testing.T) {
		doc := strings.Replace(in, "A1000001282A0001", mlxBuildFileID, 1)

		res, err := patcher.New(c).Patch([]byte(doc))
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrIdentifierCollision.Error())
		assert.Nil(t, res)
	})
}

func TestPatch_MissingMarker(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		point  domain.Point
	}{
		{name: "build file section", marker: domain.BuildFileSectionBegin, point: domain.PointBuildFiles},
		{name: "frameworks phase", marker: "A1000020282A0001 /* Frameworks */ = {", point: domain.PointFrameworksPhase},
		{name: "native target", marker: "A1000040282A0001 /* iMessageWrapped */ = {", point: domain.PointTargetDependencies},
		{name: "project section", marker: domain.ProjectSectionBegin, point: domain.PointProductDepSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := dropLine(t, readFixture(t), tt.marker)

			res, err := patcher.New(domain.DefaultCatalog()).Patch([]byte(doc))
			require.NoError(t, err)

			for _, inj := range res.Injections {
				if inj.Point == tt.point {
					assert.False(t, inj.Applied)
					assert.Zero(t, inj.Added)
				} else {
					assert.True(t, inj.Applied, "point %s", inj.Point)
				}
			}
			assert.Equal(t, []domain.Point{tt.point}, res.Missing())
		})

		t.Run(tt.name+" strict", func(t *testing.T) {
			doc := dropLine(t, readFixture(t), tt.marker)
			c := domain.DefaultCatalog()
			c.Strict = true

			res, err := patcher.New(c).Patch([]byte(doc))
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrMarkerNotFound.Error())
			assert.Nil(t, res)
		})
	}
}

func TestPatch_OnlyFirstFilesListInPhase(t *testing.T) {
	doc := readFixture(t)
	res, err := patcher.New(domain.DefaultCatalog()).Patch([]byte(doc))
	require.NoError(t, err)

	// The sources phase also opens a files list after the frameworks phase; it stays untouched.
	out := string(res.Content)
	sources := out[strings.Index(out, "A1000030282A0001 /* Sources */ = {"):]
	assert.NotContains(t, sources[:strings.Index(sources, "};")], "in Frameworks")
}

func TestPatch_ExistingProductDependencySection(t *testing.T) {
	existing := domain.ProductDepSectionBegin + "\n" +
		"\t\tB0000001282A0001 /* Other */ = {\n" +
		"\t\t\tisa = XCSwiftPackageProductDependency;\n" +
		"\t\t\tproductName = Other;\n" +
		"\t\t};\n" +
		domain.ProductDepSectionEnd + "\n"
	doc := strings.Replace(readFixture(t), "/* Begin XCRemoteSwiftPackageReference section */\n",
		existing+"\n/* Begin XCRemoteSwiftPackageReference section */\n", 1)

	res, err := patcher.New(domain.DefaultCatalog()).Patch([]byte(doc))
	require.NoError(t, err)
	out := string(res.Content)

	assert.Equal(t, 1, strings.Count(out, domain.ProductDepSectionBegin))
	assert.Equal(t, 1, strings.Count(out, domain.ProductDepSectionEnd))
	assert.Contains(t, out, domain.ProductDepSectionBegin+"\n\t\t"+sentinel+" /* MLX */ = {\n")
	assert.NotContains(t, out, domain.ProductDepSectionEnd+"\n\n"+domain.ProjectSectionBegin)
	assert.Equal(t, 15, res.Injections[3].Added)
}

func TestPatch_ExistingTargetProductDependencies(t *testing.T) {
	existing := domain.ProductDepSectionBegin + "\n" +
		"\t\tB0000001282A0001 /* Other */ = {\n" +
		"\t\t\tisa = XCSwiftPackageProductDependency;\n" +
		"\t\t\tproductName = Other;\n" +
		"\t\t};\n" +
		domain.ProductDepSectionEnd + "\n"
	doc := strings.Replace(readFixture(t), "/* Begin XCRemoteSwiftPackageReference section */\n",
		existing+"\n/* Begin XCRemoteSwiftPackageReference section */\n", 1)
	doc = strings.Replace(doc, "\t\t\tproductType = ",
		"\t\t\tpackageProductDependencies = (\n\t\t\t\tB0000001282A0001 /* Other */,\n\t\t\t);\n\t\t\tproductType = ", 1)

	res, err := patcher.New(domain.DefaultCatalog()).Patch([]byte(doc))
	require.NoError(t, err)
	out := string(res.Content)

	assert.Equal(t, 1, strings.Count(out, domain.PackageProductDepsOpen))
	assert.Contains(t, out, "\t\t\t"+domain.PackageProductDepsOpen+"\n\t\t\t\t"+sentinel+" /* MLX */,\n")
	assert.Contains(t, out, "\t\t\t\tB0000001282A0001 /* Other */,\n\t\t\t);\n\t\t\tproductType = ")

	target := res.Injections[2]
	assert.Equal(t, domain.PointTargetDependencies, target.Point)
	assert.True(t, target.Applied)
	assert.Equal(t, 3, target.Added)
}

func TestPatch_PartialEarlierRun(t *testing.T) {
	doc := readFixture(t)
	for _, marker := range []string{
		domain.BuildFileSectionBegin,
		"A1000040282A0001 /* iMessageWrapped */ = {",
		domain.ProjectSectionBegin,
	} {
		doc = dropLine(t, doc, marker)
	}
	p := patcher.New(domain.DefaultCatalog())

	first, err := p.Patch([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePatched, first.Outcome)
	assert.Len(t, first.Missing(), 3)
	assert.NotContains(t, string(first.Content), sentinel)

	second, err := p.Patch(first.Content)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomePartiallyPatched, second.Outcome)
	assert.Equal(t, first.Content, second.Content)
}

func TestPatch_PreservesCRLF(t *testing.T) {
	doc := strings.ReplaceAll(readFixture(t), "\n", "\r\n")

	res, err := patcher.New(domain.DefaultCatalog()).Patch([]byte(doc))
	require.NoError(t, err)
	out := string(res.Content)

	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"))
	assert.Contains(t, out, "\t\t\tpackageProductDependencies = (\r\n")
}

func TestPatch_EmptyDocument(t *testing.T) {
	res, err := patcher.New(domain.DefaultCatalog()).Patch(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Content)
	assert.Len(t, res.Missing(), 4)
}

func TestAlreadyPatched(t *testing.T) {
	assert.True(t, patcher.AlreadyPatched("x "+sentinel+" y", sentinel))
	assert.False(t, patcher.AlreadyPatched("x 96B7960B2F00F001 y", sentinel))
	assert.False(t, patcher.AlreadyPatched("anything", ""))
}

func indexOf(lines []string, marker string) int {
	for i, l := range lines {
		if strings.Contains(l, marker) {
			return i
		}
	}
	return -1
}
