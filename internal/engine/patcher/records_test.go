package patcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/engine/patcher"
)

func TestSynthesize_DefaultCatalog(t *testing.T) {
	c := domain.DefaultCatalog()
	r := patcher.Synthesize(&c)

	require.Len(t, r.BuildFiles, 3)
	require.Len(t, r.PhaseLinks, 3)
	require.Len(t, r.Dependencies, 3)

	for i, p := range c.Products {
		bf := r.BuildFiles[i]
		assert.Equal(t, domain.KindBuildFile, bf.Kind)
		assert.Equal(t, p.BuildFile, bf.ID)
		assert.Equal(t, p.Dependency, bf.Ref)
		assert.Equal(t, p.Name+" in Frameworks", bf.Comment)

		link := r.PhaseLinks[i]
		assert.Equal(t, domain.KindPhaseLink, link.Kind)
		assert.Equal(t, bf.ID, link.ID)
		assert.Equal(t, bf.Comment, link.Comment)
		assert.Empty(t, link.Ref)

		dep := r.Dependencies[i]
		assert.Equal(t, domain.KindProductDependency, dep.Kind)
		assert.Equal(t, p.Dependency, dep.ID)
		assert.Equal(t, p.Package, dep.Ref)
		assert.Equal(t, p.Name, dep.ProductName)
	}

	assert.Equal(t, `XCRemoteSwiftPackageReference "mlx-swift"`, r.Dependencies[0].RefComment)
	assert.Equal(t, `XCRemoteSwiftPackageReference "mlx-swift-lm"`, r.Dependencies[2].RefComment)
}

func TestSynthesize_Deterministic(t *testing.T) {
	c := domain.DefaultCatalog()
	assert.Equal(t, patcher.Synthesize(&c), patcher.Synthesize(&c))
	assert.Equal(t, patcher.New(c).Records(), patcher.Synthesize(&c))
}
