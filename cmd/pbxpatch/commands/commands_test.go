package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pbxpatch/cmd/pbxpatch/commands"
	"go.trai.ch/pbxpatch/internal/app"
	"go.trai.ch/pbxpatch/internal/build"
)

type mockApp struct {
	patchFunc func(ctx context.Context, paths []string, opts app.PatchOptions) error
	checkFunc func(ctx context.Context, paths []string, catalogPath string) error
}

func (m *mockApp) Patch(ctx context.Context, paths []string, opts app.PatchOptions) error {
	if m.patchFunc != nil {
		return m.patchFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, paths []string, catalogPath string) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, paths, catalogPath)
	}
	return nil
}

func TestCommands_Patch(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.PatchOptions
		var capturedPaths []string
		called := false

		mock := &mockApp{
			patchFunc: func(_ context.Context, paths []string, opts app.PatchOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"patch", "a/project.pbxproj", "b/project.pbxproj",
			"--catalog", "deps.yaml", "--strict", "--dry-run", "--json", "-j", "4", "--progress",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.PatchOptions{
			CatalogPath: "deps.yaml",
			Strict:      true,
			DryRun:      true,
			JSON:        true,
			Jobs:        4,
			Progress:    true,
		}, capturedOpts)
		assert.Equal(t, []string{"a/project.pbxproj", "b/project.pbxproj"}, capturedPaths)
	})

	t.Run("no paths uses defaults", func(t *testing.T) {
		var capturedOpts app.PatchOptions
		var capturedPaths []string

		mock := &mockApp{
			patchFunc: func(_ context.Context, paths []string, opts app.PatchOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"patch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, capturedPaths)
		assert.Equal(t, app.PatchOptions{}, capturedOpts)
	})

	t.Run("returns error on patch failure", func(t *testing.T) {
		mock := &mockApp{
			patchFunc: func(_ context.Context, _ []string, _ app.PatchOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"patch"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Check(t *testing.T) {
	var capturedCatalog string
	var capturedPaths []string

	mock := &mockApp{
		checkFunc: func(_ context.Context, paths []string, catalogPath string) error {
			capturedPaths = paths
			capturedCatalog = catalogPath
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"-c", "deps.yaml", "check", "x.pbxproj"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "deps.yaml", capturedCatalog)
	assert.Equal(t, []string{"x.pbxproj"}, capturedPaths)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "pbxpatch version "+build.Version)
}
