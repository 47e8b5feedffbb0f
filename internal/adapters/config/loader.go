// Package config provides the catalog loader for pbxpatch.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/pbxpatch/internal/core/domain"
	"go.trai.ch/pbxpatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the catalog schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.CatalogLoader = (*Loader)(nil)

// Loader implements ports.CatalogLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves and validates the catalog.
func (l *Loader) Load(cwd, path string) (domain.Catalog, string, error) {
	if path == "" {
		path = findCatalog(cwd)
		if path == "" {
			return domain.DefaultCatalog(), "", nil
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	var file CatalogFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Catalog{}, "", err
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("catalog %s declares version %q, expected %q", path, file.Version, SupportedVersion))
	}

	c := toCatalog(&file)
	if err := c.Validate(); err != nil {
		return domain.Catalog{}, "", zerr.With(err, "path", path)
	}

	return c, path, nil
}

// findCatalog walks up from cwd and returns the first catalog file found, or "".
func findCatalog(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.CatalogFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, v any) error {
	//nolint:gosec // Path is provided by the trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCatalogReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("catalog file is empty")
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCatalogParseFailed.Error()), "path", path)
	}

	return nil
}

func toCatalog(f *CatalogFile) domain.Catalog {
	c := domain.Catalog{
		Sentinel: domain.Identifier(f.Sentinel),
		Strict:   f.Strict,
		Target: domain.Target{
			FrameworksPhase: domain.Identifier(f.Target.FrameworksPhase),
			NativeTarget:    domain.Identifier(f.Target.NativeTarget),
			Name:            f.Target.Name,
		},
		Packages: make([]domain.Package, 0, len(f.Packages)),
		Products: make([]domain.Product, 0, len(f.Products)),
	}

	for _, p := range f.Packages {
		c.Packages = append(c.Packages, domain.Package{ID: domain.Identifier(p.ID), Name: p.Name})
	}
	for _, p := range f.Products {
		c.Products = append(c.Products, domain.Product{
			Name:       p.Name,
			Package:    domain.Identifier(p.Package),
			Dependency: domain.Identifier(p.Dependency),
			BuildFile:  domain.Identifier(p.BuildFile),
		})
	}

	return c
}
