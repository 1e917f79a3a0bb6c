// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pacefit/pace/internal/osutil"
)

const (
	filesDir = "files"

	// CatalogFile is the name of the default workout catalog.
	CatalogFile = "workouts.yml"
)

//go:embed files/*
var embeddedFiles embed.FS

// Catalog returns the contents of the default workout catalog.
func Catalog() []byte {
	b, err := embeddedFiles.ReadFile(path.Join(filesDir, CatalogFile))
	if err != nil {
		panic(err)
	}

	return b
}

// Install copies the embedded files into dataDir. Files that already exist
// are left alone so user edits survive upgrades.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			destPath := filepath.Join(
				dataDir,
				filepath.FromSlash(strings.TrimPrefix(p, filesDir+"/")),
			)

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				err = os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission)
				if err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
