package testutil

import (
	"embed"
	"io/fs"
	"path"

	"github.com/cockroachdb/errors"
)

// TestdataFS holds the embedded KML fixtures.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read test data file '%s'", name)
	}
	return data, nil
}

// Fixtures returns the names of all embedded fixtures.
func Fixtures() ([]string, error) {
	entries, err := fs.ReadDir(TestdataFS, "testdata")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list test data")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
