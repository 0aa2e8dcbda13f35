// Package matrixdb resolves substitution-matrix names to their textual
// representation. The default database is embedded into the binary;
// BoltStore additionally provides a writable on-disk database with the
// same interface.
package matrixdb

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/op/go-logging"
)

// log is the global logging variable.
var log = logging.MustGetLogger("matrixdb")

//go:embed data/*.mat
var dataFS embed.FS

// UnknownMatrixError is returned when a matrix name cannot be
// resolved.
type UnknownMatrixError struct {
	Name string
}

func (e *UnknownMatrixError) Error() string {
	return fmt.Sprintf("unknown matrix name %q", e.Name)
}

// Resolver resolves matrix names to matrix text.
type Resolver interface {
	// Read returns the matrix text for a name.
	Read(name string) (string, error)
	// List returns all known matrix names.
	List() ([]string, error)
}

// DB is the embedded matrix database.
type DB struct{}

// Default is the process-wide embedded database.
var Default = DB{}

// Read returns the embedded matrix text for a name.
func (DB) Read(name string) (string, error) {
	b, err := dataFS.ReadFile("data/" + name + ".mat")
	if err != nil {
		return "", &UnknownMatrixError{Name: name}
	}
	log.Debugf("loaded matrix %q from embedded database", name)
	return string(b), nil
}

// List returns the names of all embedded matrices, sorted.
func (DB) List() ([]string, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".mat"))
	}
	sort.Strings(names)
	return names, nil
}
