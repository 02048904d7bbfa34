// Package units loads the UNITS.toml manifest declaring the translation
// units of a project, so a whole project can be analyzed in one invocation
// with one report per unit.
package units

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"ccx/internal/paths"
)

// UnitsDeclarationFile is the default filename for unit declarations
const UnitsDeclarationFile = "UNITS.toml"

// UnitDeclaration declares one translation unit to analyze
type UnitDeclaration struct {
	// Path is the project-relative path of the source file
	Path string `toml:"path"`

	// Language overrides extension-based language detection (c or cpp)
	Language string `toml:"language,omitempty"`

	// Report overrides the report sink path for this unit. Units sharing a
	// sink path overwrite each other; the last writer wins.
	Report string `toml:"report,omitempty"`
}

// UnitsFile represents the root structure of UNITS.toml
type UnitsFile struct {
	// Version is the schema version
	Version int `toml:"version"`

	// Units is the list of declared translation units
	Units []UnitDeclaration `toml:"unit"`
}

// ParseUnitsFile parses a UNITS.toml file from the given path
func ParseUnitsFile(filePath string) (*UnitsFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read UNITS.toml: %w", err)
	}

	var unitsFile UnitsFile
	if err := toml.Unmarshal(data, &unitsFile); err != nil {
		return nil, fmt.Errorf("failed to parse UNITS.toml: %w", err)
	}

	if unitsFile.Version < 1 {
		unitsFile.Version = 1
	}

	for i, u := range unitsFile.Units {
		if u.Path == "" {
			return nil, fmt.Errorf("unit declaration %d missing required 'path' field", i+1)
		}
		switch u.Language {
		case "", "c", "cpp":
		default:
			return nil, fmt.Errorf("unit %q: unsupported language %q", u.Path, u.Language)
		}
	}

	return &unitsFile, nil
}

// LoadDeclaredUnits loads unit declarations from UNITS.toml under root.
// Returns nil without error when the manifest does not exist.
func LoadDeclaredUnits(root string, declarationFile string) ([]UnitDeclaration, error) {
	if declarationFile == "" {
		declarationFile = UnitsDeclarationFile
	}

	filePath := declarationFile
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(root, declarationFile)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	}

	unitsFile, err := ParseUnitsFile(filePath)
	if err != nil {
		return nil, err
	}

	units := make([]UnitDeclaration, 0, len(unitsFile.Units))
	for _, u := range unitsFile.Units {
		// Manifest paths are written with forward slashes.
		if !filepath.IsAbs(u.Path) {
			u.Path = paths.JoinRoot(root, u.Path)
		}
		if u.Report == "" {
			u.Report = defaultReportFor(u.Path)
		}
		units = append(units, u)
	}
	return units, nil
}

// defaultReportFor derives a per-unit report path next to the source file so
// declared units do not clobber each other's reports by default.
func defaultReportFor(sourcePath string) string {
	base := filepath.Base(sourcePath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(filepath.Dir(sourcePath), base+".cy")
}
