// Package machine - wavefunction parameter persistence.
//
// Parameters are stored as a small YAML document with separate real and
// imaginary arrays. The format is versioned by a tag so future layouts can
// coexist with old files. Save/Load on every concrete machine route through
// these helpers, so the round-trip contract is identical across models.
package machine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// paramFormat tags the on-disk layout.
const paramFormat = "wavecheck/params/v1"

// ErrBadParamFile indicates a parameter file that is unreadable, carries an
// unknown format tag, or is internally inconsistent.
var ErrBadParamFile = errors.New("machine: malformed parameter file")

// paramFile is the on-disk layout of a persisted parameter vector.
type paramFile struct {
	Format string    `yaml:"format"`
	NPar   int       `yaml:"n_par"`
	Real   []float64 `yaml:"real"`
	Imag   []float64 `yaml:"imag"`
}

// SaveParameters writes p to path, overwriting any existing file.
func SaveParameters(path string, p []complex128) error {
	f := paramFile{
		Format: paramFormat,
		NPar:   len(p),
		Real:   make([]float64, len(p)),
		Imag:   make([]float64, len(p)),
	}
	for i, z := range p {
		f.Real[i] = real(z)
		f.Imag[i] = imag(z)
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("machine: encode parameters: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("machine: write parameters: %w", err)
	}
	return nil
}

// LoadParameters reads a parameter vector previously written by
// SaveParameters. The caller owns compatibility with its own NPar; Load on a
// machine enforces it through SetParameters.
func LoadParameters(path string) ([]complex128, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("machine: read parameters: %w", err)
	}
	var f paramFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadParamFile, err)
	}
	if f.Format != paramFormat {
		return nil, fmt.Errorf("%w: unknown format %q", ErrBadParamFile, f.Format)
	}
	if len(f.Real) != f.NPar || len(f.Imag) != f.NPar {
		return nil, fmt.Errorf("%w: declared n_par %d, got %d real / %d imaginary entries",
			ErrBadParamFile, f.NPar, len(f.Real), len(f.Imag))
	}
	p := make([]complex128, f.NPar)
	for i := range p {
		p[i] = complex(f.Real[i], f.Imag[i])
	}
	return p, nil
}
