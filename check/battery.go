// Package check - the scenario battery.
//
// A Scenario binds a named machine instance to the verifier; Run drives one
// scenario through every check and RunAll aggregates a whole registry so a
// failure pinpoints which instance regressed. The registry is a plain slice
// built by the caller: instances are constructed statically and iterated
// polymorphically, with no name-based dispatch.
package check

import (
	"errors"
	"fmt"

	"github.com/varqlab/wavecheck/hilbert"
	"github.com/varqlab/wavecheck/machine"
)

// Scenario is one registered machine instance under test.
type Scenario struct {
	// Name identifies the instance in failure reports.
	Name string

	// Machine is the instance to verify.
	Machine machine.Machine

	// RealGradient marks machines whose log-amplitude is purely real
	// (Jastrow-like), requiring an exactly zero imaginary gradient.
	RealGradient bool
}

// Run drives one scenario through the full battery: shape, parameter round
// trip, persistence round trip, gradient law, and incremental-diff law.
// Checks run in order and the first failure is returned, wrapped with the
// scenario name.
func Run(s Scenario, opts Options) error {
	if s.Machine == nil {
		return fmt.Errorf("%w: scenario %q", ErrNilMachine, s.Name)
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	rng := hilbert.NewEngine(opts.AmbientSeed)
	steps := []struct {
		name string
		run  func() error
	}{
		{"shape", func() error { return Shape(s.Machine) }},
		{"parameters", func() error { return Parameters(s.Machine, rng) }},
		{"persistence", func() error { return Persistence(s.Machine, rng) }},
		{"gradient", func() error { return Gradient(s.Machine, s.RealGradient, rng, opts) }},
		{"logvaldiff", func() error { return LogValDiff(s.Machine, rng, opts) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("check: scenario %q: %s: %w", s.Name, step.name, err)
		}
	}
	return nil
}

// RunAll runs every scenario and joins the failures, so one broken model
// does not mask another.
func RunAll(scenarios []Scenario, opts Options) error {
	var errs []error
	for _, s := range scenarios {
		if err := Run(s, opts); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
