// Package check is the consistency verifier for variational machines: a
// battery of numerical cross-checks that confirm a machine.Machine's
// log-amplitude, gradient, incremental updates, and persisted parameters
// agree with independently derived ground truth.
//
// What:
//
//   - Shape: the machine's visible-unit count matches its space's site count.
//   - Parameters: a random complex vector survives a set/get round trip
//     under the machine's holomorphy-aware equality.
//   - Persistence: the same round trip through Save and Load, with the
//     parameters zeroed in between and the scratch directory removed on
//     every exit path.
//   - Gradient: the analytic DerLog against a central finite difference of
//     LogVal over the parameters, real parts under a combined
//     relative+absolute tolerance, imaginary parts up to a global phase.
//   - LogValDiff: incremental log-amplitude differences for two-site swaps
//     against full recomputation after the space applies the same edit, plus
//     the empty change-set identity.
//
// Why:
//
//   - A machine whose gradient disagrees with finite differences, or whose
//     incremental updates drift from recomputation, silently corrupts any
//     computation built on top of it. These checks pinpoint the offending
//     model and law before that happens.
//
// Determinism:
//
//   - All checks are deterministic given Options' seeds: configuration
//     sampling uses a fresh engine per check (EngineSeed) and parameter
//     draws use the ambient engine (AmbientSeed). A failure is never
//     transient, so there are no retries.
//
// Errors:
//
//   - ErrBadOptions: an Options field is out of its valid range.
//   - ErrNilMachine: a scenario carries no machine.
//   - ErrToleranceExceeded: a numerical comparison exceeded its tolerance;
//     the concrete *ToleranceError names the check and the magnitudes.
//   - machine.ErrInvalidModel is passed through when a model reports zero
//     parameters or an inconsistent space binding.
package check
