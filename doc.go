// Package wavecheck verifies the mathematical self-consistency of
// variational wavefunction models over discrete quantum configuration
// spaces.
//
// 🚀 What is wavecheck?
//
//	A deterministic, numerics-first library that brings together:
//		• Hilbert spaces: spin-½ chains (with magnetization constraints) and bosons
//		• The Machine contract: log-amplitude, gradient, incremental diff, persistence
//		• Calibration machines: complex RBM, multi-valued RBM, two-body Jastrow
//		• The consistency verifier: gradient vs. finite difference, diff vs.
//		  recomputation, parameter and persistence round trips, shape checks
//
// ✨ Why choose wavecheck?
//
//   - Reproducible – every random draw flows through an explicit seeded engine
//   - Rock-solid guarantees – sentinel errors, no panics on user input, no logging
//   - Honest numerics – combined relative+absolute tolerances, phase-aware
//     comparison of complex log-amplitudes
//   - Extensible – implement machine.Machine and register a check.Scenario;
//     the verifier does the rest
//
// Everything is organized under three subpackages:
//
//	hilbert/ — configuration spaces: site counts, local states, sampling, updates
//	machine/ — the variational machine contract, parameter codec and models
//	check/   — the numerical consistency verifier and its scenario battery
//
// Quick sketch:
//
//	hi, _ := hilbert.NewSpin(4, hilbert.WithTotalSz(0))
//	m, _  := machine.NewRbmSpin(hi, machine.WithAlpha(1))
//	err   := check.Run(check.Scenario{Name: "RbmSpin 4-site spin", Machine: m},
//	                   check.DefaultOptions())
//
// A nil error means the model's analytic gradient, incremental updates and
// persisted parameters all agree with independently recomputed ground truth.
package wavecheck
