// Package machine defines the variational machine contract — the capability
// set every parametric wavefunction model must expose — together with the
// flat-parameter codec, file persistence, and three calibration machines.
//
// What:
//
//   - Machine is the contract: parameter accessors, log-amplitude
//     evaluation (LogVal), the parameter gradient of the log-amplitude
//     (DerLog), incremental log-amplitude updates over sparse site changes
//     (LogValDiff), save/load, and the space binding.
//   - Holomorphy tags an instance as fully complex (Holomorphic) or
//     real-parametrized (RealProjected) and supplies the matching equality
//     rule for parameter vectors.
//   - Change is a sparse configuration edit: parallel site-index and
//     replacement-value sequences.
//   - RbmSpin: complex restricted Boltzmann machine over spin-valued sites.
//   - RbmMultival: complex RBM over arbitrary finite local-value sets,
//     via one-hot encoding of each site.
//   - Jastrow: real two-body machine, log ψ = Σ_{i<j} J_ij·vᵢ·vⱼ.
//
// Why:
//
//   - The consistency verifier (package check) exercises models only through
//     this contract; anything implementing Machine can be verified without
//     the verifier knowing its internals.
//
// Parameters:
//
//   - Parameters()/SetParameters() move a flat []complex128 of length NPar().
//     Assignment is all-or-nothing: a wrong-length vector is rejected before
//     any internal state changes. RealProjected machines silently drop the
//     imaginary part on assignment and report zero imaginary parts on read.
//
// Errors:
//
//   - ErrInvalidModel: unusable construction (nil space, zero parameters).
//   - ErrInvalidArgument: shape or range violation in a configuration,
//     parameter vector, change-set, or persisted file.
package machine
