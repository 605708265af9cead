// Package hilbert models discrete quantum configuration spaces: the set of
// valid site-occupation vectors a variational machine is evaluated on.
//
// What:
//
//   - Space is the collaborator interface consumed by the machine and check
//     packages: site count, allowed per-site values, deterministic random
//     sampling, and sparse in-place configuration updates.
//   - Spin is a chain of spin-½ sites with local values {-1, +1}, optionally
//     constrained to a fixed total magnetization (WithTotalSz).
//   - Boson is a chain of bosonic sites with occupations {0, …, MaxOccupation}.
//
// Why:
//
//   - Consistency checks need real spaces to draw valid configurations from
//     and to apply reference updates against; both calibration spaces are
//     small, exact, and allocation-light.
//
// Randomness:
//
//   - All sampling flows through an explicit *rand.Rand supplied by the
//     caller. NewEngine(seed) builds one deterministically; seed==0 selects
//     a fixed default so reproducible zero-config runs stay reproducible.
//
// Errors:
//
//   - ErrInvalidSize: space constructed with fewer than one site.
//   - ErrInvalidTotalSz: magnetization constraint unsatisfiable for the size.
//   - ErrInvalidOccupation: bosonic occupation bound below one.
//   - ErrDimensionMismatch: configuration length differs from Size().
//   - ErrChangeShape: site-index and value sequences differ in length.
//   - ErrSiteOutOfRange: site index outside [0, Size()).
//   - ErrDuplicateSite: the same site listed twice in one change-set.
//   - ErrValueNotLocal: replacement value outside the local-value set.
//   - ErrNilEngine: sampling requested without a random engine.
package hilbert
