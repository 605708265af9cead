package machine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varqlab/wavecheck/hilbert"
	"github.com/varqlab/wavecheck/machine"
)

func spinSpace(t *testing.T, n int) *hilbert.Spin {
	t.Helper()
	sp, err := hilbert.NewSpin(n)
	require.NoError(t, err)
	return sp
}

// TestSaveLoadRoundTrip verifies that a machine restores exactly the
// parameters it persisted, with a zero vector assigned in between so Load
// cannot pass as a no-op.
func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := machine.NewRbmSpin(spinSpace(t, 4))
	require.NoError(t, err)
	require.NoError(t, machine.InitRandomParameters(m, 77, 0.5))
	want := m.Parameters()

	path := filepath.Join(t.TempDir(), "test.wf")
	require.NoError(t, m.Save(path))
	require.NoError(t, m.SetParameters(make([]complex128, m.NPar())))
	require.NoError(t, m.Load(path))
	require.Equal(t, want, m.Parameters())
}

// TestLoadRejectsWrongLength verifies that a file persisted by a different
// model is rejected without touching current parameters.
func TestLoadRejectsWrongLength(t *testing.T) {
	small, err := machine.NewJastrow(spinSpace(t, 3))
	require.NoError(t, err)
	require.NoError(t, machine.InitRandomParameters(small, 5, 0.5))

	path := filepath.Join(t.TempDir(), "small.wf")
	require.NoError(t, small.Save(path))

	big, err := machine.NewRbmSpin(spinSpace(t, 4))
	require.NoError(t, err)
	require.NoError(t, machine.InitRandomParameters(big, 6, 0.5))
	want := big.Parameters()

	require.ErrorIs(t, big.Load(path), machine.ErrInvalidArgument)
	require.Equal(t, want, big.Parameters())
}

// TestLoadRejectsMalformedFiles verifies the persistence failure modes.
func TestLoadRejectsMalformedFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := machine.LoadParameters(filepath.Join(dir, "missing.wf"))
	require.Error(t, err)

	garbled := filepath.Join(dir, "garbled.wf")
	require.NoError(t, os.WriteFile(garbled, []byte("{unclosed: [\n"), 0o644))
	_, err = machine.LoadParameters(garbled)
	require.ErrorIs(t, err, machine.ErrBadParamFile)

	foreign := filepath.Join(dir, "foreign.wf")
	require.NoError(t, os.WriteFile(foreign, []byte("format: someone/else\nn_par: 0\n"), 0o644))
	_, err = machine.LoadParameters(foreign)
	require.ErrorIs(t, err, machine.ErrBadParamFile)

	truncated := filepath.Join(dir, "truncated.wf")
	require.NoError(t, os.WriteFile(truncated, []byte(
		"format: wavecheck/params/v1\nn_par: 3\nreal: [1.0, 2.0]\nimag: [0.0, 0.0, 0.0]\n"), 0o644))
	_, err = machine.LoadParameters(truncated)
	require.ErrorIs(t, err, machine.ErrBadParamFile)
}

// TestSaveLoadHelpersRoundTrip verifies the raw helpers independent of any
// machine.
func TestSaveLoadHelpersRoundTrip(t *testing.T) {
	want := []complex128{complex(1.5, -0.25), complex(0, 3), complex(-2, 0)}
	path := filepath.Join(t.TempDir(), "raw.wf")
	require.NoError(t, machine.SaveParameters(path, want))

	got, err := machine.LoadParameters(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestInitRandomParameters verifies seeded initialization is deterministic
// and respects the real projection.
func TestInitRandomParameters(t *testing.T) {
	a, err := machine.NewRbmSpin(spinSpace(t, 4))
	require.NoError(t, err)
	b, err := machine.NewRbmSpin(spinSpace(t, 4))
	require.NoError(t, err)

	require.NoError(t, machine.InitRandomParameters(a, 1232, 0.03))
	require.NoError(t, machine.InitRandomParameters(b, 1232, 0.03))
	require.Equal(t, a.Parameters(), b.Parameters())

	require.NoError(t, machine.InitRandomParameters(b, 1233, 0.03))
	require.NotEqual(t, a.Parameters(), b.Parameters())

	require.ErrorIs(t, machine.InitRandomParameters(a, 1, 0), machine.ErrInvalidArgument)

	j, err := machine.NewJastrow(spinSpace(t, 4))
	require.NoError(t, err)
	require.NoError(t, machine.InitRandomParameters(j, 9, 0.1))
	for _, z := range j.Parameters() {
		require.Zero(t, imag(z))
	}
}
