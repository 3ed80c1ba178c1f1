package limits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/shaderlink/link"
)

func writeLimitsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverlaysOnlyNonZeroFields(t *testing.T) {
	path := writeLimitsFile(t, `
[limits]
max_varying = 8
`)

	ctx, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, ctx.MaxVarying)
	require.Equal(t, link.DefaultContext().MaxTextureImageUnits, ctx.MaxTextureImageUnits)
}

func TestLoad_ProfileStrictES(t *testing.T) {
	path := writeLimitsFile(t, `profile = "strict-es"`)

	ctx, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, link.ProfileStrictES, ctx.Profile)
}

func TestLoad_DefaultProfileIsCompatibility(t *testing.T) {
	path := writeLimitsFile(t, `[limits]
max_draw_buffers = 4
`)

	ctx, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, link.ProfileCompatibility, ctx.Profile)
}

func TestLoad_UnknownProfileFails(t *testing.T) {
	path := writeLimitsFile(t, `profile = "nonsense"`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}
