package fsutil_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/classwrap/pkg/fsutil"
)

func TestParseBackupMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    fsutil.BackupMode
		wantErr bool
	}{
		{in: "", want: fsutil.BackupModeSidecar},
		{in: "sidecar", want: fsutil.BackupModeSidecar},
		{in: "none", want: fsutil.BackupModeNone},
		{in: "git", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := fsutil.ParseBackupMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackupPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.vue.classwrap.bak", fsutil.BackupPath("a.vue", fsutil.BackupModeSidecar))
	assert.Empty(t, fsutil.BackupPath("a.vue", fsutil.BackupModeNone))
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("keeps first backup", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "a.tsx", "v1")

		created, err := fsutil.CreateBackup(ctx, path, cfg)
		require.NoError(t, err)
		assert.True(t, created)

		require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))
		created, err = fsutil.CreateBackup(ctx, path, cfg)
		require.NoError(t, err)
		assert.False(t, created)

		backup, err := os.ReadFile(path + fsutil.BackupSuffix)
		require.NoError(t, err)
		assert.Equal(t, "v1", string(backup))
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "a.tsx", "v1")
		for _, c := range []fsutil.BackupConfig{
			{Enabled: false, Mode: fsutil.BackupModeSidecar},
			{Enabled: true, Mode: fsutil.BackupModeNone},
		} {
			created, err := fsutil.CreateBackup(ctx, path, c)
			require.NoError(t, err)
			assert.False(t, created)
		}
		assert.NoFileExists(t, path+fsutil.BackupSuffix)
	})

	t.Run("missing original", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "a.tsx", "v1")
		require.NoError(t, os.Remove(path))

		created, err := fsutil.CreateBackup(ctx, path, cfg)
		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeFile(t, "a.astro", "original")

	restored, err := fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.False(t, restored)

	_, err = fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("rewritten"), 0o600))

	restored, err = fsutil.RestoreBackup(ctx, path, fsutil.BackupModeSidecar)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
	assert.NoFileExists(t, path+fsutil.BackupSuffix)
}
