package entrypoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordlist/internal/config"
)

func TestOpenDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	auditDir := filepath.Join(tmpDir, "audit")

	cfg := &config.Config{
		Database: config.Database{Path: filepath.Join(tmpDir, "wordlist.db"), SchemaVersion: 1},
		Audit:    config.Audit{Dir: auditDir},
	}

	auditor := NewAuditor(cfg)
	require.NotNil(t, auditor)

	db, err := OpenDatabase(cfg, auditor)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg.Database.SchemaVersion = 3
	db, err = OpenDatabase(cfg, auditor)
	require.NoError(t, err)
	defer db.Close()

	version, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 3, version)

	snapshots, err := os.ReadDir(auditDir)
	require.NoError(t, err)
	assert.Len(t, snapshots, 1, "upgrade on open should snapshot the dropped rows")
}

func TestOpenDatabase_RejectsDowngrade(t *testing.T) {
	cfg := &config.Config{
		Database: config.Database{Path: filepath.Join(t.TempDir(), "wordlist.db"), SchemaVersion: 2},
	}

	assert.Nil(t, NewAuditor(cfg))

	db, err := OpenDatabase(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg.Database.SchemaVersion = 1
	_, err = OpenDatabase(cfg, nil)
	assert.Error(t, err)
}
