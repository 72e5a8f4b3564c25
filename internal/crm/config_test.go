// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm_test

import (
	"os"
	"path/filepath"
	"testing"

	"code.hybscloud.com/fnx/internal/crm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CRM_DB", "")
	t.Setenv("CRM_ADDR", "")
	cfg, err := crm.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, crm.DefaultConfig(), cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: /var/lib/crm.db\nundo_depth: 3\nlogging:\n  level: debug\n"), 0o644))
	t.Setenv("CRM_DB", "")
	t.Setenv("CRM_ADDR", ":9090")

	cfg, err := crm.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/crm.db", cfg.Database)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 3, cfg.UndoDepth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	t.Setenv("CRM_DB", "override.db")
	cfg, err = crm.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "override.db", cfg.Database)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("undo_depth: [nope"), 0o644))
	_, err := crm.LoadConfig(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := crm.NewLogger(crm.LoggingConfig{Level: "warn", Format: "console"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	verbose, err := crm.NewLogger(crm.LoggingConfig{Level: "warn"}, true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))

	_, err = crm.NewLogger(crm.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
