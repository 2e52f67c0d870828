package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/errors"
)

func TestDefaultBalanceIsValid(t *testing.T) {
	b := config.DefaultBalance()
	require.NoError(t, b.Validate())
	assert.Equal(t, 10, b.BossInterval)
	assert.Equal(t, 3.5, b.SkillDamageScaling)
	assert.Equal(t, 0.5, b.RevivalHPPercent)
}

func TestLoadBalance_MissingFileReturnsDefaults(t *testing.T) {
	b, err := config.LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBalance(), b)
}

func TestLoadBalance_OverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	content := `
boss_interval: 5
monster_reply_delay: 250ms
player_stats:
  base_attack: 9
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b, err := config.LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 5, b.BossInterval)
	assert.Equal(t, 250*time.Millisecond, b.MonsterReplyDelay)
	assert.Equal(t, 9, b.PlayerStats.BaseAttack)
	// untouched keys fall back to defaults
	assert.Equal(t, 100, b.PlayerStats.BaseHP)
	assert.Equal(t, 3.5, b.SkillDamageScaling)
}

func TestLoadBalance_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("item_drop_chance: 2\nboss_interval: 0\n"), 0o600))

	_, err := config.LoadBalance(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "item_drop_chance")
	assert.Contains(t, err.Error(), "boss_interval")
}

func TestLoadBalance_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("boss_interval: [oops"), 0o600))

	_, err := config.LoadBalance(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance")
}
