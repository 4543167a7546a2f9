package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Logging.Level = "debug"
	cfg.Accounts = []SeedAccount{
		{Holder: "Alice", InitialDeposit: "1000"},
		{Holder: "Bob", InitialDeposit: "500.25"},
	}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", got.Bank.Name)
	assert.Equal(t, "debug", got.Logging.Level)
	require.Len(t, got.Accounts, 2)
	assert.Equal(t, "Bob", got.Accounts[1].Holder)

	amount, err := got.Accounts[1].Amount()
	require.NoError(t, err)
	assert.Equal(t, "500.25", amount.StringFixed(2))
}

func TestDefaults(t *testing.T) {
	cfg := Default("")

	assert.Equal(t, "Minibank", cfg.Bank.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Accounts)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("bank:\n  name: Partial\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Partial", cfg.Bank.Name)
	assert.Equal(t, "info", cfg.Logging.Level, "unset logging level keeps the default")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("bank: [unterminated\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSeedAccountAmount_Invalid(t *testing.T) {
	_, err := SeedAccount{Holder: "Alice", InitialDeposit: "lots"}.Amount()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alice")
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Accounts = []SeedAccount{{Holder: "Alice", InitialDeposit: "1000"}}
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "level: info")
	assert.Contains(t, contents, "holder: Alice")
	assert.Contains(t, contents, "initial_deposit:")
	assert.Contains(t, contents, "1000")
}
