package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	t.Run("walks up to the directory holding mintdrop.toml", func(t *testing.T) {
		root := t.TempDir()
		writeDropfile(t, root, "")
		nested := filepath.Join(root, "data", "exports")
		require.NoError(t, os.MkdirAll(nested, 0755))

		t.Chdir(nested)

		found, err := FindProjectRoot()
		require.NoError(t, err)

		// Normalize symlinks (t.TempDir goes through /var on some systems)
		wantResolved, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		foundResolved, err := filepath.EvalSymlinks(found)
		require.NoError(t, err)
		assert.Equal(t, wantResolved, foundResolved)
	})

	t.Run("errors outside a project", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := FindProjectRoot()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mintdrop.toml not found")
	})
}

func TestProvider(t *testing.T) {
	t.Run("resolves the runtime config from viper", func(t *testing.T) {
		root := t.TempDir()
		writeDropfile(t, root, `
[drop]
contract = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
recipients = "season2.csv"
`)

		v := viper.New()
		v.Set("project_root", root)
		v.Set("debug", true)
		v.Set("timeout", "30s")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".mintdrop"), cfg.DataDir)
		assert.True(t, cfg.Debug)
		assert.False(t, cfg.NonInteractive)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "season2.csv", cfg.Drop.RecipientsFile)
		assert.Equal(t, "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB", cfg.Drop.Contract)
	})

	t.Run("csv flag overrides the configured file", func(t *testing.T) {
		root := t.TempDir()
		writeDropfile(t, root, `
[drop]
recipients = "season2.csv"
`)

		v := viper.New()
		v.Set("project_root", root)
		v.Set("csv", "override.csv")

		cfg, err := Provider(v)
		require.NoError(t, err)
		assert.Equal(t, "override.csv", cfg.Drop.RecipientsFile)
	})

	t.Run("falls back to the working directory without a project", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		v := viper.New()

		cfg, err := Provider(v)
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, wd, cfg.ProjectRoot)
	})
}

func TestSetupViper(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		v := SetupViper(t.TempDir(), &cobra.Command{})

		assert.Equal(t, time.Duration(0), v.GetDuration("timeout"))
		assert.False(t, v.GetBool("debug"))
		assert.False(t, v.GetBool("non_interactive"))
		assert.NotEmpty(t, v.GetString("project_root"))
	})

	t.Run("reads prefixed environment variables", func(t *testing.T) {
		t.Setenv("MINTDROP_DEBUG", "true")

		v := SetupViper(t.TempDir(), &cobra.Command{})
		assert.True(t, v.GetBool("debug"))
	})

	t.Run("binds command flags", func(t *testing.T) {
		cmd := &cobra.Command{}
		cmd.Flags().String("csv", "", "")
		require.NoError(t, cmd.Flags().Set("csv", "bound.csv"))

		v := SetupViper(t.TempDir(), cmd)
		assert.Equal(t, "bound.csv", v.GetString("csv"))
	})
}
