package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/llm"
)

func dbCommand(t *testing.T, flag string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().String("db", "", "")
	if flag != "" {
		require.NoError(t, c.Flags().Set("db", flag))
	}
	return c
}

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOCABQUIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))

	t.Run("flag wins", func(t *testing.T) {
		withConfig(t, &config.Config{DBPath: filepath.Join(dir, "cfg", "a.db")})
		want := filepath.Join(dir, "flag", "b.db")
		got, err := resolveDBPath(dbCommand(t, want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("config path", func(t *testing.T) {
		want := filepath.Join(dir, "cfg", "a.db")
		withConfig(t, &config.Config{DBPath: want})
		got, err := resolveDBPath(dbCommand(t, ""))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("default location", func(t *testing.T) {
		withConfig(t, &config.Config{})
		got, err := resolveDBPath(dbCommand(t, ""))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "xdg", "vocabquiz", "vocabquiz.db"), got)
	})
}

func TestHandlerConfigs_ApplyLLMTimeout(t *testing.T) {
	genCfg, sentCfg := handlerConfigs(llm.Config{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, genCfg.Timeout)
	assert.Equal(t, 5*time.Second, sentCfg.Timeout)

	// No provider resolved: the handler defaults still bound the call.
	genCfg, sentCfg = handlerConfigs(llm.Config{})
	assert.Positive(t, genCfg.Timeout)
	assert.Positive(t, sentCfg.Timeout)
}

func TestRedirectLogs_ReturnsFileToClose(t *testing.T) {
	dir := t.TempDir()
	withConfig(t, &config.Config{})
	t.Cleanup(func() { config.SetLogOutput(os.Stderr) })

	f := redirectLogs(dbCommand(t, filepath.Join(dir, "vocabquiz.db")))
	require.NotNil(t, f)
	assert.Equal(t, filepath.Join(dir, "vocabquiz.log"), f.Name())
	assert.NoError(t, f.Close())
}
