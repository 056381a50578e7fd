package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		flags := &rootFlags{logLevel: "info", logFormat: "json"}
		log, closeLog, err := flags.logger(buf)
		require.NoError(t, err)
		defer closeLog()

		log.Debug().Msg("hidden")
		log.Info().Str("view", "About").Msg("view changed")
		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), `"view":"About"`)
		require.Contains(t, buf.String(), `"level":"info"`)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "duitseg.log")
		flags := &rootFlags{logLevel: "debug", logFormat: "console", logFile: path}
		log, closeLog, err := flags.logger(nil)
		require.NoError(t, err)
		log.Debug().Msg("to file")
		require.NoError(t, closeLog())

		buf, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(buf), "to file")
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := (&rootFlags{logLevel: "loud", logFormat: "json"}).logger(&bytes.Buffer{})
		require.Error(t, err)

		_, _, err = (&rootFlags{logLevel: "info", logFormat: "xml"}).logger(&bytes.Buffer{})
		require.ErrorContains(t, err, "unknown log format")
	})
}

func TestRootTheme(t *testing.T) {
	t.Parallel()

	theme, err := (&rootFlags{}).theme()
	require.NoError(t, err)
	require.Equal(t, "light", theme.Name)

	_, err = (&rootFlags{themePath: filepath.Join(t.TempDir(), "none.yaml")}).theme()
	require.Error(t, err)
}
