package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boundedNumeric = regexp.MustCompile(`(?i)\bNUMERIC\s*\(`)

func TestMoneyColumnsKeepFullPrecision(t *testing.T) {
	files, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.False(t, boundedNumeric.Match(body), "%s declares a NUMERIC column with precision or scale", name)
	}
}

func TestUpMigrationsHaveDownMigrations(t *testing.T) {
	ups, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)

	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := fs.Stat(FS, down)
		assert.NoError(t, err, "missing %s", down)
	}
}
