package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrenciesCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("should mark the configured currency", func(t *testing.T) {
		app, _, out := setupTestAppWithMockBusinessAPI(t)

		err := NewCurrenciesCommand(app, "").Execute(ctx, nil)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 9)
		assert.True(t, strings.HasPrefix(lines[0], "CODE"))
		for _, line := range lines[1:] {
			line = strings.TrimRight(line, " ")
			if strings.HasPrefix(line, "GBP") {
				assert.True(t, strings.HasSuffix(line, "*"), line)
			} else {
				assert.False(t, strings.HasSuffix(line, "*"), line)
			}
		}
	})

	t.Run("should write JSON", func(t *testing.T) {
		app, _, out := setupTestAppWithMockBusinessAPI(t)

		err := NewCurrenciesCommand(app, "json").Execute(ctx, nil)

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"code": "TND"`)
		assert.Contains(t, out.String(), `"symbol": "DT"`)
	})
}
