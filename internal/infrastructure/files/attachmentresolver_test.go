package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tansyhq/tansy/internal/shared/logger"
)

func TestDirAttachmentResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"10_contract.pdf", "10_invoice.pdf", "11_contract.pdf", "unrelated.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	resolver := NewDirAttachmentResolver(dir, logger.NewLogger())

	t.Run("matches only the entity prefix", func(t *testing.T) {
		resolved, err := resolver.Resolve(10)
		require.NoError(t, err)
		require.Len(t, resolved, 2)

		names := []string{resolved[0].OriginalName, resolved[1].OriginalName}
		assert.ElementsMatch(t, []string{"contract.pdf", "invoice.pdf"}, names)
	})

	t.Run("no files for unknown entity", func(t *testing.T) {
		resolved, err := resolver.Resolve(99)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("missing directory is not an error", func(t *testing.T) {
		missing := NewDirAttachmentResolver(filepath.Join(dir, "nope"), logger.NewLogger())
		resolved, err := missing.Resolve(10)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})

	t.Run("empty dir config disables attachments", func(t *testing.T) {
		disabled := NewDirAttachmentResolver("", logger.NewLogger())
		resolved, err := disabled.Resolve(10)
		require.NoError(t, err)
		assert.Empty(t, resolved)
	})
}
