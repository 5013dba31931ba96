package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerReturnsNonNil(t *testing.T) {
	t.Parallel()

	srv := NewServer()
	require.NotNil(t, srv)
}

func TestNewServerToolsRegistered(t *testing.T) {
	t.Parallel()

	srv := NewServer()

	tools := srv.ListToolNames()
	assert.Len(t, tools, 1)
	assert.Contains(t, tools, ToolNameGenerate)
}

func TestHandleGenerateRequiresDir(t *testing.T) {
	t.Parallel()

	result, _, err := handleGenerate(context.Background(), nil, GenerateInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleGenerateDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "export const Card = () => null;\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.tsx"), []byte(src), 0o644))

	result, output, err := handleGenerate(context.Background(), nil, GenerateInput{
		Dir:    dir,
		DryRun: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	assert.NotNil(t, output.Data)

	_, statErr := os.Stat(filepath.Join(dir, "index.ts"))
	assert.True(t, os.IsNotExist(statErr))
}
