package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/componentry/barrelgen/pkg/barrel"
)

func TestServerInMemoryTransportToolsList(t *testing.T) {
	t.Parallel()

	srv := NewServer()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	defer func() {
		_ = session.Close()
	}()

	toolsResult, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, toolsResult)

	toolNames := make([]string, 0, len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		toolNames = append(toolNames, tool.Name)
	}

	assert.Equal(t, []string{ToolNameGenerate}, toolNames)

	for _, tool := range toolsResult.Tools {
		assert.NotNil(t, tool.InputSchema, "tool %s missing input schema", tool.Name)
	}

	cancel()
	<-serverDone
}

func TestServerInMemoryTransportCallGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := "export const Card = () => null;\nexport interface CardProps {}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.tsx"), []byte(src), 0o644))

	srv := NewServer()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	defer func() {
		_ = session.Close()
	}()

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name: ToolNameGenerate,
		Arguments: map[string]any{
			"dir":     dir,
			"dry_run": true,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	var res barrel.Result

	require.NoError(t, json.Unmarshal([]byte(text.Text), &res))
	assert.Contains(t, res.Output, `export { Card, type CardProps } from "./card";`)
	assert.False(t, res.Written)

	cancel()
	<-serverDone
}

func TestServerInMemoryTransportCallGenerateError(t *testing.T) {
	t.Parallel()

	srv := NewServer()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	defer func() {
		_ = session.Close()
	}()

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      ToolNameGenerate,
		Arguments: map[string]any{"dir": ""},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	cancel()
	<-serverDone
}
