package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dusk-indust/sowbuilder/internal/sow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sow.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRun_Version(t *testing.T) {
	require.NoError(t, run(context.Background(), []string{"version"}))
}

func TestRender_ToFile(t *testing.T) {
	in := writeInput(t, "project_name: Acme Site\ngoal: Launch site\ndeliverables: \"Homepage\\nContact page\"\ntimeline_weeks: 4\n")
	out := filepath.Join(t.TempDir(), "sow.md")

	require.NoError(t, run(context.Background(), []string{"render", "-input", in, "-o", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	md := string(data)
	assert.True(t, strings.HasPrefix(md, "# Statement of Work (SOW) — Acme Site"))
	assert.Contains(t, md, "- Homepage")
	assert.Contains(t, md, "Target timeline: ~4 week(s)")
}

func TestRender_ValidationError(t *testing.T) {
	in := writeInput(t, "project_name: Acme\ngoal: G\ndeliverables: D\ntimeline_weeks: 105\n")

	err := run(context.Background(), []string{"render", "-input", in, "-o", filepath.Join(t.TempDir(), "x.md")})
	require.Error(t, err)
	assert.ErrorIs(t, err, sow.ErrValidation)
}

func TestRender_RequiresInput(t *testing.T) {
	err := run(context.Background(), []string{"render"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

// TestServe_Stdio runs "serve -stdio" over in-process pipes and checks the
// tools answer and the server reports the binary's version.
func TestServe_Stdio(t *testing.T) {
	serverIn, clientOut := io.Pipe()
	clientIn, serverOut := io.Pipe()

	oldIn, oldOut, oldVersion := stdin, stdout, version
	stdin, stdout, version = serverIn, serverOut, "9.9.9-test"
	t.Cleanup(func() { stdin, stdout, version = oldIn, oldOut, oldVersion })

	configDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, []string{"serve", "-stdio", "-config", configDir}) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &mcp.IOTransport{Reader: clientIn, Writer: clientOut}, nil)
	require.NoError(t, err)
	defer session.Close()

	assert.Equal(t, "9.9.9-test", session.InitializeResult().ServerInfo.Version)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "open_builder",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve -stdio did not return after cancel")
	}
}
