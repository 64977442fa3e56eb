package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bastiangx/nametag/pkg/config"
	"github.com/bastiangx/nametag/pkg/tagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, opts tagger.Options) (*Server, *bytes.Buffer) {
	t.Helper()
	tg := tagger.New(opts)
	require.NoError(t, tg.Add("Johnson Corp", "johnson"))

	out := &bytes.Buffer{}
	return &Server{
		tagger:     tg,
		reader:     bufio.NewReader(strings.NewReader("")),
		writer:     out,
		maxLineLen: 64,
		done:       make(chan struct{}),
	}, out
}

func TestHandleTag(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	srv.handleRequest(`{"command": "tag", "line": "ask johnson now"}`)

	var resp TagResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))

	require.Equal(t, 1, resp.Count)
	m := resp.Matches[0]
	assert.Equal(t, 4, m.Start)
	assert.Equal(t, 11, m.End)
	assert.Equal(t, "johnson", m.Text)
	assert.True(t, m.Strict)
	assert.Equal(t, "Exact", m.Type)
	assert.Equal(t, "Johnson Corp", m.Label)
}

func TestHandleTagNoMatches(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	srv.handleRequest(`{"command": "tag", "line": "nothing here"}`)

	var resp TagResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Matches)
}

func TestHandleTagLineTooLong(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	long := strings.Repeat("x", 65)
	srv.handleRequest(`{"command": "tag", "line": "` + long + `"}`)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 400, resp.Status)
}

func TestHandleHealth(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	srv.handleRequest(`{"command": "health"}`)
	assert.JSONEq(t, `{"status": "ok"}`, out.String())
}

func TestHandleUnknownCommand(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	srv.handleRequest(`{"command": "bogus"}`)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 400, resp.Status)
}

func TestHandleInvalidJSON(t *testing.T) {
	srv, out := testServer(t, tagger.Options{})

	srv.handleRequest(`{not json`)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, 400, resp.Status)
}

func TestNewServerUsesConfigLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLineLen = 321

	srv := NewServer(tagger.New(tagger.Options{}), cfg, "")
	assert.Equal(t, 321, srv.maxLineLen)
}
