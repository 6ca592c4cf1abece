package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/search"
	"github.com/ironsheep/name-list-tools/internal/viewer"
	"github.com/ironsheep/name-list-tools/internal/webui"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServe_StopsAndClosesBrowser(t *testing.T) {
	path := filepath.Join(t.TempDir(), csvstore.DefaultFileName)
	require.NoError(t, csvstore.Write(path, []string{"Alice"}))

	browser := search.NewBrowser(search.DefaultOptions(), nil)
	app := viewer.NewApp(path, browser, nil)
	require.NoError(t, app.Load())
	srv, err := webui.New(app, nil)
	require.NoError(t, err)

	addr := freeAddr(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv, browser, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return")
	}

	_, err = browser.Search(context.Background(), "Alice")
	assert.ErrorIs(t, err, search.ErrClosed)
}

func TestRunViewer_InvalidAddr(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--addr", "not an address"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAddr")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "name-viewer dev")
}
