package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_CommandTree(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "qcdn", cmd.Name())

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"serve", "web", "upload", "download", "tag", "rm", "ls", "ping"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, flag := range []string{"config", "url", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestLsCmd_Subcommands(t *testing.T) {
	cmd := newLsCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Contains(t, names, "dirs")
	assert.Contains(t, names, "files")
	assert.Contains(t, names, "versions")
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd()

	require.NotNil(t, cmd.Flags().Lookup("data"))
	require.NotNil(t, cmd.Flags().Lookup("bind"))
}

func TestWebCmd_Flags(t *testing.T) {
	cmd := newWebCmd()

	require.NotNil(t, cmd.Flags().Lookup("data"))
	require.NotNil(t, cmd.Flags().Lookup("bind"))
	require.NotNil(t, cmd.Flags().Lookup("mode"))
}

func TestUploadCmd_Flags(t *testing.T) {
	cmd := newUploadCmd()

	require.NotNil(t, cmd.Flags().Lookup("dir"))
	require.NotNil(t, cmd.Flags().Lookup("file-version"))
	require.NotNil(t, cmd.Flags().Lookup("media-type"))
}

func TestFormatSize(t *testing.T) {
	cases := map[int64]string{
		512:               "512 B",
		2048:              "2.0 KB",
		3 * 1024 * 1024:   "3.0 MB",
		5368709120:        "5.0 GB",
		2199023255552 * 2: "4.0 TB",
	}

	for in, want := range cases {
		assert.Equal(t, want, formatSize(in))
	}
}
