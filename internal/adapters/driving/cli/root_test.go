package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "apimdocs", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "demo-mode"} {
		flag := rootCmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "%s flag should exist", name)
	}
}

func TestConfigureServices_InstallsServices(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	want := &Services{
		Pipeline: &mockPipelineRunner{},
		Search:   &mockSearchService{},
		Chat:     &mockChatService{},
	}
	setup = func(opts SetupOptions) (*Services, error) {
		return want, nil
	}
	defer func() { setup = nil }()

	err := configureServices(rootCmd, nil)

	require.NoError(t, err)
	assert.Same(t, want.Pipeline, pipelineRunner)
	assert.Same(t, want.Search, searchService)
	assert.Same(t, want.Chat, chatService)
}

func TestConfigureServices_PropagatesSetupFailure(t *testing.T) {
	setup = func(opts SetupOptions) (*Services, error) {
		return nil, errors.New("bad settings")
	}
	defer func() { setup = nil }()

	err := configureServices(rootCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuring services")
}

func TestConfigureServices_PassesFlagsThrough(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldConfig, oldDemo := configPath, demoMode
	configPath = "/tmp/config.toml"
	demoMode = true
	defer func() {
		configPath = oldConfig
		demoMode = oldDemo
	}()

	var got SetupOptions
	setup = func(opts SetupOptions) (*Services, error) {
		got = opts
		return &Services{}, nil
	}
	defer func() { setup = nil }()

	err := configureServices(rootCmd, nil)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/config.toml", got.ConfigPath)
	assert.True(t, got.DemoMode)
}

func TestConfigureServices_NoSetupIsNoop(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	setup = nil

	err := configureServices(rootCmd, nil)

	assert.NoError(t, err)
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"bogus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
