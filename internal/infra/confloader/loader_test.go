package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Application struct {
		Name string `koanf:"name"`
	} `koanf:"application"`
	Server struct {
		Port            string        `koanf:"port"`
		Addr            string        `koanf:"addr"`
		ShutdownTimeout time.Duration `koanf:"shutdowntimeout"`
		CORS            []string      `koanf:"cors"`
	} `koanf:"server"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func unmarshal(t *testing.T, l *Loader) testConfig {
	t.Helper()
	var cfg testConfig
	require.NoError(t, l.Unmarshal(&cfg))
	return cfg
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	require.NotNil(t, l)
	assert.Equal(t, DefaultEnvPrefix, l.envPrefix)
	assert.Empty(t, l.filePath)
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	assert.Equal(t, "TEST_", l.envPrefix)
	assert.Equal(t, "/path/to/config.yaml", l.filePath)
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
application:
  name: gitops-demo
server:
  port: 9090
`)

	l := NewLoader()
	require.NoError(t, l.LoadFile(path))

	cfg := unmarshal(t, l)
	assert.Equal(t, "gitops-demo", cfg.Application.Name)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	assert.Error(t, l.LoadFile("/nonexistent/config.yaml"))
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	assert.NoError(t, l.LoadFile(""))
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("GITOPS_DEMO_APPLICATION_NAME", "from-env")
	t.Setenv("GITOPS_DEMO_SERVER_PORT", "9090")

	l := NewLoader()
	require.NoError(t, l.LoadEnv())

	cfg := unmarshal(t, l)
	assert.Equal(t, "from-env", cfg.Application.Name)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_SERVER_PORT", "9090")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	require.NoError(t, l.LoadEnv())

	assert.Equal(t, "9090", unmarshal(t, l).Server.Port)
}

func TestLoader_LoadEnv_Ignore(t *testing.T) {
	t.Setenv("GITOPS_DEMO_SERVER", "localhost:9090")
	t.Setenv("GITOPS_DEMO_SERVER_PORT", "9191")

	l := NewLoader(WithEnvIgnore("GITOPS_DEMO_SERVER"))

	var cfg testConfig
	require.NoError(t, l.Load(&cfg))
	assert.Equal(t, "9191", cfg.Server.Port)
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	require.NoError(t, l.LoadMap(map[string]any{
		"server.addr": "localhost:3000",
		"debug":       true,
	}))

	assert.Equal(t, "localhost:3000", unmarshal(t, l).Server.Addr)
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
application:
  name: from-file
server:
  port: "7070"
`)
	t.Setenv("GITOPS_DEMO_APPLICATION_NAME", "from-env")

	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	require.NoError(t, l.Load(&cfg))

	assert.Equal(t, "from-env", cfg.Application.Name, "env should override file")
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
`)

	var cfg testConfig
	cfg.Application.Name = "demo"
	cfg.Server.ShutdownTimeout = 30 * time.Second

	l := NewLoader(WithConfigFile(path))
	require.NoError(t, l.Load(&cfg))

	assert.Equal(t, "demo", cfg.Application.Name)
	assert.Equal(t, "9090", cfg.Server.Port, "numeric yaml should decode into a string field")
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoader_Load_DurationAndSlice(t *testing.T) {
	t.Setenv("GITOPS_DEMO_SERVER_SHUTDOWNTIMEOUT", "5s")
	t.Setenv("GITOPS_DEMO_SERVER_CORS", "https://a.example,https://b.example")

	var cfg testConfig
	require.NoError(t, NewLoader().Load(&cfg))

	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS)
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	var cfg testConfig
	err := NewLoader(WithConfigFile(path)).Load(&cfg)
	assert.Error(t, err)
}

func TestMapProvider_ReadBytes(t *testing.T) {
	_, err := mapProvider{}.ReadBytes()
	assert.ErrorIs(t, err, ErrReadBytesNotSupported)
}

func TestLoader_Load_OverridesWin(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"7070\"\n")
	t.Setenv("GITOPS_DEMO_SERVER_PORT", "7171")

	l := NewLoader(WithConfigFile(path), WithOverrides(map[string]any{
		"server.port":      "7272",
		"application.name": "from-flag",
	}))

	var cfg testConfig
	require.NoError(t, l.Load(&cfg))

	assert.Equal(t, "7272", cfg.Server.Port)
	assert.Equal(t, "from-flag", cfg.Application.Name)
}

func TestLoader_Load_OverrideSlice(t *testing.T) {
	l := NewLoader(WithOverrides(map[string]any{
		"server.cors": "https://a.example,https://b.example",
	}))

	var cfg testConfig
	require.NoError(t, l.Load(&cfg))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS)
}

func TestLoader_Load_YAMLListUnchanged(t *testing.T) {
	path := writeConfig(t, "server:\n  cors:\n    - https://a.example\n    - https://b.example\n")

	var cfg testConfig
	require.NoError(t, NewLoader(WithConfigFile(path)).Load(&cfg))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORS)
}

func TestMapProvider_ReadUnflattens(t *testing.T) {
	m, err := mapProvider{"server.port": "1", "debug": true}.Read()
	require.NoError(t, err)

	server, ok := m["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", server["port"])
	assert.Equal(t, true, m["debug"])
}
