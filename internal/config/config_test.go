package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/toast"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Address() != "localhost:3000" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.Toast.MaxToasts != DefaultMaxToasts || cfg.Toast.Position != "top-right" {
		t.Errorf("Toast = %+v", cfg.Toast)
	}
	if cfg.Export.Output != DefaultOutput {
		t.Errorf("Export.Output = %q, want %q", cfg.Export.Output, DefaultOutput)
	}
	if cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish.Region = %q", cfg.Publish.Region)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if errors.Code(err) != "E141" {
		t.Fatalf("missing config: got %v, want E141", err)
	}

	writeConfig(t, tmpDir, `{
  "server": {"host": "0.0.0.0", "port": 8080},
  "live": {"heartbeatInterval": "5s"},
  "toast": {"maxToasts": 3, "position": "bottom-left"},
  "log": {"level": "debug", "format": "json"},
  "export": {"output": "site"},
  "publish": {"bucket": "docs", "prefix": "ui/"}
}
`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
	if cfg.OutputPath() != filepath.Join(tmpDir, "site") {
		t.Errorf("OutputPath() = %q", cfg.OutputPath())
	}
	if cfg.Publish.Bucket != "docs" || cfg.Publish.Prefix != "ui/" || cfg.Publish.Region != DefaultRegion {
		t.Errorf("Publish = %+v", cfg.Publish)
	}

	lc, err := cfg.LiveConfig()
	if err != nil {
		t.Fatal(err)
	}
	if lc.HeartbeatInterval != 5*time.Second || lc.ReadTimeout != time.Minute || lc.MaxEventQueue != 256 {
		t.Errorf("LiveConfig = %+v", lc)
	}

	p := toast.NewProvider(cfg.ToastOptions()...)
	if p.MaxToasts() != 3 || p.Position() != toast.BottomLeft {
		t.Errorf("provider max=%d position=%s", p.MaxToasts(), p.Position())
	}
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "not valid json")

	_, err := LoadFile(path)
	if errors.Code(err) != "E121" {
		t.Fatalf("got %v, want E121", err)
	}
	if !strings.Contains(err.Error(), "E121") {
		t.Errorf("error text = %q", err.Error())
	}
}

func TestLoadFileWrongType(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"server": {"port": "eighty"}}`)
	if _, err := LoadFile(path); errors.Code(err) != "E121" {
		t.Fatalf("got %v, want E121", err)
	}
}

func TestFindWalksParents(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"toast": {"maxToasts": 2}}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Toast.MaxToasts != 2 {
		t.Errorf("MaxToasts = %d, want 2", cfg.Toast.MaxToasts)
	}
	if cfg.Dir() != root {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), root)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"shutdown", func(c *Config) { c.Server.ShutdownTimeout = "soon" }, "server.shutdownTimeout"},
		{"read timeout", func(c *Config) { c.Live.ReadTimeout = "-1s" }, "live.readTimeout"},
		{"heartbeat", func(c *Config) { c.Live.HeartbeatInterval = "2m" }, "live.heartbeatInterval"},
		{"max toasts", func(c *Config) { c.Toast.MaxToasts = -1 }, "toast.maxToasts"},
		{"position", func(c *Config) { c.Toast.Position = "middle" }, "toast.position"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if errors.Code(err) != "E122" {
				t.Fatalf("got %v, want E122", err)
			}
			if detail := errors.FromError(err, "").Detail; !strings.Contains(detail, tt.field) {
				t.Errorf("detail %q should name %s", detail, tt.field)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Toast.Position = "top-center"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Toast.Position != "top-center" {
		t.Errorf("Position = %q", loaded.Toast.Position)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json output = %q", out)
	}
}
