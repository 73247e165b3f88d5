package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
)

func TestParseFullFile(t *testing.T) {
	data := []byte(`
algorithm = "legacy"
scale_length = 300
output_dir = "/tmp/scales"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl_hours = 24

[server]
listen = ":9090"
mongo_uri = "mongodb://localhost:27017"

[assemblies]
mannheim = "[A] [B, CI, C] [D, K]"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.TickAlgorithm() != tick.AlgorithmLegacy {
		t.Errorf("algorithm = %v, want legacy", cfg.TickAlgorithm())
	}
	if cfg.ScaleLength != 300 {
		t.Errorf("scale_length = %g, want 300", cfg.ScaleLength)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Server.Listen != ":9090" {
		t.Errorf("listen = %q, want :9090", cfg.Server.Listen)
	}
	if cfg.Assemblies["mannheim"] == "" {
		t.Error("named assembly not loaded")
	}
}

func TestParseDefaultsApply(t *testing.T) {
	cfg, err := Parse([]byte(`scale_length = 125`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.ScaleLength != 125 {
		t.Errorf("scale_length = %g, want 125", cfg.ScaleLength)
	}
	if cfg.TickAlgorithm() != tick.AlgorithmModulo {
		t.Errorf("default algorithm = %v, want modulo", cfg.TickAlgorithm())
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("default listen = %q, want :8080", cfg.Server.Listen)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"bad algorithm", `algorithm = "quantum"`},
		{"negative length", `scale_length = -1`},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"redis without addr", "[cache]\nbackend = \"redis\""},
		{"bad toml", `algorithm = `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if err == nil {
				t.Fatalf("Parse accepted %q", tc.data)
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ScaleLength != Default().ScaleLength {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	if err := os.WriteFile(path, []byte(`scale_length = 500`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ScaleLength != 500 {
		t.Errorf("scale_length = %g, want 500", cfg.ScaleLength)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load accepted a missing explicit path")
	}
}
