package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnvName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix, section, key, want string
	}{
		{"app", "database", "host", "APP_DATABASE_HOST"},
		{"", "database", "host", "DATABASE_HOST"},
		{"MyApp", "cache", "ttl_seconds", "MYAPP_CACHE_TTL_SECONDS"},
	}
	for _, tt := range tests {
		if got := EnvName(tt.prefix, tt.section, tt.key); got != tt.want {
			t.Fatalf("EnvName(%q, %q, %q) = %q, want %q", tt.prefix, tt.section, tt.key, got, tt.want)
		}
	}
}

func TestEnvSourceResolvesDefaults(t *testing.T) {
	t.Parallel()

	schema := NewSchema().Add("database", map[string]any{"host": "localhost", "port": 3306})
	env := MapEnvironment{"DATABASE_HOST": "remotehost"}

	cfg, err := Load(NewEnvSource(schema, "", WithEnvironment(env)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := map[string]Section{"database": {"host": "remotehost", "port": 3306}}
	if got := cfg.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected config: %v", got)
	}
}

func TestEnvSourceCoercion(t *testing.T) {
	t.Parallel()

	schema := NewSchema().Add("app", []Key{
		Optional("port", 8080),
		Optional("ratio", 0.5),
		Optional("debug", false),
		Optional("tags", []any{}),
		Optional("name", "svc"),
		Optional("workers", 4),
		Optional("timeout", 30),
	})
	env := MapEnvironment{
		"MY_APP_PORT":    "9090",
		"MY_APP_RATIO":   "1.5e-1",
		"MY_APP_DEBUG":   "on",
		"MY_APP_TAGS":    `["a","b"]`,
		"MY_APP_NAME":    "",
		"MY_APP_WORKERS": "many",
	}

	cfg, err := Load(NewEnvSource(schema, "my", WithEnvironment(env)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Section{
		"port":    9090,
		"ratio":   0.15,
		"debug":   true,
		"tags":    []any{"a", "b"},
		"name":    "svc",
		"workers": 4,
		"timeout": 30,
	}
	if got := cfg.Section("app", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section: %#v", got)
	}
}

func TestEnvSourceRequiredKeys(t *testing.T) {
	t.Parallel()

	schema := NewSchema().Add("database", []string{"host", "user"})

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		env := MapEnvironment{"DATABASE_HOST": "db", "DATABASE_USER": ""}
		cfg, err := Load(NewEnvSource(schema, "", WithEnvironment(env)))
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if got := cfg.Section("database", nil); !reflect.DeepEqual(got, Section{"host": "db", "user": ""}) {
			t.Fatalf("unexpected section: %#v", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := Load(NewEnvSource(schema, "", WithEnvironment(MapEnvironment{})))
		var serr *StructuralError
		if !errors.As(err, &serr) || !errors.Is(err, ErrMissingVariable) {
			t.Fatalf("expected missing variable error, got %v", err)
		}
		if serr.Variable != "DATABASE_HOST" {
			t.Fatalf("expected DATABASE_HOST in error, got %q", serr.Variable)
		}
	})

	t.Run("required values are not coerced", func(t *testing.T) {
		t.Parallel()

		env := MapEnvironment{"DATABASE_HOST": "42", "DATABASE_USER": "true"}
		cfg := MustLoad(NewEnvSource(schema, "", WithEnvironment(env)))
		if cfg.Get("database", "host", nil) != "42" || cfg.Get("database", "user", nil) != "true" {
			t.Fatalf("required values must stay raw strings")
		}
	})
}

func TestEnvSourceMixedSection(t *testing.T) {
	t.Parallel()

	schema := NewSchema().Add("mail", []any{"host", map[string]any{"port": 25}, Optional("tls", true)})
	env := MapEnvironment{"MAIL_HOST": "smtp", "MAIL_PORT": "587"}

	cfg := MustLoad(NewEnvSource(schema, "", WithEnvironment(env)))
	want := Section{"host": "smtp", "port": 587, "tls": true}
	if got := cfg.Section("mail", nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section: %#v", got)
	}
}

func TestEnvSourceInvalidSection(t *testing.T) {
	t.Parallel()

	schema := NewSchema().
		Add("app", map[string]any{"name": "x"}).
		Add("database", "not-a-mapping")

	_, err := Load(NewEnvSource(schema, "", WithEnvironment(MapEnvironment{})))
	var serr *StructuralError
	if !errors.As(err, &serr) || !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("expected invalid section error, got %v", err)
	}
	if serr.Section != "database" {
		t.Fatalf("expected section name in error, got %q", serr.Section)
	}
}

func TestEnvSourceFailFast(t *testing.T) {
	t.Parallel()

	schema := NewSchema().
		Add("app", []string{"name"}).
		Add("database", map[string]any{"host": "localhost"})

	cfg, err := Load(NewEnvSource(schema, "", WithEnvironment(MapEnvironment{"DATABASE_HOST": "db"})))
	if err == nil || cfg != nil {
		t.Fatalf("expected whole import to fail, got %v", cfg)
	}
}

func TestEnvSourceReadsProcessEnvironment(t *testing.T) {
	t.Setenv("CONFLOADTEST_DATABASE_HOST", "from-process")

	schema := NewSchema().Add("database", map[string]any{"host": "localhost"})

	cfg := MustLoad(NewEnvSource(schema, "confloadtest"))
	if got := cfg.Get("database", "host", nil); got != "from-process" {
		t.Fatalf("expected process value, got %v", got)
	}

	snapshot := SnapshotEnvironment()
	t.Setenv("CONFLOADTEST_DATABASE_HOST", "changed")
	cfg = MustLoad(NewEnvSource(schema, "confloadtest", WithEnvironment(snapshot)))
	if got := cfg.Get("database", "host", nil); got != "from-process" {
		t.Fatalf("expected snapshot value, got %v", got)
	}
}

func TestEnvSourceNilSchema(t *testing.T) {
	t.Parallel()

	cfg := MustLoad(NewEnvSource(nil, ""))
	if cfg.Len() != 0 {
		t.Fatalf("expected empty config")
	}
}

func TestEnvSourceHostileStructuredValue(t *testing.T) {
	t.Parallel()

	schema := NewSchema().Add("app", map[string]any{"tags": []any{}})
	env := MapEnvironment{"APP_TAGS": `a:1:{i:0;s:9223372036854775807:"x";}`}

	cfg, err := Load(NewEnvSource(schema, "", WithEnvironment(env)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.Get("app", "tags", nil); !reflect.DeepEqual(got, []any{}) {
		t.Fatalf("expected default for undecodable value, got %#v", got)
	}
}
