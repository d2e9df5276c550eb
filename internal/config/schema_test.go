package config

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestParseSchema(t *testing.T) {
	t.Parallel()

	doc := []byte(`
database:
  host: localhost
  port: 3306
  debug: false
credentials:
  - user
  - password
  - timeout: 1.5
app: not-a-mapping
`)

	schema, err := ParseSchema(doc)
	if err != nil {
		t.Fatalf("ParseSchema returned error: %v", err)
	}

	var names []string
	specs := map[string]any{}
	for name, spec := range schema.Sections() {
		names = append(names, name)
		specs[name] = spec
	}
	if want := []string{"database", "credentials", "app"}; !slices.Equal(names, want) {
		t.Fatalf("unexpected section order: %v", names)
	}

	wantDB := []Key{Optional("host", "localhost"), Optional("port", 3306), Optional("debug", false)}
	if !reflect.DeepEqual(specs["database"], wantDB) {
		t.Fatalf("unexpected database spec: %#v", specs["database"])
	}
	wantCreds := []any{"user", "password", Optional("timeout", 1.5)}
	if !reflect.DeepEqual(specs["credentials"], wantCreds) {
		t.Fatalf("unexpected credentials spec: %#v", specs["credentials"])
	}
	if specs["app"] != "not-a-mapping" {
		t.Fatalf("scalar sections must be kept for import validation, got %#v", specs["app"])
	}

	_, err = Load(NewEnvSource(schema, "", WithEnvironment(MapEnvironment{"CREDENTIALS_USER": "u", "CREDENTIALS_PASSWORD": "p"})))
	var serr *StructuralError
	if !errors.As(err, &serr) || serr.Section != "app" {
		t.Fatalf("expected invalid app section, got %v", err)
	}
}

func TestParseSchemaRejectsNonMapping(t *testing.T) {
	t.Parallel()

	if _, err := ParseSchema([]byte("- a\n- b\n")); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("expected ErrNotMapping, got %v", err)
	}
	if _, err := ParseSchema([]byte("a: [")); err == nil {
		t.Fatalf("expected syntax error")
	}
	schema, err := ParseSchema(nil)
	if err != nil {
		t.Fatalf("empty schema returned error: %v", err)
	}
	for range schema.Sections() {
		t.Fatalf("expected no sections")
	}
}

func TestSectionKeys(t *testing.T) {
	t.Parallel()

	keys, ok := sectionKeys(map[string]any{"b": 2, "a": "x"})
	if !ok || !reflect.DeepEqual(keys, []Key{Optional("a", "x"), Optional("b", 2)}) {
		t.Fatalf("unexpected keys from map: %#v", keys)
	}

	for _, bad := range []any{nil, "scalar", 5, []any{1}, []any{map[string]any{"a": 1, "b": 2}}} {
		if _, ok := sectionKeys(bad); ok {
			t.Fatalf("expected %#v to be rejected", bad)
		}
	}
}
