package tool

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// mockTool is a minimal Tool for registry tests.
type mockTool struct {
	name string
}

func (m *mockTool) Schema() Schema {
	return Schema{
		Type: "function",
		Function: FunctionSchema{
			Name:       m.name,
			Parameters: ParameterSchema{Type: "object"},
		},
	}
}

func (m *mockTool) Create(context.Context, CreateOptions) (string, string, error) {
	return "", "", nil
}

func (m *mockTool) Execute(context.Context, string, map[string]any) (Response, error) {
	return Response{}, nil
}

func (m *mockTool) CalcReward(context.Context, string) (float64, error) {
	return 0, nil
}

func (m *mockTool) Release(context.Context, string) error {
	return nil
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&mockTool{name: "grep_search"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := registry.Register(&mockTool{name: "grep_search"}); !errors.Is(err, ErrToolExists) {
		t.Errorf("Register() duplicate error = %v, want ErrToolExists", err)
	}
}

func TestRegistry_RegisterInvalidSchema(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&mockTool{name: ""}); !errors.Is(err, ErrSchemaInvalid) {
		t.Errorf("Register() error = %v, want ErrSchemaInvalid", err)
	}
	if err := registry.Register(nil); err == nil {
		t.Error("Register(nil) should fail")
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(&mockTool{name: "grep_search"})

	got, err := registry.Get("grep_search")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Schema().Name() != "grep_search" {
		t.Errorf("Get().Schema().Name() = %q, want %q", got.Schema().Name(), "grep_search")
	}

	if _, err := registry.Get("nonexistent"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Get() error = %v, want ErrToolNotFound", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(&mockTool{name: "web_fetch"})
	_ = registry.Register(&mockTool{name: "grep_search"})
	_ = registry.Register(&mockTool{name: "code_exec"})

	want := []string{"code_exec", "grep_search", "web_fetch"}
	if got := registry.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistry_Schemas(t *testing.T) {
	registry := NewRegistry()
	_ = registry.Register(&mockTool{name: "web_fetch"})
	_ = registry.Register(&mockTool{name: "grep_search"})

	schemas := registry.Schemas()
	if len(schemas) != 2 {
		t.Fatalf("Schemas() returned %d schemas, want 2", len(schemas))
	}
	if schemas[0].Name() != "grep_search" || schemas[1].Name() != "web_fetch" {
		t.Errorf("Schemas() order = [%s %s], want [grep_search web_fetch]",
			schemas[0].Name(), schemas[1].Name())
	}
}
