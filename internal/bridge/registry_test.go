package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry(nil)
	r.Register("echo", func(_ context.Context, args json.RawMessage) (interface{}, error) {
		return string(args), nil
	})

	got, err := r.Dispatch(context.Background(), "echo", json.RawMessage(`{"x":1}`))
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"x":1}` {
		t.Errorf("Dispatch = %v, want raw args echoed", got)
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Dispatch(context.Background(), "nope", nil)
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry(nil)
	noop := func(context.Context, json.RawMessage) (interface{}, error) { return nil, nil }
	r.Register("dup", noop)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	r.Register("dup", noop)
}

func TestRegistry_Commands(t *testing.T) {
	r := NewRegistry(nil)
	noop := func(context.Context, json.RawMessage) (interface{}, error) { return nil, nil }
	r.Register("b", noop)
	r.Register("a", noop)

	if got := r.Commands(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Commands = %v, want sorted [a b]", got)
	}
}

func TestResponse_ErrorFlattening(t *testing.T) {
	// The wire error is a single opaque string, nothing structured.
	handlerErr := errors.New("reading virtual memory: permission denied")
	resp := Response{ID: json.RawMessage(`7`), OK: false, Error: handlerErr.Error()}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["ok"] != false {
		t.Error("ok should be false")
	}
	if decoded["error"] != handlerErr.Error() {
		t.Errorf("error = %v, want flattened message", decoded["error"])
	}
	if _, present := decoded["data"]; present {
		t.Error("data should be omitted on failure")
	}
	if decoded["id"] != float64(7) {
		t.Errorf("id = %v, want request id echoed", decoded["id"])
	}
}
