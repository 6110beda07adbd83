package tool

import (
	"context"
	"reflect"
	"testing"

	"github.com/cel-ai/community-tools-go/schema"
)

// fakeAssistant records declarations and bound handlers, standing in for
// the host framework.
type fakeAssistant struct {
	declarations []declaration
	handlers     map[string]Handler
}

type declaration struct {
	name        string
	description string
	params      []schema.Param
}

func newFakeAssistant() *fakeAssistant {
	return &fakeAssistant{handlers: make(map[string]Handler)}
}

func (a *fakeAssistant) Function(name, description string, params []schema.Param) Binder {
	a.declarations = append(a.declarations, declaration{name, description, params})
	return func(h Handler) {
		a.handlers[name] = h
	}
}

func TestRegister(t *testing.T) {
	tl := newTestTool(t, NewConfig().SetName("X").
		SetDescription("a test tool").
		SetParams(schema.String("a", "param a")).
		SetFunc(echoFunc("ok", nil)))

	assistant := newFakeAssistant()
	tl.Register(assistant)

	if len(assistant.declarations) != 1 {
		t.Fatalf("declarations = %d, want 1", len(assistant.declarations))
	}
	d := assistant.declarations[0]
	if d.name != "X" || d.description != "a test tool" {
		t.Errorf("declaration = %+v", d)
	}
	if len(d.params) != 1 || d.params[0].Name != "a" {
		t.Errorf("declared params = %v", d.params)
	}

	handler, ok := assistant.handlers["X"]
	if !ok {
		t.Fatal("handler not bound")
	}
	resp := handler(context.Background(), nil, nil, nil)
	if resp.Text != "ok" {
		t.Errorf("bound handler response = %q", resp.Text)
	}
}

func TestRegister_Idempotent(t *testing.T) {
	tl := newTestTool(t, NewConfig().SetName("X").
		SetDescription("desc").
		SetParams(schema.String("a", "")).
		SetFunc(echoFunc("ok", nil)))

	first := newFakeAssistant()
	second := newFakeAssistant()

	tl.Register(first)
	tl.Register(first)
	tl.Register(second)

	if len(first.declarations) != 2 {
		t.Fatalf("first assistant declarations = %d, want 2", len(first.declarations))
	}
	if !reflect.DeepEqual(first.declarations[0], first.declarations[1]) {
		t.Error("repeated Register() produced different declarations")
	}
	if !reflect.DeepEqual(first.declarations[0], second.declarations[0]) {
		t.Error("Register() against a second assistant produced a different declaration")
	}
}
