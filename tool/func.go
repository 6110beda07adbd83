package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/schema"
	"github.com/cel-ai/community-tools-go/toolerr"
	"github.com/cel-ai/community-tools-go/types"
)

// Option configures a tool built with NewFunc.
type Option func(*Config)

// WithName overrides the inferred tool name.
func WithName(name string) Option {
	return func(c *Config) { c.SetName(name) }
}

// WithDescription sets the tool description.
func WithDescription(description string) Option {
	return func(c *Config) { c.SetDescription(description) }
}

// WithAuthorization sets the declared authorization requirement.
func WithAuthorization(a auth.Authorization) Option {
	return func(c *Config) { c.SetAuthorization(a) }
}

// WithRequiredSecrets sets the names of the secrets the tool needs.
func WithRequiredSecrets(names ...string) Option {
	return func(c *Config) { c.SetRequiredSecrets(names...) }
}

// WithParams overrides the inferred parameter list.
func WithParams(params ...schema.Param) Option {
	return func(c *Config) { c.SetParams(params...) }
}

// WithDeprecated marks the tool deprecated with the given message.
func WithDeprecated(message string) Option {
	return func(c *Config) { c.SetDeprecated(message) }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.SetLogger(logger) }
}

// WithTracer sets the tracer used to span invocations.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Config) { c.SetTracer(tracer) }
}

// WithMeter sets the meter used to count invocations.
func WithMeter(meter metric.Meter) Option {
	return func(c *Config) { c.SetMeter(meter) }
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	fctxType    = reflect.TypeOf((*types.FunctionContext)(nil))
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// NewFunc wraps a strongly typed function as a Tool. Accepted shapes:
//
//	func(ctx context.Context) (R, error)
//	func(ctx context.Context, args A) (R, error)
//	func(ctx context.Context, fctx *types.FunctionContext, args A) (R, error)
//
// where A is a struct (or pointer to struct) whose fields declare the
// tool's parameters, and R is any result type Invoke can coerce.
//
// The tool name defaults to the function's identifier and the parameter
// list to schema.Infer(A); both can be overridden with options. The call
// plan — whether the function takes a FunctionContext, and the args type —
// is determined once here, not re-checked per invocation.
func NewFunc(fn any, opts ...Option) (*Tool, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("NewFunc: got %T, want a function", fn)
	}

	ft := v.Type()
	if ft.NumIn() < 1 || ft.In(0) != contextType {
		return nil, fmt.Errorf("NewFunc: first parameter must be context.Context")
	}
	if ft.NumOut() != 2 || !ft.Out(1).Implements(errorType) {
		return nil, fmt.Errorf("NewFunc: function must return (result, error)")
	}

	hasFctx := ft.NumIn() >= 2 && ft.In(1) == fctxType
	argsIndex := 1
	if hasFctx {
		argsIndex = 2
	}

	var argsType reflect.Type
	switch ft.NumIn() - argsIndex {
	case 0:
		// No declared parameters.
	case 1:
		argsType = ft.In(argsIndex)
		elem := argsType
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			return nil, fmt.Errorf("NewFunc: args parameter must be a struct, got %s", argsType)
		}
	default:
		return nil, fmt.Errorf("NewFunc: unsupported signature %s", ft)
	}

	cfg := NewConfig().SetName(funcName(v))

	if argsType != nil {
		elem := argsType
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		params, err := schema.Infer(reflect.New(elem).Elem().Interface())
		if err != nil {
			return nil, fmt.Errorf("NewFunc: %w", err)
		}
		cfg.SetParams(params...)
	}

	cfg.SetFunc(func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error) {
		in := make([]reflect.Value, 0, 3)
		in = append(in, reflect.ValueOf(ctx))

		if hasFctx {
			if fctx == nil {
				fctx = types.NewFunctionContext()
			}
			in = append(in, reflect.ValueOf(fctx))
		}

		if argsType != nil {
			elem := argsType
			if elem.Kind() == reflect.Ptr {
				elem = elem.Elem()
			}
			argsPtr := reflect.New(elem)
			data, err := json.Marshal(params)
			if err != nil {
				return nil, toolerr.NewExecutionError("invalid parameters").WithCause(err)
			}
			if err := json.Unmarshal(data, argsPtr.Interface()); err != nil {
				return nil, toolerr.NewExecutionError("invalid parameters").WithCause(err)
			}
			if argsType.Kind() == reflect.Ptr {
				in = append(in, argsPtr)
			} else {
				in = append(in, argsPtr.Elem())
			}
		}

		out := v.Call(in)
		if errVal := out[1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
		return out[0].Interface(), nil
	})

	for _, opt := range opts {
		opt(cfg)
	}

	return New(cfg)
}

// MustNewFunc is like NewFunc but panics on error. Intended for
// package-level tool declarations.
func MustNewFunc(fn any, opts ...Option) *Tool {
	t, err := NewFunc(fn, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// funcName derives a tool name from a function's runtime identifier:
// "github.com/acme/pkg.getWeather" becomes "getWeather". Method values
// carry a "-fm" suffix which is stripped.
func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
