package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/cel-ai/community-tools-go/auth"
	"github.com/cel-ai/community-tools-go/enum"
	"github.com/cel-ai/community-tools-go/schema"
	"github.com/cel-ai/community-tools-go/toolerr"
	"github.com/cel-ai/community-tools-go/types"
)

// Assistant is the registration target: the host declares a tool's name,
// description, and parameter list, and returns a Binder that accepts the
// invocation handler.
type Assistant interface {
	Function(name, description string, params []schema.Param) Binder
}

// Binder binds an invocation handler to a previously declared function.
type Binder func(Handler)

// Handler is the normalized invocation contract bound to hosts.
type Handler func(ctx context.Context, session *types.Session, params map[string]any, fctx *types.FunctionContext) types.FunctionResponse

// Func is the generic shape of an underlying callable. It receives the
// per-invocation context handle and the filtered parameter map, and
// returns any value; Invoke coerces the result into a FunctionResponse.
type Func func(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (any, error)

// Tool is a wrapped, registrable callable. It is immutable after New;
// concurrent Invoke and Register calls are race-free.
type Tool struct {
	name            string
	description     string
	authorization   auth.Authorization
	requiredSecrets []string
	params          schema.Params
	fn              Func
	deprecation     string

	logger      *slog.Logger
	tracer      trace.Tracer
	invocations metric.Int64Counter
}

// Name returns the tool name.
func (t *Tool) Name() string { return t.name }

// Description returns the tool description.
func (t *Tool) Description() string { return t.description }

// Authorization returns the declared authorization requirement, or nil
// when the tool needs none.
func (t *Tool) Authorization() auth.Authorization { return t.authorization }

// RequiredSecrets returns the names of the secrets the tool needs.
func (t *Tool) RequiredSecrets() []string {
	secrets := make([]string, len(t.requiredSecrets))
	copy(secrets, t.requiredSecrets)
	return secrets
}

// Params returns the declared parameter list in order.
func (t *Tool) Params() []schema.Param {
	params := make([]schema.Param, len(t.params))
	copy(params, t.params)
	return params
}

// Deprecated returns the deprecation message and whether the tool is
// marked deprecated.
func (t *Tool) Deprecated() (string, bool) {
	return t.deprecation, t.deprecation != ""
}

// Descriptor is an immutable snapshot of a tool's registration metadata.
type Descriptor struct {
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Authorization   auth.Kind      `json:"authorization,omitempty"`
	RequiredSecrets []string       `json:"required_secrets,omitempty"`
	Params          []schema.Param `json:"params,omitempty"`
	Deprecated      string         `json:"deprecated,omitempty"`
}

// Descriptor returns a snapshot of the tool's metadata.
func (t *Tool) Descriptor() Descriptor {
	d := Descriptor{
		Name:            t.name,
		Description:     t.description,
		RequiredSecrets: t.RequiredSecrets(),
		Params:          t.Params(),
		Deprecated:      t.deprecation,
	}
	if t.authorization != nil {
		d.Authorization = t.authorization.Kind()
	}
	return d
}

// Register declares the tool against the host assistant and binds Invoke
// as the handler. Registering the same tool against multiple hosts is
// permitted and independent; the Tool record is never mutated.
func (t *Tool) Register(a Assistant) {
	if t.deprecation != "" {
		t.logger.Warn("registering deprecated tool",
			"tool", t.name,
			"message", t.deprecation)
	}
	binder := a.Function(t.name, t.description, t.Params())
	binder(t.Invoke)
}

// Invoke executes the tool. It never returns a raised error or panic to
// the caller: every outcome, success or failure, is a FunctionResponse.
//
// The invocation pipeline:
//
//  1. normalize registered enum shorthand in the parameter map
//  2. enforce the declared authorization and required secrets; a missing
//     credential or secret yields the authorization failure response
//     without invoking the callable
//  3. apply declared defaults, then validate required presence and
//     declared types
//  4. filter the map to declared parameter names
//  5. call the underlying function, recovering any panic
//  6. coerce the result: FunctionResponse values pass through, strings
//     become single-turn text, anything else is rendered textually
func (t *Tool) Invoke(ctx context.Context, session *types.Session, params map[string]any, fctx *types.FunctionContext) types.FunctionResponse {
	if ctx == nil {
		ctx = context.Background()
	}

	invocationID := uuid.NewString()
	ctx, span := t.tracer.Start(ctx, "tool.invoke", trace.WithAttributes(
		attribute.String("tool.name", t.name),
		attribute.String("tool.invocation_id", invocationID),
	))
	defer span.End()

	logger := t.logger.With("tool", t.name, "invocation_id", invocationID)
	if session != nil {
		logger = logger.With("session_id", session.ID)
	}

	params = enum.Normalize(t.name, params)

	if resp, ok := t.authorize(fctx); !ok {
		logger.Error("invocation rejected", "reason", "authorization")
		t.record(ctx, span, "authorization_error", resp.Text)
		return resp
	}

	if len(t.params) > 0 {
		params = t.params.ApplyDefaults(params)
		if err := t.params.Validate(params); err != nil {
			logger.Error("invocation rejected", "reason", "invalid parameters", "error", err)
			resp := toolerr.NewExecutionError(err.Error()).Response()
			t.record(ctx, span, "invalid_params", resp.Text)
			return resp
		}
		params = t.params.Filter(params)
	}

	result, err := t.call(ctx, fctx, params)
	if err != nil {
		logger.Error("invocation failed", "error", err)
		resp, ok := toolerr.Response(err)
		if !ok {
			resp = types.TextResponse(fmt.Sprintf("Error in %s: %s", t.name, err))
		}
		t.record(ctx, span, "error", err.Error())
		return resp
	}

	logger.Debug("invocation completed")
	t.record(ctx, span, "success", "")
	return coerceResult(result)
}

// authorize enforces the declared authorization and secret requirements.
// It returns the failure response and false when enforcement fails.
// API-key requirements resolve like secrets, so a key supplied through
// the invocation context satisfies them without touching the process
// environment.
func (t *Tool) authorize(fctx *types.FunctionContext) (types.FunctionResponse, bool) {
	if t.authorization != nil {
		satisfied := false
		if apiKey, ok := t.authorization.(auth.APIKey); ok {
			_, satisfied = types.LookupSecret(fctx, apiKey.EnvVar)
		} else {
			satisfied = t.authorization.Validate(fctx.Token())
		}
		if !satisfied {
			msg := "missing or invalid credential for " + t.name
			return toolerr.NewAuthorizationError(msg).Response(), false
		}
	}

	for _, name := range t.requiredSecrets {
		if _, ok := types.LookupSecret(fctx, name); !ok {
			msg := "required secret " + name + " is not available"
			return toolerr.NewAuthorizationError(msg).Response(), false
		}
	}

	return types.FunctionResponse{}, true
}

// call invokes the underlying function, converting panics to errors so
// they degrade to textual responses like any other failure.
func (t *Tool) call(ctx context.Context, fctx *types.FunctionContext, params map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return t.fn(ctx, fctx, params)
}

func (t *Tool) record(ctx context.Context, span trace.Span, outcome, errText string) {
	span.SetAttributes(attribute.String("tool.outcome", outcome))
	if outcome == "success" {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, errText)
	}
	t.invocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool.name", t.name),
		attribute.String("tool.outcome", outcome),
	))
}

// coerceResult normalizes an underlying function's return value into a
// FunctionResponse. Structured values are rendered as JSON; scalars fall
// back to their fmt representation.
func coerceResult(result any) types.FunctionResponse {
	switch v := result.(type) {
	case types.FunctionResponse:
		return v
	case *types.FunctionResponse:
		if v != nil {
			return *v
		}
		return types.TextResponse("")
	case string:
		return types.TextResponse(v)
	case nil:
		return types.TextResponse("")
	}

	switch reflect.ValueOf(result).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr:
		if data, err := json.Marshal(result); err == nil {
			return types.TextResponse(string(data))
		}
	}

	return types.TextResponse(fmt.Sprintf("%v", result))
}
