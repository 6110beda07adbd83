// Package celtools provides community-built tools for Cel.ai assistants.
//
// The library wraps plain Go functions into registrable tools: each tool
// carries a name, description, authorization requirement, and ordered
// parameter list, and is invoked through a pipeline that normalizes
// parameters, enforces credentials, and converts every failure into
// response text the assistant can relay.
//
// # Core Concepts
//
// The library is organized around a few concepts:
//
//   - Tools: wrapped callables with declared metadata, built with the
//     tool package's Config builder or reflected from a function with
//     tool.NewFunc
//   - Providers: immutable groupings of related tools that register and
//     health-check as a unit
//   - Authorization: declarative credential requirements (API keys,
//     OAuth2 scopes, bearer tokens) checked before invocation
//   - Assistants: hosts implementing tool.Assistant, against which
//     tools and providers register
//
// # Getting Started
//
// Register the built-in providers against an assistant host:
//
//	registry, err := celtools.Builtin()
//	if err != nil {
//		log.Fatal(err)
//	}
//	registry.RegisterAll(assistant)
//
// Or wrap a function of your own:
//
//	t, err := tool.NewFunc(getStockPrice,
//		tool.WithName("GetStockPrice"),
//		tool.WithDescription("Get the latest price for a ticker symbol"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	t.Register(assistant)
//
// # Error Handling
//
// Tool functions report failures with the toolerr package. Raised
// errors never escape an invocation: they are rendered into prompt-ready
// text, with retryable and authorization failures phrased so the model
// can react appropriately.
//
// # Observability
//
// Tools accept an OpenTelemetry tracer and meter; each invocation is
// spanned and counted by outcome. Both default to no-ops, as does the
// structured logger, so the library stays silent unless wired into a
// host's telemetry.
package celtools
