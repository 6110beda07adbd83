// Package tool wraps plain Go functions into registrable assistant tools.
//
// A Tool is an immutable record pairing a callable with its metadata:
// name, description, authorization requirement, required secrets, and an
// ordered parameter list. Tools are built either from the generic Func
// shape via the Config builder:
//
//	t, err := tool.New(tool.NewConfig().
//		SetName("GetWeather").
//		SetDescription("Get current weather information for a location").
//		SetAuthorization(auth.OpenWeatherMap()).
//		SetParams(
//			schema.String("location", "The location to get weather for"),
//		).
//		SetFunc(getWeather))
//
// or from a strongly typed function via NewFunc, which infers the name
// and parameter list:
//
//	t, err := tool.NewFunc(func(ctx context.Context, args WeatherArgs) (string, error) {
//		...
//	})
//
// Invoke is the single entry point for execution. It normalizes enum
// shorthand, enforces declared authorization and secret presence,
// validates and filters parameters, calls the underlying function, and
// coerces whatever comes back into a types.FunctionResponse. Invoke never
// lets an error or panic escape: every failure degrades to a textual
// response.
//
// Register declares the tool against a host Assistant. A Tool is immutable
// after construction, so concurrent Invoke and Register calls are safe.
package tool
