// Package schema defines parameter descriptors for tools and derives them
// from Go types.
//
// A tool declares its inputs as an ordered list of Param values. Each Param
// carries a name, a type tag from a closed set (string, integer, number,
// boolean, array, object), a description, a required flag, and optional
// enumerated allowed values.
//
// Descriptors can be declared explicitly with the builder functions:
//
//	params := []schema.Param{
//		schema.String("location", "The location to get weather for"),
//		schema.String("units", "The unit system to use").
//			WithEnum("metric", "imperial", "standard").
//			WithDefault("metric"),
//	}
//
// or inferred from an args struct with Infer:
//
//	type WeatherArgs struct {
//		Location string `json:"location" description:"The location to get weather for"`
//		Units    string `json:"units,omitempty" enum:"metric,imperial,standard" default:"metric"`
//	}
//
//	params, err := schema.Infer(WeatherArgs{})
//
// Infer walks exported struct fields in declaration order, so the resulting
// descriptor order always matches the declared field order.
package schema
