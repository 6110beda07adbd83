// Package weather provides the OpenWeatherMap tool provider.
//
// It exposes a single tool, GetWeather, which fetches current conditions
// for a location and renders them as a condensed JSON summary. The API
// key is resolved from the OPENWEATHERMAP_API_KEY secret or environment
// variable; responses for identical lookups may be served from an
// optional cache.
package weather
