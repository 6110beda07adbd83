package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Info is the condensed weather summary returned as response text.
type Info struct {
	Location  Location  `json:"location"`
	Weather   Condition `json:"weather"`
	Units     string    `json:"units"`
	Timestamp int64     `json:"timestamp"`
	Sunrise   int64     `json:"sunrise"`
	Sunset    int64     `json:"sunset"`
}

// Location identifies the resolved place.
type Location struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates are the resolved latitude and longitude.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Condition is the current weather state.
type Condition struct {
	Condition   string      `json:"condition"`
	Description string      `json:"description"`
	Temperature Temperature `json:"temperature"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	Wind        Wind        `json:"wind"`
	Clouds      int         `json:"clouds"`
	Visibility  int         `json:"visibility"`
}

// Temperature groups the reported temperature readings.
type Temperature struct {
	Current   float64 `json:"current"`
	FeelsLike float64 `json:"feels_like"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Wind is the reported wind state.
type Wind struct {
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
}

// owmResponse mirrors the subset of the OpenWeatherMap current-weather
// payload this provider reads.
type owmResponse struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int   `json:"visibility"`
	Dt         int64 `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// current fetches current conditions for a location and condenses them
// into an Info.
func (c *client) current(ctx context.Context, location, units, apiKey string) (*Info, error) {
	query := url.Values{}
	query.Set("q", location)
	query.Set("appid", apiKey)
	query.Set("units", units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	info := &Info{
		Location: Location{
			Name:    data.Name,
			Country: data.Sys.Country,
			Coordinates: Coordinates{
				Lat: data.Coord.Lat,
				Lon: data.Coord.Lon,
			},
		},
		Weather: Condition{
			Temperature: Temperature{
				Current:   data.Main.Temp,
				FeelsLike: data.Main.FeelsLike,
				Min:       data.Main.TempMin,
				Max:       data.Main.TempMax,
			},
			Humidity: data.Main.Humidity,
			Pressure: data.Main.Pressure,
			Wind: Wind{
				Speed:     data.Wind.Speed,
				Direction: data.Wind.Deg,
			},
			Clouds:     data.Clouds.All,
			Visibility: data.Visibility,
		},
		Units:     units,
		Timestamp: data.Dt,
		Sunrise:   data.Sys.Sunrise,
		Sunset:    data.Sys.Sunset,
	}
	if len(data.Weather) > 0 {
		info.Weather.Condition = data.Weather[0].Main
		info.Weather.Description = data.Weather[0].Description
	}

	return info, nil
}
