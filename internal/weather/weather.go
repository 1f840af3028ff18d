// Package weather fetches current conditions from the OpenWeatherMap
// current-weather endpoint and condenses the response into the handful
// of fields the CLI reports.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production OpenWeatherMap API root.
const DefaultBaseURL = "https://api.openweathermap.org"

const currentPath = "/data/2.5/weather"

// Sentinel errors for the failure modes a caller may want to
// distinguish.
var (
	ErrInvalidKey   = errors.New("invalid API key")
	ErrCityNotFound = errors.New("city not found")
)

// Info is the condensed current-conditions record.
type Info struct {
	City         string  `json:"city"`
	Country      string  `json:"country"`
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	Humidity     int     `json:"humidity"`
	Description  string  `json:"description"`
	WindSpeed    float64 `json:"wind_speed_ms"`
}

// Client talks to the OpenWeatherMap API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client against the production API with the given
// request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// apiResponse mirrors the subset of the OpenWeatherMap payload we read.
// cod is typed loosely: the API returns it as a number on success and a
// string on some errors.
type apiResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current fetches current conditions for city. The city may include a
// country code ("Berlin,DE"). Units are metric.
func (c *Client) Current(ctx context.Context, city, apiKey string) (*Info, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("city is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key is required")
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", apiKey)
	q.Set("units", "metric")
	endpoint := strings.TrimRight(c.BaseURL, "/") + currentPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, ErrInvalidKey
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := payload.Message
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("weather API error: %s", msg)
	}
	if !codOK(payload.Cod) {
		msg := payload.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected response code %v", payload.Cod)
		}
		return nil, fmt.Errorf("weather API error: %s", msg)
	}

	info := &Info{
		City:         payload.Name,
		Country:      payload.Sys.Country,
		TemperatureC: payload.Main.Temp,
		FeelsLikeC:   payload.Main.FeelsLike,
		Humidity:     payload.Main.Humidity,
		WindSpeed:    payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		info.Description = payload.Weather[0].Description
	}
	return info, nil
}

// codOK accepts the number/string encodings of a successful cod field.
func codOK(cod any) bool {
	switch v := cod.(type) {
	case float64:
		return v == 200
	case string:
		return v == "200"
	case nil:
		// Some deployments omit cod on success.
		return true
	default:
		return false
	}
}
