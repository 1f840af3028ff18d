package cli

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/ai8future/rcodegen/internal/output"
	"github.com/ai8future/rcodegen/internal/weather"
)

// APIKeyEnvVar supplies the OpenWeatherMap API key when --api-key is
// not given.
const APIKeyEnvVar = "OPENWEATHER_API_KEY"

var (
	weatherAPIKey  string
	weatherJSON    bool
	weatherTimeout int
)

var weatherCmd = &cobra.Command{
	Use:   "weather CITY",
	Short: "Current conditions from OpenWeatherMap",
	Long: `Fetches current weather for a city and prints a short report:

  rstatus weather Berlin
  rstatus weather "Berlin,DE" --json

The API key comes from --api-key or the ` + APIKeyEnvVar + ` environment
variable. Unlike the probe commands this one is for humans, so a
terminal gets the text report; piped output and --json get JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		apiKey := weatherAPIKey
		if apiKey == "" {
			apiKey = os.Getenv(APIKeyEnvVar)
		}
		if apiKey == "" {
			return fmt.Errorf("no API key: pass --api-key or set %s", APIKeyEnvVar)
		}

		timeout := cfg.Weather.Timeout()
		if weatherTimeout > 0 {
			timeout = time.Duration(weatherTimeout) * time.Second
		}

		client := weather.NewClient(timeout)
		if cfg.Weather.BaseURL != "" {
			client.BaseURL = cfg.Weather.BaseURL
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		info, err := client.Current(ctx, args[0], apiKey)
		if err != nil {
			if werr := output.WriteError(os.Stderr, output.KindWeatherFailed, err.Error()); werr != nil {
				return werr
			}
			return &emittedError{err: err}
		}

		form := weatherFormatter(weatherJSON, output.IsTerminal(os.Stdout))
		if form.IsText() {
			output.PrintLines(form.Writer(), renderWeather(info)...)
			return nil
		}
		return form.JSON(info)
	},
}

// weatherFormatter selects the emission mode for the weather command:
// text on a terminal (this command is for humans), JSON when piped or
// when --json asks for it.
func weatherFormatter(jsonFlag, terminal bool) *output.Formatter {
	return output.New(output.WithText(!jsonFlag && terminal))
}

func renderWeather(info *weather.Info) []string {
	place := info.City
	if info.Country != "" {
		place += ", " + info.Country
	}
	return []string{
		output.Heading("Weather in " + place),
		fmt.Sprintf("%-14s%.1f°C (feels like %.1f°C)", "Temperature", info.TemperatureC, info.FeelsLikeC),
		fmt.Sprintf("%-14s%d%%", "Humidity", info.Humidity),
		fmt.Sprintf("%-14s%.1f m/s", "Wind", info.WindSpeed),
		fmt.Sprintf("%-14s%s", "Conditions", capitalize(info.Description)),
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func init() {
	weatherCmd.Flags().StringVar(&weatherAPIKey, "api-key", "", "OpenWeatherMap API key (overrides "+APIKeyEnvVar+")")
	weatherCmd.Flags().BoolVar(&weatherJSON, "json", false, "emit the record as JSON instead of text")
	weatherCmd.Flags().IntVar(&weatherTimeout, "timeout", 0, "request timeout in seconds (overrides config)")
}
