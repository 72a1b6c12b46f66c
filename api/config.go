package api

// API endpoints
const (
	// v1 serves the metric catalogue and time-series data
	BaseURLV1 = "https://data.messari.io/api/v1/"
	// v2 serves asset profiles
	BaseURLV2 = "https://data.messari.io/api/v2/"

	apiKeyHeader = "x-messari-api-key"
)

// Intervals supported by the time-series endpoints.
var Intervals = []string{"5m", "15m", "30m", "1h", "1d", "1w"}

// IsValidInterval reports whether interval is one of the supported
// time-series frequencies.
func IsValidInterval(interval string) bool {
	for _, i := range Intervals {
		if i == interval {
			return true
		}
	}
	return false
}
