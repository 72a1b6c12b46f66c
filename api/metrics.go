package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diligentcrypto/diligent/tabular"
	"github.com/shopspring/decimal"
)

// TimeSeries is one research metric sampled over a date range, indexed by
// timestamp.
type TimeSeries struct {
	Title   string
	Columns []string // value columns; the timestamp index is not listed
	Points  []Point
}

// Point is one sample: a timestamp and one value per column.
type Point struct {
	Time   time.Time
	Values []decimal.Decimal
}

// Empty reports whether the series has no points.
func (ts TimeSeries) Empty() bool {
	return len(ts.Points) == 0
}

// AvailableTimeseries lists every metric id the provider exposes, with its
// title, description, whether it needs a paid key, and attribution sources.
// The catalogue endpoint is public, so the key header is sent empty.
func (c *Client) AvailableTimeseries() (*tabular.Table, error) {
	table := tabular.New("ID", "Title", "Description", "Requires Paid Key", "Sources")

	var env metricsEnvelope
	if err := c.getJSON(c.baseV1, "assets/metrics", nil, "", &env); err != nil {
		return table, err
	}

	for _, metric := range env.Data.Metrics {
		names := make([]string, 0, len(metric.SourceAttribution))
		for _, source := range metric.SourceAttribution {
			names = append(names, source.Name)
		}
		table.Append(
			metric.MetricID,
			metric.Name,
			metric.Description,
			strconv.FormatBool(len(metric.RoleRestriction) > 0),
			strings.Join(names, ","),
		)
	}
	return table, nil
}

// Timeseries fetches one named metric for an asset over a date range.
// Empty start and end leave the range unbounded. An empty values array is a
// valid empty result, reported through the logger, not an error.
func (c *Client) Timeseries(asset, metricID, interval, start, end string) (TimeSeries, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	params.Set("interval", interval)

	path := fmt.Sprintf("assets/%s/metrics/%s/time-series", url.PathEscape(asset), url.PathEscape(metricID))

	var env timeseriesEnvelope
	if err := c.getJSON(c.baseV1, path, params, c.apiKey, &env); err != nil {
		return TimeSeries{}, err
	}

	series := TimeSeries{Title: env.Data.Schema.Name}
	if cols := env.Data.Parameters.Columns; len(cols) > 1 {
		series.Columns = cols[1:]
	}
	if len(env.Data.Values) == 0 {
		c.logger.Warn("no data found", "asset", asset, "metric", metricID)
		return series, nil
	}

	for _, row := range env.Data.Values {
		if len(row) == 0 {
			continue
		}
		point := Point{Time: time.UnixMilli(int64(row[0])).UTC()}
		for _, v := range row[1:] {
			point.Values = append(point.Values, decimal.NewFromFloat(v))
		}
		series.Points = append(series.Points, point)
	}
	return series, nil
}

// MarketcapDominance returns the asset's share of total market cap over time.
func (c *Client) MarketcapDominance(asset, interval, start, end string) (TimeSeries, error) {
	return c.Timeseries(asset, "mcap.dom", interval, start, end)
}
