package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/diligentcrypto/diligent/api"
	"github.com/diligentcrypto/diligent/tabular"
	"github.com/fatih/color"
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed)
)

// printSection prints a section header before a table or text block.
func printSection(title string) {
	sectionColor.Println(title)
}

// printTable renders a table with aligned columns. Empty tables render a
// single dash so the caller always produces output.
func printTable(t *tabular.Table) {
	if t == nil || t.Empty() {
		fmt.Println(tabular.Placeholder)
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	fmt.Println()
}

// printTimeSeries renders a time series with its title and date index.
func printTimeSeries(series api.TimeSeries) {
	if series.Title != "" {
		printSection(series.Title)
	}
	if series.Empty() {
		fmt.Println(tabular.Placeholder)
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Date\t"+strings.Join(series.Columns, "\t"))
	for _, point := range series.Points {
		cells := make([]string, 0, len(point.Values)+1)
		cells = append(cells, point.Time.Format("2006-01-02 15:04"))
		for _, v := range point.Values {
			cells = append(cells, v.String())
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Println()
}

// printText renders a free-text field, falling back to a dash when empty.
func printText(text string) {
	if text == "" {
		fmt.Println(tabular.Placeholder)
	} else {
		fmt.Println(text)
	}
	fmt.Println()
}

// reportFetchError prints classified API failures in red and swallows them
// so commands degrade to empty output. Transport errors propagate.
func reportFetchError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		errorColor.Println(apiErr.Message)
		return nil
	}
	return err
}
