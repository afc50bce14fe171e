package usecase

import (
	"encoding/csv"
	"strconv"
	"strings"

	"moodmeter-srv/internal/model"
)

// RenderReportCSV flattens a session report into the tabular export shape:
// a one-row summary block, a blank line, then the raw data points. It is a
// rendering adapter over the same report structure the JSON export uses.
func RenderReportCSV(report model.SessionReport) string {
	var sb strings.Builder

	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"channel", "from", "to", "avg", "min", "max", "calibration"})
	_ = w.Write([]string{
		report.Channel,
		strconv.FormatInt(report.From, 10),
		strconv.FormatInt(report.To, 10),
		formatFloat(report.Avg),
		formatFloat(report.Min),
		formatFloat(report.Max),
		formatFloat(report.Calibration),
	})
	w.Flush()

	sb.WriteString("\n")

	w = csv.NewWriter(&sb)
	_ = w.Write([]string{"ts", "score"})
	for _, p := range report.Data {
		_ = w.Write([]string{strconv.FormatInt(p.Ts, 10), formatFloat(p.Score)})
	}
	w.Flush()

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
