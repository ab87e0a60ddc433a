package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-datetime-bench/internal/analyzer"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, report *analyzer.Report) error {
	return writeJSON(w, report)
}

func (f *JSONFormatter) FormatTrials(w io.Writer, summary *analyzer.TrialSummary) error {
	return writeJSON(w, summary)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
