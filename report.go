// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kospeech

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Youngmi-Park/KoSpeech/result"
)

// ReportInput is the input for the evaluation report generation.
type ReportInput struct {
	Metric    string        `json:"metric"`
	ErrorRate float64       `json:"error_rate"`
	Pairs     []result.Pair `json:"pairs"`
}

const defaultReportTemplate = `evaluation report
metric: {{.Metric}}
error rate: {{printf "%.4f" .ErrorRate}}
samples: {{len .Pairs}}
{{range .Pairs}}
T: {{.Target}}
P: {{.Prediction}}
{{end}}`

// BuildReport renders the default evaluation report for the given input.
func BuildReport(input ReportInput) (string, error) {
	pt, err := template.New("report").Parse(defaultReportTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse the report template: %w", err)
	}
	return BuildReportFromTemplate(input, pt)
}

// BuildReportFromTemplateFile builds a report applying the given input to the template file.
func BuildReportFromTemplateFile(input ReportInput, filename string) (string, error) {
	pt, err := template.ParseFiles(filename)
	if err != nil {
		return "", fmt.Errorf("unable to read the template file: %w", err)
	}
	return BuildReportFromTemplate(input, pt)
}

// BuildReportFromTemplate builds a report applying the given input to the template.
func BuildReportFromTemplate(input ReportInput, pt *template.Template) (string, error) {
	out := new(bytes.Buffer)
	if err := pt.Execute(out, input); err != nil {
		return "", fmt.Errorf("unable to execute the template: %w", err)
	}
	return out.String(), nil
}
