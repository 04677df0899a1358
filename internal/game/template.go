package game

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for class message templates.
var templateFuncs = sprig.TxtFuncMap()

// StrikeData is the data available to class message templates.
type StrikeData struct {
	Actor   string
	Target  string
	Ability string
	Damage  int
}

// ExpandTemplate expands a class message template using the provided data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// checkTemplate verifies that a message template parses.
func checkTemplate(tmplStr string) error {
	_, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	return err
}
