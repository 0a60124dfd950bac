// Package web holds the embedded HTML templates backing the browser-facing
// pages (list tables, add/edit forms, notices). Rendering is purely
// presentational: every page is produced from the same service results the
// JSON endpoints use.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Link is a navigation button shown on notice pages.
type Link struct {
	Href  string
	Label string
	Class string
}

// orNA renders an optional text field, showing N/A when absent.
func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

// orEmpty renders an optional text field for form pre-fill.
func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fmtPrice renders a price with two decimals.
func fmtPrice(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// fmtDate renders an optional date as YYYY-MM-DD, empty when absent.
func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// fmtDateNA renders an optional date, showing N/A when absent.
func fmtDateNA(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02")
}

// fmtDateTime renders a timestamp the way the list views show it.
func fmtDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// sameID reports whether an optional id matches, for select pre-fill.
func sameID(p *int64, id int64) bool {
	return p != nil && *p == id
}

var funcMap = template.FuncMap{
	"orNA":        orNA,
	"orEmpty":     orEmpty,
	"fmtPrice":    fmtPrice,
	"fmtDate":     fmtDate,
	"fmtDateNA":   fmtDateNA,
	"fmtDateTime": fmtDateTime,
	"sameID":      sameID,
}

// Templates parses the embedded page templates. It panics on a malformed
// template set, which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl"))
}
