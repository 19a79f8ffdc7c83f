// Package narrative renders the dual reply the bot relays to the customer:
// a raw payload for machines and a Spanish markdown text for people.
package narrative

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"

	DefaultBrand = "The Coffee Shop"
)

// Response is the envelope of every domain reply.
type Response struct {
	Raw      any    `json:"raw"`
	Markdown string `json:"markdown"`
	Type     string `json:"type"`
	Desc     string `json:"desc"`
}

type Formatter struct {
	Brand string
	// Loc is the shop's time zone for dates and times in the text; UTC when nil.
	Loc *time.Location
}

func New(brand string, loc *time.Location) *Formatter {
	if brand == "" {
		brand = DefaultBrand
	}
	return &Formatter{Brand: brand, Loc: loc}
}

func (f *Formatter) wrap(raw any, desc string) Response {
	return Response{Raw: raw, Markdown: "...", Type: "markdown", Desc: desc}
}

func (f *Formatter) local(t time.Time) time.Time {
	if f.Loc == nil {
		return t.UTC()
	}
	return t.In(f.Loc)
}

// date prints d/m/yyyy, the es-ES short form.
func (f *Formatter) date(t time.Time) string {
	return f.local(t).Format("2/1/2006")
}

func (f *Formatter) clock(t time.Time) string {
	return f.local(t).Format("15:04")
}

// text collects narrative lines; optional ones are dropped when empty.
type text struct {
	b strings.Builder
}

func (t *text) line(format string, args ...any) *text {
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteByte('\n')
	return t
}

func (t *text) optional(label string, v *string) *text {
	if v != nil && *v != "" {
		t.line("• %s: %s", label, *v)
	}
	return t
}

func (t *text) blank() *text {
	t.b.WriteByte('\n')
	return t
}

func (t *text) last(s string) string {
	t.b.WriteString(s)
	return t.b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
