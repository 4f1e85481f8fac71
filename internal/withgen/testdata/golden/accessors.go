package doc

//withgen:copy
type Document struct {
	Title string
	Body  string
	Tags  []string
}

// Summary is derived from the body, so the builder carries no Summary
// field.
func (d Document) Summary() string {
	if len(d.Body) > 80 {
		return d.Body[:80]
	}
	return d.Body
}

// SetSummary replaces the body with a short form.
func (d *Document) SetSummary(s string) {
	d.Body = s
}
