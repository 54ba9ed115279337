// Package pages contains the preview pages served by the web host.
package pages

import (
	"sectionheading/web/pages/comps"
	"sectionheading/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Preview lists a set of section headings on one page so their
// class combinations can be inspected side by side.
type Preview struct {
	shared.Page
	Sections []comps.SectionHeading
}

// NewPreview builds the preview page for the given headings.
func NewPreview(sections []comps.SectionHeading) Preview {
	return Preview{
		Page:     shared.Page{Title: "Section Headings"},
		Sections: sections,
	}
}

func (p Preview) Render() (out string) {
	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("viewport", "width=device-width, initial-scale=1.0"),
			b.Title().T(p.Title),
		),
		b.Body().R(
			element.RenderComponents(b, p.Banner()),
			b.Main("class", "preview-sections").R(
				element.ForEach(p.Sections, func(s comps.SectionHeading) {
					b.DivClass("preview-section").R(
						element.RenderComponents(b, s),
						b.Small("class", "preview-classes").T(s.Classes()),
					)
				}),
			),
			element.RenderComponents(b, p.Footer()),
		),
	)

	return b.String()
}
