package shared

import "github.com/rohanthewiz/element"

// Banner is the top bar of a preview page.
type Banner struct {
	Title string
}

func (b Banner) Render(builder *element.Builder) any {
	builder.HeaderClass("preview-banner").R(
		builder.H1().T(b.Title),
	)
	return nil
}
