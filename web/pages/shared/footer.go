package shared

import "github.com/rohanthewiz/element"

type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Div("class", "preview-footer").R(
		b.P().T("Rendered server-side with element"),
	)
	return nil
}
