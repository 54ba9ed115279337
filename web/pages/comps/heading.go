package comps

import "github.com/rohanthewiz/element"

const (
	headingBaseClass     = "mb-12"
	headingCenteredClass = "text-center"
	headingTitleClass    = "text-3xl font-bold tracking-tight"
	headingSubtitleClass = "mt-4 text-lg text-muted-foreground"
)

// SectionHeading renders a titled section header with an optional subtitle.
// Title is written as given; Subtitle is omitted entirely when empty.
type SectionHeading struct {
	Title     string
	Subtitle  string
	Centered  bool
	ClassName string // extra classes merged onto the container
}

// Classes returns the container class list.
func (h SectionHeading) Classes() string {
	return CN(headingBaseClass, When(h.Centered, headingCenteredClass), h.ClassName)
}

func (h SectionHeading) Render(b *element.Builder) (x any) {
	b.DivClass(h.Classes()).R(
		b.H2Class(headingTitleClass).T(h.Title),
		b.Wrap(func() {
			if h.Subtitle != "" {
				b.PClass(headingSubtitleClass).T(h.Subtitle)
			}
		}),
	)
	return
}

// String renders the heading on its own as an HTML fragment.
func (h SectionHeading) String() string {
	b := element.NewBuilder()
	h.Render(b)
	return b.String()
}
