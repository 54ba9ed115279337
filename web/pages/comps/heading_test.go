package comps

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func assertHTML(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("rendered HTML mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

// TestSectionHeadingTitleOnly covers a heading with no optional fields
func TestSectionHeadingTitleOnly(t *testing.T) {
	h := SectionHeading{Title: "Our Services"}
	html := h.String()

	assertHTML(t, html,
		`<div class="mb-12"><h2 class="text-3xl font-bold tracking-tight">Our Services</h2></div>`)

	if strings.Contains(html, "<p") {
		t.Error("heading without subtitle should not render a paragraph")
	}
	if strings.Contains(html, headingCenteredClass) {
		t.Error("heading should not be centered by default")
	}
}

// TestSectionHeadingSubtitleCentered covers subtitle and centering together
func TestSectionHeadingSubtitleCentered(t *testing.T) {
	h := SectionHeading{Title: "Pricing", Subtitle: "Simple plans", Centered: true}
	html := h.String()

	if !strings.Contains(html, ">Pricing</h2>") {
		t.Error("heading should contain title 'Pricing'")
	}
	if n := strings.Count(html, "<p"); n != 1 {
		t.Errorf("expected exactly one paragraph, got %d", n)
	}
	if !strings.Contains(html, ">Simple plans</p>") {
		t.Error("paragraph should contain subtitle 'Simple plans'")
	}
	if !strings.Contains(html, `class="mb-12 text-center"`) {
		t.Errorf("container should carry base and centering classes, got %s", html)
	}
}

// TestSectionHeadingExtraClasses verifies caller classes merge onto the container
func TestSectionHeadingExtraClasses(t *testing.T) {
	testCases := []struct {
		heading SectionHeading
		want    string
	}{
		{SectionHeading{Title: "X", ClassName: "custom-mb"}, "mb-12 custom-mb"},
		{SectionHeading{Title: "X", ClassName: "a b"}, "mb-12 a b"},
		{SectionHeading{Title: "X", ClassName: "mb-12 a"}, "mb-12 a"},
		{SectionHeading{Title: "X", Centered: true, ClassName: "a"}, "mb-12 text-center a"},
		{SectionHeading{Title: "X"}, "mb-12"},
	}

	for _, tc := range testCases {
		if got := tc.heading.Classes(); got != tc.want {
			t.Errorf("Classes() = %q; want %q", got, tc.want)
		}
		if html := tc.heading.String(); !strings.Contains(html, `<div class="`+tc.want+`">`) {
			t.Errorf("container class list should be %q, got %s", tc.want, html)
		}
	}
}

// TestSectionHeadingDeterministic verifies identical input renders identical output
func TestSectionHeadingDeterministic(t *testing.T) {
	a := SectionHeading{Title: "Pricing", Subtitle: "Simple plans", Centered: true, ClassName: "x y"}
	b := SectionHeading{Title: "Pricing", Subtitle: "Simple plans", Centered: true, ClassName: "x y"}

	if a.String() != b.String() {
		t.Error("identical headings should render identically")
	}
	if a.String() != a.String() {
		t.Error("repeated renders should be identical")
	}
}

// TestSectionHeadingInBuilder verifies the heading composes with other components
func TestSectionHeadingInBuilder(t *testing.T) {
	b := element.NewBuilder()
	b.Body().R(
		element.RenderComponents(b,
			SectionHeading{Title: "First"},
			SectionHeading{Title: "Second", Subtitle: "More"},
		),
	)
	html := b.String()

	if strings.Count(html, "<h2") != 2 {
		t.Error("expected two headings")
	}
	if strings.Count(html, "<p") != 1 {
		t.Error("expected one subtitle paragraph")
	}
	if strings.Index(html, "First") > strings.Index(html, "Second") {
		t.Error("headings should render in order")
	}
}
