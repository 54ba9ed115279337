package web

import (
	"html"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"sectionheading/web/pages"
	"sectionheading/web/pages/comps"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// setupRoutes configures the preview routes for the given sample headings
func setupRoutes(s *rweb.Server, samples []comps.SectionHeading) {
	preview := pages.NewPreview(samples)

	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(preview.Render())
	})

	// Single fragment, e.g. /section?title=Pricing&subtitle=Simple+plans&centered=true
	s.Get("/section", func(ctx rweb.Context) error {
		heading, err := sectionFromQuery(ctx.Request().QueryParam)
		if err != nil {
			logger.Debug("Rejected section request", "error", err.Error())
			return writeText(ctx, http.StatusBadRequest, err.Error())
		}
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(heading.String())
	})

	s.Get("/healthz", func(ctx rweb.Context) error {
		return writeText(ctx, http.StatusOK, "ok")
	})
}

// classToken limits caller supplied classes to characters that cannot leave an attribute value
var classToken = regexp.MustCompile(`^[A-Za-z0-9_:/.-]+$`)

// sectionFromQuery builds a heading from request query values.
// The component writes text as given, so query text is escaped here
// and the empty title is rejected here.
func sectionFromQuery(get func(string) string) (comps.SectionHeading, error) {
	h := comps.SectionHeading{
		Title:     html.EscapeString(get("title")),
		Subtitle:  html.EscapeString(get("subtitle")),
		ClassName: get("class"),
	}
	if h.Title == "" {
		return h, serr.New("title is required")
	}

	for _, tok := range strings.Fields(h.ClassName) {
		if !classToken.MatchString(tok) {
			return h, serr.New("invalid class value, tokens may only use letters, digits and _:/.-")
		}
	}

	if centered := get("centered"); centered != "" {
		v, err := strconv.ParseBool(centered)
		if err != nil {
			return h, serr.Wrap(err, "invalid centered value, expected true/false")
		}
		h.Centered = v
	}
	return h, nil
}

func writeText(ctx rweb.Context, status int, msg string) error {
	ctx.SetStatus(status)
	ctx.Response().SetHeader("Content-Type", "text/plain; charset=utf-8")
	return ctx.Bytes([]byte(msg))
}
