// Package shared contains components reused across preview pages.
package shared

// Page carries the document title and hands out the page chrome.
// Embed it in a page struct to get Banner and Footer.
type Page struct {
	Title string
}

func (p Page) Banner() Banner {
	return Banner{Title: p.Title}
}

func (p Page) Footer() Footer {
	return Footer{}
}
