package model

import "golang.org/x/net/html"

// PageLocation describes where the remote page currently is.
type PageLocation struct {
	Href string `json:"href"`
}

// PageEvent carries the raw markup of the remote page as captured by the
// instrumented target, before normalization.
type PageEvent struct {
	HTML     string       `json:"html"`
	Location PageLocation `json:"location"`
}

func (PageEvent) Channel() Channel { return ChannelPage }

// PageSnapshot is the single current page view: the raw markup, the
// normalized renderable tree, and the location the markup was captured
// at. The whole value is replaced on each committed page event.
type PageSnapshot struct {
	Raw      string       `json:"raw"`
	Markup   string       `json:"markup"` // normalized markup
	Tree     *html.Node   `json:"-"`
	Location PageLocation `json:"location"`
}
