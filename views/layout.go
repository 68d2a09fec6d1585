// Package views renders the public HTML pages.
package views

import (
	"time"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// LayoutProps are shared by every page.
type LayoutProps struct {
	SiteName string
	Title    string
	Active   string
}

type navLink struct {
	path, label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/services", "Services"},
	{"/portfolio", "Portfolio"},
	{"/blog", "Blog"},
	{"/about", "About"},
	{"/contact", "Contact"},
}

func navbar(props LayoutProps) g.Node {
	links := make([]g.Node, 0, len(navLinks))
	for _, l := range navLinks {
		links = append(links, A(Href(l.path), g.If(l.path == props.Active, Class("active")), g.Text(l.label)))
	}
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(props.SiteName))),
		),
		Div(Class("nav-right"), g.Group(links)),
	)
}

func footer(props LayoutProps) g.Node {
	return Footer(Class("footer"),
		P(g.Textf("© %d %s. All rights reserved.", time.Now().Year(), props.SiteName)),
	)
}

// Layout wraps children in the site chrome.
func Layout(props LayoutProps, children ...g.Node) g.Node {
	title := props.SiteName
	if props.Title != "" {
		title = props.Title + " | " + props.SiteName
	}
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
			),
			Body(
				Div(Class("container"),
					navbar(props),
					Main(g.Group(children)),
				),
				footer(props),
			),
		),
	)
}
