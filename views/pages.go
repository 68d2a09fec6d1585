package views

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/phoenixwrites/phoenix/content"
)

// HomePage is the landing page.
func HomePage(props LayoutProps, services []content.Service, latest []PostCard) g.Node {
	props.Active = "/"
	cards := []g.Node{}
	for _, s := range services {
		cards = append(cards, serviceCard(s, false))
	}
	posts := []g.Node{}
	for _, c := range latest {
		posts = append(posts, postCard(c))
	}
	return Layout(props,
		Section(Class("hero"),
			H1(g.Text("Words that rise from the ashes")),
			P(g.Text("Creative, professional and academic writing that gives your ideas a voice.")),
			A(Href("/contact"), Class("button primary"), g.Text("Start a project")),
		),
		Section(Class("services"), H2(g.Text("What I write")), Div(Class("grid"), g.Group(cards))),
		g.If(len(posts) > 0, Section(Class("latest"), H2(g.Text("From the blog")), Div(Class("grid"), g.Group(posts)))),
	)
}

func serviceCard(s content.Service, withFeatures bool) g.Node {
	features := []g.Node{}
	if withFeatures {
		for _, f := range s.Features {
			features = append(features, Li(g.Text(f)))
		}
	}
	return Article(Class("card service"), ID("service-"+s.ID),
		H3(g.Text(s.Title)),
		Span(Class("price"), g.Text(s.Price)),
		P(g.Text(s.Description)),
		g.If(withFeatures, Ul(g.Group(features))),
	)
}

// ServicesPage lists every service and the working process.
func ServicesPage(props LayoutProps, services []content.Service, steps []content.Step) g.Node {
	props.Active = "/services"
	cards := []g.Node{}
	for _, s := range services {
		cards = append(cards, serviceCard(s, true))
	}
	process := []g.Node{}
	for _, st := range steps {
		process = append(process, Li(Strong(g.Text(st.Number+" "+st.Title)), P(g.Text(st.Description))))
	}
	return Layout(props,
		H1(g.Text("Services")),
		Div(Class("grid"), g.Group(cards)),
		Section(Class("process"), H2(g.Text("How we work together")), Ol(g.Group(process))),
	)
}

// PortfolioPage shows portfolio items under the active filter.
func PortfolioPage(props LayoutProps, filters []content.PortfolioFilter, active string, items []content.PortfolioItem) g.Node {
	props.Active = "/portfolio"
	tabs := []g.Node{}
	for _, f := range filters {
		tabs = append(tabs, A(Href("/portfolio?category="+f.ID), g.If(f.ID == active, Class("active")), g.Text(f.Label)))
	}
	cards := []g.Node{}
	for _, it := range items {
		tags := []g.Node{}
		for _, t := range it.Tags {
			tags = append(tags, Span(Class("tag"), g.Text(t)))
		}
		cards = append(cards, Article(Class("card portfolio"),
			Img(Src(it.Image), Alt(it.Title)),
			Span(Class("type"), g.Text(it.Type)),
			H3(g.Text(it.Title)),
			P(g.Text(it.Description)),
			BlockQuote(g.Text(it.Preview)),
			Div(Class("tags"), g.Group(tags)),
		))
	}
	return Layout(props,
		H1(g.Text("Portfolio")),
		Nav(Class("filters"), g.Group(tabs)),
		Div(Class("grid"), g.Group(cards)),
	)
}

// AboutPage shows values and headline numbers.
func AboutPage(props LayoutProps, about content.About) g.Node {
	props.Active = "/about"
	stats := []g.Node{}
	for _, s := range about.Stats {
		stats = append(stats, Div(Class("stat"), H3(g.Text(s.Number)), P(g.Text(s.Label))))
	}
	values := []g.Node{}
	for _, v := range about.Values {
		values = append(values, Article(Class("card value"), H3(g.Text(v.Title)), P(g.Text(v.Description))))
	}
	return Layout(props,
		H1(g.Text("About Phoenix")),
		Div(Class("stats"), g.Group(stats)),
		Section(H2(g.Text("Values")), Div(Class("grid"), g.Group(values))),
	)
}
