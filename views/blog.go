package views

import (
	"net/url"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/phoenixwrites/phoenix/blog"
	"github.com/phoenixwrites/phoenix/models"
)

// Author is the byline shown on every post.
const Author = "Phoenix"

// PostCard is the list view of a post.
type PostCard struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Category      string `json:"category"`
	FeaturedImage string `json:"featured_image"`
	Date          string `json:"date"`
	Author        string `json:"author"`
	URL           string `json:"url"`
}

// CardOf builds the list view of p.
func CardOf(p models.Post) PostCard {
	return PostCard{
		ID:            p.ID,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Category:      p.Category,
		FeaturedImage: p.FeaturedImage,
		Date:          p.LongDate(),
		Author:        Author,
		URL:           PostURL(p),
	}
}

// PostURL is the deep link to p.
func PostURL(p models.Post) string {
	return "/blog/" + url.PathEscape(p.ID) + "/" + p.Slug()
}

// BlogPageData is what the blog page renders.
type BlogPageData struct {
	Status     blog.Status
	Criteria   blog.Criteria
	Categories []string
	Listing    blog.Listing
	Selection  blog.Selection
}

func blogQuery(c blog.Criteria, extra url.Values) string {
	q := url.Values{}
	if c.Search != "" {
		q.Set("search", c.Search)
	}
	if c.Category != "" && c.Category != models.CategoryAll {
		q.Set("category", c.Category)
	}
	for k, v := range extra {
		q[k] = v
	}
	if len(q) == 0 {
		return "/blog"
	}
	return "/blog?" + q.Encode()
}

func postCard(c PostCard) g.Node {
	return Article(Class("card post"),
		g.If(c.FeaturedImage != "", Img(Src(c.FeaturedImage), Alt(c.Title))),
		Span(Class("category"), g.Text(c.Category)),
		H3(A(Href(c.URL), g.Text(c.Title))),
		P(g.Text(c.Excerpt)),
		Small(g.Text(c.Author+" · "+c.Date)),
	)
}

func openLink(c blog.Criteria, p models.Post, child g.Node) g.Node {
	return A(Href(blogQuery(c, url.Values{"post": {p.ID}})), child)
}

// BlogPage renders the filterable listing with an optional detail overlay.
func BlogPage(props LayoutProps, d BlogPageData) g.Node {
	props.Active = "/blog"

	cats := []g.Node{A(Href(blogQuery(blog.Criteria{Search: d.Criteria.Search}, nil)),
		g.If(d.Criteria.Category == "" || d.Criteria.Category == models.CategoryAll, Class("active")), g.Text("All"))}
	for _, c := range d.Categories {
		cats = append(cats, A(Href(blogQuery(blog.Criteria{Search: d.Criteria.Search, Category: c}, nil)),
			g.If(c == d.Criteria.Category, Class("active")), g.Text(c)))
	}

	var body g.Node
	switch {
	case d.Status == blog.StatusLoading:
		body = P(Class("loading"), g.Text("Loading articles..."))
	case d.Status == blog.StatusError:
		body = P(Class("error"), g.Text("Articles are unavailable right now. Please try again later."))
	case d.Listing.Empty():
		body = Div(Class("empty"), H3(g.Text("No articles found")), P(g.Text("Try adjusting your search or filter criteria.")))
	default:
		f := *d.Listing.Featured
		rest := []g.Node{}
		for _, p := range d.Listing.Rest {
			rest = append(rest, openLink(d.Criteria, p, postCard(CardOf(p))))
		}
		body = g.Group([]g.Node{
			Section(Class("featured"), openLink(d.Criteria, f, postCard(CardOf(f)))),
			Div(Class("grid"), g.Group(rest)),
		})
	}

	return Layout(props,
		H1(g.Text("Blog")),
		FormEl(Method("get"), Action("/blog"), Class("search"),
			Input(Type("search"), Name("search"), Value(d.Criteria.Search), Placeholder("Search articles...")),
			g.If(d.Criteria.Category != "" && d.Criteria.Category != models.CategoryAll,
				Input(Type("hidden"), Name("category"), Value(d.Criteria.Category))),
		),
		Nav(Class("filters"), g.Group(cats)),
		body,
		detailOverlay(d.Criteria, d.Selection),
	)
}

func detailOverlay(c blog.Criteria, sel blog.Selection) g.Node {
	open, ok := sel.(blog.SelectedPost)
	if !ok {
		return nil
	}
	p := open.Post
	return Div(Class("overlay"), g.Attr("role", "dialog"),
		Article(Class("modal"),
			A(Href(blogQuery(c, nil)), Class("close"), g.Text("Close")),
			postBody(p),
			A(Href(PostURL(p)), g.Text("Permalink")),
		),
	)
}

func postBody(p models.Post) g.Node {
	return g.Group([]g.Node{
		g.If(p.FeaturedImage != "", Img(Src(p.FeaturedImage), Alt(p.Title))),
		Span(Class("category"), g.Text(p.Category)),
		H1(g.Text(p.Title)),
		Small(g.Text(Author + " · " + p.LongDate())),
		Div(Class("content"), g.Raw(RenderMarkdown(p.Content))),
	})
}

// PostPage is the standalone detail page.
func PostPage(props LayoutProps, p models.Post) g.Node {
	props.Active = "/blog"
	props.Title = p.Title
	return Layout(props,
		Article(Class("post-detail"), postBody(p)),
		A(Href("/blog"), g.Text("Back to blog")),
	)
}

// NotFoundPage is rendered for unknown pages and posts.
func NotFoundPage(props LayoutProps) g.Node {
	props.Title = "Not found"
	return Layout(props,
		H1(g.Text("Page not found")),
		A(Href("/"), g.Text("Go home")),
	)
}
