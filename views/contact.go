package views

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"github.com/phoenixwrites/phoenix/content"
)

// ContactForm is the state of the contact form between submissions.
type ContactForm struct {
	Name    string
	Email   string
	Service string
	Budget  string
	Message string

	CaptchaID    string
	CaptchaImage string

	Errors    map[string]string
	Submitted bool
}

func field(label, name string, control g.Node, errs map[string]string) g.Node {
	return Div(Class("field"),
		g.El("label", g.Attr("for", name), g.Text(label)),
		control,
		g.If(errs[name] != "", P(Class("error"), g.Text(errs[name]))),
	)
}

func options(placeholder string, choices []string, selected string) []g.Node {
	out := []g.Node{Option(Value(""), g.Text(placeholder))}
	for _, c := range choices {
		out = append(out, Option(Value(c), g.If(c == selected, Selected()), g.Text(c)))
	}
	return out
}

// ContactPage renders the contact form, or a thank-you note after a successful submission.
func ContactPage(props LayoutProps, opts content.ContactOptions, form ContactForm) g.Node {
	props.Active = "/contact"
	channels := []g.Node{}
	for _, c := range opts.Channels {
		channels = append(channels, Div(Class("channel"), H3(g.Text(c.Title)), P(g.Text(c.Details)), Small(g.Text(c.Description))))
	}

	if form.Submitted {
		return Layout(props,
			H1(g.Text("Get in touch")),
			Div(Class("success"), P(g.Text("Thank you! Your message has been sent. I'll get back to you within 24 hours."))),
			Div(Class("channels"), g.Group(channels)),
		)
	}

	errs := form.Errors
	return Layout(props,
		H1(g.Text("Get in touch")),
		FormEl(Method("post"), Action("/contact"),
			field("Name", "name", Input(Type("text"), ID("name"), Name("name"), Value(form.Name), Required()), errs),
			field("Email", "email", Input(Type("email"), ID("email"), Name("email"), Value(form.Email), Required()), errs),
			field("Service", "service", Select(ID("service"), Name("service"), Required(), g.Group(options("Select a service", opts.Services, form.Service))), errs),
			field("Budget", "budget", Select(ID("budget"), Name("budget"), g.Group(options("Select budget range", opts.Budgets, form.Budget))), errs),
			field("Message", "message", Textarea(ID("message"), Name("message"), Required(), g.Text(form.Message)), errs),
			g.If(form.CaptchaID != "", Div(Class("captcha"),
				Img(Src(form.CaptchaImage), Alt("captcha")),
				Input(Type("hidden"), Name("captcha_id"), Value(form.CaptchaID)),
				field("Code", "captcha", Input(Type("text"), ID("captcha"), Name("captcha"), Required()), errs),
			)),
			g.If(errs["form"] != "", P(Class("error"), g.Text(errs["form"]))),
			Button(Type("submit"), Class("button primary"), g.Text("Send Message")),
		),
		Div(Class("channels"), g.Group(channels)),
	)
}
