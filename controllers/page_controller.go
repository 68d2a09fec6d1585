package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"

	"github.com/phoenixwrites/phoenix/blog"
	"github.com/phoenixwrites/phoenix/content"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
	"github.com/phoenixwrites/phoenix/views"
)

const homeLatest = 3

// PageController renders the public HTML site.
type PageController struct {
	blog     *BlogController
	posts    store.PostStore
	contact  *ContactController
	siteName string
}

func NewPageController(posts store.PostStore, contact *ContactController, siteName string) *PageController {
	return &PageController{
		blog:     NewBlogController(posts),
		posts:    posts,
		contact:  contact,
		siteName: siteName,
	}
}

func (p *PageController) props(title string) views.LayoutProps {
	return views.LayoutProps{SiteName: p.siteName, Title: title}
}

func render(ctx *gin.Context, status int, node g.Node) {
	ctx.Status(status)
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(ctx.Writer); err != nil {
		utils.Sugar.Errorf("render %s: %v", ctx.Request.URL.Path, err)
	}
}

// Home shows the service overview and the newest posts.
func (p *PageController) Home(ctx *gin.Context) {
	view, snap, err := p.blog.openView(ctx.Request.Context())
	defer view.Deactivate()

	latest := []views.PostCard{}
	if err == nil && snap.Status == blog.StatusReady {
		for _, post := range blog.Filter(snap.Posts, blog.AllPosts) {
			if len(latest) == homeLatest {
				break
			}
			latest = append(latest, views.CardOf(post))
		}
	}
	render(ctx, http.StatusOK, views.HomePage(p.props(""), content.Services(), latest))
}

func (p *PageController) Services(ctx *gin.Context) {
	render(ctx, http.StatusOK, views.ServicesPage(p.props("Services"), content.Services(), content.ProcessSteps()))
}

// Portfolio falls back to all items for an unknown category.
func (p *PageController) Portfolio(ctx *gin.Context) {
	active := ctx.DefaultQuery("category", content.PortfolioAll)
	items, err := content.Portfolio(active)
	if err != nil {
		active = content.PortfolioAll
		items, _ = content.Portfolio(active)
	}
	render(ctx, http.StatusOK, views.PortfolioPage(p.props("Portfolio"), content.PortfolioFilters(), active, items))
}

func (p *PageController) About(ctx *gin.Context) {
	render(ctx, http.StatusOK, views.AboutPage(p.props("About"), content.AboutPage()))
}

// Blog renders the filtered listing. ?post=<id> opens the detail overlay.
func (p *PageController) Blog(ctx *gin.Context) {
	var c blog.Criteria
	_ = ctx.ShouldBindQuery(&c)
	c.Search = strings.TrimSpace(c.Search)

	view, snap, err := p.blog.openView(ctx.Request.Context())
	defer view.Deactivate()

	data := views.BlogPageData{Status: snap.Status, Criteria: c, Categories: models.Categories(), Selection: blog.NoSelection{}}
	status := http.StatusOK
	switch {
	case err != nil:
		data.Status = blog.StatusError
		status = http.StatusGatewayTimeout
	case snap.Status == blog.StatusError:
		status = http.StatusBadGateway
	default:
		view.SetSearch(c.Search)
		view.SetCategory(c.Category)
		data.Listing = view.Listing()
		if id := strings.TrimSpace(ctx.Query("post")); id != "" {
			if _, err := view.OpenPost(id); err != nil {
				status = http.StatusNotFound
			}
		}
		data.Selection = view.Selection()
	}
	render(ctx, status, views.BlogPage(p.props("Blog"), data))
}

// Post is the standalone page for one post; a stale slug redirects to the canonical URL.
func (p *PageController) Post(ctx *gin.Context) {
	post, err := p.posts.GetPost(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		p.NotFound(ctx)
		return
	}
	if err != nil {
		utils.Sugar.Errorf("load post %s: %v", ctx.Param("id"), err)
		render(ctx, http.StatusBadGateway, views.BlogPage(p.props("Blog"), views.BlogPageData{Status: blog.StatusError, Selection: blog.NoSelection{}}))
		return
	}
	if ctx.Param("slug") != post.Slug() {
		ctx.Redirect(http.StatusMovedPermanently, views.PostURL(post))
		return
	}
	render(ctx, http.StatusOK, views.PostPage(p.props(""), post))
}

func (p *PageController) contactForm() views.ContactForm {
	form := views.ContactForm{}
	if p.contact.captchaEnabled {
		if id, b64, err := utils.GenerateCaptcha(); err == nil {
			form.CaptchaID, form.CaptchaImage = id, b64
		} else {
			utils.Sugar.Warnf("generate captcha: %v", err)
		}
	}
	return form
}

func (p *PageController) Contact(ctx *gin.Context) {
	render(ctx, http.StatusOK, views.ContactPage(p.props("Contact"), content.Contact(p.contact.notifyTo), p.contactForm()))
}

// ContactSubmit handles the HTML form, re-rendering it with field errors on failure.
func (p *PageController) ContactSubmit(ctx *gin.Context) {
	opts := content.Contact(p.contact.notifyTo)
	var req inquiryRequest
	bindErr := ctx.ShouldBind(&req)

	var (
		errs map[string]string
		err  error
	)
	if bindErr != nil {
		errs = bindErrors(bindErr)
	} else {
		_, errs, err = p.contact.submit(req, ctx.ClientIP())
	}
	if err != nil {
		utils.Sugar.Errorf("store inquiry: %v", err)
		errs = map[string]string{"form": "Something went wrong. Please try again."}
	}

	if len(errs) == 0 {
		render(ctx, http.StatusOK, views.ContactPage(p.props("Contact"), opts, views.ContactForm{Submitted: true}))
		return
	}
	form := p.contactForm()
	form.Name, form.Email, form.Service, form.Budget, form.Message = req.Name, req.Email, req.Service, req.Budget, req.Message
	form.Errors = errs
	status := http.StatusBadRequest
	if err != nil {
		status = http.StatusInternalServerError
	}
	render(ctx, status, views.ContactPage(p.props("Contact"), opts, form))
}

// NotFound answers JSON under /api and HTML elsewhere.
func (p *PageController) NotFound(ctx *gin.Context) {
	if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
		utils.Error(ctx, http.StatusNotFound, 40400, "not found")
		return
	}
	render(ctx, http.StatusNotFound, views.NotFoundPage(p.props("")))
}
