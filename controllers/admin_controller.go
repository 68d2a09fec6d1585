package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenixwrites/phoenix/admin"
	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/middleware"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/utils"
	"github.com/phoenixwrites/phoenix/views"
)

// AdminController exposes the gate and the per-admin post editor.
type AdminController struct {
	auth       *auth.Service
	workspaces *admin.Workspaces
}

func NewAdminController(a *auth.Service, w *admin.Workspaces) *AdminController {
	return &AdminController{auth: a, workspaces: w}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func gateResponse(gate *admin.Gate, token string) gin.H {
	resp := gin.H{"state": gate.State().String()}
	if id, ok := gate.Identity(); ok {
		resp["identity"] = id
	}
	if token != "" {
		resp["token"] = token
	}
	return resp
}

// Session reports the gate state for the caller's token, which may be absent.
func (a *AdminController) Session(ctx *gin.Context) {
	token, _, _ := middleware.BearerToken(ctx)
	gate := admin.NewGate(a.auth.Client(token), utils.Logger)
	gate.Activate(ctx.Request.Context())
	utils.Success(ctx, gateResponse(gate, ""))
}

// Login signs an admin in and returns a bearer token.
func (a *AdminController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}

	client := a.auth.Client("")
	gate := admin.NewGate(client, utils.Logger)
	if err := gate.SignIn(ctx.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.Error(ctx, http.StatusUnauthorized, 40106, gate.ErrorMessage())
			return
		}
		utils.Sugar.Errorf("admin sign-in: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50002, gate.ErrorMessage())
		return
	}
	utils.Success(ctx, gateResponse(gate, client.Token()))
}

// Logout revokes the token and discards the admin's unsaved workspace.
func (a *AdminController) Logout(ctx *gin.Context) {
	id, _ := middleware.IdentityFrom(ctx)
	token := ctx.GetString(middleware.ContextTokenKey)

	gate := admin.NewGate(a.auth.Client(token), utils.Logger)
	gate.Activate(ctx.Request.Context())
	_ = gate.SignOut(ctx.Request.Context())
	a.workspaces.Drop(id)

	utils.Success(ctx, gateResponse(gate, ""))
}

func (a *AdminController) editor(ctx *gin.Context) *admin.Editor {
	id, _ := middleware.IdentityFrom(ctx)
	return a.workspaces.For(id)
}

type adminPost struct {
	models.Post
	URL  string `json:"url"`
	Date string `json:"date"`
}

func adminPostOf(p models.Post) adminPost {
	return adminPost{Post: p, URL: views.PostURL(p), Date: p.LongDate()}
}

type draftResponse struct {
	Mode  string      `json:"mode"`
	Draft admin.Draft `json:"draft"`
}

func draftOf(d admin.Draft) draftResponse {
	return draftResponse{Mode: d.Mode().String(), Draft: d}
}

// editorError maps editor failures onto the response envelope.
func editorError(ctx *gin.Context, err error) {
	var verr *admin.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.Respond(ctx, http.StatusBadRequest, 40010, verr.Error(), gin.H{"field": verr.Field})
	case errors.Is(err, admin.ErrPostNotFound):
		utils.Error(ctx, http.StatusNotFound, 40410, "post not found")
	case errors.Is(err, admin.ErrDeleteNotConfirmed):
		utils.Error(ctx, http.StatusConflict, 40910, "deletion not confirmed")
	default:
		utils.Sugar.Errorf("admin editor: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50003, "editor failure")
	}
}

// ListPosts returns the workspace posts, newest first, plus the open draft.
func (a *AdminController) ListPosts(ctx *gin.Context) {
	ed := a.editor(ctx)
	posts := ed.Posts()
	out := make([]adminPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, adminPostOf(p))
	}
	utils.Success(ctx, gin.H{
		"posts":      out,
		"categories": models.Categories(),
		"editor":     draftOf(ed.Draft()),
	})
}

func (a *AdminController) GetPost(ctx *gin.Context) {
	p, err := a.editor(ctx).Get(ctx.Param("id"))
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Success(ctx, adminPostOf(p))
}

func (a *AdminController) CreatePost(ctx *gin.Context) {
	var d admin.Draft
	if err := ctx.ShouldBindJSON(&d); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}
	d.ID = ""
	p, err := a.editor(ctx).Create(d)
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Created(ctx, adminPostOf(p))
}

func (a *AdminController) UpdatePost(ctx *gin.Context) {
	var d admin.Draft
	if err := ctx.ShouldBindJSON(&d); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}
	p, err := a.editor(ctx).Update(ctx.Param("id"), d)
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Success(ctx, adminPostOf(p))
}

// DeletePost removes a post only when ?confirm=true is passed.
func (a *AdminController) DeletePost(ctx *gin.Context) {
	confirmed := ctx.Query("confirm") == "true"
	err := a.editor(ctx).Delete(ctx.Param("id"), func(models.Post) bool { return confirmed })
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"deleted": ctx.Param("id")})
}

// EditPost loads a post into the draft.
func (a *AdminController) EditPost(ctx *gin.Context) {
	d, err := a.editor(ctx).Edit(ctx.Param("id"))
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Success(ctx, draftOf(d))
}

func (a *AdminController) GetDraft(ctx *gin.Context) {
	utils.Success(ctx, draftOf(a.editor(ctx).Draft()))
}

// NewDraft resets the draft to an empty post.
func (a *AdminController) NewDraft(ctx *gin.Context) {
	utils.Success(ctx, draftOf(a.editor(ctx).StartNew()))
}

// PutDraft replaces the draft fields. The draft keeps the id it was opened with.
func (a *AdminController) PutDraft(ctx *gin.Context) {
	var d admin.Draft
	if err := ctx.ShouldBindJSON(&d); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid request payload")
		return
	}
	ed := a.editor(ctx)
	ed.SetDraft(d)
	utils.Success(ctx, draftOf(ed.Draft()))
}

// SaveDraft creates or updates a post from the draft depending on its mode.
func (a *AdminController) SaveDraft(ctx *gin.Context) {
	p, err := a.editor(ctx).Save()
	if err != nil {
		editorError(ctx, err)
		return
	}
	utils.Success(ctx, adminPostOf(p))
}

func (a *AdminController) CancelDraft(ctx *gin.Context) {
	ed := a.editor(ctx)
	ed.Cancel()
	utils.Success(ctx, draftOf(ed.Draft()))
}
