package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/phoenixwrites/phoenix/auth"
	"github.com/phoenixwrites/phoenix/config"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/store"
	"github.com/phoenixwrites/phoenix/utils"
)

const adminBase = "/api/v1/admin-test"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	cfg := config.AppConfig{
		GinMode:            "test",
		SiteName:           "Phoenix Writes",
		AdminPath:          "/admin-test",
		AllowedOrigins:     []string{"*"},
		RateLimitPerMinute: 1000,
		ContactNotifyEmail: "hello@example.com",
	}
	db, err := config.OpenDatabase(config.AppConfig{DBDriver: "sqlite", SQLitePath: "file::memory:", LogLevel: "silent"})
	s.Require().NoError(err)
	s.Require().NoError(config.Migrate(db, &models.Post{}, &models.AdminUser{}, &models.Inquiry{}))

	posts := store.NewGormPostStore(db)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range []models.Post{
		{ID: "a", Title: "Writing Better Hooks", Excerpt: "Open strong", Content: "# Hooks\n\nBody", Category: models.CategoryWritingTips},
		{ID: "b", Title: "CV Mistakes", Excerpt: "Avoid these", Content: "Body", Category: models.CategoryCVTips},
		{ID: "c", Title: "Brand Stories", Excerpt: "Why stories sell", Content: "Body", Category: models.CategoryStorytelling},
	} {
		p.CreatedAt = base.Add(-time.Duration(i) * 24 * time.Hour)
		p.UpdatedAt = p.CreatedAt
		s.Require().NoError(posts.CreatePost(ctx, &p))
	}

	svc := auth.NewService(store.NewGormUserStore(db), "router-secret", time.Hour, utils.NewTokenBlacklist(nil), nil)
	_, err = svc.CreateAdmin(ctx, "admin@example.com", "correct-horse", "Phoenix")
	s.Require().NoError(err)

	s.router = SetupRouter(Deps{Config: cfg, DB: db, Posts: posts, Auth: svc, AccessLog: zap.NewNop()})
}

func (s *RouterSuite) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *RouterSuite) login() string {
	w, env := s.do(http.MethodPost, adminBase+"/login", "", gin.H{"email": "admin@example.com", "password": "correct-horse"})
	s.Require().Equal(http.StatusOK, w.Code)
	var data struct {
		State string `json:"state"`
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("authenticated", data.State)
	s.Require().NotEmpty(data.Token)
	return data.Token
}

func (s *RouterSuite) TestHealthAndRequestID() {
	w, env := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(0, env.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestBlogListing() {
	w, env := s.do(http.MethodGet, "/api/v1/blog/posts", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var data struct {
		Featured *struct {
			ID string `json:"id"`
		} `json:"featured"`
		Posts []struct {
			ID string `json:"id"`
		} `json:"posts"`
		Total    int    `json:"total"`
		Empty    bool   `json:"empty"`
		Category string `json:"category"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Require().NotNil(data.Featured)
	s.Equal("a", data.Featured.ID)
	s.Len(data.Posts, 2)
	s.Equal("b", data.Posts[0].ID)
	s.Equal(3, data.Total)
	s.False(data.Empty)
	s.Equal(models.CategoryAll, data.Category)

	_, env = s.do(http.MethodGet, "/api/v1/blog/posts?category=CV+Tips&search=+mistakes+", "", nil)
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("b", data.Featured.ID)
	s.Empty(data.Posts)

	_, env = s.do(http.MethodGet, "/api/v1/blog/posts?search=nothing-matches", "", nil)
	data.Featured = nil
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.True(data.Empty)
	s.Nil(data.Featured)
}

func (s *RouterSuite) TestBlogDetail() {
	w, env := s.do(http.MethodGet, "/api/v1/blog/posts/a", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var data struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
		URL  string `json:"url"`
		HTML string `json:"html"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("writing-better-hooks", data.Slug)
	s.Equal("/blog/a/writing-better-hooks", data.URL)
	s.Contains(data.HTML, "<h1")

	w, env = s.do(http.MethodGet, "/api/v1/blog/posts/missing", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(40401, env.Code)
}

func (s *RouterSuite) TestContentEndpoints() {
	w, _ := s.do(http.MethodGet, "/api/v1/services", "", nil)
	s.Equal(http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, "/api/v1/about", "", nil)
	s.Equal(http.StatusOK, w.Code)
	w, env := s.do(http.MethodGet, "/api/v1/portfolio?category=nope", "", nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(40030, env.Code)
	w, _ = s.do(http.MethodGet, "/api/v1/blog/categories", "", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestAdminRequiresToken() {
	w, env := s.do(http.MethodGet, adminBase+"/posts", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(40101, env.Code)

	w, env = s.do(http.MethodGet, adminBase+"/posts", "garbage", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(40105, env.Code)

	w, env = s.do(http.MethodPost, adminBase+"/login", "", gin.H{"email": "admin@example.com", "password": "wrong"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(40106, env.Code)
	s.Equal("Invalid login credentials", env.Message)

	w, env = s.do(http.MethodPost, adminBase+"/login", "", gin.H{"email": "admin@example.com"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(40003, env.Code)
}

func (s *RouterSuite) TestAdminSession() {
	_, env := s.do(http.MethodGet, adminBase+"/session", "", nil)
	s.Contains(string(env.Data), `"unauthenticated"`)

	token := s.login()
	_, env = s.do(http.MethodGet, adminBase+"/session", token, nil)
	s.Contains(string(env.Data), `"authenticated"`)
	s.Contains(string(env.Data), "admin@example.com")
}

func (s *RouterSuite) TestAdminEditorLifecycle() {
	token := s.login()

	_, env := s.do(http.MethodGet, adminBase+"/posts", token, nil)
	var list struct {
		Posts []models.Post `json:"posts"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Len(list.Posts, 2)

	w, env := s.do(http.MethodPost, adminBase+"/posts", token, gin.H{"title": "T", "excerpt": "E", "content": "C", "category": "Nope"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(40010, env.Code)

	w, env = s.do(http.MethodPost, adminBase+"/posts", token, gin.H{"title": "T", "excerpt": "E", "content": "C", "category": models.CategoryBusiness})
	s.Require().Equal(http.StatusCreated, w.Code)
	var created models.Post
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.NotEmpty(created.ID)

	_, env = s.do(http.MethodGet, adminBase+"/posts", token, nil)
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Len(list.Posts, 3)
	s.Equal(created.ID, list.Posts[0].ID)

	w, env = s.do(http.MethodGet, adminBase+"/posts/"+created.ID+"/edit", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"mode":"edit"`)

	w, _ = s.do(http.MethodPut, adminBase+"/posts/"+created.ID, token, gin.H{"title": "T2", "excerpt": "E", "content": "C", "category": models.CategoryBusiness})
	s.Equal(http.StatusOK, w.Code)

	w, env = s.do(http.MethodDelete, adminBase+"/posts/"+created.ID, token, nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal(40910, env.Code)

	w, _ = s.do(http.MethodDelete, adminBase+"/posts/"+created.ID+"?confirm=true", token, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.do(http.MethodPut, adminBase+"/posts/"+created.ID, token, gin.H{"title": "T2", "excerpt": "E", "content": "C", "category": models.CategoryBusiness})
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(40410, env.Code)
}

func (s *RouterSuite) TestAdminDraftFlow() {
	token := s.login()

	w, env := s.do(http.MethodPost, adminBase+"/draft/new", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"mode":"create"`)

	_, _ = s.do(http.MethodPut, adminBase+"/draft", token, gin.H{"title": "Drafted", "excerpt": "E", "content": "C", "category": models.CategoryCreative})
	w, env = s.do(http.MethodPost, adminBase+"/draft/save", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), "Drafted")

	_, env = s.do(http.MethodGet, adminBase+"/draft", token, nil)
	s.Contains(string(env.Data), `"title":""`)

	_, _ = s.do(http.MethodPut, adminBase+"/draft", token, gin.H{"title": "Throwaway"})
	_, env = s.do(http.MethodDelete, adminBase+"/draft", token, nil)
	s.NotContains(string(env.Data), "Throwaway")
}

func (s *RouterSuite) TestLogoutRevokesAndDropsWorkspace() {
	token := s.login()
	w, _ := s.do(http.MethodPost, adminBase+"/posts", token, gin.H{"title": "T", "excerpt": "E", "content": "C", "category": models.CategoryBusiness})
	s.Require().Equal(http.StatusCreated, w.Code)

	w, env := s.do(http.MethodPost, adminBase+"/logout", token, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), `"unauthenticated"`)

	w, env = s.do(http.MethodGet, adminBase+"/posts", token, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(40104, env.Code)

	fresh := s.login()
	_, env = s.do(http.MethodGet, adminBase+"/posts", fresh, nil)
	var list struct {
		Posts []models.Post `json:"posts"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Len(list.Posts, 2)
}

func (s *RouterSuite) TestContactSubmit() {
	w, env := s.do(http.MethodPost, "/api/v1/contact", "", gin.H{
		"name": "Ada", "email": "ada@example.com", "service": "Other", "message": "<b>Hi</b> there",
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Contains(string(env.Data), `"message":"Hi there"`)

	w, env = s.do(http.MethodPost, "/api/v1/contact", "", gin.H{"name": "Ada", "email": "not-an-email", "service": "Other", "message": "x"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(40020, env.Code)
	s.Contains(string(env.Data), `"email"`)

	w, env = s.do(http.MethodPost, "/api/v1/contact", "", gin.H{"name": "Ada", "email": "ada@example.com", "service": "Plumbing", "message": "x"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(string(env.Data), `"service"`)
}

func (s *RouterSuite) TestPages() {
	for _, path := range []string{"/", "/services", "/portfolio", "/portfolio?category=bogus", "/blog", "/blog?category=CV+Tips", "/about", "/contact"} {
		w, _ := s.do(http.MethodGet, path, "", nil)
		s.Equal(http.StatusOK, w.Code, path)
		s.Contains(w.Header().Get("Content-Type"), "text/html", path)
	}

	w, _ := s.do(http.MethodGet, "/blog?post=b", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `role="dialog"`)

	w, _ = s.do(http.MethodGet, "/blog/a/writing-better-hooks", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Writing Better Hooks")

	w, _ = s.do(http.MethodGet, "/blog/a/old-slug", "", nil)
	s.Equal(http.StatusMovedPermanently, w.Code)
	s.Equal("/blog/a/writing-better-hooks", w.Header().Get("Location"))

	w, _ = s.do(http.MethodGet, "/blog/zzz/x", "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/no/such/page", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/html")

	w, env := s.do(http.MethodGet, "/api/v1/nope", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(40400, env.Code)
}

func (s *RouterSuite) TestAdminPutRefreshesOpenDraft() {
	token := s.login()
	w, _ := s.do(http.MethodGet, adminBase+"/posts/1/edit", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w, _ = s.do(http.MethodPut, adminBase+"/posts/1", token, gin.H{"title": "Fixed via PUT", "excerpt": "E", "content": "C", "category": models.CategoryBusiness})
	s.Require().Equal(http.StatusOK, w.Code)

	w, env := s.do(http.MethodPost, adminBase+"/draft/save", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(string(env.Data), "Fixed via PUT")

	_, env = s.do(http.MethodGet, adminBase+"/posts/1", token, nil)
	s.Contains(string(env.Data), "Fixed via PUT")
}
