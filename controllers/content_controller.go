package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phoenixwrites/phoenix/content"
	"github.com/phoenixwrites/phoenix/utils"
)

// ContentController serves the fixed marketing copy.
type ContentController struct{}

func NewContentController() *ContentController { return &ContentController{} }

func (c *ContentController) Services(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"services": content.Services(),
		"process":  content.ProcessSteps(),
	})
}

// Portfolio filters portfolio items by ?category=.
func (c *ContentController) Portfolio(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", content.PortfolioAll)
	items, err := content.Portfolio(category)
	if errors.Is(err, content.ErrUnknownPortfolioCategory) {
		utils.Error(ctx, http.StatusBadRequest, 40030, "unknown portfolio category")
		return
	}
	utils.Success(ctx, gin.H{
		"category": category,
		"filters":  content.PortfolioFilters(),
		"items":    items,
	})
}

func (c *ContentController) About(ctx *gin.Context) {
	utils.Success(ctx, content.AboutPage())
}
