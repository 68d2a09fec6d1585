package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/phoenixwrites/phoenix/content"
	"github.com/phoenixwrites/phoenix/models"
	"github.com/phoenixwrites/phoenix/utils"
)

// Notifier delivers inquiry notifications; *utils.Mailer satisfies it.
type Notifier interface {
	Configured() bool
	Send(to, subject, body string) error
}

// ContactController accepts project inquiries.
type ContactController struct {
	db             *gorm.DB
	notifier       Notifier
	notifyTo       string
	captchaEnabled bool
}

func NewContactController(db *gorm.DB, n Notifier, notifyTo string, captchaEnabled bool) *ContactController {
	return &ContactController{db: db, notifier: n, notifyTo: notifyTo, captchaEnabled: captchaEnabled}
}

type inquiryRequest struct {
	Name      string `json:"name" form:"name" binding:"required,max=128"`
	Email     string `json:"email" form:"email" binding:"required,email,max=255"`
	Service   string `json:"service" form:"service" binding:"required"`
	Budget    string `json:"budget" form:"budget"`
	Message   string `json:"message" form:"message" binding:"required,max=5000"`
	CaptchaID string `json:"captcha_id" form:"captcha_id"`
	Captcha   string `json:"captcha" form:"captcha"`
}

var fieldMessages = map[string]string{
	"Name":    "Please enter your name",
	"Email":   "Please enter a valid email address",
	"Service": "Please select a service",
	"Message": "Please tell me about your project",
}

// bindErrors converts binding failures into per-field messages.
func bindErrors(err error) map[string]string {
	errs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = "Invalid form submission"
		return errs
	}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		if fe.Tag() == "max" {
			msg = fmt.Sprintf("%s is too long", fe.Field())
		}
		errs[strings.ToLower(fe.Field())] = msg
	}
	return errs
}

// submit validates the choices and captcha, then stores and forwards the inquiry.
// A non-empty map reports field errors.
func (c *ContactController) submit(req inquiryRequest, remoteIP string) (models.Inquiry, map[string]string, error) {
	errs := map[string]string{}
	if !content.IsContactService(req.Service) {
		errs["service"] = "Please select a service"
	}
	if !content.IsBudget(req.Budget) {
		errs["budget"] = "Please select a budget range"
	}
	if c.captchaEnabled && !utils.VerifyCaptcha(req.CaptchaID, strings.TrimSpace(req.Captcha)) {
		errs["captcha"] = "Incorrect verification code"
	}
	if len(errs) > 0 {
		return models.Inquiry{}, errs, nil
	}

	inq := models.Inquiry{
		Name:     strings.TrimSpace(utils.StripTags(req.Name)),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Service:  req.Service,
		Budget:   req.Budget,
		Message:  strings.TrimSpace(utils.StripTags(req.Message)),
		RemoteIP: remoteIP,
	}
	if inq.Name == "" || inq.Message == "" {
		if inq.Name == "" {
			errs["name"] = fieldMessages["Name"]
		}
		if inq.Message == "" {
			errs["message"] = fieldMessages["Message"]
		}
		return models.Inquiry{}, errs, nil
	}
	if err := c.db.Create(&inq).Error; err != nil {
		return models.Inquiry{}, nil, err
	}
	c.notify(&inq)
	return inq, nil, nil
}

func (c *ContactController) notify(inq *models.Inquiry) {
	if c.notifier == nil || c.notifyTo == "" || !c.notifier.Configured() {
		return
	}
	subject := fmt.Sprintf("New inquiry: %s from %s", inq.Service, inq.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nService: %s\nBudget: %s\n\n%s\n",
		inq.Name, inq.Email, inq.Service, inq.Budget, inq.Message)
	if err := c.notifier.Send(c.notifyTo, subject, body); err != nil {
		utils.Sugar.Warnf("inquiry %d notification failed: %v", inq.ID, err)
		return
	}
	inq.Notified = true
	if err := c.db.Model(inq).Update("notified", true).Error; err != nil {
		utils.Sugar.Warnf("mark inquiry %d notified: %v", inq.ID, err)
	}
}

// Options lists the form choices.
func (c *ContactController) Options(ctx *gin.Context) {
	utils.Success(ctx, gin.H{
		"options":         content.Contact(c.notifyTo),
		"captcha_enabled": c.captchaEnabled,
	})
}

// Captcha issues a fresh image captcha.
func (c *ContactController) Captcha(ctx *gin.Context) {
	id, b64, err := utils.GenerateCaptcha()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to generate captcha")
		return
	}
	utils.Success(ctx, gin.H{"captcha_id": id, "captcha_image": b64})
}

// Submit accepts a JSON inquiry.
func (c *ContactController) Submit(ctx *gin.Context) {
	var req inquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Respond(ctx, http.StatusBadRequest, 40020, "invalid inquiry", gin.H{"errors": bindErrors(err)})
		return
	}
	inq, errs, err := c.submit(req, ctx.ClientIP())
	if err != nil {
		utils.Sugar.Errorf("store inquiry: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to send message")
		return
	}
	if len(errs) > 0 {
		utils.Respond(ctx, http.StatusBadRequest, 40020, "invalid inquiry", gin.H{"errors": errs})
		return
	}
	utils.Created(ctx, inq)
}
