package utils

import (
	"sync"
	"time"

	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
)

var (
	captchaMu    sync.RWMutex
	captchaStore = base64Captcha.DefaultMemStore
)

// InitCaptcha switches captcha answers to Redis when a client is available.
func InitCaptcha(rc *redis.Client) {
	if rc == nil {
		return
	}
	captchaMu.Lock()
	captchaStore = NewRedisCaptchaStore(rc, 10*time.Minute)
	captchaMu.Unlock()
}

func currentCaptchaStore() base64Captcha.Store {
	captchaMu.RLock()
	defer captchaMu.RUnlock()
	return captchaStore
}

// GenerateCaptcha creates a digit captcha and returns (id, dataURI) for the contact form.
func GenerateCaptcha() (string, string, error) {
	driver := base64Captcha.NewDriverDigit(40, 120, 5, 0.7, 80)
	c := base64Captcha.NewCaptcha(driver, currentCaptchaStore())
	id, b64, _, err := c.Generate()
	return id, b64, err
}

// VerifyCaptcha verifies the provided answer; the captcha is consumed either way.
func VerifyCaptcha(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}
	return currentCaptchaStore().Verify(id, answer, true)
}
