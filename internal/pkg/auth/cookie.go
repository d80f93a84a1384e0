package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

// SessionCookieName имя куки с opaque id сессии.
const SessionCookieName = "session_id"

var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieSigner подписывает id сессии, чтобы кука не подделывалась.
// Само состояние сессии живет на сервере, в куке только id + подпись.
type CookieSigner struct {
	secret []byte
}

func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret)}
}

func (c *CookieSigner) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Encode превращает id сессии в значение куки вида "<id>.<подпись>".
func (c *CookieSigner) Encode(id string) string {
	return id + "." + c.sign(id)
}

// Decode проверяет подпись и возвращает id сессии.
func (c *CookieSigner) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", ErrInvalidCookie
	}

	if subtle.ConstantTimeCompare([]byte(sig), []byte(c.sign(id))) != 1 {
		return "", ErrInvalidCookie
	}

	return id, nil
}

// SessionID достает и валидирует id сессии из запроса.
func (c *CookieSigner) SessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	return c.Decode(cookie.Value)
}

// SetSessionCookie ставит куку сессии на maxAge.
func (c *CookieSigner) SetSessionCookie(w http.ResponseWriter, id string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    c.Encode(id),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie сбрасывает куку при выходе.
func (c *CookieSigner) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
