package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// CookieName is the name of the admin session cookie.
const CookieName = "admin_session"

// maxAge keeps the session cookie alive for 7 days.
const maxAge = 7 * 24 * 60 * 60

// Session is the payload carried in the session cookie. The token is not
// signed: any holder of the literal cookie value can present it. Validity is
// enforced by resolving AdminID against the admins table on every use.
type Session struct {
	AdminID   uint  `json:"adminId"`
	Timestamp int64 `json:"timestamp"`
}

// Encode serializes a session for the given admin into an opaque cookie
// value. The base64 layer only makes the JSON cookie-safe, it adds no
// integrity protection.
func Encode(adminID uint) string {
	payload, _ := json.Marshal(Session{AdminID: adminID, Timestamp: time.Now().UnixMilli()})
	return base64.RawURLEncoding.EncodeToString(payload)
}

// Decode extracts the session from a cookie value. Malformed input of any
// kind yields ok=false, never an error.
func Decode(value string) (Session, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || s.AdminID == 0 {
		return Session{}, false
	}
	return s, true
}

// NewCookie builds the 7-day http-only session cookie.
func NewCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session on the client.
func ExpiredCookie(secure bool) *http.Cookie {
	c := NewCookie("", secure)
	c.MaxAge = -1
	return c
}
