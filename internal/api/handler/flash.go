package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// Flash messages shown to the browser.
const (
	msgLoginFailed      = "Login failed. Check your username and password."
	msgUsernameTaken    = "Username already exists. Please log in."
	msgInvalidPasskey   = "Invalid passkey for hospital registration."
	msgSignupSucceeded  = "Signup successful! Please log in."
	msgBookingConfirmed = "Booking confirmed."
	msgHospitalNotFound = "Hospital not found."
)

// redirectWithFlash queues msg for the next rendered page and redirects.
// Messages still pending from an earlier redirect are kept.
func redirectWithFlash(c echo.Context, path, msg string) error {
	msgs := append(readFlashes(c), msg)
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, path)
}

// popFlashes returns the pending messages and tells the browser to drop them.
func popFlashes(c echo.Context) []string {
	msgs := readFlashes(c)
	if _, err := c.Cookie(flashCookie); err == nil {
		c.SetCookie(&http.Cookie{
			Name:     flashCookie,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return msgs
}

// readFlashes decodes the flash cookie. A tampered cookie reads as empty.
func readFlashes(c echo.Context) []string {
	msgs := []string{}
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return msgs
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return msgs
	}
	var decoded []string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return msgs
	}
	return append(msgs, decoded...)
}
