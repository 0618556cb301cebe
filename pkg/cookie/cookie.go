package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"
)

const minSecretLength = 32

// Signed values are laid out as base64(value) "." base64(HMAC-SHA256(value)).
// The URL-safe base64 alphabet never contains a dot, so the first dot always
// splits cleanly.
const signedSeparator = "."

type Manager struct {
	secrets  []string
	defaults Options
}

// New creates a cookie Manager. Secrets are optional: without them the
// manager handles plain cookies only and the signed helpers return
// ErrNoSecret. Each provided secret must be at least 32 characters; the
// first one signs new cookies, the rest only verify so keys can rotate.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}.with(opts...)

	return &Manager{
		secrets:  secrets,
		defaults: defaults,
	}, nil
}

func buildCookie(name, value string, o Options) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     o.Path,
		Domain:   o.Domain,
		MaxAge:   o.MaxAge,
		Secure:   o.Secure,
		HttpOnly: o.HttpOnly,
		SameSite: o.SameSite,
	}
}

// Set writes a plain cookie using the manager defaults merged with opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	http.SetCookie(w, buildCookie(name, value, m.defaults.with(opts...)))
	return nil
}

// Get reads a plain cookie value. A missing cookie is ErrCookieNotFound.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the cookie immediately. Path and Domain must match the
// values used on Set or browsers keep the original cookie around.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	expired := buildCookie(name, "", m.defaults)
	expired.MaxAge = -1
	expired.Expires = time.Unix(0, 0)
	http.SetCookie(w, expired)
}

// SetSigned writes a cookie whose value is authenticated with HMAC-SHA256.
// The value stays readable by the client; only tampering is detected.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	if len(m.secrets) == 0 {
		return ErrNoSecret
	}
	return m.Set(w, name, encodeSigned(m.secrets[0], value), opts...)
}

// GetSigned reads a signed cookie, accepting signatures from any configured
// secret so cookies written before a key rotation keep verifying.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	if len(m.secrets) == 0 {
		return "", ErrNoSecret
	}

	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	encodedValue, signature, ok := strings.Cut(raw, signedSeparator)
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(signature), []byte(computeMAC(secret, value))) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func encodeSigned(secret, value string) string {
	return base64.URLEncoding.EncodeToString([]byte(value)) + signedSeparator + computeMAC(secret, []byte(value))
}

func computeMAC(secret string, value []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(value)
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
