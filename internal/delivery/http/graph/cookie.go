package graph

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"habit/config"
	"habit/internal/domain/service"
)

const (
	refreshCookieName = "refreshToken"
	signedPrefix      = "s:"
)

type httpExchangeKey struct{}

// httpExchange gives resolvers access to the cookies of the current request.
type httpExchange struct {
	req *http.Request
	res http.ResponseWriter
}

// WithHTTP attaches the request and response so that resolvers can read and
// write cookies.
func WithHTTP(ctx context.Context, req *http.Request, res http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpExchangeKey{}, &httpExchange{req: req, res: res})
}

func exchangeFrom(ctx context.Context) *httpExchange {
	exchange, _ := ctx.Value(httpExchangeKey{}).(*httpExchange)

	return exchange
}

// RefreshCookie writes and reads the HttpOnly refresh token cookie. Values are
// signed with HMAC-SHA256 so that a tampered cookie is treated as absent.
type RefreshCookie struct {
	secret   []byte
	domain   string
	secure   bool
	sameSite http.SameSite
	maxAge   time.Duration
}

// NewRefreshCookie is the constructor for RefreshCookie.
func NewRefreshCookie(cfg *config.Config, tokenSvc service.TokenService) *RefreshCookie {
	return &RefreshCookie{
		secret:   []byte(cfg.SecretKey.Cookie),
		domain:   cfg.Cookie.Domain,
		secure:   cfg.Cookie.Secure,
		sameSite: parseSameSite(cfg.Cookie.SameSite),
		maxAge:   tokenSvc.RefreshTokenTTL(),
	}
}

// Set stores token in the response cookie.
func (rc *RefreshCookie) Set(ctx context.Context, token string) {
	exchange := exchangeFrom(ctx)
	if exchange == nil {
		return
	}

	cookie := rc.base()
	cookie.Value = rc.sign(token)
	cookie.MaxAge = int(rc.maxAge.Seconds())
	http.SetCookie(exchange.res, cookie)
}

// Clear expires the cookie on the client.
func (rc *RefreshCookie) Clear(ctx context.Context) {
	exchange := exchangeFrom(ctx)
	if exchange == nil {
		return
	}

	cookie := rc.base()
	cookie.MaxAge = -1
	http.SetCookie(exchange.res, cookie)
}

// Read returns the verified token of the request cookie, or "".
func (rc *RefreshCookie) Read(ctx context.Context) string {
	exchange := exchangeFrom(ctx)
	if exchange == nil {
		return ""
	}

	cookie, err := exchange.req.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}

	token, ok := rc.unsign(cookie.Value)
	if !ok {
		return ""
	}

	return token
}

func (rc *RefreshCookie) base() *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Path:     "/",
		Domain:   rc.domain,
		Secure:   rc.secure,
		HttpOnly: true,
		SameSite: rc.sameSite,
	}
}

// sign renders "s:<value>.<signature>" with an unpadded standard base64
// HMAC-SHA256 signature, the layout cookie-signature produces.
func (rc *RefreshCookie) sign(value string) string {
	return signedPrefix + value + "." + rc.signature(value)
}

func (rc *RefreshCookie) unsign(signed string) (string, bool) {
	if !strings.HasPrefix(signed, signedPrefix) {
		return "", false
	}
	signed = strings.TrimPrefix(signed, signedPrefix)

	dot := strings.LastIndexByte(signed, '.')
	if dot < 0 {
		return "", false
	}
	value, signature := signed[:dot], signed[dot+1:]
	if !hmac.Equal([]byte(signature), []byte(rc.signature(value))) {
		return "", false
	}

	return value, true
}

func (rc *RefreshCookie) signature(value string) string {
	mac := hmac.New(sha256.New, rc.secret)
	mac.Write([]byte(value))

	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
