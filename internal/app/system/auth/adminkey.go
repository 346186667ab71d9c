package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/mentorhub/internal/app/system/ratelimit"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

// AdminKeyHeader carries the plaintext admin key.
const AdminKeyHeader = "X-Admin-Key"

// RejectFunc is told about every refused request; the audit logger's
// AdminKeyRejected fits.
type RejectFunc func(ctx context.Context, r *http.Request, reason string)

// AdminGate guards mutating endpoints with a bcrypt-hashed shared key.
type AdminGate struct {
	hash     []byte
	limiter  *ratelimit.Limiter
	onReject RejectFunc
	logger   *zap.Logger
}

// NewAdminGate validates hash and returns a gate. An empty hash leaves the
// gate open, which is only meant for local development.
func NewAdminGate(hash string, limiter *ratelimit.Limiter, onReject RejectFunc, logger *zap.Logger) (*AdminGate, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("admin key hash: %w", err)
		}
	} else {
		logger.Warn("admin key hash not set; mutating endpoints are open")
	}
	return &AdminGate{hash: []byte(hash), limiter: limiter, onReject: onReject, logger: logger}, nil
}

// HashAdminKey returns the bcrypt hash to put in configuration.
func HashAdminKey(key string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Open reports whether no key is configured.
func (g *AdminGate) Open() bool {
	return len(g.hash) == 0
}

// Require rejects requests without the admin key: 401 when the key is
// missing or wrong, 429 once an address has failed too often.
func (g *AdminGate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.Open() {
			next.ServeHTTP(w, r)
			return
		}

		ip := ratelimit.ClientIP(r)
		if g.limiter != nil && g.limiter.Blocked(ip) {
			g.reject(w, r, http.StatusTooManyRequests, "too many failed attempts")
			return
		}

		key := r.Header.Get(AdminKeyHeader)
		if key == "" {
			g.reject(w, r, http.StatusUnauthorized, "missing admin key")
			return
		}
		if bcrypt.CompareHashAndPassword(g.hash, []byte(key)) != nil {
			if g.limiter != nil {
				g.limiter.Allow(ip)
			}
			g.reject(w, r, http.StatusUnauthorized, "wrong admin key")
			return
		}
		if g.limiter != nil {
			g.limiter.Reset(ip)
		}
		next.ServeHTTP(w, r)
	})
}

func (g *AdminGate) reject(w http.ResponseWriter, r *http.Request, status int, reason string) {
	g.logger.Warn("admin key rejected",
		zap.String("reason", reason),
		zap.String("path", r.URL.Path),
		zap.String("ip", ratelimit.ClientIP(r)))
	if g.onReject != nil {
		g.onReject(r.Context(), r, reason)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, reason)
}
