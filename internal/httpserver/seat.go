// internal/httpserver/seat.go
//
// Seat tokens. Each match hands out one HS256 token per player. requireSeat
// checks a token against the match in the URL; seatFrom reads the seat back
// from the request context.

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/lingo/internal/game"
)

// seatClaims binds a bearer to one seat of one match.
type seatClaims struct {
	Match string `json:"match"`
	Seat  int    `json:"seat"`
	jwt.RegisteredClaims
}

// SeatSigner issues and verifies HS256 seat tokens.
type SeatSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSeatSigner returns a signer; ttl defaults to 12h.
func NewSeatSigner(secret string, ttl time.Duration) *SeatSigner {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SeatSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for player p of match matchID.
func (s *SeatSigner) Issue(matchID string, p game.Player) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("issue seat: invalid player %d", int(p))
	}
	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, seatClaims{
		Match: matchID,
		Seat:  int(p),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	return t.SignedString(s.secret)
}

// Verify parses a token and returns its match ID and seat.
func (s *SeatSigner) Verify(token string) (string, game.Player, error) {
	var claims seatClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", game.NoPlayer, err
	}
	if !t.Valid {
		return "", game.NoPlayer, errors.New("invalid token")
	}
	p := game.Player(claims.Seat)
	if claims.Match == "" || !p.Valid() {
		return "", game.NoPlayer, errors.New("invalid seat claims")
	}
	return claims.Match, p, nil
}

// ctxSeatKey is the context key type for the verified seat.
type ctxSeatKey struct{}

func seatFrom(ctx context.Context) game.Player {
	p, _ := ctx.Value(ctxSeatKey{}).(game.Player)
	return p
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
