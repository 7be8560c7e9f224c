package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Parse failure taxonomy. Callers never see the underlying library error.
var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrBadSignature     = errors.New("bad token signature")
	ErrExpired          = errors.New("token expired")
	ErrUnexpectedSchema = errors.New("unexpected token schema")
)

// Claims is the signed token payload. A Claims value is never mutated after
// construction; Issue and Parse both hand out fresh copies.
type Claims struct {
	IssuedAt  int64   `json:"iat"`
	Subject   string  `json:"sub"`
	ExpiresAt int64   `json:"exp"`
	Scopes    []Scope `json:"scope"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (c Claims) GetIssuer() (string, error) { return "", nil }

func (c Claims) GetSubject() (string, error) { return c.Subject, nil }

func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Codec issues and verifies signed tokens. The signing secret is fixed at
// construction; the codec keeps no other state and is safe for concurrent
// use. Every Parse re-verifies the full token, nothing is cached.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret}
}

// Issue builds a claim set stamped with the current time and returns the
// compact signed token string.
func (c *Codec) Issue(scopes []Scope, subject string, expiry time.Time) (string, error) {
	claims := Claims{
		IssuedAt:  time.Now().Unix(),
		Subject:   subject,
		ExpiresAt: expiry.Unix(),
		Scopes:    append([]Scope(nil), scopes...),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token signature and freshness and returns the embedded
// claims. HS256 is the only accepted algorithm; claims whose expiry is at or
// before the verification time are rejected with no leeway; payloads carrying
// fields outside the claim schema are rejected.
func (c *Codec) Parse(tokenString string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, classifyParseError(err)
	}
	if !parsed.Valid {
		return Claims{}, ErrBadSignature
	}

	if err := checkClaimSchema(tokenString); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformedToken
	default:
		return ErrMalformedToken
	}
}

// checkClaimSchema re-decodes the payload segment strictly so that extra or
// unknown fields fail verification instead of being silently dropped.
func checkClaimSchema(tokenString string) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return ErrMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return ErrMalformedToken
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	var probe Claims
	if err := dec.Decode(&probe); err != nil {
		return ErrUnexpectedSchema
	}
	return nil
}
