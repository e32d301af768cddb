package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lifetime is how long every issued token stays valid (exp = iat + Lifetime).
const Lifetime = 7 * 24 * time.Hour

var (
	// ErrMalformed covers every structural failure: wrong segment count,
	// bad base64, unparseable payload JSON, or a signature that does not
	// match recomputation.
	ErrMalformed = errors.New("malformed token")

	// ErrUnsetSecret is returned when signature verification is requested
	// but no signing secret is configured. Callers must treat this as a
	// configuration fault, never as "always valid".
	ErrUnsetSecret = errors.New("signing secret is not set")
)

// Claims is the token payload. Field order matters: the encoded JSON must be
// byte-identical to what existing clients were issued, so sub/email/rol/iat/
// exp/jti stay in this exact order.
type Claims struct {
	Sub   int64  `json:"sub"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
	Iat   int64  `json:"iat"`
	Exp   int64  `json:"exp"`
	Jti   string `json:"jti"`
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Codec builds and parses the compact three-part HS256 token format.
//
// Decode verifies the signature unless the codec was constructed with
// verifySignature=false. That opt-out mirrors a legacy deployment mode and is
// insecure; leave verification on.
type Codec struct {
	secret          string
	verifySignature bool
	now             func() time.Time
}

// NewCodec returns a Codec signing with secret. A nil now falls back to
// time.Now; tests inject a fixed clock.
func NewCodec(secret string, verifySignature bool, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: secret, verifySignature: verifySignature, now: now}
}

// Encode issues a signed token for the subject. The jti is a fresh random
// UUID so two tokens for the same subject at the same instant still differ.
//
// Encode deliberately does not reject an empty secret: issuance always
// succeeds and the verification side fails closed instead (ErrUnsetSecret).
func (c *Codec) Encode(subjectID int64, email, rol string) (string, error) {
	now := c.now().Unix()
	claims := Claims{
		Sub:   subjectID,
		Email: email,
		Rol:   rol,
		Iat:   now,
		Exp:   now + int64(Lifetime/time.Second),
		Jti:   uuid.NewString(),
	}

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadB64 := base64.RawURLEncoding.EncodeToString(payloadJSON)
	signatureB64 := c.sign(headerB64, payloadB64)

	return headerB64 + "." + payloadB64 + "." + signatureB64, nil
}

// Decode parses tokenString back into its claims. Structural failures come
// back as ErrMalformed; they never panic, whatever the input.
//
// Decode does NOT check exp — expiry is the session guard's decision, made
// against its own clock.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}
	headerB64, payloadB64, signatureB64 := parts[0], parts[1], parts[2]

	if _, err := decodeSegment(headerB64); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}
	payloadJSON, err := decodeSegment(payloadB64)
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", ErrMalformed, err)
	}

	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload JSON: %v", ErrMalformed, err)
	}

	if c.verifySignature {
		if c.secret == "" {
			return nil, ErrUnsetSecret
		}
		if !c.VerifySignature(headerB64, payloadB64, signatureB64) {
			return nil, fmt.Errorf("%w: signature mismatch", ErrMalformed)
		}
	}

	return &claims, nil
}

// VerifySignature recomputes the HMAC over headerB64+"."+payloadB64 and
// compares it to signatureB64 in constant time. An empty secret always
// verifies false.
func (c *Codec) VerifySignature(headerB64, payloadB64, signatureB64 string) bool {
	if c.secret == "" {
		return false
	}
	expected := c.sign(headerB64, payloadB64)
	return hmac.Equal([]byte(signatureB64), []byte(expected))
}

func (c *Codec) sign(headerB64, payloadB64 string) string {
	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write([]byte(headerB64 + "." + payloadB64))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// decodeSegment restores base64url padding to a multiple of 4, then decodes.
// Tokens in the wild carry unpadded segments, but padded input still decodes.
func decodeSegment(seg string) ([]byte, error) {
	if rem := len(seg) % 4; rem > 0 {
		seg += strings.Repeat("=", 4-rem)
	}
	return base64.URLEncoding.DecodeString(seg)
}
