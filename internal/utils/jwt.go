package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors for token verification outcomes
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens are the only credential the
// service issues: there is no refresh mechanism and no server-side session
// state, so a token is valid purely as a function of its signature and
// expiry at verification time.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// TokenClaims is the authorization context carried by every access token.
// BuildingID scopes all visitor operations performed with the token.
type TokenClaims struct {
    UserID     uint64 // subject user id
    Username   string // login name, echoed back in user summaries
    Role       string // super_admin | admin | guard
    BuildingID uint64 // building the user belongs to
}

// Verification errors.  Callers map these to distinct 401 responses.
var (
    ErrTokenExpired = errors.New("token expired")
    ErrTokenInvalid = errors.New("token invalid")
)

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the claims to embed, and a TTL in hours (24 in normal
// operation).  The JWT carries the subject (sub), username, role and
// building_id claims plus expiration (exp) and issued at (iat).
func NewAccessToken(secret string, cl TokenClaims, ttlHours int) (AccessToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub":         cl.UserID,
        "username":    cl.Username,
        "role":        cl.Role,
        "building_id": cl.BuildingID,
        "exp":         exp.Unix(),
        "iat":         time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken validates the signature and expiry of a raw token string
// and returns the embedded claims.  Expired tokens are reported as
// ErrTokenExpired so callers can distinguish them from structurally invalid
// or wrongly signed tokens, which come back as ErrTokenInvalid.
func ParseAccessToken(secret, raw string) (TokenClaims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Only HMAC signatures are accepted; reject other algorithms.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return TokenClaims{}, ErrTokenExpired
        }
        return TokenClaims{}, ErrTokenInvalid
    }
    if !tok.Valid {
        return TokenClaims{}, ErrTokenInvalid
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return TokenClaims{}, ErrTokenInvalid
    }
    out := TokenClaims{
        UserID:     claimUint(claims, "sub"),
        BuildingID: claimUint(claims, "building_id"),
    }
    if s, ok := claims["username"].(string); ok {
        out.Username = s
    }
    if s, ok := claims["role"].(string); ok {
        out.Role = s
    }
    if out.UserID == 0 {
        return TokenClaims{}, ErrTokenInvalid
    }
    return out, nil
}

// claimUint reads a numeric claim.  JSON decoding turns numbers into
// float64, so both the original uint64 and the decoded form are handled.
func claimUint(claims jwt.MapClaims, key string) uint64 {
    switch v := claims[key].(type) {
    case float64:
        return uint64(v)
    case uint64:
        return v
    case int64:
        return uint64(v)
    }
    return 0
}
