package store

import (
	"errors"
	"fmt"
	"time"

	"docintel-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Verifier is the identity collaborator: it checks credentials and maps a
// persisted token back to the actor it was issued for.
type Verifier interface {
	Authenticate(email, password string) (user *entity.User, token string, err error)
	Resume(token string) (*entity.User, error)
}

// Credentials is the single hard-coded login pair. Only the bcrypt hash of
// the password is kept.
type Credentials struct {
	email string
	hash  []byte
}

func NewCredentials(email, password string) (Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash demo password: %w", err)
	}
	return Credentials{email: email, hash: hash}, nil
}

func (c Credentials) Match(email, password string) bool {
	if c.email == "" || email != c.email {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
}

// StaticVerifier accepts one credential pair and issues one fixed opaque
// token. Resume trusts any non-empty token without decoding it.
type StaticVerifier struct {
	credentials Credentials
	token       string
	actor       *entity.User
}

func NewStaticVerifier(credentials Credentials, token string, actor *entity.User) *StaticVerifier {
	return &StaticVerifier{credentials: credentials, token: token, actor: actor.Clone()}
}

func (v *StaticVerifier) Authenticate(email, password string) (*entity.User, string, error) {
	if !v.credentials.Match(email, password) {
		return nil, "", ErrAuthentication
	}
	return v.actor.Clone(), v.token, nil
}

func (v *StaticVerifier) Resume(token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	return v.actor.Clone(), nil
}

// JWTVerifier issues HS256 tokens for the actor and checks signature and
// expiry when a persisted token is resumed.
type JWTVerifier struct {
	credentials Credentials
	secret      []byte
	ttl         time.Duration
	actor       *entity.User
	now         func() time.Time
}

func NewJWTVerifier(credentials Credentials, secret string, ttl time.Duration, actor *entity.User) *JWTVerifier {
	return &JWTVerifier{
		credentials: credentials,
		secret:      []byte(secret),
		ttl:         ttl,
		actor:       actor.Clone(),
		now:         time.Now,
	}
}

func (v *JWTVerifier) Authenticate(email, password string) (*entity.User, string, error) {
	if !v.credentials.Match(email, password) {
		return nil, "", ErrAuthentication
	}

	now := v.now()
	claims := jwt.MapClaims{
		"user_id": v.actor.Id,
		"email":   v.actor.Email,
		"role":    string(v.actor.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(v.ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return v.actor.Clone(), token, nil
}

func (v *JWTVerifier) Resume(tokenStr string) (*entity.User, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if userID, _ := claims["user_id"].(string); userID != v.actor.Id {
		return nil, ErrInvalidToken
	}
	return v.actor.Clone(), nil
}
