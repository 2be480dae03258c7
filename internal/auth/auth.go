// Package auth implements the stub authentication layer: account records
// and sessions live in Redis, sessions are carried as signed JWTs. There
// is no external identity provider.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	models "io.winapps.bumpjournal/internal/models/journal"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong
	// passwords.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrEmailTaken indicates an account already exists for the email.
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidToken indicates a token that is malformed, expired, or
	// whose session was revoked.
	ErrInvalidToken = errors.New("auth: invalid or expired token")
)

// Manager issues and verifies sessions.
type Manager struct {
	redis  *redis.Client
	secret []byte
	expiry time.Duration
}

// NewManager creates a session manager.
func NewManager(redisClient *redis.Client, secret string, expiry time.Duration) *Manager {
	return &Manager{redis: redisClient, secret: []byte(secret), expiry: expiry}
}

func userKey(uid string) string    { return "user:" + uid }
func emailKey(email string) string { return "user_email:" + strings.ToLower(email) }
func sessionKey(uid string) string { return "session:" + uid }

type storedUser struct {
	UID          string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u storedUser) toUser() *models.User {
	return &models.User{
		UID:          u.UID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// CreateUser registers a new account.
func (m *Manager) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := m.redis.Get(ctx, emailKey(email)).Result()
	if err == nil && existing != "" {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := storedUser{
		UID:          uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := m.redis.Set(ctx, userKey(user.UID), raw, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to store account: %w", err)
	}
	if err := m.redis.Set(ctx, emailKey(email), user.UID, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to index account email: %w", err)
	}

	return user.toUser(), nil
}

// Authenticate checks an email/password pair against the stored account.
func (m *Manager) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	uid, err := m.redis.Get(ctx, emailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	raw, err := m.redis.Get(ctx, userKey(uid)).Result()
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	var user storedUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to parse account record: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user.toUser(), nil
}

// GetUser loads an account by uid.
func (m *Manager) GetUser(ctx context.Context, uid string) (*models.User, error) {
	raw, err := m.redis.Get(ctx, userKey(uid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	var user storedUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("failed to parse account record: %w", err)
	}
	return user.toUser(), nil
}

// IssueToken creates a signed session token for the user and records the
// session so it can be revoked.
func (m *Manager) IssueToken(ctx context.Context, uid string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := m.redis.Set(ctx, sessionKey(uid), now.UTC().Format(time.RFC3339), m.expiry).Err(); err != nil {
		return "", fmt.Errorf("failed to record session: %w", err)
	}
	return token, nil
}

// VerifyToken validates a session token and returns the user uid.
func (m *Manager) VerifyToken(ctx context.Context, token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	// A revoked session invalidates otherwise well-formed tokens
	if err := m.redis.Get(ctx, sessionKey(claims.Subject)).Err(); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// RevokeSession drops the user's session record, invalidating any
// outstanding tokens.
func (m *Manager) RevokeSession(ctx context.Context, uid string) error {
	return m.redis.Del(ctx, sessionKey(uid)).Err()
}

// ActiveSessionUIDs lists the uids with a live session.
func (m *Manager) ActiveSessionUIDs(ctx context.Context) ([]string, error) {
	var uids []string
	iter := m.redis.Scan(ctx, 0, "session:*", 0).Iterator()
	for iter.Next(ctx) {
		uids = append(uids, strings.TrimPrefix(iter.Val(), "session:"))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return uids, nil
}
