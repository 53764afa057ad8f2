package services

import (
	"context"
	"time"

	"github.com/zeyadesperado/GymMaster/utils"
)

type AuthService struct {
	users  *UserService
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users *UserService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

// IssueToken authenticates the user and returns a signed bearer token.
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}
	return utils.GenerateJWT(s.secret, user.ID, user.Email, s.ttl)
}
