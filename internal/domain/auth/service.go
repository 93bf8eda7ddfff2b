package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"prodboard/internal/domain/team"
	jwtsvc "prodboard/internal/pkg/jwt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	members team.Repository
	jwt     *jwtsvc.Service
}

func NewService(members team.Repository, jwt *jwtsvc.Service) *Service {
	return &Service{members: members, jwt: jwt}
}

// Login checks credentials and returns a signed token plus the member.
func (s *Service) Login(ctx context.Context, email, password string) (string, *team.Member, error) {
	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(member.ID, string(member.Role))
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}

// Me resolves the authenticated member by id.
func (s *Service) Me(ctx context.Context, userID int64) (*team.Member, error) {
	return s.members.GetByID(ctx, userID)
}
