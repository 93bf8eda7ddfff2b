package team

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	role := Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	if existing, _ := s.repo.GetByEmail(ctx, req.Email); existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := &Member{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Position:     req.Position,
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		role := Role(*req.Role)
		if !role.Valid() {
			return nil, ErrInvalidRole
		}
		member.Role = role
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Avatar != nil {
		member.AvatarURL = *req.Avatar
	}
	member.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
