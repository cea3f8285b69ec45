package service

import (
	"strings"
	"time"

	"github.com/zzirit/zzirit-api/internal/config"
	"github.com/zzirit/zzirit-api/internal/models"
	"github.com/zzirit/zzirit-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// MemberAuthService 会员认证服务
type MemberAuthService struct {
	cfg        *config.Config
	memberRepo repository.MemberRepository
}

// NewMemberAuthService 创建会员认证服务
func NewMemberAuthService(cfg *config.Config, memberRepo repository.MemberRepository) *MemberAuthService {
	return &MemberAuthService{
		cfg:        cfg,
		memberRepo: memberRepo,
	}
}

// MemberJWTClaims 会员 JWT 声明
type MemberJWTClaims struct {
	MemberID uint   `json:"member_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Register 注册会员
func (s *MemberAuthService) Register(email, password, name string) (*models.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := s.memberRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	member := &models.Member{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

// Login 会员登录
func (s *MemberAuthService) Login(email, password string) (*models.Member, string, time.Time, error) {
	member, err := s.memberRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if member == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	member.LastLoginAt = &now
	if err := s.memberRepo.Update(member); err != nil {
		return nil, "", time.Time{}, err
	}
	return member, token, expiresAt, nil
}

// GenerateJWT 生成会员 JWT Token
func (s *MemberAuthService) GenerateJWT(member *models.Member) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.MemberJWT.ExpireHours) * time.Hour)

	claims := MemberJWTClaims{
		MemberID: member.ID,
		Email:    member.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.MemberJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// GetMe 获取会员信息
func (s *MemberAuthService) GetMe(memberID uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	return member, nil
}
