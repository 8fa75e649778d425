package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/domain"
	"github.com/tablesprint/catalog-api/internal/domain/entity"
	"github.com/tablesprint/catalog-api/internal/domain/repository"
	"github.com/tablesprint/catalog-api/pkg/jwt"
	"github.com/tablesprint/catalog-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TTL vigencia del token; 1 hora si ExpMinutes no es positivo.
func (c JWTConfig) TTL() time.Duration {
	if c.ExpMinutes <= 0 {
		return jwt.DefaultTTL
	}
	return time.Duration(c.ExpMinutes) * time.Minute
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario con la contraseña hasheada. No emite token.
// Email o password vacíos devuelven ErrInvalidInput.
// La consulta previa por email es solo un atajo; la garantía real es UNIQUE(email),
// que el repositorio traduce también a ErrEmailAlreadyExists.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) error {
	if in.Email == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return err
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: hash,
	}
	return uc.userRepo.Create(ctx, user)
}

// Login verifica email/password y genera el JWT. Email inexistente y password incorrecta
// devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	ok, err := password.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.TTL())
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}
