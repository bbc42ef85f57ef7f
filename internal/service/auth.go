package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"autosalon/internal/apperrors"
	"autosalon/internal/auth"
	"autosalon/internal/config"
	"autosalon/internal/models"
	"autosalon/internal/repository"
)

type AuthService struct {
	users *repository.UserRepo
	cfg   *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{users: repository.NewUserRepo(db), cfg: cfg}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, apperrors.New(apperrors.InvalidArgument, "Обязательные поля: name, email, password")
	}
	if !strings.Contains(in.Email, "@") {
		return nil, apperrors.New(apperrors.InvalidArgument, "Некорректный email")
	}
	if len(in.Password) < 6 {
		return nil, apperrors.New(apperrors.InvalidArgument, "Пароль должен быть не короче 6 символов")
	}

	// через регистрацию можно создавать только manager / viewer,
	// админы заводятся при инициализации базы
	if in.Role == "" {
		in.Role = models.RoleViewer
	}
	switch in.Role {
	case models.RoleManager, models.RoleViewer:
		// ок
	default:
		return nil, apperrors.New(apperrors.InvalidArgument, "Неверная роль")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка сохранения пользователя", err)
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.New(apperrors.InvalidArgument, "Обязательные поля: email, password")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.NotFound {
			return nil, apperrors.New(apperrors.Unauthenticated, "Неверный email или пароль")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.Unauthenticated, "Неверный email или пароль")
	}

	access, _, err := auth.NewAccessToken(s.cfg.JWTSecret, user, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка выпуска токена", err)
	}
	refresh, err := auth.NewRefreshToken(s.cfg.JWTRefreshSecret, user.ID, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Internal, "Ошибка выпуска токена", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, User: *user}, nil
}

// Refresh обменивает действующий refresh-токен на новый access-токен
// без повторного ввода пароля.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apperrors.New(apperrors.Unauthenticated, "Refresh token отсутствует")
	}

	claims, err := auth.ParseRefreshToken(s.cfg.JWTRefreshSecret, refreshToken)
	if err != nil {
		return "", apperrors.New(apperrors.Unauthenticated, "Неверный refresh token")
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	access, _, err := auth.NewAccessToken(s.cfg.JWTSecret, user, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Internal, "Ошибка выпуска токена", err)
	}
	return access, nil
}
