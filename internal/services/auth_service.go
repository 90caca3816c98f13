package services

import (
	"errors"
	"fmt"
	"strings"

	"quehaypahacer/internal/models"
	"quehaypahacer/internal/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and logout.
type AuthService struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, favoriteRepo repositories.FavoriteRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		validate:     validator.New(),
		logger:       logger,
	}
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// Register creates a new account with a bcrypt-hashed password. The
// email is trimmed of surrounding whitespace before use. No session is
// started; the caller still has to log in.
func (s *AuthService) Register(name, email, password string) error {
	in := registerInput{
		Name:     name,
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: all fields are required and the password needs at least 6 characters", ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:                in.Name,
		Email:               in.Email,
		PasswordHash:        string(hashed),
		PreferredCategories: []string{},
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return nil
}

// Login authenticates the credentials and returns a fresh session with
// the user's favorites and preferred categories hydrated from the store.
// Unknown email and wrong password are deliberately indistinguishable.
func (s *AuthService) Login(email, password string) (*models.Session, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	favorites, err := s.favoriteRepo.EventIDs(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	user.Favorites = favorites

	session := models.NewSession(user)
	s.logger.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("session_id", session.ID.String()),
	)
	return session, nil
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout(session *models.Session) {
	if session.Authenticated() {
		s.logger.Info("user logged out", zap.Uint("user_id", session.User.ID))
	}
	session.Clear()
}
