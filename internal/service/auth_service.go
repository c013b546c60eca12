package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/domain"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries a caller-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type AuthService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type RegisterInput struct {
	FirstName  string        `validate:"required"`
	LastName   string        `validate:"required"`
	Email      string        `validate:"required"`
	Password   string        `validate:"required,min=8"`
	Age        int           `validate:"required,gte=18,lte=30"`
	Gender     domain.Gender `validate:"required,oneof=male female other"`
	University string        `validate:"required"`
	Major      string        `validate:"required"`
	Year       string        `validate:"required"`
	Bio        string        `validate:"required"`
	Location   string        `validate:"required"`
	Interests  []string
	Photos     []string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	User  *domain.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, &ValidationError{Message: registrationMessage(fieldErrs[0])}
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:              uuid.New(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PasswordHash:    string(hashedPassword),
		Age:             input.Age,
		Gender:          input.Gender,
		University:      input.University,
		Major:           input.Major,
		Year:            input.Year,
		Bio:             input.Bio,
		Location:        input.Location,
		Interests:       input.Interests,
		Photos:          input.Photos,
		ProfileComplete: true,
		CreatedAt:       now,
		LastLoginAt:     now,
	}
	if user.Interests == nil {
		user.Interests = []string{}
	}
	if user.Photos == nil {
		user.Photos = []string{}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a wrong password so accounts cannot be enumerated.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.LastLoginAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// ForgotPassword acknowledges the request without revealing whether the
// email is registered. Reset-link delivery is out of scope for the demo.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) ValidateToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// registrationMessage maps a field error to the message the API has always
// returned for that field.
func registrationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 8 characters"
		}
	case "Age":
		return "Age must be between 18 and 30"
	case "Gender":
		return "Gender is required"
	case "University":
		return "University is required"
	case "Major":
		return "Major is required"
	case "Year":
		return "Academic year is required"
	case "Bio":
		return "Bio is required"
	case "Location":
		return "Location is required"
	}
	if fe.Tag() == "required" {
		return "Required fields are missing"
	}
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}
