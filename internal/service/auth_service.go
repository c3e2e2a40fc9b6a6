package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"margadarsaka-be/internal/dto"
	"margadarsaka-be/internal/entity"
	"margadarsaka-be/internal/pkg/logger"
	"margadarsaka-be/internal/repository/specification"
	"margadarsaka-be/internal/repository/unitofwork"
)

type IAuthService interface {
	GuestLogin(ctx context.Context, req *dto.GuestLoginRequest) (*dto.AuthResponse, error)
	GetGoogleLoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	jwtSecret  string
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, clientID, clientSecret, redirectURL, jwtSecret string, log logger.ILogger) IAuthService {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &authService{
		uowFactory: uowFactory,
		googleConf: conf,
		jwtSecret:  jwtSecret,
		log:        log,
	}
}

// GuestLogin creates a throwaway account so the quiz and advisor work
// without a Google sign-in.
func (s *authService) GuestLogin(ctx context.Context, req *dto.GuestLoginRequest) (*dto.AuthResponse, error) {
	name := req.Name
	if name == "" {
		name = "Guest"
	}

	user := &entity.User{
		Id:        uuid.New(),
		Name:      name,
		Provider:  "guest",
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("auth", "guest login", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) GetGoogleLoginURL(state string) string {
	return s.googleConf.AuthCodeURL(state)
}

func (s *authService) HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	if code == "" {
		return nil, errors.New("missing code")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %v", err)
	}

	userInfoURL := "https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken
	resp, err := http.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading response: %v", err)
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     googleUser.Email,
			Name:      googleUser.Name,
			Provider:  "google",
			CreatedAt: time.Now(),
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}

		s.log.Info("auth", "new google user", map[string]interface{}{"user_id": user.Id.String()})
	}

	signed, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  toUserResponse(user),
	}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id.String(),
		"provider": user.Provider,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := s.jwtSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	return token.SignedString([]byte(secret))
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt,
	}
}
