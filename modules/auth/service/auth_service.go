package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"internhub/core/cache"
	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/utils"
	"internhub/modules/auth/dto"
	"internhub/modules/auth/entity"
	"internhub/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// SessionManager is notified on login and logout so per-user background
// work (the calendar reminder engine) follows the session lifecycle.
type SessionManager interface {
	StartSession(ctx context.Context, userID uuid.UUID)
	StopSession(userID uuid.UUID)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, userID uuid.UUID, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)
	GoogleLoginURL() (*dto.GoogleLoginURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.AuthResponse, *errors.AppError)
}

type AuthService struct {
	repo     repository.AuthRepositoryInterface
	cache    cache.ICache
	sessions SessionManager
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.ICache, sessions SessionManager) AuthServiceInterface {
	return &AuthService{
		repo:     repo,
		cache:    c,
		sessions: sessions,
	}
}

func (service *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, *errors.AppError) {
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "username, email and a password of at least 8 characters are required", nil)
	}

	existing, err := service.repo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Signup:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := service.repo.CreateUser(ctx, &entity.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
	}

	return service.issueTokens(ctx, user)
}

func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(req.Email)

	blocked, err := service.cache.IsLoginBlocked(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error:", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrForbidden, "too many failed attempts, try again later", nil)
	}

	user, err := service.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil || !utils.ComparePassword(user.PasswordHash, req.Password) {
		service.recordFailedAttempt(ctx, email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	if errReset := service.cache.Reset(ctx, email); errReset != nil {
		logger.Error("AuthService:Login:ResetAttempts:Error:", errReset)
	}

	return service.issueTokens(ctx, user)
}

func (service *AuthService) recordFailedAttempt(ctx context.Context, email string) {
	count, err := service.cache.IncrLoginAttempts(ctx, email)
	if err != nil {
		logger.Error("AuthService:RecordFailedAttempt:Error:", err)
		return
	}
	if count == 1 {
		if errExpire := service.cache.Expire(ctx, email, constants.BlockDuration); errExpire != nil {
			logger.Error("AuthService:RecordFailedAttempt:Expire:Error:", errExpire)
		}
	}
}

// issueTokens mints the token pair and starts the user's reminder session.
func (service *AuthService) issueTokens(ctx context.Context, user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	accessToken, err := utils.GenerateToken(user.ID, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Access:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Refresh:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate token", err)
	}

	if service.sessions != nil {
		service.sessions.StartSession(context.WithoutCancel(ctx), user.ID)
	}

	return &dto.AuthResponse{
		User: dto.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout revokes the token and tears down the reminder session so no
// background task keeps acting on the user's events.
func (service *AuthService) Logout(ctx context.Context, userID uuid.UUID, token string) *errors.AppError {
	if err := service.cache.AddToTokenBlacklist(ctx, token); err != nil {
		logger.Error("AuthService:Logout:Blacklist:Error:", err)
		return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
	}

	if service.sessions != nil {
		service.sessions.StopSession(userID)
	}
	return nil
}

func (service *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := service.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "user not found", nil)
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (service *AuthService) googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.GoogleAPI.ClientID == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "google oauth is not configured", nil)
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

func (service *AuthService) GoogleLoginURL() (*dto.GoogleLoginURLResponse, *errors.AppError) {
	oauthCfg, appErr := service.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	state := utils.GenerateRandomString(24)
	return &dto.GoogleLoginURLResponse{
		URL: oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline),
	}, nil
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (service *AuthService) GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.AuthResponse, *errors.AppError) {
	oauthCfg, appErr := service.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthCfg.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	info, err := fetchGoogleUserInfo(ctx, oauthCfg, token)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch google profile", err)
	}

	user, err := service.repo.GetUserByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get user", err)
	}
	if user == nil {
		// Auto-provision with an unusable password.
		user, err = service.repo.CreateUser(ctx, &entity.User{
			Username:     info.Name,
			Email:        strings.ToLower(info.Email),
			PasswordHash: utils.GenerateRandomString(32),
			GoogleID:     &info.ID,
		})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to create user", err)
		}
	}

	return service.issueTokens(ctx, user)
}

func fetchGoogleUserInfo(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := cfg.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google userinfo request rejected", nil)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}
