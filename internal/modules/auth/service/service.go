package auth

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/internal/modules/auth/dto"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/logger"
	"anoa.com/askify/pkg/storage"
	"github.com/jinzhu/copier"
)

// UserKey is the per-client key holding the session user.
const UserKey = "user"

const (
	msgLoginFailed    = "Đăng nhập thất bại"
	msgRegisterFailed = "Đăng ký thất bại"

	avatarFolder = "askify/avatars"
)

type Options struct {
	// Latency simulates the round trip of a real auth backend.
	Latency  time.Duration
	Secret   string
	TokenTTL time.Duration
}

// AuthService is a mock session: login and register always succeed for
// well-formed input and no credentials are checked or stored.
type AuthService interface {
	Login(ctx context.Context, scope string, req dto.LoginRequest) dto.AuthResult
	Register(ctx context.Context, scope string, req dto.RegisterRequest) dto.AuthResult
	Logout(ctx context.Context, scope string) error
	// CurrentUser returns the session user, or nil when logged out.
	CurrentUser(ctx context.Context, scope string) (*entity.User, error)
	// UpdateProfile merges req into the session user. It returns nil
	// without error when nobody is logged in.
	UpdateProfile(ctx context.Context, scope string, req dto.UpdateProfileRequest) (*entity.User, error)
	UploadAvatar(ctx context.Context, scope string, file dto.AvatarFile) (*entity.User, error)
	ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResult, error)
	// VerifyToken checks an access token and returns the session it
	// belongs to. Tokens of logged out sessions are rejected.
	VerifyToken(ctx context.Context, token string) (*entity.User, string, error)
}

type authService struct {
	store        kvstore.Store
	imageStorage storage.ImageStorage
	opts         Options
	now          func() time.Time
}

// NewAuthService wires the session store. imageStorage may be nil, which
// disables avatar upload.
func NewAuthService(store kvstore.Store, imageStorage storage.ImageStorage, opts Options) AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &authService{
		store:        store,
		imageStorage: imageStorage,
		opts:         opts,
		now:          time.Now,
	}
}

func (s *authService) Login(ctx context.Context, scope string, req dto.LoginRequest) dto.AuthResult {
	if err := sleep(ctx, s.opts.Latency); err != nil {
		return dto.AuthResult{Error: msgLoginFailed}
	}

	user := &entity.User{
		ID:         "1",
		Name:       "Nguyễn Văn A",
		Email:      req.Email,
		Avatar:     "https://i.pravatar.cc/40?img=1",
		Reputation: 1250,
	}

	result, err := s.startSession(ctx, scope, user)
	if err != nil {
		logger.Log.Errorw("login failed", "scope", scope, "error", err)
		return dto.AuthResult{Error: msgLoginFailed}
	}
	return result
}

func (s *authService) Register(ctx context.Context, scope string, req dto.RegisterRequest) dto.AuthResult {
	if err := sleep(ctx, s.opts.Latency); err != nil {
		return dto.AuthResult{Error: msgRegisterFailed}
	}

	user := &entity.User{
		ID:         strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:       req.Name,
		Email:      req.Email,
		Avatar:     fmt.Sprintf("https://i.pravatar.cc/40?img=%d", rand.IntN(70)),
		Reputation: 0,
	}

	result, err := s.startSession(ctx, scope, user)
	if err != nil {
		logger.Log.Errorw("register failed", "scope", scope, "error", err)
		return dto.AuthResult{Error: msgRegisterFailed}
	}
	return result
}

func (s *authService) startSession(ctx context.Context, scope string, user *entity.User) (dto.AuthResult, error) {
	if err := kvstore.SetJSON(ctx, s.store, kvstore.Key(scope, UserKey), user); err != nil {
		return dto.AuthResult{}, err
	}

	token, err := s.generateToken(user.ID, scope)
	if err != nil {
		return dto.AuthResult{}, err
	}

	return dto.AuthResult{
		Success:     true,
		User:        user,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.opts.TokenTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, scope string) error {
	return s.store.Delete(ctx, kvstore.Key(scope, UserKey))
}

func (s *authService) CurrentUser(ctx context.Context, scope string) (*entity.User, error) {
	var user entity.User
	found, err := kvstore.GetJSON(ctx, s.store, kvstore.Key(scope, UserKey), &user)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (s *authService) UpdateProfile(ctx context.Context, scope string, req dto.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.CurrentUser(ctx, scope)
	if err != nil || user == nil {
		return nil, err
	}

	if err := copier.CopyWithOption(user, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, fmt.Errorf("merge profile: %w", err)
	}

	if err := kvstore.SetJSON(ctx, s.store, kvstore.Key(scope, UserKey), user); err != nil {
		return nil, fmt.Errorf("save session user: %w", err)
	}
	return user, nil
}

func (s *authService) UploadAvatar(ctx context.Context, scope string, file dto.AvatarFile) (*entity.User, error) {
	if s.imageStorage == nil {
		return nil, fmt.Errorf("avatar upload: %w", apperror.ErrUnavailable)
	}
	if !storage.IsImageFile(file.FileName) {
		return nil, apperror.New(http.StatusBadRequest, "Ảnh đại diện phải là tệp hình ảnh", apperror.ErrBadRequest)
	}

	user, err := s.CurrentUser(ctx, scope)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("avatar upload: %w", apperror.ErrUnauthorized)
	}

	url, err := s.imageStorage.UploadImage(ctx, file.Reader, avatarFolder, file.FileName)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	updated, err := s.UpdateProfile(ctx, scope, dto.UpdateProfileRequest{Avatar: &url})
	if err != nil {
		return nil, err
	}

	// only avatars we uploaded have a public id; placeholders are skipped
	if previous := user.Avatar; previous != url && storage.PublicIDFromURL(previous) != "" {
		if err := s.imageStorage.DeleteImage(ctx, previous); err != nil {
			logger.Log.Warnw("failed to delete previous avatar", "url", previous, "error", err)
		}
	}
	return updated, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (*dto.ForgotPasswordResult, error) {
	if err := sleep(ctx, 2*s.opts.Latency); err != nil {
		return nil, err
	}
	return &dto.ForgotPasswordResult{Sent: true, Email: email}, nil
}

// sleep waits for d unless ctx ends first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
