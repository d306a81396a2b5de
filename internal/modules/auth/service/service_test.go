package auth

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"anoa.com/askify/internal/modules/auth/dto"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded string
	deleted  []string
	err      error
}

func (f *fakeStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = folder + "/" + fileName
	return "https://res.cloudinary.com/demo/image/upload/v1/" + f.uploaded, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func ptr[T any](v T) *T { return &v }

func stores(t *testing.T) map[string]kvstore.Store {
	t.Helper()
	sqlite, err := kvstore.NewSQLiteStore(":memory:")
	require.NoError(t, err)

	all := map[string]kvstore.Store{
		"memory": kvstore.NewMemoryStore(),
		"sqlite": sqlite,
	}
	t.Cleanup(func() {
		for _, s := range all {
			_ = s.Close()
		}
	})
	return all
}

func newService(store kvstore.Store, img storage.ImageStorage) AuthService {
	return NewAuthService(store, img, Options{Secret: "test-secret", TokenTTL: time.Hour})
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			svc := newService(store, nil)
			ctx := context.Background()

			user, err := svc.CurrentUser(ctx, "c1")
			require.NoError(t, err)
			assert.Nil(t, user)

			res := svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com", Password: "whatever"})
			require.True(t, res.Success)
			assert.Equal(t, "1", res.User.ID)
			assert.Equal(t, "Nguyễn Văn A", res.User.Name)
			assert.Equal(t, "a@example.com", res.User.Email)
			assert.Equal(t, 1250, res.User.Reputation)
			assert.NotEmpty(t, res.AccessToken)

			user, err = svc.CurrentUser(ctx, "c1")
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, "a@example.com", user.Email)

			other, err := svc.CurrentUser(ctx, "c2")
			require.NoError(t, err)
			assert.Nil(t, other)

			require.NoError(t, svc.Logout(ctx, "c1"))
			require.NoError(t, svc.Logout(ctx, "c1"))

			user, err = svc.CurrentUser(ctx, "c1")
			require.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestRegister(t *testing.T) {
	svc := newService(kvstore.NewMemoryStore(), nil)

	res := svc.Register(context.Background(), "c1", dto.RegisterRequest{
		Name:     "Trần Thị B",
		Email:    "b@example.com",
		Password: "secret1",
	})
	require.True(t, res.Success)
	assert.Equal(t, "Trần Thị B", res.User.Name)
	assert.Equal(t, 0, res.User.Reputation)
	assert.NotEqual(t, "1", res.User.ID)
	assert.True(t, strings.HasPrefix(res.User.Avatar, "https://i.pravatar.cc/40?img="))
}

func TestLogin_CancelledContext(t *testing.T) {
	store := kvstore.NewMemoryStore()
	svc := NewAuthService(store, nil, Options{Latency: time.Minute, Secret: "s"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com"})
	assert.False(t, res.Success)
	assert.Equal(t, "Đăng nhập thất bại", res.Error)

	user, err := svc.CurrentUser(context.Background(), "c1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateProfile(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			svc := newService(store, nil)
			ctx := context.Background()

			user, err := svc.UpdateProfile(ctx, "c1", dto.UpdateProfileRequest{Name: ptr("X")})
			require.NoError(t, err)
			assert.Nil(t, user)

			svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com"})

			user, err = svc.UpdateProfile(ctx, "c1", dto.UpdateProfileRequest{Name: ptr("Người Mới")})
			require.NoError(t, err)
			assert.Equal(t, "Người Mới", user.Name)
			assert.Equal(t, "a@example.com", user.Email)
			assert.Equal(t, 1250, user.Reputation)

			stored, err := svc.CurrentUser(ctx, "c1")
			require.NoError(t, err)
			assert.Equal(t, "Người Mới", stored.Name)

			user, err = svc.UpdateProfile(ctx, "c1", dto.UpdateProfileRequest{Avatar: ptr(""), Reputation: ptr(0)})
			require.NoError(t, err)
			assert.Empty(t, user.Avatar)
			assert.Equal(t, 0, user.Reputation)
			assert.Equal(t, "Người Mới", user.Name)
		})
	}
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()

	_, err := newService(kvstore.NewMemoryStore(), nil).UploadAvatar(ctx, "c1", dto.AvatarFile{FileName: "me.png"})
	assert.ErrorIs(t, err, apperror.ErrUnavailable)

	img := &fakeStorage{}
	svc := newService(kvstore.NewMemoryStore(), img)

	_, err = svc.UploadAvatar(ctx, "c1", dto.AvatarFile{Reader: strings.NewReader("x"), FileName: "me.png"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.UploadAvatar(ctx, "c1", dto.AvatarFile{Reader: strings.NewReader("x"), FileName: "me.exe"})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com"})
	user, err := svc.UploadAvatar(ctx, "c1", dto.AvatarFile{Reader: strings.NewReader("x"), FileName: "me.png"})
	require.NoError(t, err)
	assert.Contains(t, user.Avatar, "askify/avatars/me.png")
	assert.Empty(t, img.deleted, "placeholder avatar is not ours to delete")

	first := user.Avatar
	user, err = svc.UploadAvatar(ctx, "c1", dto.AvatarFile{Reader: strings.NewReader("y"), FileName: "me2.png"})
	require.NoError(t, err)
	assert.Contains(t, user.Avatar, "askify/avatars/me2.png")
	assert.Equal(t, []string{first}, img.deleted)

	img.err = errors.New("cloudinary down")
	_, err = svc.UploadAvatar(ctx, "c1", dto.AvatarFile{Reader: strings.NewReader("x"), FileName: "me.png"})
	assert.Error(t, err)
}

func TestForgotPassword(t *testing.T) {
	svc := newService(kvstore.NewMemoryStore(), nil)

	res, err := svc.ForgotPassword(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.True(t, res.Sent)
	assert.Equal(t, "a@example.com", res.Email)
}

func TestVerifyToken(t *testing.T) {
	svc := newService(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()

	res := svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com"})
	require.True(t, res.Success)

	user, scope, err := svc.VerifyToken(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "c1", scope)
	assert.Equal(t, "1", user.ID)

	_, _, err = svc.VerifyToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	other := NewAuthService(kvstore.NewMemoryStore(), nil, Options{Secret: "other"})
	_, _, err = other.VerifyToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	require.NoError(t, svc.Logout(ctx, "c1"))
	_, _, err = svc.VerifyToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newService(kvstore.NewMemoryStore(), nil).(*authService)
	ctx := context.Background()

	res := svc.Login(ctx, "c1", dto.LoginRequest{Email: "a@example.com"})
	require.True(t, res.Success)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, _, err := svc.VerifyToken(ctx, res.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
