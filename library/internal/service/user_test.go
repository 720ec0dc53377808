package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/library/internal/service"
	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/Astemirdum/e-library/pkg/picture"
)

const otherUserID = "4f8e2d1c-3b5a-4c7e-9f0d-1a2b3c4d5e66"

func withTokens() service.Option {
	return service.WithTokenIssuer(auth.NewTokenManager(auth.Config{Secret: "test-secret", ExpiresIn: time.Hour}))
}

func TestService_CurrentProfile(t *testing.T) {
	t.Parallel()
	tokenProfile := auth.Profile{ID: userID, Email: "reader@mail.com", Role: auth.RoleAdmin}
	tests := []struct {
		name    string
		user    model.User
		repoErr error
		want    auth.Profile
		wantErr error
	}{
		{
			name: "stored role wins",
			user: model.User{ID: userID, Email: "reader@mail.com", Role: model.RoleMember, Active: true},
			want: auth.Profile{ID: userID, Email: "reader@mail.com", Role: auth.RoleMember},
		},
		{
			name:    "deactivated",
			user:    model.User{ID: userID, Role: model.RoleMember, Active: false},
			wantErr: errs.ErrUserGone,
		},
		{
			name:    "deleted",
			repoErr: errs.ErrNotFound,
			wantErr: errs.ErrUserGone,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, r, _ := newService(t)
			r.MockUserRepository.EXPECT().GetUser(gomock.Any(), userID).Return(tt.user, tt.repoErr)

			got, err := svc.CurrentProfile(context.Background(), tokenProfile)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_Refresh(t *testing.T) {
	t.Parallel()
	t.Run("issues token", func(t *testing.T) {
		t.Parallel()
		svc, r, _ := newService(t, withTokens())
		r.MockUserRepository.EXPECT().GetUser(gomock.Any(), userID).
			Return(model.User{ID: userID, Email: "reader@mail.com", Role: model.RoleMember, Active: true}, nil)

		u, tok, err := svc.Refresh(memberCtx())
		require.NoError(t, err)
		require.Equal(t, userID, u.ID)
		require.NotEmpty(t, tok.Token)
		require.True(t, tok.ExpiresAt.After(time.Now()))
	})
	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t, withTokens())
		_, _, err := svc.Refresh(context.Background())
		require.ErrorIs(t, err, errs.ErrNotLoggedIn)
	})
	t.Run("deactivated", func(t *testing.T) {
		t.Parallel()
		svc, r, _ := newService(t, withTokens())
		r.MockUserRepository.EXPECT().GetUser(gomock.Any(), userID).
			Return(model.User{ID: userID, Role: model.RoleMember}, nil)
		_, _, err := svc.Refresh(memberCtx())
		require.ErrorIs(t, err, errs.ErrUserGone)
	})
}

func TestService_UpdatePassword(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpass123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: userID, Email: "reader@mail.com", Role: model.RoleMember, Active: true, PasswordHash: string(hash)}

	t.Run("changes hash", func(t *testing.T) {
		t.Parallel()
		svc, r, _ := newService(t, withTokens())
		r.MockUserRepository.EXPECT().GetUser(gomock.Any(), userID).Return(stored, nil)
		r.MockUserRepository.EXPECT().SetPassword(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, newHash string) error {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("newpass123")))
				return nil
			})

		_, tok, err := svc.UpdatePassword(memberCtx(), userID, model.UpdatePasswordRequest{
			PasswordCurrent: "oldpass123", Password: "newpass123", PasswordConfirm: "newpass123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, tok.Token)
	})
	t.Run("wrong current password", func(t *testing.T) {
		t.Parallel()
		svc, r, _ := newService(t, withTokens())
		r.MockUserRepository.EXPECT().GetUser(gomock.Any(), userID).Return(stored, nil)

		_, _, err := svc.UpdatePassword(memberCtx(), userID, model.UpdatePasswordRequest{
			PasswordCurrent: "guess12345", Password: "newpass123", PasswordConfirm: "newpass123",
		})
		require.ErrorIs(t, err, errs.ErrWrongPassword)
	})
	t.Run("confirmation mismatch", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t, withTokens())
		_, _, err := svc.UpdatePassword(memberCtx(), userID, model.UpdatePasswordRequest{
			PasswordCurrent: "oldpass123", Password: "newpass123", PasswordConfirm: "other12345",
		})
		require.Error(t, err)
	})
}

func TestService_Avatar_WidthLimit(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	for _, width := range []int{-1, picture.MaxWidth + 1, 8000} {
		_, err := svc.Avatar(context.Background(), userID, width)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, errs.Code(err))
	}
}

func TestService_CreateReview_Author(t *testing.T) {
	t.Parallel()
	const bookID = "2a7f1c39-9a3c-4d17-8b0b-9e4f6a2d1c44"
	adminCtx := auth.SetAuthContext(context.Background(), auth.Profile{ID: userID, Role: auth.RoleAdmin})
	tests := []struct {
		name     string
		ctx      context.Context
		given    string
		wantUser string
	}{
		{name: "member cannot post as someone else", ctx: memberCtx(), given: otherUserID, wantUser: userID},
		{name: "member defaults to self", ctx: memberCtx(), wantUser: userID},
		{name: "admin posts on behalf", ctx: adminCtx, given: otherUserID, wantUser: otherUserID},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, r, _ := newService(t)
			r.MockReviewRepository.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, rv model.Review) (model.Review, error) {
					return rv, nil
				})

			got, err := svc.CreateReview(tt.ctx, model.Review{Review: "solid", Rating: 4, BookID: bookID, UserID: tt.given})
			require.NoError(t, err)
			require.Equal(t, tt.wantUser, got.UserID)
		})
	}
}
