package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/Astemirdum/e-library/pkg/picture"
)

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id string) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) UpdateUser(ctx context.Context, u model.User) (model.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := s.validator.Validate(u); err != nil {
		return model.User{}, err
	}
	return s.repo.UpdateUser(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) Signup(ctx context.Context, req model.SignupRequest) (model.User, model.AuthToken, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.AuthToken{}, errors.Wrap(err, "hash password")
	}
	u := model.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         model.RoleMember,
		Active:       true,
		CreatedAt:    s.now(),
	}
	if err := s.validator.Validate(u); err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	u, err = s.repo.CreateUser(ctx, u)
	if err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	tok, err := s.issue(u)
	return u, tok, err
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.User, model.AuthToken, error) {
	u, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, model.AuthToken{}, errs.ErrUnauthorized
		}
		return model.User{}, model.AuthToken{}, err
	}
	if !u.Active {
		return model.User{}, model.AuthToken{}, errs.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return model.User{}, model.AuthToken{}, errs.ErrUnauthorized
	}
	tok, err := s.issue(u)
	return u, tok, err
}

func (s *Service) issue(u model.User) (model.AuthToken, error) {
	if s.tokens == nil {
		return model.AuthToken{}, errors.New("token issuer is not configured")
	}
	token, exp, err := s.tokens.Sign(auth.Profile{ID: u.ID, Email: u.Email, Role: u.Role})
	if err != nil {
		return model.AuthToken{}, errors.Wrap(err, "sign token")
	}
	return model.AuthToken{Token: token, ExpiresAt: exp}, nil
}

// CurrentProfile reloads the user behind a token profile. Deleted and
// deactivated users are rejected and the stored role wins over the token's.
func (s *Service) CurrentProfile(ctx context.Context, p auth.Profile) (auth.Profile, error) {
	u, err := s.activeUser(ctx, p.ID)
	if err != nil {
		return auth.Profile{}, err
	}
	return auth.Profile{ID: u.ID, Email: u.Email, Role: u.Role}, nil
}

func (s *Service) activeUser(ctx context.Context, id string) (model.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.User{}, errs.ErrUserGone
		}
		return model.User{}, err
	}
	if !u.Active {
		return model.User{}, errs.ErrUserGone
	}
	return u, nil
}

// Refresh issues a new token for the logged in user.
func (s *Service) Refresh(ctx context.Context) (model.User, model.AuthToken, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return model.User{}, model.AuthToken{}, errs.ErrNotLoggedIn
	}
	u, err := s.activeUser(ctx, p.ID)
	if err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	tok, err := s.issue(u)
	return u, tok, err
}

func (s *Service) UpdatePassword(ctx context.Context, id string, req model.UpdatePasswordRequest) (model.User, model.AuthToken, error) {
	if err := s.validator.Validate(req); err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	u, err := s.activeUser(ctx, id)
	if err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.PasswordCurrent)); err != nil {
		return model.User{}, model.AuthToken{}, errs.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.AuthToken{}, errors.Wrap(err, "hash password")
	}
	if err := s.repo.SetPassword(ctx, id, string(hash)); err != nil {
		return model.User{}, model.AuthToken{}, err
	}
	u.PasswordHash = string(hash)
	tok, err := s.issue(u)
	return u, tok, err
}

// Me loads the user and, if present, their financials.
func (s *Service) Me(ctx context.Context, id string) (model.Me, error) {
	var me model.Me
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		me.User, err = s.repo.GetUser(gCtx, id)
		return err
	})
	g.Go(func() error {
		f, err := s.repo.GetFinancialsByUser(gCtx, id)
		if err != nil {
			if errors.Is(err, errs.ErrFinancialsNotFound) {
				return nil
			}
			return err
		}
		me.Financials = &f
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Me{}, err
	}
	return me, nil
}

func (s *Service) UpdateMe(ctx context.Context, id string, req model.UpdateMeRequest) (model.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, err
	}
	if req.FirstName != nil {
		u.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		u.LastName = strings.TrimSpace(*req.LastName)
	}
	if err := s.validator.Validate(u); err != nil {
		return model.User{}, err
	}
	if u, err = s.repo.UpdateUser(ctx, u); err != nil {
		return model.User{}, err
	}
	if len(req.Avatar) > 0 {
		if err := s.repo.SetAvatar(ctx, id, req.Avatar); err != nil {
			return model.User{}, err
		}
	}
	return u, nil
}

func (s *Service) DeleteMe(ctx context.Context, id string) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.repo.SetUserActive(ctx, id, false)
}

// Avatar returns the user's avatar as jpeg, resized to width when width > 0.
func (s *Service) Avatar(ctx context.Context, id string, width int) ([]byte, error) {
	if width < 0 || width > picture.MaxWidth {
		return nil, errs.BadRequest(fmt.Sprintf("resize must be between 0 and %d", picture.MaxWidth))
	}
	img, err := s.repo.GetAvatar(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := picture.ResizeJPEG(img, width)
	if err != nil {
		return nil, errors.Wrap(err, "resize avatar")
	}
	return out, nil
}
