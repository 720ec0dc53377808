package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
)

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.DateOfAcquisition.IsZero() {
		b.DateOfAcquisition = s.now()
	}
	b.Description = strings.TrimSpace(b.Description)
	// ratings are derived from reviews only
	b.RatingsAverage, b.RatingsQuantity = 0, 0
	b.PhotoURLs = model.PhotoURLs(s.appURL, b.ID, 0)

	if err := s.validator.Validate(b); err != nil {
		return model.Book{}, err
	}
	if err := s.regs.CheckPublicationYear(b.PublicationYear, s.now()); err != nil {
		return model.Book{}, err
	}
	count, err := s.repo.CountBooks(ctx)
	if err != nil {
		return model.Book{}, errors.Wrap(err, "count books")
	}
	if err := s.regs.CheckBookCount(count); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, b)
}

func (s *Service) UpdateBook(ctx context.Context, b model.Book) (model.Book, error) {
	b.Description = strings.TrimSpace(b.Description)
	if err := s.validator.Validate(b); err != nil {
		return model.Book{}, err
	}
	if err := s.regs.CheckPublicationYear(b.PublicationYear, s.now()); err != nil {
		return model.Book{}, err
	}
	n, err := s.repo.BookPhotoCount(ctx, b.ID)
	if err != nil {
		return model.Book{}, err
	}
	b.PhotoURLs = model.PhotoURLs(s.appURL, b.ID, n)
	return s.repo.UpdateBook(ctx, b)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}

// UploadBookPhotos replaces all photos of a book.
func (s *Service) UploadBookPhotos(ctx context.Context, id string, photos [][]byte) (model.Book, error) {
	if len(photos) > model.MaxBookPhotos {
		return model.Book{}, errs.BadRequest(fmt.Sprintf("A book can have at most %d photos", model.MaxBookPhotos))
	}
	book, err := s.repo.SetBookPhotos(ctx, id, photos, model.PhotoURLs(s.appURL, id, len(photos)))
	if err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book photos replaced", zap.String("book", id), zap.Int("count", len(photos)))
	return book, nil
}

func (s *Service) GetBookPhoto(ctx context.Context, id string, index int) ([]byte, error) {
	if index < 0 || index >= model.MaxBookPhotos {
		return nil, errs.ErrNoPhoto
	}
	return s.repo.GetBookPhoto(ctx, id, index)
}

func (s *Service) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	return s.repo.ListReviews(ctx, bookID)
}

func (s *Service) GetReview(ctx context.Context, id string) (model.Review, error) {
	return s.repo.GetReview(ctx, id)
}

// CreateReview attributes the review to the caller. Only admins may
// post on behalf of another user.
func (s *Service) CreateReview(ctx context.Context, r model.Review) (model.Review, error) {
	if p, ok := auth.FromContext(ctx); ok && (r.UserID == "" || !auth.IsAdmin(ctx)) {
		r.UserID = p.ID
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	r.Review = strings.TrimSpace(r.Review)
	if err := s.validator.Validate(r); err != nil {
		return model.Review{}, err
	}
	return s.repo.CreateReview(ctx, r)
}

func (s *Service) UpdateReview(ctx context.Context, r model.Review) (model.Review, error) {
	stored, err := s.repo.GetReview(ctx, r.ID)
	if err != nil {
		return model.Review{}, err
	}
	if err := checkOwner(ctx, stored.UserID); err != nil {
		return model.Review{}, err
	}
	r.Review = strings.TrimSpace(r.Review)
	if err := s.validator.Validate(r); err != nil {
		return model.Review{}, err
	}
	return s.repo.UpdateReview(ctx, r)
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	stored, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwner(ctx, stored.UserID); err != nil {
		return err
	}
	return s.repo.DeleteReview(ctx, id)
}

// checkOwner lets admins and the author through.
func checkOwner(ctx context.Context, userID string) error {
	p, ok := auth.FromContext(ctx)
	if !ok || auth.IsAdmin(ctx) || p.ID == userID {
		return nil
	}
	return errs.ErrForbidden
}
