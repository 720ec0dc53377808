package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

var errNoDateOfBirth = errs.BadRequest("Reader must have a date of birth")

func (s *Service) ListReaders(ctx context.Context) ([]model.Reader, error) {
	return s.repo.ListReaders(ctx)
}

func (s *Service) GetReader(ctx context.Context, id string) (model.Reader, error) {
	return s.repo.GetReader(ctx, id)
}

func (s *Service) CreateReader(ctx context.Context, r model.Reader) (model.Reader, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CardCreatedAt.IsZero() {
		r.CardCreatedAt = s.now()
	}
	if r.ExpiredDate.IsZero() {
		r.ExpiredDate = s.regs.ExpiredDate(r.CardCreatedAt)
	}
	if err := s.prepareReader(&r); err != nil {
		return model.Reader{}, err
	}
	return s.repo.CreateReader(ctx, r)
}

func (s *Service) UpdateReader(ctx context.Context, r model.Reader) (model.Reader, error) {
	if err := s.prepareReader(&r); err != nil {
		return model.Reader{}, err
	}
	return s.repo.UpdateReader(ctx, r)
}

func (s *Service) DeleteReader(ctx context.Context, id string) error {
	return s.repo.DeleteReader(ctx, id)
}

func (s *Service) prepareReader(r *model.Reader) error {
	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		r.FullName = model.DefaultReaderName
	}
	if strings.TrimSpace(r.ReaderType) == "" {
		r.ReaderType = model.DefaultReaderType
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if err := s.validator.Validate(*r); err != nil {
		return err
	}
	if r.DateOfBirth.IsZero() {
		return errNoDateOfBirth
	}
	return s.regs.CheckReaderAge(r.DateOfBirth.Time, s.now())
}
