package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/library/internal/service"
	"github.com/Astemirdum/e-library/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, b model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error
	UploadBookPhotos(ctx context.Context, id string, photos [][]byte) (model.Book, error)
	GetBookPhoto(ctx context.Context, id string, index int) ([]byte, error)

	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	GetReview(ctx context.Context, id string) (model.Review, error)
	CreateReview(ctx context.Context, r model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, r model.Review) (model.Review, error)
	DeleteReview(ctx context.Context, id string) error

	ListReaders(ctx context.Context) ([]model.Reader, error)
	GetReader(ctx context.Context, id string) (model.Reader, error)
	CreateReader(ctx context.Context, r model.Reader) (model.Reader, error)
	UpdateReader(ctx context.Context, r model.Reader) (model.Reader, error)
	DeleteReader(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	UpdateUser(ctx context.Context, u model.User) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
	Signup(ctx context.Context, req model.SignupRequest) (model.User, model.AuthToken, error)
	Login(ctx context.Context, req model.LoginRequest) (model.User, model.AuthToken, error)
	CurrentProfile(ctx context.Context, p auth.Profile) (auth.Profile, error)
	Refresh(ctx context.Context) (model.User, model.AuthToken, error)
	UpdatePassword(ctx context.Context, id string, req model.UpdatePasswordRequest) (model.User, model.AuthToken, error)
	Me(ctx context.Context, id string) (model.Me, error)
	UpdateMe(ctx context.Context, id string, req model.UpdateMeRequest) (model.User, error)
	DeleteMe(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Avatar(ctx context.Context, id string, width int) ([]byte, error)
	Regulations() model.Regulations
	UpdateRegulations(req model.RegulationsRequest) (model.Regulations, error)

	ListFinancials(ctx context.Context) ([]model.UserFinancials, error)
	GetFinancials(ctx context.Context, id string) (model.UserFinancials, error)
	MyFinancials(ctx context.Context) (model.UserFinancials, error)
	CreateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error)
	UpdateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error)
	DeleteFinancials(ctx context.Context, id string) error

	ListTransactions(ctx context.Context) ([]model.UserTransaction, error)
	GetTransaction(ctx context.Context, id string) (model.UserTransaction, error)
	CreateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error)
	UpdateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	ListFeeReceipts(ctx context.Context) ([]model.FeeReceipt, error)
	GetFeeReceipt(ctx context.Context, id string) (model.FeeReceipt, error)
	CreateFeeReceipt(ctx context.Context, r model.FeeReceipt) (model.FeeReceipt, error)
	DeleteFeeReceipt(ctx context.Context, id string) error

	TopUp(ctx context.Context, money decimal.Decimal, baseURL string) (model.CheckoutSession, error)
}

var _ LibraryService = (*service.Service)(nil)
