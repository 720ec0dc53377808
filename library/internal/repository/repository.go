package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type BookRepository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	// DeleteBook removes the book together with its reviews.
	DeleteBook(ctx context.Context, id string) error
	CountBooks(ctx context.Context) (int, error)
	BookPhotoCount(ctx context.Context, id string) (int, error)
	SetBookPhotos(ctx context.Context, id string, photos [][]byte, urls []string) (model.Book, error)
	GetBookPhoto(ctx context.Context, id string, index int) ([]byte, error)
}

type ReviewRepository interface {
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)
	GetReview(ctx context.Context, id string) (model.Review, error)
	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, review model.Review) (model.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type ReaderRepository interface {
	ListReaders(ctx context.Context) ([]model.Reader, error)
	GetReader(ctx context.Context, id string) (model.Reader, error)
	CreateReader(ctx context.Context, reader model.Reader) (model.Reader, error)
	UpdateReader(ctx context.Context, reader model.Reader) (model.Reader, error)
	DeleteReader(ctx context.Context, id string) error
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserActive(ctx context.Context, id string, active bool) error
	SetPassword(ctx context.Context, id string, hash string) error
	SetAvatar(ctx context.Context, id string, avatar []byte) error
	GetAvatar(ctx context.Context, id string) ([]byte, error)
}

type FinancialsRepository interface {
	ListFinancials(ctx context.Context) ([]model.UserFinancials, error)
	GetFinancials(ctx context.Context, id string) (model.UserFinancials, error)
	GetFinancialsByUser(ctx context.Context, userID string) (model.UserFinancials, error)
	CreateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error)
	UpdateFinancials(ctx context.Context, f model.UserFinancials) (model.UserFinancials, error)
	DeleteFinancials(ctx context.Context, id string) error
}

type TransactionRepository interface {
	ListTransactions(ctx context.Context) ([]model.UserTransaction, error)
	GetTransaction(ctx context.Context, id string) (model.UserTransaction, error)
	CreateTransaction(ctx context.Context, t model.UserTransaction) (model.UserTransaction, error)
	// UpdateTransaction persists t and, when the stored status moves to
	// success, credits the linked financials in the same db transaction.
	UpdateTransaction(ctx context.Context, t model.UserTransaction) (updated model.UserTransaction, credited bool, err error)
	DeleteTransaction(ctx context.Context, id string) error
}

type FeeReceiptRepository interface {
	ListFeeReceipts(ctx context.Context) ([]model.FeeReceipt, error)
	GetFeeReceipt(ctx context.Context, id string) (model.FeeReceipt, error)
	// CreateFeeReceipt inserts r and debits money and total debt of the
	// linked financials by r.AmountPaid atomically.
	CreateFeeReceipt(ctx context.Context, r model.FeeReceipt) (model.FeeReceipt, error)
	DeleteFeeReceipt(ctx context.Context, id string) error
}

type repository struct {
	db  DB
	log *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName        = `users`
	booksTableName        = `books`
	reviewsTableName      = `reviews`
	readersTableName      = `readers`
	financialsTableName   = `user_financials`
	transactionsTableName = `user_transactions`
	feeReceiptsTableName  = `fee_receipts`
)

var _ interface {
	BookRepository
	ReviewRepository
	ReaderRepository
	UserRepository
	FinancialsRepository
	TransactionRepository
	FeeReceiptRepository
} = (*repository)(nil)
