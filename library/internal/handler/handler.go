package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
	md "github.com/Astemirdum/e-library/pkg/middleware"
	"github.com/Astemirdum/e-library/pkg/validate"
	_ "github.com/Astemirdum/e-library/swagger"
)

type Handler struct {
	librarySvc LibraryService
	tokens     md.TokenParser
	log        *zap.Logger
}

func New(librarySvc LibraryService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		tokens:     tokens,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	h.register(api)
	return e
}

func (h *Handler) register(api *echo.Group) {
	var (
		protect = md.JwtAuthentication(h.tokens, h.librarySvc.CurrentProfile)
		admin   = md.RestrictTo(auth.RoleAdmin)
		public  []echo.MiddlewareFunc
		authed  = []echo.MiddlewareFunc{protect}
		admins  = []echo.MiddlewareFunc{protect, admin}
	)

	books := api.Group("/books")
	h.books().register(books, public, admins)
	books.PUT("/:id/photos", h.UploadBookPhotos, admins...)
	books.GET("/:id/images/:index", h.GetBookImage)
	bookReviews := h.bookReviews()
	books.GET("/:bookId/reviews", bookReviews.GetAll)
	books.POST("/:bookId/reviews", bookReviews.Create, authed...)

	h.reviews().register(api.Group("/reviews"), public, authed)

	readers := api.Group("/readers", protect)
	h.readers().register(readers, nil, nil)
	readers.DELETE("/:id", h.readerDelete().Delete, admin)

	users := api.Group("/users")
	users.POST("/signup", h.Signup)
	users.POST("/login", h.Login)
	users.POST("/logout", h.Logout)
	users.POST("/refresh", h.Refresh, authed...)
	users.PATCH("/update-my-password", h.UpdatePassword, authed...)
	users.GET("/:id/avatar", h.GetAvatar)
	users.GET("/me", h.GetMe, authed...)
	users.PATCH("/updateMe", h.UpdateMe, authed...)
	users.POST("/deleteMe", h.DeleteMe, authed...)
	users.PATCH("/deactivate", h.Deactivate, authed...)
	users.POST("/top-up", h.TopUp, authed...)
	users.GET("/regulations", h.GetRegulations, admins...)
	users.PATCH("/regulations", h.UpdateRegulations, admins...)
	h.users().register(users, admins, admins)

	financials := api.Group("/user-financials")
	financials.GET("/me", h.GetMyFinancials, authed...)
	h.financials().register(financials, admins, admins)

	h.transactions().register(api.Group("/user-transactions"), admins, admins)
	h.feeReceipts().register(api.Group("/fee-receipts"), admins, admins)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) books() factory[model.Book] {
	return factory[model.Book]{
		store: Store[model.Book]{
			List: func(ctx context.Context, _ string) ([]model.Book, error) {
				return h.librarySvc.ListBooks(ctx)
			},
			Get:    h.librarySvc.GetBook,
			Create: h.librarySvc.CreateBook,
			Update: h.librarySvc.UpdateBook,
			Delete: h.librarySvc.DeleteBook,
		},
		setID: func(b *model.Book, id string) { b.ID = id },
	}
}

func (h *Handler) reviews() factory[model.Review] {
	return factory[model.Review]{
		store: Store[model.Review]{
			List:   h.librarySvc.ListReviews,
			Get:    h.librarySvc.GetReview,
			Create: h.librarySvc.CreateReview,
			Update: h.librarySvc.UpdateReview,
			Delete: h.librarySvc.DeleteReview,
		},
		setID: func(r *model.Review, id string) { r.ID = id },
	}
}

func (h *Handler) bookReviews() factory[model.Review] {
	f := h.reviews()
	f.parentParam = "bookId"
	f.setParent = func(r *model.Review, bookID string) { r.BookID = bookID }
	return f
}

func (h *Handler) readers() factory[model.Reader] {
	return factory[model.Reader]{
		store: Store[model.Reader]{
			List: func(ctx context.Context, _ string) ([]model.Reader, error) {
				return h.librarySvc.ListReaders(ctx)
			},
			Get:    h.librarySvc.GetReader,
			Create: h.librarySvc.CreateReader,
			Update: h.librarySvc.UpdateReader,
		},
		setID: func(r *model.Reader, id string) { r.ID = id },
	}
}

func (h *Handler) readerDelete() factory[model.Reader] {
	return factory[model.Reader]{store: Store[model.Reader]{Delete: h.librarySvc.DeleteReader}}
}

func (h *Handler) users() factory[model.User] {
	return factory[model.User]{
		store: Store[model.User]{
			List: func(ctx context.Context, _ string) ([]model.User, error) {
				return h.librarySvc.ListUsers(ctx)
			},
			Get:    h.librarySvc.GetUser,
			Update: h.librarySvc.UpdateUser,
			Delete: h.librarySvc.DeleteUser,
		},
		setID: func(u *model.User, id string) { u.ID = id },
	}
}

func (h *Handler) financials() factory[model.UserFinancials] {
	return factory[model.UserFinancials]{
		store: Store[model.UserFinancials]{
			List: func(ctx context.Context, _ string) ([]model.UserFinancials, error) {
				return h.librarySvc.ListFinancials(ctx)
			},
			Get:    h.librarySvc.GetFinancials,
			Create: h.librarySvc.CreateFinancials,
			Update: h.librarySvc.UpdateFinancials,
			Delete: h.librarySvc.DeleteFinancials,
		},
		setID: func(f *model.UserFinancials, id string) { f.ID = id },
	}
}

func (h *Handler) transactions() factory[model.UserTransaction] {
	return factory[model.UserTransaction]{
		store: Store[model.UserTransaction]{
			List: func(ctx context.Context, _ string) ([]model.UserTransaction, error) {
				return h.librarySvc.ListTransactions(ctx)
			},
			Get:    h.librarySvc.GetTransaction,
			Create: h.librarySvc.CreateTransaction,
			Update: h.librarySvc.UpdateTransaction,
			Delete: h.librarySvc.DeleteTransaction,
		},
		setID: func(t *model.UserTransaction, id string) { t.ID = id },
	}
}

func (h *Handler) feeReceipts() factory[model.FeeReceipt] {
	return factory[model.FeeReceipt]{
		store: Store[model.FeeReceipt]{
			List: func(ctx context.Context, _ string) ([]model.FeeReceipt, error) {
				return h.librarySvc.ListFeeReceipts(ctx)
			},
			Get:    h.librarySvc.GetFeeReceipt,
			Create: h.librarySvc.CreateFeeReceipt,
			Delete: h.librarySvc.DeleteFeeReceipt,
		},
		setID: func(r *model.FeeReceipt, id string) { r.ID = id },
	}
}
