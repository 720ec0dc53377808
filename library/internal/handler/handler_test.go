package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/handler"
	service_mocks "github.com/Astemirdum/e-library/library/internal/handler/mocks"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
)

const (
	bookID   = "2a7f1c39-9a3c-4d17-8b0b-9e4f6a2d1c44"
	memberID = "0b0a0c3e-0f61-4d0b-8f4e-4d2b1a7f9a11"
	adminID  = "6e2d9a41-7c3b-4f5e-8d1a-2b3c4d5e6f77"
)

var tokens = auth.NewTokenManager(auth.Config{Secret: "test-secret", ExpiresIn: time.Hour})

func token(t *testing.T, id, role string) string {
	t.Helper()
	tok, _, err := tokens.Sign(auth.Profile{ID: id, Email: role + "@mail.com", Role: role})
	require.NoError(t, err)
	return tok
}

type request struct {
	method      string
	target      string
	body        string
	contentType string
	token       string
}

type response struct {
	expectedCode int
	expectedBody string
}

type mockBehavior func(r *service_mocks.MockLibraryService)

// activeUsers accepts every token profile as is. Registered after the
// case's own expectations so those take precedence.
func activeUsers(svc *service_mocks.MockLibraryService) {
	svc.EXPECT().CurrentProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p auth.Profile) (auth.Profile, error) {
			return p, nil
		}).AnyTimes()
}

func serve(t *testing.T, mb mockBehavior, req request) *httptest.ResponseRecorder {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	mb(svc)
	activeUsers(svc)
	h := handler.New(svc, tokens, zap.NewNop())
	e := h.NewRouter()

	r := httptest.NewRequest(req.method, req.target, strings.NewReader(req.body))
	ct := req.contentType
	if ct == "" {
		ct = echo.MIMEApplicationJSON
	}
	r.Header.Set(echo.HeaderContentType, ct)
	if req.token != "" {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+req.token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func book() model.Book {
	return model.Book{
		ID:                bookID,
		Name:              "The Go Programming Language",
		Type:              model.BookTypeA,
		Author:            "Alan Donovan",
		PhotoURLs:         []string{},
		PublicationYear:   2020,
		Publisher:         "Addison-Wesley",
		DateOfAcquisition: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		Price:             "39.99",
		RatingsAverage:    4.5,
		RatingsQuantity:   2,
	}
}

func TestHandler_Routes(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		req          request
		response     response
	}{
		{
			name:         "health",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodGet, target: "/manage/health"},
			response:     response{expectedCode: http.StatusOK, expectedBody: "OK"},
		},
		{
			name:         "unknown route",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodGet, target: "/api/v1/nothing-here"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"Can't find /api/v1/nothing-here on this server!"}`,
			},
		},
		{
			name: "book not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{}, errs.ErrNotFound)
			},
			req: request{method: http.MethodGet, target: "/api/v1/books/" + bookID},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"No document found with that ID"}`,
			},
		},
		{
			name:         "create book not logged in",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodPost, target: "/api/v1/books", body: `{}`},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"status":"fail","message":"You are not logged in! Please log in to get access."}`,
			},
		},
		{
			name:         "create book as member",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req: request{
				method: http.MethodPost, target: "/api/v1/books", body: `{}`,
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"status":"fail","message":"You do not have permission to perform this action"}`,
			},
		},
		{
			name: "update missing book",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{}, errs.ErrNotFound)
			},
			req: request{
				method: http.MethodPatch, target: "/api/v1/books/" + bookID, body: `{"publisher":"Pearson"}`,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"No document found with that ID"}`,
			},
		},
		{
			name: "delete missing book",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().DeleteBook(gomock.Any(), bookID).Return(errs.ErrNotFound)
			},
			req: request{
				method: http.MethodDelete, target: "/api/v1/books/" + bookID,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"No document found with that ID"}`,
			},
		},
		{
			name: "deactivated user token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CurrentProfile(gomock.Any(), gomock.Any()).Return(auth.Profile{}, errs.ErrUserGone)
			},
			req: request{
				method: http.MethodGet, target: "/api/v1/users/me",
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"status":"fail","message":"The user belonging to this token does no longer exist."}`,
			},
		},
		{
			name: "demoted admin token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CurrentProfile(gomock.Any(), gomock.Any()).
					Return(auth.Profile{ID: adminID, Email: "admin@mail.com", Role: auth.RoleMember}, nil)
			},
			req: request{
				method: http.MethodDelete, target: "/api/v1/books/" + bookID,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"status":"fail","message":"You do not have permission to perform this action"}`,
			},
		},
		{
			name: "update password wrong current",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().UpdatePassword(gomock.Any(), memberID, model.UpdatePasswordRequest{
					PasswordCurrent: "wrong-one", Password: "newpass123", PasswordConfirm: "newpass123",
				}).Return(model.User{}, model.AuthToken{}, errs.ErrWrongPassword)
			},
			req: request{
				method: http.MethodPatch, target: "/api/v1/users/update-my-password",
				body:  `{"passwordCurrent":"wrong-one","password":"newpass123","passwordConfirm":"newpass123"}`,
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"status":"fail","message":"Your current password is wrong."}`,
			},
		},
		{
			name:         "bad token",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req:          request{method: http.MethodGet, target: "/api/v1/users/me", token: "garbage"},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"status":"fail","message":"invalid token. Please log in again"}`,
			},
		},
		{
			name: "duplicate book name",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					Return(model.Book{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (name)=(Dune) already exists."})
			},
			req: request{
				method: http.MethodPost, target: "/api/v1/books", body: `{"nameBook":"Dune"}`,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"Duplicate field value: Key (name)=(Dune) already exists.. Please use another value!"}`,
			},
		},
		{
			name: "internal error is hidden",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().ListBooks(gomock.Any()).Return(nil, errors.New("db internal"))
			},
			req: request{method: http.MethodGet, target: "/api/v1/books"},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"status":"error","message":"Something went very wrong!"}`,
			},
		},
		{
			name: "delete book",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().DeleteBook(gomock.Any(), bookID).Return(nil)
			},
			req: request{
				method: http.MethodDelete, target: "/api/v1/books/" + bookID,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name: "fee receipt overpaid",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().CreateFeeReceipt(gomock.Any(), gomock.Any()).Return(model.FeeReceipt{}, errs.ErrOverpaid)
			},
			req: request{
				method: http.MethodPost, target: "/api/v1/fee-receipts",
				body:  `{"userFinancials":"5c1fd2a4-62c3-4b8e-9a57-3c8e3f1e7d22","balance":"fee","totalDebt":10,"amountPaid":20}`,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"Amount paid cannot be greater than total debt"}`,
			},
		},
		{
			name:         "update me rejects password",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req: request{
				method: http.MethodPatch, target: "/api/v1/users/updateMe", body: `{"password":"secret123"}`,
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"This route is not for password updates. Please use /update-my-password"}`,
			},
		},
		{
			name: "top up without money",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().TopUp(gomock.Any(), gomock.Any(), "http://example.com").Return(model.CheckoutSession{}, errs.ErrNoMoney)
			},
			req: request{
				method: http.MethodPost, target: "/api/v1/users/top-up", body: `{}`,
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"Please add money."}`,
			},
		},
		{
			name: "regulations rejected",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().UpdateRegulations(gomock.Any()).
					Return(model.DefaultRegulations(), errs.BadRequest("ageMin (60) cannot be greater than ageMax (55)"))
			},
			req: request{
				method: http.MethodPatch, target: "/api/v1/users/regulations", body: `{"ageMin":60}`,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"ageMin (60) cannot be greater than ageMax (55)"}`,
			},
		},
		{
			name:         "regulations validation",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			req: request{
				method: http.MethodPatch, target: "/api/v1/users/regulations", body: `{"ageMax":-1}`,
				token: token(t, adminID, auth.RoleAdmin),
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"Invalid input data. ageMax must be greater than 0"}`,
			},
		},
		{
			name: "avatar missing",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().Avatar(gomock.Any(), memberID, 100).Return(nil, errs.ErrNoAvatar)
			},
			req: request{method: http.MethodGet, target: "/api/v1/users/" + memberID + "/avatar?resize=100"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"User not found!"}`,
			},
		},
		{
			name: "my financials",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().MyFinancials(gomock.Any()).Return(model.UserFinancials{
					ID: "f1", UserID: memberID, Money: decimal.NewFromInt(5), TotalDebt: decimal.Zero,
				}, nil)
			},
			req: request{
				method: http.MethodGet, target: "/api/v1/user-financials/me",
				token: token(t, memberID, auth.RoleMember),
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","data":{"doc":{"id":"f1","user":"` + memberID + `","money":5,"totalDebt":0}}}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, tt.mockBehavior, tt.req)
			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().ListBooks(gomock.Any()).Return([]model.Book{book()}, nil)
	}, request{method: http.MethodGet, target: "/api/v1/books"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status  string                 `json:"status"`
		Results int                    `json:"results"`
		Data    model.Docs[model.Book] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)
	require.Equal(t, 1, resp.Results)
	require.Equal(t, []model.Book{book()}, resp.Data.Docs)
}

func TestHandler_UpdateBook_Merges(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		stored := book()
		want := book()
		want.Publisher = "Pearson"
		gomock.InOrder(
			r.EXPECT().GetBook(gomock.Any(), bookID).Return(stored, nil),
			r.EXPECT().UpdateBook(gomock.Any(), want).Return(want, nil),
		)
	}, request{
		method: http.MethodPatch, target: "/api/v1/books/" + bookID,
		body:  `{"id":"ignored","publisher":"Pearson"}`,
		token: token(t, adminID, auth.RoleAdmin),
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.Doc[model.Book] `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Pearson", resp.Data.Doc.Publisher)
	require.Equal(t, bookID, resp.Data.Doc.ID)
}

func TestHandler_CreateBookReview(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, rv model.Review) (model.Review, error) {
				p, ok := auth.FromContext(ctx)
				require.True(t, ok)
				require.Equal(t, memberID, p.ID)
				require.Equal(t, bookID, rv.BookID)
				require.Empty(t, rv.ID)
				rv.ID = "r1"
				return rv, nil
			})
	}, request{
		method: http.MethodPost, target: "/api/v1/books/" + bookID + "/reviews",
		body:  `{"review":"great","rating":5}`,
		token: token(t, memberID, auth.RoleMember),
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_LoginSetsCookie(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().Login(gomock.Any(), model.LoginRequest{Email: "reader@mail.com", Password: "pass12345"}).
			Return(model.User{ID: memberID, Email: "reader@mail.com", Role: auth.RoleMember}, model.AuthToken{Token: "tok", ExpiresAt: exp}, nil)
	}, request{method: http.MethodPost, target: "/api/v1/users/login", body: `{"email":"reader@mail.com","password":"pass12345"}`})

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, auth.CookieName, cookies[0].Name)
	require.Equal(t, "tok", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "tok", resp.Token)
	require.Equal(t, memberID, resp.Data.User.ID)
}

func TestHandler_LoginMissingFields(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockLibraryService) {},
		request{method: http.MethodPost, target: "/api/v1/users/login", body: `{"email":"reader@mail.com"}`})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"status":"fail","message":"Please provide email and password!"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CookieAuth(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().Me(gomock.Any(), memberID).Return(model.Me{User: model.User{ID: memberID}}, nil)
	activeUsers(svc)
	e := handler.New(svc, tokens, zap.NewNop()).NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token(t, memberID, auth.RoleMember)})
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "loggedout"})
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UploadBookPhotos(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		fw, err := mw.CreateFormFile("photos", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().UploadBookPhotos(gomock.Any(), bookID, [][]byte{[]byte("a.jpg"), []byte("b.jpg")}).
			Return(book(), nil)
	}, request{
		method: http.MethodPut, target: "/api/v1/books/" + bookID + "/photos",
		body: buf.String(), contentType: mw.FormDataContentType(),
		token: token(t, adminID, auth.RoleAdmin),
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBookImage(t *testing.T) {
	t.Parallel()
	png := []byte("\x89PNG\r\n\x1a\n0000")
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().GetBookPhoto(gomock.Any(), bookID, 1).Return(png, nil)
	}, request{method: http.MethodGet, target: "/api/v1/books/" + bookID + "/images/1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get(echo.HeaderContentType))
	require.Equal(t, png, w.Body.Bytes())
}

func TestHandler_Refresh(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	w := serve(t, func(r *service_mocks.MockLibraryService) {
		r.EXPECT().Refresh(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (model.User, model.AuthToken, error) {
				p, ok := auth.FromContext(ctx)
				require.True(t, ok)
				require.Equal(t, memberID, p.ID)
				return model.User{ID: memberID, Role: auth.RoleMember}, model.AuthToken{Token: "fresh", ExpiresAt: exp}, nil
			})
	}, request{
		method: http.MethodPost, target: "/api/v1/users/refresh",
		token: token(t, memberID, auth.RoleMember),
	})

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "fresh", cookies[0].Value)

	var resp model.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "fresh", resp.Token)
}

func TestHandler_RefreshNotLoggedIn(t *testing.T) {
	t.Parallel()
	w := serve(t, func(r *service_mocks.MockLibraryService) {},
		request{method: http.MethodPost, target: "/api/v1/users/refresh"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
