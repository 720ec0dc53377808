package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
	"github.com/Astemirdum/e-library/pkg/auth"
)

const loggedOut = "loggedout"

func (h *Handler) sendToken(c echo.Context, code int, u model.User, tok model.AuthToken) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.ExpiresAt,
		HttpOnly: true,
		Secure:   c.IsTLS(),
	})
	resp := model.AuthResponse{Status: model.StatusSuccess, Token: tok.Token}
	resp.Data.User = u
	return c.JSON(code, resp)
}

func (h *Handler) Signup(c echo.Context) error {
	var req model.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	u, tok, err := h.librarySvc.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.sendToken(c, http.StatusCreated, u, tok)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return errs.BadRequest("Please provide email and password!")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	u, tok, err := h.librarySvc.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return h.sendToken(c, http.StatusOK, u, tok)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    loggedOut,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, model.Response{Status: model.StatusSuccess})
}

func (h *Handler) Refresh(c echo.Context) error {
	u, tok, err := h.librarySvc.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return h.sendToken(c, http.StatusOK, u, tok)
}

func (h *Handler) UpdatePassword(c echo.Context) error {
	p, err := profile(c)
	if err != nil {
		return err
	}
	var req model.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	u, tok, err := h.librarySvc.UpdatePassword(c.Request().Context(), p.ID, req)
	if err != nil {
		return err
	}
	return h.sendToken(c, http.StatusOK, u, tok)
}

func profile(c echo.Context) (auth.Profile, error) {
	p, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Profile{}, errs.ErrNotLoggedIn
	}
	return p, nil
}

func (h *Handler) GetMe(c echo.Context) error {
	p, err := profile(c)
	if err != nil {
		return err
	}
	me, err := h.librarySvc.Me(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewDocResponse(me))
}

// UpdateMe accepts json or multipart form data; the latter may carry an avatar.
func (h *Handler) UpdateMe(c echo.Context) error {
	p, err := profile(c)
	if err != nil {
		return err
	}

	var req model.UpdateMeRequest
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if req, err = updateMeFromForm(c); err != nil {
			return err
		}
	} else if req, err = updateMeFromJSON(c); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	u, err := h.librarySvc.UpdateMe(c.Request().Context(), p.ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Response{
		Status: model.StatusSuccess,
		Data:   map[string]model.User{"user": u},
	})
}

func updateMeFromJSON(c echo.Context) (model.UpdateMeRequest, error) {
	var req model.UpdateMeRequest
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return req, err
	}
	if len(body) == 0 {
		return req, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+err.Error())
	}
	if _, ok := raw["password"]; ok {
		return req, errs.ErrPasswordUpdate
	}
	if _, ok := raw["passwordConfirm"]; ok {
		return req, errs.ErrPasswordUpdate
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+err.Error())
	}
	return req, nil
}

func updateMeFromForm(c echo.Context) (model.UpdateMeRequest, error) {
	var req model.UpdateMeRequest
	form, err := c.MultipartForm()
	if err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if _, ok := form.Value["password"]; ok {
		return req, errs.ErrPasswordUpdate
	}
	if _, ok := form.Value["passwordConfirm"]; ok {
		return req, errs.ErrPasswordUpdate
	}
	if v, ok := form.Value["firstName"]; ok && len(v) > 0 {
		req.FirstName = &v[0]
	}
	if v, ok := form.Value["lastName"]; ok && len(v) > 0 {
		req.LastName = &v[0]
	}
	if files := form.File["avatar"]; len(files) > 0 {
		if files[0].Size > maxPhotoSize {
			return req, errs.BadRequest("Avatar is too large")
		}
		f, err := files[0].Open()
		if err != nil {
			return req, err
		}
		defer f.Close()
		if req.Avatar, err = io.ReadAll(f); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (h *Handler) DeleteMe(c echo.Context) error {
	p, err := profile(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteMe(c.Request().Context(), p.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Deactivate(c echo.Context) error {
	p, err := profile(c)
	if err != nil {
		return err
	}
	if err := h.librarySvc.Deactivate(c.Request().Context(), p.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Response{Status: model.StatusSuccess})
}

func (h *Handler) GetAvatar(c echo.Context) error {
	var width int
	if resize := c.QueryParam("resize"); resize != "" {
		var err error
		if width, err = strconv.Atoi(resize); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "resize is invalid")
		}
	}
	img, err := h.librarySvc.Avatar(c.Request().Context(), c.Param("id"), width)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", img)
}

func (h *Handler) TopUp(c echo.Context) error {
	var req model.TopUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	baseURL := c.Scheme() + "://" + c.Request().Host
	sess, err := h.librarySvc.TopUp(c.Request().Context(), req.Money, baseURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.TopUpResponse{Status: model.StatusSuccess, Session: sess})
}

func (h *Handler) GetRegulations(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Response{
		Status: model.StatusSuccess,
		Data:   map[string]model.Regulations{"regulations": h.librarySvc.Regulations()},
	})
}

func (h *Handler) UpdateRegulations(c echo.Context) error {
	var req model.RegulationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	regs, err := h.librarySvc.UpdateRegulations(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Response{
		Status: model.StatusSuccess,
		Data:   map[string]model.Regulations{"regulations": regs},
	})
}

func (h *Handler) GetMyFinancials(c echo.Context) error {
	f, err := h.librarySvc.MyFinancials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewDocResponse(f))
}
