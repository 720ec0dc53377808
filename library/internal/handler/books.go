package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

const maxPhotoSize = 5 << 20 // 5 MB

// UploadBookPhotos replaces the photos of a book with the multipart "photos" files.
func (h *Handler) UploadBookPhotos(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please upload photos as multipart form data")
	}
	files := form.File["photos"]
	if len(files) > model.MaxBookPhotos {
		return errs.BadRequest(fmt.Sprintf("A book can have at most %d photos", model.MaxBookPhotos))
	}

	photos := make([][]byte, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxPhotoSize {
			return errs.BadRequest(fmt.Sprintf("Photo %s is too large", fh.Filename))
		}
		f, err := fh.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return err
		}
		photos = append(photos, data)
	}

	book, err := h.librarySvc.UploadBookPhotos(c.Request().Context(), c.Param("id"), photos)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewDocResponse(book))
}

func (h *Handler) GetBookImage(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index is invalid")
	}
	photo, err := h.librarySvc.GetBookPhoto(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, http.DetectContentType(photo), photo)
}
