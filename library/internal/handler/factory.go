package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/e-library/library/internal/model"
)

// Store is the persistence side of a resource served by a factory.
// A nil func leaves the matching route unregistered.
type Store[T any] struct {
	List   func(ctx context.Context, parentID string) ([]T, error)
	Get    func(ctx context.Context, id string) (T, error)
	Create func(ctx context.Context, doc T) (T, error)
	Update func(ctx context.Context, doc T) (T, error)
	Delete func(ctx context.Context, id string) error
}

type factory[T any] struct {
	store Store[T]
	setID func(doc *T, id string)
	// parentParam names the path param pinning nested resources.
	parentParam string
	setParent   func(doc *T, parentID string)
}

func (f factory[T]) parentID(c echo.Context) string {
	if f.parentParam == "" {
		return ""
	}
	return c.Param(f.parentParam)
}

func (f factory[T]) GetAll(c echo.Context) error {
	docs, err := f.store.List(c.Request().Context(), f.parentID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewListResponse(docs))
}

func (f factory[T]) GetOne(c echo.Context) error {
	doc, err := f.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewDocResponse(doc))
}

func (f factory[T]) Create(c echo.Context) error {
	var doc T
	if err := decodeBody(c, &doc); err != nil {
		return err
	}
	f.setID(&doc, "")
	if parent := f.parentID(c); parent != "" && f.setParent != nil {
		f.setParent(&doc, parent)
	}
	created, err := f.store.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, model.NewDocResponse(created))
}

// Update merges the request body onto the stored document.
func (f factory[T]) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	doc, err := f.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := decodeBody(c, &doc); err != nil {
		return err
	}
	f.setID(&doc, id)
	updated, err := f.store.Update(ctx, doc)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.NewDocResponse(updated))
}

func (f factory[T]) Delete(c echo.Context) error {
	if err := f.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// register mounts the collection on g at "" and the document at "/:id".
func (f factory[T]) register(g *echo.Group, read, write []echo.MiddlewareFunc) {
	if f.store.List != nil {
		g.GET("", f.GetAll, read...)
	}
	if f.store.Create != nil {
		g.POST("", f.Create, write...)
	}
	if f.store.Get != nil {
		g.GET("/:id", f.GetOne, read...)
	}
	if f.store.Update != nil && f.store.Get != nil {
		g.PATCH("/:id", f.Update, write...)
	}
	if f.store.Delete != nil {
		g.DELETE("/:id", f.Delete, write...)
	}
}

func decodeBody(c echo.Context, v any) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid input data. "+err.Error())
}
