package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/polish-calc/internal/apperr"
	"github.com/DjordjeVuckovic/polish-calc/internal/calc"
	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/DjordjeVuckovic/polish-calc/internal/dto"
	"github.com/DjordjeVuckovic/polish-calc/internal/input"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxHistoryLimit = 100

type ConvertRouter struct {
	e         *echo.Echo
	converter *calc.Converter
	storage   storage.Storer
}

func NewConvertRouter(e *echo.Echo, converter *calc.Converter, storage storage.Storer) *ConvertRouter {
	return &ConvertRouter{
		e:         e,
		converter: converter,
		storage:   storage,
	}
}

func (r *ConvertRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/convert", r.convertHandler)
	g.GET("/convert", r.previewHandler)
	g.GET("/history", r.listHandler)
	g.GET("/history/:id", r.getHandler)
}

// convertHandler godoc
// @Summary Convert an infix expression to Reverse Polish Notation
// @Description Whitespace is stripped before lexing. The conversion is stored in the history.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Expression to convert"
// @Success 201 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/convert [post]
func (r *ConvertRouter) convertHandler(c echo.Context) error {
	var req dto.ConvertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	strict := r.converter.Strict()
	if req.Strict != nil {
		strict = *req.Strict
	}

	res, err := r.convert(req.Expression, strict)
	if err != nil {
		return err
	}

	id, err := r.storage.Save(c.Request().Context(), domain.NewConversion(res, strict))
	if err != nil {
		return err
	}

	resp := dto.NewConvertResponse(res, strict)
	resp.ID = &id
	return c.JSON(http.StatusCreated, resp)
}

// previewHandler godoc
// @Summary Convert without storing
// @Tags convert
// @Produce json
// @Param expression query string true "Infix expression"
// @Param strict query bool false "Check sign placement"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/v1/convert [get]
func (r *ConvertRouter) previewHandler(c echo.Context) error {
	strict := r.converter.Strict()
	if s := c.QueryParam("strict"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "strict must be a boolean")
		}
		strict = v
	}

	res, err := r.convert(c.QueryParam("expression"), strict)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewConvertResponse(res, strict))
}

// convert rejects a missing or blank expression, so nothing empty reaches the history.
func (r *ConvertRouter) convert(expression string, strict bool) (*calc.Result, error) {
	text := input.StripWhitespace(expression)
	if text == "" {
		return nil, apperr.New(apperr.EmptyInput, "expression is required", -1)
	}
	return r.converter.ConvertStrict(text, strict)
}

// listHandler godoc
// @Summary List recent conversions
// @Tags history
// @Produce json
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {object} dto.HistoryResponse
// @Router /api/v1/history [get]
func (r *ConvertRouter) listHandler(c echo.Context) error {
	limit := storage.DefaultListLimit
	if l := c.QueryParam("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(v, maxHistoryLimit)
	}

	conversions, err := r.storage.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewHistoryResponse(conversions))
}

// getHandler godoc
// @Summary Get a stored conversion
// @Tags history
// @Produce json
// @Param id path string true "Conversion ID" format(uuid)
// @Success 200 {object} dto.Conversion
// @Failure 404 {object} map[string]string
// @Router /api/v1/history/{id} [get]
func (r *ConvertRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a UUID")
	}

	conversion, err := r.storage.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "conversion not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewConversion(*conversion))
}
