package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
)

type Handler struct {
	svc CirculationService
	log *zap.Logger
}

func New(svc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/items", h.SearchItems)

	api.POST("/loans", h.CheckOut)
	api.POST("/loans/checkin", h.CheckIn)
	api.GET("/loans", h.ListOpenLoans)
	api.GET("/loans/search", h.SearchLoans)

	api.POST("/borrowers", h.CreateBorrower)
	api.GET("/borrowers/:cardId/fines", h.GetBorrowerFines)
	api.POST("/borrowers/:cardId/fines/pay", h.PayFines)

	api.GET("/fines/totals", h.ListFineTotals)
	api.POST("/fines/sweep", h.Sweep)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps engine errors onto status codes; the message is passed through unchanged.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBorrowerNotFound),
		errors.Is(err, errs.ErrNoActiveLoan):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrItemAlreadyOut),
		errors.Is(err, errs.ErrDuplicateIdentity):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnpaidFines),
		errors.Is(err, errs.ErrLoanLimitExceeded),
		errors.Is(err, errs.ErrLoanStillOpen):
		code = http.StatusUnprocessableEntity
	case errs.IsRetryable(err), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusServiceUnavailable
	}
	return echo.NewHTTPError(code, err.Error())
}

func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func includePaid(c echo.Context) (bool, error) {
	p := c.QueryParam("includePaid")
	if p == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(p)
	if err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, "includePaid is invalid")
	}
	return v, nil
}

func (h *Handler) SearchItems(c echo.Context) error {
	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CheckOut(c echo.Context) error {
	var req model.CheckOutRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	loan, err := h.svc.CheckOut(c.Request().Context(), req.ISBN, req.CardID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) CheckIn(c echo.Context) error {
	var req model.CheckInRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CheckIn(c.Request().Context(), req.ISBN)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListOpenLoans(c echo.Context) error {
	loans, err := h.svc.ListOpenLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) SearchLoans(c echo.Context) error {
	loans, err := h.svc.SearchLoans(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) CreateBorrower(c echo.Context) error {
	var req model.CreateBorrowerRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	b, err := h.svc.CreateBorrower(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) GetBorrowerFines(c echo.Context) error {
	paid, err := includePaid(c)
	if err != nil {
		return err
	}
	fines, err := h.svc.GetBorrowerFines(c.Request().Context(), c.Param("cardId"), paid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) PayFines(c echo.Context) error {
	p, err := h.svc.PayFines(c.Request().Context(), c.Param("cardId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListFineTotals(c echo.Context) error {
	paid, err := includePaid(c)
	if err != nil {
		return err
	}
	totals, err := h.svc.ListFineTotals(c.Request().Context(), paid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, totals)
}

func (h *Handler) Sweep(c echo.Context) error {
	res, err := h.svc.Sweep(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
