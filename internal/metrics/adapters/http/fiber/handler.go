package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"account-analytics-service/internal/metrics/core/domain"
	"account-analytics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*usecase.Result, error)
}

type MetricsHandler struct {
	uc GetMetricsUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// Aggregate godoc
// @Summary Aggregate metrics across accounts
// @Description Merges per-account daily metrics into cross-account category series
// @Tags Analytics
// @Produce json
// @Param account_ids query string true "Comma separated account ids"
// @Param days query int true "Window: 7 | 14 | 30 | 60 | 90"
// @Param categories query string false "Comma separated category keys"
// @Success 200 {object} AggregateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analytics/aggregate [get]
func (h *MetricsHandler) Aggregate(c *fiber.Ctx) error {
	ids := splitList(c.Query("account_ids", ""))
	if len(ids) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "account_ids is required",
		})
	}

	daysStr := c.Query("days", "")
	if daysStr == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "days is required",
		})
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid 'days' parameter",
		})
	}

	in := usecase.GetMetricsInput{
		AccountIDs: ids,
		Days:       days,
		Categories: splitList(c.Query("categories", "")),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAccountSelection),
			errors.Is(err, usecase.ErrInvalidWindow),
			errors.Is(err, usecase.ErrUnknownCategory):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

// Categories godoc
// @Summary List metric categories
// @Description Canonical categories and the native keys aliased to them
// @Tags Analytics
// @Produce json
// @Success 200 {array} CategoryResponse
// @Router /analytics/categories [get]
func (h *MetricsHandler) Categories(c *fiber.Ctx) error {
	cats := domain.Categories()
	resp := make([]CategoryResponse, 0, len(cats)+1)
	for _, cat := range cats {
		resp = append(resp, CategoryResponse{Key: cat.Key, Label: cat.Label, Aliases: cat.Aliases})
	}
	rate := domain.EngagementRateCategory()
	resp = append(resp, CategoryResponse{Key: rate.Key, Label: rate.Label, Derived: true})

	return c.Status(http.StatusOK).JSON(resp)
}

func toResponse(res *usecase.Result) AggregateResponse {
	resp := AggregateResponse{
		PassID:    res.PassID,
		Days:      int(res.Window),
		IsLoading: res.IsLoading,
		Errors:    make([]AccountErrorResponse, 0, len(res.Errors)),
		Metrics:   make([]MetricResponse, 0, len(res.Categories)),
	}

	for _, err := range res.Errors {
		item := AccountErrorResponse{Message: err.Error()}
		var accErr *usecase.AccountError
		if errors.As(err, &accErr) {
			item.AccountID = accErr.AccountID
			item.Message = accErr.Err.Error()
		}
		resp.Errors = append(resp.Errors, item)
	}

	for _, cr := range res.Categories {
		m := MetricResponse{
			Key:          cr.Metric.Key,
			Label:        cr.Metric.Label,
			CurrentValue: cr.Metric.CurrentValue,
			IsLoading:    cr.IsLoading,
			History:      make([]DailyMetricResponse, 0, len(cr.Metric.History)),
		}
		for _, p := range cr.Metric.History {
			m.History = append(m.History, DailyMetricResponse{Date: p.Date, Value: p.Value})
		}
		resp.Metrics = append(resp.Metrics, m)
	}

	return resp
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
