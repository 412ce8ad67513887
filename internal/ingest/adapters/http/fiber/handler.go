package fiber

import (
	"context"
	"errors"
	"net/http"

	"account-analytics-service/internal/ingest/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type StorePointUseCase interface {
	Execute(ctx context.Context, in usecase.StorePointInput) (bool, error)
	BulkStore(ctx context.Context, in usecase.BulkStorePointsInput) (usecase.BulkStorePointsResult, error)
}

type PointHandler struct {
	storeUC StorePointUseCase
}

func NewPointHandler(storeUC StorePointUseCase) *PointHandler {
	return &PointHandler{storeUC: storeUC}
}

// StorePoint godoc
// @Summary Store a daily metric point
// @Description Upserts one account-day metric value
// @Tags Ingest
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param request body StorePointRequest true "Metric point"
// @Success 201 {object} StorePointResponse
// @Success 200 {object} StorePointResponse "Unchanged"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /accounts/{id}/metrics [post]
func (h *PointHandler) StorePoint(c *fiber.Ctx) error {
	var req StorePointRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.StorePointInput{
		AccountID: c.Params("id"),
		MetricKey: req.MetricKey,
		Date:      req.Date,
		Value:     req.Value,
	}

	written, err := h.storeUC.Execute(c.UserContext(), input)
	if err != nil {
		return writeError(c, err)
	}

	if !written {
		return c.Status(http.StatusOK).JSON(StorePointResponse{Status: "unchanged"})
	}
	return c.Status(http.StatusCreated).JSON(StorePointResponse{Status: "written"})
}

// BulkStorePoints godoc
// @Summary Bulk store daily metric points
// @Description Validates all points, then upserts them one by one
// @Tags Ingest
// @Accept json
// @Produce json
// @Param id path string true "Account id"
// @Param request body BulkStorePointsRequest true "Metric points"
// @Success 201 {object} BulkStorePointsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /accounts/{id}/metrics/bulk [post]
func (h *PointHandler) BulkStorePoints(c *fiber.Ctx) error {
	var req BulkStorePointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Points) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "points_list_required",
		})
	}

	accountID := c.Params("id")
	inputs := make([]usecase.StorePointInput, len(req.Points))
	for i, p := range req.Points {
		inputs[i] = usecase.StorePointInput{
			AccountID: accountID,
			MetricKey: p.MetricKey,
			Date:      p.Date,
			Value:     p.Value,
		}
	}

	result, err := h.storeUC.BulkStore(
		c.UserContext(),
		usecase.BulkStorePointsInput{Points: inputs},
	)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkStorePointsResponse{
		Written:   result.Written,
		Unchanged: result.Unchanged,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPoint),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrFutureDate):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_point",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
