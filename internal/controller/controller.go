package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"spotlist-analytics-service/internal/model"
	"spotlist-analytics-service/internal/service"
)

type ReportController interface {
	Analyze(c *fiber.Ctx) error
	StoreDataset(c *fiber.Ctx) error
	GetStoredReport(c *fiber.Ctx) error
}

// reportController exposes HTTP handlers for the analytics endpoints.
type reportController struct {
	reportService service.ReportService
}

// NewReportController builds a ReportController.
func NewReportController(svc service.ReportService) ReportController {
	return &reportController{reportService: svc}
}

// Analyze accepts a spotlist payload and returns the computed report.
func (h *reportController) Analyze(c *fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json payload")
	}

	resp, err := h.reportService.Analyze(c.Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(resp)
}

// StoreDataset accepts a spotlist payload for persistence and later
// re-analysis.
func (h *reportController) StoreDataset(c *fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json payload")
	}

	result, err := h.reportService.Store(c.Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.Status(fiber.StatusAccepted).JSON(result)
}

// GetStoredReport re-runs the pipeline over a stored dataset with filters
// taken from query parameters.
func (h *reportController) GetStoredReport(c *fiber.Ctx) error {
	datasetID := c.Params("id")
	reportType := utils.Trim(c.Query("type"), ' ')

	filters, err := buildFilterSpec(c)
	if err != nil {
		return err
	}

	resp, svcErr := h.reportService.AnalyzeStored(c.Context(), datasetID, reportType, filters)
	if svcErr != nil {
		return mapServiceError(svcErr)
	}

	return c.JSON(resp)
}

func mapServiceError(err error) error {
	switch err.(type) {
	case *service.ValidationError:
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case *service.NotFoundError:
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute report")
	}
}

// buildFilterSpec reads filter criteria from query parameters. Sets arrive
// comma-separated; a nil result means no parameter was supplied at all.
func buildFilterSpec(c *fiber.Ctx) (*model.FilterSpec, error) {
	spec := model.FilterSpec{
		Channels:   splitParam(c.Query("channels")),
		Dayparts:   splitParam(c.Query("dayparts")),
		Categories: splitParam(c.Query("categories")),
		Brands:     splitParam(c.Query("brands")),
		Placement:  utils.Trim(c.Query("placement"), ' '),
		Dates: model.DateRange{
			Start: utils.Trim(c.Query("date_start"), ' '),
			End:   utils.Trim(c.Query("date_end"), ' '),
		},
	}

	for param, target := range map[string]**float64{
		"min_spend":    &spec.MinSpend,
		"max_spend":    &spec.MaxSpend,
		"min_duration": &spec.MinDuration,
		"max_duration": &spec.MaxDuration,
	} {
		raw := utils.Trim(c.Query(param), ' ')
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+param)
		}
		*target = &parsed
	}

	if spec.Empty() {
		return nil, nil
	}
	return &spec, nil
}

func splitParam(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
