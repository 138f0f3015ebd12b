package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-enhancer/internal/models"
	"alfredoptarigan/cv-enhancer/internal/services"
)

type EnhanceHandler struct {
	enhancer services.EnhancerService
}

func NewEnhanceHandler(enhancer services.EnhancerService) *EnhanceHandler {
	return &EnhanceHandler{
		enhancer: enhancer,
	}
}

// HandleEnhance handles POST /enhance-cv
func (h *EnhanceHandler) HandleEnhance(c *fiber.Ctx) error {
	req, details := parseEnhanceRequest(c)
	if len(details) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
			Detail: details,
		})
	}

	enhanced, err := h.enhancer.EnhanceCV(c.UserContext(), req.JobDescription, req.CV)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(models.EnhanceResponse{
		EnhancedCV: enhanced,
	})
}

// parseEnhanceRequest accepts only a JSON object carrying the exact keys
// job_description and cv, both strings. Key matching is case-sensitive.
func parseEnhanceRequest(c *fiber.Ctx) (*models.EnhanceRequest, []models.ValidationErrorDetail) {
	if !c.Is("json") {
		return nil, []models.ValidationErrorDetail{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid JSON object",
			Type: "model_attributes_type",
		}}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil, []models.ValidationErrorDetail{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "json_invalid",
		}}
	}

	var req models.EnhanceRequest
	var details []models.ValidationErrorDetail

	if detail := stringField(fields, "job_description", &req.JobDescription); detail != nil {
		details = append(details, *detail)
	}
	if detail := stringField(fields, "cv", &req.CV); detail != nil {
		details = append(details, *detail)
	}

	if len(details) > 0 {
		return nil, details
	}
	return &req, nil
}

func stringField(fields map[string]json.RawMessage, name string, dst *string) *models.ValidationErrorDetail {
	raw, ok := fields[name]
	if !ok {
		return &models.ValidationErrorDetail{
			Loc:  []string{"body", name},
			Msg:  "Field required",
			Type: "missing",
		}
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, dst) != nil {
		return &models.ValidationErrorDetail{
			Loc:  []string{"body", name},
			Msg:  "Input should be a valid string",
			Type: "string_type",
		}
	}

	return nil
}
