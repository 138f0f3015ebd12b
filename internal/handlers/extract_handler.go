package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-enhancer/internal/models"
	"alfredoptarigan/cv-enhancer/internal/services"
)

type ExtractHandler struct {
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewExtractHandler(pdfParser services.PDFParserService, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleExtract handles POST /extract-cv. The upload is read in memory and never stored.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
			Detail: []models.ValidationErrorDetail{{
				Loc:  []string{"body", "cv"},
				Msg:  "Field required",
				Type: "missing",
			}},
		})
	}

	ext := strings.ToLower(filepath.Ext(cvFile.Filename))
	if ext != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("invalid file extension: %s", ext),
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := cvFile.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("failed to open uploaded file: %v", err),
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: fmt.Sprintf("failed to read uploaded file: %v", err),
		})
	}

	content, err := h.pdfParser.ExtractText(data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(models.ExtractResponse{
		CV:    content.Text,
		Pages: content.PageCount,
	})
}
