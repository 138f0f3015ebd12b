package main

import (
	"fmt"
	"os"

	"alfredoptarigan/cv-enhancer/internal/services"
)

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// resolveCV returns the CV text from a plain text file or, when pdfPath is set, from a PDF.
func resolveCV(textPath, pdfPath string, parser services.PDFParserService) (string, error) {
	if pdfPath == "" {
		return readTextFile(textPath)
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pdfPath, err)
	}

	content, err := parser.ExtractText(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract CV from %s: %w", pdfPath, err)
	}
	return content.Text, nil
}
