package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"alfredoptarigan/cv-enhancer/internal/config"
	"alfredoptarigan/cv-enhancer/internal/services"
)

var (
	jobPath   string
	cvPath    string
	cvPDFPath string
	outPath   string
	model     string
)

var rootCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Rewrite a CV as HTML tailored to a job description",
	Long: "enhance reads a job description and a CV (plain text or PDF), sends them to the configured " +
		"LLM provider and writes the enhanced CV as HTML. Provider settings come from the same " +
		"environment variables as the API server.",
	SilenceUsage: true,
	RunE:         runEnhance,
}

func init() {
	rootCmd.Flags().StringVarP(&jobPath, "job", "j", "", "path to a text file with the job description (required)")
	rootCmd.Flags().StringVar(&cvPath, "cv", "", "path to a text file with the CV")
	rootCmd.Flags().StringVar(&cvPDFPath, "cv-pdf", "", "path to a PDF with the CV")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the HTML here instead of stdout")
	rootCmd.Flags().StringVar(&model, "model", "", "override LLM_MODEL")
	_ = rootCmd.MarkFlagRequired("job")
	rootCmd.MarkFlagsMutuallyExclusive("cv", "cv-pdf")
	rootCmd.MarkFlagsOneRequired("cv", "cv-pdf")
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if model != "" {
		cfg.LLM.Model = model
	}

	jobDescription, err := readTextFile(jobPath)
	if err != nil {
		return err
	}

	cv, err := resolveCV(cvPath, cvPDFPath, services.NewPDFParserService())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator, err := services.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize %s client: %w", cfg.LLM.Provider, err)
	}
	log.Printf("🤖 Enhancing CV with %s (%s)...", cfg.LLM.Provider, cfg.LLM.Model)

	enhanced, err := services.NewEnhancerService(generator).EnhanceCV(ctx, jobDescription, cv)
	if err != nil {
		return err
	}

	return writeOutput(cmd, outPath, enhanced)
}

func writeOutput(cmd *cobra.Command, path, html string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}

	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Printf("✅ Enhanced CV written to %s", path)
	return nil
}
