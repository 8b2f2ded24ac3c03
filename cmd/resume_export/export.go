package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

// formatAll renders every supported format.
const formatAll = "all"

type exportOptions struct {
	input          string
	format         string
	template       string
	outDir         string
	legacyHeadings bool
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert resume text to DOCX or PDF",
		Long: `Reads resume text marked up with "### " headings, "* " bullets and **bold**
spans and writes resume.docx and/or resume.pdf to the output directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `Path to resume text file ("-" reads stdin)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatAll, `Output format: "docx", "pdf" or "all"`)
	cmd.Flags().StringVarP(&opts.template, "template", "t", "simple", `Template: "simple", "classic" or "modern"`)
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Output directory")
	cmd.Flags().BoolVar(&opts.legacyHeadings, "legacy-headings", false, `Detect headings by keyword when the text has no "### " markers`)
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootOptions, opts *exportOptions) error {
	cfg, logger, err := root.load(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	legacy := cfg.Export.LegacyHeadings || opts.legacyHeadings
	exporter, err := export.New(logger, export.WithLegacyHeadings(legacy))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var docs []*export.Document
	if opts.format == formatAll {
		docs, err = exporter.ExportAll(ctx, text, opts.template)
	} else {
		var doc *export.Document
		doc, err = exporter.Export(ctx, &types.ExportRequest{
			ResumeText: text,
			Format:     opts.format,
			Template:   opts.template,
		})
		docs = []*export.Document{doc}
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if root.verbose {
		printer.PrintOutline(markup.Blocks(markup.ClassifyText(markup.Normalize(text), markup.Options{LegacyHeadings: legacy})))
	}

	for _, doc := range docs {
		path := filepath.Join(opts.outDir, doc.Filename)
		if err := os.WriteFile(path, doc.Bytes, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if root.verbose {
			printer.PrintDocument(path, doc.MIMEType, len(doc.Bytes))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	return nil
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
