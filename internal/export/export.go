// Package export turns resume text into downloadable documents.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// baseFilename is the download name used for every exported document.
const baseFilename = "resume"

// Document is a rendered export ready to be sent to a client.
type Document struct {
	Bytes    []byte
	MIMEType string
	Filename string
	Format   rendering.Format
	Template styles.TemplateID
}

// Exporter validates export requests and renders them with the emitter for
// the requested format. It is safe for concurrent use.
type Exporter struct {
	logger   logrus.FieldLogger
	emitters map[rendering.Format]rendering.Emitter
	markup   markup.Options
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLegacyHeadings enables keyword-based heading detection for text that
// has no "### " headings.
func WithLegacyHeadings(enabled bool) Option {
	return func(e *Exporter) {
		e.markup.LegacyHeadings = enabled
	}
}

// WithEmitter replaces the emitter used for format.
func WithEmitter(format rendering.Format, emitter rendering.Emitter) Option {
	return func(e *Exporter) {
		e.emitters[format] = emitter
	}
}

// New creates an Exporter with an emitter for every supported format.
func New(logger logrus.FieldLogger, opts ...Option) (*Exporter, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	e := &Exporter{
		logger:   logger,
		emitters: make(map[rendering.Format]rendering.Emitter, len(rendering.Formats())),
	}
	for _, format := range rendering.Formats() {
		emitter, err := rendering.NewEmitter(format, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s emitter: %w", format, err)
		}
		e.emitters[format] = emitter
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Export renders req into a document. Missing fields and unknown formats are
// reported as *ValidationError before any rendering work; emitter failures,
// including panics, are reported as *rendering.RenderError.
func (e *Exporter) Export(ctx context.Context, req *types.ExportRequest) (*Document, error) {
	if req == nil {
		return nil, &ValidationError{Message: msgMissingInput}
	}
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Message: msgMissingInput, Cause: err}
	}

	format, ok := rendering.ParseFormat(req.Format)
	if !ok {
		return nil, &ValidationError{Message: msgInvalidFormat}
	}

	return e.render(ctx, req.ResumeText, format, styles.ParseTemplateID(req.Template))
}

// ExportAll renders text in every supported format concurrently. Documents
// are returned in rendering.Formats order.
func (e *Exporter) ExportAll(ctx context.Context, text, template string) ([]*Document, error) {
	formats := rendering.Formats()
	docs := make([]*Document, len(formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range formats {
		g.Go(func() error {
			doc, err := e.Export(gctx, &types.ExportRequest{
				ResumeText: text,
				Format:     string(format),
				Template:   template,
			})
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (e *Exporter) render(ctx context.Context, text string, format rendering.Format, id styles.TemplateID) (*Document, error) {
	start := time.Now()
	log := e.logger.WithFields(logrus.Fields{
		"format":      string(format),
		"template":    id.String(),
		"input_bytes": len(text),
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	emitter, ok := e.emitters[format]
	if !ok {
		return nil, &ValidationError{Message: msgInvalidFormat}
	}

	lines := markup.Blocks(markup.ClassifyText(markup.Normalize(text), e.markup))
	profile := styles.Resolve(id)

	data, err := emit(emitter, lines, profile)
	if err != nil {
		log.WithError(err).Error("Document export failed")
		return nil, &rendering.RenderError{
			Format:  format,
			Message: fmt.Sprintf("Failed to generate %s file.", strings.ToUpper(string(format))),
			Cause:   err,
		}
	}

	log.WithFields(logrus.Fields{
		"lines":        len(lines),
		"output_bytes": len(data),
		"duration_ms":  time.Since(start).Milliseconds(),
	}).Info("Document exported")

	return &Document{
		Bytes:    data,
		MIMEType: emitter.ContentType(),
		Filename: baseFilename + "." + emitter.FileExtension(),
		Format:   format,
		Template: id,
	}, nil
}

// emit runs the emitter, converting a panic into an error.
func emit(emitter rendering.Emitter, lines []markup.Line, profile styles.Profile) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = fmt.Errorf("emitter panic: %v", r)
		}
	}()
	return emitter.Emit(lines, profile)
}
