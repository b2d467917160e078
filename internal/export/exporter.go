package export

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"paletteai/pkg/logging"
)

// Exporter rasterizes a job, encodes it as PNG and stores it.
type Exporter struct {
	rasterizer Rasterizer
	sink       Sink
	host       string
}

// NewExporter wires the export pipeline. host appears in the card footer.
func NewExporter(r Rasterizer, s Sink, host string) *Exporter {
	return &Exporter{rasterizer: r, sink: s, host: host}
}

// Export renders job and writes it through the sink.
func (e *Exporter) Export(ctx context.Context, job Job) (Artifact, error) {
	layout := NewLayout(job, e.host)
	img, err := e.rasterizer.Rasterize(ctx, layout)
	if err != nil {
		return Artifact{}, fmt.Errorf("rasterize: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Artifact{}, fmt.Errorf("encode png: %w", err)
	}

	name := FileName(job.Form.BusinessType)
	path, err := e.sink.Write(name, buf.Bytes())
	if err != nil {
		return Artifact{}, err
	}
	b := img.Bounds()
	logging.Debug("Export", "Wrote %s (%dx%d, %d bytes)", path, b.Dx(), b.Dy(), buf.Len())
	return Artifact{Path: path, Width: b.Dx(), Height: b.Dy()}, nil
}
