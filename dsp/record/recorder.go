package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-ugen/dsp/graph"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrUnknownLabel is returned when querying a label that was not captured.
	ErrUnknownLabel = errors.New("record: label not captured")
	// ErrInvalidLength is returned for a negative sample count.
	ErrInvalidLength = errors.New("record: invalid sample count")
)

// Recorder holds captured output histories.
type Recorder struct {
	sampleRate float64
	labels     []string
	data       map[string][]float64
}

// FromSamples processes g for ceil(total/blockSize) blocks and captures
// exactly total samples of each label. Empty labels capture every output
// of g. Labels are validated before any block is processed.
func FromSamples(g *graph.Graph, labels []string, total int) (*Recorder, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, total)
	}

	all := g.OutputNames()
	if len(labels) == 0 {
		labels = all
	}

	wanted := make(map[string]bool, len(labels))
	for _, label := range labels {
		if _, err := g.OutputByLabel(label); err != nil {
			return nil, fmt.Errorf("record: %w", err)
		}
		wanted[label] = true
	}

	// Keep graph output order regardless of request order.
	ordered := make([]string, 0, len(wanted))
	for _, label := range all {
		if wanted[label] {
			ordered = append(ordered, label)
		}
	}

	block := g.BlockSize()
	iterations := (total + block - 1) / block

	r := &Recorder{
		sampleRate: g.SampleRate(),
		labels:     ordered,
		data:       make(map[string][]float64, len(ordered)),
	}
	for _, label := range ordered {
		r.data[label] = make([]float64, 0, iterations*block)
	}

	for range iterations {
		g.Process()
		for _, label := range ordered {
			buf, _ := g.OutputByLabel(label)
			r.data[label] = append(r.data[label], buf...)
		}
	}

	for label, samples := range r.data {
		r.data[label] = samples[:total]
	}

	return r, nil
}

// Shape returns the number of captured channels and samples per channel.
func (r *Recorder) Shape() (channels, samples int) {
	for _, d := range r.data {
		samples = max(samples, len(d))
	}
	return len(r.data), samples
}

// SampleRate returns the sample rate of the recorded graph.
func (r *Recorder) SampleRate() float64 { return r.sampleRate }

// Labels returns the captured labels in graph output order.
func (r *Recorder) Labels() []string {
	return append([]string(nil), r.labels...)
}

// OutputByLabel returns the full captured history of label.
func (r *Recorder) OutputByLabel(label string) ([]float64, error) {
	d, ok := r.data[label]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return d, nil
}

// Normalized returns a copy of label scaled so its largest magnitude equals
// peak. A silent channel is returned unscaled.
func (r *Recorder) Normalized(label string, peak float64) ([]float64, error) {
	d, err := r.OutputByLabel(label)
	if err != nil {
		return nil, err
	}

	maxAbs := 0.0
	for _, v := range d {
		maxAbs = max(maxAbs, v, -v)
	}

	out := make([]float64, len(d))
	if maxAbs == 0 {
		copy(out, d)
		return out, nil
	}

	vecmath.ScaleBlock(out, d, peak/maxAbs)
	return out, nil
}

// WriteTSV writes one header row of labels followed by one row per sample.
func (r *Recorder) WriteTSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(r.labels); err != nil {
		return fmt.Errorf("record: write header: %w", err)
	}

	_, n := r.Shape()
	row := make([]string, len(r.labels))
	for i := range n {
		for k, label := range r.labels {
			row[k] = strconv.FormatFloat(r.data[label][i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("record: write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("record: flush: %w", err)
	}
	return nil
}
