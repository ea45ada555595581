package record

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-ugen/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// SpectrumOption configures Spectrum.
type SpectrumOption func(*spectrumConfig)

type spectrumConfig struct {
	window window.Type
}

// WithWindow tapers the channel with the periodic form of w before the transform.
func WithWindow(w window.Type) SpectrumOption {
	return func(c *spectrumConfig) {
		c.window = w
	}
}

// Spectrum returns the magnitude spectrum of label, bins 0 through Nyquist.
// The channel is tapered by the configured window (rectangular by default)
// and zero-padded to the next power of two.
func (r *Recorder) Spectrum(label string, opts ...SpectrumOption) ([]float64, error) {
	d, err := r.OutputByLabel(label)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 {
		return nil, nil
	}

	var cfg spectrumConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.window != window.TypeRectangular {
		d, err = window.ApplyCoefficients(d, window.Generate(cfg.window, len(d), window.WithPeriodic()))
		if err != nil {
			return nil, err
		}
	}

	fftSize := nextPowerOfTwo(len(d))
	in := make([]complex128, fftSize)
	for i, v := range d {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("record: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("record: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

// BinFrequency returns the center frequency in Hz of bin k for a spectrum
// computed from n samples.
func (r *Recorder) BinFrequency(k, n int) float64 {
	return float64(k) * r.sampleRate / float64(nextPowerOfTwo(n))
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
