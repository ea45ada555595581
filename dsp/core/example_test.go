package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-ugen/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(64),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=64
}

func ExampleEuclidMod() {
	fmt.Println(core.EuclidMod(-1, 4), core.EuclidMod(9, 4))

	// Output:
	// 3 1
}
