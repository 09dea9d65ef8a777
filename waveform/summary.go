// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	timestats "github.com/cwbudde/algo-dsp/stats/time"
)

// Summary describes the level of a mono buffer.
// dB fields are omitted from JSON when the buffer is silent.
type Summary struct {
	Samples     int     `json:"samples"`
	Peak        float64 `json:"peak"`
	PeakDB      float64 `json:"peak_db,omitempty"`
	RMS         float64 `json:"rms"`
	RMSDB       float64 `json:"rms_db,omitempty"`
	DC          float64 `json:"dc"`
	CrestFactor float64 `json:"crest_factor"`
}

// Summarize computes level statistics of samples. Non-finite samples are
// treated as silence so the result is always JSON encodable.
func Summarize(samples []float32) Summary {
	signal := make([]float64, len(samples))
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			f = 0
		}
		signal[i] = f
	}

	st := timestats.Calculate(signal)

	return Summary{
		Samples:     st.Length,
		Peak:        st.Peak,
		PeakDB:      finite(st.Peak_dB),
		RMS:         st.RMS,
		RMSDB:       finite(st.RMS_dB),
		DC:          st.DC,
		CrestFactor: finite(st.CrestFactor),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
