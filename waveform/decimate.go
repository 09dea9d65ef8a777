// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"

	"github.com/golang/glog"
)

// Step returns the stride Decimate uses for n samples and the given target.
// It is 1 when no decimation is needed.
func Step(n, target int) (int, error) {
	if target <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidArgument, target)
	}
	if n <= target {
		return 1, nil
	}

	return n / target, nil
}

// Decimate reduces samples to roughly target points by strided sampling.
//
// When len(samples) <= target the input slice itself is returned. Otherwise
// the result holds samples[0], samples[step], samples[2*step], ... with
// step = len(samples) / target, so its length is ceil(len(samples)/step).
// samples is never modified.
func Decimate[E any](samples []E, target int) ([]E, error) {
	step, err := Step(len(samples), target)
	if err != nil {
		return nil, err
	}
	if step == 1 {
		return samples, nil
	}

	out := make([]E, 0, outLen(len(samples), step))
	for i := 0; i < len(samples); i += step {
		out = append(out, samples[i])
	}

	if glog.V(2) {
		glog.Infof("waveform: decimated %d samples to %d points (step %d, target %d)",
			len(samples), len(out), step, target)
	}

	return out, nil
}

// DecimateInto is Decimate writing into dst, reusing its capacity when it
// is large enough. Unlike Decimate, a buffer that fits the target is copied.
func DecimateInto[E any](dst, samples []E, target int) ([]E, error) {
	step, err := Step(len(samples), target)
	if err != nil {
		return dst[:0], err
	}

	n := outLen(len(samples), step)
	if cap(dst) < n {
		dst = make([]E, n)
	}
	dst = dst[:n]

	for i := range n {
		dst[i] = samples[i*step]
	}

	return dst, nil
}

// outLen is ceil(n/step).
func outLen(n, step int) int {
	return (n + step - 1) / step
}
