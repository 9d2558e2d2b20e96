package tomo

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// IRadon reconstructs an image from its sinogram by filtered
// back-projection. The sinogram layout matches Radon: row = projection
// position, column = projection angle, with theta in degrees. Each
// projection is ramp-filtered in the frequency domain and then smeared
// back across the reconstruction grid with linear interpolation. The
// output is N x N where N is the sinogram's row count.
func IRadon(sino *mat.Dense, theta []float64) *mat.Dense {
	n, nAng := sino.Dims()
	if nAng != len(theta) {
		panic("tomo: sinogram angle count does not match theta")
	}

	nfft := nextPow2(2 * n)
	if nfft < 64 {
		nfft = 64
	}
	filter := rampFilter(nfft)
	fft := fourier.NewFFT(nfft)

	// Filter each projection.
	filtered := mat.NewDense(n, nAng, nil)
	seq := make([]float64, nfft)
	for k := 0; k < nAng; k++ {
		for i := range seq {
			seq[i] = 0
		}
		for j := 0; j < n; j++ {
			seq[j] = sino.At(j, k)
		}
		coeff := fft.Coefficients(nil, seq)
		for i := range coeff {
			coeff[i] *= complex(filter[i], 0)
		}
		back := fft.Sequence(nil, coeff)
		for j := 0; j < n; j++ {
			// Sequence is unnormalized, so divide by the FFT length.
			filtered.Set(j, k, back[j]/float64(nfft))
		}
	}

	// Back-project.
	center := float64(n-1) / 2
	recon := mat.NewDense(n, n, nil)
	for k, deg := range theta {
		sin, cos := math.Sincos(deg * math.Pi / 180)
		for r := 0; r < n; r++ {
			y := float64(r) - center
			for c := 0; c < n; c++ {
				x := float64(c) - center
				t := cos*x + sin*y + center
				j := int(math.Floor(t))
				if j < -1 || j >= n {
					continue
				}
				f := t - float64(j)
				var v float64
				if j >= 0 {
					v += (1 - f) * filtered.At(j, k)
				}
				if j+1 < n {
					v += f * filtered.At(j+1, k)
				}
				recon.Set(r, c, recon.At(r, c)+v)
			}
		}
	}

	recon.Scale(math.Pi/(2*float64(nAng)), recon)
	return recon
}

// rampFilter returns the frequency response of the discrete ramp
// filter of Kak & Slaney (eq. 61, ch. 3). Building the filter from its
// spatial form avoids the DC offset a naive |f| ramp introduces.
func rampFilter(n int) []float64 {
	h := make([]float64, n)
	h[0] = 0.25
	for k := 1; k <= n/2; k++ {
		if k%2 == 1 {
			v := -1 / (math.Pi * math.Pi * float64(k) * float64(k))
			h[k] = v
			h[n-k] = v
		}
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, h)
	filter := make([]float64, len(coeff))
	for i, c := range coeff {
		filter[i] = 2 * real(c)
	}
	return filter
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
