package attmath

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian draws normally distributed samples from a seeded PCG source.
// Two generators built with the same seed produce the same sequence.
// A Gaussian is not safe for concurrent use.
type Gaussian struct {
	dist distuv.Normal
}

// NewGaussian returns a generator of N(mu, sigma²) samples seeded with seed.
func NewGaussian(seed uint64, mu, sigma float64) *Gaussian {
	return &Gaussian{dist: distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}}
}

// Next returns the next sample.
func (g *Gaussian) Next() float64 {
	return g.dist.Rand()
}

// NextPair returns the next two samples.
func (g *Gaussian) NextPair() (float64, float64) {
	return g.dist.Rand(), g.dist.Rand()
}

// Mean returns the mean of the distribution.
func (g *Gaussian) Mean() float64 {
	return g.dist.Mean()
}

// StdDev returns the standard deviation of the distribution.
func (g *Gaussian) StdDev() float64 {
	return g.dist.StdDev()
}

// RandomQuaternion returns a uniformly distributed random rotation with a
// non-negative scalar part. g should be a standard normal generator.
func RandomQuaternion(g *Gaussian) Quaternion {
	a, b := g.NextPair()
	c, d := g.NextPair()
	return NewQuaternion(a, b, c, d)
}

// RandomDcm returns the DCM of RandomQuaternion(g).
func RandomDcm(g *Gaussian) Dcm {
	return RandomQuaternion(g).ToDcm()
}
