package centroid

import (
	"bytes"
	"encoding/gob"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/streamkern/core/model"
	"github.com/YuminosukeSato/streamkern/kernel"
	"github.com/YuminosukeSato/streamkern/pkg/errors"
	"github.com/YuminosukeSato/streamkern/pkg/log"
)

// serializeVersion identifies the persisted-state layout. Bump it when
// the field order below changes.
const serializeVersion = 1

// GobEncode encodes the full learned state in a fixed field order:
// version, kernel, dictionary, alpha, Gram inverse, Gram matrix,
// tolerance, samples seen, bias, dictionary cap. Scratch buffers are
// transient and excluded.
//
// The kernel is stored through its interface, so custom kernel types
// must be registered with encoding/gob; the kernels shipped in the
// kernel package already are.
func (c *Centroid) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	k := c.kern
	fields := []interface{}{
		serializeVersion,
		&k,
		c.dict,
		c.alpha,
		denseData(c.gramInv),
		denseData(c.gram),
		c.tol,
		c.seen,
		c.bias,
		c.maxSize,
	}
	for _, f := range fields {
		if err := enc.Encode(f); err != nil {
			return nil, errors.Wrap(err, "centroid: failed to encode state")
		}
	}
	return buf.Bytes(), nil
}

// GobDecode reconstructs an estimator from the layout written by
// GobEncode. Subsequent Train and Score calls behave exactly as a
// continuation of the encoded estimator.
func (c *Centroid) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var version int
	if err := dec.Decode(&version); err != nil {
		return errors.Wrap(err, "centroid: failed to decode version")
	}
	if version != serializeVersion {
		return errors.Newf("centroid: unsupported serialization version %d", version)
	}

	var k kernel.Kernel
	var dict [][]float64
	var alpha []float64
	var invData, gramData []float64
	var tol, seen, bias float64
	var maxSize int

	steps := []struct {
		name string
		dst  interface{}
	}{
		{"kernel", &k},
		{"dictionary", &dict},
		{"alpha", &alpha},
		{"gram inverse", &invData},
		{"gram matrix", &gramData},
		{"tolerance", &tol},
		{"samples seen", &seen},
		{"bias", &bias},
		{"max dictionary size", &maxSize},
	}
	for _, s := range steps {
		if err := dec.Decode(s.dst); err != nil {
			return errors.Wrapf(err, "centroid: failed to decode %s", s.name)
		}
	}

	m := len(dict)
	if len(alpha) != m || len(invData) != m*m || len(gramData) != m*m {
		return errors.Newf("centroid: corrupt state: dictionary %d, alpha %d, inverse %d, gram %d",
			m, len(alpha), len(invData), len(gramData))
	}

	c.kern = k
	c.dict = dict
	c.alpha = alpha
	c.gram = denseFromData(m, gramData)
	c.gramInv = denseFromData(m, invData)
	c.tol = tol
	c.seen = seen
	c.bias = bias
	c.maxSize = maxSize
	c.kBuf = nil
	c.aBuf = nil
	c.driftWarned = false

	c.ensureState()
	if m > 0 {
		c.state.SetFitted()
		c.state.SetNFeatures(len(dict[0]))
	}
	return nil
}

// ensureState makes the lifecycle fields usable on an estimator that was
// created by decoding into a zero value rather than through New.
func (c *Centroid) ensureState() {
	if c.state == nil {
		c.state = model.NewStateManager()
		c.logger = log.GetLoggerWithName("centroid")
	} else {
		c.state.Reset()
	}
}

// denseData flattens a square matrix into row-major data. A nil matrix
// yields an empty slice, matching an empty dictionary.
func denseData(d *mat.Dense) []float64 {
	if d == nil {
		return []float64{}
	}
	r, cols := d.Dims()
	out := make([]float64, 0, r*cols)
	for i := 0; i < r; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, d.At(i, j))
		}
	}
	return out
}

// denseFromData rebuilds an m-by-m matrix from row-major data, or nil
// when m is zero.
func denseFromData(m int, data []float64) *mat.Dense {
	if m == 0 {
		return nil
	}
	return mat.NewDense(m, m, data)
}
