// Package streamkern provides online kernel methods for streaming data,
// designed for backend services that need real-time novelty detection
// without storing the input history.
//
// The central piece is the centroid package: an online estimator of the
// center of mass of a data stream in a kernel-induced feature space. It
// uses the sparsification technique from the Kernel Recursive Least
// Squares (KRLS) literature to keep only an approximately linearly
// independent subset of the samples it has seen, so both memory use and
// per-sample cost stay proportional to the intrinsic complexity of the
// data rather than the stream length.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/streamkern/centroid"
//	    "github.com/YuminosukeSato/streamkern/kernel"
//	)
//
//	func main() {
//	    est := centroid.New(kernel.RBF{Gamma: 0.5})
//
//	    // Train one sample at a time.
//	    for _, x := range [][]float64{{1, 1}, {1.1, 0.9}, {0.9, 1.2}} {
//	        if err := est.Train(x); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//
//	    // Distance to the learned center; large values are novel.
//	    score, err := est.Score([]float64{5, 5})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("novelty:", score)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - centroid: the online kernel centroid estimator (training, scoring,
//     persistence, stream adapters)
//   - kernel: kernel functions (Linear, RBF, Polynomial, Sigmoid)
//   - metrics: offline evaluation of one-class detectors (ROC AUC,
//     precision at a threshold)
//   - core/model: model lifecycle interfaces and gob persistence helpers
//   - pkg/errors: structured error types and numerical-stability helpers
//   - pkg/log: structured logging for estimator operations
package streamkern
