// Package report delivers aggregation results to people and monitoring systems.
package report

import (
	"errors"

	"github.com/itohio/golux/pkg/aggregate"
)

// Reporter receives the result of every completed window.
type Reporter interface {
	Report(r *aggregate.Result) error
}

// Multi fans a result out to several reporters. Every reporter is called even if one fails.
type Multi []Reporter

// Report calls every reporter in order and joins their errors.
func (m Multi) Report(r *aggregate.Result) error {
	var errs []error
	for _, rep := range m {
		if err := rep.Report(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ Reporter = Multi(nil)
	_ Reporter = (*Console)(nil)
	_ Reporter = (*Table)(nil)
	_ Reporter = (*Metrics)(nil)
)
