package connectivity

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Metric identifies a connectivity estimator.
type Metric int

const (
	MetricPLV Metric = iota
	MetricPLI
	MetricCCF
	MetricCOH
	MetricICOH
)

var metricNames = [...]string{
	MetricPLV:  "PLV",
	MetricPLI:  "PLI",
	MetricCCF:  "CCF",
	MetricCOH:  "COH",
	MetricICOH: "ICOH",
}

// Metrics lists every metric in declaration order.
func Metrics() []Metric {
	return []Metric{MetricPLV, MetricPLI, MetricCCF, MetricCOH, MetricICOH}
}

// String returns the metric's abbreviation.
func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// Spectral reports whether the metric needs a band and sample rate.
func (m Metric) Spectral() bool {
	return m == MetricCOH || m == MetricICOH
}

// ParseMetric looks a metric up by case-insensitive abbreviation.
func ParseMetric(name string) (Metric, error) {
	for i, n := range metricNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Metric(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown metric %q", ErrConfiguration, name)
}

// Compute runs metric m. band is used by spectral metrics only.
func Compute(m Metric, sensors int, data [][]float64, band Band, opts ...Option) (*mat.Dense, []float64, error) {
	switch m {
	case MetricPLV:
		return PLV(sensors, data, opts...)
	case MetricPLI:
		return PLI(sensors, data, opts...)
	case MetricCCF:
		return CCF(sensors, data, opts...)
	case MetricCOH:
		return COH(sensors, data, band.Low, band.High, band.SampleRate, opts...)
	case MetricICOH:
		return ICOH(sensors, data, band.Low, band.High, band.SampleRate, opts...)
	default:
		return nil, nil, fmt.Errorf("%w: unknown metric %v", ErrConfiguration, m)
	}
}
