package streamstat

// Source supplies observations one at a time. Next returns the next
// observation and true, or false once the source is exhausted.
type Source interface {
	Next() (float64, bool)
}

// Stream drives a Statistic from a Source, yielding the running statistic
// value for each observation. The output sequence has the same length as
// the input; a drained Stream cannot be restarted, construct a fresh
// Statistic instead.
type Stream struct {
	stat   Statistic
	source Source
}

func NewStream(stat Statistic, source Source) *Stream {
	return &Stream{stat: stat, source: source}
}

func (s *Stream) Next() (float64, bool) {
	x, ok := s.source.Next()
	if !ok {
		return 0, false
	}
	s.stat.Add(x)
	return s.stat.Value(), true
}

// SliceSource yields the elements of a slice in order.
type SliceSource struct {
	values []float64
	index  int
}

func NewSliceSource(values []float64) *SliceSource {
	return &SliceSource{values: values}
}

func (s *SliceSource) Next() (float64, bool) {
	if s.index >= len(s.values) {
		return 0, false
	}
	x := s.values[s.index]
	s.index++
	return x, true
}

// Running feeds values into stat and returns the running statistic value
// after each observation.
func Running(stat Statistic, values []float64) []float64 {
	out := make([]float64, len(values))
	for i, x := range values {
		stat.Add(x)
		out[i] = stat.Value()
	}
	return out
}

// RunningBivariate feeds pairs into stat and returns the running statistic
// value after each pair. xs and ys must have the same length.
func RunningBivariate(stat Bivariate, xs, ys []float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		stat.Add(xs[i], ys[i])
		out[i] = stat.Value()
	}
	return out
}
