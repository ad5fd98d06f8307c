package firfilter

// FilterMono designs the filter for spec, filters input and appends the
// flush tail. The result has len(input) + spec.Order + 1 samples. volume
// zero selects DefaultVolume.
//
// Example:
//
//	spec := firfilter.DefaultSpec(1000, firfilter.RateCD)
//	output, err := firfilter.FilterMono(input, spec, 1)
func FilterMono(input []float64, spec FilterSpec, volume float64) ([]float64, error) {
	return filterMono(input, spec, volume)
}

// FilterMonoFloat32 is FilterMono for float32 samples.
func FilterMonoFloat32(input []float32, spec FilterSpec, volume float64) ([]float32, error) {
	return filterMono(input, spec, volume)
}

func filterMono[F Float](input []F, spec FilterSpec, volume float64) ([]F, error) {
	f, err := New[F](&Config{Spec: spec, Volume: volume})
	if err != nil {
		return nil, err
	}

	output := make([]F, len(input), len(input)+f.Len())
	f.ProcessInto(output, input)
	return append(output, f.Flush()...), nil
}
