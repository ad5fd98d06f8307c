package firfilter

import (
	"errors"
	"io"
)

// Source supplies mono samples. Read fills dst and returns the number of
// samples written. A count below len(dst), or io.EOF, marks the end of the
// stream. Any other error aborts processing.
type Source[F Float] interface {
	Read(dst []F) (int, error)
}

// Sink accepts filtered samples. Write must consume all of src; a short
// count or an error aborts processing.
type Sink[F Float] interface {
	Write(src []F) (int, error)
}

// Stats summarises a Run.
type Stats struct {
	// SamplesRead is the number of input samples consumed.
	SamplesRead int64

	// SamplesWritten is the number of samples handed to the sink,
	// including the flush tail.
	SamplesWritten int64

	// Blocks is the number of non-empty input blocks processed.
	Blocks int
}

// Run streams src through f into sink in blocks of blockSize samples, then
// flushes f.Len() samples of tail. blockSize <= 0 selects DefaultBlockSize.
//
// Errors from src or sink are returned as *IOError and wrap ErrIO. Output
// already accepted by the sink is left in place and the flush is skipped.
func Run[F Float](f *Filter[F], src Source[F], sink Sink[F], blockSize int) (Stats, error) {
	var stats Stats
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	in := make([]F, blockSize)
	out := make([]F, blockSize)

	for {
		n, err := src.Read(in)
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, &IOError{Op: "read", Path: nameOf(src), Err: err}
		}

		if n > 0 {
			stats.Blocks++
			stats.SamplesRead += int64(n)
			f.ProcessInto(out, in[:n])
			if err := write(sink, out[:n], &stats); err != nil {
				return stats, err
			}
		}

		if err != nil || n < len(in) {
			break
		}
	}

	if err := write(sink, f.Flush(), &stats); err != nil {
		return stats, err
	}

	return stats, nil
}

func write[F Float](sink Sink[F], samples []F, stats *Stats) error {
	n, err := sink.Write(samples)
	stats.SamplesWritten += int64(n)
	if err == nil && n != len(samples) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &IOError{Op: "write", Path: nameOf(sink), Err: err}
	}
	return nil
}

// nameOf returns the file name of a source or sink that exposes one.
func nameOf(v any) string {
	if n, ok := v.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

// SliceSource is a Source reading from an in-memory slice.
type SliceSource[F Float] struct {
	data []F
	pos  int
}

// NewSliceSource returns a Source over data. data is not copied.
func NewSliceSource[F Float](data []F) *SliceSource[F] {
	return &SliceSource[F]{data: data}
}

// Read implements Source.
func (s *SliceSource[F]) Read(dst []F) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst, s.data[s.pos:])
	s.pos += n
	return n, nil
}

// SliceSink is a Sink collecting samples in memory.
type SliceSink[F Float] struct {
	Samples []F
}

// Write implements Sink.
func (s *SliceSink[F]) Write(src []F) (int, error) {
	s.Samples = append(s.Samples, src...)
	return len(src), nil
}
