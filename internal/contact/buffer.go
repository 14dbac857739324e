package contact

import (
	"encoding/binary"
	"errors"
	stdmath "math"

	"github.com/Faultbox/materialfx/pkg/math"
)

// RecordSize is the packed size of one contact record: position, normal,
// distance and impulse as little-endian float32 values.
const RecordSize = 8 * 4

// ErrTruncated is returned when a contact buffer ends inside a record.
var ErrTruncated = errors.New("contact: truncated record")

// Decode unpacks a contact buffer. When the buffer ends mid-record the
// complete samples are returned together with ErrTruncated.
func Decode(buf []byte) ([]Sample, error) {
	n := len(buf) / RecordSize
	samples := make([]Sample, 0, n)

	for i := 0; i < n; i++ {
		rec := buf[i*RecordSize : (i+1)*RecordSize]
		samples = append(samples, Sample{
			Position: math.Vec3{X: f32(rec, 0), Y: f32(rec, 1), Z: f32(rec, 2)},
			Normal:   math.Vec3{X: f32(rec, 3), Y: f32(rec, 4), Z: f32(rec, 5)},
			Distance: f32(rec, 6),
			Impulse:  f32(rec, 7),
		})
	}

	if len(buf)%RecordSize != 0 {
		return samples, ErrTruncated
	}
	return samples, nil
}

// Encode packs samples into the layout read by Decode.
func Encode(samples []Sample) []byte {
	buf := make([]byte, 0, len(samples)*RecordSize)
	for _, s := range samples {
		for _, f := range [8]float32{
			s.Position.X, s.Position.Y, s.Position.Z,
			s.Normal.X, s.Normal.Y, s.Normal.Z,
			s.Distance, s.Impulse,
		} {
			buf = binary.LittleEndian.AppendUint32(buf, stdmath.Float32bits(f))
		}
	}
	return buf
}

func f32(rec []byte, field int) float32 {
	return stdmath.Float32frombits(binary.LittleEndian.Uint32(rec[field*4:]))
}
