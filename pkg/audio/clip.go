package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// Clip is decoded audio held as interleaved float64 samples in [-1, 1].
type Clip struct {
	Samples    []float64
	SampleRate int
	Channels   int
}

// Decode parses a recorded clip. format is the container name ("wav", "mp3"),
// usually taken from the uploaded file's extension.
func Decode(data []byte, format string) (*Clip, error) {
	switch format {
	case "wav":
		return decodeWAV(data)
	case "mp3":
		return decodeMP3(data)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", format)
	}
}

func decodeWAV(data []byte) (*Clip, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	if buf.Format == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("decode wav: empty stream")
	}
	if buf.Format.NumChannels < 1 || len(buf.Data)%buf.Format.NumChannels != 0 {
		return nil, fmt.Errorf("decode wav: truncated frame")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	return &Clip{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}

func decodeMP3(data []byte) (*Clip, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	// go-mp3 always yields 16-bit little-endian stereo
	samples := make([]float64, len(raw)/2)
	for i := 0; i < len(samples); i++ {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = float64(v) / 32768.0
	}

	return &Clip{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}

// Resample converts the clip to the target rate with linear interpolation,
// channel by channel.
func (c *Clip) Resample(rate int) *Clip {
	if rate == c.SampleRate || len(c.Samples) == 0 {
		return c
	}

	srcFrames := len(c.Samples) / c.Channels
	if srcFrames < 1 {
		return c
	}
	dstFrames := int(math.Round(float64(srcFrames) * float64(rate) / float64(c.SampleRate)))
	if dstFrames < 1 {
		dstFrames = 1
	}

	out := make([]float64, dstFrames*c.Channels)
	step := float64(srcFrames-1) / math.Max(float64(dstFrames-1), 1)
	for frame := 0; frame < dstFrames; frame++ {
		pos := float64(frame) * step
		left := int(pos)
		right := left + 1
		if right >= srcFrames {
			right = srcFrames - 1
		}
		frac := pos - float64(left)
		for ch := 0; ch < c.Channels; ch++ {
			a := c.Samples[left*c.Channels+ch]
			b := c.Samples[right*c.Channels+ch]
			out[frame*c.Channels+ch] = a + (b-a)*frac
		}
	}

	return &Clip{Samples: out, SampleRate: rate, Channels: c.Channels}
}

// Downmix averages all channels into one.
func (c *Clip) Downmix() *Clip {
	if c.Channels <= 1 {
		return c
	}

	frames := len(c.Samples) / c.Channels
	out := make([]float64, frames)
	for frame := 0; frame < frames; frame++ {
		var sum float64
		for ch := 0; ch < c.Channels; ch++ {
			sum += c.Samples[frame*c.Channels+ch]
		}
		out[frame] = sum / float64(c.Channels)
	}

	return &Clip{Samples: out, SampleRate: c.SampleRate, Channels: 1}
}

// RMSdBFS measures loudness relative to full scale. Silence reports -Inf.
func (c *Clip) RMSdBFS() float64 {
	if len(c.Samples) == 0 {
		return math.Inf(-1)
	}

	var sum float64
	for _, s := range c.Samples {
		sum += s * s
	}
	rms := math.Sqrt(sum / float64(len(c.Samples)))
	if rms == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(rms)
}

// ApplyGain scales every sample by db decibels, clamping to full scale.
func (c *Clip) ApplyGain(db float64) {
	factor := math.Pow(10, db/20)
	for i, s := range c.Samples {
		v := s * factor
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		c.Samples[i] = v
	}
}

// EncodeWAV16 renders the clip as an uncompressed 16-bit PCM WAV, in memory.
func (c *Clip) EncodeWAV16() ([]byte, error) {
	ws := &memWriteSeeker{}
	enc := wav.NewEncoder(ws, c.SampleRate, 16, c.Channels, 1)

	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(math.Round(s * 32767))
	}

	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: c.Channels, SampleRate: c.SampleRate},
		SourceBitDepth: 16,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	return ws.buf, nil
}

// memWriteSeeker adapts a byte slice to the io.WriteSeeker the wav encoder
// needs, so no temporary file is ever created.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (w *memWriteSeeker) Write(p []byte) (int, error) {
	if need := w.pos + len(p); need > len(w.buf) {
		grown := make([]byte, need)
		copy(grown, w.buf)
		w.buf = grown
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
	return len(p), nil
}

func (w *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(w.pos) + offset
	case io.SeekEnd:
		pos = int64(len(w.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative seek position")
	}
	w.pos = int(pos)
	return pos, nil
}
