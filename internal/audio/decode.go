package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Output format shared by every decoded clip and the playback device.
const (
	SampleRate     = 44100
	ChannelCount   = 2
	bytesPerSample = 2
	bytesPerFrame  = ChannelCount * bytesPerSample
)

// ErrUnsupportedFormat is returned for files that are neither WAV nor MP3.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Clip is a decoded sample: interleaved stereo signed 16-bit little endian
// PCM at SampleRate.
type Clip struct {
	PCM []byte
}

// Frames returns the number of stereo frames in the clip.
func (c *Clip) Frames() int {
	return len(c.PCM) / bytesPerFrame
}

// Duration returns the playback length of the clip.
func (c *Clip) Duration() time.Duration {
	return time.Duration(c.Frames()) * time.Second / SampleRate
}

// DecodeFile decodes a WAV or MP3 file, chosen by extension.
func DecodeFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// DecodeWAV decodes a PCM WAV stream of any channel count and bit depth.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: wav: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate < 1 {
		return nil, fmt.Errorf("audio: wav: missing format")
	}

	frames := toStereo(buf, int(dec.BitDepth))
	return &Clip{PCM: encode(resample(frames, buf.Format.SampleRate, SampleRate))}, nil
}

// DecodeMP3 decodes an MP3 stream.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	// go-mp3 always produces 16-bit little endian stereo
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audio: mp3: %w", err)
	}

	frames := make([][ChannelCount]int16, len(raw)/bytesPerFrame)
	for i := range frames {
		off := i * bytesPerFrame
		frames[i][0] = int16(binary.LittleEndian.Uint16(raw[off:]))
		frames[i][1] = int16(binary.LittleEndian.Uint16(raw[off+2:]))
	}
	return &Clip{PCM: encode(resample(frames, dec.SampleRate(), SampleRate))}, nil
}

// toStereo converts decoded samples to 16-bit stereo frames.
// Mono is duplicated to both channels, extra channels are dropped.
func toStereo(buf *goaudio.IntBuffer, bitDepth int) [][ChannelCount]int16 {
	chans := buf.Format.NumChannels
	frames := make([][ChannelCount]int16, len(buf.Data)/chans)
	for i := range frames {
		left := to16(buf.Data[i*chans], bitDepth)
		right := left
		if chans > 1 {
			right = to16(buf.Data[i*chans+1], bitDepth)
		}
		frames[i] = [ChannelCount]int16{left, right}
	}
	return frames
}

// to16 scales a sample of the given bit depth to 16 bits.
// 8-bit WAV samples are unsigned.
func to16(v, bitDepth int) int16 {
	switch bitDepth {
	case 8:
		return int16((v - 128) << 8)
	case 24:
		return int16(v >> 8)
	case 32:
		return int16(v >> 16)
	default:
		return int16(v)
	}
}

// resample converts frames between sample rates with linear interpolation.
func resample(frames [][ChannelCount]int16, from, to int) [][ChannelCount]int16 {
	if from == to || from <= 0 || len(frames) == 0 {
		return frames
	}

	n := int(int64(len(frames)) * int64(to) / int64(from))
	out := make([][ChannelCount]int16, n)
	step := float64(from) / float64(to)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		frac := pos - float64(j)
		if j >= len(frames)-1 {
			out[i] = frames[len(frames)-1]
			continue
		}
		for c := 0; c < ChannelCount; c++ {
			a, b := float64(frames[j][c]), float64(frames[j+1][c])
			out[i][c] = int16(a + (b-a)*frac)
		}
	}
	return out
}

func encode(frames [][ChannelCount]int16) []byte {
	pcm := make([]byte, len(frames)*bytesPerFrame)
	for i, f := range frames {
		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame:], uint16(f[0]))
		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame+2:], uint16(f[1]))
	}
	return pcm
}
