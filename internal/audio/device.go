package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Device plays decoded clips. Play blocks until the clip has finished and
// may be called from several goroutines at once.
type Device interface {
	Play(clip *Clip) error
	Close() error
}

// OtoDevice plays clips through the system audio output.
type OtoDevice struct {
	ctx *oto.Context
}

// NewOtoDevice opens the system audio output.
// Only one can exist per process.
func NewOtoDevice() (*OtoDevice, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open output: %w", err)
	}
	<-ready
	return &OtoDevice{ctx: ctx}, nil
}

// Play plays clip and waits for it to finish.
func (d *OtoDevice) Play(clip *Clip) error {
	p := d.ctx.NewPlayer(bytes.NewReader(clip.PCM))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Err(); err != nil {
		_ = p.Close()
		return fmt.Errorf("audio: playback: %w", err)
	}
	return p.Close()
}

// Close suspends the audio output.
func (d *OtoDevice) Close() error {
	return d.ctx.Suspend()
}

// NullDevice discards every clip. It stands in when no audio output is
// available or sound is muted.
type NullDevice struct{}

// Play returns immediately.
func (NullDevice) Play(*Clip) error { return nil }

// Close does nothing.
func (NullDevice) Close() error { return nil }
