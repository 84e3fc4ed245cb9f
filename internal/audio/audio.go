// Package audio decodes the game's sound cues and plays them in the
// background while the game runs.
package audio

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// ErrUnknownSound is reported for cue names that were never loaded.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Service plays named clips without blocking the caller.
// Failures are logged and never returned from Play.
type Service struct {
	dev    Device
	logger *log.Logger

	mu    sync.RWMutex
	clips map[string]*Clip

	wg sync.WaitGroup
}

// NewService creates a service playing through dev.
func NewService(dev Device, logger *log.Logger) *Service {
	return &Service{
		dev:    dev,
		logger: logger,
		clips:  make(map[string]*Clip),
	}
}

// Add registers a decoded clip under name.
func (s *Service) Add(name string, clip *Clip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clips[name] = clip
}

// Load decodes the file at path and registers it under name.
func (s *Service) Load(name, path string) error {
	clip, err := DecodeFile(path)
	if err != nil {
		return fmt.Errorf("audio: load %q: %w", name, err)
	}
	s.Add(name, clip)
	return nil
}

// LoadConfigured loads every cue listed in cfg. Cues that fail to load are
// skipped; their errors are joined.
func (s *Service) LoadConfigured(cfg config.Config) error {
	var errs []error
	for _, name := range sortedKeys(cfg.Sounds.Files) {
		if err := s.Load(name, cfg.SoundPath(name)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Names returns the registered cue names in sorted order.
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.clips)
}

// Clip returns a registered clip.
func (s *Service) Clip(name string) (*Clip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clip, ok := s.clips[name]
	return clip, ok
}

// Play starts the named cue in the background and returns immediately.
func (s *Service) Play(name string) {
	clip, ok := s.Clip(name)
	if !ok {
		s.logger.Debug("sound not played", "name", name, "err", ErrUnknownSound)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.dev.Play(clip); err != nil {
			s.logger.Warn("sound failed", "name", name, "err", err)
		}
	}()
}

// Wait blocks until every started cue has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close waits for playing cues and closes the device.
func (s *Service) Close() error {
	s.Wait()
	return s.dev.Close()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
