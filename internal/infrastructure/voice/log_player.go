package voice

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/zoobzio/clockz"
)

var ErrEmptyUtterance = errors.New("voice: empty utterance")

// LogPlayer stands in for a speech engine: it logs the text and stays
// "speaking" for as long as the text would take to read aloud.
// Implements port.VoicePlayer.
type LogPlayer struct {
	clock          clockz.Clock
	rate           float64
	wordsPerMinute int
	logger         *logger.Logger

	mu       sync.Mutex
	current  chan struct{}
	speaking bool
}

func NewLogPlayer(clock clockz.Clock, rate float64, wordsPerMinute int, logger *logger.Logger) *LogPlayer {
	if rate <= 0 {
		rate = 1
	}
	if wordsPerMinute <= 0 {
		wordsPerMinute = 150
	}
	return &LogPlayer{
		clock:          clock,
		rate:           rate,
		wordsPerMinute: wordsPerMinute,
		logger:         logger,
	}
}

// Duration is words / (wpm * rate) minutes.
func (p *LogPlayer) Duration(text string) time.Duration {
	words := len(strings.Fields(text))
	minutes := float64(words) / (float64(p.wordsPerMinute) * p.rate)
	return time.Duration(minutes * float64(time.Minute))
}

// Speak interrupts any utterance in progress and starts a new one.
func (p *LogPlayer) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyUtterance
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	duration := p.Duration(text)

	p.mu.Lock()
	p.cancelLocked()
	done := make(chan struct{})
	p.current = done
	p.speaking = true
	elapsed := p.clock.After(duration)
	p.mu.Unlock()

	p.logger.Info("Speaking", "text", text, "duration_ms", duration.Milliseconds())

	go func() {
		select {
		case <-elapsed:
			p.mu.Lock()
			if p.current == done {
				p.current = nil
				p.speaking = false
			}
			p.mu.Unlock()
		case <-done:
		}
	}()

	return nil
}

func (p *LogPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
}

func (p *LogPlayer) IsSpeaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

func (p *LogPlayer) cancelLocked() {
	if p.current != nil {
		close(p.current)
		p.current = nil
	}
	p.speaking = false
}
