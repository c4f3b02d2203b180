package port

import "context"

// VoicePlayer speaks alert text to the driver. At most one utterance is
// active; Speak cancels any utterance in progress.
type VoicePlayer interface {
	Speak(ctx context.Context, text string) error
	Stop()
	IsSpeaking() bool
}
