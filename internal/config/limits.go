package config

import "fmt"

// InputConfig bounds what the console accepts.
type InputConfig struct {
	// MaxSentenceLength caps a sentence in characters; the rest of the line is dropped.
	MaxSentenceLength int `yaml:"max_sentence_length"`
}

// DefaultInputConfig matches the historical 1000-byte line buffer minus its terminator.
func DefaultInputConfig() InputConfig {
	return InputConfig{MaxSentenceLength: 999}
}

// Validate checks the bounds are usable.
func (c InputConfig) Validate() error {
	if c.MaxSentenceLength <= 0 {
		return fmt.Errorf("input.max_sentence_length must be positive, got %d", c.MaxSentenceLength)
	}
	return nil
}
