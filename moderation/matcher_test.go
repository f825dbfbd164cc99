package moderation

import (
	"fmt"
	"newswatch/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatcher_First(t *testing.T) {
	req := require.New(t)
	matcher, err := NewMatcher([]string{"snake", "badger", "mushroom"})
	req.NoError(err)

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"Single signal", "the badger is here", "badger", true},
		{"Declaration order beats text order", "mushroom then badger then snake", "snake", true},
		{"Substring inside a word", "badgers everywhere", "badger", true},
		{"Nothing found", "nothing to see", "", false},
		{"Empty text", "", "", false},
		{"Accents do not break matching", "un été avec un badger", "badger", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.First(tt.input)
			req.Equal(tt.wantOK, ok, tt.name)
			req.Equal(tt.want, got, tt.name)
		})
	}
}

func TestMatcher_LowercasesSignals(t *testing.T) {
	req := require.New(t)
	matcher, err := NewMatcher([]string{"Hidden Agenda"})
	req.NoError(err)

	got, ok := matcher.First("there is a hidden agenda")
	req.True(ok)
	req.Equal("hidden agenda", got)
}

func TestNewMatcher_NoSignals(t *testing.T) {
	_, err := NewMatcher(nil)
	require.ErrorIs(t, err, errors.ErrEmptySignals)
}

func BenchmarkMatcher_First(b *testing.B) {
	signals := make([]string, 10_000)
	for i := range signals {
		signals[i] = fmt.Sprintf("word_%d", i)
	}
	matcher, err := NewMatcher(signals)
	if err != nil {
		b.Fatal(err)
	}

	text := "a perfectly ordinary chat message without any registered signal in it"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.First(text)
	}
}
