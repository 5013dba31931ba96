package typematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPatternsCompile(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestMatchDefaults(t *testing.T) {
	m := Default()

	tests := []struct {
		name string
		want bool
	}{
		{"ButtonProps", true},
		{"buttonprops", true}, // case-insensitive
		{"SidebarContext", true},
		{"ThemeProvider", true},
		{"ToastStore", true},
		{"CarouselApi", true},
		{"ChartConfig", true},
		{"BadgeRef", true},
		{"DialogOptions", true},
		{"UseModal", true},
		{"useSidebar", true},
		{"Button", false},
		{"Card", false},
		{"Propsy", false}, // suffix anchored
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.name))
		})
	}
}

func TestMatchCustomPatterns(t *testing.T) {
	m, err := New([]string{`Schema$`})
	require.NoError(t, err)

	assert.True(t, m.Match("FormSchema"))
	assert.False(t, m.Match("ButtonProps"), "custom patterns replace the defaults")
}

func TestMatchEmptyPatternSet(t *testing.T) {
	m, err := New([]string{})
	require.NoError(t, err)

	assert.False(t, m.Match("ButtonProps"))
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New([]string{`(`})
	require.Error(t, err)
}
