package emvqr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTag(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		tag    string
		start  int
		want   Match
		wantOk bool
	}{
		{
			name:   "tag at start",
			text:   "5903ABC",
			tag:    "59",
			want:   Match{Value: "ABC", NextIndex: 7},
			wantOk: true,
		},
		{
			name:   "tag after prefix",
			text:   "xx5903ABC",
			tag:    "59",
			want:   Match{Value: "ABC", NextIndex: 9},
			wantOk: true,
		},
		{
			name:   "start skips earlier hit",
			text:   "5902AB5902CD",
			tag:    "59",
			start:  1,
			want:   Match{Value: "CD", NextIndex: 12},
			wantOk: true,
		},
		{
			name: "tag missing",
			text: "5802VN",
			tag:  "59",
		},
		{
			name: "no room for a length",
			text: "00059",
			tag:  "59",
		},
		{
			name: "length overruns",
			text: "5905AB",
			tag:  "59",
		},
		{
			name: "length not numeric",
			text: "59ABCD",
			tag:  "59",
		},
		{
			name:   "character offsets",
			text:   "Việt5902AB",
			tag:    "59",
			want:   Match{Value: "AB", NextIndex: 10},
			wantOk: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ScanTag(tt.text, tt.tag, tt.start)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want []string
	}{
		{
			name: "every occurrence",
			text: "5902AB" + "5802VN" + "5902CD",
			tag:  "59",
			want: []string{"AB", "CD"},
		},
		{
			name: "none",
			text: "5802VN",
			tag:  "59",
			want: nil,
		},
		{
			name: "stops at malformed hit",
			text: "5902AB" + "59ZZ" + "5902CD",
			tag:  "59",
			want: []string{"AB"},
		},
		{
			// "59" inside the city name is taken as a tag whose length
			// field ("59") overruns, so the real tag 59 is never reached.
			name: "substring hit inside another value",
			text: "6004HN59" + "5902AB",
			tag:  "59",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllTags(tt.text, tt.tag))
		})
	}
}

func TestFirstTag(t *testing.T) {
	v, ok := FirstTag("6006HA NOI"+"5902AB", "60")
	assert.True(t, ok)
	assert.Equal(t, "HA NOI", v)

	_, ok = FirstTag("", "60")
	assert.False(t, ok)
}
