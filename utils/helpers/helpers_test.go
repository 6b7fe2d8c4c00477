package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateHash(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", CreateHash(""))
	assert.Equal(t, CreateHash("000201"), CreateHash("000201"))
	assert.NotEqual(t, CreateHash("000201"), CreateHash("000202"))
}

func TestGetUUId(t *testing.T) {
	a, b := GetUUId(), GetUUId()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestGetCurrentTime(t *testing.T) {
	_, offset := GetCurrentTime().Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestIsStringSliceContains(t *testing.T) {
	tests := []struct {
		name   string
		slice  []string
		search string
		want   bool
	}{
		{name: "found", slice: []string{"26", "38"}, search: "38", want: true},
		{name: "missing", slice: []string{"26", "38"}, search: "62"},
		{name: "empty", slice: nil, search: "38"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStringSliceContains(tt.slice, tt.search))
		})
	}
}

func TestContextWithTimeOut(t *testing.T) {
	ctx, cancel := ContextWithTimeOut(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}
