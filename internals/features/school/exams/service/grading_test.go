package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79.5, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59.99, "D"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, GradeFor(tc.percentage), "persentase %v", tc.percentage)
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(40)) // tepat 40 lulus
	assert.True(t, IsPassing(40.01))
	assert.False(t, IsPassing(39.99))
	assert.False(t, IsPassing(0))
	assert.True(t, IsPassing(100))
}
