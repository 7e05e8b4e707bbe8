// file: internals/features/school/promotions/model/alumni_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraduationStatusFor(t *testing.T) {
	cases := []struct {
		percentage float64
		want       GraduationStatus
	}{
		{100, GraduationHonor},
		{90, GraduationHonor}, // tepat 90 = Honor
		{89.99, GraduationMerit},
		{85, GraduationMerit},
		{75, GraduationMerit}, // tepat 75 = Merit
		{74.99, GraduationRegular},
		{40, GraduationRegular},
		{0, GraduationRegular},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, GraduationStatusFor(tc.percentage), "persentase %v", tc.percentage)
	}
}
