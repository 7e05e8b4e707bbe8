// file: internals/features/school/exams/service/grading.go
package service

// PassThreshold: persentase minimum untuk lulus (tepat 40 dianggap lulus)
const PassThreshold = 40.0

// GradeFor: step function persentase → huruf
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= PassThreshold:
		return "D"
	default:
		return "F"
	}
}

func IsPassing(percentage float64) bool {
	return percentage >= PassThreshold
}
