// validation.go - Pure validation for health measurements.
// These functions carry no transport types so they can be tested directly.

package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// bpPattern matches "systolic/diastolic" with 2-3 digits on each side.
var bpPattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

var (
	ErrWeight      = errors.New("weight must be a positive number")
	ErrGlucose     = errors.New("glucose must be a positive number")
	ErrBPFormat    = errors.New("blood pressure must be in systolic/diastolic format, e.g. 120/80")
	ErrBPSystolic  = errors.New("systolic value must be between 70 and 250")
	ErrBPDiastolic = errors.New("diastolic value must be between 40 and 150")
)

// Weight validates a weight in lbs and rounds it to 2 decimals.
func Weight(weight float64) (float64, error) {
	if weight <= 0 {
		return 0, ErrWeight
	}
	return round2(weight), nil
}

// Glucose validates a glucose level in mg/dL and rounds it to 2 decimals.
func Glucose(glucose float64) (float64, error) {
	if glucose <= 0 {
		return 0, ErrGlucose
	}
	return round2(glucose), nil
}

// BloodPressure validates a "systolic/diastolic" reading. Surrounding
// whitespace is stripped before matching; the normalized string is returned.
func BloodPressure(bp string) (string, error) {
	bp = strings.TrimSpace(bp)
	if !bpPattern.MatchString(bp) {
		return "", ErrBPFormat
	}
	parts := strings.Split(bp, "/")
	systolic, _ := strconv.Atoi(parts[0])
	diastolic, _ := strconv.Atoi(parts[1])
	if systolic < 70 || systolic > 250 {
		return "", ErrBPSystolic
	}
	if diastolic < 40 || diastolic > 150 {
		return "", ErrBPDiastolic
	}
	return bp, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
