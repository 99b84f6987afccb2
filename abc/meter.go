package abc

import (
	"regexp"
	"strings"
)

var meterField = regexp.MustCompile(`(?i)M:\s*(\d+/\d+)`)

// MeterFromABC returns the first numeric M: field of the text.
func MeterFromABC(text string) (string, bool) {
	m := meterField.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// meters of the dance types used by traditional tune collections
var tuneTypeMeters = map[string]string{
	"jig":        "6/8",
	"reel":       "4/4",
	"hornpipe":   "4/4",
	"polka":      "4/4",
	"barndance":  "4/4",
	"strathspey": "4/4",
	"slip jig":   "9/8",
	"slide":      "12/8",
	"waltz":      "3/4",
	"mazurka":    "3/4",
	"three-two":  "3/2",
	"march":      "4/4",
}

// InferMeter guesses the meter of a tune from its dance type.
func InferMeter(tuneType string) (string, bool) {
	m, ok := tuneTypeMeters[foldCaser.String(strings.TrimSpace(tuneType))]
	return m, ok
}

// ResolveMeter picks the declared meter, then one written in the ABC, then
// one implied by the tune type.
func ResolveMeter(declared, text, tuneType string) string {
	if declared != "" {
		return declared
	}
	if m, ok := MeterFromABC(text); ok {
		return m
	}
	m, _ := InferMeter(tuneType)
	return m
}
