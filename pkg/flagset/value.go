package flagset

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/go-playground/colors.v1"
)

func convertString(raw string) (string, error) {
	return raw, nil
}

func renderString(v string) string {
	return v
}

func convertInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

func renderInt(v int) string {
	return strconv.Itoa(v)
}

func convertFloat64(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

func renderFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func convertBool(raw string) (bool, error) {
	return strconv.ParseBool(raw)
}

func renderBool(v bool) string {
	return strconv.FormatBool(v)
}

func convertDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(raw)
}

func renderDuration(v time.Duration) string {
	return v.String()
}

func convertUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

func renderUUID(v uuid.UUID) string {
	return v.String()
}

func convertColor(raw string) (colors.Color, error) {
	return colors.Parse(raw)
}

func renderColor(v colors.Color) string {
	if v == nil {
		return ""
	}

	return v.ToHEX().String()
}
