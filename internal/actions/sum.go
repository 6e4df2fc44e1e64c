package actions

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/taskcmd/taskcmd/internal/dispatchers"
	"github.com/taskcmd/taskcmd/internal/usage"
)

const (
	sumValues     = "values"
	sumInvalid    = "invalid"
	defaultDigits = 2
	maxDigits     = 15
)

// SumPre collects the numbers from the arguments and every --num option
// into the "values" option. The first token that is not a number is kept
// in "invalid" for SumCheck to report.
func SumPre(parsed *dispatchers.Parsed) (*dispatchers.Parsed, error) {
	next := parsed.Clone()
	var values []float64

	add := func(v any) bool {
		switch n := v.(type) {
		case int64:
			values = append(values, float64(n))
		case float64:
			values = append(values, n)
		case int:
			values = append(values, float64(n))
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
			values = append(values, f)
		default:
			return false
		}
		return true
	}

	for _, token := range parsed.Sliced {
		if !add(token) {
			next.Set(sumInvalid, token)
			return next, nil
		}
	}

	if raw, ok := parsed.Get("num"); ok {
		items, isList := raw.([]any)
		if !isList {
			items = []any{raw}
		}
		for _, item := range items {
			if !add(item) {
				next.Set(sumInvalid, fmt.Sprint(item))
				return next, nil
			}
		}
	}

	next.Set(sumValues, values)
	return next, nil
}

// SumCheck rejects non-numeric input and calls without any number.
func SumCheck(parsed *dispatchers.Parsed) (bool, error) {
	if _, ok := parsed.Get(sumInvalid); ok {
		return false, usage.NotANumber(parsed.String(sumInvalid, ""))
	}

	values, _ := parsed.Get(sumValues)
	list, _ := values.([]float64)
	return len(list) > 0, nil
}

func Sum(_ context.Context, parsed *dispatchers.Parsed) (any, error) {
	values, _ := parsed.Get(sumValues)
	list, _ := values.([]float64)

	var total float64
	for _, v := range list {
		total += v
	}
	return total, nil
}

// SumRound rounds the total to --precision decimal places, clamped to
// the range a float64 can represent.
func SumRound(parsed *dispatchers.Parsed, result any) (any, error) {
	total, ok := result.(float64)
	if !ok {
		return result, nil
	}

	digits := min(max(parsed.Int("precision", defaultDigits), 0), maxDigits)
	scale := math.Pow(10, float64(digits))
	return math.Round(total*scale) / scale, nil
}

// SumFormat renders the total without trailing zeros.
func SumFormat(_ *dispatchers.Parsed, result any) (any, error) {
	total, ok := result.(float64)
	if !ok {
		return result, nil
	}
	return strconv.FormatFloat(total, 'f', -1, 64), nil
}
