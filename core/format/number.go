// File: number.go
// Title: Localised Number Rendering
// Description: Number argument styles for message patterns. Rendering goes
//              through golang.org/x/text/number so grouping and decimal marks
//              follow the pattern locale.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package format

import (
	"errors"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/number"
)

type numberKind int

const (
	numberDecimal numberKind = iota
	numberInteger
	numberPercent
	numberCustom
)

// numberStyle is the parsed style of a {n,number,...} argument
type numberStyle struct {
	kind        numberKind
	minFraction int
	maxFraction int
	grouping    bool
}

// parseNumberStyle accepts "", "integer", "percent" or a decimal pattern such
// as "#,##0.00"
func parseNumberStyle(style string) (numberStyle, error) {
	switch strings.ToLower(style) {
	case "":
		return numberStyle{kind: numberDecimal}, nil
	case "integer":
		return numberStyle{kind: numberInteger}, nil
	case "percent":
		return numberStyle{kind: numberPercent}, nil
	}

	ns := numberStyle{kind: numberCustom, grouping: strings.Contains(style, ",")}
	intPart, frac, hasFrac := strings.Cut(style, ".")
	if strings.Trim(intPart, "#0,") != "" {
		return ns, errors.New("invalid number pattern " + style)
	}
	if hasFrac {
		if strings.Trim(frac, "#0") != "" {
			return ns, errors.New("invalid number pattern " + style)
		}
		ns.minFraction = strings.Count(frac, "0")
		ns.maxFraction = len(frac)
	}
	return ns, nil
}

func (ns numberStyle) format(s *State, v any) string {
	n, ok := numericValue(v)
	if !ok {
		return s.Format(v)
	}

	switch ns.kind {
	case numberInteger:
		return s.Printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
	case numberPercent:
		return s.Printer.Sprint(number.Percent(n))
	case numberCustom:
		opts := []number.Option{
			number.MinFractionDigits(ns.minFraction),
			number.MaxFractionDigits(ns.maxFraction),
		}
		if !ns.grouping {
			opts = append(opts, number.NoSeparator())
		}
		return s.Printer.Sprint(number.Decimal(n, opts...))
	default:
		return s.Printer.Sprint(number.Decimal(n))
	}
}

// numericValue unwraps v into a value x/text/number accepts
func numericValue(v any) (any, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n.InexactFloat64(), true
	case *decimal.Decimal:
		if n == nil {
			return nil, false
		}
		return n.InexactFloat64(), true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return nil, false
}

// toFloat converts a numeric argument for choice selection
func toFloat(v any) (float64, bool) {
	n, ok := numericValue(v)
	if !ok {
		return 0, false
	}
	switch x := n.(type) {
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
