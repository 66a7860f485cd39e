// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ErrNoMatch is returned when a selection yields nothing.
var ErrNoMatch = errors.New("no value found")

// Select evaluates a JSONPath expression against the JSON form of v and
// returns one line per selected value. Strings are printed raw, everything
// else as compact JSON.
func Select(v any, expr string) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("empty jsonpath expression")
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %s: %w", expr, err)
	}

	var lines []string
	if arr, ok := val.([]any); ok {
		for _, item := range arr {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			lines = append(lines, s)
		}
	} else if val != nil {
		s, err := toString(val)
		if err != nil {
			return nil, err
		}
		lines = append(lines, s)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("jsonpath %s: %w", expr, ErrNoMatch)
	}
	return lines, nil
}

// FormatSelect writes the lines returned by Select to w.
func FormatSelect(v any, expr string, w io.Writer) error {
	lines, err := Select(v, expr)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
