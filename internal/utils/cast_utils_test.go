// Package utils
package utils

import (
	"encoding/json"
	"testing"
)

func TestStrToFloat(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue float64
		expected     float64
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"3.75", 0, 3.75},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToFloat(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToFloat(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToFloat: %d pass, %d fail", pass, fail)
}

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"4654132", 1, 4654132},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}

func TestAnyToFloat(t *testing.T) {
	tests := []struct {
		input        interface{}
		defaultValue float64
		expected     float64
	}{
		{nil, 0, 0},
		{nil, 2.5, 2.5},
		{3.5, 0, 3.5},
		{float32(1.5), 0, 1.5},
		{7, 0, 7},
		{int64(9), 0, 9},
		{json.Number("4.25"), 0, 4.25},
		{json.Number("bad"), 1.5, 1.5},
		{"2.75", 0, 2.75},
		{" 2.75 ", 0, 2.75},
		{"", 6, 6},
		{"abc", 6, 6},
		{true, 6, 6},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := AnyToFloat(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("AnyToFloat(%v, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAnyToFloat: %d pass, %d fail", pass, fail)
}

func TestAnyToInt(t *testing.T) {
	tests := []struct {
		input        interface{}
		defaultValue int
		expected     int
	}{
		{nil, 0, 0},
		{nil, 3, 3},
		{5, 0, 5},
		{int64(6), 0, 6},
		{uint(7), 0, 7},
		{8.9, 0, 8},
		{json.Number("12"), 0, 12},
		{"42", 0, 42},
		{" 42 ", 0, 42},
		{"", 9, 9},
		{"abc", 9, 9},
		{struct{}{}, 9, 9},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := AnyToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("AnyToInt(%v, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAnyToInt: %d pass, %d fail", pass, fail)
}

func TestAnyToInt64(t *testing.T) {
	tests := []struct {
		input        interface{}
		defaultValue int64
		expected     int64
	}{
		{nil, 0, 0},
		{int64(11), 0, 11},
		{12, 0, 12},
		{uint64(13), 0, 13},
		{14.7, 0, 14},
		{json.Number("15"), 0, 15},
		{"16", 0, 16},
		{"x", 3, 3},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := AnyToInt64(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("AnyToInt64(%v, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAnyToInt64: %d pass, %d fail", pass, fail)
}

func TestAnyToBool(t *testing.T) {
	tests := []struct {
		input        interface{}
		defaultValue bool
		expected     bool
	}{
		{nil, false, false},
		{nil, true, true},
		{true, false, true},
		{1, false, true},
		{0, true, false},
		{int64(0), true, false},
		{2.5, false, true},
		{"true", false, true},
		{"0", true, false},
		{"maybe", true, true},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := AnyToBool(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("AnyToBool(%v, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAnyToBool: %d pass, %d fail", pass, fail)
}

func TestAnyToString(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"abc", "abc"},
		{json.Number("1.5"), "1.5"},
		{2.5, "2.5"},
		{42, "42"},
		{int64(43), "43"},
		{true, "true"},
		{struct{}{}, ""},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := AnyToString(test.input)
		if result != test.expected {
			fail++
			t.Errorf("AnyToString(%v) = %q; expected %q", test.input, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestAnyToString: %d pass, %d fail", pass, fail)
}
