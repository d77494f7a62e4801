package util

import "testing"

func TestToInt64_String(t *testing.T) {
	if got := ToInt64("42"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestToInt64_DecimalString(t *testing.T) {
	// Snowflake NUMBER(38,2) columns arrive as strings with a fraction part.
	if got := ToInt64("96478.00"); got != 96478 {
		t.Errorf("expected 96478, got %d", got)
	}
}

func TestToInt64_Nil(t *testing.T) {
	if got := ToInt64(nil); got != 0 {
		t.Errorf("expected 0 for nil, got %d", got)
	}
}

func TestToInt64_Bool(t *testing.T) {
	if got := ToInt64(true); got != 1 {
		t.Errorf("expected 1 for true, got %d", got)
	}
	if got := ToInt64(false); got != 0 {
		t.Errorf("expected 0 for false, got %d", got)
	}
}

func TestToFloat64_String(t *testing.T) {
	if got := ToFloat64("13591643.70"); got != 13591643.70 {
		t.Errorf("expected 13591643.70, got %f", got)
	}
}

func TestToFloat64_Nil(t *testing.T) {
	if got := ToFloat64(nil); got != 0 {
		t.Errorf("expected 0 for nil, got %f", got)
	}
}

func TestToFloat64_Int64(t *testing.T) {
	if got := ToFloat64(int64(7)); got != 7.0 {
		t.Errorf("expected 7.0, got %f", got)
	}
}

func TestToFloat64_Bytes(t *testing.T) {
	if got := ToFloat64([]byte("4.5")); got != 4.5 {
		t.Errorf("expected 4.5, got %f", got)
	}
}

func TestToString_Nil(t *testing.T) {
	if got := ToString(nil); got != "" {
		t.Errorf("expected empty string for nil, got %q", got)
	}
}

func TestToString_Bytes(t *testing.T) {
	if got := ToString([]byte("SP")); got != "SP" {
		t.Errorf("expected SP, got %q", got)
	}
}
