package helpers

import (
	"testing"
	"time"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 20, wantOffset: 0, wantLimit: 20},
		{name: "third page", page: 3, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "zero size falls back", page: 2, size: 0, wantOffset: 20, wantLimit: DefaultPageSize},
		{name: "oversized clamped", page: 1, size: 5000, wantOffset: 0, wantLimit: DefaultPageSize},
		{name: "page below one", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)

	if info.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
	}
	if info.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", info.TotalPages)
	}
	if info.TotalItems != 45 {
		t.Errorf("TotalItems = %d, want 45", info.TotalItems)
	}

	// An empty result set still reports one (empty) page.
	empty := NewPaginationInfo(0, 1, 20)
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages for empty set = %d, want 1", empty.TotalPages)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", value: "2026-03-15", want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2026-03-15T10:30:00Z", want: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{name: "wrong order", value: "15-03-2026", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "garbage", value: "tomorrow", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) error = nil, want error", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate(nil)
	if err != nil || got != nil {
		t.Errorf("ParseOptionalDate(nil) = (%v, %v), want (nil, nil)", got, err)
	}

	value := "2026-03-15"
	got, err = ParseOptionalDate(&value)
	if err != nil {
		t.Fatalf("ParseOptionalDate() error: %v", err)
	}
	if got == nil || !got.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseOptionalDate() = %v, want 2026-03-15", got)
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", d)
	}
	if d := ParseDuration("nonsense", time.Hour); d != time.Hour {
		t.Errorf("ParseDuration(nonsense) = %v, want fallback 1h", d)
	}
	if d := ParseDuration("", 5*time.Minute); d != 5*time.Minute {
		t.Errorf("ParseDuration(empty) = %v, want fallback 5m", d)
	}
}
