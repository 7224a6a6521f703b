package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPassword_Stubbed(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("secret"), nil
	}
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil || string(pw) != "secret" {
		t.Fatalf("got %q, err=%v", pw, err)
	}
}

func TestGetAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"valid", "12.50\n", 12.50, false},
		{"integer", "7\n", 7, false},
		{"zero rejected", "0\n", 0, true},
		{"negative rejected", "-3\n", 0, true},
		{"garbage rejected", "abc\n", 0, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetAmount(rdr(tc.input), "Amount", &out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got %v, err=%v", got, err)
			}
		})
	}
}

func TestGetDate(t *testing.T) {
	var out bytes.Buffer
	got, err := GetDate(rdr("2024-03-15\n"), "Date", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetDate_EmptyMeansToday(t *testing.T) {
	var out bytes.Buffer
	got, err := GetDate(rdr("\n"), "Date", &out)
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now().UTC()
	if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
		t.Fatalf("got %v, want today", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Fatalf("time part not truncated: %v", got)
	}
}

func TestGetDate_Invalid(t *testing.T) {
	var out bytes.Buffer
	if _, err := GetDate(rdr("15/03/2024\n"), "Date", &out); err == nil {
		t.Fatal("expected error")
	}
}
