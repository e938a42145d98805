package spdx

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Version
		wantErr bool
	}{
		{
			name: "current revision",
			in:   "SPDX-2.1",
			want: Version{Major: 2, Minor: 1},
		},
		{
			name: "older revision",
			in:   "SPDX-1.2",
			want: Version{Major: 1, Minor: 2},
		},
		{
			name: "trailing text is tolerated",
			in:   "SPDX-2.1 draft",
			want: Version{Major: 2, Minor: 1},
		},
		{
			name:    "missing prefix",
			in:      "2.1",
			wantErr: true,
		},
		{
			name:    "prefix not at the start",
			in:      "version SPDX-2.1",
			wantErr: true,
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVersionPair(t *testing.T) {
	got, err := ParseVersionPair("2.6")
	if err != nil {
		t.Fatalf("ParseVersionPair(2.6) error = %v", err)
	}
	if got != (Version{Major: 2, Minor: 6}) {
		t.Errorf("ParseVersionPair(2.6) = %v", got)
	}

	if _, err := ParseVersionPair("SPDX-2.6"); err == nil {
		t.Error("ParseVersionPair accepted a prefixed version")
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 2, Minor: 1}
	if v.String() != "SPDX-2.1" {
		t.Errorf("String() = %q", v.String())
	}
	if v.Pair() != "2.1" {
		t.Errorf("Pair() = %q", v.Pair())
	}
}

func TestVersionIsZero(t *testing.T) {
	if !(Version{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if CurrentVersion.IsZero() {
		t.Error("current version should not report IsZero")
	}
}
