package models

import (
	"bytes"
	"testing"
)

func TestParseImageRef(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ImageRef
		wantErr bool
	}{
		{
			name:  "plain path",
			input: "/photos/car1.jpg",
			want:  FileRef("/photos/car1.jpg"),
		},
		{
			name:  "file URI",
			input: "file:///photos/car1.jpg",
			want:  FileRef("/photos/car1.jpg"),
		},
		{
			name:  "data URI",
			input: "data:image/png;base64,aGVsbG8=",
			want:  InlineRef([]byte("hello"), "image/png"),
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "bad base64",
			input:   "data:image/png;base64,!!!",
			wantErr: true,
		},
		{
			name:    "data URI without base64 marker",
			input:   "data:image/png,rawbytes",
			wantErr: true,
		},
		{
			name:    "empty file URI",
			input:   "file://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImageRef(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got %+v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseImageRef(%q) failed: %v", tt.input, err)
			}
			if got.Kind != tt.want.Kind || got.Path != tt.want.Path || got.MimeType != tt.want.MimeType || !bytes.Equal(got.Data, tt.want.Data) {
				t.Errorf("ParseImageRef(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestImageRef_DataURIRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff, 'P', 'N', 'G'}
	ref := InlineRef(payload, "image/png")

	uri, err := ref.DataURI()
	if err != nil {
		t.Fatalf("DataURI failed: %v", err)
	}

	parsed, err := ParseImageRef(uri)
	if err != nil {
		t.Fatalf("ParseImageRef failed: %v", err)
	}

	if !bytes.Equal(parsed.Data, payload) {
		t.Errorf("Round trip mismatch: got %v, want %v", parsed.Data, payload)
	}
	if parsed.MimeType != "image/png" {
		t.Errorf("Expected mime type image/png, got %q", parsed.MimeType)
	}
}

func TestImageRef_DataURIRejectsFileRef(t *testing.T) {
	if _, err := FileRef("/photos/x.jpg").DataURI(); err == nil {
		t.Error("Expected error encoding a file reference as data URI")
	}
}

func TestImageRef_Location(t *testing.T) {
	if got := FileRef("/photos/x.jpg").Location(); got != "/photos/x.jpg" {
		t.Errorf("Expected file location path, got %q", got)
	}

	inline := InlineRef([]byte("hello"), "image/png")
	if got := inline.Location(); got != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("Unexpected inline location %q", got)
	}
}
