package lvm

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2020/01/02", want: NewDate(2020, time.January, 2)},
		{in: "1999/12/31", want: NewDate(1999, time.December, 31)},
		{in: "2020-01-02", wantErr: true},
		{in: "2020/13/01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in       string
		want     time.Duration
		wantText string
		wantErr  bool
	}{
		{in: "13:14:15", want: 13*time.Hour + 14*time.Minute + 15*time.Second, wantText: "13:14:15"},
		{in: "00:00:00.5", want: 500 * time.Millisecond, wantText: "00:00:00.5"},
		{in: "10:53:52.6731040477752685546875", want: 10*time.Hour + 53*time.Minute + 52*time.Second + 673104047, wantText: "10:53:52.673104047"},
		{in: "25:00:00", wantErr: true},
		{in: "1:2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.SinceMidnight() != tt.want {
				t.Errorf("SinceMidnight() = %v, want %v", got.SinceMidnight(), tt.want)
			}
			if got.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantText)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in       string
		want     Version
		wantText string
		wantErr  bool
	}{
		{in: "2", want: Version{Major: 2}, wantText: "2.0"},
		{in: "0.92", want: Version{Minor: 92}, wantText: "0.92"},
		{in: "1.2.3", want: Version{1, 2, 3}, wantText: "1.2.3"},
		{in: "1.2.3.4", wantErr: true},
		{in: "1..2", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "v2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.wantText {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantText)
			}
		})
	}
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"x columns no", XColumnsNo.String(), "No"},
		{"x columns multi", XColumnsMulti.String(), "Multi"},
		{"x columns out of range", XColumns(9).String(), "XColumns(9)"},
		{"time pref", TimePrefAbsolute.String(), "Absolute"},
		{"unit type", UnitElectricPotential.String(), "Electric_Potential"},
		{"decimal dot", DecimalDot.String(), "."},
		{"decimal comma", DecimalComma.String(), ","},
		{"decimal out of range", DecimalSeparator(5).String(), "DecimalSeparator(5)"},
		{"separator", Tab.String(), "Tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestFileHeader_Marshal tests the text form used by JSON and YAML output.
func TestFileHeader_Marshal(t *testing.T) {
	h := FileHeader{
		Date:             NewDate(2020, time.January, 2),
		DecimalSeparator: DecimalComma,
		ReaderVersion:    Version{Major: 2},
		Separator:        Comma,
		Time:             NewTime(1, 2, 3, 0),
		TimePref:         TimePrefAbsolute,
		WriterVersion:    Version{Major: 2, Minor: 1},
		XColumns:         XColumnsNo,
	}

	b, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"date":"2020/01/02","decimal_separator":",","multi_headings":false,` +
		`"reader_version":"2.0","separator":"Comma","time":"01:02:03",` +
		`"time_pref":"Absolute","writer_version":"2.1","x_columns":"No"}`
	if string(b) != want {
		t.Errorf("json.Marshal() =\n%s\nwant\n%s", b, want)
	}

	var back struct {
		Date          Date    `json:"date"`
		Time          Time    `json:"time"`
		WriterVersion Version `json:"writer_version"`
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back.Date != h.Date || back.Time != h.Time || back.WriterVersion != h.WriterVersion {
		t.Errorf("json.Unmarshal() = %+v", back)
	}

	y, err := yaml.Marshal(h)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if got := string(y); !strings.Contains(got, "separator: Comma\n") || !strings.Contains(got, "date: 2020/01/02\n") {
		t.Errorf("yaml.Marshal() = %s", got)
	}
}

func TestUnmarshalText(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		want := NewDate(2021, time.March, 4)
		text, _ := want.MarshalText()
		var got Date
		if err := got.UnmarshalText(text); err != nil || got != want {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, want)
		}
		if err := got.UnmarshalText([]byte("04.03.2021")); err == nil {
			t.Error("UnmarshalText() of a bad date should fail")
		}
		if got != want {
			t.Errorf("failed UnmarshalText changed the value to %v", got)
		}
	})

	t.Run("time", func(t *testing.T) {
		want := NewTime(23, 59, 58, 125_000_000)
		text, _ := want.MarshalText()
		var got Time
		if err := got.UnmarshalText(text); err != nil || got != want {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, want)
		}
		if err := got.UnmarshalText([]byte("noon")); err == nil {
			t.Error("UnmarshalText() of a bad time should fail")
		}
	})

	t.Run("version", func(t *testing.T) {
		for _, want := range []Version{{Major: 2}, {Major: 1, Minor: 3, Patch: 7}} {
			text, _ := want.MarshalText()
			var got Version
			if err := got.UnmarshalText(text); err != nil || got != want {
				t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, want)
			}
		}
		var v Version
		if err := v.UnmarshalText([]byte("x.y")); err == nil {
			t.Error("UnmarshalText() of a bad version should fail")
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var doc struct {
			Date    Date    `yaml:"date"`
			Time    Time    `yaml:"time"`
			Version Version `yaml:"version"`
		}
		src := "date: 2020/01/02\ntime: \"01:02:03.5\"\nversion: \"2.1\"\n"
		if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
			t.Fatalf("yaml.Unmarshal() error = %v", err)
		}
		if doc.Date != NewDate(2020, time.January, 2) || doc.Time != NewTime(1, 2, 3, 500_000_000) ||
			doc.Version != (Version{Major: 2, Minor: 1}) {
			t.Errorf("yaml.Unmarshal() = %+v", doc)
		}
	})
}
