package infer

import (
	"strconv"
	"testing"
	"time"

	"tabpaste/internal/tabular"
)

// TestType exercises the precedence chain: boolean, integer, float,
// datetime, then string, with missing cells excluded from the vote.
func TestType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []string
		want   tabular.ColumnType
	}{
		{name: "textual_booleans", values: []string{"yes", "no", "YES"}, want: tabular.TypeBoolean},
		{name: "true_false_letters", values: []string{"true", "False", "T"}, want: tabular.TypeBoolean},
		{name: "zero_one_stays_integer", values: []string{"1", "0", "1"}, want: tabular.TypeInteger},
		{name: "zero_one_with_word_is_boolean", values: []string{"1", "0", "yes"}, want: tabular.TypeBoolean},
		{name: "integers", values: []string{"1", "-2", "+30"}, want: tabular.TypeInteger},
		{name: "floats", values: []string{"1.5", "2", "-0.25"}, want: tabular.TypeFloat},
		{name: "scientific_notation", values: []string{"1e3", "2.5E-1"}, want: tabular.TypeFloat},
		{name: "int64_overflow_reads_as_float", values: []string{"9223372036854775808"}, want: tabular.TypeFloat},
		{name: "inf_nan_stay_strings", values: []string{"Inf", "NaN"}, want: tabular.TypeString},
		{name: "iso_dates", values: []string{"2024-01-02", "2023-12-31"}, want: tabular.TypeDateTime},
		{name: "timestamps", values: []string{"2024-01-02T10:30:00Z", "2024-01-02 08:00:00"}, want: tabular.TypeDateTime},
		{name: "dates_mixed_with_timestamps", values: []string{"2024-01-02", "2024-01-02 08:00:00"}, want: tabular.TypeDateTime},
		{name: "mixed_numeric_and_word", values: []string{"1", "2", "x"}, want: tabular.TypeString},
		{name: "missing_cells_do_not_vote", values: []string{"", "5", "NA"}, want: tabular.TypeInteger},
		{name: "all_missing", values: []string{"", "n/a", "null"}, want: tabular.TypeString},
		{name: "plain_words", values: []string{"alpha", "beta"}, want: tabular.TypeString},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Type(tc.values); got != tc.want {
				t.Fatalf("Type(%q) = %s, want %s", tc.values, got, tc.want)
			}
		})
	}
}

// TestIsMissing pins the NA vocabulary.
func TestIsMissing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{in: "", want: true},
		{in: "   ", want: true},
		{in: "na", want: true},
		{in: "N/A", want: true},
		{in: "None", want: true},
		{in: "NULL", want: true},
		{in: "0", want: false},
		{in: "nah", want: false},
		{in: "x", want: false},
	}

	for _, tc := range cases {
		if got := IsMissing(tc.in); got != tc.want {
			t.Errorf("IsMissing(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestParseTemporal checks layout order: ISO first, US month-first before
// day-first, and offset tracking for RFC3339 matches.
func TestParseTemporal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		want      time.Time
		dateOnly  bool
		hasOffset bool
		ok        bool
	}{
		{
			name:     "iso_date",
			in:       "2024-01-02",
			want:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{
			name:      "rfc3339_zulu",
			in:        "2024-01-02T10:30:00Z",
			want:      time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
			hasOffset: true,
			ok:        true,
		},
		{
			name: "naive_timestamp",
			in:   "2024-01-02 10:30:00",
			want: time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name:     "slash_reads_month_first",
			in:       "05/06/2024",
			want:     time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{
			name:     "day_first_when_month_invalid",
			in:       "31/12/2024",
			want:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{
			name:     "dotted",
			in:       "24.12.2023",
			want:     time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{
			name:     "short_month_name",
			in:       "Mar 5, 2024",
			want:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{
			name:     "full_month_name",
			in:       "March 5, 2024",
			want:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
			ok:       true,
		},
		{name: "not_a_date", in: "banana", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, dateOnly, hasOffset, ok := parseTemporal(tc.in)
			if ok != tc.ok {
				t.Fatalf("parseTemporal(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if !ok {
				return
			}
			if !got.Equal(tc.want) {
				t.Fatalf("parseTemporal(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if dateOnly != tc.dateOnly || hasOffset != tc.hasOffset {
				t.Fatalf("parseTemporal(%q) dateOnly=%v hasOffset=%v, want %v/%v",
					tc.in, dateOnly, hasOffset, tc.dateOnly, tc.hasOffset)
			}
		})
	}
}

// TestCoerce covers typed conversion, missing markers, and wholesale
// demotion to string when a cell refuses the requested type.
func TestCoerce(t *testing.T) {
	t.Parallel()

	t.Run("integer_with_missing", func(t *testing.T) {
		t.Parallel()
		vals, typ := Coerce([]string{"1", "", "3"}, tabular.TypeInteger)
		if typ != tabular.TypeInteger {
			t.Fatalf("type = %s, want integer", typ)
		}
		if vals[0].Int != 1 || vals[2].Int != 3 {
			t.Fatalf("ints = %d, %d, want 1, 3", vals[0].Int, vals[2].Int)
		}
		if !vals[1].Missing || vals[1].Type != tabular.TypeInteger {
			t.Fatalf("middle cell = %+v, want integer missing marker", vals[1])
		}
	})

	t.Run("demotes_on_straggler", func(t *testing.T) {
		t.Parallel()
		vals, typ := Coerce([]string{"1", "x"}, tabular.TypeInteger)
		if typ != tabular.TypeString {
			t.Fatalf("type = %s, want string after demotion", typ)
		}
		if vals[0].Str != "1" || vals[1].Str != "x" {
			t.Fatalf("strings = %q, %q, want \"1\", \"x\"", vals[0].Str, vals[1].Str)
		}
	})

	t.Run("booleans", func(t *testing.T) {
		t.Parallel()
		vals, typ := Coerce([]string{"yes", "0"}, tabular.TypeBoolean)
		if typ != tabular.TypeBoolean {
			t.Fatalf("type = %s, want boolean", typ)
		}
		if !vals[0].Bool || vals[1].Bool {
			t.Fatalf("bools = %v, %v, want true, false", vals[0].Bool, vals[1].Bool)
		}
	})

	t.Run("datetime_flags_survive", func(t *testing.T) {
		t.Parallel()
		vals, typ := Coerce([]string{"2024-01-02", "2024-01-02T10:30:00Z"}, tabular.TypeDateTime)
		if typ != tabular.TypeDateTime {
			t.Fatalf("type = %s, want datetime", typ)
		}
		if !vals[0].DateOnly || vals[0].HasOffset {
			t.Fatalf("first cell flags = %+v, want date-only without offset", vals[0])
		}
		if vals[1].DateOnly || !vals[1].HasOffset {
			t.Fatalf("second cell flags = %+v, want timestamp with offset", vals[1])
		}
	})

	t.Run("strings_trimmed", func(t *testing.T) {
		t.Parallel()
		vals, _ := Coerce([]string{" a ", "b"}, tabular.TypeString)
		if vals[0].Str != "a" || vals[1].Str != "b" {
			t.Fatalf("strings = %q, %q, want \"a\", \"b\"", vals[0].Str, vals[1].Str)
		}
	})

	t.Run("column_is_infer_plus_coerce", func(t *testing.T) {
		t.Parallel()
		vals, typ := Column([]string{"1.5", "na", "2"})
		if typ != tabular.TypeFloat {
			t.Fatalf("type = %s, want float", typ)
		}
		if vals[0].Float != 1.5 || !vals[1].Missing || vals[2].Float != 2 {
			t.Fatalf("values = %+v, want 1.5, missing, 2", vals)
		}
	})
}

// BenchmarkColumn measures inference plus coercion over a numeric column
// with the usual sprinkling of missing cells.
func BenchmarkColumn(b *testing.B) {
	values := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		switch i % 10 {
		case 3:
			values = append(values, "")
		case 7:
			values = append(values, "3.25")
		default:
			values = append(values, strconv.Itoa(i))
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Column(values)
	}
}
