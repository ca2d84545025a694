package msgfmt

import (
	"testing"
)

func format(t *testing.T, f Formatter, value string, d Dialect) string {
	t.Helper()
	out, err := f.Format(value, d)
	if err != nil {
		t.Fatalf("%s.Format(%q): %v", f.Name(), value, err)
	}
	return out
}

func TestPhoneFormatter(t *testing.T) {
	f := PhoneFormatter{}
	if got, want := format(t, f, "+1 234-567", MarkdownV2), "`\\+1 234\\-567`"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := format(t, f, "+1 234-567", HTML), "<code>+1 234-567</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, n, ok := f.Recognize("+1 234-567, call anytime")
	if !ok || match != "+1 234-567" || n != len("+1 234-567") {
		t.Fatalf("Recognize: %q %d %v", match, n, ok)
	}
	if _, _, ok := f.Recognize("no digits"); ok {
		t.Fatal("should not recognize prose")
	}
}

func TestDateFormatter(t *testing.T) {
	f := DateFormatter{}
	if got, want := format(t, f, "2024-03-15", MarkdownV2), "`15\\.03\\.2024`"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := format(t, f, "2024-03-15", HTML), "<code>15.03.2024</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// Unparsable values pass through unchanged.
	if got, want := format(t, f, "not a date", HTML), "<code>not a date</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, n, ok := f.Recognize("2024-03-15 was sunny")
	if !ok || match != "2024-03-15" || n != 10 {
		t.Fatalf("Recognize: %q %d %v", match, n, ok)
	}
}

func TestTimeFormatter(t *testing.T) {
	f := TimeFormatter{}
	if got, want := format(t, f, "9:30", HTML), "<code>9:30</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, _, ok := f.Recognize("9:30:15 sharp")
	if !ok || match != "9:30:15" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
	match, _, ok = f.Recognize("9:30 sharp")
	if !ok || match != "9:30" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
}

func TestEmailFormatter(t *testing.T) {
	f := EmailFormatter{}
	if got, want := format(t, f, "user@example.com", MarkdownV2), `[✉️ user@example\.com](mailto:user@example.com)`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := format(t, f, "user@example.com", HTML), `<a href="mailto:user@example.com">user@example.com</a>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, _, ok := f.Recognize("user@example.com wrote")
	if !ok || match != "user@example.com" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
	if _, _, ok := f.Recognize("@handle only"); ok {
		t.Fatal("should not recognize a bare handle")
	}
}

func TestCurrencyFormatter(t *testing.T) {
	f := NewCurrencyFormatter("€", "EUR")
	if f.Name() != "EUR" {
		t.Fatalf("name %q", f.Name())
	}
	if got, want := format(t, f, "42.5", HTML), "<code>42.50 €</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// Unparsable amounts format as zero.
	if got, want := format(t, f, "n/a", HTML), "<code>0.00 €</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, _, ok := f.Recognize("1,234.56 left")
	if !ok || match != "1,234.56" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
}

func TestPercentFormatter(t *testing.T) {
	f := PercentFormatter{}
	if got, want := format(t, f, "85.5", HTML), "<code>85.5%</code>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := format(t, f, "85.5", MarkdownV2), "`85\\.5%`"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	match, _, ok := f.Recognize("85.5% done")
	if !ok || match != "85.5" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
}

func TestProgressFormatter(t *testing.T) {
	f := ProgressFormatter{}
	cases := []struct{ value, want string }{
		{"70", "<code>▓▓▓▓▓▓▓░░░ 70%</code>"},
		{"0", "<code>░░░░░░░░░░ 0%</code>"},
		{"100", "<code>▓▓▓▓▓▓▓▓▓▓ 100%</code>"},
		{"150", "<code>▓▓▓▓▓▓▓▓▓▓ 100%</code>"},
		{"junk", "<code>░░░░░░░░░░ 0%</code>"},
		{"45", "<code>▓▓▓▓▓░░░░░ 45%</code>"},
	}
	for _, tc := range cases {
		if got := format(t, f, tc.value, HTML); got != tc.want {
			t.Fatalf("Format(%q): got %q, want %q", tc.value, got, tc.want)
		}
	}
	match, _, ok := f.Recognize("1000")
	if !ok || match != "100" {
		t.Fatalf("Recognize: %q %v", match, ok)
	}
}

func TestBuiltinFormatterRegistry(t *testing.T) {
	names := FormatterNames()
	want := []string{"date", "email", "percent", "phone", "progress", "time"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
	for _, name := range names {
		f, ok := BuiltinFormatter(name)
		if !ok || f.Name() != name {
			t.Fatalf("BuiltinFormatter(%q) = %v, %v", name, f, ok)
		}
	}
	if _, ok := BuiltinFormatter("EUR"); ok {
		t.Fatal("currency formatters need construction parameters")
	}
	if got := len(BuiltinFormatters()); got != len(want) {
		t.Fatalf("BuiltinFormatters returned %d entries", got)
	}
}
