package msgfmt

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Formatter renders the value of a Custom node for a dialect and recognizes
// such values in free text. Format must be pure; Recognize reports the
// matched prefix of input and how many bytes it consumed.
type Formatter interface {
	Name() string
	Format(value string, dialect Dialect) (string, error)
	Recognize(input string) (match string, n int, ok bool)
}

var (
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-()]+`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	timePattern     = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	amountPattern   = regexp.MustCompile(`^[\d,.]+`)
	percentPattern  = regexp.MustCompile(`^[\d.]+`)
	progressPattern = regexp.MustCompile(`^\d{1,3}`)
)

func recognizePrefix(re *regexp.Regexp, input string) (string, int, bool) {
	m := re.FindString(input)
	if m == "" {
		return "", 0, false
	}
	return m, len(m), true
}

// codeSpan renders a formatter value as inline code with the full prose
// escaper, since formatter output is spliced into the document verbatim.
func codeSpan(value string, dialect Dialect) string {
	if dialect == HTML {
		return "<code>" + escapeHTML(value) + "</code>"
	}
	return "`" + escapeText(value, MarkdownV2) + "`"
}

// PhoneFormatter renders phone numbers as inline code.
type PhoneFormatter struct{}

func (PhoneFormatter) Name() string { return "phone" }

func (PhoneFormatter) Format(value string, dialect Dialect) (string, error) {
	return codeSpan(value, dialect), nil
}

func (PhoneFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(phonePattern, input)
}

// DateFormatter reformats ISO dates as DD.MM.YYYY inline code. Values that
// do not parse pass through unchanged.
type DateFormatter struct{}

func (DateFormatter) Name() string { return "date" }

func (DateFormatter) Format(value string, dialect Dialect) (string, error) {
	out := value
	if d, err := time.Parse("2006-01-02", value); err == nil {
		out = d.Format("02.01.2006")
	}
	return codeSpan(out, dialect), nil
}

func (DateFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(datePattern, input)
}

// TimeFormatter renders clock times as inline code.
type TimeFormatter struct{}

func (TimeFormatter) Name() string { return "time" }

func (TimeFormatter) Format(value string, dialect Dialect) (string, error) {
	return codeSpan(value, dialect), nil
}

func (TimeFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(timePattern, input)
}

// EmailFormatter renders addresses as mailto links.
type EmailFormatter struct{}

func (EmailFormatter) Name() string { return "email" }

func (EmailFormatter) Format(value string, dialect Dialect) (string, error) {
	if dialect == HTML {
		return fmt.Sprintf("<a href=\"mailto:%s\">%s</a>", value, escapeHTML(value)), nil
	}
	return fmt.Sprintf("[✉️ %s](mailto:%s)", escapeText(value, MarkdownV2), value), nil
}

func (EmailFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(emailPattern, input)
}

// CurrencyFormatter renders amounts with a currency symbol; its registry
// name is the currency code.
type CurrencyFormatter struct {
	Symbol string
	Code   string
}

// NewCurrencyFormatter returns a formatter registered under code.
func NewCurrencyFormatter(symbol, code string) CurrencyFormatter {
	return CurrencyFormatter{Symbol: symbol, Code: code}
}

func (f CurrencyFormatter) Name() string { return f.Code }

func (f CurrencyFormatter) Format(value string, dialect Dialect) (string, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		amount = 0
	}
	return codeSpan(fmt.Sprintf("%.2f %s", amount, f.Symbol), dialect), nil
}

func (CurrencyFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(amountPattern, input)
}

// PercentFormatter renders numbers as a one-decimal percentage.
type PercentFormatter struct{}

func (PercentFormatter) Name() string { return "percent" }

func (PercentFormatter) Format(value string, dialect Dialect) (string, error) {
	percent, err := strconv.ParseFloat(value, 64)
	if err != nil {
		percent = 0
	}
	return codeSpan(fmt.Sprintf("%.1f%%", percent), dialect), nil
}

func (PercentFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(percentPattern, input)
}

// ProgressFormatter renders 0-100 values as a ten-segment bar.
type ProgressFormatter struct{}

func (ProgressFormatter) Name() string { return "progress" }

func (ProgressFormatter) Format(value string, dialect Dialect) (string, error) {
	progress, err := strconv.Atoi(value)
	if err != nil || progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := int(math.Round(float64(progress) / 10))
	var bar []rune
	for i := 0; i < 10; i++ {
		if i < filled {
			bar = append(bar, '▓')
		} else {
			bar = append(bar, '░')
		}
	}
	return codeSpan(fmt.Sprintf("%s %d%%", string(bar), progress), dialect), nil
}

func (ProgressFormatter) Recognize(input string) (string, int, bool) {
	return recognizePrefix(progressPattern, input)
}

var builtinFormatters = map[string]func() Formatter{
	"phone":    func() Formatter { return PhoneFormatter{} },
	"date":     func() Formatter { return DateFormatter{} },
	"time":     func() Formatter { return TimeFormatter{} },
	"email":    func() Formatter { return EmailFormatter{} },
	"percent":  func() Formatter { return PercentFormatter{} },
	"progress": func() Formatter { return ProgressFormatter{} },
}

// BuiltinFormatters returns one instance of every parameterless built-in
// formatter. Currency formatters need a symbol and code and are constructed
// with NewCurrencyFormatter.
func BuiltinFormatters() []Formatter {
	out := make([]Formatter, 0, len(builtinFormatters))
	for _, name := range FormatterNames() {
		out = append(out, builtinFormatters[name]())
	}
	return out
}

// FormatterNames returns the names of the built-in formatters, sorted.
func FormatterNames() []string {
	names := make([]string, 0, len(builtinFormatters))
	for name := range builtinFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinFormatter returns a built-in formatter by name.
func BuiltinFormatter(name string) (Formatter, bool) {
	ctor, ok := builtinFormatters[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
