package files

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SizeLabel is the short and verbose rendering of a byte count
type SizeLabel struct {
	Text    string
	Tooltip string
}

// sizeUnit describes one decimal unit; exponent is the power of 1000 it stands for
type sizeUnit struct {
	exponent int32
	short    string
	long     string
}

var sizeUnits = []sizeUnit{
	{exponent: 1, short: "KB", long: "kilobytes"},
	{exponent: 2, short: "MB", long: "megabytes"},
	{exponent: 3, short: "GB", long: "gigabytes"},
	{exponent: 4, short: "TB", long: "terabytes"},
}

// sizeFractionDigits is the number of fractional digits kept after ceiling rounding
const sizeFractionDigits = 3

// FormatSize renders a byte count with 1000-based units.
// A value moves into the next unit as soon as it reaches that unit's threshold,
// so 1000 is "1.0 KB" and 999999 is "999.999 KB".
func FormatSize(bytes uint64) SizeLabel {
	if bytes < 1000 {
		n := strconv.FormatUint(bytes, 10)
		return SizeLabel{Text: n + " B", Tooltip: n + " bytes"}
	}

	value := decimal.NewFromBigInt(new(big.Int).SetUint64(bytes), 0)

	unit := sizeUnits[len(sizeUnits)-1]
	for _, u := range sizeUnits[:len(sizeUnits)-1] {
		next := decimal.New(1, 3*(u.exponent+1))
		if value.LessThan(next) {
			unit = u
			break
		}
	}

	scaled := value.Shift(-3 * unit.exponent).RoundCeil(sizeFractionDigits)
	text := formatDecimal(scaled)
	return SizeLabel{
		Text:    text + " " + unit.short,
		Tooltip: text + " " + unit.long,
	}
}

// formatDecimal prints d without trailing zeros but keeps one fractional digit
func formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
