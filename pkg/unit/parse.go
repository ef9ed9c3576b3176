package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// ratioSeparators are the characters that may split a ratio unit, as in
// "B/s" or "Bps".
const ratioSeparators = "p/"

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// SplitAmountAndUnit splits a token like "147bytes" into its numeric
// and unit halves. The amount is the maximal leading digit run, plus at
// most one decimal point when a digit follows it, so "1.5GB" splits
// into ("1.5", "GB"). Fails when the token is too short, does not start
// with a digit, or has no unit text after the amount.
func SplitAmountAndUnit(token string) (amountText, unitText string, err error) {
	if len(token) <= 1 {
		return "", "", fmt.Errorf("%w: %q", ErrAmountAndUnitRequired, token)
	}
	i := 0
	for i < len(token) && isDigit(token[i]) {
		i++
	}
	if i == 0 {
		return "", "", fmt.Errorf("%w: %q", ErrAmountAndUnitRequired, token)
	}
	if i+1 < len(token) && token[i] == '.' && isDigit(token[i+1]) {
		i++
		for i < len(token) && isDigit(token[i]) {
			i++
		}
	}
	if i == len(token) {
		return "", "", fmt.Errorf("%w: %q", ErrAmountAndUnitRequired, token)
	}
	return token[:i], token[i:], nil
}

// splitRatio splits text around the first separator that is not the
// final character, so "Bps" splits into ("B", "s") and "MiB/min" into
// ("MiB", "min").
func splitRatio(text string) (numText, denText string, err error) {
	if len(text) <= 1 {
		return "", "", errNotComposite
	}
	for i := 0; i < len(text)-1; i++ {
		if strings.IndexByte(ratioSeparators, text[i]) >= 0 {
			return text[:i], text[i+1:], nil
		}
	}
	return "", "", errNotComposite
}

// ParseUnit resolves unit text to a Unit. Text without a separator
// parses as a single base unit. Text with one is first tried as a
// ratio; if the split itself fails (separator in final position only),
// the whole text falls back to a base-unit parse. Genuine lookup
// failures propagate as ErrUnitNotFound either way.
func ParseUnit(text string) (Unit, error) {
	if !strings.ContainsAny(text, ratioSeparators) {
		b, err := ParseBaseUnit(text)
		if err != nil {
			return Unit{}, err
		}
		return Basic(b), nil
	}
	numText, denText, err := splitRatio(text)
	if err != nil {
		b, perr := ParseBaseUnit(text)
		if perr != nil {
			return Unit{}, perr
		}
		return Basic(b), nil
	}
	num, err := ParseBaseUnit(numText)
	if err != nil {
		return Unit{}, err
	}
	den, err := ParseBaseUnit(denText)
	if err != nil {
		return Unit{}, err
	}
	return Ratio(num, den), nil
}

// ParseAmountAndUnit parses the two halves of a split token.
func ParseAmountAndUnit(amountText, unitText string) (AmountAndUnit, error) {
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return AmountAndUnit{}, fmt.Errorf("%w: %q", ErrCouldNotParseAmount, amountText)
	}
	u, err := ParseUnit(unitText)
	if err != nil {
		return AmountAndUnit{}, err
	}
	return AmountAndUnit{Amount: amount, Unit: u}, nil
}

// ParseToken splits and parses one CLI token such as "147KiB".
func ParseToken(token string) (AmountAndUnit, error) {
	amountText, unitText, err := SplitAmountAndUnit(token)
	if err != nil {
		return AmountAndUnit{}, err
	}
	return ParseAmountAndUnit(amountText, unitText)
}
