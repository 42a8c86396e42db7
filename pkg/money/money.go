package money

import "github.com/shopspring/decimal"

// Places is the precision of every stored amount.
const Places = 2

var basisPointsDivisor = decimal.NewFromInt(10000)

// Round rounds an amount to currency precision.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Fee returns the platform fee for amount at the given basis-point rate.
func Fee(amount decimal.Decimal, basisPoints int64) decimal.Decimal {
	return Round(amount.Mul(decimal.NewFromInt(basisPoints)).Div(basisPointsDivisor))
}

// WithFee returns amount plus its platform fee.
func WithFee(amount decimal.Decimal, basisPoints int64) (total, fee decimal.Decimal) {
	fee = Fee(amount, basisPoints)
	return Round(amount.Add(fee)), fee
}

// Cents converts an amount to the smallest currency unit.
func Cents(d decimal.Decimal) int64 {
	return Round(d).Shift(Places).IntPart()
}

// FromCents converts the smallest currency unit back to an amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Places)
}
