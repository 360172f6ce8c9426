// Package types provides common value types used across the ledger.
package types

import (
	"fmt"
	"math/big"
)

// Amount represents a tip amount in wei-style base units.
// It wraps an arbitrary-precision integer so that tip sizes carry no upper
// bound. All arithmetic is integer-only — no floating point.
//
// Amount values are immutable: every operation returns a fresh value and
// never mutates its receiver or operands. The zero value is a usable zero
// amount.
type Amount struct {
	n *big.Int
}

// NewAmount creates an Amount from an int64 value.
func NewAmount(v int64) Amount {
	return Amount{n: big.NewInt(v)}
}

// NewAmountFromBig creates an Amount from a big.Int. The input is copied.
func NewAmountFromBig(v *big.Int) Amount {
	if v == nil {
		return Amount{}
	}
	return Amount{n: new(big.Int).Set(v)}
}

// ParseAmount parses a base-10 integer string into an Amount.
func ParseAmount(s string) (Amount, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("types: parse amount %q: not a base-10 integer", s)
	}
	return Amount{n: n}, nil
}

// ZeroAmount returns a zero Amount.
func ZeroAmount() Amount { return Amount{} }

// value returns the backing integer, treating a nil backing pointer as zero.
func (a Amount) value() *big.Int {
	if a.n == nil {
		return new(big.Int)
	}
	return a.n
}

// Arithmetic operations

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{n: new(big.Int).Add(a.value(), b.value())}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{n: new(big.Int).Sub(a.value(), b.value())}
}

// Mul returns a * b.
func (a Amount) Mul(b Amount) Amount {
	return Amount{n: new(big.Int).Mul(a.value(), b.value())}
}

// Div returns a / b using truncating integer division. Panics on division
// by zero.
func (a Amount) Div(b Amount) Amount {
	if b.IsZero() {
		panic("types: amount division by zero")
	}
	return Amount{n: new(big.Int).Quo(a.value(), b.value())}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{n: new(big.Int).Neg(a.value())}
}

// Comparison methods

// Cmp compares a and b, returning -1, 0, or +1.
func (a Amount) Cmp(b Amount) int { return a.value().Cmp(b.value()) }

// Sign returns -1, 0, or +1 depending on the sign of the amount.
func (a Amount) Sign() int { return a.value().Sign() }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.value().Sign() == 0 }

// IsPositive reports whether the amount is greater than zero.
func (a Amount) IsPositive() bool { return a.value().Sign() > 0 }

// IsNegative reports whether the amount is less than zero.
func (a Amount) IsNegative() bool { return a.value().Sign() < 0 }

// Equal reports whether two amounts are numerically equal.
func (a Amount) Equal(b Amount) bool { return a.Cmp(b) == 0 }

// LessThan reports whether a < b.
func (a Amount) LessThan(b Amount) bool { return a.Cmp(b) < 0 }

// GreaterThan reports whether a > b.
func (a Amount) GreaterThan(b Amount) bool { return a.Cmp(b) > 0 }

// Conversions

// BigInt returns a copy of the backing integer.
func (a Amount) BigInt() *big.Int { return new(big.Int).Set(a.value()) }

// Int64 returns the amount as an int64 and whether it fits without
// truncation.
func (a Amount) Int64() (int64, bool) {
	v := a.value()
	return v.Int64(), v.IsInt64()
}

// String returns the base-10 decimal representation.
func (a Amount) String() string { return a.value().String() }

// MarshalText implements encoding.TextMarshaler. Amounts serialize as
// base-10 strings since they may exceed any fixed-width numeric type.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SumAmounts calculates the sum of multiple amounts.
func SumAmounts(values ...Amount) Amount {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v.value())
	}
	return Amount{n: total}
}

// SplitFee splits amount into a fee share and an author share. The fee is
// feeBPS basis points of the amount with truncating division over a 10000
// denominator; the author share is the remainder.
func SplitFee(amount Amount, feeBPS int64) (fee, toAuthor Amount) {
	fee = amount.Mul(NewAmount(feeBPS)).Div(NewAmount(10000))
	toAuthor = amount.Sub(fee)
	return fee, toAuthor
}
