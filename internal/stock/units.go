// Package stock converts operator amounts to pieces, applies stock
// movements and validates restock orders.
package stock

import (
	"fmt"

	"github.com/erazemk/fastenerlib/internal/model"
)

// Sizes are an item's resolved unit sizes in pieces. Both are always positive.
type Sizes struct {
	Pack  int
	Small int
}

// ResolveSizes applies the fallback chain small pack -> pack -> 1.
func ResolveSizes(it model.Item) Sizes {
	s := Sizes{Pack: 1}
	if it.PackSize > 0 {
		s.Pack = it.PackSize
	}
	s.Small = s.Pack
	if it.SmallPack > 0 {
		s.Small = it.SmallPack
	}
	return s
}

// Of returns the number of pieces in one unit.
func (s Sizes) Of(u model.Unit) int {
	switch u {
	case model.UnitPack:
		return s.Pack
	case model.UnitSmall:
		return s.Small
	}
	return 1
}

// ParseUnit validates a unit name. An empty string means pieces.
func ParseUnit(s string) (model.Unit, error) {
	switch u := model.Unit(s); u {
	case "":
		return model.UnitPiece, nil
	case model.UnitPiece, model.UnitPack, model.UnitSmall:
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// ToPieces converts amount of unit into pieces. Callers clamp negative
// amounts to zero first.
func ToPieces(it model.Item, amount int, u model.Unit) int {
	return amount * ResolveSizes(it).Of(u)
}
