package stock

import (
	"fmt"
	"time"

	"github.com/erazemk/fastenerlib/internal/model"
)

// Direction of a stock movement.
type Direction string

// Directions.
const (
	Withdraw Direction = "withdraw"
	Return   Direction = "return"
)

// ParseDirection accepts the direction names and the fill/plus/minus aliases
// used by the audit actions.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "withdraw", "minus":
		return Withdraw, nil
	case "return", "fill", "plus":
		return Return, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Movement is the outcome of a successful Apply.
type Movement struct {
	Item model.Item
	// Change is the signed piece delta, negative for withdrawals.
	Change int
}

// Apply moves pieces pieces in direction dir and stamps provenance. The
// input item is not modified.
func Apply(it model.Item, pieces int, dir Direction, user string, now time.Time) (Movement, error) {
	if pieces <= 0 {
		return Movement{}, ErrAmountNotPositive
	}

	change := pieces
	switch dir {
	case Withdraw:
		if pieces > it.Qty {
			return Movement{}, &InsufficientStockError{Article: it.Article, Requested: pieces, Available: it.Qty}
		}
		change = -pieces
	case Return:
	default:
		return Movement{}, fmt.Errorf("unknown direction %q", dir)
	}

	it.Qty += change
	it.UpdatedBy = user
	it.UpdatedAt = now
	return Movement{Item: it, Change: change}, nil
}

// Record builds the audit entry describing m.
func (m Movement) Record(unit model.Unit, inputAmount int) model.ChangeRecord {
	action := model.ActionManagePlus
	if m.Change < 0 {
		action = model.ActionManageMinus
	}
	qty := m.Item.Qty
	return model.ChangeRecord{
		Action:      action,
		Article:     m.Item.Article,
		User:        m.Item.UpdatedBy,
		Timestamp:   m.Item.UpdatedAt,
		Delta:       m.Change,
		Unit:        unit,
		InputAmount: inputAmount,
		Qty:         &qty,
	}
}
