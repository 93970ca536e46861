package stock

import "github.com/erazemk/fastenerlib/internal/model"

// OrderRequest asks for packs and small packs of one item.
type OrderRequest struct {
	Item       model.Item
	PackCount  int
	SmallCount int
}

// OrderLine is one validated line of a restock order.
type OrderLine struct {
	Article    string `json:"article"`
	BN         string `json:"bn"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	CurrentQty int    `json:"current_qty"`
	PackSize   int    `json:"pack_size"`
	SmallPack  int    `json:"small_pack"`
	PackCount  int    `json:"pack_count"`
	SmallCount int    `json:"small_count"`
	TotalQty   int    `json:"total_qty"`
}

// BuildOrder validates requests and returns one line per request that asks
// for anything. Negative counts count as zero. The order is all-or-nothing:
// a single line below one pack fails the whole build.
func BuildOrder(reqs []OrderRequest) ([]OrderLine, error) {
	var lines []OrderLine
	for _, r := range reqs {
		packs, smalls := max(r.PackCount, 0), max(r.SmallCount, 0)
		if packs == 0 && smalls == 0 {
			continue
		}

		sizes := ResolveSizes(r.Item)
		total := packs*sizes.Pack + smalls*sizes.Small
		if total > 0 && total < sizes.Pack {
			return nil, &BelowMinimumError{Article: r.Item.Article, Total: total, PackSize: sizes.Pack}
		}

		lines = append(lines, OrderLine{
			Article:    r.Item.Article,
			BN:         r.Item.BN,
			Name:       r.Item.Name,
			Location:   r.Item.Location,
			CurrentQty: r.Item.Qty,
			PackSize:   sizes.Pack,
			SmallPack:  sizes.Small,
			PackCount:  packs,
			SmallCount: smalls,
			TotalQty:   total,
		})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	return lines, nil
}
