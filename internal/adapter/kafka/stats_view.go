package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"
	"github.com/paintmart/storefront/internal/core/port"
)

// A UnitsSoldView reads the units-sold group table without joining the
// processor group.
type UnitsSoldView struct {
	gv *goka.View
}

var _ port.UnitsSoldViewer = (*UnitsSoldView)(nil)

func NewUnitsSoldView(
	seedBrokers []string, groupTable string,
) (*UnitsSoldView, error) {
	const op = "NewUnitsSoldView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		unitsCountCodec{},
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &UnitsSoldView{gv}, nil
}

func (v *UnitsSoldView) Run(ctx context.Context) {
	const op = "UnitsSoldView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// UnitsSold returns the running total for a product. A product that has
// never sold yields zero.
func (v *UnitsSoldView) UnitsSold(productID int64) (int64, error) {
	const op = "UnitsSoldView.UnitsSold"

	key := strconv.FormatInt(productID, 10)
	val, err := v.gv.Get(key)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	n, ok := val.(unitsCount)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(n), nil
}
