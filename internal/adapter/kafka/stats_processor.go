package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/paintmart/storefront/pkg/schema"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A saleEventCodec used for serde [schema.SaleRecordedV1]
type saleEventCodec struct {
	serde Serde
}

func newSaleEventCodec(s Serde) saleEventCodec {
	return saleEventCodec{s}
}

func (c saleEventCodec) Encode(v any) ([]byte, error) {
	const op = "saleEventCodec.Encode"
	if _, ok := v.(schema.SaleRecordedV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c saleEventCodec) Decode(data []byte) (any, error) {
	const op = "saleEventCodec.Decode"
	var s schema.SaleRecordedV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A unitsCount is a running total of units sold for one product.
type unitsCount int64

// A unitsCountCodec used for serde [unitsCount]
type unitsCountCodec struct{}

func (unitsCountCodec) Encode(v any) ([]byte, error) {
	const op = "unitsCountCodec.Encode"
	n, ok := v.(unitsCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(n), 10)
	return data, nil
}

func (unitsCountCodec) Decode(data []byte) (any, error) {
	const op = "unitsCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return unitsCount(n), nil
}

// A UnitsSoldProcessor folds sale events into a per-product
// units-sold group table. Sale records are keyed by sale id, so each
// item is re-keyed by product id through the loopback stream before
// it reaches the table.
type UnitsSoldProcessor struct {
	opPrefix string
	proc     processor
}

func NewUnitsSoldProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	saleSerde Serde,
) (*UnitsSoldProcessor, error) {
	const op = "NewUnitsSoldProc"

	var p UnitsSoldProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newSaleEventCodec(saleSerde),
			p.processFn,
		),
		goka.Loop(unitsCountCodec{}, p.loopFn),
		goka.Persist(unitsCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.opPrefix = "UnitsSoldProcessor"
	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}

	return &p, nil
}

func (p *UnitsSoldProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *UnitsSoldProcessor) Close() {
	p.proc.close()
}

func (p *UnitsSoldProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.SaleRecordedV1)
	for _, item := range event.Items {
		key := strconv.FormatInt(item.ProductID, 10)
		ctx.Loopback(key, unitsCount(item.Quantity))
	}
	log.Info(
		"sale folded into stats",
		"saleID", event.SaleID,
		"items", len(event.Items),
	)
}

func (p *UnitsSoldProcessor) loopFn(ctx goka.Context, msg any) {
	inc, _ := msg.(unitsCount)

	var total unitsCount
	if v := ctx.Value(); v != nil {
		total, _ = v.(unitsCount)
	}
	ctx.SetValue(total + inc)
}
