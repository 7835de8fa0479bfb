// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package record defines the fixed-layout message type pushed through the
// queue by the benchmark program.
package record

// Side is which side of the book an event belongs to.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

// OrderEvent is a trivially copyable order-book event: no pointers, slices,
// or maps, so a push is a plain struct copy into a cell.
type OrderEvent struct {
	Symbol         [8]byte // right-padded with zero bytes, not NUL-terminated
	Side           Side
	_              [7]byte // keeps Price 8-byte aligned
	Price          int64   // fixed-point, 1e-4 of quote currency
	Quantity       int64
	Sequence       uint64
	TimestampNanos int64
}

// NewOrderEvent builds an event, truncating symbol to 8 bytes if longer.
func NewOrderEvent(symbol string, side Side, price, quantity int64, sequence uint64, timestampNanos int64) OrderEvent {
	var ev OrderEvent
	copy(ev.Symbol[:], symbol)
	ev.Side = side
	ev.Price = price
	ev.Quantity = quantity
	ev.Sequence = sequence
	ev.TimestampNanos = timestampNanos
	return ev
}

// SymbolString returns the symbol with trailing zero bytes trimmed.
func (e OrderEvent) SymbolString() string {
	n := len(e.Symbol)
	for n > 0 && e.Symbol[n-1] == 0 {
		n--
	}
	return string(e.Symbol[:n])
}
