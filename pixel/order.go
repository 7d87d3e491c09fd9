package pixel

import (
	"fmt"
	"strings"
)

// Order describes the order in which the color channels of a pixel are
// serialized on the wire. Different LED chips, and different production runs
// of the same chip, wire their channels differently.
//
// The zero value selects the default order of the chip being driven.
type Order uint8

// Three channel orders.
const (
	OrderRGB Order = 1 + iota
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

// Four channel orders.
const (
	OrderRGBW Order = 7 + iota
	OrderRGWB
	OrderRBGW
	OrderRBWG
	OrderRWGB
	OrderRWBG
	OrderGRBW
	OrderGRWB
	OrderGBRW
	OrderGBWR
	OrderGWRB
	OrderGWBR
	OrderBRGW
	OrderBRWG
	OrderBGRW
	OrderBGWR
	OrderBWRG
	OrderBWGR
	OrderWRGB
	OrderWRBG
	OrderWGRB
	OrderWGBR
	OrderWBRG
	OrderWBGR
)

var orderNames = [...]string{
	"",
	"RGB", "RBG", "GRB", "GBR", "BRG", "BGR",
	"RGBW", "RGWB", "RBGW", "RBWG", "RWGB", "RWBG",
	"GRBW", "GRWB", "GBRW", "GBWR", "GWRB", "GWBR",
	"BRGW", "BRWG", "BGRW", "BGWR", "BWRG", "BWGR",
	"WRGB", "WRBG", "WGRB", "WGBR", "WBRG", "WBGR",
}

// orderIndex maps each order to the canonical RGBW channel index serialized
// at each wire position. It is derived from the order names, so the name is
// the single source of truth for the permutation.
var orderIndex [len(orderNames)][4]uint8

func init() {
	for o, name := range orderNames {
		for i := range name {
			orderIndex[o][i] = uint8(strings.IndexByte("RGBW", name[i]))
		}
	}
}

// Channels returns the number of channels the order serializes, or 0 for the
// zero value and invalid orders.
func (o Order) Channels() int {
	switch {
	case o >= OrderRGB && o <= OrderBGR:
		return 3
	case o >= OrderRGBW && o <= OrderWBGR:
		return 4
	}
	return 0
}

func (o Order) String() string {
	switch {
	case o == 0:
		return "default"
	case int(o) < len(orderNames):
		return orderNames[o]
	}
	return "invalid"
}

// Reorder3 serializes three channel values in this order.
func (o Order) Reorder3(r, g, b uint8) [3]uint8 {
	src := [4]uint8{r, g, b}
	idx := &orderIndex[o]
	return [3]uint8{src[idx[0]], src[idx[1]], src[idx[2]]}
}

// Reorder4 serializes four channel values in this order.
func (o Order) Reorder4(r, g, b, w uint8) [4]uint8 {
	src := [4]uint8{r, g, b, w}
	idx := &orderIndex[o]
	return [4]uint8{src[idx[0]], src[idx[1]], src[idx[2]], src[idx[3]]}
}

// ParseOrder parses a channel order name such as "GRB" or "WRGB". Parsing is
// not case sensitive.
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if o > 0 && strings.EqualFold(s, name) {
			return Order(o), nil
		}
	}
	return 0, fmt.Errorf("pixel: unknown channel order %q", s)
}
