package pixel

import "testing"

func TestOrderChannels(t *testing.T) {
	if got := Order(0).Channels(); got != 0 {
		t.Errorf("expected the zero order to have 0 channels, got %d", got)
	}
	if got := Order(len(orderNames)).Channels(); got != 0 {
		t.Errorf("expected an invalid order to have 0 channels, got %d", got)
	}
	for o := OrderRGB; o <= OrderBGR; o++ {
		if got := o.Channels(); got != 3 {
			t.Errorf("expected %s to have 3 channels, got %d", o, got)
		}
	}
	for o := OrderRGBW; o <= OrderWBGR; o++ {
		if got := o.Channels(); got != 4 {
			t.Errorf("expected %s to have 4 channels, got %d", o, got)
		}
	}
}

func TestOrderString(t *testing.T) {
	testCases := []struct {
		order Order
		want  string
	}{
		{0, "default"},
		{OrderRGB, "RGB"},
		{OrderGRB, "GRB"},
		{OrderBGR, "BGR"},
		{OrderRBGW, "RBGW"},
		{OrderWBGR, "WBGR"},
		{Order(200), "invalid"},
	}
	for _, test := range testCases {
		if got := test.order.String(); got != test.want {
			t.Errorf("expected order %d to be %q, got %q", test.order, test.want, got)
		}
	}
}

func TestParseOrder(t *testing.T) {
	for o := OrderRGB; o <= OrderWBGR; o++ {
		got, err := ParseOrder(o.String())
		if err != nil {
			t.Errorf("expected %s to parse, got %v", o, err)
		} else if got != o {
			t.Errorf("expected %s to parse to %d, got %d", o, o, got)
		}
	}

	if got, err := ParseOrder("grb"); err != nil || got != OrderGRB {
		t.Errorf("expected lower case names to parse, got %d (%v)", got, err)
	}

	if _, err := ParseOrder("RGBA"); err == nil {
		t.Error("expected an error for an unknown order")
	}
}

func TestReorder3(t *testing.T) {
	testCases := []struct {
		order Order
		want  [3]uint8
	}{
		{OrderRGB, [3]uint8{1, 2, 3}},
		{OrderRBG, [3]uint8{1, 3, 2}},
		{OrderGRB, [3]uint8{2, 1, 3}},
		{OrderGBR, [3]uint8{2, 3, 1}},
		{OrderBRG, [3]uint8{3, 1, 2}},
		{OrderBGR, [3]uint8{3, 2, 1}},
	}
	for _, test := range testCases {
		if got := test.order.Reorder3(1, 2, 3); got != test.want {
			t.Errorf("expected %s to serialize as %v, got %v", test.order, test.want, got)
		}
	}
}

func TestReorder4(t *testing.T) {
	testCases := []struct {
		order Order
		want  [4]uint8
	}{
		{OrderRGBW, [4]uint8{1, 2, 3, 4}},
		{OrderRBGW, [4]uint8{1, 3, 2, 4}},
		{OrderRBWG, [4]uint8{1, 3, 4, 2}},
		{OrderGRBW, [4]uint8{2, 1, 3, 4}},
		{OrderGBWR, [4]uint8{2, 3, 4, 1}},
		{OrderBGWR, [4]uint8{3, 2, 4, 1}},
		{OrderWRGB, [4]uint8{4, 1, 2, 3}},
		{OrderWBGR, [4]uint8{4, 3, 2, 1}},
	}
	for _, test := range testCases {
		if got := test.order.Reorder4(1, 2, 3, 4); got != test.want {
			t.Errorf("expected %s to serialize as %v, got %v", test.order, test.want, got)
		}
	}
}

// Every order must place each channel exactly once.
func TestOrderBijection(t *testing.T) {
	for o := OrderRGB; o <= OrderBGR; o++ {
		var seen [4]int
		for _, v := range o.Reorder3(0, 1, 2) {
			seen[v]++
		}
		for v := 0; v < 3; v++ {
			if seen[v] != 1 {
				t.Errorf("expected %s to place channel %d once, got %d times", o, v, seen[v])
			}
		}
	}
	for o := OrderRGBW; o <= OrderWBGR; o++ {
		var seen [4]int
		for _, v := range o.Reorder4(0, 1, 2, 3) {
			seen[v]++
		}
		for v := 0; v < 4; v++ {
			if seen[v] != 1 {
				t.Errorf("expected %s to place channel %d once, got %d times", o, v, seen[v])
			}
		}
	}
}
