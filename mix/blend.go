package mix

// Returns the negative of the color: each channel becomes max - channel,
// and binary colors are flipped.
func Invert(c Color) Color {
	max := c.Format.MaxChannel()
	for i := 0; i < c.Format.Channels(); i++ {
		c.C[i] = max[i] - c.C[i]
	}
	return c
}

// Mixes two colors in screen blend mode within the start..end range:
// the distances of both colors to end are multiplied, which can only
// move the result away from start and towards end.
//
// For the binary format the result is end if any of the operands is
// end, and start otherwise.
func Screen(a, b, start, end Color) Color {
	if a.Format == Binary {
		if a == end || b == end { return end }
		return start
	}

	result := Color{ Format: a.Format }
	for i := 0; i < a.Format.Channels(); i++ {
		result.C[i] = screenChannel(a.C[i], b.C[i], start.C[i], end.C[i])
	}
	return result
}

// Mixes two colors by their weighted average. The weight of each color
// is how far it's from its own start towards its own end, so a and b
// may come from different colormaps. Equal weights or weights adding
// up to zero fall back to a plain average.
//
// For the binary format, when both ranges share the start color the
// result is end if a is end or b is otherEnd, and start otherwise. If
// the start colors differ, a is returned unchanged.
func WeightedAvg(a, b, start, end, otherStart, otherEnd Color) Color {
	if a.Format == Binary {
		if start == otherStart {
			if a == end || b == otherEnd { return end }
			return start
		}
		return a
	}

	result := Color{ Format: a.Format }
	for i := 0; i < a.Format.Channels(); i++ {
		result.C[i] = weightedAvgChannel(
			a.C[i], b.C[i], start.C[i], end.C[i], otherStart.C[i], otherEnd.C[i],
		)
	}
	return result
}

func screenChannel(first, second, start, end uint8) uint8 {
	const Shift = 15
	const Half int32 = 1 << (Shift - 1)

	if start == end { return start }

	diff := int32(end) - int32(start)
	firstDist  := int32(end) - int32(first)
	secondDist := int32(end) - int32(second)
	product := firstDist*((secondDist << Shift) + Half)
	minuend := (int32(end) << Shift) + Half
	result := minuend - product/diff
	return uint8(result >> Shift)
}

func weightedAvgChannel(first, second, firstStart, firstEnd, secondStart, secondEnd uint8) uint8 {
	const Shift = 15
	const Half int32 = 1 << (Shift - 1)

	firstWeight  := channelWeight(first, firstStart, firstEnd)
	secondWeight := channelWeight(second, secondStart, secondEnd)
	sumOfWeights := firstWeight + secondWeight

	var firstPart, secondPart int32
	if firstWeight == secondWeight || sumOfWeights == 0 {
		firstPart  = int32(first)  << (Shift - 1)
		secondPart = int32(second) << (Shift - 1)
	} else {
		firstWeight  = (firstWeight  << Shift)/sumOfWeights
		secondWeight = (secondWeight << Shift)/sumOfWeights
		firstPart  = firstWeight*int32(first)
		secondPart = secondWeight*int32(second)
	}
	return uint8((firstPart + secondPart + Half) >> Shift)
}

// Position of value within start..end in 14 bit fixed point.
func channelWeight(value, start, end uint8) int32 {
	const Shift = 15
	if start == end { return 0 }
	diff := int32(end) - int32(start)
	return ((int32(value) - int32(start)) << (Shift - 1))/diff
}
