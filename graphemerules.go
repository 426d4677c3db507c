package bstr

// The states of the grapheme cluster parser. The low byte holds one of these,
// the InCB tracking bits for GB9c live above it.
const (
	grAny = iota
	grCR
	grControlLF
	grL
	grLVV
	grLVTT
	grPrepend
	grExtendedPictographic
	grExtendedPictographicZWJ
	grRIOdd
	grRIEven
)

// GB9c InCB state tracking constants (stored in upper bits of state).
const (
	grInCBNone      = 0x0000 // No InCB tracking / InCB=None
	grInCBConsonant = 0x0100 // Seen InCB=Consonant
	grInCBExtend    = 0x0200 // Seen InCB=Consonant + [Extend]* (no Linker yet)
	grInCBLinker    = 0x0300 // Seen InCB=Consonant + [Extend|Linker]*Linker[Extend|Linker]*
	grInCBMask      = 0x0F00
)

// grStart returns the parser state after a cluster begins with a code point
// of the given property.
func grStart(prop int) int {
	switch prop {
	case prCR:
		return grCR
	case prLF, prControl:
		return grControlLF
	case prL:
		return grL
	case prV, prLV:
		return grLVV
	case prT, prLVT:
		return grLVTT
	case prPrepend:
		return grPrepend
	case prExtendedPictographic:
		return grExtendedPictographic
	case prRegionalIndicator:
		return grRIOdd
	}
	return grAny
}

// grTransition decides whether there is a boundary between the code points
// seen so far (summarised by state) and the next code point, whose grapheme
// property is prop. The InCB bits of state are ignored.
//
// The rules are those of UAX #29 revision 43 (Unicode 15.1.0, which added
// GB9c); property data comes from Go's unicode tables, Unicode 15.0.0.
func grTransition(state, prop int) (newState int, boundary bool) {
	switch {
	// GB3
	case state == grCR && prop == prLF:
		return grControlLF, false

	// GB4
	case state == grCR || state == grControlLF:
		return grStart(prop), true

	// GB5
	case prop == prCR || prop == prLF || prop == prControl:
		return grStart(prop), true

	// GB6
	case state == grL && (prop == prL || prop == prV || prop == prLV || prop == prLVT):
		return grStart(prop), false

	// GB7
	case state == grLVV && (prop == prV || prop == prT):
		return grStart(prop), false

	// GB8
	case state == grLVTT && prop == prT:
		return grLVTT, false

	// GB9, and the Extend* ZWJ part of GB11
	case prop == prExtend || prop == prZWJ:
		if state == grExtendedPictographic {
			if prop == prZWJ {
				return grExtendedPictographicZWJ, false
			}
			return grExtendedPictographic, false
		}
		return grAny, false

	// GB9a
	case prop == prSpacingMark:
		return grAny, false

	// GB9b
	case state == grPrepend:
		return grStart(prop), false

	// GB11
	case state == grExtendedPictographicZWJ && prop == prExtendedPictographic:
		return grExtendedPictographic, false

	// GB12 / GB13
	case state == grRIOdd && prop == prRegionalIndicator:
		return grRIEven, false
	}

	// GB999
	return grStart(prop), true
}

// grIncb advances the GB9c tracking bits for a code point with the given
// InCB property. It reports whether GB9c forbids a break before it.
func grIncb(incbState, incbProp int) (newIncb int, join bool) {
	switch incbProp {
	case prInCBConsonant:
		// Consonant [Extend|Linker]* Linker [Extend|Linker]* × Consonant
		return grInCBConsonant, incbState == grInCBLinker
	case prInCBLinker:
		if incbState != grInCBNone {
			return grInCBLinker, false
		}
	case prInCBExtend:
		switch incbState {
		case grInCBConsonant, grInCBExtend:
			return grInCBExtend, false
		case grInCBLinker:
			return grInCBLinker, false
		}
	}
	return grInCBNone, false
}

// transitionGraphemeState determines the new state of the grapheme cluster
// parser given the current state and the next code point. It also returns the
// code point's grapheme property and whether a cluster boundary was detected.
// A negative state starts a new cluster.
func transitionGraphemeState(state int, r rune) (newState, prop int, boundary bool) {
	prop = propertyGraphemes(r)
	incbProp := propertyInCB(r)

	if state < 0 {
		incb, _ := grIncb(grInCBNone, incbProp)
		return grStart(prop) | incb, prop, true
	}

	newState, boundary = grTransition(state&0xFF, prop)
	incb, join := grIncb(state&grInCBMask, incbProp)
	if join {
		boundary = false
	}
	return newState | incb, prop, boundary
}

// graphemeJoinsBackward evaluates the pairwise boundary rules between the
// last code point l of before and the code point r that follows it, looking
// further back into before where a rule needs more context. It does not
// handle GB12/GB13 parity, which depends on the whole run of RIs.
func graphemeJoinsBackward(before []byte, l rune, lprop int, r rune, rprop int) bool {
	switch {
	// GB3
	case lprop == prCR && rprop == prLF:
		return true

	// GB4, GB5
	case lprop == prCR || lprop == prLF || lprop == prControl,
		rprop == prCR || rprop == prLF || rprop == prControl:
		return false

	// GB6
	case lprop == prL && (rprop == prL || rprop == prV || rprop == prLV || rprop == prLVT):
		return true

	// GB7
	case (lprop == prLV || lprop == prV) && (rprop == prV || rprop == prT):
		return true

	// GB8
	case (lprop == prLVT || lprop == prT) && rprop == prT:
		return true

	// GB9, GB9a
	case rprop == prExtend || rprop == prZWJ || rprop == prSpacingMark:
		return true

	// GB9b
	case lprop == prPrepend:
		return true
	}

	// GB9c
	if propertyInCB(r) == prInCBConsonant {
		if incb := propertyInCB(l); (incb == prInCBLinker || incb == prInCBExtend) && conjunctBefore(before) {
			return true
		}
	}

	// GB11
	if lprop == prZWJ && rprop == prExtendedPictographic {
		return pictographicBefore(before[:len(before)-3])
	}

	return false
}

// conjunctBefore reports whether before ends with
// Consonant [Extend|Linker]* with at least one Linker after the Consonant.
func conjunctBefore(before []byte) bool {
	sawLinker := false
	for len(before) > 0 {
		r, size, status := decodeLastStep(before)
		if status != decodeOK {
			return false
		}
		switch propertyInCB(r) {
		case prInCBConsonant:
			return sawLinker
		case prInCBLinker:
			sawLinker = true
		case prInCBExtend:
		default:
			return false
		}
		before = before[:len(before)-size]
	}
	return false
}

// pictographicBefore reports whether before ends with ExtPict Extend*.
func pictographicBefore(before []byte) bool {
	for len(before) > 0 {
		r, size, status := decodeLastStep(before)
		if status != decodeOK {
			return false
		}
		switch propertyGraphemes(r) {
		case prExtendedPictographic:
			return true
		case prExtend:
		default:
			return false
		}
		before = before[:len(before)-size]
	}
	return false
}
