package text

import "golang.org/x/text/unicode/bidi"

// DetectDirection returns the dominant direction of s: RTL when more runes
// sit in right-to-left bidi runs than in left-to-right ones.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return DirectionLTR
	}

	var ltr, rtl int
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		n := end - start + 1
		if run.Direction() == bidi.RightToLeft {
			rtl += n
		} else {
			ltr += n
		}
	}
	if rtl > ltr {
		return DirectionRTL
	}
	return DirectionLTR
}
