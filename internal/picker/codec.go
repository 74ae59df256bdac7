package picker

import "strings"

// Encode returns the wire value of s.
//
//	calendar       2024-03-05,2024-03-10
//	calendar+time  2024-03-05T09:30
//	time           09:30 or 09:30,17:00 for ranges
func Encode(s State) string {
	b := s.Mode.Behavior()
	switch b.Kind {
	case KindTime:
		if b.SelectType == SelectRange {
			return s.Time1.String() + "," + s.Time2.String()
		}
		return s.Time1.String()
	case KindCalendarTime:
		parts := make([]string, len(s.Selection))
		for i, k := range s.Selection {
			t := s.Time1
			if i > 0 {
				t = s.Time2
			}
			parts[i] = string(k) + "T" + t.String()
		}
		return strings.Join(parts, ",")
	}

	parts := make([]string, len(s.Selection))
	for i, k := range s.Selection {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

// Decode replaces the selection and both times of s with the values in v.
// Tokens that are malformed or of another unit are dropped. Single modes
// keep the first valid key and range modes the two smallest.
func Decode(s State, v string) State {
	b := s.Mode.Behavior()
	s.Selection = nil
	s.Time1, s.Time2 = TimeValue{}, TimeValue{}

	var tokens []string
	for _, tok := range strings.Split(v, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}

	if b.Kind == KindTime {
		times := make([]TimeValue, 0, 2)
		for _, tok := range tokens {
			if t, ok := ParseTimeValue(tok); ok {
				times = append(times, t)
			}
		}
		if len(times) > 0 {
			s.Time1 = times[0]
		}
		if len(times) > 1 && b.SelectType == SelectRange {
			s.Time2 = times[1]
		}
		return s
	}

	var keys []Key
	timeOf := make(map[Key]TimeValue)
	for _, tok := range tokens {
		keyPart, timePart := tok, ""
		if b.Kind == KindCalendarTime {
			if i := strings.IndexByte(tok, 'T'); i >= 0 {
				keyPart, timePart = tok[:i], tok[i+1:]
			}
		}
		p, ok := ParseKey(keyPart)
		if !ok || p.Unit != b.Unit {
			continue
		}
		k := p.Key()
		if _, seen := timeOf[k]; !seen {
			keys = append(keys, k)
		}
		t, _ := ParseTimeValue(timePart)
		timeOf[k] = t
	}

	switch b.SelectType {
	case SelectSingle:
		if len(keys) > 1 {
			keys = keys[:1]
		}
		s.Selection = NewSelection(keys...)
	case SelectRange:
		s.Selection = NewSelection(keys...)
		if len(s.Selection) > 2 {
			s.Selection = s.Selection[:2]
		}
	default:
		s.Selection = NewSelection(keys...)
	}

	if b.Kind == KindCalendarTime {
		if len(s.Selection) > 0 {
			s.Time1 = timeOf[s.Selection[0]]
		}
		if len(s.Selection) > 1 {
			s.Time2 = timeOf[s.Selection[1]]
		}
	}
	return s
}
