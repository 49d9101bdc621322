package props

import "github.com/npillmayer/inlinestyle/dom/style"

// parseFourSides expands a shorthand like
//
//     margin: 1 2
//
// into its longhands margin-top, margin-right, margin-bottom and margin-left.
// Each value is validated with the syntax of the longhand it lands on.
// Keyword values are carried by the property constant alone; other values
// keep a copy of their term.
func parseFourSides(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	fields := make([]style.Term, d.Len())
	for i := range fields {
		fields[i] = d.Term(i)
		if i > 0 && fields[i].Operator() != style.OpSpace {
			return false
		}
	}
	sides, ok := distribute4(fields)
	if !ok || len(def.Expands) != 4 {
		return false
	}
	var staged [4]Property
	for i, name := range def.Expands {
		ld, found := c.Definition(name)
		if !found {
			return false
		}
		if staged[i], ok = ld.single(sides[i]); !ok {
			tracer().Debugf("%s: value %s not valid for %s", def.Name, sides[i], name)
			return false
		}
	}
	for i, name := range def.Expands {
		out.Set(name, staged[i], expansionTerm(staged[i], sides[i]))
	}
	return true
}

// distribute4 spreads 1 to 4 values over four sides the CSS way: one value
// applies to all sides, two values to top/bottom and right/left, three
// values to top, right/left and bottom.
// See e.g. https://www.w3schools.com/css/css_border.asp
func distribute4[T any](fields []T) ([4]T, bool) {
	var r [4]T
	l := len(fields)
	if l == 0 || l > 4 {
		return r, false
	}
	r[0] = fields[0]
	if l >= 2 {
		r[1] = fields[1]
		if l >= 3 {
			r[2] = fields[2]
			if l == 4 {
				r[3] = fields[3]
			} else {
				r[3] = fields[1]
			}
		} else {
			r[2] = fields[0]
			r[3] = fields[1]
		}
	} else {
		r[1] = fields[0]
		r[2] = fields[0]
		r[3] = fields[0]
	}
	return r, true
}
