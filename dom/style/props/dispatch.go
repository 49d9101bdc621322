package props

import "github.com/npillmayer/inlinestyle/dom/style"

// ContentTermParser is an optional capability of a dialect: it gets a chance
// to accept content items the standard syntax does not know, e.g. dialect
// specific functions. On acceptance it appends the (possibly transformed)
// term to owner and returns true. It must not modify term.
type ContentTermParser interface {
	ParseContentTerm(term style.Term, owner *style.List) bool
}

// parseFunc parses a declaration for a definition of a given syntax into out.
// Generic values 'inherit' and 'initial' have been handled by the caller.
type parseFunc func(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool

// dispatch maps every syntax to its parse function.
var dispatch = [syntaxCount]parseFunc{
	SyntaxKeyword:   parseSingle,
	SyntaxInteger:   parseSingle,
	SyntaxColor:     parseSingle,
	SyntaxIdentList: parseIdentList,
	SyntaxContent:   parseContent,
	SyntaxCounter:   parseCounter,
	SyntaxStringSet: parseStringSet,
	SyntaxListStyle: parseListStyle,
	SyntaxFourSides: parseFourSides,
}

func parseSingle(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if d.Len() != 1 {
		return false
	}
	p, ok := def.single(d.Term(0))
	if !ok {
		return false
	}
	out.Set(def.Name, p, d.Term(0).Clone())
	return true
}

// soleKeyword checks if d consists of one of def's keywords only.
func soleKeyword(def *Definition, d style.ValueList) (Property, bool) {
	if d.Len() != 1 {
		return Property{}, false
	}
	if id, ok := d.Term(0).(*style.Ident); ok && def.hasKeyword(id.Value()) {
		return Keyword(id.Value()), true
	}
	return Property{}, false
}

func parseIdentList(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if p, ok := soleKeyword(def, d); ok {
		out.Set(def.Name, p, d.Term(0).Clone())
		return true
	}
	list := style.NewList()
	for i := 0; i < d.Len(); i++ {
		id, ok := d.Term(i).(*style.Ident)
		if !ok || def.hasKeyword(id.Value()) || (i > 0 && id.Operator() != style.OpSpace) {
			return false
		}
		list.Append(id.Clone())
	}
	out.Set(def.Name, Property{Kind: KindList}, list)
	return true
}

func parseContent(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if p, ok := soleKeyword(def, d); ok {
		out.Set(def.Name, p, d.Term(0).Clone())
		return true
	}
	list := style.NewList()
	for i := 0; i < d.Len(); i++ {
		if i > 0 && d.Term(i).Operator() != style.OpSpace {
			return false
		}
		if !contentItem(d.Term(i), list, content) {
			return false
		}
	}
	out.Set(def.Name, Property{Kind: KindList}, list)
	return true
}

// contentItem appends a valid content item to list. Items the standard does
// not know are offered to the content term parser, if any.
func contentItem(t style.Term, list *style.List, content ContentTermParser) bool {
	switch v := t.(type) {
	case *style.Quoted:
		list.Append(v.Clone())
		return true
	case *style.Function:
		if isStandardContentFunction(v) {
			list.Append(v.Clone())
			return true
		}
	}
	if content != nil && content.ParseContentTerm(t, list) {
		return true
	}
	tracer().Debugf("content item %s not recognized", t)
	return false
}

func isStandardContentFunction(f *style.Function) bool {
	isIdent := func(i int) bool {
		_, ok := f.Arg(i).(*style.Ident)
		return ok
	}
	switch f.Name() {
	case "attr":
		return f.Len() == 1 && isIdent(0)
	case "counter":
		return (f.Len() == 1 || f.Len() == 2) && isIdent(0) && (f.Len() == 1 || isIdent(1))
	case "counters":
		if f.Len() != 2 && f.Len() != 3 {
			return false
		}
		_, sep := f.Arg(1).(*style.Quoted)
		return isIdent(0) && sep && (f.Len() == 2 || isIdent(2))
	case "string":
		return (f.Len() == 1 || f.Len() == 2) && isIdent(0) && (f.Len() == 1 || isIdent(1))
	}
	return false
}

func parseCounter(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if p, ok := soleKeyword(def, d); ok {
		out.Set(def.Name, p, d.Term(0).Clone())
		return true
	}
	list := style.NewList()
	for i := 0; i < d.Len(); i++ {
		id, ok := d.Term(i).(*style.Ident)
		if !ok || def.hasKeyword(id.Value()) || (i > 0 && id.Operator() != style.OpSpace) {
			return false
		}
		list.Append(id.Clone())
		if n, ok := d.Term(i + 1).(*style.Integer); ok {
			if n.Operator() != style.OpSpace {
				return false
			}
			list.Append(n.Clone())
			i++
		}
	}
	out.Set(def.Name, Property{Kind: KindList}, list)
	return true
}

func parseStringSet(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if p, ok := soleKeyword(def, d); ok {
		out.Set(def.Name, p, d.Term(0).Clone())
		return true
	}
	list := style.NewList()
	items := 0
	for i := 0; i < d.Len(); i++ {
		t := d.Term(i)
		if i == 0 || t.Operator() == style.OpComma {
			if i > 0 && items == 0 {
				return false
			}
			id, ok := t.(*style.Ident)
			if !ok || def.hasKeyword(id.Value()) {
				return false
			}
			list.Append(id.Clone())
			items = 0
			continue
		}
		if !contentItem(t, list, content) {
			return false
		}
		items++
	}
	if items == 0 {
		return false
	}
	out.Set(def.Name, Property{Kind: KindList}, list)
	return true
}

func parseListStyle(c *Catalog, def *Definition, d style.ValueList, out Assignment,
	content ContentTermParser) bool {
	//
	if d.Len() != 1 {
		return false
	}
	var p Property
	switch v := d.Term(0).(type) {
	case *style.Ident:
		if !def.hasKeyword(v.Value()) {
			return false
		}
		p = Keyword(v.Value())
	case *style.Quoted:
		p = Property{Kind: KindString}
	case *style.Function:
		if v.Name() != "symbols" || v.Len() == 0 {
			return false
		}
		p = Property{Kind: KindFunction}
	default:
		return false
	}
	out.Set(def.Name, p, d.Term(0).Clone())
	return true
}
