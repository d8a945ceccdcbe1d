package calc

// Expr  = Term { infixop Term } { '!' }   with precedence climbing
// Term  = num | name | name '(' Args ')' | '(' Expr ')' | ('+'|'-') Term | '√' Expr
// Args  = [ Expr { ',' Expr } ]

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. Names are not resolved: an unknown constant or
// function parses successfully and fails when the expression is evaluated.
func Parse(src string) (*Expr, error) {
	scan := lex(src)
	n, err := parseExpr(scan, minprec)
	if err != nil {
		return nil, err
	}
	// The whole input must form one expression.
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, &TrailingError{Col: tok.pos, Found: tok.text}
	}
	return &Expr{n: n}, nil
}

// String renders the parse tree with explicit grouping.
func (e *Expr) String() string {
	return e.n.String()
}

// parseExpr parses one primary term and then consumes infix and postfix
// operators binding at least as tightly as min. If there is no error,
// parseExpr pushes the last token it scans, including EOF, so callers decide
// what may legally follow.
func parseExpr(scan *lexer, min int8) (*node, error) {
	n, err := parsePrimary(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOp {
			// End of this subexpression; even a stray value token is the
			// caller's problem.
			scan.push(tok)
			return n, nil
		}
		if op := postop(tok.text); op.kind != nodeNone {
			if op.prec < min {
				scan.push(tok)
				return n, nil
			}
			n = &node{kind: op.kind, left: n}
			continue
		}
		op := binop(tok.text)
		if op.kind == nodeNone || op.prec < min {
			scan.push(tok)
			return n, nil
		}
		// Left-associative operators reclaim their own level, so the
		// recursion takes one level higher; right-associative take the same.
		next := op.prec
		if !op.right {
			next++
		}
		rhs, err := parseExpr(scan, next)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op.kind, left: n, right: rhs}
	}
}

// parsePrimary parses a single primary term: a literal, a constant
// reference, a call, a parenthesized subexpression, or a prefix operator
// application.
func parsePrimary(scan *lexer) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenIdent:
		nxt, err := scan.next()
		if err != nil {
			return nil, err
		}
		if nxt.kind == tokenLparen {
			return parseCall(scan, tok.text)
		}
		scan.push(nxt)
		return &node{kind: nodeConst, name: tok.text}, nil
	case tokenOp:
		op := unop(tok.text)
		if op.kind == nodeNone {
			return nil, &TokenError{Col: tok.pos, Expected: "value", Found: tok.text}
		}
		var operand *node
		if op.primary {
			// + and - bind a single primary term, so -2^2 is (-2)^2.
			operand, err = parsePrimary(scan)
		} else {
			operand, err = parseExpr(scan, op.prec)
		}
		if err != nil {
			return nil, err
		}
		return &node{kind: op.kind, left: operand}, nil
	case tokenLparen:
		n, err := parseExpr(scan, minprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		switch end.kind {
		case tokenRparen:
			return n, nil
		case tokenEOF:
			return nil, &ParenError{Col: end.pos}
		default:
			return nil, &TokenError{Col: end.pos, Expected: `")"`, Found: end.text}
		}
	case tokenEOF:
		return nil, &EOFError{Col: tok.pos}
	default: // tokenRparen, tokenComma
		return nil, &TokenError{Col: tok.pos, Expected: "value", Found: tok.text}
	}
}

// parseCall parses the arguments of a call to name. The opening parenthesis
// is already consumed. The argument count is validated by the evaluator, not
// here, so unknown-function and arity errors stay evaluation errors.
func parseCall(scan *lexer, name string) (*node, error) {
	n := &node{kind: nodeCall, name: name}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenRparen {
		return n, nil
	}
	scan.push(tok)
	for {
		arg, err := parseExpr(scan, minprec)
		if err != nil {
			return nil, err
		}
		n.args = append(n.args, arg)
		end := scan.must()
		switch end.kind {
		case tokenRparen:
			return n, nil
		case tokenComma:
			continue
		case tokenEOF:
			return nil, &ParenError{Col: end.pos}
		default:
			return nil, &TokenError{Col: end.pos, Expected: `"," or ")"`, Found: end.text}
		}
	}
}

// operator describes one fixity of an operator symbol: its precedence, its
// associativity, and the node kind it constructs. The same symbol may have
// different descriptors per fixity, like prefix and infix -.
type operator struct {
	// prec is the precedence level. Higher binds tighter.
	prec int8
	// right indicates right-associativity.
	right bool
	// primary marks a prefix operator that binds a single primary term
	// rather than an operand at its own precedence level.
	primary bool
	// kind is the node kind to use when this operator is selected.
	kind nodeKind
}

// minprec is the loosest precedence; a whole (sub)expression parses at this
// level.
const minprec int8 = 1

// binop gets the infix operator for a token string. If there is no such
// infix operator, then the result has a kind of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{prec: 1, kind: nodeAdd}
	case "-":
		return operator{prec: 1, kind: nodeSub}
	case "*":
		return operator{prec: 2, kind: nodeMul}
	case "/":
		return operator{prec: 2, kind: nodeDiv}
	case "%":
		return operator{prec: 2, kind: nodeMod}
	case "^":
		return operator{prec: 3, right: true, kind: nodePow}
	default:
		return operator{}
	}
}

// unop gets the prefix operator for a token string. If there is no such
// prefix operator, then the result has a kind of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{primary: true, kind: nodeNop}
	case "-":
		return operator{primary: true, kind: nodeNeg}
	case "√":
		return operator{prec: 1, right: true, kind: nodeSqrt}
	default:
		return operator{}
	}
}

// postop gets the postfix operator for a token string. If there is no such
// postfix operator, then the result has a kind of nodeNone.
func postop(text string) operator {
	switch text {
	case "!":
		return operator{prec: 4, kind: nodeFact}
	default:
		return operator{}
	}
}
