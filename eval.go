package exact

// Eval evaluates the expression with a context and returns the result. It
// may mutate the context: assignments rebind variables and function
// definitions write the function table. Evaluation is fail-fast; the first
// error aborts the rest of the walk and no partial result is produced.
func (e *Expr) Eval(ctx *Context) (*Number, error) {
	return evalNode(e.n, ctx)
}

// Evaluate is a shortcut to parse an expression and evaluate it with ctx.
func Evaluate(src string, ctx *Context) (*Number, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(ctx)
}

// evalNode evaluates a subtree. Chains of binary operations are not
// evaluated by recursing into the left operand: the walk first descends the
// left spine iteratively, collecting (operator, right operand) pairs on an
// explicit work list, until it reaches a non-binary leftmost node. The leaf
// evaluates first, then the list unwinds from the most recently collected
// pair outward, applying each operator against the running result. That is
// ordinary left-to-right order, but a chain of thousands of terms costs
// constant call-stack depth. Right operands and every other construct
// (parentheses, arguments, the right side of ^) evaluate by plain recursion,
// so deeply nested forms can still exhaust the stack; only the
// left-associative chain path is hardened.
func evalNode(n *node, ctx *Context) (*Number, error) {
	type pending struct {
		kind nodeKind
		rhs  *node
	}
	var spine []pending
	for binaryOp(n.kind) {
		spine = append(spine, pending{n.kind, n.right})
		n = n.left
	}
	result, err := evalLeaf(n, ctx)
	if err != nil {
		return nil, err
	}
	for i := len(spine) - 1; i >= 0; i-- {
		rhs, err := evalNode(spine[i].rhs, ctx)
		if err != nil {
			return nil, err
		}
		switch spine[i].kind {
		case nodeAdd:
			result = result.Add(rhs)
		case nodeSub:
			result = result.Sub(rhs)
		case nodeMul:
			result = result.Mul(rhs)
		case nodeDiv:
			result = result.Div(rhs)
		case nodeMod:
			result = result.Mod(rhs)
		default:
			result = result.Pow(rhs)
		}
	}
	return result, nil
}

// evalLeaf evaluates a non-binary node.
func evalLeaf(n *node, ctx *Context) (*Number, error) {
	switch n.kind {
	case nodeNum:
		// Literals are immutable and shared, never copied.
		return n.num, nil
	case nodeName:
		v, ok := ctx.Lookup(n.name)
		if !ok {
			return nil, &UndefinedVariableError{Name: n.name}
		}
		return v, nil
	case nodeAssign:
		v, err := evalNode(n.left, ctx)
		if err != nil {
			return nil, err
		}
		ctx.Set(n.name, v)
		return v, nil
	case nodeFuncDef:
		// Definition happens now, lookup at call time, so the body may
		// call the function recursively.
		ctx.funcs[n.name] = userFunc{params: n.params, body: n.left}
		return NewInt64(0), nil
	case nodeNeg:
		v, err := evalNode(n.left, ctx)
		if err != nil {
			return nil, err
		}
		return v.Neg(), nil
	case nodeFact:
		v, err := evalNode(n.left, ctx)
		if err != nil {
			return nil, err
		}
		return v.Factorial()
	case nodeCall:
		return evalCall(n, ctx)
	default:
		panic("exact: invalid AST node " + n.kind.String())
	}
}

// evalCall applies a user-defined function or a library primitive.
func evalCall(n *node, ctx *Context) (*Number, error) {
	// Arguments evaluate left to right in the caller's scope chain, before
	// any new scope exists.
	args := make([]*Number, len(n.args))
	for i, a := range n.args {
		v, err := evalNode(a, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if fn, ok := ctx.funcs[n.name]; ok {
		if len(args) != len(fn.params) {
			return nil, &ArityError{Func: n.name, Want: len(fn.params)}
		}
		ctx.pushScope()
		for i, p := range fn.params {
			ctx.define(p, args[i])
		}
		v, err := evalNode(fn.body, ctx)
		// The scope pops whether or not the body failed, so an error
		// cannot leak a scope.
		ctx.popScope()
		return v, err
	}
	if f := ctx.library[n.name]; f != nil {
		return f(args)
	}
	return nil, &UnknownFunctionError{Name: n.name}
}
