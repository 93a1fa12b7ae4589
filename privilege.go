package syspower

// strategy is one privilege-elevation wrapper. Wrapping is pure data
// transformation: the inner command becomes arguments to the elevation tool,
// invoked in its non-interactive form so a password prompt can never hang
// the chain.
type strategy struct {
	// name identifies the strategy in logs and tests.
	name string
	// prefix is the elevation command prepended to the inner invocation.
	prefix []string
}

// strategies lists the supported elevation tools in fixed priority order.
// Adding one requires nothing beyond an entry here: availability is a PATH
// check and wrapping is uniform.
var strategies = []strategy{
	{name: "sudo", prefix: []string{"sudo", "-n"}},
	{name: "doas", prefix: []string{"doas", "-n"}},
	{name: "pkexec", prefix: []string{"pkexec"}},
}

// availableStrategies filters strategies to the ones whose tool is present
// on PATH, preserving priority order.
func availableStrategies(f facts) []strategy {
	available := make([]strategy, 0, len(strategies))

	for _, s := range strategies {
		if f.hasExecutable(s.prefix[0]) {
			available = append(available, s)
		}
	}

	return available
}

// wrap produces the elevated form of the inner invocation. The stdin
// payload, if any, passes through to the inner command.
func (s strategy) wrap(inner invocation) invocation {
	args := make([]string, 0, len(s.prefix)+len(inner.args))
	args = append(args, s.prefix[1:]...)
	args = append(args, inner.path)
	args = append(args, inner.args...)

	return invocation{path: s.prefix[0], args: args, input: inner.input}
}
