package enfa

import (
	"github.com/geange/enfa/syntax"
)

// concatenate compiles nodes in order and links each exit to the next entry.
// Only the last exit stays an accept state.
func (c *compiler) concatenate(nodes []syntax.Node) (fragment, error) {
	if len(nodes) == 0 {
		return c.makeEmptyString(), nil
	}

	var result fragment
	for i, node := range nodes {
		f, err := c.compile(node)
		if err != nil {
			return fragment{}, err
		}
		if i == 0 {
			result = f
			continue
		}
		c.b.SetAccept(result.exit, false)
		if err := c.epsilon(result.exit, f.entry); err != nil {
			return fragment{}, err
		}
		result.exit = f.exit
	}
	return result, nil
}

// union branches from a new entry into both operands and joins their exits
// in a new shared exit.
func (c *compiler) union(left, right syntax.Node) (fragment, error) {
	entry := c.b.CreateState()

	l, err := c.compile(left)
	if err != nil {
		return fragment{}, err
	}
	r, err := c.compile(right)
	if err != nil {
		return fragment{}, err
	}

	exit := c.b.CreateState()
	c.b.SetAccept(exit, true)

	if err := c.epsilon(entry, l.entry, r.entry); err != nil {
		return fragment{}, err
	}
	for _, f := range []fragment{l, r} {
		c.b.SetAccept(f.exit, false)
		if err := c.epsilon(f.exit, exit); err != nil {
			return fragment{}, err
		}
	}
	return fragment{entry: entry, exit: exit}, nil
}

// repeat returns a fragment for zero or more repetitions of node.
func (c *compiler) repeat(node syntax.Node) (fragment, error) {
	entry := c.b.CreateState()
	exit := c.b.CreateState()
	c.b.SetAccept(exit, true)

	inner, err := c.compile(node)
	if err != nil {
		return fragment{}, err
	}

	// Skip path.
	if err := c.epsilon(entry, inner.entry, exit); err != nil {
		return fragment{}, err
	}
	// Loop back or stop after any iteration.
	c.b.SetAccept(inner.exit, false)
	if err := c.epsilon(inner.exit, inner.entry, exit); err != nil {
		return fragment{}, err
	}
	return fragment{entry: entry, exit: exit}, nil
}

// repeatMin1 returns a fragment for one or more repetitions of node. There
// is no skip path. The exit is a fresh state with no outgoing edges, so an
// enclosing optional can jump to it without entering the loop.
func (c *compiler) repeatMin1(node syntax.Node) (fragment, error) {
	entry := c.b.CreateState()

	inner, err := c.compile(node)
	if err != nil {
		return fragment{}, err
	}

	exit := c.b.CreateState()
	c.b.SetAccept(exit, true)

	if err := c.epsilon(entry, inner.entry); err != nil {
		return fragment{}, err
	}
	c.b.SetAccept(inner.exit, false)
	if err := c.epsilon(inner.exit, inner.entry, exit); err != nil {
		return fragment{}, err
	}
	return fragment{entry: entry, exit: exit}, nil
}

// optional returns a fragment that matches node or the empty string.
func (c *compiler) optional(node syntax.Node) (fragment, error) {
	entry := c.b.CreateState()

	inner, err := c.compile(node)
	if err != nil {
		return fragment{}, err
	}

	if err := c.epsilon(entry, inner.entry, inner.exit); err != nil {
		return fragment{}, err
	}
	return fragment{entry: entry, exit: inner.exit}, nil
}
