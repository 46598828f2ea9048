package enfa

// makeEmptyString
// Returns a fragment that accepts only the empty string: one state that is
// both entry and exit.
func (c *compiler) makeEmptyString() fragment {
	s := c.b.CreateState()
	c.b.SetAccept(s, true)
	return fragment{entry: s, exit: s}
}

// makeChar
// Returns a fragment that consumes exactly one code point matching label.
func (c *compiler) makeChar(label Label) (fragment, error) {
	start := c.b.CreateState()
	end := c.b.CreateState()
	c.b.SetAccept(end, true)
	if err := c.b.AddTransition(start, end, label); err != nil {
		return fragment{}, err
	}
	return fragment{entry: start, exit: end}, nil
}

// makeCharClass
// Returns a fragment with one transition per member of chars. An empty class
// never consumes anything.
func (c *compiler) makeCharClass(chars []rune) (fragment, error) {
	start := c.b.CreateState()
	end := c.b.CreateState()
	c.b.SetAccept(end, true)
	for _, r := range chars {
		if err := c.b.AddTransition(start, end, Label(r)); err != nil {
			return fragment{}, err
		}
	}
	return fragment{entry: start, exit: end}, nil
}
