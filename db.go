package bptreekv

func validateKey(key string) error {
	if len(key) > KeyMaxLen {
		return newErr(ErrKeyTooLong, "key exceeds KeyMaxLen")
	}
	return nil
}

func validateValue(value string) error {
	if len(value) > ValueMaxLen {
		return newErr(ErrValueTooLong, "value exceeds ValueMaxLen")
	}
	return nil
}

// Set upserts key -> value. If key already exists its value is
// overwritten in place; otherwise a new record is inserted, splitting
// leaves (and propagating splits upward) as needed.
func (t *Table) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return newErr(ErrClosed, "database already closed")
	}

	c, err := t.find(key)
	if err != nil {
		return err
	}

	if c.found {
		p, err := t.getPage(c.pageIdx)
		if err != nil {
			return err
		}
		p.setLeafValue(c.cellIdx, value)
		return nil
	}

	return t.leafInsert(c, key, value)
}

// Get looks up key. ok is false when the key is absent; this is a
// normal "miss" outcome, not an error. The returned string is only
// valid until the next mutating call on t, since it is decoded from
// the live page cache.
func (t *Table) Get(key string) (value string, ok bool, err error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return "", false, newErr(ErrClosed, "database already closed")
	}

	c, err := t.find(key)
	if err != nil {
		return "", false, err
	}
	if !c.found {
		return "", false, nil
	}

	p, err := t.getPage(c.pageIdx)
	if err != nil {
		return "", false, err
	}
	return p.leafValue(c.cellIdx), true, nil
}
