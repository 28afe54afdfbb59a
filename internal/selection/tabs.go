package selection

// Tabs cycles through a fixed set of titles. The index is always defined.
type Tabs struct {
	titles []string
	index  int
}

// NewTabs creates a tab set with the first title active
func NewTabs(titles ...string) *Tabs {
	return &Tabs{titles: titles}
}

// Titles returns the tab titles
func (t *Tabs) Titles() []string {
	return t.titles
}

// Index returns the active tab index
func (t *Tabs) Index() int {
	return t.index
}

// Current returns the active tab title, or "" for an empty tab set
func (t *Tabs) Current() string {
	if len(t.titles) == 0 {
		return ""
	}
	return t.titles[t.index]
}

// Next activates the following tab, wrapping around
func (t *Tabs) Next() {
	if len(t.titles) == 0 {
		return
	}
	t.index = (t.index + 1) % len(t.titles)
}

// Previous activates the preceding tab, wrapping around
func (t *Tabs) Previous() {
	if len(t.titles) == 0 {
		return
	}
	if t.index > 0 {
		t.index--
	} else {
		t.index = len(t.titles) - 1
	}
}
