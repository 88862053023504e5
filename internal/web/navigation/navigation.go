// Package navigation describes the tabs of the single page UI.
package navigation

// Tab is one switchable panel of the page.
type Tab struct {
	ID     string
	Title  string
	Active bool
}

// Context represents the navigation state of a page.
type Context struct {
	PageTitle string
	ActiveTab string
	Tabs      []Tab
}

// NewContext creates a new navigation context with activeTab preselected.
func NewContext(pageTitle, activeTab string) *Context {
	return &Context{
		PageTitle: pageTitle,
		ActiveTab: activeTab,
		Tabs:      make([]Tab, 0),
	}
}

// AddTab appends a tab to the context.
func (c *Context) AddTab(id, title string) *Context {
	c.Tabs = append(c.Tabs, Tab{
		ID:     id,
		Title:  title,
		Active: id == c.ActiveTab,
	})

	return c
}

// IsActive checks if the given tab is the selected one.
func (c *Context) IsActive(id string) bool {
	return c.ActiveTab == id
}

// Select switches the active tab. Unknown ids keep the current selection.
func (c *Context) Select(id string) *Context {
	found := false
	for _, t := range c.Tabs {
		if t.ID == id {
			found = true
			break
		}
	}

	if !found {
		return c
	}

	c.ActiveTab = id
	for i := range c.Tabs {
		c.Tabs[i].Active = c.Tabs[i].ID == id
	}

	return c
}
