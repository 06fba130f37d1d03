// Package navigation provides utilities for managing navigation state,
// breadcrumbs and settings-page tab bars.
package navigation

import (
	"net/url"

	"github.com/optionpanel/optionpanel/settings"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// TabItem represents a single tab in a settings-page tab bar.
type TabItem struct {
	ID     string
	Title  string
	Icon   string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	Tabs          []TabItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithTabs populates the tab bar from a settings store. Each tab links back
// to basePath with its id in the tab query parameter; the tab matching
// activeTab is marked active.
func (c *Context) WithTabs(store *settings.Store, basePath, activeTab string) *Context {
	tabs := store.Tabs()
	c.Tabs = make([]TabItem, 0, len(tabs))

	for _, tab := range tabs {
		c.Tabs = append(c.Tabs, TabItem{
			ID:     tab.ID,
			Title:  tab.Title,
			Icon:   tab.Icon,
			URL:    basePath + "?tab=" + url.QueryEscape(tab.ID),
			Active: tab.ID == activeTab,
		})
	}

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
