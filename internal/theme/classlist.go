package theme

import (
	"slices"
	"strings"
)

// ClassList is the class attribute of the page's root element. Styling rules
// select the color scheme from whichever theme class is present.
type ClassList struct {
	classes []string
}

// NewClassList returns a ClassList seeded with non-theme classes.
func NewClassList(base ...string) *ClassList {
	c := &ClassList{}
	for _, b := range base {
		c.add(b)
	}
	return c
}

// Set makes t the only theme class on the list.
func (c *ClassList) Set(t Theme) {
	c.remove(string(t.Opposite()))
	c.add(string(t))
}

// Has reports whether class is present.
func (c *ClassList) Has(class string) bool {
	return slices.Contains(c.classes, class)
}

// Theme returns the theme class currently applied, if any.
func (c *ClassList) Theme() (Theme, bool) {
	switch {
	case c.Has(string(Dark)):
		return Dark, true
	case c.Has(string(Light)):
		return Light, true
	}
	return "", false
}

func (c *ClassList) String() string {
	return strings.Join(c.classes, " ")
}

func (c *ClassList) add(class string) {
	if class == "" || c.Has(class) {
		return
	}
	c.classes = append(c.classes, class)
}

func (c *ClassList) remove(class string) {
	c.classes = slices.DeleteFunc(c.classes, func(s string) bool { return s == class })
}
