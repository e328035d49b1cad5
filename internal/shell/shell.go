// Package shell decides which chrome surrounds a page: navbar, footer and the navbar's
// right-hand actions.
package shell

import "strings"

// ScrollThreshold is the vertical offset in pixels past which the navbar switches to its
// scrolled style.
const ScrollThreshold = 10

// Link is a navigation entry.
type Link struct {
	Label string
	Href  string
}

// NavLinks are the marketing links shown in the navbar.
var NavLinks = []Link{
	{Label: "Home", Href: "/"},
	{Label: "Features", Href: "/features"},
	{Label: "Pricing", Href: "/pricing"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

var known = map[string]bool{
	"/": true, "/features": true, "/pricing": true, "/about": true, "/contact": true,
	"/login": true, "/signup": true, "/dashboard": true, "/chat": true,
}

func clean(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

// Known reports whether path is one of the site's pages.
func Known(path string) bool {
	return known[clean(path)]
}

// ShowNavbar is false only on the auth pages.
func ShowNavbar(path string) bool {
	switch clean(path) {
	case "/login", "/signup":
		return false
	}
	return true
}

// ShowFooter is false on the auth pages and the app screens.
func ShowFooter(path string) bool {
	switch clean(path) {
	case "/login", "/signup", "/dashboard", "/chat":
		return false
	}
	return true
}

// AppMode reports whether path is one of the app screens.
func AppMode(path string) bool {
	switch clean(path) {
	case "/dashboard", "/chat":
		return true
	}
	return false
}

// Action is a button in the navbar's right cluster.
type Action struct {
	Link
	Primary bool
}

// Actions returns "New Chat" on app screens and the auth entry points elsewhere.
func Actions(path string) []Action {
	if AppMode(path) {
		return []Action{{Link: Link{Label: "New Chat", Href: "/chat"}, Primary: true}}
	}
	return []Action{
		{Link: Link{Label: "Log In", Href: "/login"}},
		{Link: Link{Label: "Get Started", Href: "/signup"}, Primary: true},
	}
}

// Active reports whether a nav link points at the current page.
func Active(link Link, path string) bool {
	return link.Href == clean(path)
}

// Scrolled reports whether the navbar uses its scrolled style at offset y. App screens
// are always scrolled.
func Scrolled(path string, y float64) bool {
	return AppMode(path) || y > ScrollThreshold
}
