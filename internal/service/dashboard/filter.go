package dashboard

import (
	"strings"

	"github.com/zhouzirui/nexusai/internal/model/chat"
)

// Category narrows the dashboard chat list.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryStarred   Category = "starred"
	CategoryDocuments Category = "documents"
)

// Categories lists the sidebar entries in display order.
var Categories = []Category{CategoryAll, CategoryStarred, CategoryDocuments}

// ParseCategory maps a query value to a Category; anything unknown is CategoryAll.
func ParseCategory(raw string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryStarred, CategoryDocuments:
		return c
	default:
		return CategoryAll
	}
}

// Label is the sidebar caption.
func (c Category) Label() string {
	switch c {
	case CategoryStarred:
		return "Starred"
	case CategoryDocuments:
		return "Documents"
	default:
		return "All chats"
	}
}

// Filter returns the items matching category and the case-insensitive query. Documents
// currently shows every chat, like All.
func Filter(items []chat.ListItem, query string, category Category) []chat.ListItem {
	q := strings.ToLower(query)
	out := make([]chat.ListItem, 0, len(items))
	for _, item := range items {
		if category == CategoryStarred && !item.Starred {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Preview), q) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// ToggleStar returns a copy of items with the starred flag of id flipped.
func ToggleStar(items []chat.ListItem, id string) []chat.ListItem {
	out := make([]chat.ListItem, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Starred = !item.Starred
		}
		out[i] = item
	}
	return out
}

// Remove returns a copy of items without id.
func Remove(items []chat.ListItem, id string) []chat.ListItem {
	out := make([]chat.ListItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
