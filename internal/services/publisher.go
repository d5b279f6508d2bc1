package services

// Collection names announced on the change feed.
const (
	CollectionItems         = "items"
	CollectionAnnouncements = "announcements"
	CollectionCategories    = "categories"
	CollectionNotes         = "adminNotes"
	CollectionButtons       = "adminButtons"
	CollectionSiteSettings  = "siteSettings"
	CollectionThemeColors   = "themeColors"
	CollectionAdBanner      = "adBanner"
)

// Publisher broadcasts a collection-changed notification after a successful
// write. Implementations must not block.
type Publisher interface {
	CollectionChanged(name string)
}

// PublisherFunc adapts ordinary functions to Publisher.
type PublisherFunc func(name string)

// CollectionChanged invokes the wrapped function.
func (f PublisherFunc) CollectionChanged(name string) { f(name) }

// NoopPublisher drops every notification.
func NoopPublisher() Publisher {
	return PublisherFunc(func(string) {})
}
