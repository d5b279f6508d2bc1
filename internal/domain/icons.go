package domain

// ButtonIcon identifies a glyph from the fixed menu icon set. The set is
// closed; free-text icon names are rejected at the API boundary and renderers
// fall back to IconGift for anything unknown.
type ButtonIcon string

const (
	IconGift     ButtonIcon = "Gift"
	IconSettings ButtonIcon = "Settings"
	IconSun      ButtonIcon = "Sun"
	IconMoon     ButtonIcon = "Moon"
	IconMenu     ButtonIcon = "Menu"
	IconUser     ButtonIcon = "User"
	IconHome     ButtonIcon = "Home"
	IconLink     ButtonIcon = "Link"
	IconStar     ButtonIcon = "Star"
	IconBook     ButtonIcon = "Book"
	IconInfo     ButtonIcon = "Info"
)

var buttonIcons = map[ButtonIcon]struct{}{
	IconGift:     {},
	IconSettings: {},
	IconSun:      {},
	IconMoon:     {},
	IconMenu:     {},
	IconUser:     {},
	IconHome:     {},
	IconLink:     {},
	IconStar:     {},
	IconBook:     {},
	IconInfo:     {},
}

// ParseButtonIcon validates a raw icon name against the fixed set.
func ParseButtonIcon(raw string) (ButtonIcon, bool) {
	icon := ButtonIcon(raw)
	_, ok := buttonIcons[icon]
	return icon, ok
}

// NormalizeButtonIcon maps unknown icon names to the default glyph.
func NormalizeButtonIcon(raw string) ButtonIcon {
	if icon, ok := ParseButtonIcon(raw); ok {
		return icon
	}
	return IconGift
}

// ButtonIcons lists every icon the menu can render, in display order.
func ButtonIcons() []ButtonIcon {
	return []ButtonIcon{
		IconGift, IconSettings, IconSun, IconMoon, IconMenu, IconUser,
		IconHome, IconLink, IconStar, IconBook, IconInfo,
	}
}
