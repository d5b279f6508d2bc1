package domain

import (
	"strconv"
	"time"
)

// Item is a single giveaway listing. The identifier is an epoch-millisecond
// string minted at creation time; records are mutated in place and rewritten
// as part of the whole items collection.
type Item struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	SubDescription string   `json:"subDescription,omitempty"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	GalleryImages  []string `json:"galleryImages,omitempty"`
	AppIcon        string   `json:"appIcon,omitempty"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	ContactInfo    string   `json:"contactInfo,omitempty"`
	Location       string   `json:"location,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Version        string   `json:"version,omitempty"`
	Size           string   `json:"size,omitempty"`
	Requirements   string   `json:"requirements,omitempty"`
	UpdatedDate    string   `json:"updatedDate,omitempty"`
	DownloadCount  string   `json:"downloadCount,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	RatingCount    int      `json:"ratingCount,omitempty"`
	IsActive       bool     `json:"isActive"`
	DateAdded      string   `json:"dateAdded"`
}

// Announcement is a short notice rendered above the public catalog.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsActive    bool   `json:"isActive"`
	DateCreated string `json:"dateCreated"`
}

// AdminNote is a private free-text note visible only inside the admin console.
type AdminNote struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// AdminButton is a decorative navigation shortcut shown in the site menu.
type AdminButton struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// AdBanner is the singleton promotional overlay shown on page load.
type AdBanner struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
	DateCreated string `json:"dateCreated"`
}

// SiteSettings is the singleton branding record.
type SiteSettings struct {
	SiteTitle    string `json:"siteTitle"`
	SiteSubtitle string `json:"siteSubtitle"`
	SiteLogo     string `json:"siteLogo,omitempty"`
	SiteLogoType string `json:"siteLogoType"`
}

// ThemeColors groups the admin-selectable accent classes applied by the
// public views.
type ThemeColors struct {
	TitleColor        string `json:"titleColor"`
	BorderColor       string `json:"borderColor"`
	HeaderBorderColor string `json:"headerBorderColor"`
}

// Credentials is the shared admin secret. It is stored and compared in
// plaintext; the gate is a UI-level convenience, not real authentication.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CatalogStats summarises the publicly visible catalog.
type CatalogStats struct {
	ActiveItems   int `json:"activeItems"`
	TotalQuantity int `json:"totalQuantity"`
	Categories    int `json:"categories"`
}

// Logo type values accepted by SiteSettings.
const (
	LogoTypeIcon  = "icon"
	LogoTypeImage = "image"
)

// Defaults carried over from the original site.
const (
	DefaultSiteTitle    = "แจกของฟรี ทุกวัน"
	DefaultSiteSubtitle = "ไม่มีค่าใช้จ่าย"

	DefaultTitleColor        = "from-green-400 via-blue-500 to-purple-500"
	DefaultBorderColor       = "border-l-green-500 dark:border-l-green-400"
	DefaultHeaderBorderColor = "border-green-500 dark:border-green-400"

	DefaultAdminUsername = "raze"
	DefaultAdminPassword = "11223344"

	AdBannerID = "ad-1"
)

// DefaultSiteSettings returns the branding used before an admin saves one.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteTitle:    DefaultSiteTitle,
		SiteSubtitle: DefaultSiteSubtitle,
		SiteLogoType: LogoTypeIcon,
	}
}

// DefaultThemeColors returns the accent classes used before an admin picks any.
func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		TitleColor:        DefaultTitleColor,
		BorderColor:       DefaultBorderColor,
		HeaderBorderColor: DefaultHeaderBorderColor,
	}
}

// DefaultCategories seeds the category list on first run.
func DefaultCategories() []string {
	return []string{
		"เสื้อผ้า",
		"อิเล็กทรอนิกส์",
		"หนังสือ",
		"ของใช้ในบ้าน",
		"ของเล่น",
		"อาหาร",
		"อื่นๆ",
	}
}

// NewRecordID mints a record identifier from the supplied instant. Identifiers
// are epoch-millisecond strings; uniqueness is only as strong as the clock,
// matching the source system.
func NewRecordID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
