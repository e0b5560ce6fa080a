package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplRobots   TemplateName = "robots.txt.tmpl"
	TplSiteInfo TemplateName = "site-info.json.tmpl"
)

// Object keys the rendered files are uploaded under.
const (
	RobotsKey   = "robots.txt"
	SiteInfoKey = "site-info.json"
)

// RobotsData holds the data required by the TplRobots template.
type RobotsData struct {
	Domain        string
	AllowIndexing bool
}

// SiteInfoData holds the data required by the TplSiteInfo template.
// It must not contain anything that changes between identical synths.
type SiteInfoData struct {
	Domain       string
	Stage        string
	Aliases      []string
	OriginAccess string
}
