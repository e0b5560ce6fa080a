// Package renderer loads embedded templates under lib/renderer/templates/
// and renders them with sprig functions.
//
// The rendered files (robots.txt, site-info.json) are uploaded next to the
// static assets by the site deployment.
//
// Example:
//
//	robots, err := renderer.Render(renderer.TplRobots, renderer.RobotsData{
//	    Domain:        "thatsmidnight.com",
//	    AllowIndexing: true,
//	})
//	if err != nil { return err }
package renderer
