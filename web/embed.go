// Package web embeds the static frontend: the login and signup pages,
// the two dashboards and their client scripts. The markup is incidental
// glue over the auth API; the interesting access control lives in the
// server-side guard, not here.
package web

import (
	"embed"
	"io/fs"
)

//go:embed login.html signup.html pages public
var assets embed.FS

// Assets returns the embedded frontend filesystem, rooted so that
// "login.html" and "pages/admin/dashboard.html" resolve directly.
func Assets() fs.FS {
	return assets
}
