// Package public embeds the static assets served under /static.
package public

import "embed"

//go:embed assets
var FS embed.FS
