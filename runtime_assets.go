package currencyinput

import (
	"io/fs"

	"github.com/goliatone/go-currencyinput/pkg/renderers/html"
)

// RuntimeAssetsFS exposes the embedded browser runtime (the keystroke
// formatter script and the widget stylesheet) so applications can serve them
// without a bundler step.
//
// Typical mount:
//
//	mux.Handle("/currency-input/",
//	  http.StripPrefix("/currency-input/",
//	    http.FileServerFS(currencyinput.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return html.AssetsFS()
}
