package web

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed all:public
var staticFS embed.FS

// RegisterStaticRoutes serves the embedded admin page. Unknown paths get a
// plain "Page not found" body.
func RegisterStaticRoutes(r *gin.Engine) {
	publicFS, err := fs.Sub(staticFS, "public")
	if err != nil {
		panic("failed to get public subdirectory: " + err.Error())
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.String(http.StatusNotFound, "Page not found")
			return
		}

		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p == "" {
			p = "index.html"
		}

		b, err := fs.ReadFile(publicFS, p)
		if err != nil {
			c.String(http.StatusNotFound, "Page not found")
			return
		}
		c.Data(http.StatusOK, contentTypeFor(p), b)
	})
}

func contentTypeFor(p string) string {
	if ct := mime.TypeByExtension(path.Ext(p)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
