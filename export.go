package shapedraw

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// Extensions lists the file extensions supported by Export.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".svg", ".pdf"}

func isRaster(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		return true
	}
	return false
}

// Export renders the state on a canvas of w by h device units and writes it to filename, the format is chosen by the file extension. Raster formats use resolution dots per device unit, vector formats ignore it.
func Export(filename string, s *State, w, h int, resolution float64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	supported := false
	for _, e := range Extensions {
		if e == ext {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unknown file extension: %v", ext)
	} else if resolution <= 0.0 {
		return fmt.Errorf("resolution must be positive")
	}

	var opts []interface{}
	if isRaster(ext) {
		opts = append(opts, canvas.DPMM(resolution))
	}

	c := s.Render(w, h)
	if err := renderers.Write(filename, c, opts...); err != nil {
		return fmt.Errorf("export %v: %w", filename, err)
	}
	return nil
}
