// Package imagegen maps aspect ratios to API image sizes and writes the
// generated images to disk.
package imagegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// AspectSizes maps the selectable aspect ratios to the sizes the image API
// actually supports. 4:3 and 9:16 are approximated by the nearest size.
var AspectSizes = map[string]string{
	"1:1":  "1024x1024",
	"16:9": "1792x1024",
	"4:3":  "1792x1024",
	"3:4":  "1024x1792",
	"9:16": "1024x1792",
}

// Qualities are the accepted values for the quality flag.
var Qualities = []string{"low", "medium", "high", "auto"}

// Ratios returns the supported aspect ratios in a stable order for help
// text and validation messages.
func Ratios() []string {
	ratios := make([]string, 0, len(AspectSizes))
	for r := range AspectSizes {
		ratios = append(ratios, r)
	}
	sort.Strings(ratios)
	return ratios
}

func ValidQuality(q string) bool {
	for _, known := range Qualities {
		if q == known {
			return true
		}
	}
	return false
}

// FilePrefix builds the shared stem of one batch's output filenames, e.g.
// ai_image_16x9_20250921_142301.
func FilePrefix(ratio string, now time.Time) string {
	return fmt.Sprintf("ai_image_%s_%s",
		strings.ReplaceAll(ratio, ":", "x"), now.Format("20060102_150405"))
}

// SaveImages writes each image as {prefix}_{NN}.png under dir and returns
// the paths written. A file that fails to write is skipped; the batch is
// best effort, matching the rest of the tool.
func SaveImages(dir, prefix string, images [][]byte) []string {
	var paths []string
	for i, data := range images {
		path := filepath.Join(dir, fmt.Sprintf("%s_%02d.png", prefix, i+1))
		if err := os.WriteFile(path, data, 0644); err != nil {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
