package syntaxplugin

import (
	"path/filepath"
	"strings"
)

// DeriveRoot returns the plugin root for a directory inside a plugin.
// The path is cut just before its first segment named "syntax"; a directory
// without such a segment is its own root.
func DeriveRoot(dir string) string {
	marker := string(filepath.Separator) + SyntaxDirName
	offset := 0
	for {
		i := strings.Index(dir[offset:], marker)
		if i < 0 {
			return dir
		}
		end := offset + i + len(marker)
		if end == len(dir) || dir[end] == filepath.Separator {
			return dir[:offset+i]
		}
		offset = end
	}
}

// templatePath joins the plugin root and a template file name
func templatePath(root, name string) string {
	return filepath.Join(root, TemplatesDirName, name)
}
