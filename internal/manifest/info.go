package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/footprint-tools/argtree/internal/schema"
)

// MergeInfo fills the empty application fields of s from pkg. When s has
// no name, pkg.Name is treated as a package identifier and title-cased
// ("my-tool" becomes "My Tool"). A missing executable name falls back to
// the running binary.
func MergeInfo(s *schema.Schema, pkg schema.Info) {
	info := s.Info()

	if info.Name == "" && pkg.Name != "" {
		info.Name = TitleName(pkg.Name)
	}
	fill(&info.Version, pkg.Version)
	fill(&info.Author, pkg.Author)
	fill(&info.License, pkg.License)
	fill(&info.Description, pkg.Description)
	fill(&info.ReleaseDate, pkg.ReleaseDate)
	fill(&info.Exe, pkg.Exe)
	if info.Exe == "" {
		info.Exe = s.Name()
	}
	if info.Exe == "" && len(os.Args) > 0 {
		info.Exe = filepath.Base(os.Args[0])
	}

	s.SetInfo(info)
}

// TitleName turns a package identifier into a display name.
func TitleName(pkg string) string {
	words := strings.FieldsFunc(pkg, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

func fill(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}
