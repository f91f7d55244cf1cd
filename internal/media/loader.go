package media

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/playerstyle/internal/selection"
	"github.com/alexisbeaulieu97/playerstyle/internal/validation"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// catalogFile is the on-disk shape of a catalog extension.
type catalogFile struct {
	Media []fileDefinition `yaml:"media" validate:"required,min=1,dive"`
}

type fileDefinition struct {
	Key     string       `yaml:"key" validate:"required,slug"`
	Title   string       `yaml:"title" validate:"required"`
	Tag     string       `yaml:"tag" validate:"required,tag_name"`
	Src     string       `yaml:"src" validate:"required,url"`
	Package *filePackage `yaml:"package,omitempty" validate:"omitempty"`
}

type filePackage struct {
	Default   string            `yaml:"default" validate:"required,npm_package"`
	Overrides map[string]string `yaml:"overrides,omitempty" validate:"omitempty,dive,keys,oneof=html js react vue lit svelte,endkeys,npm_package"`
}

// LoadFile reads media definitions from a YAML catalog file:
//
//	media:
//	  - key: cloudflare
//	    title: Cloudflare
//	    tag: cloudflare-video
//	    src: https://watch.cloudflarestream.com/...
//	    package:
//	      default: cloudflare-video-element
//	      overrides:
//	        react: cloudflare-video-element/react
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pserrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes catalog YAML; path is only used in error messages.
func Parse(path string, data []byte) ([]Definition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, pserrors.NewYAMLParseError(path, err)
	}

	if err := validation.Struct(file); err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(file.Media))
	for _, entry := range file.Media {
		def := Definition{
			Key:              selection.MediaID(entry.Key),
			Title:            entry.Title,
			TagName:          entry.Tag,
			DefaultSourceURL: entry.Src,
		}
		if entry.Package != nil {
			def.Packages = &PackageMap{Default: entry.Package.Default}
			if len(entry.Package.Overrides) > 0 {
				def.Packages.Overrides = make(map[selection.FrameworkID]string, len(entry.Package.Overrides))
				for fw, pkg := range entry.Package.Overrides {
					def.Packages.Overrides[selection.FrameworkID(fw)] = pkg
				}
			}
		}
		defs = append(defs, def)
	}

	return defs, nil
}
