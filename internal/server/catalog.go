package server

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/weblarek/weblarek/internal/embedded"
	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/shop"
)

// catalogFile is the YAML document shape of a catalog file: the same list
// envelope the API serves, minus the derived total.
type catalogFile struct {
	Items []shop.Product `yaml:"items"`
}

// loadCatalog reads the catalog from path, or from the embedded sample
// catalog when path is empty.
func loadCatalog(path string) ([]shop.Product, error) {
	var (
		data []byte
		err  error
		src  string
	)
	if path == "" {
		src = "embedded:" + embedded.CatalogPath
		data, err = embedded.FS.ReadFile(embedded.CatalogPath)
	} else {
		src = path
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.WrapResource("read", "catalog", src, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", src, err)
	}
	return file.Items, nil
}
