package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ftracker/internal/models"
)

// ParsePackagesFromTOML reads tracker packages from a file of [[package]] tables.
func ParsePackagesFromTOML(path string) ([]models.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.PackageImport
	md, err := toml.Decode(string(data), &imp)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	return imp.Packages, nil
}
