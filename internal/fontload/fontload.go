// Package fontload locates and loads the BDF fonts under testdata.
package fontload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/bdftab"
)

// Path returns the path of testdata file name, searching testdata folders
// from the working directory upwards.
func Path(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		p := filepath.Join(dir, "testdata", name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("fontload: test font %q not found", name)
		}
		dir = parent
	}
}

// LoadTestFont loads test font name with automatic encoding detection.
func LoadTestFont(name string) (*bdftab.Source, error) {
	p, err := Path(name)
	if err != nil {
		return nil, err
	}
	return bdftab.Open(p, bdftab.Auto)
}
