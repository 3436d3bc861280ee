package reader

import (
	"errors"
	"fmt"

	"github.com/achilleasa/go-raytrace/asset"
	"github.com/achilleasa/go-raytrace/asset/scene"
)

var ErrUnsupportedFormat = errors.New("reader: unsupported scene file format")

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from file. The reader is selected based on the file extension;
// plain JSON descriptions (.json) and compiled scenes (.zip) are supported.
func ReadScene(filename string) (*scene.Scene, error) {
	res, err := asset.NewResource(filename)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	reader, err := readerFor(res)
	if err != nil {
		return nil, err
	}
	return reader.Read(res)
}

func readerFor(res *asset.Resource) (Reader, error) {
	switch res.Ext() {
	case ".json":
		return newJSONSceneReader(), nil
	case ".zip":
		return newZipSceneReader(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, res.Ext())
}
