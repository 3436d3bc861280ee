package reader

import (
	"time"

	"github.com/achilleasa/go-raytrace/asset"
	"github.com/achilleasa/go-raytrace/asset/scene"
	"github.com/achilleasa/go-raytrace/log"
)

type jsonSceneReader struct {
	logger log.Logger
}

func newJSONSceneReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger: log.New("json reader"),
	}
}

// Read scene description from a JSON document.
func (p *jsonSceneReader) Read(sceneRes *asset.Resource) (*scene.Scene, error) {
	p.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	sc, err := scene.Decode(sceneRes)
	if err != nil {
		return nil, err
	}

	p.logger.Noticef("loaded scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}
