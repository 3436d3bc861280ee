package writer

import (
	"archive/zip"
	"io"
	"os"
	"time"

	"github.com/achilleasa/go-raytrace/asset/scene"
	"github.com/achilleasa/go-raytrace/log"
)

const (
	dataFile = "scene.json"
)

type zipSceneWriter struct {
	logger    log.Logger
	sceneFile string
}

// Create a new zip scene writer
func newZipSceneWriter(sceneFile string) *zipSceneWriter {
	return &zipSceneWriter{
		logger:    log.New("zip writer"),
		sceneFile: sceneFile,
	}
}

// Write scene definition to zip file.
func (w *zipSceneWriter) Write(sc *scene.Scene) error {
	w.logger.Noticef("writing compressed scene to %s", w.sceneFile)
	start := time.Now()

	zipFile, err := os.Create(w.sceneFile)
	if err != nil {
		return err
	}

	err = writeArchive(zipFile, sc)
	if closeErr := zipFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	w.logger.Noticef("compressed scene in %d ms", time.Since(start).Nanoseconds()/1000000)
	return nil
}

// Write a zip archive containing the encoded scene to out. The archive is
// only complete if no error is returned.
func writeArchive(out io.Writer, sc *scene.Scene) error {
	zw := zip.NewWriter(out)
	cw, err := zw.Create(dataFile)
	if err == nil {
		err = sc.Encode(cw)
	}
	if closeErr := zw.Close(); err == nil {
		err = closeErr
	}
	return err
}
