// Package importer loads a YAML movie catalog into the store and uploads
// the poster files it references.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/gabriel-vasile/mimetype"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/myflix-server/internal/logger"
	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/service"
)

// Catalog is the YAML document read by the importer.
type Catalog struct {
	Movies []Entry `yaml:"movies"`
}

// Entry describes one movie of the catalog.
type Entry struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Genre       GenreEntry    `yaml:"genre"`
	Director    DirectorEntry `yaml:"director"`
	Actors      []model.Actor `yaml:"actors"`
	ReleaseYear int           `yaml:"release_year"`
	Rating      float64       `yaml:"rating"`
	ImagePath   string        `yaml:"image_path"`
}

type GenreEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type DirectorEntry struct {
	Name  string `yaml:"name"`
	Bio   string `yaml:"bio"`
	Birth string `yaml:"birth"`
	Death string `yaml:"death"`
}

func (e Entry) movie() model.Movie {
	return model.Movie{
		Title:       e.Title,
		Description: e.Description,
		Genre:       model.Genre(e.Genre),
		Director:    model.Director(e.Director),
		Actors:      e.Actors,
		ReleaseYear: e.ReleaseYear,
		Rating:      e.Rating,
		ImagePath:   e.ImagePath,
	}
}

// Result counts what an import did.
type Result struct {
	Created  int
	Skipped  int
	Uploaded int
}

// Importer writes catalog entries. Posters are only uploaded when a poster
// directory was given.
type Importer struct {
	movies  model.MovieStore
	storage model.Storage
	posters fs.FS
	logger  *logger.Logger
}

// New creates new Importer instance. posters may be nil.
func New(movies model.MovieStore, storage model.Storage, posters fs.FS, logger *logger.Logger) *Importer {
	return &Importer{movies: movies, storage: storage, posters: posters, logger: logger}
}

// Parse decodes and checks a catalog document.
func Parse(r io.Reader) (Catalog, error) {
	var catalog Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return Catalog{}, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i, e := range catalog.Movies {
		if e.Title == "" {
			return Catalog{}, fmt.Errorf("movie #%d: title is required", i+1)
		}
		if e.Description == "" {
			return Catalog{}, fmt.Errorf("movie %q: description is required", e.Title)
		}
	}

	return catalog, nil
}

// Import inserts every movie whose title is not in the store yet. Existing
// titles are skipped, so running it twice is safe.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	catalog, err := Parse(r)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, e := range catalog.Movies {
		created, err := im.importMovie(ctx, e)
		if err != nil {
			return res, err
		}
		if created {
			res.Created++
		} else {
			res.Skipped++
		}

		uploaded, err := im.uploadPoster(ctx, e.ImagePath)
		if err != nil {
			return res, err
		}
		if uploaded {
			res.Uploaded++
		}
	}

	im.logger.Info("Importer: catalog imported",
		"created", res.Created,
		"skipped", res.Skipped,
		"posters", res.Uploaded)

	return res, nil
}

func (im *Importer) importMovie(ctx context.Context, e Entry) (bool, error) {
	_, err := im.movies.GetByTitle(ctx, e.Title)
	switch {
	case err == nil:
		im.logger.Debug("Importer: movie already exists", "title", e.Title)
		return false, nil
	case !errors.Is(err, model.ErrNotFound):
		return false, fmt.Errorf("failed to look up movie %q: %w", e.Title, err)
	}

	if _, err := im.movies.Create(ctx, e.movie()); err != nil {
		return false, fmt.Errorf("failed to create movie %q: %w", e.Title, err)
	}
	return true, nil
}

func (im *Importer) uploadPoster(ctx context.Context, imagePath string) (bool, error) {
	key := service.PosterKey(imagePath)
	if im.posters == nil || key == "" {
		return false, nil
	}

	exists, err := im.storage.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check poster %q: %w", key, err)
	}
	if exists {
		return false, nil
	}

	data, err := fs.ReadFile(im.posters, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			im.logger.Warn("Importer: poster file is missing", "path", key)
			return false, nil
		}
		return false, fmt.Errorf("failed to read poster %q: %w", key, err)
	}

	contentType := mimetype.Detect(data).String()
	if err := im.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return false, fmt.Errorf("failed to upload poster %q: %w", key, err)
	}
	return true, nil
}
