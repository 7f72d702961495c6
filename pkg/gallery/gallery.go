package gallery

import (
	"encoding/json"
	"os"
)

// Image is one pre-seeded default image from the gallery manifest.
type Image struct {
	URL      string `json:"url"`
	Alt      string `json:"alt,omitempty"`
	Category string `json:"category,omitempty"`
}

// Store reads the manifest file on every call; the manifest is a small
// deploy-time artifact, not a dataset.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func NewStoreFromEnv() *Store {
	path := os.Getenv("GALLERY_MANIFEST")
	if path == "" {
		path = "gallery/manifest.json"
	}
	return NewStore(path)
}

func (s *Store) List() ([]Image, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var images []Image
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, err
	}
	return images, nil
}
