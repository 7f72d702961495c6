package uploadfx

import (
	"go.uber.org/fx"

	"hiddengems/pkg/gallery"
	"hiddengems/pkg/storage"
)

var Module = fx.Provide(
	provideUploader, provideGallery)

func provideUploader() *storage.Uploader {
	return storage.NewUploader(storage.ConfigFromEnv())
}

func provideGallery() *gallery.Store {
	return gallery.NewStoreFromEnv()
}
