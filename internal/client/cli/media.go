package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/sohaibmughall/crm-panel/internal/client/services"
)

func (a *App) listMedia(ctx context.Context) error {
	items, err := a.media.List(ctx)
	if err != nil {
		printlnFn("Could not load media:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No media yet.")
		return nil
	}
	for _, m := range items {
		printlnFn(fmt.Sprintf("%d\t%s\t%s\t%d bytes", m.ID, m.Name, m.Type, m.Size))
	}
	return nil
}

// Upload reads a local file and pushes it through the media service. The
// content type is sniffed from the payload, not the extension.
func (a *App) Upload(ctx context.Context) error {
	if a.screenFor(a.route) != "media" {
		printlnFn("Uploads happen on the media screen. Try 'open /media'.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Path to file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return err
	}

	asset, err := a.media.Upload(ctx, services.UploadInput{
		Name: filepath.Base(path),
		Type: mimetype.Detect(data).String(),
		Data: data,
	})
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn("Uploaded", asset.Name, "->", asset.URL)
	return nil
}
