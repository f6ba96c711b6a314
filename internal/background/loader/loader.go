package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-sketchpad/pkg/background"
)

// Loader implements background.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	maxBytes  int64
}

// Ensure the implementation satisfies the public interface.
var _ background.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options background.LoaderOptions) background.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	maxBytes := options.MaxBytes
	if maxBytes <= 0 {
		maxBytes = background.DefaultMaxBytes
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		maxBytes:  maxBytes,
	}
}

// Load fetches a background payload from the provided source. Every failure is
// reported as *background.BackgroundLoadError.
func (l *Loader) Load(ctx context.Context, src background.Source) (background.Document, error) {
	if src == nil {
		return background.Document{}, &background.BackgroundLoadError{Err: errors.New("source is nil")}
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case background.SourceKindFile:
		data, err = loadFile(ctx, src.Location(), l.maxBytes)
	case background.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location(), l.maxBytes)
	case background.SourceKindURL:
		if !l.allowHTTP {
			err = errors.New("http support disabled")
			break
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = errors.New("unsupported source kind")
	}
	if err != nil {
		return background.Document{}, &background.BackgroundLoadError{Location: src.Location(), Err: err}
	}

	doc, err := background.NewDocument(src, data)
	if err != nil {
		return background.Document{}, &background.BackgroundLoadError{Location: src.Location(), Err: err}
	}
	return doc, nil
}
