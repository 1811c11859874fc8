package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/srlehn/baseimg"
	"github.com/srlehn/baseimg/internal/consts"
	"github.com/srlehn/baseimg/internal/encoder"
	"github.com/srlehn/baseimg/internal/errors"
	"github.com/srlehn/baseimg/internal/logx"
	"github.com/srlehn/baseimg/surface"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	fl := serveCmd.Flags()
	fl.StringVar(&serveFlags.listen, `listen`, `localhost:8080`, `address to listen on`)
	fl.StringVar(&serveFlags.root, `root`, ``, `directory with source images, the bundled examples are always served`)
	fl.IntVar(&serveFlags.cacheEntries, `cache`, 64, `number of rendered images kept in memory`)
	fl.IntVar(&serveFlags.maxSide, `max-side`, 4096, `largest allowed canvas side length`)
}

var serveCmd = &cobra.Command{
	Use:   `serve`,
	Short: `serve rendered images over HTTP`,
	Long: `Serve rendered images over HTTP.

Routes:
  /                                  list of images
  /{image}/info.json                 image properties
  /{image}/{mode}/{w}x{h}.{format}   image drawn onto a canvas, ?bg=<colour>`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(serveFunc(cmd.Context()))
	},
}

var serveFlags struct {
	listen       string
	root         string
	cacheEntries int
	maxSide      int
}

func serveFunc(ctx context.Context) func(*slog.Logger) error {
	return func(logger *slog.Logger) error {
		if ctx == nil {
			ctx = context.Background()
		}
		s := newServer(serveFlags.root, serveFlags.cacheEntries, logger)
		s.maxSide = serveFlags.maxSide
		srv := &http.Server{
			Addr:              serveFlags.listen,
			Handler:           s.router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			_ = srv.Close()
		}()
		logx.Info(`server running`, s, `listen`, serveFlags.listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.New(err)
		}
		return nil
	}
}

type server struct {
	root    fs.FS
	logger  *slog.Logger
	maxSide int

	mu      sync.Mutex
	renders *lru.Cache
}

type render struct {
	contentType string
	data        []byte
}

func newServer(root string, cacheEntries int, logger *slog.Logger) *server {
	s := &server{
		logger:  logger,
		maxSide: 4096,
		renders: lru.New(cacheEntries),
	}
	if len(root) > 0 {
		s.root = os.DirFS(root)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return s
}

func (s *server) Logger() *slog.Logger { return s.logger }

func (s *server) router() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc(`/`, s.indexHandler).Methods(http.MethodGet)
	router.HandleFunc(`/{identifier}/info.json`, s.infoHandler).Methods(http.MethodGet)
	router.HandleFunc(`/{identifier}/{mode}/{size}.{format}`, s.renderHandler).Methods(http.MethodGet)
	return router
}

// open loads identifier from the root directory, falling back to the bundled examples.
func (s *server) open(identifier string) (*surface.Image, error) {
	opts := []surface.Option{surface.SetLogger(s.logger)}
	if s.root != nil && fs.ValidPath(identifier) {
		if _, err := fs.Stat(s.root, identifier); err == nil {
			return surface.NewFromFS(s.root, identifier, append([]surface.Option{baseimg.DefaultOptions}, opts...)...)
		}
	}
	return baseimg.LoadExample(identifier, opts...)
}

func (s *server) indexHandler(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, e := range baseimg.Examples() {
		names = append(names, path.Base(e))
	}
	if s.root != nil {
		_ = fs.WalkDir(s.root, `.`, func(p string, d fs.DirEntry, err error) error {
			if err == nil && !d.IsDir() && surface.IsValidExtension(strings.ToLower(path.Ext(p))) {
				names = append(names, p)
			}
			return nil
		})
	}
	s.writeJSON(w, map[string]any{`images`: names, `modes`: modeNames()})
}

type imageInfo struct {
	Identifier string `json:"identifier"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	BitSize    int    `json:"bit_size"`
	Extension  string `json:"extension"`
}

func (s *server) infoHandler(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)[`identifier`]
	img, err := s.open(identifier)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, imageInfo{
		Identifier: identifier,
		Width:      img.Width(),
		Height:     img.Height(),
		BitSize:    img.BitSize(),
		Extension:  img.Extension(),
	})
}

func (s *server) renderHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Path + `?` + r.URL.RawQuery
	s.mu.Lock()
	cached, ok := s.renders.Get(key)
	s.mu.Unlock()
	if !ok {
		rnd, err := s.render(mux.Vars(r), r.URL.Query().Get(`bg`))
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.mu.Lock()
		s.renders.Add(key, rnd)
		s.mu.Unlock()
		cached = rnd
	}
	rnd := cached.(*render)
	w.Header().Set(`Content-Type`, rnd.contentType)
	_, _ = w.Write(rnd.data)
}

func (s *server) render(vars map[string]string, background string) (*render, error) {
	format := encoder.Format(vars[`format`])
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, errors.Newf(consts.ErrUnsupportedFormat, `%q`, vars[`format`])
	}
	mode, err := surface.ParseMode(vars[`mode`])
	if err != nil {
		return nil, err
	}
	size, err := parseSize(vars[`size`])
	if err != nil {
		return nil, err
	}
	if size.X <= 0 || size.Y <= 0 || size.X > s.maxSide || size.Y > s.maxSide {
		return nil, errors.Newf(consts.ErrInvalidArgument, `canvas size %dx%d`, size.X, size.Y)
	}
	img, err := s.open(vars[`identifier`])
	if err != nil {
		return nil, err
	}
	if err := img.SetDrawingMode(mode); err != nil {
		return nil, err
	}
	if len(background) == 0 {
		background = `transparent`
	}
	canvas, err := drawOnCanvas(img, &drawConfig{canvas: size, background: background})
	if err != nil {
		return nil, err
	}
	out, err := surface.NewFromImage(canvas)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := out.Encode(&buf, format); err != nil {
		return nil, err
	}
	logx.Debug(`image rendered`, s, `identifier`, vars[`identifier`], `mode`, mode, `size`, size)
	return &render{contentType: contentType, data: buf.Bytes()}, nil
}

// keys match encoder.Formats
var contentTypes = map[string]string{
	`bmp`:  `image/bmp`,
	`gif`:  `image/gif`,
	`jpeg`: `image/jpeg`,
	`png`:  `image/png`,
	`tiff`: `image/tiff`,
}

func modeNames() []string {
	var names []string
	for _, m := range surface.Modes() {
		names = append(names, m.String())
	}
	return names
}

func (s *server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set(`Content-Type`, `application/json`)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error(`writing response`, s, `error`, err)
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, consts.ErrFileNotFound):
		status = http.StatusNotFound
	case errors.Is(err, consts.ErrUnsupportedFormat):
		status = http.StatusNotImplemented
	case errors.Is(err, consts.ErrInvalidArgument),
		errors.Is(err, consts.ErrInvalidMode),
		errors.Is(err, consts.ErrOutOfBounds):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		logx.IsErr(err, s, slog.LevelError)
	}
	http.Error(w, err.Error(), status)
}
