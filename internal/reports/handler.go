package reports

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reportviewer/internal/catalog"
	"reportviewer/internal/links"
	"reportviewer/internal/logging"
	"reportviewer/internal/metrics"
	"reportviewer/internal/pdfinfo"
	"reportviewer/pkg/models"
)

type Handler struct {
	Source     catalog.Source
	Loader     *links.Loader // Hindi link table loader
	HindiLinks string        // path to the Hindi link table
	EnglishDir string
	Logger     *zap.Logger
}

func NewHandler(src catalog.Source, loader *links.Loader, hindiLinks, englishDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Source:     src,
		Loader:     loader,
		HindiLinks: hindiLinks,
		EnglishDir: englishDir,
		Logger:     logger,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.home)                            // GET /
	rg.GET("/view/:filename", h.view)              // GET /view/:filename
	rg.GET("/pdf/english/:filename", h.englishPDF) // GET /pdf/english/:filename
	rg.GET("/api/search", h.search)                // GET /api/search?q=
	rg.GET("/api/info/:filename", h.documentInfo)  // GET /api/info/:filename
}

func (h *Handler) log(c *gin.Context) *zap.Logger {
	return logging.FromContext(c.Request.Context(), h.Logger)
}

func (h *Handler) home(c *gin.Context) {
	files, err := h.Source.Files()
	if err != nil {
		h.log(c).Warn("build catalog failed", zap.Error(err))
		files = []string{}
	}
	h.log(c).Debug("catalog built", zap.Int("files", len(files)))

	c.HTML(http.StatusOK, "home.html", gin.H{"Files": files})
}

func (h *Handler) view(c *gin.Context) {
	filename := c.Param("filename")

	hindi := h.Loader.Load(h.HindiLinks)
	english := models.LinkTable{}
	rec, err := h.Source.English(filename)
	if err != nil {
		h.log(c).Warn("english availability unavailable", zap.String("file", filename), zap.Error(err))
	} else {
		english[filename] = rec
	}

	info, err := links.Resolve(filename, hindi, english)
	if errors.Is(err, links.ErrNotFound) {
		c.String(http.StatusNotFound, "Error: File %s not found", filename)
		return
	}

	c.HTML(http.StatusOK, "view.html", gin.H{"Info": info})
}

func (h *Handler) englishPDF(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.localPath(filename)
	if err != nil {
		c.String(http.StatusNotFound, "Error loading English PDF: %v", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		h.log(c).Debug("open english pdf failed", zap.String("file", filename), zap.Error(err))
		c.String(http.StatusNotFound, "Error loading English PDF: %s not found", filename)
		return
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil || !st.Mode().IsRegular() {
		c.String(http.StatusNotFound, "Error loading English PDF: %s not found", filename)
		return
	}

	disposition := "inline"
	if c.Query("download") != "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename*=UTF-8''%s", disposition, url.PathEscape(filename)))

	http.ServeContent(c.Writer, c.Request, filename, st.ModTime(), f)
	metrics.RecordEnglishBytes(int64(c.Writer.Size()))
}

func (h *Handler) search(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.log(c).Error("search panicked", zap.Any("panic", r))
			metrics.RecordSearch(false)
			c.JSON(http.StatusOK, models.SearchResponse{
				Success: false,
				Error:   fmt.Sprint(r),
				Files:   []string{},
			})
		}
	}()

	query := c.Query("q")

	files, err := h.Source.Files()
	if err != nil {
		msg := err.Error()
		if errors.Is(err, catalog.ErrDirNotFound) {
			msg = "Directory not found"
		}
		h.log(c).Warn("search failed", zap.String("q", query), zap.Error(err))
		metrics.RecordSearch(false)
		c.JSON(http.StatusOK, models.SearchResponse{Success: false, Error: msg, Files: []string{}})
		return
	}

	metrics.RecordSearch(true)
	c.JSON(http.StatusOK, models.SearchResponse{
		Success: true,
		Files:   catalog.Filter(files, query),
	})
}

func (h *Handler) documentInfo(c *gin.Context) {
	filename := c.Param("filename")

	path, err := h.localPath(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}

	info, err := pdfinfo.Inspect(path)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "document": info})
	case errors.Is(err, fs.ErrNotExist):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "file not found"})
	case errors.Is(err, pdfinfo.ErrUnreadable):
		h.log(c).Warn("inspect pdf failed", zap.String("file", filename), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": "unreadable pdf"})
	default:
		h.log(c).Error("inspect pdf failed", zap.String("file", filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "inspect failed"})
	}
}

// localPath maps a request filename onto the English directory, refusing
// anything that is not a plain file name.
func (h *Handler) localPath(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid file name %q", filename)
	}
	return filepath.Join(h.EnglishDir, filename), nil
}
