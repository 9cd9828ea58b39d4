// Package server assembles the gin engine for the report viewer.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reportviewer/internal/catalog"
	"reportviewer/internal/links"
	"reportviewer/internal/logging"
	"reportviewer/internal/metrics"
	"reportviewer/internal/reports"
	"reportviewer/pkg/utils"
)

// NewSource picks the catalog strategy named by cfg.CatalogSource.
func NewSource(cfg *utils.Config, logger *zap.Logger) catalog.Source {
	if cfg.CatalogSource == utils.CatalogSourceLocal {
		return catalog.NewLocalScan(cfg.EnglishDir)
	}
	return catalog.NewTableDriven(cfg.EnglishLinksFile, links.NewLoader(logger, "english"))
}

func NewRouter(cfg *utils.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logging.Middleware(logger), metrics.Middleware())

	// avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.SetHTMLTemplate(reports.MustTemplates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"catalog_source": cfg.CatalogSource,
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	hindi := links.NewLoader(logger, "hindi")
	h := reports.NewHandler(NewSource(cfg, logger), hindi, cfg.HindiLinksFile, cfg.EnglishDir, logger)
	h.RegisterRoutes(router.Group(""))

	return router
}
